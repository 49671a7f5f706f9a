// internal/model/vocabulary.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type StudyStatus string

const (
	StudyStatusNotStudied StudyStatus = "NOT_STUDIED"
	StudyStatusStudying   StudyStatus = "STUDYING"
	StudyStatusCompleted  StudyStatus = "COMPLETED"
)

// Display は画面表示用の名称を返します
func (s StudyStatus) Display() string {
	switch s {
	case StudyStatusNotStudied:
		return "Not Studied"
	case StudyStatusStudying:
		return "Studying"
	case StudyStatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

func (s StudyStatus) IsValid() bool {
	switch s {
	case StudyStatusNotStudied, StudyStatusStudying, StudyStatusCompleted:
		return true
	}
	return false
}

// Vocabulary はユーザーの単語帳の1件です
type Vocabulary struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID   `gorm:"type:uuid;not null;index"`
	Word               string      `gorm:"size:100;not null"`
	Hiragana           string      `gorm:"size:100;not null"`
	Meaning            string      `gorm:"size:500;not null"`
	ExampleSentence    string      `gorm:"size:1000"`
	ExampleTranslation string      `gorm:"size:1000"`
	StudyStatus        StudyStatus `gorm:"size:20;not null;default:NOT_STUDIED;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Vocabulary) TableName() string {
	return "vocabularies"
}

// 単語作成リクエストDTO
type VocabularyCreateRequest struct {
	Word               string `json:"word" validate:"required,max=100"`
	Hiragana           string `json:"hiragana" validate:"required,max=100"`
	Meaning            string `json:"meaning" validate:"required,max=500"`
	ExampleSentence    string `json:"exampleSentence" validate:"max=1000"`
	ExampleTranslation string `json:"exampleTranslation" validate:"max=1000"`
}

// 単語更新リクエストDTO
type VocabularyUpdateRequest struct {
	Word               string      `json:"word" validate:"required,max=100"`
	Hiragana           string      `json:"hiragana" validate:"required,max=100"`
	Meaning            string      `json:"meaning" validate:"required,max=500"`
	ExampleSentence    string      `json:"exampleSentence" validate:"max=1000"`
	ExampleTranslation string      `json:"exampleTranslation" validate:"max=1000"`
	StudyStatus        StudyStatus `json:"studyStatus" validate:"required,oneof=NOT_STUDIED STUDYING COMPLETED"`
}

// VocabularyResponse は単語のレスポンスDTO
type VocabularyResponse struct {
	ID                 uuid.UUID   `json:"id"`
	Word               string      `json:"word"`
	Hiragana           string      `json:"hiragana"`
	Meaning            string      `json:"meaning"`
	ExampleSentence    string      `json:"exampleSentence"`
	ExampleTranslation string      `json:"exampleTranslation"`
	StudyStatus        StudyStatus `json:"studyStatus"`
	StudyStatusDisplay string      `json:"studyStatusDisplay"`
	CreateDate         time.Time   `json:"createDate"`
	UpdateDate         time.Time   `json:"updateDate"`
}

func NewVocabularyResponse(v *Vocabulary) *VocabularyResponse {
	return &VocabularyResponse{
		ID:                 v.ID,
		Word:               v.Word,
		Hiragana:           v.Hiragana,
		Meaning:            v.Meaning,
		ExampleSentence:    v.ExampleSentence,
		ExampleTranslation: v.ExampleTranslation,
		StudyStatus:        v.StudyStatus,
		StudyStatusDisplay: v.StudyStatus.Display(),
		CreateDate:         v.CreatedAt,
		UpdateDate:         v.UpdatedAt,
	}
}
