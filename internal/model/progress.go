// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ProgressLevel int

const (
	Level1 ProgressLevel = iota + 1 // 1
	Level2                          // 2
	Level3                          // 3
)

// QuizProgress はユーザーごとのクイズ単語の復習進捗です
type QuizProgress struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uq_progress_user_word"`
	QuizWordID     uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uq_progress_user_word"`
	Level          ProgressLevel `gorm:"not null;default:1"`
	NextReviewDate time.Time     `gorm:"not null;index"`
	LastReviewedAt *time.Time
	CorrectCount   int `gorm:"not null;default:0"`
	WrongCount     int `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// 関連 (Preload用)
	QuizWord *QuizWord `gorm:"foreignKey:QuizWordID;references:ID"`
}

func (QuizProgress) TableName() string {
	return "quiz_progress"
}
