package model

import (
	"time"

	"github.com/google/uuid"
)

// DiaryDateLayout は日記日付の入出力フォーマットです
const DiaryDateLayout = "2006-01-02"

// ContentPreviewLength は一覧表示のプレビュー文字数です
const ContentPreviewLength = 100

// Diary はユーザーの日記です (ユーザー1人につき1日1件)
type Diary struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_diary_user_date"`
	DiaryDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_diary_user_date;index"`
	Title     string    `gorm:"size:100;not null"`
	Content   string    `gorm:"type:text;not null"`
	IsPublic  bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// 関連 (Preload用)
	User *User `gorm:"foreignKey:UserID;references:ID"`
}

func (Diary) TableName() string {
	return "diaries"
}

// DiaryRequest は日記の作成・更新リクエスト
type DiaryRequest struct {
	DiaryDate string `json:"diaryDate" validate:"required,datetime=2006-01-02"`
	Title     string `json:"title" validate:"required,max=100"`
	Content   string `json:"content" validate:"required"`
	IsPublic  *bool  `json:"isPublic" validate:"required"`
}

// DiaryResponse は日記詳細のレスポンスDTO
type DiaryResponse struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Nickname   string    `json:"nickname"`
	DiaryDate  string    `json:"diaryDate"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	IsPublic   bool      `json:"isPublic"`
	CreateDate time.Time `json:"createDate"`
	UpdateDate time.Time `json:"updateDate"`
}

// DiaryListResponse は日記一覧のレスポンスDTO
type DiaryListResponse struct {
	ID             uuid.UUID `json:"id"`
	Nickname       string    `json:"nickname"`
	DiaryDate      string    `json:"diaryDate"`
	Title          string    `json:"title"`
	ContentPreview string    `json:"contentPreview"`
	IsPublic       bool      `json:"isPublic"`
	CreateDate     time.Time `json:"createDate"`
}

func NewDiaryResponse(d *Diary) *DiaryResponse {
	resp := &DiaryResponse{
		ID:         d.ID,
		DiaryDate:  d.DiaryDate.Format(DiaryDateLayout),
		Title:      d.Title,
		Content:    d.Content,
		IsPublic:   d.IsPublic,
		CreateDate: d.CreatedAt,
		UpdateDate: d.UpdatedAt,
	}
	if d.User != nil {
		resp.Username = d.User.Username
		resp.Nickname = d.User.Nickname
	}
	return resp
}

func NewDiaryListResponse(d *Diary) *DiaryListResponse {
	resp := &DiaryListResponse{
		ID:             d.ID,
		DiaryDate:      d.DiaryDate.Format(DiaryDateLayout),
		Title:          d.Title,
		ContentPreview: ContentPreview(d.Content),
		IsPublic:       d.IsPublic,
		CreateDate:     d.CreatedAt,
	}
	if d.User != nil {
		resp.Nickname = d.User.Nickname
	}
	return resp
}

// ContentPreview は本文の先頭100文字を返します。超える場合は "..." を付けます。
func ContentPreview(content string) string {
	runes := []rune(content)
	if len(runes) <= ContentPreviewLength {
		return content
	}
	return string(runes[:ContentPreviewLength]) + "..."
}

// DiaryWord は日記本文から抽出した単語です
type DiaryWord struct {
	Surface      string `json:"surface"`
	BaseForm     string `json:"baseForm"`
	Hiragana     string `json:"hiragana"`
	PartOfSpeech string `json:"partOfSpeech"`
	Count        int    `json:"count"`
}
