package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken はユーザーごとに保持するリフレッシュトークンです (1ユーザー1件)
type RefreshToken struct {
	Token     string    `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
