//go:generate mockery --name TokenRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenRepository はユーザーのリフレッシュトークンを管理します
type TokenRepository interface {
	ReplaceRefreshToken(ctx context.Context, db *gorm.DB, token *model.RefreshToken) error
	FindRefreshToken(ctx context.Context, db *gorm.DB, token string) (*model.RefreshToken, error)
	DeleteRefreshTokensByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) error
}

type gormTokenRepository struct{}

func NewGormTokenRepository() TokenRepository {
	return &gormTokenRepository{}
}

// ReplaceRefreshToken は既存のトークンを削除してから新しいトークンを保存します
func (r *gormTokenRepository) ReplaceRefreshToken(ctx context.Context, db *gorm.DB, token *model.RefreshToken) error {
	logger := middleware.GetLogger(ctx)
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", token.UserID).Delete(&model.RefreshToken{}).Error; err != nil {
			logger.Error("Failed to delete old refresh token", "error", err, "user_id", token.UserID.String())
			return fmt.Errorf("gormTokenRepository.ReplaceRefreshToken: %w", err)
		}
		if err := tx.Create(token).Error; err != nil {
			logger.Error("Failed to create refresh token", "error", err, "user_id", token.UserID.String())
			return fmt.Errorf("gormTokenRepository.ReplaceRefreshToken: %w", err)
		}
		return nil
	})
}

func (r *gormTokenRepository) FindRefreshToken(ctx context.Context, db *gorm.DB, tokenStr string) (*model.RefreshToken, error) {
	logger := middleware.GetLogger(ctx)
	var token model.RefreshToken
	if err := db.WithContext(ctx).Where("token = ?", tokenStr).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Failed to find refresh token", "error", err)
		return nil, fmt.Errorf("gormTokenRepository.FindRefreshToken: %w", err)
	}
	return &token, nil
}

func (r *gormTokenRepository) DeleteRefreshTokensByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.RefreshToken{})
	if result.Error != nil {
		logger.Error("Failed to delete refresh tokens", "error", result.Error, "user_id", userID.String())
		return fmt.Errorf("gormTokenRepository.DeleteRefreshTokensByUser: %w", result.Error)
	}
	return nil
}
