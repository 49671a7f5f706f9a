//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.QuizProgress) error // トランザクション対応
	FindByUserAndWord(ctx context.Context, db *gorm.DB, userID, quizWordID uuid.UUID) (*model.QuizProgress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *model.QuizProgress) error                                                      // トランザクション対応
	FindReviewable(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time, limit int) ([]*model.QuizProgress, error) // QuizWordはPreloadする
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.QuizProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate quiz progress on create", "user_id", progress.UserID.String(), "quiz_word_id", progress.QuizWordID.String())
			return model.ErrConflict
		}
		logger.Error("Error creating quiz progress in DB", "error", result.Error, "user_id", progress.UserID.String())
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) FindByUserAndWord(ctx context.Context, db *gorm.DB, userID, quizWordID uuid.UUID) (*model.QuizProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.QuizProgress
	result := db.WithContext(ctx).Where("user_id = ? AND quiz_word_id = ?", userID, quizWordID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding quiz progress in DB", "error", result.Error, "user_id", userID.String(), "quiz_word_id", quizWordID.String())
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndWord: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.QuizProgress) error {
	logger := middleware.GetLogger(ctx)
	// 存在確認は呼び出し元(Service)で行っている想定
	result := tx.WithContext(ctx).Omit("QuizWord").Save(progress)
	if result.Error != nil {
		logger.Error("Error updating quiz progress in DB", "error", result.Error, "progress_id", progress.ID.String())
		return fmt.Errorf("gormProgressRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) FindReviewable(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time, limit int) ([]*model.QuizProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progresses []*model.QuizProgress

	// クイズ単語が残っているものだけをJOINで絞り込み、PreloadでQuizWordを埋める
	result := db.WithContext(ctx).
		Preload("QuizWord").
		Joins("JOIN quiz_words ON quiz_words.id = quiz_progress.quiz_word_id").
		Where("quiz_progress.user_id = ? AND quiz_progress.next_review_date <= ?", userID, now).
		Order("quiz_progress.next_review_date ASC, quiz_progress.level ASC").
		Limit(limit).
		Find(&progresses)
	if result.Error != nil {
		logger.Error("Error finding reviewable quiz progress in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormProgressRepository.FindReviewable: %w", result.Error)
	}
	return progresses, nil
}
