//go:generate mockery --name DiaryRepository --output ./mocks --outpkg mocks --case=underscore
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

type DiaryRepository interface {
	Create(ctx context.Context, db *gorm.DB, diary *model.Diary) error
	FindByID(ctx context.Context, db *gorm.DB, diaryID uuid.UUID) (*model.Diary, error)
	FindPublic(ctx context.Context, db *gorm.DB) ([]*model.Diary, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Diary, error)
	ExistsByUserAndDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) (bool, error)
	Update(ctx context.Context, db *gorm.DB, diary *model.Diary) error
	Delete(ctx context.Context, db *gorm.DB, diaryID uuid.UUID) error
}

type gormDiaryRepository struct{}

func NewGormDiaryRepository() DiaryRepository {
	return &gormDiaryRepository{}
}

func (r *gormDiaryRepository) Create(ctx context.Context, db *gorm.DB, diary *model.Diary) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Omit("User").Create(diary)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate diary date on create", "error", result.Error, "user_id", diary.UserID.String())
			return model.ErrConflict
		}
		logger.Error("Error creating diary in DB", "error", result.Error, "user_id", diary.UserID.String())
		return fmt.Errorf("gormDiaryRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormDiaryRepository) FindByID(ctx context.Context, db *gorm.DB, diaryID uuid.UUID) (*model.Diary, error) {
	logger := middleware.GetLogger(ctx)
	var diary model.Diary
	result := db.WithContext(ctx).Preload("User").Where("id = ?", diaryID).First(&diary)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding diary by ID in DB", "error", result.Error, "diary_id", diaryID.String())
		return nil, fmt.Errorf("gormDiaryRepository.FindByID: %w", result.Error)
	}
	return &diary, nil
}

func (r *gormDiaryRepository) FindPublic(ctx context.Context, db *gorm.DB) ([]*model.Diary, error) {
	logger := middleware.GetLogger(ctx)
	var diaries []*model.Diary
	result := db.WithContext(ctx).Preload("User").
		Where("is_public = ?", true).
		Order("diary_date DESC, created_at DESC").
		Find(&diaries)
	if result.Error != nil {
		logger.Error("Error finding public diaries in DB", "error", result.Error)
		return nil, fmt.Errorf("gormDiaryRepository.FindPublic: %w", result.Error)
	}
	return diaries, nil
}

func (r *gormDiaryRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Diary, error) {
	logger := middleware.GetLogger(ctx)
	var diaries []*model.Diary
	result := db.WithContext(ctx).Preload("User").
		Where("user_id = ?", userID).
		Order("diary_date DESC").
		Find(&diaries)
	if result.Error != nil {
		logger.Error("Error finding diaries by user in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormDiaryRepository.FindByUser: %w", result.Error)
	}
	return diaries, nil
}

func (r *gormDiaryRepository) ExistsByUserAndDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Diary{}).
		Where("user_id = ? AND diary_date = ?", userID, date).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error checking diary date existence in DB", "error", result.Error, "user_id", userID.String())
		return false, fmt.Errorf("gormDiaryRepository.ExistsByUserAndDate: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormDiaryRepository) Update(ctx context.Context, db *gorm.DB, diary *model.Diary) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(&model.Diary{}).Where("id = ?", diary.ID).Updates(map[string]interface{}{
		"diary_date": diary.DiaryDate,
		"title":      diary.Title,
		"content":    diary.Content,
		"is_public":  diary.IsPublic,
	})
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error updating diary in DB", "error", result.Error, "diary_id", diary.ID.String())
		return fmt.Errorf("gormDiaryRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormDiaryRepository) Delete(ctx context.Context, db *gorm.DB, diaryID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("id = ?", diaryID).Delete(&model.Diary{})
	if result.Error != nil {
		logger.Error("Error deleting diary in DB", "error", result.Error, "diary_id", diaryID.String())
		return fmt.Errorf("gormDiaryRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
