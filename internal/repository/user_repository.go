//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
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

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, db *gorm.DB, username string) (bool, error)
	ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error)
	ExistsByNickname(ctx context.Context, db *gorm.DB, nickname string) (bool, error)
	Update(ctx context.Context, db *gorm.DB, user *model.User) error
	FindDeletedBefore(ctx context.Context, db *gorm.DB, before time.Time) ([]*model.User, error)
	HardDelete(ctx context.Context, db *gorm.DB, userID uuid.UUID) error
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate key error on create user",
				"error", result.Error,
				"username", user.Username,
				"email", user.Email,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating user in DB", "error", result.Error, "username", user.Username)
		return fmt.Errorf("gormUserRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where("id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by ID in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormUserRepository.FindByID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by username in DB", "error", result.Error, "username", username)
		return nil, fmt.Errorf("gormUserRepository.FindByUsername: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) ExistsByUsername(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	return r.exists(ctx, db, "username", username)
}

func (r *gormUserRepository) ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	return r.exists(ctx, db, "email", email)
}

func (r *gormUserRepository) ExistsByNickname(ctx context.Context, db *gorm.DB, nickname string) (bool, error) {
	return r.exists(ctx, db, "nickname", nickname)
}

// exists は column の値が value のユーザーが存在するか数えます。column は呼び出し側の固定値のみ。
func (r *gormUserRepository) exists(ctx context.Context, db *gorm.DB, column, value string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.User{}).Where(column+" = ?", value).Count(&count)
	if result.Error != nil {
		logger.Error("Error checking user existence in DB", "error", result.Error, "column", column)
		return false, fmt.Errorf("gormUserRepository.exists(%s): %w", column, result.Error)
	}
	return count > 0, nil
}

func (r *gormUserRepository) Update(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Save(user)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate key error on update user", "error", result.Error, "user_id", user.ID.String())
			return model.ErrConflict
		}
		logger.Error("Error updating user in DB", "error", result.Error, "user_id", user.ID.String())
		return fmt.Errorf("gormUserRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormUserRepository) FindDeletedBefore(ctx context.Context, db *gorm.DB, before time.Time) ([]*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var users []*model.User
	result := db.WithContext(ctx).
		Where("status = ? AND deleted_at IS NOT NULL AND deleted_at < ?", model.UserStatusDeleted, before).
		Find(&users)
	if result.Error != nil {
		logger.Error("Error finding deleted users in DB", "error", result.Error)
		return nil, fmt.Errorf("gormUserRepository.FindDeletedBefore: %w", result.Error)
	}
	return users, nil
}

// HardDelete はユーザーと関連データを物理削除します。トランザクション内で呼び出してください。
func (r *gormUserRepository) HardDelete(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	db = db.WithContext(ctx)

	related := []interface{}{
		&model.QuizProgress{},
		&model.Vocabulary{},
		&model.Diary{},
		&model.RefreshToken{},
	}
	for _, m := range related {
		if err := db.Where("user_id = ?", userID).Delete(m).Error; err != nil {
			logger.Error("Error deleting user related rows", "error", err, "user_id", userID.String(), "model", fmt.Sprintf("%T", m))
			return fmt.Errorf("gormUserRepository.HardDelete: %w", err)
		}
	}

	result := db.Where("id = ?", userID).Delete(&model.User{})
	if result.Error != nil {
		logger.Error("Error deleting user in DB", "error", result.Error, "user_id", userID.String())
		return fmt.Errorf("gormUserRepository.HardDelete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
