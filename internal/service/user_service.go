package service

import (
	"context"
	"errors"
	"time"

	"nihongo_diary/internal/config"
	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*model.UserInfo, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.UserInfo, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *model.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	PurgeDeletedUsers(ctx context.Context, olderThan time.Duration) (int, error)
}

type userService struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	mailer    Mailer
	cfg       *config.Config
	now       func() time.Time
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository, tokenRepo repository.TokenRepository, mailer Mailer, cfg *config.Config) UserService {
	return &userService{
		db:        db,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *userService) findUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "User not found", "", model.ErrNotFound)
		}
		return nil, internalError("ユーザーの取得に失敗しました。", err)
	}
	return user, nil
}

func (s *userService) GetMe(ctx context.Context, userID uuid.UUID) (*model.UserInfo, error) {
	user, err := s.findUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	return model.NewUserInfo(user), nil
}

// UpdateProfile はニックネームとメールアドレスを更新します。変更がない項目は重複チェックしません。
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.UserInfo, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	var updated *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.findUser(ctx, tx, userID)
		if err != nil {
			return err
		}

		if user.Nickname != req.Nickname {
			exists, err := s.userRepo.ExistsByNickname(ctx, tx, req.Nickname)
			if err != nil {
				return internalError("ユーザー情報の確認に失敗しました。", err)
			}
			if exists {
				return model.NewAppError("DUPLICATE_NICKNAME", "Nickname already exists", "nickname", model.ErrConflict)
			}
		}
		if user.Email != req.Email {
			exists, err := s.userRepo.ExistsByEmail(ctx, tx, req.Email)
			if err != nil {
				return internalError("ユーザー情報の確認に失敗しました。", err)
			}
			if exists {
				return model.NewAppError("DUPLICATE_EMAIL", "Email already exists", "email", model.ErrConflict)
			}
		}

		user.Nickname = req.Nickname
		user.Email = req.Email
		if err := s.userRepo.Update(ctx, tx, user); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_ENTRY", "Nickname or email already exists", "", model.ErrConflict)
			}
			return internalError("プロフィールの更新に失敗しました。", err)
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Profile updated")
	return model.NewUserInfo(updated), nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, req *model.ChangePasswordRequest) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	user, err := s.findUser(ctx, s.db, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		logger.Warn("Change password failed: current password mismatch")
		return model.NewAppError("INVALID_CURRENT_PASSWORD", "Current password is incorrect", "currentPassword", model.ErrInvalidInput)
	}
	if req.NewPassword != req.NewPasswordConfirm {
		return model.NewAppError("PASSWORD_MISMATCH", "New passwords do not match", "newPasswordConfirm", model.ErrInvalidInput)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return internalError("パスワードの処理中にエラーが発生しました。", err)
	}
	user.Password = string(hashed)
	if err := s.userRepo.Update(ctx, s.db, user); err != nil {
		return internalError("パスワードの更新に失敗しました。", err)
	}

	logger.Info("Password changed")
	return nil
}

// DeleteAccount はアカウントを論理削除し、リフレッシュトークンを破棄します
func (s *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	var deleted *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.findUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		now := s.now()
		user.Status = model.UserStatusDeleted
		user.DeletedAt = &now
		if err := s.userRepo.Update(ctx, tx, user); err != nil {
			return internalError("退会処理に失敗しました。", err)
		}
		if err := s.tokenRepo.DeleteRefreshTokensByUser(ctx, tx, userID); err != nil {
			return internalError("退会処理に失敗しました。", err)
		}
		deleted = user
		return nil
	})
	if err != nil {
		return err
	}

	subject, body := farewellMail(s.cfg.App.Name, deleted)
	if err := s.mailer.Send(ctx, deleted.Email, subject, body); err != nil {
		logger.Warn("Failed to send farewell email", "error", err)
	}

	logger.Info("User account soft deleted", "deleted_at", deleted.DeletedAt)
	return nil
}

// PurgeDeletedUsers は退会から olderThan 以上経過したユーザーを関連データごと物理削除します
func (s *userService) PurgeDeletedUsers(ctx context.Context, olderThan time.Duration) (int, error) {
	logger := middleware.GetLogger(ctx)
	before := s.now().Add(-olderThan)

	users, err := s.userRepo.FindDeletedBefore(ctx, s.db, before)
	if err != nil {
		return 0, internalError("退会ユーザーの取得に失敗しました。", err)
	}

	purged := 0
	for _, u := range users {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return s.userRepo.HardDelete(ctx, tx, u.ID)
		})
		if err != nil {
			// 1件の失敗で残りを止めない
			logger.Error("Failed to purge deleted user", "error", err, "user_id", u.ID)
			continue
		}
		purged++
	}

	logger.Info("Purged deleted users", "purged", purged, "candidates", len(users), "before", before)
	return purged, nil
}
