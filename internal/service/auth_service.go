package service

import (
	"context"
	"errors"
	"time"

	"nihongo_diary/internal/config"
	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.UserInfo, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthTokens, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*model.AuthTokens, error)
	Me(ctx context.Context, userID uuid.UUID) (*model.UserInfo, error)
}

type authService struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	mailer    Mailer
	cfg       *config.Config
	now       func() time.Time
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, tokenRepo repository.TokenRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:        db,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Signup は新しいユーザーを登録し、ウェルカムメールを送信します
func (s *authService) Signup(ctx context.Context, req *model.SignupRequest) (*model.UserInfo, error) {
	logger := middleware.GetLogger(ctx).With("username", req.Username)

	if req.Password != req.PasswordConfirm {
		return nil, model.NewAppError("PASSWORD_MISMATCH", "Passwords do not match", "passwordConfirm", model.ErrInvalidInput)
	}

	var newUser *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkUnique(ctx, tx, req.Username, req.Nickname, req.Email); err != nil {
			return err
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return internalError("パスワードの処理中にエラーが発生しました。", err)
		}

		user := &model.User{
			ID:       uuid.New(),
			Username: req.Username,
			Password: string(hashedPassword),
			Email:    req.Email,
			Nickname: req.Nickname,
			Role:     model.RoleUser,
			Status:   model.UserStatusActive,
		}
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			// 事前チェック後の同時登録
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_ENTRY", "Username, nickname or email already exists", "username", model.ErrConflict)
			}
			return internalError("ユーザーの作成に失敗しました。", err)
		}
		newUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	// メール送信の失敗で登録は取り消さない
	subject, body := welcomeMail(s.cfg.App.Name, newUser)
	if err := s.mailer.Send(ctx, newUser.Email, subject, body); err != nil {
		logger.Warn("Failed to send welcome email", "error", err, "email", newUser.Email)
	}

	logger.Info("User signed up", "user_id", newUser.ID)
	return model.NewUserInfo(newUser), nil
}

// checkUnique はユーザー名・ニックネーム・メールアドレスの重複を確認します
func (s *authService) checkUnique(ctx context.Context, tx *gorm.DB, username, nickname, email string) error {
	checks := []struct {
		exists  func(context.Context, *gorm.DB, string) (bool, error)
		value   string
		code    string
		message string
		field   string
	}{
		{s.userRepo.ExistsByUsername, username, "DUPLICATE_USERNAME", "Username already exists", "username"},
		{s.userRepo.ExistsByNickname, nickname, "DUPLICATE_NICKNAME", "Nickname already exists", "nickname"},
		{s.userRepo.ExistsByEmail, email, "DUPLICATE_EMAIL", "Email already exists", "email"},
	}
	for _, c := range checks {
		exists, err := c.exists(ctx, tx, c.value)
		if err != nil {
			return internalError("ユーザー情報の確認に失敗しました。", err)
		}
		if exists {
			middleware.GetLogger(ctx).Warn("Duplicate value on signup", "field", c.field)
			return model.NewAppError(c.code, c.message, c.field, model.ErrConflict)
		}
	}
	return nil
}

// Login はユーザーを認証し、アクセストークンとリフレッシュトークンを発行します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthTokens, error) {
	logger := middleware.GetLogger(ctx).With("username", req.Username)

	user, err := s.userRepo.FindByUsername(ctx, s.db, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "ユーザー名またはパスワードが正しくありません。", "", model.ErrUnauthorized)
		}
		return nil, internalError("サーバー内部エラー", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.ID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "ユーザー名またはパスワードが正しくありません。", "", model.ErrUnauthorized)
	}

	if !user.IsActive() {
		logger.Warn("Login failed: account not active", "user_id", user.ID, "status", user.Status)
		return nil, model.NewAppError("ACCOUNT_NOT_ACTIVE", "このアカウントは利用できません。", "", model.ErrForbidden)
	}

	accessToken, err := s.issueToken(user, model.TokenTypeAccess, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		logger.Error("Failed to sign access token", "error", err)
		return nil, internalError("トークンの生成に失敗しました。", err)
	}
	refreshToken, err := s.issueToken(user, model.TokenTypeRefresh, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		logger.Error("Failed to sign refresh token", "error", err)
		return nil, internalError("トークンの生成に失敗しました。", err)
	}

	stored := &model.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.cfg.JWT.RefreshTokenTTL),
	}
	if err := s.tokenRepo.ReplaceRefreshToken(ctx, s.db, stored); err != nil {
		return nil, internalError("トークンの保存に失敗しました。", err)
	}

	logger.Info("Login successful", "user_id", user.ID)
	return &model.AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         model.NewUserInfo(user),
	}, nil
}

// Logout は保存済みのリフレッシュトークンを削除します。
// トークンが無効な場合も Cookie は削除されるためエラーにしません。
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	logger := middleware.GetLogger(ctx)
	if refreshToken == "" {
		return nil
	}

	claims, err := middleware.ParseToken(s.cfg.JWT.SecretKey, refreshToken, model.TokenTypeRefresh)
	if err != nil {
		logger.Debug("Logout with unparsable refresh token", "error", err)
		return nil
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil
	}

	if err := s.tokenRepo.DeleteRefreshTokensByUser(ctx, s.db, userID); err != nil {
		return internalError("ログアウト処理に失敗しました。", err)
	}
	logger.Info("Logout successful", "user_id", userID)
	return nil
}

// Refresh はリフレッシュトークンを検証し、新しいアクセストークンを発行します
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*model.AuthTokens, error) {
	logger := middleware.GetLogger(ctx)
	invalid := func(reason error) error {
		logger.Warn("Refresh token rejected", "reason", reason)
		return model.NewAppError("INVALID_REFRESH_TOKEN", "Invalid Refresh Token", "", errors.Join(model.ErrUnauthorized, reason))
	}

	if refreshToken == "" {
		return nil, invalid(errors.New("refresh token cookie is missing"))
	}
	claims, err := middleware.ParseToken(s.cfg.JWT.SecretKey, refreshToken, model.TokenTypeRefresh)
	if err != nil {
		return nil, invalid(err)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, invalid(err)
	}

	stored, err := s.tokenRepo.FindRefreshToken(ctx, s.db, refreshToken)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, invalid(errors.New("refresh token does not match"))
		}
		return nil, internalError("トークンの確認に失敗しました。", err)
	}
	if stored.UserID != userID {
		return nil, invalid(errors.New("refresh token owner mismatch"))
	}
	if s.now().After(stored.ExpiresAt) {
		_ = s.tokenRepo.DeleteRefreshTokensByUser(ctx, s.db, userID)
		return nil, invalid(errors.New("refresh token expired"))
	}

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, invalid(err)
		}
		return nil, internalError("ユーザーの取得に失敗しました。", err)
	}
	if !user.IsActive() {
		return nil, model.NewAppError("ACCOUNT_NOT_ACTIVE", "このアカウントは利用できません。", "", model.ErrForbidden)
	}

	accessToken, err := s.issueToken(user, model.TokenTypeAccess, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, internalError("トークンの生成に失敗しました。", err)
	}

	logger.Info("Access token refreshed", "user_id", user.ID)
	return &model.AuthTokens{AccessToken: accessToken, User: model.NewUserInfo(user)}, nil
}

// Me はログインユーザーの情報を返します
func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*model.UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "User not found", "", model.ErrNotFound)
		}
		return nil, internalError("ユーザーの取得に失敗しました。", err)
	}
	return model.NewUserInfo(user), nil
}

// issueToken は HS256 で署名したJWTを発行します
func (s *authService) issueToken(user *model.User, tokenType string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &model.JWTCustomClaims{
		Username:  user.Username,
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.cfg.App.Name,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.SecretKey))
}
