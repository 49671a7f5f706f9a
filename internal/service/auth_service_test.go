package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/repository"
	svcmocks "nihongo_diary/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authFixture struct {
	db      *gorm.DB
	mailer  *svcmocks.Mailer
	service *authService
}

func newAuthFixture(t *testing.T) *authFixture {
	db := setupTestDB(t)
	mailer := new(svcmocks.Mailer)
	s := NewAuthService(db, repository.NewGormUserRepository(), repository.NewGormTokenRepository(), mailer, testConfig()).(*authService)
	return &authFixture{db: db, mailer: mailer, service: s}
}

func validSignupRequest() *model.SignupRequest {
	return &model.SignupRequest{
		Username:        "taro",
		Password:        "secret123",
		PasswordConfirm: "secret123",
		Email:           "taro@example.com",
		Nickname:        "たろう",
	}
}

func Test_authService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 登録成功でウェルカムメールを送信", func(t *testing.T) {
		f := newAuthFixture(t)
		f.mailer.On("Send", ctx, "taro@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil).Once()

		info, err := f.service.Signup(ctx, validSignupRequest())
		require.NoError(t, err)
		assert.Equal(t, "taro", info.Username)
		assert.Equal(t, model.RoleUser, info.Role)

		var stored model.User
		require.NoError(t, f.db.Where("username = ?", "taro").First(&stored).Error)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
		assert.Equal(t, model.UserStatusActive, stored.Status)
		f.mailer.AssertExpectations(t)
	})

	t.Run("正常系: メール送信に失敗しても登録は成功する", func(t *testing.T) {
		f := newAuthFixture(t)
		f.mailer.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

		info, err := f.service.Signup(ctx, validSignupRequest())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, info.ID)
	})

	t.Run("異常系: パスワード不一致", func(t *testing.T) {
		f := newAuthFixture(t)
		req := validSignupRequest()
		req.PasswordConfirm = "other"

		_, err := f.service.Signup(ctx, req)
		assertAppError(t, err, "PASSWORD_MISMATCH", model.ErrInvalidInput)
	})

	duplicates := []struct {
		name     string
		mutate   func(r *model.SignupRequest)
		wantCode string
	}{
		{"異常系: ユーザー名の重複", func(r *model.SignupRequest) { r.Nickname = "別名"; r.Email = "other@example.com" }, "DUPLICATE_USERNAME"},
		{"異常系: ニックネームの重複", func(r *model.SignupRequest) { r.Username = "jiro"; r.Email = "other@example.com" }, "DUPLICATE_NICKNAME"},
		{"異常系: メールアドレスの重複", func(r *model.SignupRequest) { r.Username = "jiro"; r.Nickname = "じろう" }, "DUPLICATE_EMAIL"},
	}
	for _, tt := range duplicates {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			f.mailer.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
			_, err := f.service.Signup(ctx, validSignupRequest())
			require.NoError(t, err)

			req := validSignupRequest()
			tt.mutate(req)
			_, err = f.service.Signup(ctx, req)
			assertAppError(t, err, tt.wantCode, model.ErrConflict)
		})
	}
}

func Test_authService_LoginRefreshLogout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	f.mailer.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	_, err := f.service.Signup(ctx, validSignupRequest())
	require.NoError(t, err)

	t.Run("異常系: パスワード誤り", func(t *testing.T) {
		_, err := f.service.Login(ctx, &model.LoginRequest{Username: "taro", Password: "wrong"})
		assertAppError(t, err, "AUTHENTICATION_FAILED", model.ErrUnauthorized)
	})

	t.Run("異常系: 存在しないユーザー", func(t *testing.T) {
		_, err := f.service.Login(ctx, &model.LoginRequest{Username: "nobody", Password: "secret123"})
		assertAppError(t, err, "AUTHENTICATION_FAILED", model.ErrUnauthorized)
	})

	var tokens *model.AuthTokens
	t.Run("正常系: ログインでアクセス・リフレッシュトークンを発行", func(t *testing.T) {
		tokens, err = f.service.Login(ctx, &model.LoginRequest{Username: "taro", Password: "secret123"})
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)

		claims, err := middleware.ParseToken(f.service.cfg.JWT.SecretKey, tokens.AccessToken, model.TokenTypeAccess)
		require.NoError(t, err)
		assert.Equal(t, tokens.User.ID.String(), claims.Subject)
		assert.Equal(t, "taro", claims.Username)
		assert.Equal(t, model.RoleUser, claims.Role)

		// アクセストークンはリフレッシュトークンとして使えない
		_, err = middleware.ParseToken(f.service.cfg.JWT.SecretKey, tokens.AccessToken, model.TokenTypeRefresh)
		assert.Error(t, err)
	})
	require.NotNil(t, tokens)

	t.Run("正常系: リフレッシュで新しいアクセストークン", func(t *testing.T) {
		refreshed, err := f.service.Refresh(ctx, tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.Empty(t, refreshed.RefreshToken)
		assert.Equal(t, "taro", refreshed.User.Username)
	})

	t.Run("異常系: 空のリフレッシュトークン", func(t *testing.T) {
		_, err := f.service.Refresh(ctx, "")
		assertAppError(t, err, "INVALID_REFRESH_TOKEN", model.ErrUnauthorized)
	})

	t.Run("異常系: アクセストークンでリフレッシュ", func(t *testing.T) {
		_, err := f.service.Refresh(ctx, tokens.AccessToken)
		assertAppError(t, err, "INVALID_REFRESH_TOKEN", model.ErrUnauthorized)
	})

	t.Run("異常系: 保存済みトークンの有効期限切れ", func(t *testing.T) {
		f.service.now = func() time.Time { return time.Now().Add(f.service.cfg.JWT.RefreshTokenTTL + time.Hour) }
		defer func() { f.service.now = time.Now }()

		_, err := f.service.Refresh(ctx, tokens.RefreshToken)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("正常系: ログアウトでトークンを削除し、以後リフレッシュ不可", func(t *testing.T) {
		relogin, err := f.service.Login(ctx, &model.LoginRequest{Username: "taro", Password: "secret123"})
		require.NoError(t, err)

		require.NoError(t, f.service.Logout(ctx, relogin.RefreshToken))
		_, err = f.service.Refresh(ctx, relogin.RefreshToken)
		assertAppError(t, err, "INVALID_REFRESH_TOKEN", model.ErrUnauthorized)
	})

	t.Run("正常系: 不正なトークンでのログアウトはエラーにしない", func(t *testing.T) {
		assert.NoError(t, f.service.Logout(ctx, "not-a-jwt"))
		assert.NoError(t, f.service.Logout(ctx, ""))
	})
}

func Test_authService_Login_InactiveAccount(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	f.mailer.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	info, err := f.service.Signup(ctx, validSignupRequest())
	require.NoError(t, err)
	require.NoError(t, f.db.Model(&model.User{}).Where("id = ?", info.ID).Update("status", model.UserStatusSuspended).Error)

	_, err = f.service.Login(ctx, &model.LoginRequest{Username: "taro", Password: "secret123"})
	assertAppError(t, err, "ACCOUNT_NOT_ACTIVE", model.ErrForbidden)
}

func Test_authService_Me(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	_, err := f.service.Me(ctx, uuid.New())
	assertAppError(t, err, "USER_NOT_FOUND", model.ErrNotFound)
}

// assertAppError はエラーコードとセンチネルエラーを検証します
func assertAppError(t *testing.T, err error, code string, sentinel error) {
	t.Helper()
	require.Error(t, err)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Detail.Code)
	assert.ErrorIs(t, err, sentinel)
}
