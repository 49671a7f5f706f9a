package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// SignupRequest は新規登録APIのリクエストボディ
type SignupRequest struct {
	Username        string `json:"username" validate:"required,max=50"`
	Password        string `json:"password" validate:"required,max=72"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required"`
	Email           string `json:"email" validate:"required,email,max=50"`
	Nickname        string `json:"nickname" validate:"required,max=50"`
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthTokens はログイン・リフレッシュ時に発行されるトークン
// (Cookieに設定されるためレスポンスボディには含めない)
type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	User         *UserInfo
}

// JWTCustomClaims はJWTに含めるカスタムクレーム（ペイロード）
type JWTCustomClaims struct {
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	TokenType string `json:"typ"` // "access" or "refresh"
	jwt.RegisteredClaims
}

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)
