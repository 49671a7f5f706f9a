package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"nihongo_diary/internal/config"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ParseToken は署名・有効期限・トークン種別を検証し、クレームを返します
func ParseToken(secretKey, tokenString, tokenType string) (*model.JWTCustomClaims, error) {
	claims := &model.JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// 署名アルゴリズムが期待通り(HS256)かチェック
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("unexpected token type: %s", claims.TokenType)
	}
	return claims, nil
}

// authenticate は accessToken Cookie を検証し、ユーザー情報をセットしたコンテキストを返します
func authenticate(r *http.Request, cfg *config.Config) (context.Context, error) {
	cookie, err := r.Cookie(model.AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return nil, model.NewAppError("UNAUTHORIZED", "ログインが必要です。", "", model.ErrUnauthorized)
	}

	claims, err := ParseToken(cfg.JWT.SecretKey, cookie.Value, model.TokenTypeAccess)
	if err != nil {
		return nil, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", errors.Join(model.ErrUnauthorized, err))
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, model.NewAppError("INVALID_TOKEN", "トークンのユーザー情報が不正です。", "", errors.Join(model.ErrUnauthorized, err))
	}

	ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
	ctx = context.WithValue(ctx, model.UserRoleKey, claims.Role)
	return ctx, nil
}

// JWTAuthMiddleware は accessToken Cookie のJWTを検証するミドルウェアです。
// 検証に失敗した場合は 401 を返します。
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			ctx, err := authenticate(r, cfg)
			if err != nil {
				logger.Warn("JWT auth failed", "error", err)
				webutil.HandleError(w, logger, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware は Cookie が有効な場合のみユーザー情報をセットします。
// 未ログイン・無効なトークンでもリクエストは通します。
func OptionalAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, err := authenticate(r, cfg)
			if err != nil {
				GetLogger(r.Context()).Debug("Optional auth: continuing as anonymous", "reason", err.Error())
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole は JWTAuthMiddleware の後段で使用し、ロールを検査します
func RequireRole(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())
			current, _ := r.Context().Value(model.UserRoleKey).(model.Role)
			if current != role {
				logger.Warn("Access denied: insufficient role", "required", role, "actual", current)
				webutil.HandleError(w, logger, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", model.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext は認証済みユーザーのIDを取得します
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
	}
	return value, nil
}

// GetOptionalUserID は未ログインの場合 nil を返します
func GetOptionalUserID(ctx context.Context) *uuid.UUID {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok {
		return nil
	}
	return &value
}

// WithUser はテストやバッチ処理でユーザー情報をコンテキストに載せるためのヘルパーです
func WithUser(ctx context.Context, userID uuid.UUID, role model.Role) context.Context {
	ctx = context.WithValue(ctx, model.UserIDKey, userID)
	return context.WithValue(ctx, model.UserRoleKey, role)
}
