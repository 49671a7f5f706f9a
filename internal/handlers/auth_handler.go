package handlers

import (
	"log/slog"
	"net/http"

	"nihongo_diary/internal/config"
	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/service"
	"nihongo_diary/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
	cfg     *config.Config
}

func NewAuthHandler(s service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{service: s, cfg: cfg}
}

// Signup は新規ユーザーを登録します
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "Signup"))

	var req model.SignupRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		logger.Warn("Signup failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Signup successful", "user_id", user.ID)
	webutil.RespondWithJSON(w, http.StatusCreated, user, logger)
}

// Login は認証に成功するとトークンを Cookie に設定します
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "Login"))

	var req model.LoginRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	tokens, err := h.service.Login(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	setTokenCookie(w, &h.cfg.JWT, model.AccessTokenCookie, tokens.AccessToken, h.cfg.JWT.AccessTokenTTL)
	setTokenCookie(w, &h.cfg.JWT, model.RefreshTokenCookie, tokens.RefreshToken, h.cfg.JWT.RefreshTokenTTL)
	webutil.RespondWithJSON(w, http.StatusOK, tokens.User, logger)
}

// Logout はトークンを破棄し、Cookie を必ず削除します
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "Logout"))

	err := h.service.Logout(r.Context(), cookieValue(r, model.RefreshTokenCookie))
	clearTokenCookies(w, &h.cfg.JWT)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "ログアウトしました。"}, logger)
}

// Refresh はリフレッシュトークンから新しいアクセストークンを発行します
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "Refresh"))

	tokens, err := h.service.Refresh(r.Context(), cookieValue(r, model.RefreshTokenCookie))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	setTokenCookie(w, &h.cfg.JWT, model.AccessTokenCookie, tokens.AccessToken, h.cfg.JWT.AccessTokenTTL)
	webutil.RespondWithJSON(w, http.StatusOK, tokens.User, logger)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "Me"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.Me(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}
