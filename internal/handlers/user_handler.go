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

type UserHandler struct {
	service service.UserService
	cfg     *config.Config
	logger  *slog.Logger
}

func NewUserHandler(s service.UserService, cfg *config.Config, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{service: s, cfg: cfg, logger: logger}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMe"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	user, err := h.service.GetMe(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateProfile"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.UpdateProfileRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Profile updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ChangePassword"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.ChangePasswordRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "パスワードを変更しました。"}, logger)
}

// DeleteAccount は退会処理を行い、Cookie を削除します
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteAccount"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteAccount(r.Context(), userID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	clearTokenCookies(w, &h.cfg.JWT)
	logger.Info("Account deleted", slog.String("user_id", userID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "退会しました。"}, logger)
}
