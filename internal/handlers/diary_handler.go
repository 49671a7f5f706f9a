package handlers

import (
	"log/slog"
	"net/http"

	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/service"
	"nihongo_diary/internal/webutil"
)

type DiaryHandler struct {
	service service.DiaryService
	logger  *slog.Logger
}

func NewDiaryHandler(s service.DiaryService, logger *slog.Logger) *DiaryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DiaryHandler{service: s, logger: logger}
}

func (h *DiaryHandler) CreateDiary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateDiary"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.DiaryRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	diary, err := h.service.CreateDiary(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Diary created successfully", slog.String("diary_id", diary.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, diary, logger)
}

// GetPublicDiaries は認証不要
func (h *DiaryHandler) GetPublicDiaries(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPublicDiaries"))

	diaries, err := h.service.GetPublicDiaries(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, diaries, logger)
}

func (h *DiaryHandler) GetMyDiaries(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMyDiaries"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	diaries, err := h.service.GetMyDiaries(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, diaries, logger)
}

// GetDiary は任意認証。非公開の日記は本人のみ閲覧できる
func (h *DiaryHandler) GetDiary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDiary"))

	diaryID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	diary, err := h.service.GetDiary(r.Context(), diaryID, middleware.GetOptionalUserID(r.Context()))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, diary, logger)
}

func (h *DiaryHandler) UpdateDiary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateDiary"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	diaryID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.DiaryRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	diary, err := h.service.UpdateDiary(r.Context(), userID, diaryID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, diary, logger)
}

func (h *DiaryHandler) DeleteDiary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteDiary"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	diaryID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteDiary(r.Context(), userID, diaryID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Diary deleted successfully", slog.String("diary_id", diaryID.String()))
	webutil.RespondNoContent(w)
}

func (h *DiaryHandler) GetDiaryWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDiaryWords"))

	diaryID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	words, err := h.service.GetDiaryWords(r.Context(), diaryID, middleware.GetOptionalUserID(r.Context()))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}
