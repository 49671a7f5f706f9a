package handlers

import (
	"log/slog"
	"net/http"

	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/service"
	"nihongo_diary/internal/webutil"

	"github.com/google/uuid"
)

type VocabularyHandler struct {
	service service.VocabularyService
	logger  *slog.Logger
}

func NewVocabularyHandler(s service.VocabularyService, logger *slog.Logger) *VocabularyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabularyHandler{service: s, logger: logger}
}

// userAndVocabID は認証ユーザーIDとURLの単語IDを取得します
func userAndVocabID(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	vocabID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, vocabID, nil
}

func (h *VocabularyHandler) CreateVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateVocabulary"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.VocabularyCreateRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	vocab, err := h.service.CreateVocabulary(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Vocabulary created successfully", slog.String("vocabulary_id", vocab.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, vocab, logger)
}

func (h *VocabularyHandler) GetMyVocabularies(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMyVocabularies"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	vocabs, err := h.service.GetMyVocabularies(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Vocabularies listed successfully", slog.Int("count", len(vocabs)))
	webutil.RespondWithJSON(w, http.StatusOK, vocabs, logger)
}

func (h *VocabularyHandler) GetVocabulariesByStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocabulariesByStatus"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	status := model.StudyStatus(r.URL.Query().Get("studyStatus"))
	vocabs, err := h.service.GetVocabulariesByStatus(r.Context(), userID, status)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, vocabs, logger)
}

func (h *VocabularyHandler) SearchVocabularies(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SearchVocabularies"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	vocabs, err := h.service.SearchVocabularies(r.Context(), userID, r.URL.Query().Get("keyword"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, vocabs, logger)
}

func (h *VocabularyHandler) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocabulary"))

	userID, vocabID, err := userAndVocabID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	vocab, err := h.service.GetVocabulary(r.Context(), userID, vocabID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, vocab, logger)
}

func (h *VocabularyHandler) UpdateVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateVocabulary"))

	userID, vocabID, err := userAndVocabID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.VocabularyUpdateRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	vocab, err := h.service.UpdateVocabulary(r.Context(), userID, vocabID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, vocab, logger)
}

// UpdateStudyStatus は ?studyStatus= で学習状態のみを変更します
func (h *VocabularyHandler) UpdateStudyStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateStudyStatus"))

	userID, vocabID, err := userAndVocabID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	status := model.StudyStatus(r.URL.Query().Get("studyStatus"))
	vocab, err := h.service.UpdateStudyStatus(r.Context(), userID, vocabID, status)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, vocab, logger)
}

func (h *VocabularyHandler) DeleteVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteVocabulary"))

	userID, vocabID, err := userAndVocabID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteVocabulary(r.Context(), userID, vocabID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Vocabulary deleted successfully", slog.String("vocabulary_id", vocabID.String()))
	webutil.RespondNoContent(w)
}
