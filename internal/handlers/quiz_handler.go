package handlers

import (
	"log/slog"
	"net/http"

	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/service"
	"nihongo_diary/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type QuizHandler struct {
	quizService   service.QuizService
	reviewService service.ReviewService
	logger        *slog.Logger
}

func NewQuizHandler(qs service.QuizService, rs service.ReviewService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{quizService: qs, reviewService: rs, logger: logger}
}

// GenerateQuiz は GET /api/quiz/{level}?count=10
func (h *QuizHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GenerateQuiz"))

	level, err := model.ParseJlptLevel(chi.URLParam(r, "level"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	count, err := webutil.QueryInt(r, "count", service.DefaultQuizCount)
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_QUIZ_COUNT", "Question count must be between 1 and 50", "count", model.ErrInvalidInput))
		return
	}

	questions, err := h.quizService.GenerateQuiz(r.Context(), level, count)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Quiz generated", slog.String("level", string(level)), slog.Int("count", len(questions)))
	webutil.RespondWithJSON(w, http.StatusOK, questions, logger)
}

// CheckAnswer は任意認証。ログイン中であれば復習の進捗を記録します
func (h *QuizHandler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CheckAnswer"))

	var req model.QuizAnswerRequest
	if err := webutil.DecodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	res, err := h.quizService.CheckAnswer(r.Context(), middleware.GetOptionalUserID(r.Context()), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}

func (h *QuizHandler) GetReviewWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReviewWords"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	reviewWords, err := h.reviewService.GetReviewWords(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if reviewWords == nil {
		reviewWords = []*model.ReviewWordResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, reviewWords, logger)
}

func (h *QuizHandler) GetReviewWordsCount(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReviewWordsCount"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	count, err := h.reviewService.GetReviewWordsCount(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]int64{"count": count}, logger)
}
