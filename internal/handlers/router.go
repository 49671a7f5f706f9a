package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"nihongo_diary/internal/config"
	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Handlers はルーターに登録するハンドラー群です
type Handlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Diary      *DiaryHandler
	Vocabulary *VocabularyHandler
	Quiz       *QuizHandler
	Admin      *AdminHandler
	// Health は nil の場合登録されません
	Health http.HandlerFunc
}

// NewRouter はミドルウェアとAPIルートを設定した chi ルーターを返します
func NewRouter(cfg *config.Config, logger *slog.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	requireAuth := middleware.JWTAuthMiddleware(cfg)
	optionalAuth := middleware.OptionalAuthMiddleware(cfg)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Auth.Signup)
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)
			r.Post("/refresh", h.Auth.Refresh)
			r.With(requireAuth).Get("/me", h.Auth.Me)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/me", h.User.GetMe)
			r.Put("/me", h.User.UpdateProfile)
			r.Put("/me/password", h.User.ChangePassword)
			r.Delete("/me", h.User.DeleteAccount)
		})

		r.Route("/diary", func(r chi.Router) {
			r.Get("/public", h.Diary.GetPublicDiaries)
			r.Group(func(r chi.Router) {
				r.Use(optionalAuth)
				r.Get("/{id}", h.Diary.GetDiary)
				r.Get("/{id}/words", h.Diary.GetDiaryWords)
			})
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", h.Diary.CreateDiary)
				r.Get("/my", h.Diary.GetMyDiaries)
				r.Put("/{id}", h.Diary.UpdateDiary)
				r.Delete("/{id}", h.Diary.DeleteDiary)
			})
		})

		r.Route("/vocabulary", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.Vocabulary.CreateVocabulary)
			r.Get("/", h.Vocabulary.GetMyVocabularies)
			r.Get("/status", h.Vocabulary.GetVocabulariesByStatus)
			r.Get("/search", h.Vocabulary.SearchVocabularies)
			r.Get("/{id}", h.Vocabulary.GetVocabulary)
			r.Put("/{id}", h.Vocabulary.UpdateVocabulary)
			r.Patch("/{id}/status", h.Vocabulary.UpdateStudyStatus)
			r.Delete("/{id}", h.Vocabulary.DeleteVocabulary)
		})

		r.Route("/quiz", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/review", h.Quiz.GetReviewWords)
				r.Get("/review/count", h.Quiz.GetReviewWordsCount)
			})
			r.Group(func(r chi.Router) {
				r.Use(optionalAuth)
				r.Get("/{level}", h.Quiz.GenerateQuiz)
				r.Post("/answer", h.Quiz.CheckAnswer)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAuth)
			r.Use(middleware.RequireRole(model.RoleAdmin))
			r.Post("/jlpt/import", h.Admin.ImportJlptWords)
			r.Get("/jlpt/count", h.Admin.CountJlptWords)
		})
	})

	if h.Health != nil {
		r.Get("/health", h.Health)
	}

	return r
}
