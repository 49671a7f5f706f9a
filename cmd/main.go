// cmd/main.go
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"gorm.io/gorm"

	"nihongo_diary/internal/config"
	"nihongo_diary/internal/handlers"
	"nihongo_diary/internal/repository"
	"nihongo_diary/internal/scheduler"
	"nihongo_diary/internal/service"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// ローカル開発用の .env があれば環境変数として読み込む (既存の環境変数は上書きしない)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Error loading .env file", slog.Any("error", err))
	}

	configDir := os.Getenv("APP_CONFIG_DIR")
	if configDir == "" {
		configDir = "configs"
	}
	if err := config.LoadConfig(configDir); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg

	logger := newLogger(cfg.Log.Level, os.Getenv("APP_ENV"), tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", cfg.App.Name))

	// 1. DB
	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()
	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. Dependency Injection
	userRepo := repository.NewGormUserRepository()
	tokenRepo := repository.NewGormTokenRepository()
	diaryRepo := repository.NewGormDiaryRepository()
	vocabRepo := repository.NewGormVocabularyRepository()
	quizRepo := repository.NewGormQuizWordRepository()
	progressRepo := repository.NewGormProgressRepository()

	mailer := service.NewMailer(cfg)
	analyzer, err := service.NewDiaryAnalyzer()
	if err != nil {
		slog.Error("Error initializing morphological analyzer", slog.Any("error", err))
		os.Exit(1)
	}

	authService := service.NewAuthService(db, userRepo, tokenRepo, mailer, cfg)
	userService := service.NewUserService(db, userRepo, tokenRepo, mailer, cfg)
	diaryService := service.NewDiaryService(db, diaryRepo, userRepo, analyzer)
	vocabService := service.NewVocabularyService(db, vocabRepo)
	reviewService := service.NewReviewService(db, progressRepo, cfg)
	quizService := service.NewQuizService(db, quizRepo, reviewService, nil)
	importService := service.NewJlptImportService(db, quizRepo)

	// 3. 開発用データ
	if cfg.App.SeedDevData {
		seeder := service.NewDevSeeder(db, userRepo, diaryRepo, vocabRepo, quizRepo, importService, cfg)
		if err := seeder.Run(context.Background()); err != nil {
			slog.Error("Error seeding development data", slog.Any("error", err))
			os.Exit(1)
		}
	}

	// 4. Scheduler
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = scheduler.New(userService, cfg.Scheduler, logger)
		if err := sched.Start(); err != nil {
			slog.Error("Error starting scheduler", slog.Any("error", err))
			os.Exit(1)
		}
	}

	// 5. Router
	router := handlers.NewRouter(cfg, logger, &handlers.Handlers{
		Auth:       handlers.NewAuthHandler(authService, cfg),
		User:       handlers.NewUserHandler(userService, cfg, logger),
		Diary:      handlers.NewDiaryHandler(diaryService, logger),
		Vocabulary: handlers.NewVocabularyHandler(vocabService, logger),
		Quiz:       handlers.NewQuizHandler(quizService, reviewService, logger),
		Admin:      handlers.NewAdminHandler(importService, logger),
		Health:     healthHandler(db),
	})

	// 6. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	if sched != nil {
		sched.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は APP_ENV=dev の場合 tint、それ以外は JSON ハンドラーのロガーを返します
func newLogger(level, appEnv string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}

func healthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
