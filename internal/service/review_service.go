package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"nihongo_diary/internal/config"
	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// reviewCountLimit は件数取得時に使う上限
const reviewCountLimit = 9999

type ReviewService interface {
	GetReviewWords(ctx context.Context, userID uuid.UUID) ([]*model.ReviewWordResponse, error)
	GetReviewWordsCount(ctx context.Context, userID uuid.UUID) (int64, error)
	RecordResult(ctx context.Context, userID, quizWordID uuid.UUID, isCorrect bool) error
}

type reviewService struct {
	db       *gorm.DB
	progRepo repository.ProgressRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewReviewService(db *gorm.DB, progRepo repository.ProgressRepository, cfg *config.Config) ReviewService {
	return &reviewService{
		db:       db,
		progRepo: progRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *reviewService) GetReviewWords(ctx context.Context, userID uuid.UUID) ([]*model.ReviewWordResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	progresses, err := s.progRepo.FindReviewable(ctx, s.db, userID, s.now(), s.cfg.App.ReviewLimit)
	if err != nil {
		logger.Error("Failed to find reviewable words from repository", "error", err)
		return nil, internalError("復習単語の取得に失敗しました。", err)
	}

	responses := make([]*model.ReviewWordResponse, 0, len(progresses))
	for _, p := range progresses {
		if p.QuizWord == nil {
			logger.Warn("Found progress with nil QuizWord, skipping", "progress_id", p.ID)
			continue
		}
		responses = append(responses, &model.ReviewWordResponse{
			QuizWordID:     p.QuizWordID,
			Word:           p.QuizWord.Word,
			Hiragana:       p.QuizWord.Hiragana,
			Meaning:        p.QuizWord.Meaning,
			Level:          int(p.Level),
			NextReviewDate: p.NextReviewDate,
			CorrectCount:   p.CorrectCount,
			WrongCount:     p.WrongCount,
		})
	}

	logger.Info("Successfully retrieved review words", "count", len(responses))
	return responses, nil
}

func (s *reviewService) GetReviewWordsCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	progresses, err := s.progRepo.FindReviewable(ctx, s.db, userID, s.now(), reviewCountLimit)
	if err != nil {
		logger.Error("Failed to find reviewable words for count", "error", err)
		return 0, internalError("単語数の取得に失敗しました。", err)
	}

	count := int64(len(progresses))
	logger.Debug("Successfully counted reviewable words", "count", count)
	return count, nil
}

// RecordResult はクイズの回答結果から学習進捗を作成・更新します
func (s *reviewService) RecordResult(ctx context.Context, userID, quizWordID uuid.UUID, isCorrect bool) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "quiz_word_id", quizWordID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progress, err := s.progRepo.FindByUserAndWord(ctx, tx, userID, quizWordID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding progress in transaction", "error", err)
			return internalError("学習進捗の確認中にエラーが発生しました。", err)
		}
		isFound := err == nil

		now := s.now()
		newLevel, nextReviewDate := calculateNextProgress(progress, isCorrect, now, logger)

		if !isFound {
			logger.Info("Progress not found, creating new progress.", "is_correct", isCorrect)
			progress = &model.QuizProgress{
				ID:         uuid.New(),
				UserID:     userID,
				QuizWordID: quizWordID,
			}
		}
		progress.Level = newLevel
		progress.NextReviewDate = nextReviewDate
		progress.LastReviewedAt = &now
		if isCorrect {
			progress.CorrectCount++
		} else {
			progress.WrongCount++
		}

		if !isFound {
			if createErr := s.progRepo.Create(ctx, tx, progress); createErr != nil {
				logger.Error("Error creating new progress", "error", createErr)
				return internalError("学習進捗の作成に失敗しました。", createErr)
			}
			return nil
		}

		if updateErr := s.progRepo.Update(ctx, tx, progress); updateErr != nil {
			logger.Error("Error updating existing progress", "error", updateErr)
			return internalError("学習進捗の更新に失敗しました。", updateErr)
		}
		logger.Debug("Progress updated", "level", progress.Level, "next_review_date", progress.NextReviewDate)
		return nil
	})
}

// calculateNextProgress は次のレベルと復習日を計算するヘルパー関数
func calculateNextProgress(progress *model.QuizProgress, isCorrect bool, now time.Time, logger *slog.Logger) (model.ProgressLevel, time.Time) {
	if !isCorrect {
		// 間違えたら必ずレベル1に戻り、翌日復習
		return model.Level1, now.AddDate(0, 0, 1)
	}

	currentLevel := model.Level1
	if progress != nil {
		currentLevel = progress.Level
	}

	switch currentLevel {
	case model.Level1:
		return model.Level2, now.AddDate(0, 0, 3)
	case model.Level2:
		return model.Level3, now.AddDate(0, 0, 7)
	case model.Level3:
		return model.Level3, now.AddDate(0, 0, 14) // 最高レベル維持
	default:
		logger.Warn("Invalid progress level found, resetting to Level 1", "invalid_level", int(currentLevel))
		return model.Level1, now.AddDate(0, 0, 1)
	}
}
