//go:generate mockery --name QuizWordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizWordRepository はクイズ単語 (Word Store) の読み書きを担います
type QuizWordRepository interface {
	CountByLevel(ctx context.Context, db *gorm.DB, level model.JlptLevel) (int64, error)
	AllByLevel(ctx context.Context, db *gorm.DB, level model.JlptLevel) ([]*model.QuizWord, error)
	RandomSampleByLevel(ctx context.Context, db *gorm.DB, level model.JlptLevel, n int) ([]*model.QuizWord, error)
	FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.QuizWord, error)
	ExistsJlptWord(ctx context.Context, db *gorm.DB, level model.JlptLevel, word, hiragana string) (bool, error)
	CreateInBatches(ctx context.Context, db *gorm.DB, words []*model.QuizWord) error
	CountAllJlpt(ctx context.Context, db *gorm.DB) (int64, error)
}

const quizWordBatchSize = 100

type gormQuizWordRepository struct{}

func NewGormQuizWordRepository() QuizWordRepository {
	return &gormQuizWordRepository{}
}

func jlptScope(level model.JlptLevel) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("source = ? AND source_detail = ?", model.WordSourceJLPT, string(level))
	}
}

func (r *gormQuizWordRepository) CountByLevel(ctx context.Context, db *gorm.DB, level model.JlptLevel) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.QuizWord{}).Scopes(jlptScope(level)).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting quiz words by level in DB", "error", result.Error, "level", level)
		return 0, fmt.Errorf("gormQuizWordRepository.CountByLevel: %w", result.Error)
	}
	return count, nil
}

func (r *gormQuizWordRepository) AllByLevel(ctx context.Context, db *gorm.DB, level model.JlptLevel) ([]*model.QuizWord, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.QuizWord
	result := db.WithContext(ctx).Scopes(jlptScope(level)).Find(&words)
	if result.Error != nil {
		logger.Error("Error finding quiz words by level in DB", "error", result.Error, "level", level)
		return nil, fmt.Errorf("gormQuizWordRepository.AllByLevel: %w", result.Error)
	}
	return words, nil
}

// RandomSampleByLevel は指定レベルから最大 n 件を重複なしでランダムに取得します
// RANDOM() は PostgreSQL と SQLite の両方で使えます
func (r *gormQuizWordRepository) RandomSampleByLevel(ctx context.Context, db *gorm.DB, level model.JlptLevel, n int) ([]*model.QuizWord, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.QuizWord
	if n <= 0 {
		return words, nil
	}
	result := db.WithContext(ctx).Scopes(jlptScope(level)).Order("RANDOM()").Limit(n).Find(&words)
	if result.Error != nil {
		logger.Error("Error sampling quiz words in DB", "error", result.Error, "level", level, "n", n)
		return nil, fmt.Errorf("gormQuizWordRepository.RandomSampleByLevel: %w", result.Error)
	}
	return words, nil
}

func (r *gormQuizWordRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.QuizWord, error) {
	logger := middleware.GetLogger(ctx)
	var word model.QuizWord
	result := db.WithContext(ctx).Where("id = ?", wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding quiz word by ID in DB", "error", result.Error, "quiz_word_id", wordID.String())
		return nil, fmt.Errorf("gormQuizWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

func (r *gormQuizWordRepository) ExistsJlptWord(ctx context.Context, db *gorm.DB, level model.JlptLevel, word, hiragana string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.QuizWord{}).
		Scopes(jlptScope(level)).
		Where("word = ? AND hiragana = ?", word, hiragana).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error checking quiz word existence in DB", "error", result.Error, "level", level, "word", word)
		return false, fmt.Errorf("gormQuizWordRepository.ExistsJlptWord: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormQuizWordRepository) CreateInBatches(ctx context.Context, db *gorm.DB, words []*model.QuizWord) error {
	logger := middleware.GetLogger(ctx)
	if len(words) == 0 {
		return nil
	}
	for _, w := range words {
		if w.ID == uuid.Nil {
			w.ID = uuid.New()
		}
	}
	result := db.WithContext(ctx).CreateInBatches(words, quizWordBatchSize)
	if result.Error != nil {
		logger.Error("Error batch inserting quiz words in DB", "error", result.Error, "count", len(words))
		return fmt.Errorf("gormQuizWordRepository.CreateInBatches: %w", result.Error)
	}
	return nil
}

func (r *gormQuizWordRepository) CountAllJlpt(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.QuizWord{}).Where("source = ?", model.WordSourceJLPT).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting all JLPT words in DB", "error", result.Error)
		return 0, fmt.Errorf("gormQuizWordRepository.CountAllJlpt: %w", result.Error)
	}
	return count, nil
}
