//go:generate mockery --name VocabularyRepository --output ./mocks --outpkg mocks --case=underscore
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

type VocabularyRepository interface {
	Create(ctx context.Context, db *gorm.DB, vocab *model.Vocabulary) error
	FindByID(ctx context.Context, db *gorm.DB, vocabID uuid.UUID) (*model.Vocabulary, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Vocabulary, error)
	FindByUserAndStatus(ctx context.Context, db *gorm.DB, userID uuid.UUID, status model.StudyStatus) ([]*model.Vocabulary, error)
	Search(ctx context.Context, db *gorm.DB, userID uuid.UUID, keyword string) ([]*model.Vocabulary, error)
	Update(ctx context.Context, db *gorm.DB, vocabID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, vocabID uuid.UUID) error
}

type gormVocabularyRepository struct{}

func NewGormVocabularyRepository() VocabularyRepository {
	return &gormVocabularyRepository{}
}

func (r *gormVocabularyRepository) Create(ctx context.Context, db *gorm.DB, vocab *model.Vocabulary) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(vocab)
	if result.Error != nil {
		logger.Error("Error creating vocabulary in DB",
			"error", result.Error,
			"user_id", vocab.UserID.String(),
			"word", vocab.Word,
		)
		return fmt.Errorf("gormVocabularyRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormVocabularyRepository) FindByID(ctx context.Context, db *gorm.DB, vocabID uuid.UUID) (*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocab model.Vocabulary
	result := db.WithContext(ctx).Where("id = ?", vocabID).First(&vocab)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding vocabulary by ID in DB", "error", result.Error, "vocabulary_id", vocabID.String())
		return nil, fmt.Errorf("gormVocabularyRepository.FindByID: %w", result.Error)
	}
	return &vocab, nil
}

func (r *gormVocabularyRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocabs []*model.Vocabulary
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&vocabs)
	if result.Error != nil {
		logger.Error("Error finding vocabularies by user in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormVocabularyRepository.FindByUser: %w", result.Error)
	}
	return vocabs, nil
}

func (r *gormVocabularyRepository) FindByUserAndStatus(ctx context.Context, db *gorm.DB, userID uuid.UUID, status model.StudyStatus) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocabs []*model.Vocabulary
	result := db.WithContext(ctx).
		Where("user_id = ? AND study_status = ?", userID, status).
		Order("created_at DESC").
		Find(&vocabs)
	if result.Error != nil {
		logger.Error("Error finding vocabularies by status in DB", "error", result.Error, "user_id", userID.String(), "status", status)
		return nil, fmt.Errorf("gormVocabularyRepository.FindByUserAndStatus: %w", result.Error)
	}
	return vocabs, nil
}

// Search は単語・ひらがな・意味のいずれかに keyword を含む単語を返します
func (r *gormVocabularyRepository) Search(ctx context.Context, db *gorm.DB, userID uuid.UUID, keyword string) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocabs []*model.Vocabulary
	like := "%" + escapeLike(keyword) + "%"
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("word LIKE ? ESCAPE '\\' OR hiragana LIKE ? ESCAPE '\\' OR meaning LIKE ? ESCAPE '\\'", like, like, like).
		Order("created_at DESC").
		Find(&vocabs)
	if result.Error != nil {
		logger.Error("Error searching vocabularies in DB", "error", result.Error, "user_id", userID.String(), "keyword", keyword)
		return nil, fmt.Errorf("gormVocabularyRepository.Search: %w", result.Error)
	}
	return vocabs, nil
}

func (r *gormVocabularyRepository) Update(ctx context.Context, db *gorm.DB, vocabID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := db.WithContext(ctx).Model(&model.Vocabulary{}).Where("id = ?", vocabID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating vocabulary in DB", "error", result.Error, "vocabulary_id", vocabID.String())
		return fmt.Errorf("gormVocabularyRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabularyRepository) Delete(ctx context.Context, db *gorm.DB, vocabID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("id = ?", vocabID).Delete(&model.Vocabulary{})
	if result.Error != nil {
		logger.Error("Error deleting vocabulary in DB", "error", result.Error, "vocabulary_id", vocabID.String())
		return fmt.Errorf("gormVocabularyRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// escapeLike は LIKE のワイルドカード文字をエスケープします
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		if c == '%' || c == '_' || c == '\\' {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	return string(out)
}
