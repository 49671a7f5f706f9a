package service

import (
	"context"
	"errors"
	"strings"

	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VocabularyService interface {
	CreateVocabulary(ctx context.Context, userID uuid.UUID, req *model.VocabularyCreateRequest) (*model.VocabularyResponse, error)
	GetMyVocabularies(ctx context.Context, userID uuid.UUID) ([]*model.VocabularyResponse, error)
	GetVocabulariesByStatus(ctx context.Context, userID uuid.UUID, status model.StudyStatus) ([]*model.VocabularyResponse, error)
	SearchVocabularies(ctx context.Context, userID uuid.UUID, keyword string) ([]*model.VocabularyResponse, error)
	GetVocabulary(ctx context.Context, userID, vocabID uuid.UUID) (*model.VocabularyResponse, error)
	UpdateVocabulary(ctx context.Context, userID, vocabID uuid.UUID, req *model.VocabularyUpdateRequest) (*model.VocabularyResponse, error)
	UpdateStudyStatus(ctx context.Context, userID, vocabID uuid.UUID, status model.StudyStatus) (*model.VocabularyResponse, error)
	DeleteVocabulary(ctx context.Context, userID, vocabID uuid.UUID) error
}

type vocabularyService struct {
	db        *gorm.DB
	vocabRepo repository.VocabularyRepository
}

func NewVocabularyService(db *gorm.DB, vocabRepo repository.VocabularyRepository) VocabularyService {
	return &vocabularyService{
		db:        db,
		vocabRepo: vocabRepo,
	}
}

func (s *vocabularyService) CreateVocabulary(ctx context.Context, userID uuid.UUID, req *model.VocabularyCreateRequest) (*model.VocabularyResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	vocab := &model.Vocabulary{
		ID:                 uuid.New(),
		UserID:             userID,
		Word:               strings.TrimSpace(req.Word),
		Hiragana:           strings.TrimSpace(req.Hiragana),
		Meaning:            strings.TrimSpace(req.Meaning),
		ExampleSentence:    req.ExampleSentence,
		ExampleTranslation: req.ExampleTranslation,
		StudyStatus:        model.StudyStatusNotStudied,
	}
	if err := s.vocabRepo.Create(ctx, s.db, vocab); err != nil {
		return nil, internalError("単語の登録に失敗しました。", err)
	}

	logger.Info("Vocabulary created", "vocabulary_id", vocab.ID, "word", vocab.Word)
	return model.NewVocabularyResponse(vocab), nil
}

func (s *vocabularyService) GetMyVocabularies(ctx context.Context, userID uuid.UUID) ([]*model.VocabularyResponse, error) {
	vocabs, err := s.vocabRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		return nil, internalError("単語一覧の取得に失敗しました。", err)
	}
	return toVocabularyList(vocabs), nil
}

func (s *vocabularyService) GetVocabulariesByStatus(ctx context.Context, userID uuid.UUID, status model.StudyStatus) ([]*model.VocabularyResponse, error) {
	if !status.IsValid() {
		return nil, invalidStudyStatusError(status)
	}
	vocabs, err := s.vocabRepo.FindByUserAndStatus(ctx, s.db, userID, status)
	if err != nil {
		return nil, internalError("単語一覧の取得に失敗しました。", err)
	}
	return toVocabularyList(vocabs), nil
}

func (s *vocabularyService) SearchVocabularies(ctx context.Context, userID uuid.UUID, keyword string) ([]*model.VocabularyResponse, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, model.NewAppError("INVALID_KEYWORD", "検索キーワードを入力してください", "keyword", model.ErrInvalidInput)
	}
	vocabs, err := s.vocabRepo.Search(ctx, s.db, userID, keyword)
	if err != nil {
		return nil, internalError("単語の検索に失敗しました。", err)
	}
	return toVocabularyList(vocabs), nil
}

func (s *vocabularyService) GetVocabulary(ctx context.Context, userID, vocabID uuid.UUID) (*model.VocabularyResponse, error) {
	vocab, err := s.findOwned(ctx, s.db, userID, vocabID, "この単語を閲覧する権限がありません")
	if err != nil {
		return nil, err
	}
	return model.NewVocabularyResponse(vocab), nil
}

func (s *vocabularyService) UpdateVocabulary(ctx context.Context, userID, vocabID uuid.UUID, req *model.VocabularyUpdateRequest) (*model.VocabularyResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "vocabulary_id", vocabID)
	var updated *model.Vocabulary

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vocab, err := s.findOwned(ctx, tx, userID, vocabID, "この単語を修正する権限がありません")
		if err != nil {
			return err
		}
		vocab.Word = strings.TrimSpace(req.Word)
		vocab.Hiragana = strings.TrimSpace(req.Hiragana)
		vocab.Meaning = strings.TrimSpace(req.Meaning)
		vocab.ExampleSentence = req.ExampleSentence
		vocab.ExampleTranslation = req.ExampleTranslation
		vocab.StudyStatus = req.StudyStatus

		updates := map[string]interface{}{
			"word":                vocab.Word,
			"hiragana":            vocab.Hiragana,
			"meaning":             vocab.Meaning,
			"example_sentence":    vocab.ExampleSentence,
			"example_translation": vocab.ExampleTranslation,
			"study_status":        vocab.StudyStatus,
		}
		if err := s.vocabRepo.Update(ctx, tx, vocabID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return vocabularyNotFoundError()
			}
			return internalError("単語の更新に失敗しました。", err)
		}
		updated = vocab
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Vocabulary updated")
	return model.NewVocabularyResponse(updated), nil
}

func (s *vocabularyService) UpdateStudyStatus(ctx context.Context, userID, vocabID uuid.UUID, status model.StudyStatus) (*model.VocabularyResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "vocabulary_id", vocabID)
	if !status.IsValid() {
		return nil, invalidStudyStatusError(status)
	}

	var updated *model.Vocabulary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vocab, err := s.findOwned(ctx, tx, userID, vocabID, "この単語の学習状態を変更する権限がありません")
		if err != nil {
			return err
		}
		if err := s.vocabRepo.Update(ctx, tx, vocabID, map[string]interface{}{"study_status": status}); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return vocabularyNotFoundError()
			}
			return internalError("学習状態の更新に失敗しました。", err)
		}
		vocab.StudyStatus = status
		updated = vocab
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Study status updated", "status", status)
	return model.NewVocabularyResponse(updated), nil
}

func (s *vocabularyService) DeleteVocabulary(ctx context.Context, userID, vocabID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "vocabulary_id", vocabID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.findOwned(ctx, tx, userID, vocabID, "この単語を削除する権限がありません"); err != nil {
			return err
		}
		if err := s.vocabRepo.Delete(ctx, tx, vocabID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return vocabularyNotFoundError()
			}
			return internalError("単語の削除に失敗しました。", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Vocabulary deleted")
	return nil
}

func (s *vocabularyService) findOwned(ctx context.Context, db *gorm.DB, userID, vocabID uuid.UUID, forbiddenMessage string) (*model.Vocabulary, error) {
	vocab, err := s.vocabRepo.FindByID(ctx, db, vocabID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, vocabularyNotFoundError()
		}
		return nil, internalError("単語の取得に失敗しました。", err)
	}
	if vocab.UserID != userID {
		middleware.GetLogger(ctx).Warn("Vocabulary ownership check failed", "vocabulary_id", vocabID, "user_id", userID)
		return nil, model.NewAppError("FORBIDDEN", forbiddenMessage, "", model.ErrForbidden)
	}
	return vocab, nil
}

func toVocabularyList(vocabs []*model.Vocabulary) []*model.VocabularyResponse {
	list := make([]*model.VocabularyResponse, 0, len(vocabs))
	for _, v := range vocabs {
		list = append(list, model.NewVocabularyResponse(v))
	}
	return list
}

func vocabularyNotFoundError() error {
	return model.NewAppError("VOCABULARY_NOT_FOUND", "単語が見つかりません", "", model.ErrNotFound)
}

func invalidStudyStatusError(status model.StudyStatus) error {
	return model.NewAppError("INVALID_STUDY_STATUS", "学習状態が正しくありません: "+string(status), "studyStatus", model.ErrInvalidInput)
}
