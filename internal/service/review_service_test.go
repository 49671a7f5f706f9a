package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"nihongo_diary/internal/model"
	repomocks "nihongo_diary/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestReviewService(t *testing.T, repo *repomocks.ProgressRepository) *reviewService {
	s := NewReviewService(setupTestDB(t), repo, testConfig()).(*reviewService)
	s.now = func() time.Time { return fixedNow }
	return s
}

func Test_reviewService_GetReviewWords(t *testing.T) {
	ctx := context.Background()
	mockProgRepo := new(repomocks.ProgressRepository)
	s := newTestReviewService(t, mockProgRepo)

	userID := uuid.New()
	wordID1 := uuid.New()
	wordID2 := uuid.New()

	// リポジトリが返す進捗データの準備
	mockProgresses := []*model.QuizProgress{
		{
			ID: uuid.New(), UserID: userID, QuizWordID: wordID1, Level: model.Level1,
			QuizWord: &model.QuizWord{ID: wordID1, Word: "学校", Hiragana: "がっこう", Meaning: "school"},
		},
		{
			ID: uuid.New(), UserID: userID, QuizWordID: wordID2, Level: model.Level2, CorrectCount: 2,
			QuizWord: &model.QuizWord{ID: wordID2, Word: "先生", Hiragana: "せんせい", Meaning: "teacher"},
		},
		// QuizWordがnilのケース
		{ID: uuid.New(), UserID: userID, QuizWordID: uuid.New(), Level: model.Level1},
	}

	tests := []struct {
		name          string
		setupMock     func(m *repomocks.ProgressRepository)
		wantErr       error
		wantRespWords []string
	}{
		{
			name: "正常系: 複数件の復習対象単語取得成功",
			setupMock: func(m *repomocks.ProgressRepository) {
				m.On("FindReviewable", ctx, mock.Anything, userID, fixedNow, 10).Return(mockProgresses, nil).Once()
			},
			wantRespWords: []string{"学校", "先生"}, // QuizWordがnilのものはスキップされる
		},
		{
			name: "正常系: 復習対象単語が0件",
			setupMock: func(m *repomocks.ProgressRepository) {
				m.On("FindReviewable", ctx, mock.Anything, userID, fixedNow, 10).Return([]*model.QuizProgress{}, nil).Once()
			},
			wantRespWords: []string{},
		},
		{
			name: "異常系: リポジトリでDBエラー",
			setupMock: func(m *repomocks.ProgressRepository) {
				m.On("FindReviewable", ctx, mock.Anything, userID, fixedNow, 10).Return(nil, errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProgRepo.Mock = mock.Mock{}
			tt.setupMock(mockProgRepo)

			got, err := s.GetReviewWords(ctx, userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				words := make([]string, 0, len(got))
				for _, r := range got {
					words = append(words, r.Word)
				}
				assert.Equal(t, tt.wantRespWords, words)
			}
			mockProgRepo.AssertExpectations(t)
		})
	}
}

func Test_reviewService_GetReviewWordsCount(t *testing.T) {
	ctx := context.Background()
	mockProgRepo := new(repomocks.ProgressRepository)
	s := newTestReviewService(t, mockProgRepo)
	userID := uuid.New()

	mockProgRepo.On("FindReviewable", ctx, mock.Anything, userID, fixedNow, reviewCountLimit).
		Return([]*model.QuizProgress{{ID: uuid.New()}, {ID: uuid.New()}}, nil).Once()

	count, err := s.GetReviewWordsCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	mockProgRepo.AssertExpectations(t)
}

func Test_reviewService_RecordResult(t *testing.T) {
	ctx := context.Background()
	mockProgRepo := new(repomocks.ProgressRepository)
	s := newTestReviewService(t, mockProgRepo)

	userID := uuid.New()
	wordID := uuid.New()

	tests := []struct {
		name      string
		isCorrect bool
		setupMock func(m *repomocks.ProgressRepository)
		wantErr   error
	}{
		{
			name:      "正常系: 初回正解で進捗を作成 (Level2, 3日後)",
			isCorrect: true,
			setupMock: func(m *repomocks.ProgressRepository) {
				m.On("FindByUserAndWord", ctx, mock.Anything, userID, wordID).Return(nil, model.ErrNotFound).Once()
				m.On("Create", ctx, mock.Anything, mock.MatchedBy(func(p *model.QuizProgress) bool {
					return p.UserID == userID && p.QuizWordID == wordID && p.Level == model.Level2 &&
						p.NextReviewDate.Equal(fixedNow.AddDate(0, 0, 3)) && p.CorrectCount == 1 && p.WrongCount == 0
				})).Return(nil).Once()
			},
		},
		{
			name:      "正常系: 初回不正解で進捗を作成 (Level1, 翌日)",
			isCorrect: false,
			setupMock: func(m *repomocks.ProgressRepository) {
				m.On("FindByUserAndWord", ctx, mock.Anything, userID, wordID).Return(nil, model.ErrNotFound).Once()
				m.On("Create", ctx, mock.Anything, mock.MatchedBy(func(p *model.QuizProgress) bool {
					return p.Level == model.Level1 && p.NextReviewDate.Equal(fixedNow.AddDate(0, 0, 1)) && p.WrongCount == 1
				})).Return(nil).Once()
			},
		},
		{
			name:      "正常系: 既存進捗の正解でレベルアップ",
			isCorrect: true,
			setupMock: func(m *repomocks.ProgressRepository) {
				existing := &model.QuizProgress{ID: uuid.New(), UserID: userID, QuizWordID: wordID, Level: model.Level2, CorrectCount: 3}
				m.On("FindByUserAndWord", ctx, mock.Anything, userID, wordID).Return(existing, nil).Once()
				m.On("Update", ctx, mock.Anything, mock.MatchedBy(func(p *model.QuizProgress) bool {
					return p.Level == model.Level3 && p.NextReviewDate.Equal(fixedNow.AddDate(0, 0, 7)) && p.CorrectCount == 4
				})).Return(nil).Once()
			},
		},
		{
			name:      "正常系: 既存進捗の不正解でLevel1に戻る",
			isCorrect: false,
			setupMock: func(m *repomocks.ProgressRepository) {
				existing := &model.QuizProgress{ID: uuid.New(), UserID: userID, QuizWordID: wordID, Level: model.Level3, WrongCount: 1}
				m.On("FindByUserAndWord", ctx, mock.Anything, userID, wordID).Return(existing, nil).Once()
				m.On("Update", ctx, mock.Anything, mock.MatchedBy(func(p *model.QuizProgress) bool {
					return p.Level == model.Level1 && p.NextReviewDate.Equal(fixedNow.AddDate(0, 0, 1)) && p.WrongCount == 2
				})).Return(nil).Once()
			},
		},
		{
			name:      "異常系: 進捗の検索でDBエラー",
			isCorrect: true,
			setupMock: func(m *repomocks.ProgressRepository) {
				m.On("FindByUserAndWord", ctx, mock.Anything, userID, wordID).Return(nil, errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
		{
			name:      "異常系: 進捗の作成に失敗",
			isCorrect: true,
			setupMock: func(m *repomocks.ProgressRepository) {
				m.On("FindByUserAndWord", ctx, mock.Anything, userID, wordID).Return(nil, model.ErrNotFound).Once()
				m.On("Create", ctx, mock.Anything, mock.AnythingOfType("*model.QuizProgress")).Return(errors.New("insert failed")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProgRepo.Mock = mock.Mock{}
			tt.setupMock(mockProgRepo)

			err := s.RecordResult(ctx, userID, wordID, tt.isCorrect)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mockProgRepo.AssertExpectations(t)
		})
	}
}

func Test_calculateNextProgress(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name      string
		progress  *model.QuizProgress
		isCorrect bool
		wantLevel model.ProgressLevel
		wantDays  int
	}{
		{"正常系: 新規で正解", nil, true, model.Level2, 3},
		{"正常系: 新規で不正解", nil, false, model.Level1, 1},
		{"正常系: Level1で正解", &model.QuizProgress{Level: model.Level1}, true, model.Level2, 3},
		{"正常系: Level2で正解", &model.QuizProgress{Level: model.Level2}, true, model.Level3, 7},
		{"正常系: Level3で正解はLevel3を維持", &model.QuizProgress{Level: model.Level3}, true, model.Level3, 14},
		{"正常系: Level3で不正解", &model.QuizProgress{Level: model.Level3}, false, model.Level1, 1},
		{"異常系: 不正なレベルはLevel1に戻す", &model.QuizProgress{Level: model.ProgressLevel(9)}, true, model.Level1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, next := calculateNextProgress(tt.progress, tt.isCorrect, fixedNow, logger)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, fixedNow.AddDate(0, 0, tt.wantDays), next)
		})
	}
}
