package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"nihongo_diary/internal/model"
	repomocks "nihongo_diary/internal/repository/mocks"
	svcmocks "nihongo_diary/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// makeQuizWords は読み・意味が重複しない n 件のJLPT単語を作ります
func makeQuizWords(level model.JlptLevel, n int) []*model.QuizWord {
	words := make([]*model.QuizWord, n)
	for i := range words {
		words[i] = &model.QuizWord{
			ID:           uuid.New(),
			Source:       model.WordSourceJLPT,
			SourceDetail: string(level),
			Word:         fmt.Sprintf("語%02d", i),
			Hiragana:     fmt.Sprintf("ご%02d", i),
			Meaning:      fmt.Sprintf("meaning %02d", i),
		}
	}
	return words
}

func newTestQuizService(repo *repomocks.QuizWordRepository, review ReviewService) *quizService {
	return NewQuizService(nil, repo, review, rand.New(rand.NewPCG(1, 2))).(*quizService)
}

func Test_quizService_GenerateQuiz(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(repomocks.QuizWordRepository)
	s := newTestQuizService(mockRepo, nil)

	words20 := makeQuizWords(model.JlptN5, 20)
	words6 := makeQuizWords(model.JlptN5, 6)
	words4 := makeQuizWords(model.JlptN5, 4)

	tests := []struct {
		name      string
		level     model.JlptLevel
		count     int
		setupMock func(m *repomocks.QuizWordRepository)
		wantCode  string
		wantErr   error
		wantLen   int
	}{
		{
			name:  "正常系: 単語が十分ある場合は指定数を生成",
			level: model.JlptN5, count: 5,
			setupMock: func(m *repomocks.QuizWordRepository) {
				m.On("CountByLevel", ctx, mock.Anything, model.JlptN5).Return(int64(20), nil).Once()
				m.On("RandomSampleByLevel", ctx, mock.Anything, model.JlptN5, 5).Return(words20[:5], nil).Once()
				m.On("AllByLevel", ctx, mock.Anything, model.JlptN5).Return(words20, nil).Once()
			},
			wantLen: 5,
		},
		{
			name:  "正常系: 単語数が不足する場合は total-3 に切り詰める",
			level: model.JlptN5, count: 10,
			setupMock: func(m *repomocks.QuizWordRepository) {
				m.On("CountByLevel", ctx, mock.Anything, model.JlptN5).Return(int64(6), nil).Once()
				m.On("RandomSampleByLevel", ctx, mock.Anything, model.JlptN5, 3).Return(words6[:3], nil).Once()
				m.On("AllByLevel", ctx, mock.Anything, model.JlptN5).Return(words6, nil).Once()
			},
			wantLen: 3,
		},
		{
			name:  "正常系: 最小単語数ちょうどの場合は1問",
			level: model.JlptN5, count: 10,
			setupMock: func(m *repomocks.QuizWordRepository) {
				m.On("CountByLevel", ctx, mock.Anything, model.JlptN5).Return(int64(4), nil).Once()
				m.On("RandomSampleByLevel", ctx, mock.Anything, model.JlptN5, 1).Return(words4[:1], nil).Once()
				m.On("AllByLevel", ctx, mock.Anything, model.JlptN5).Return(words4, nil).Once()
			},
			wantLen: 1,
		},
		{
			name:  "異常系: 単語数が最小数未満",
			level: model.JlptN1, count: 10,
			setupMock: func(m *repomocks.QuizWordRepository) {
				m.On("CountByLevel", ctx, mock.Anything, model.JlptN1).Return(int64(3), nil).Once()
			},
			wantCode: "INSUFFICIENT_DATA",
			wantErr:  model.ErrInvalidInput,
		},
		{
			name:      "異常系: 出題数が0",
			level:     model.JlptN5, count: 0,
			setupMock: func(m *repomocks.QuizWordRepository) {},
			wantCode:  "INVALID_QUIZ_COUNT",
			wantErr:   model.ErrInvalidInput,
		},
		{
			name:      "異常系: 出題数が上限超過",
			level:     model.JlptN5, count: 51,
			setupMock: func(m *repomocks.QuizWordRepository) {},
			wantCode:  "INVALID_QUIZ_COUNT",
			wantErr:   model.ErrInvalidInput,
		},
		{
			name:  "異常系: 誤答候補が不足",
			level: model.JlptN5, count: 1,
			setupMock: func(m *repomocks.QuizWordRepository) {
				// 件数取得後に単語が削除され、プールが3件しかないケース
				m.On("CountByLevel", ctx, mock.Anything, model.JlptN5).Return(int64(4), nil).Once()
				m.On("RandomSampleByLevel", ctx, mock.Anything, model.JlptN5, 1).Return(words4[:1], nil).Once()
				m.On("AllByLevel", ctx, mock.Anything, model.JlptN5).Return(words4[:3], nil).Once()
			},
			wantCode: "DISTRACTOR_SHORTAGE",
			wantErr:  model.ErrInternalServer,
		},
		{
			name:  "異常系: 件数取得でDBエラー",
			level: model.JlptN5, count: 10,
			setupMock: func(m *repomocks.QuizWordRepository) {
				m.On("CountByLevel", ctx, mock.Anything, model.JlptN5).Return(int64(0), errors.New("db error")).Once()
			},
			wantCode: "INTERNAL_SERVER_ERROR",
			wantErr:  model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.Mock = mock.Mock{}
			tt.setupMock(mockRepo)

			got, err := s.GenerateQuiz(ctx, tt.level, tt.count)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Len(t, got, tt.wantLen)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func Test_quizService_GenerateQuiz_QuestionShape(t *testing.T) {
	ctx := context.Background()
	words := makeQuizWords(model.JlptN5, 20)
	byID := make(map[uuid.UUID]*model.QuizWord, len(words))
	for _, w := range words {
		byID[w.ID] = w
	}

	for _, level := range []model.JlptLevel{model.JlptN5, model.JlptN3} {
		t.Run(fmt.Sprintf("正常系: %s の問題形式", level), func(t *testing.T) {
			mockRepo := new(repomocks.QuizWordRepository)
			mockRepo.On("CountByLevel", ctx, mock.Anything, level).Return(int64(len(words)), nil).Once()
			mockRepo.On("RandomSampleByLevel", ctx, mock.Anything, level, 10).Return(words[:10], nil).Once()
			mockRepo.On("AllByLevel", ctx, mock.Anything, level).Return(words, nil).Once()
			s := newTestQuizService(mockRepo, nil)

			got, err := s.GenerateQuiz(ctx, level, 10)
			require.NoError(t, err)
			require.Len(t, got, 10)

			for _, q := range got {
				word, ok := byID[q.ID]
				require.True(t, ok, "question id must be a word id")
				assert.Equal(t, level, q.Level)
				assert.Len(t, q.Choices, MinimumWordsRequired)

				// 正解は選択肢にちょうど1回だけ含まれる
				occurrences := 0
				for _, c := range q.Choices {
					if c == q.CorrectAnswer {
						occurrences++
					}
				}
				assert.Equal(t, 1, occurrences)
				assert.Equal(t, q.QuizType.AnswerOf(word), q.CorrectAnswer)
				assert.Equal(t, q.QuizType.QuestionText(), q.QuestionType)
				assert.Equal(t, model.Explanation(word), q.Explanation)

				if q.QuizType == model.QuizTypeHiraganaToMeaning && level.IsBeginner() {
					assert.Equal(t, word.Word+"（"+word.Hiragana+"）", q.Question)
				} else {
					assert.Equal(t, word.Word, q.Question)
				}
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func Test_quizService_GenerateQuiz_Concurrent(t *testing.T) {
	ctx := context.Background()
	words := makeQuizWords(model.JlptN4, 12)
	mockRepo := new(repomocks.QuizWordRepository)
	mockRepo.On("CountByLevel", ctx, mock.Anything, model.JlptN4).Return(int64(len(words)), nil)
	mockRepo.On("RandomSampleByLevel", ctx, mock.Anything, model.JlptN4, 5).Return(words[:5], nil)
	mockRepo.On("AllByLevel", ctx, mock.Anything, model.JlptN4).Return(words, nil)
	s := newTestQuizService(mockRepo, nil)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			quizzes, err := s.GenerateQuiz(ctx, model.JlptN4, 5)
			if err == nil && len(quizzes) != 5 {
				err = fmt.Errorf("unexpected quiz count: %d", len(quizzes))
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func Test_quizService_GenerateQuiz_ShufflesChoices(t *testing.T) {
	ctx := context.Background()
	words := makeQuizWords(model.JlptN5, 10)
	mockRepo := new(repomocks.QuizWordRepository)
	mockRepo.On("CountByLevel", ctx, mock.Anything, model.JlptN5).Return(int64(len(words)), nil)
	mockRepo.On("RandomSampleByLevel", ctx, mock.Anything, model.JlptN5, 1).Return(words[:1], nil)
	mockRepo.On("AllByLevel", ctx, mock.Anything, model.JlptN5).Return(words, nil)
	s := newTestQuizService(mockRepo, nil)

	// 正解の位置ごとの出現回数
	positions := make(map[int]int)
	for i := 0; i < 200; i++ {
		got, err := s.GenerateQuiz(ctx, model.JlptN5, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		q := got[0]
		for idx, c := range q.Choices {
			if c == q.CorrectAnswer {
				positions[idx]++
			}
		}
	}

	assert.Len(t, positions, MinimumWordsRequired, "correct answer should appear at every index: %v", positions)
	for idx, n := range positions {
		assert.Less(t, n, 200, "correct answer stuck at index %d", idx)
	}
}

func Test_quizService_pickDistractors(t *testing.T) {
	s := newTestQuizService(nil, nil)
	question := &model.QuizWord{ID: uuid.New(), Hiragana: "ねこ"}
	pool := []*model.QuizWord{
		question,
		{ID: uuid.New(), Hiragana: "いぬ"},
		{ID: uuid.New(), Hiragana: "とり"},
		{ID: uuid.New(), Hiragana: "さる"},
		{ID: uuid.New(), Hiragana: "うさぎ"},
		{ID: uuid.New(), Hiragana: "かめ"},
		{ID: uuid.New(), Hiragana: "ちょうちょう"},
	}

	t.Run("正常系: 文字数が同じ候補を優先し、出題単語は含まない", func(t *testing.T) {
		got := s.pickDistractors(question, pool, model.QuizTypeKanjiToHiragana, 2)
		require.Len(t, got, WrongAnswersCount)
		assert.NotContains(t, got, "ねこ")
		for _, answer := range got {
			assert.Contains(t, []string{"いぬ", "とり", "さる", "かめ"}, answer)
		}
	})

	t.Run("正常系: 近い長さが足りなければ遠い長さで補う", func(t *testing.T) {
		small := []*model.QuizWord{question, pool[1], pool[4], pool[6]}
		got := s.pickDistractors(question, small, model.QuizTypeKanjiToHiragana, 2)
		assert.ElementsMatch(t, []string{"いぬ", "うさぎ", "ちょうちょう"}, got)
	})

	t.Run("正常系: ±1 の候補を ±2 の候補より先に使う", func(t *testing.T) {
		mixed := []*model.QuizWord{
			question,
			{ID: uuid.New(), Hiragana: "ひまわり"},   // ±2
			{ID: uuid.New(), Hiragana: "いぬ"},     // 同じ長さ
			{ID: uuid.New(), Hiragana: "かまきり"},   // ±2
			{ID: uuid.New(), Hiragana: "ちょうちょう"}, // それ以外
			{ID: uuid.New(), Hiragana: "うさぎ"},    // ±1
		}
		for i := 0; i < 20; i++ {
			got := s.pickDistractors(question, mixed, model.QuizTypeKanjiToHiragana, 2)
			require.Len(t, got, WrongAnswersCount)
			assert.Contains(t, got, "いぬ")
			assert.Contains(t, got, "うさぎ")
			assert.NotContains(t, got, "ちょうちょう")

			near := 0
			for _, answer := range got {
				if answer == "ひまわり" || answer == "かまきり" {
					near++
				}
			}
			assert.Equal(t, 1, near)
		}
	})

	t.Run("異常系: 候補が足りなければ不足したまま返す", func(t *testing.T) {
		got := s.pickDistractors(question, pool[:2], model.QuizTypeKanjiToHiragana, 2)
		assert.Equal(t, []string{"いぬ"}, got)
	})
}

func Test_quizService_CheckAnswer(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(repomocks.QuizWordRepository)
	mockReview := new(svcmocks.ReviewService)
	s := newTestQuizService(mockRepo, mockReview)

	word := &model.QuizWord{ID: uuid.New(), Word: "学校", Hiragana: "がっこう", Meaning: "school"}
	userID := uuid.New()

	tests := []struct {
		name        string
		userID      *uuid.UUID
		req         *model.QuizAnswerRequest
		setupMock   func()
		wantCorrect bool
		wantErr     error
	}{
		{
			name:   "正常系: 未ログインで正解 (前後の空白は無視)",
			userID: nil,
			req:    &model.QuizAnswerRequest{QuestionID: word.ID, QuizType: model.QuizTypeKanjiToHiragana, Answer: " がっこう "},
			setupMock: func() {
				mockRepo.On("FindByID", ctx, mock.Anything, word.ID).Return(word, nil).Once()
			},
			wantCorrect: true,
		},
		{
			name:   "正常系: ログイン中の不正解は進捗に記録される",
			userID: &userID,
			req:    &model.QuizAnswerRequest{QuestionID: word.ID, QuizType: model.QuizTypeHiraganaToMeaning, Answer: "hospital"},
			setupMock: func() {
				mockRepo.On("FindByID", ctx, mock.Anything, word.ID).Return(word, nil).Once()
				mockReview.On("RecordResult", ctx, userID, word.ID, false).Return(nil).Once()
			},
			wantCorrect: false,
		},
		{
			name:   "正常系: ログイン中の正解は進捗に記録される",
			userID: &userID,
			req:    &model.QuizAnswerRequest{QuestionID: word.ID, QuizType: model.QuizTypeHiraganaToMeaning, Answer: "school"},
			setupMock: func() {
				mockRepo.On("FindByID", ctx, mock.Anything, word.ID).Return(word, nil).Once()
				mockReview.On("RecordResult", ctx, userID, word.ID, true).Return(nil).Once()
			},
			wantCorrect: true,
		},
		{
			name:   "異常系: 単語が存在しない",
			userID: nil,
			req:    &model.QuizAnswerRequest{QuestionID: word.ID, QuizType: model.QuizTypeKanjiToHiragana, Answer: "x"},
			setupMock: func() {
				mockRepo.On("FindByID", ctx, mock.Anything, word.ID).Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name:   "異常系: 進捗の記録に失敗",
			userID: &userID,
			req:    &model.QuizAnswerRequest{QuestionID: word.ID, QuizType: model.QuizTypeKanjiToHiragana, Answer: "がっこう"},
			setupMock: func() {
				mockRepo.On("FindByID", ctx, mock.Anything, word.ID).Return(word, nil).Once()
				mockReview.On("RecordResult", ctx, userID, word.ID, true).Return(internalError("failed", errors.New("db error"))).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.Mock = mock.Mock{}
			mockReview.Mock = mock.Mock{}
			tt.setupMock()

			got, err := s.CheckAnswer(ctx, tt.userID, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCorrect, got.IsCorrect)
				assert.Equal(t, tt.req.QuizType.AnswerOf(word), got.CorrectAnswer)
				assert.Equal(t, model.Explanation(word), got.Explanation)
			}
			mockRepo.AssertExpectations(t)
			mockReview.AssertExpectations(t)
		})
	}
}
