package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// MinimumWordsRequired はクイズを生成できる最小の単語数 (正解1 + 誤答3)
	MinimumWordsRequired = 4
	// WrongAnswersCount は1問あたりの誤答の数
	WrongAnswersCount = 3

	DefaultQuizCount = 10
	MinQuizCount     = 1
	MaxQuizCount     = 50
)

// 誤答候補の文字数差によるバケット (0: 同じ長さ, 1: ±1, 2: ±2, 3: それ以外)
const lengthBuckets = 4

type QuizService interface {
	GenerateQuiz(ctx context.Context, level model.JlptLevel, count int) ([]*model.QuizQuestionResponse, error)
	CheckAnswer(ctx context.Context, userID *uuid.UUID, req *model.QuizAnswerRequest) (*model.QuizResultResponse, error)
}

type quizService struct {
	db            *gorm.DB
	quizRepo      repository.QuizWordRepository
	reviewService ReviewService

	// rng はリクエスト間で共有されるため mu で保護する
	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuizService は QuizService を生成します。rng が nil の場合は現在時刻で初期化します。
func NewQuizService(db *gorm.DB, quizRepo repository.QuizWordRepository, reviewService ReviewService, rng *rand.Rand) QuizService {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &quizService{
		db:            db,
		quizRepo:      quizRepo,
		reviewService: reviewService,
		rng:           rng,
	}
}

// GenerateQuiz は指定レベルの4択クイズを生成します。
// 1問でも生成に失敗した場合は全体をエラーとします。
func (s *quizService) GenerateQuiz(ctx context.Context, level model.JlptLevel, count int) ([]*model.QuizQuestionResponse, error) {
	logger := middleware.GetLogger(ctx).With("level", level, "requested", count)

	if count < MinQuizCount || count > MaxQuizCount {
		return nil, model.NewAppError("INVALID_QUIZ_COUNT",
			fmt.Sprintf("Question count must be between %d and %d", MinQuizCount, MaxQuizCount), "count", model.ErrInvalidInput)
	}

	total, err := s.quizRepo.CountByLevel(ctx, s.db, level)
	if err != nil {
		return nil, internalError("単語数の取得に失敗しました。", err)
	}
	if total < MinimumWordsRequired {
		logger.Warn("Not enough words to build a quiz", "total", total)
		return nil, model.NewAppError("INSUFFICIENT_DATA",
			fmt.Sprintf("Insufficient words for JLPT %s (minimum required: %d, actual: %d)", level, MinimumWordsRequired, total),
			"level", model.ErrInvalidInput)
	}

	effective := count
	if total < int64(count+WrongAnswersCount) {
		effective = max(1, int(total)-WrongAnswersCount)
		logger.Warn("Requested quiz count exceeds available words, clamping", "total", total, "effective", effective)
	}

	questionWords, err := s.quizRepo.RandomSampleByLevel(ctx, s.db, level, effective)
	if err != nil {
		return nil, internalError("出題単語の取得に失敗しました。", err)
	}
	// 誤答候補のプールは1回の呼び出しで1度だけ読み込み、全問で共有する
	pool, err := s.quizRepo.AllByLevel(ctx, s.db, level)
	if err != nil {
		return nil, internalError("誤答候補の取得に失敗しました。", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	quizzes := make([]*model.QuizQuestionResponse, 0, len(questionWords))
	for _, word := range questionWords {
		quiz, err := s.buildQuestion(word, pool, level)
		if err != nil {
			logger.Error("Failed to build quiz question", "error", err, "quiz_word_id", word.ID.String())
			return nil, err
		}
		quizzes = append(quizzes, quiz)
	}

	logger.Info("Quiz generated", "count", len(quizzes))
	return quizzes, nil
}

// buildQuestion は s.mu を保持した状態で呼び出すこと
func (s *quizService) buildQuestion(word *model.QuizWord, pool []*model.QuizWord, level model.JlptLevel) (*model.QuizQuestionResponse, error) {
	quizType := model.QuizTypeKanjiToHiragana
	if s.rng.IntN(2) == 1 {
		quizType = model.QuizTypeHiraganaToMeaning
	}

	correct := quizType.AnswerOf(word)
	distractors := s.pickDistractors(word, pool, quizType, utf8.RuneCountInString(correct))
	if len(distractors) < WrongAnswersCount {
		return nil, model.NewAppError("DISTRACTOR_SHORTAGE",
			fmt.Sprintf("Failed to generate wrong answer choices (required: %d, actual: %d)", WrongAnswersCount, len(distractors)),
			"", model.ErrInternalServer)
	}

	choices := append([]string{correct}, distractors...)
	s.rng.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })

	return &model.QuizQuestionResponse{
		ID:            word.ID,
		Question:      questionPrompt(word, quizType, level),
		QuestionType:  quizType.QuestionText(),
		QuizType:      quizType,
		Choices:       choices,
		CorrectAnswer: correct,
		Level:         level,
		Explanation:   model.Explanation(word),
	}, nil
}

// pickDistractors は正解と文字数が近いものから順に誤答を選びます
func (s *quizService) pickDistractors(word *model.QuizWord, pool []*model.QuizWord, quizType model.QuizType, targetLen int) []string {
	var buckets [lengthBuckets][]string
	for _, candidate := range pool {
		if candidate.ID == word.ID {
			continue
		}
		answer := quizType.AnswerOf(candidate)
		diff := utf8.RuneCountInString(answer) - targetLen
		if diff < 0 {
			diff = -diff
		}
		idx := min(diff, lengthBuckets-1)
		buckets[idx] = append(buckets[idx], answer)
	}

	picked := make([]string, 0, WrongAnswersCount)
	for _, bucket := range buckets {
		s.rng.Shuffle(len(bucket), func(i, j int) { bucket[i], bucket[j] = bucket[j], bucket[i] })
		for _, answer := range bucket {
			if len(picked) == WrongAnswersCount {
				return picked
			}
			picked = append(picked, answer)
		}
	}
	return picked
}

// questionPrompt は出題文を組み立てます。N5/N4 の意味問題には読み仮名を添えます。
func questionPrompt(word *model.QuizWord, quizType model.QuizType, level model.JlptLevel) string {
	if quizType == model.QuizTypeHiraganaToMeaning && level.IsBeginner() {
		return fmt.Sprintf("%s（%s）", word.Word, word.Hiragana)
	}
	return word.Word
}

// CheckAnswer は回答を採点し、ログインユーザーであれば復習進捗を記録します
func (s *quizService) CheckAnswer(ctx context.Context, userID *uuid.UUID, req *model.QuizAnswerRequest) (*model.QuizResultResponse, error) {
	logger := middleware.GetLogger(ctx).With("quiz_word_id", req.QuestionID.String())

	word, err := s.quizRepo.FindByID(ctx, s.db, req.QuestionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("QUIZ_WORD_NOT_FOUND", "問題の単語が見つかりません。", "questionId", model.ErrNotFound)
		}
		return nil, internalError("問題の単語の取得に失敗しました。", err)
	}

	correct := req.QuizType.AnswerOf(word)
	isCorrect := strings.TrimSpace(req.Answer) == strings.TrimSpace(correct)

	if userID != nil {
		if err := s.reviewService.RecordResult(ctx, *userID, word.ID, isCorrect); err != nil {
			return nil, err
		}
	}

	logger.Info("Quiz answer checked", "is_correct", isCorrect, "authenticated", userID != nil)
	return &model.QuizResultResponse{
		IsCorrect:     isCorrect,
		CorrectAnswer: correct,
		Explanation:   model.Explanation(word),
	}, nil
}
