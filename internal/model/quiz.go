// internal/model/quiz.go
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WordSource はクイズ単語の出典です
type WordSource string

const (
	WordSourceJLPT           WordSource = "JLPT"
	WordSourceUserVocabulary WordSource = "USER_VOCABULARY"
	WordSourceUserDiary      WordSource = "USER_DIARY"
)

// JlptLevel は日本語能力試験のレベルです
type JlptLevel string

const (
	JlptN5 JlptLevel = "N5"
	JlptN4 JlptLevel = "N4"
	JlptN3 JlptLevel = "N3"
	JlptN2 JlptLevel = "N2"
	JlptN1 JlptLevel = "N1"
)

// AllJlptLevels は易しい順に並んだ全レベルです
var AllJlptLevels = []JlptLevel{JlptN5, JlptN4, JlptN3, JlptN2, JlptN1}

// Number は N5=1 ... N1=5 の難易度を返します
func (l JlptLevel) Number() int {
	for i, lv := range AllJlptLevels {
		if lv == l {
			return i + 1
		}
	}
	return 0
}

// IsBeginner は読み仮名のヒントを出すレベル (N5, N4) かどうかを返します
func (l JlptLevel) IsBeginner() bool {
	return l == JlptN5 || l == JlptN4
}

// ParseJlptLevel は "n5" や " N3 " のような文字列を JlptLevel に変換します
func ParseJlptLevel(s string) (JlptLevel, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if v == "" {
		return "", NewAppError("INVALID_LEVEL", "JLPT level is empty.", "level", ErrInvalidInput)
	}
	for _, lv := range AllJlptLevels {
		if string(lv) == v {
			return lv, nil
		}
	}
	return "", NewAppError("INVALID_LEVEL", fmt.Sprintf("Invalid JLPT level: %s", s), "level", ErrInvalidInput)
}

// QuizWord はクイズに出題される単語 (Word Store のレコード) です
type QuizWord struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Source             WordSource `gorm:"size:20;not null;index:idx_quiz_words_source"`
	SourceDetail       string     `gorm:"size:20;index:idx_quiz_words_source"`
	Word               string     `gorm:"size:100;not null"`
	Hiragana           string     `gorm:"size:100;not null"`
	Meaning            string     `gorm:"size:500;not null"`
	ExampleSentence    string     `gorm:"type:text"`
	ExampleTranslation string     `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (QuizWord) TableName() string {
	return "quiz_words"
}

// JlptLevel は JLPT 単語であればそのレベルを返します
func (w *QuizWord) JlptLevel() (JlptLevel, bool) {
	if w.Source != WordSourceJLPT {
		return "", false
	}
	lv, err := ParseJlptLevel(w.SourceDetail)
	if err != nil {
		return "", false
	}
	return lv, true
}

// QuizType は出題形式です
type QuizType string

const (
	QuizTypeKanjiToHiragana   QuizType = "KANJI_TO_HIRAGANA"
	QuizTypeHiraganaToMeaning QuizType = "HIRAGANA_TO_MEANING"
)

// QuestionText は出題形式ごとの問題文です
func (t QuizType) QuestionText() string {
	if t == QuizTypeKanjiToHiragana {
		return "What is the reading of this word?"
	}
	return "What is the meaning of this word?"
}

// AnswerOf は出題形式に応じた正解 (読み or 意味) を返します
func (t QuizType) AnswerOf(w *QuizWord) string {
	if t == QuizTypeKanjiToHiragana {
		return w.Hiragana
	}
	return w.Meaning
}

// QuizQuestionResponse は1問分のクイズです。永続化されません。
type QuizQuestionResponse struct {
	ID            uuid.UUID `json:"id"`
	Question      string    `json:"question"`
	QuestionType  string    `json:"questionType"`
	QuizType      QuizType  `json:"quizType"`
	Choices       []string  `json:"choices"`
	CorrectAnswer string    `json:"correctAnswer"`
	Level         JlptLevel `json:"level"`
	Explanation   string    `json:"explanation"`
}

// QuizAnswerRequest は回答チェックのリクエスト
type QuizAnswerRequest struct {
	QuestionID uuid.UUID `json:"questionId" validate:"required"`
	QuizType   QuizType  `json:"quizType" validate:"required,oneof=KANJI_TO_HIRAGANA HIRAGANA_TO_MEANING"`
	Answer     string    `json:"answer" validate:"required"`
}

// QuizResultResponse は回答チェックの結果
type QuizResultResponse struct {
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

// Explanation は解説文を組み立てます
func Explanation(w *QuizWord) string {
	return fmt.Sprintf("「%s」is read as「%s」and means「%s」.", w.Word, w.Hiragana, w.Meaning)
}

// ImportResult はJLPT単語インポートの結果
type ImportResult struct {
	Level    JlptLevel `json:"level"`
	Imported int       `json:"imported"`
	Skipped  int       `json:"skipped"`
}

// JlptWordCount はレベル別の登録単語数
type JlptWordCount struct {
	Levels map[JlptLevel]int64 `json:"levels"`
	Total  int64               `json:"total"`
}
