// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewWordResponse は復習単語リストのレスポンスDTO
type ReviewWordResponse struct {
	QuizWordID     uuid.UUID `json:"quizWordId"`
	Word           string    `json:"word"`
	Hiragana       string    `json:"hiragana"`
	Meaning        string    `json:"meaning"` // 正解表示用に含める
	Level          int       `json:"level"`
	NextReviewDate time.Time `json:"nextReviewDate"`
	CorrectCount   int       `json:"correctCount"`
	WrongCount     int       `json:"wrongCount"`
}
