package service

import (
	"context"
	"strings"

	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// DiaryAnalyzer は日記本文から学習対象の単語を抽出します
type DiaryAnalyzer interface {
	ExtractWords(ctx context.Context, text string) []*model.DiaryWord
}

// 抽出対象の品詞 (IPA辞書の第1品詞)
var targetPartsOfSpeech = map[string]bool{
	"名詞":  true,
	"動詞":  true,
	"形容詞": true,
	"副詞":  true,
}

// 学習対象にならない品詞細分類
var skippedSubPartsOfSpeech = map[string]bool{
	"非自立": true,
	"数":   true,
	"代名詞": true,
	"接尾":  true,
}

// IPA辞書の素性: 0:品詞 1:品詞細分類1 ... 6:原形 7:読み
const (
	featurePOS      = 0
	featureSubPOS   = 1
	featureBaseForm = 6
	featureReading  = 7
)

type kagomeAnalyzer struct {
	t *tokenizer.Tokenizer
}

// NewDiaryAnalyzer は IPA 辞書で形態素解析器を初期化します
func NewDiaryAnalyzer() (DiaryAnalyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &kagomeAnalyzer{t: t}, nil
}

// ExtractWords は名詞・動詞・形容詞・副詞を原形で重複排除し、出現順に返します
func (a *kagomeAnalyzer) ExtractWords(ctx context.Context, text string) []*model.DiaryWord {
	logger := middleware.GetLogger(ctx)

	words := make([]*model.DiaryWord, 0)
	index := make(map[string]*model.DiaryWord)

	for _, token := range a.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY || strings.TrimSpace(token.Surface) == "" {
			continue
		}
		features := token.Features()
		pos := feature(features, featurePOS)
		if !targetPartsOfSpeech[pos] || skippedSubPartsOfSpeech[feature(features, featureSubPOS)] {
			continue
		}

		base := feature(features, featureBaseForm)
		if base == "" {
			base = token.Surface
		}
		if w, ok := index[base]; ok {
			w.Count++
			continue
		}

		reading := feature(features, featureReading)
		if base != token.Surface {
			// 活用形の読みではなく原形の読みを使う
			reading = a.readingOf(base)
		}
		if reading == "" {
			reading = token.Surface
		}

		w := &model.DiaryWord{
			Surface:      token.Surface,
			BaseForm:     base,
			Hiragana:     KatakanaToHiragana(reading),
			PartOfSpeech: pos,
			Count:        1,
		}
		index[base] = w
		words = append(words, w)
	}

	logger.Debug("Extracted diary words", "count", len(words))
	return words
}

// readingOf は語を再度解析して読み (カタカナ) を連結します
func (a *kagomeAnalyzer) readingOf(word string) string {
	var b strings.Builder
	for _, token := range a.t.Tokenize(word) {
		r := feature(token.Features(), featureReading)
		if r == "" {
			r = token.Surface
		}
		b.WriteString(r)
	}
	return b.String()
}

func feature(features []string, i int) string {
	if len(features) <= i || features[i] == "*" {
		return ""
	}
	return features[i]
}

// KatakanaToHiragana はカタカナ (ァ..ヶ) をひらがなに変換します。長音符などはそのまま残します。
func KatakanaToHiragana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'ァ' && r <= 'ヶ' {
			return r - ('ァ' - 'ぁ')
		}
		return r
	}, s)
}
