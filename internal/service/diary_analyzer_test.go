package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKatakanaToHiragana(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "正常系: カタカナ", in: "ガッコウ", want: "がっこう"},
		{name: "正常系: 小書き文字とヴ", in: "ァィヴヶ", want: "ぁぃゔゖ"},
		{name: "正常系: 長音符は変換しない", in: "コーヒー", want: "こーひー"},
		{name: "正常系: ひらがなと漢字はそのまま", in: "がっこう学校", want: "がっこう学校"},
		{name: "正常系: 空文字", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KatakanaToHiragana(tt.in))
		})
	}
}

func TestKagomeAnalyzer_ExtractWords(t *testing.T) {
	analyzer, err := NewDiaryAnalyzer()
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("正常系: 原形で重複排除し出現順に返す", func(t *testing.T) {
		words := analyzer.ExtractWords(ctx, "学校に行きました。学校は楽しい。")

		byBase := make(map[string]int)
		for i, w := range words {
			byBase[w.BaseForm] = i
		}
		require.Contains(t, byBase, "学校")
		require.Contains(t, byBase, "行く")
		require.Contains(t, byBase, "楽しい")
		assert.Less(t, byBase["学校"], byBase["行く"])
		assert.Less(t, byBase["行く"], byBase["楽しい"])

		school := words[byBase["学校"]]
		assert.Equal(t, "がっこう", school.Hiragana)
		assert.Equal(t, "名詞", school.PartOfSpeech)
		assert.Equal(t, 2, school.Count)

		goVerb := words[byBase["行く"]]
		assert.Equal(t, "行き", goVerb.Surface)
		assert.Equal(t, "いく", goVerb.Hiragana)
		assert.Equal(t, "動詞", goVerb.PartOfSpeech)
	})

	t.Run("正常系: 助詞や記号は含まない", func(t *testing.T) {
		words := analyzer.ExtractWords(ctx, "は、が。")
		assert.Empty(t, words)
	})

	t.Run("正常系: 空文字", func(t *testing.T) {
		words := analyzer.ExtractWords(ctx, "")
		assert.NotNil(t, words)
		assert.Empty(t, words)
	})
}
