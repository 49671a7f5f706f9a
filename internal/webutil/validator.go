package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"username":           "ユーザー名",
	"password":           "パスワード",
	"passwordConfirm":    "パスワード(確認)",
	"currentPassword":    "現在のパスワード",
	"newPassword":        "新しいパスワード",
	"newPasswordConfirm": "新しいパスワード(確認)",
	"email":              "メールアドレス",
	"nickname":           "ニックネーム",
	"diaryDate":          "日付",
	"title":              "タイトル",
	"content":            "本文",
	"isPublic":           "公開設定",
	"word":               "単語",
	"hiragana":           "ひらがな",
	"meaning":            "意味",
	"exampleSentence":    "例文",
	"exampleTranslation": "例文翻訳",
	"studyStatus":        "学習状況",
	"questionId":         "問題ID",
	"quizType":           "出題形式",
	"answer":             "回答",
}

// translateField はjsonタグ名を日本語のフィールド名に変換します
func translateField(field string) string {
	if translated, ok := fieldNameTranslations[field]; ok {
		return translated
	}
	return field
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別のエラーメッセージを上書き
	// withParam が true のタグは {1} にタグのパラメータ (例: max=100 の 100) が入る
	register := func(tag, msg string, withParam bool) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			params := []string{translateField(fe.Field())}
			if withParam {
				params = append(params, fe.Param())
			}
			t, _ := ut.T(tag, params...)
			return t
		})
	}

	register("required", "{0}は必須項目です。", false)
	register("email", "{0}は有効なメールアドレス形式ではありません。", false)
	register("min", "{0}は{1}文字以上で入力してください。", true)
	register("max", "{0}は{1}文字以下で入力してください。", true)
	register("oneof", "{0}は[{1}]のいずれかを指定してください。", true)
	register("datetime", "{0}は{1}の形式で入力してください。", true)
}
