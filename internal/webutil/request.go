package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"nihongo_diary/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// maxJSONBodyBytes はJSONリクエストボディの上限です
const maxJSONBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラーにします。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディが空です。", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", errors.Join(model.ErrInvalidInput, err))
	}
	return nil
}

// ValidateStruct は validator によるバリデーションを行い、最初のエラーを日本語の AppError に変換します
func ValidateStruct(logger *slog.Logger, req interface{}) error {
	err := Validator.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", "errors", validationErrors.Error())
		firstErr := validationErrors[0]
		return model.NewAppError(
			"VALIDATION_ERROR",
			firstErr.Translate(Trans),
			firstErr.Field(), // エラーが発生したフィールド (jsonタグ名)
			model.ErrInvalidInput,
		)
	}
	// バリデーションライブラリ自体のエラーなど、予期せぬエラー
	logger.Error("Unexpected error during validation", "error", err)
	return err
}

// DecodeAndValidate は DecodeJSONBody と ValidateStruct をまとめて行います
func DecodeAndValidate(r *http.Request, logger *slog.Logger, dst interface{}) error {
	if err := DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		return err
	}
	return ValidateStruct(logger, dst)
}

// URLParamUUID はURLパラメータをUUIDとして取得します
func URLParamUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
	}
	return id, nil
}

// QueryInt はクエリパラメータを整数として取得します。未指定の場合は def を返します。
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewAppError("INVALID_QUERY_PARAM", name+"は整数で指定してください。", name, model.ErrInvalidInput)
	}
	return v, nil
}
