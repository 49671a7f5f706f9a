package service

import (
	"errors"

	"nihongo_diary/internal/model"
)

// internalError は原因エラーを ErrInternalServer と結合した 500 用の AppError を返します
func internalError(message string, err error) *model.AppError {
	return model.NewAppError("INTERNAL_SERVER_ERROR", message, "", errors.Join(model.ErrInternalServer, err))
}
