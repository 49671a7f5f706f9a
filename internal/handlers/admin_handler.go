package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"nihongo_diary/internal/model"
	"nihongo_diary/internal/service"
	"nihongo_diary/internal/webutil"
)

// maxImportFileBytes はアップロードできるインポートファイルの上限
const maxImportFileBytes = 10 << 20

type AdminHandler struct {
	service service.JlptImportService
	logger  *slog.Logger
}

func NewAdminHandler(s service.JlptImportService, logger *slog.Logger) *AdminHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminHandler{service: s, logger: logger}
}

// ImportJlptWords は POST /api/admin/jlpt/import?level=N5 (multipart "file")
func (h *AdminHandler) ImportJlptWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ImportJlptWords"))

	level, err := model.ParseJlptLevel(r.URL.Query().Get("level"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImportFileBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			webutil.HandleError(w, logger, model.NewAppError("FILE_TOO_LARGE", "Upload file is too large.", "file", model.ErrInvalidInput))
			return
		}
		logger.Warn("Failed to read upload file", slog.Any("error", err))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_IMPORT_FILE", "Upload file is required.", "file", model.ErrInvalidInput))
		return
	}
	defer file.Close()

	result, err := h.service.ImportFile(r.Context(), level, header.Filename, file)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("JLPT words imported",
		slog.String("level", string(level)),
		slog.String("filename", header.Filename),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
	)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

func (h *AdminHandler) CountJlptWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CountJlptWords"))

	counts, err := h.service.CountAllJlptWords(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, counts, logger)
}
