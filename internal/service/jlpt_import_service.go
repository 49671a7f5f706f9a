package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// 列: 単語, 読み, 意味, 例文, 例文の訳
const (
	colWord = iota
	colHiragana
	colMeaning
	colExampleSentence
	colExampleTranslation
)

const emptyMeaning = "-"

var headerKeywords = []string{"expression", "word", "kanji", "単語"}

type JlptImportService interface {
	ImportFile(ctx context.Context, level model.JlptLevel, filename string, r io.Reader) (*model.ImportResult, error)
	ImportDirectory(ctx context.Context, dir string) ([]*model.ImportResult, error)
	CountJlptWords(ctx context.Context, level model.JlptLevel) (int64, error)
	CountAllJlptWords(ctx context.Context) (*model.JlptWordCount, error)
}

type jlptImportService struct {
	db       *gorm.DB
	quizRepo repository.QuizWordRepository
}

func NewJlptImportService(db *gorm.DB, quizRepo repository.QuizWordRepository) JlptImportService {
	return &jlptImportService{
		db:       db,
		quizRepo: quizRepo,
	}
}

// ImportFile は CSV または XLSX の単語リストを指定レベルの JLPT 単語として登録します
func (s *jlptImportService) ImportFile(ctx context.Context, level model.JlptLevel, filename string, r io.Reader) (*model.ImportResult, error) {
	logger := middleware.GetLogger(ctx).With("level", level, "filename", filename)

	rows, err := readRows(filename, r)
	if err != nil {
		logger.Warn("Failed to parse import file", "error", err)
		return nil, model.NewAppError("INVALID_IMPORT_FILE", "ファイルを読み込めませんでした。", "file", errors.Join(model.ErrInvalidInput, err))
	}
	if len(rows) == 0 {
		return nil, model.NewAppError("EMPTY_IMPORT_FILE", "CSV file is empty.", "file", model.ErrInvalidInput)
	}
	if isHeaderRow(rows[0]) {
		rows = rows[1:]
	}

	result := &model.ImportResult{Level: level}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		words := make([]*model.QuizWord, 0, len(rows))
		seen := make(map[string]bool)

		for i, row := range rows {
			if len(row) < 2 {
				logger.Warn("Skipping row: insufficient columns", "row", i+1, "columns", len(row))
				result.Skipped++
				continue
			}
			word := cell(row, colWord)
			hiragana := cell(row, colHiragana)
			if word == "" || hiragana == "" {
				logger.Warn("Skipping row: required fields are empty", "row", i+1)
				result.Skipped++
				continue
			}

			key := word + "\x00" + hiragana
			if seen[key] {
				result.Skipped++
				continue
			}
			exists, err := s.quizRepo.ExistsJlptWord(ctx, tx, level, word, hiragana)
			if err != nil {
				return internalError("単語の重複確認に失敗しました。", err)
			}
			if exists {
				logger.Debug("Skipping row: word already exists", "row", i+1, "word", word)
				result.Skipped++
				continue
			}
			seen[key] = true

			meaning := cell(row, colMeaning)
			if meaning == "" {
				meaning = emptyMeaning
			}
			words = append(words, &model.QuizWord{
				ID:                 uuid.New(),
				Source:             model.WordSourceJLPT,
				SourceDetail:       string(level),
				Word:               word,
				Hiragana:           hiragana,
				Meaning:            meaning,
				ExampleSentence:    cell(row, colExampleSentence),
				ExampleTranslation: cell(row, colExampleTranslation),
			})
		}

		if err := s.quizRepo.CreateInBatches(ctx, tx, words); err != nil {
			return internalError("単語の登録に失敗しました。", err)
		}
		result.Imported = len(words)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("JLPT word registration completed", "imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}

// ImportDirectory は dir 内の n5.csv ... n1.csv を読み込みます。存在しないファイルは無視します。
func (s *jlptImportService) ImportDirectory(ctx context.Context, dir string) ([]*model.ImportResult, error) {
	logger := middleware.GetLogger(ctx).With("dir", dir)
	results := make([]*model.ImportResult, 0, len(model.AllJlptLevels))

	for _, level := range model.AllJlptLevels {
		path := filepath.Join(dir, strings.ToLower(string(level))+".csv")
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Debug("JLPT data file not found, skipping", "path", path)
				continue
			}
			return results, fmt.Errorf("open %s: %w", path, err)
		}

		result, err := s.ImportFile(ctx, level, path, f)
		f.Close()
		if err != nil {
			return results, fmt.Errorf("import %s: %w", path, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *jlptImportService) CountJlptWords(ctx context.Context, level model.JlptLevel) (int64, error) {
	count, err := s.quizRepo.CountByLevel(ctx, s.db, level)
	if err != nil {
		return 0, internalError("単語数の取得に失敗しました。", err)
	}
	return count, nil
}

func (s *jlptImportService) CountAllJlptWords(ctx context.Context) (*model.JlptWordCount, error) {
	counts := &model.JlptWordCount{Levels: make(map[model.JlptLevel]int64, len(model.AllJlptLevels))}
	for _, level := range model.AllJlptLevels {
		c, err := s.CountJlptWords(ctx, level)
		if err != nil {
			return nil, err
		}
		counts.Levels[level] = c
	}
	total, err := s.quizRepo.CountAllJlpt(ctx, s.db)
	if err != nil {
		return nil, internalError("単語数の取得に失敗しました。", err)
	}
	counts.Total = total
	return counts, nil
}

// readRows は拡張子に応じて CSV または XLSX (先頭シート) を行の配列として読み込みます
func readRows(filename string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("open xlsx: %w", err)
		}
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		rows, err := f.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
		}
		return dropBlankRows(rows), nil
	default:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")) // UTF-8 BOM
		reader := csv.NewReader(bytes.NewReader(data))
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true
		rows, err := reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		return dropBlankRows(rows), nil
	}
}

func dropBlankRows(rows [][]string) [][]string {
	out := rows[:0]
	for _, row := range rows {
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		out = append(out, row)
	}
	return out
}

func isHeaderRow(row []string) bool {
	if len(row) < 2 {
		return false
	}
	first := strings.ToLower(row[0])
	for _, kw := range headerKeywords {
		if strings.Contains(first, kw) {
			return true
		}
	}
	return false
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
