package service

import (
	"context"
	"errors"
	"time"

	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiaryService interface {
	CreateDiary(ctx context.Context, userID uuid.UUID, req *model.DiaryRequest) (*model.DiaryResponse, error)
	GetPublicDiaries(ctx context.Context) ([]*model.DiaryListResponse, error)
	GetMyDiaries(ctx context.Context, userID uuid.UUID) ([]*model.DiaryListResponse, error)
	GetDiary(ctx context.Context, diaryID uuid.UUID, viewerID *uuid.UUID) (*model.DiaryResponse, error)
	UpdateDiary(ctx context.Context, userID, diaryID uuid.UUID, req *model.DiaryRequest) (*model.DiaryResponse, error)
	DeleteDiary(ctx context.Context, userID, diaryID uuid.UUID) error
	GetDiaryWords(ctx context.Context, diaryID uuid.UUID, viewerID *uuid.UUID) ([]*model.DiaryWord, error)
}

type diaryService struct {
	db        *gorm.DB
	diaryRepo repository.DiaryRepository
	userRepo  repository.UserRepository
	analyzer  DiaryAnalyzer
	now       func() time.Time
}

func NewDiaryService(db *gorm.DB, diaryRepo repository.DiaryRepository, userRepo repository.UserRepository, analyzer DiaryAnalyzer) DiaryService {
	return &diaryService{
		db:        db,
		diaryRepo: diaryRepo,
		userRepo:  userRepo,
		analyzer:  analyzer,
		now:       time.Now,
	}
}

func (s *diaryService) CreateDiary(ctx context.Context, userID uuid.UUID, req *model.DiaryRequest) (*model.DiaryResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	date, err := s.parseDiaryDate(req.DiaryDate)
	if err != nil {
		return nil, err
	}

	var created *model.Diary
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません", "", model.ErrNotFound)
			}
			return internalError("ユーザーの取得に失敗しました。", err)
		}

		if err := s.ensureDateAvailable(ctx, tx, userID, date); err != nil {
			return err
		}

		diary := &model.Diary{
			ID:        uuid.New(),
			UserID:    userID,
			DiaryDate: date,
			Title:     req.Title,
			Content:   req.Content,
			IsPublic:  *req.IsPublic,
		}
		if err := s.diaryRepo.Create(ctx, tx, diary); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return duplicateDiaryError()
			}
			return internalError("日記の作成に失敗しました。", err)
		}
		diary.User = user
		created = diary
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Diary created", "diary_id", created.ID, "diary_date", req.DiaryDate)
	return model.NewDiaryResponse(created), nil
}

func (s *diaryService) GetPublicDiaries(ctx context.Context) ([]*model.DiaryListResponse, error) {
	diaries, err := s.diaryRepo.FindPublic(ctx, s.db)
	if err != nil {
		return nil, internalError("日記一覧の取得に失敗しました。", err)
	}
	return toDiaryList(diaries), nil
}

func (s *diaryService) GetMyDiaries(ctx context.Context, userID uuid.UUID) ([]*model.DiaryListResponse, error) {
	diaries, err := s.diaryRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		return nil, internalError("日記一覧の取得に失敗しました。", err)
	}
	return toDiaryList(diaries), nil
}

// GetDiary は非公開の日記を本人にのみ返します
func (s *diaryService) GetDiary(ctx context.Context, diaryID uuid.UUID, viewerID *uuid.UUID) (*model.DiaryResponse, error) {
	diary, err := s.findViewable(ctx, diaryID, viewerID)
	if err != nil {
		return nil, err
	}
	return model.NewDiaryResponse(diary), nil
}

func (s *diaryService) UpdateDiary(ctx context.Context, userID, diaryID uuid.UUID, req *model.DiaryRequest) (*model.DiaryResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "diary_id", diaryID)

	date, err := s.parseDiaryDate(req.DiaryDate)
	if err != nil {
		return nil, err
	}

	var updated *model.Diary
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		diary, err := s.findOwned(ctx, tx, userID, diaryID, "この日記を修正する権限がありません")
		if err != nil {
			return err
		}

		// 日付を変更する場合のみ重複チェック
		if !diary.DiaryDate.Equal(date) {
			if err := s.ensureDateAvailable(ctx, tx, userID, date); err != nil {
				return err
			}
		}

		diary.DiaryDate = date
		diary.Title = req.Title
		diary.Content = req.Content
		diary.IsPublic = *req.IsPublic
		if err := s.diaryRepo.Update(ctx, tx, diary); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return duplicateDiaryError()
			}
			return internalError("日記の更新に失敗しました。", err)
		}
		updated = diary
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Diary updated")
	return model.NewDiaryResponse(updated), nil
}

func (s *diaryService) DeleteDiary(ctx context.Context, userID, diaryID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "diary_id", diaryID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.findOwned(ctx, tx, userID, diaryID, "この日記を削除する権限がありません"); err != nil {
			return err
		}
		if err := s.diaryRepo.Delete(ctx, tx, diaryID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return diaryNotFoundError()
			}
			return internalError("日記の削除に失敗しました。", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Diary deleted")
	return nil
}

// GetDiaryWords は日記のタイトルと本文から学習対象の単語を抽出します
func (s *diaryService) GetDiaryWords(ctx context.Context, diaryID uuid.UUID, viewerID *uuid.UUID) ([]*model.DiaryWord, error) {
	diary, err := s.findViewable(ctx, diaryID, viewerID)
	if err != nil {
		return nil, err
	}
	return s.analyzer.ExtractWords(ctx, diary.Title+"\n"+diary.Content), nil
}

func (s *diaryService) findViewable(ctx context.Context, diaryID uuid.UUID, viewerID *uuid.UUID) (*model.Diary, error) {
	diary, err := s.diaryRepo.FindByID(ctx, s.db, diaryID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, diaryNotFoundError()
		}
		return nil, internalError("日記の取得に失敗しました。", err)
	}
	if !diary.IsPublic && (viewerID == nil || *viewerID != diary.UserID) {
		middleware.GetLogger(ctx).Warn("Access to private diary denied", "diary_id", diaryID)
		return nil, model.NewAppError("FORBIDDEN", "この日記を閲覧する権限がありません", "", model.ErrForbidden)
	}
	return diary, nil
}

func (s *diaryService) findOwned(ctx context.Context, db *gorm.DB, userID, diaryID uuid.UUID, forbiddenMessage string) (*model.Diary, error) {
	diary, err := s.diaryRepo.FindByID(ctx, db, diaryID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, diaryNotFoundError()
		}
		return nil, internalError("日記の取得に失敗しました。", err)
	}
	if diary.UserID != userID {
		middleware.GetLogger(ctx).Warn("Diary ownership check failed", "diary_id", diaryID, "user_id", userID)
		return nil, model.NewAppError("FORBIDDEN", forbiddenMessage, "", model.ErrForbidden)
	}
	return diary, nil
}

func (s *diaryService) ensureDateAvailable(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) error {
	exists, err := s.diaryRepo.ExistsByUserAndDate(ctx, db, userID, date)
	if err != nil {
		return internalError("日記の確認に失敗しました。", err)
	}
	if exists {
		return duplicateDiaryError()
	}
	return nil
}

// parseDiaryDate は未来の日付と1年以上前の日付を拒否します
func (s *diaryService) parseDiaryDate(value string) (time.Time, error) {
	date, err := time.Parse(model.DiaryDateLayout, value)
	if err != nil {
		return time.Time{}, model.NewAppError("INVALID_DIARY_DATE", "日付の形式が正しくありません", "diaryDate", model.ErrInvalidInput)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.After(today) {
		return time.Time{}, model.NewAppError("INVALID_DIARY_DATE", "未来の日付は設定できません", "diaryDate", model.ErrInvalidInput)
	}
	if date.Before(today.AddDate(-1, 0, 0)) {
		return time.Time{}, model.NewAppError("INVALID_DIARY_DATE", "1年以上前の日付は設定できません", "diaryDate", model.ErrInvalidInput)
	}
	return date, nil
}

func toDiaryList(diaries []*model.Diary) []*model.DiaryListResponse {
	list := make([]*model.DiaryListResponse, 0, len(diaries))
	for _, d := range diaries {
		list = append(list, model.NewDiaryListResponse(d))
	}
	return list
}

func diaryNotFoundError() error {
	return model.NewAppError("DIARY_NOT_FOUND", "日記が見つかりません", "", model.ErrNotFound)
}

func duplicateDiaryError() error {
	return model.NewAppError("DUPLICATE_DIARY_DATE", "この日付の日記は既に存在します", "diaryDate", model.ErrInvalidInput)
}
