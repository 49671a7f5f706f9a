package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"nihongo_diary/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVocabularyHandler_CreateVocabulary(t *testing.T) {
	userID := uuid.New()
	validReq := model.VocabularyCreateRequest{Word: "隣人", Hiragana: "りんじん", Meaning: "neighbor"}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(env *testEnv)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 登録",
			body: validReq,
			setupMock: func(env *testEnv) {
				env.vocab.On("CreateVocabulary", mock.Anything, userID, &validReq).Return(&model.VocabularyResponse{
					ID: uuid.New(), Word: "隣人", Hiragana: "りんじん", Meaning: "neighbor",
					StudyStatus: model.StudyStatusNotStudied, StudyStatusDisplay: "Not Studied",
				}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: 意味が未入力",
			body:           model.VocabularyCreateRequest{Word: "隣人", Hiragana: "りんじん"},
			setupMock:      func(env *testEnv) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			tc.setupMock(env)

			rr := env.do(t, http.MethodPost, "/api/vocabulary", tc.body, env.accessCookie(t, userID, model.RoleUser))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, errorCode(t, rr))
				return
			}
			var vocab model.VocabularyResponse
			decodeBody(t, rr, &vocab)
			assert.Equal(t, model.StudyStatusNotStudied, vocab.StudyStatus)
		})
	}
}

func TestVocabularyHandler_Queries(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 学習状態で絞り込み", func(t *testing.T) {
		env := newTestEnv(t)
		env.vocab.On("GetVocabulariesByStatus", mock.Anything, userID, model.StudyStatusStudying).
			Return([]*model.VocabularyResponse{{Word: "助詞"}}, nil).Once()

		rr := env.do(t, http.MethodGet, "/api/vocabulary/status?studyStatus=STUDYING", nil, env.accessCookie(t, userID, model.RoleUser))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: 不正な学習状態", func(t *testing.T) {
		env := newTestEnv(t)
		env.vocab.On("GetVocabulariesByStatus", mock.Anything, userID, model.StudyStatus("DONE")).
			Return(nil, model.NewAppError("INVALID_STUDY_STATUS", "学習状態が不正です", "studyStatus", model.ErrInvalidInput)).Once()

		rr := env.do(t, http.MethodGet, "/api/vocabulary/status?studyStatus=DONE", nil, env.accessCookie(t, userID, model.RoleUser))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "INVALID_STUDY_STATUS", errorCode(t, rr))
	})

	t.Run("正常系: キーワード検索", func(t *testing.T) {
		env := newTestEnv(t)
		env.vocab.On("SearchVocabularies", mock.Anything, userID, "日記").
			Return([]*model.VocabularyResponse{{Word: "日記"}}, nil).Once()

		rr := env.do(t, http.MethodGet, "/api/vocabulary/search?keyword="+url.QueryEscape("日記"), nil, env.accessCookie(t, userID, model.RoleUser))

		require.Equal(t, http.StatusOK, rr.Code)
		var list []model.VocabularyResponse
		decodeBody(t, rr, &list)
		require.Len(t, list, 1)
		assert.Equal(t, "日記", list[0].Word)
	})

	t.Run("正常系: 一覧", func(t *testing.T) {
		env := newTestEnv(t)
		env.vocab.On("GetMyVocabularies", mock.Anything, userID).Return([]*model.VocabularyResponse{}, nil).Once()

		rr := env.do(t, http.MethodGet, "/api/vocabulary", nil, env.accessCookie(t, userID, model.RoleUser))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: 未ログイン", func(t *testing.T) {
		env := newTestEnv(t)
		rr := env.do(t, http.MethodGet, "/api/vocabulary", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestVocabularyHandler_ByID(t *testing.T) {
	userID := uuid.New()
	vocabID := uuid.New()

	t.Run("正常系: 取得", func(t *testing.T) {
		env := newTestEnv(t)
		env.vocab.On("GetVocabulary", mock.Anything, userID, vocabID).Return(&model.VocabularyResponse{ID: vocabID}, nil).Once()

		rr := env.do(t, http.MethodGet, "/api/vocabulary/"+vocabID.String(), nil, env.accessCookie(t, userID, model.RoleUser))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: 他人の単語", func(t *testing.T) {
		env := newTestEnv(t)
		env.vocab.On("GetVocabulary", mock.Anything, userID, vocabID).
			Return(nil, model.NewAppError("VOCABULARY_ACCESS_DENIED", "この単語を閲覧する権限がありません", "", model.ErrForbidden)).Once()

		rr := env.do(t, http.MethodGet, "/api/vocabulary/"+vocabID.String(), nil, env.accessCookie(t, userID, model.RoleUser))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("正常系: 更新", func(t *testing.T) {
		env := newTestEnv(t)
		req := model.VocabularyUpdateRequest{Word: "隣人", Hiragana: "りんじん", Meaning: "neighbour", StudyStatus: model.StudyStatusCompleted}
		env.vocab.On("UpdateVocabulary", mock.Anything, userID, vocabID, &req).
			Return(&model.VocabularyResponse{ID: vocabID, Meaning: "neighbour", StudyStatus: model.StudyStatusCompleted}, nil).Once()

		rr := env.do(t, http.MethodPut, "/api/vocabulary/"+vocabID.String(), req, env.accessCookie(t, userID, model.RoleUser))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: 更新時の不正な学習状態", func(t *testing.T) {
		env := newTestEnv(t)
		req := model.VocabularyUpdateRequest{Word: "隣人", Hiragana: "りんじん", Meaning: "neighbour", StudyStatus: "DONE"}

		rr := env.do(t, http.MethodPut, "/api/vocabulary/"+vocabID.String(), req, env.accessCookie(t, userID, model.RoleUser))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rr))
	})

	t.Run("正常系: 学習状態のみ変更", func(t *testing.T) {
		env := newTestEnv(t)
		env.vocab.On("UpdateStudyStatus", mock.Anything, userID, vocabID, model.StudyStatusCompleted).
			Return(&model.VocabularyResponse{ID: vocabID, StudyStatus: model.StudyStatusCompleted}, nil).Once()

		rr := env.do(t, http.MethodPatch, "/api/vocabulary/"+vocabID.String()+"/status?studyStatus=COMPLETED", nil, env.accessCookie(t, userID, model.RoleUser))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("正常系: 削除は204", func(t *testing.T) {
		env := newTestEnv(t)
		env.vocab.On("DeleteVocabulary", mock.Anything, userID, vocabID).Return(nil).Once()

		rr := env.do(t, http.MethodDelete, "/api/vocabulary/"+vocabID.String(), nil, env.accessCookie(t, userID, model.RoleUser))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("異常系: 存在しない単語", func(t *testing.T) {
		env := newTestEnv(t)
		env.vocab.On("DeleteVocabulary", mock.Anything, userID, vocabID).
			Return(model.NewAppError("VOCABULARY_NOT_FOUND", "単語が見つかりません", "", model.ErrNotFound)).Once()

		rr := env.do(t, http.MethodDelete, "/api/vocabulary/"+vocabID.String(), nil, env.accessCookie(t, userID, model.RoleUser))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "VOCABULARY_NOT_FOUND", errorCode(t, rr))
	})
}
