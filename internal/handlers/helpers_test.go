package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nihongo_diary/internal/config"
	"nihongo_diary/internal/handlers"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/service/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testEnv は全サービスをモックに差し替えたルーターです
type testEnv struct {
	cfg    *config.Config
	router http.Handler

	auth   *mocks.AuthService
	user   *mocks.UserService
	diary  *mocks.DiaryService
	vocab  *mocks.VocabularyService
	quiz   *mocks.QuizService
	review *mocks.ReviewService
	jlpt   *mocks.JlptImportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := &config.Config{
		JWT: config.JWTConfig{SecretKey: "handler-test-secret", AccessTokenTTL: 30 * time.Minute, RefreshTokenTTL: 24 * time.Hour},
	}
	config.ApplyDefaults(cfg)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env := &testEnv{
		cfg:    cfg,
		auth:   mocks.NewAuthService(t),
		user:   mocks.NewUserService(t),
		diary:  mocks.NewDiaryService(t),
		vocab:  mocks.NewVocabularyService(t),
		quiz:   mocks.NewQuizService(t),
		review: mocks.NewReviewService(t),
		jlpt:   mocks.NewJlptImportService(t),
	}
	env.router = handlers.NewRouter(cfg, logger, &handlers.Handlers{
		Auth:       handlers.NewAuthHandler(env.auth, cfg),
		User:       handlers.NewUserHandler(env.user, cfg, logger),
		Diary:      handlers.NewDiaryHandler(env.diary, logger),
		Vocabulary: handlers.NewVocabularyHandler(env.vocab, logger),
		Quiz:       handlers.NewQuizHandler(env.quiz, env.review, logger),
		Admin:      handlers.NewAdminHandler(env.jlpt, logger),
		Health: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})
	return env
}

// accessCookie は cfg の秘密鍵で署名したアクセストークンの Cookie を返します
func (e *testEnv) accessCookie(t *testing.T, userID uuid.UUID, role model.Role) *http.Cookie {
	t.Helper()
	now := time.Now()
	claims := &model.JWTCustomClaims{
		Username:  "tester",
		Role:      role,
		TokenType: model.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(e.cfg.JWT.AccessTokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(e.cfg.JWT.SecretKey))
	require.NoError(t, err)
	return &http.Cookie{Name: model.AccessTokenCookie, Value: token}
}

// do はリクエストを実行します。body が string の場合はそのまま送信します。
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			reader = bytes.NewBufferString(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reader = bytes.NewBuffer(b)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dst), "body: %s", rr.Body.String())
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp model.APIErrorResponse
	decodeBody(t, rr, &resp)
	return resp.Error.Code
}

func responseCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}
