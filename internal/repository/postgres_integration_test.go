//go:build integration

// PostgreSQL コンテナを起動してリポジトリを検証します。
// 実行: go test -tags integration ./internal/repository/...
package repository_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"nihongo_diary/internal/config"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/repository"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=nihongo_diary",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	dsn := fmt.Sprintf("postgres://user:secret@%s/nihongo_diary?sslmode=disable", resource.GetHostPort("5432/tcp"))
	dbCfg := config.DatabaseConfig{Driver: "postgres", URL: dsn}
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := pool.Retry(func() error {
		var errRetry error
		testDB, errRetry = repository.NewDB(dbCfg, quiet)
		return errRetry
	}); err != nil {
		pool.Purge(resource)
		log.Fatalf("Could not connect to PostgreSQL container: %s", err)
	}
	logger.Info("Connected to test PostgreSQL container", slog.String("container_id", resource.Container.ID[:12]))

	if err := repository.AutoMigrate(testDB); err != nil {
		pool.Purge(resource)
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge PostgreSQL resource: %s", err)
	}
	os.Exit(code)
}

func clearTables(t *testing.T) {
	t.Helper()
	for _, m := range []interface{}{&model.QuizProgress{}, &model.QuizWord{}, &model.Vocabulary{}, &model.Diary{}, &model.RefreshToken{}, &model.User{}} {
		require.NoError(t, testDB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error)
	}
}

func newUser(t *testing.T, username string) *model.User {
	t.Helper()
	u := &model.User{
		ID:       uuid.New(),
		Username: username,
		Password: "hashed",
		Email:    username + "@example.com",
		Nickname: "nick_" + username,
		Role:     model.RoleUser,
		Status:   model.UserStatusActive,
	}
	require.NoError(t, repository.NewGormUserRepository().Create(context.Background(), testDB, u))
	return u
}

func TestPostgres_UserRepository_Duplicate(t *testing.T) {
	clearTables(t)
	newUser(t, "taro")

	dup := &model.User{ID: uuid.New(), Username: "taro", Password: "x", Email: "other@example.com", Nickname: "other"}
	err := repository.NewGormUserRepository().Create(context.Background(), testDB, dup)
	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestPostgres_QuizWordRepository(t *testing.T) {
	clearTables(t)
	ctx := context.Background()
	repo := repository.NewGormQuizWordRepository()

	words := make([]*model.QuizWord, 0, 6)
	for i := 0; i < 6; i++ {
		words = append(words, &model.QuizWord{
			ID:           uuid.New(),
			Source:       model.WordSourceJLPT,
			SourceDetail: string(model.JlptN5),
			Word:         fmt.Sprintf("語%d", i),
			Hiragana:     fmt.Sprintf("ご%d", i),
			Meaning:      fmt.Sprintf("word %d", i),
		})
	}
	require.NoError(t, repo.CreateInBatches(ctx, testDB, words))

	count, err := repo.CountByLevel(ctx, testDB, model.JlptN5)
	require.NoError(t, err)
	assert.Equal(t, int64(6), count)

	sample, err := repo.RandomSampleByLevel(ctx, testDB, model.JlptN5, 3)
	require.NoError(t, err)
	assert.Len(t, sample, 3)

	exists, err := repo.ExistsJlptWord(ctx, testDB, model.JlptN5, "語0", "ご0")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsJlptWord(ctx, testDB, model.JlptN4, "語0", "ご0")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPostgres_ProgressRepository_FindReviewable(t *testing.T) {
	clearTables(t)
	ctx := context.Background()
	user := newUser(t, "hanako")
	quizRepo := repository.NewGormQuizWordRepository()
	progressRepo := repository.NewGormProgressRepository()

	now := time.Now().UTC().Truncate(time.Second)
	due := &model.QuizWord{ID: uuid.New(), Source: model.WordSourceJLPT, SourceDetail: "N5", Word: "学校", Hiragana: "がっこう", Meaning: "school"}
	later := &model.QuizWord{ID: uuid.New(), Source: model.WordSourceJLPT, SourceDetail: "N5", Word: "先生", Hiragana: "せんせい", Meaning: "teacher"}
	require.NoError(t, quizRepo.CreateInBatches(ctx, testDB, []*model.QuizWord{due, later}))

	require.NoError(t, progressRepo.Create(ctx, testDB, &model.QuizProgress{
		ID: uuid.New(), UserID: user.ID, QuizWordID: due.ID, Level: model.Level1, NextReviewDate: now.Add(-time.Hour), WrongCount: 1,
	}))
	require.NoError(t, progressRepo.Create(ctx, testDB, &model.QuizProgress{
		ID: uuid.New(), UserID: user.ID, QuizWordID: later.ID, Level: model.Level2, NextReviewDate: now.Add(72 * time.Hour), CorrectCount: 1,
	}))

	reviewable, err := progressRepo.FindReviewable(ctx, testDB, user.ID, now, 10)
	require.NoError(t, err)
	require.Len(t, reviewable, 1)
	require.NotNil(t, reviewable[0].QuizWord)
	assert.Equal(t, "学校", reviewable[0].QuizWord.Word)
}

func TestPostgres_VocabularyRepository_Search(t *testing.T) {
	clearTables(t)
	ctx := context.Background()
	user := newUser(t, "jiro")
	repo := repository.NewGormVocabularyRepository()

	for _, v := range []*model.Vocabulary{
		{ID: uuid.New(), UserID: user.ID, Word: "百%", Hiragana: "ひゃくぱーせんと", Meaning: "100 percent", StudyStatus: model.StudyStatusNotStudied},
		{ID: uuid.New(), UserID: user.ID, Word: "日記", Hiragana: "にっき", Meaning: "diary", StudyStatus: model.StudyStatusStudying},
	} {
		require.NoError(t, repo.Create(ctx, testDB, v))
	}

	found, err := repo.Search(ctx, testDB, user.ID, "%")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "百%", found[0].Word)

	found, err = repo.Search(ctx, testDB, user.ID, "diary")
	require.NoError(t, err)
	require.Len(t, found, 1)
}
