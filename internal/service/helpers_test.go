package service

import (
	"fmt"
	"testing"

	"nihongo_diary/internal/config"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリDBを用意します
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database for service testing")
	require.NoError(t, repository.AutoMigrate(db), "failed to migrate database for service testing")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{
		App: config.AppConfig{Name: "NihongoDiary", ReviewLimit: 10},
		JWT: config.JWTConfig{SecretKey: "test-secret-key"},
	}
	config.ApplyDefaults(cfg)
	return cfg
}

// createTestUser はパスワード "password1" のアクティブユーザーを作成します
func createTestUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		ID:       uuid.New(),
		Username: username,
		Password: string(hashed),
		Email:    username + "@example.com",
		Nickname: "nick_" + username,
		Role:     model.RoleUser,
		Status:   model.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
