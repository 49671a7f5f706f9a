// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "NihongoDiary"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultDatabaseDriver  = "postgres"
	DefaultLogLevel        = "info"
	DefaultCORSMaxAge      = 3600
	DefaultJWTSecretKey    = "dev-only-secret-key-change-me-0123456789"
	DefaultAccessTokenTTL  = time.Hour
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
	DefaultAppReviewLimit  = 20
	DefaultJlptDataDir     = "data/jlpt"
	DefaultMailerType      = "log"
	DefaultPurgeCron       = "0 3 * * *"
	DefaultPurgeAfter      = 30 * 24 * time.Hour
)
