// internal/config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	CORS      CORSConfig      `mapstructure:"cors"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	App       AppConfig       `mapstructure:"app"`
	Mailer    MailerConfig    `mapstructure:"mailer"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	SES       SESConfig       `mapstructure:"ses"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "postgres" or "sqlite"
	URL    string `mapstructure:"url"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type JWTConfig struct {
	SecretKey       string        `mapstructure:"secret_key"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
	CookieSecure    bool          `mapstructure:"cookie_secure"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	FrontendURL string `mapstructure:"frontend_url"`
	ReviewLimit int    `mapstructure:"review_limit"`
	SeedDevData bool   `mapstructure:"seed_dev_data"`
	JlptDataDir string `mapstructure:"jlpt_data_dir"`
}

type MailerConfig struct {
	Type string `mapstructure:"type"` // "log", "smtp", "ses"
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	From            string `mapstructure:"from"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" or "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type SchedulerConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	PurgeCron  string        `mapstructure:"purge_cron"`
	PurgeAfter time.Duration `mapstructure:"purge_after"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// APP_JWT_SECRET_KEY のように接頭辞をつけた環境変数で上書きできる
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")

	// キーが存在しないと AutomaticEnv の値が Unmarshal に反映されないため、既定値を登録しておく
	viper.SetDefault("database.driver", DefaultDatabaseDriver)
	viper.SetDefault("database.url", "")
	viper.SetDefault("jwt.secret_key", "")
	viper.SetDefault("jwt.cookie_secure", false)
	viper.SetDefault("app.seed_dev_data", false)
	viper.SetDefault("scheduler.enabled", true)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	ApplyDefaults(&cfg)
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Driver: %s", Cfg.Database.Driver)
	log.Printf("Review Limit: %d", Cfg.App.ReviewLimit)
	log.Printf("Mailer Type: %s", Cfg.Mailer.Type)

	return nil
}

// ApplyDefaults は未設定の項目にデフォルト値を設定します
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DefaultDatabaseDriver
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:8080"}
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"*"}
	}
	if cfg.CORS.MaxAge <= 0 {
		cfg.CORS.MaxAge = DefaultCORSMaxAge
	}
	if cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set. Using an insecure development key.")
		cfg.JWT.SecretKey = DefaultJWTSecretKey
	}
	if cfg.JWT.AccessTokenTTL <= 0 {
		cfg.JWT.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if cfg.JWT.RefreshTokenTTL <= 0 {
		cfg.JWT.RefreshTokenTTL = DefaultRefreshTokenTTL
	}
	if cfg.App.Name == "" {
		cfg.App.Name = AppName
	}
	if cfg.App.ReviewLimit <= 0 {
		log.Printf("App review limit not set or invalid, using default '%d'", DefaultAppReviewLimit)
		cfg.App.ReviewLimit = DefaultAppReviewLimit
	}
	if cfg.App.JlptDataDir == "" {
		cfg.App.JlptDataDir = DefaultJlptDataDir
	}
	if cfg.Mailer.Type == "" {
		cfg.Mailer.Type = DefaultMailerType
	}
	if cfg.Scheduler.PurgeCron == "" {
		cfg.Scheduler.PurgeCron = DefaultPurgeCron
	}
	if cfg.Scheduler.PurgeAfter <= 0 {
		cfg.Scheduler.PurgeAfter = DefaultPurgeAfter
	}
}
