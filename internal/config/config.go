package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration, read from environment
// variables (with an optional .env file for local development).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	DB    DBConfig
	Auth  AuthConfig
	Redis RedisConfig
	Minio MinioConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig Postgres settings. DatabaseURL is used verbatim when set
// (e.g. a managed Postgres connection string).
type DBConfig struct {
	DatabaseURL string
}

// AuthConfig identity provider settings. Tokens are verified against
// JWKSURL when set, otherwise with the provider's shared HS256 secret.
type AuthConfig struct {
	ProviderURL string // base URL of the identity provider, e.g. https://xyz.supabase.co/auth/v1
	APIKey      string // provider API key sent on proxied requests
	JWTSecret   string
	JWKSURL     string
}

// RedisConfig cache settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MinioConfig object storage settings for item attachments.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// StatsCacheTTL is how long cached /stats aggregates stay valid.
const StatsCacheTTL = 10 * time.Minute

// Load reads configuration from environment variables. Env vars win over
// the optional .env file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing .env is fine

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "stockyard")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("MINIO_ENDPOINT", "localhost:9000")
	v.SetDefault("MINIO_BUCKET", "item-attachments")

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DatabaseURL: v.GetString("DATABASE_URL"),
		},
		Auth: AuthConfig{
			ProviderURL: v.GetString("AUTH_PROVIDER_URL"),
			APIKey:      v.GetString("AUTH_API_KEY"),
			JWTSecret:   v.GetString("AUTH_JWT_SECRET"),
			JWKSURL:     v.GetString("AUTH_JWKS_URL"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Minio: MinioConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
			Bucket:    v.GetString("MINIO_BUCKET"),
		},
	}

	if cfg.DB.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.Auth.JWTSecret == "" && cfg.Auth.JWKSURL == "" {
		return nil, fmt.Errorf("one of AUTH_JWT_SECRET or AUTH_JWKS_URL is required")
	}

	return cfg, nil
}
