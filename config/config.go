package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultSigningKey = "your_secret_key"

type Config struct {
	App          AppConfig
	HTTP         HTTPConfig
	Postgres     PostgresConfig
	JWT          JWTConfig
	S3           S3Config
	Availability AvailabilityConfig
}

type AppConfig struct {
	Environment string
	Name        string
	Version     string
	LogLevel    string
}

type HTTPConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxHeaderMB     int
}

type PostgresConfig struct {
	Host               string
	Port               string
	Username           string
	Password           string
	DBName             string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	MaxLifetime        time.Duration
}

type JWTConfig struct {
	SigningKey     string
	AccessTokenTTL time.Duration
}

type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
}

// Enabled reports whether an archive bucket is configured.
func (c S3Config) Enabled() bool {
	return c.Endpoint != ""
}

type AvailabilityConfig struct {
	// MaxRangeDays bounds the number of days a single range query may resolve.
	MaxRangeDays int
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// NewConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("ошибка чтения .env: %w", err)
	}

	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	setDefaults(v)

	var err error
	durations := map[string]*time.Duration{}
	cfg := &Config{
		App: AppConfig{
			Environment: v.GetString("APP_ENV"),
			Name:        v.GetString("APP_NAME"),
			Version:     v.GetString("APP_VERSION"),
			LogLevel:    v.GetString("LOG_LEVEL"),
		},
		HTTP: HTTPConfig{
			Port:        v.GetString("HTTP_PORT"),
			MaxHeaderMB: v.GetInt("HTTP_MAX_HEADER_MB"),
		},
		Postgres: PostgresConfig{
			Host:               v.GetString("POSTGRES_HOST"),
			Port:               v.GetString("POSTGRES_PORT"),
			Username:           v.GetString("POSTGRES_USER"),
			Password:           v.GetString("POSTGRES_PASSWORD"),
			DBName:             v.GetString("POSTGRES_DB"),
			SSLMode:            v.GetString("POSTGRES_SSL_MODE"),
			MaxConnections:     v.GetInt("POSTGRES_MAX_CONNECTIONS"),
			MaxIdleConnections: v.GetInt("POSTGRES_MAX_IDLE_CONNECTIONS"),
		},
		JWT: JWTConfig{
			SigningKey: v.GetString("JWT_SIGNING_KEY"),
		},
		S3: S3Config{
			Endpoint:        v.GetString("S3_ENDPOINT"),
			Region:          v.GetString("S3_REGION"),
			AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
			Bucket:          v.GetString("S3_BUCKET"),
			UseSSL:          v.GetBool("S3_USE_SSL"),
		},
		Availability: AvailabilityConfig{
			MaxRangeDays: v.GetInt("AVAILABILITY_MAX_RANGE_DAYS"),
		},
	}

	durations["HTTP_READ_TIMEOUT"] = &cfg.HTTP.ReadTimeout
	durations["HTTP_WRITE_TIMEOUT"] = &cfg.HTTP.WriteTimeout
	durations["HTTP_SHUTDOWN_TIMEOUT"] = &cfg.HTTP.ShutdownTimeout
	durations["POSTGRES_MAX_LIFETIME"] = &cfg.Postgres.MaxLifetime
	durations["JWT_ACCESS_TOKEN_TTL"] = &cfg.JWT.AccessTokenTTL

	for key, dst := range durations {
		*dst, err = time.ParseDuration(v.GetString(key))
		if err != nil {
			return nil, fmt.Errorf("некорректное значение %s: %w", key, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "consultcare")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("HTTP_READ_TIMEOUT", "10s")
	v.SetDefault("HTTP_WRITE_TIMEOUT", "10s")
	v.SetDefault("HTTP_SHUTDOWN_TIMEOUT", "5s")
	v.SetDefault("HTTP_MAX_HEADER_MB", 1)

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "postgres")
	v.SetDefault("POSTGRES_DB", "consultcare")
	v.SetDefault("POSTGRES_SSL_MODE", "disable")
	v.SetDefault("POSTGRES_MAX_CONNECTIONS", 10)
	v.SetDefault("POSTGRES_MAX_IDLE_CONNECTIONS", 5)
	v.SetDefault("POSTGRES_MAX_LIFETIME", "5m")

	v.SetDefault("JWT_SIGNING_KEY", defaultSigningKey)
	v.SetDefault("JWT_ACCESS_TOKEN_TTL", "15m")

	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ACCESS_KEY_ID", "")
	v.SetDefault("S3_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_BUCKET", "consultcare-archive")
	v.SetDefault("S3_USE_SSL", true)

	v.SetDefault("AVAILABILITY_MAX_RANGE_DAYS", 31)
}

func (c *Config) Validate() error {
	if c.IsProduction() && c.JWT.SigningKey == defaultSigningKey {
		return errors.New("JWT_SIGNING_KEY должен быть задан в production")
	}
	if c.JWT.SigningKey == "" {
		return errors.New("JWT_SIGNING_KEY не может быть пустым")
	}
	if c.Availability.MaxRangeDays < 1 {
		return fmt.Errorf("AVAILABILITY_MAX_RANGE_DAYS должен быть положительным, получено %d", c.Availability.MaxRangeDays)
	}
	if c.Postgres.MaxConnections < 1 {
		return fmt.Errorf("POSTGRES_MAX_CONNECTIONS должен быть положительным, получено %d", c.Postgres.MaxConnections)
	}
	return nil
}
