package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/bulatminnakhmetov/tsunagu-backend/internal/database"
	"github.com/bulatminnakhmetov/tsunagu-backend/internal/storage/media"
)

// EnvType is the deployment environment
type EnvType string

const (
	EnvTypeDev  EnvType = "dev"
	EnvTypeTest EnvType = "test"
	EnvTypeProd EnvType = "prod"
)

type Config struct {
	Env             EnvType
	ServerPort      string
	JWTSecret       string
	HomeNationality string
	Migrate         bool
	Database        database.Config
	Storage         media.Config
	Logging         LoggingConfig
}

type LoggingConfig struct {
	Level  string
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", string(EnvTypeDev))
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "tsunagu")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("MINIO_ENDPOINT", "localhost:9000")
	v.SetDefault("MINIO_BUCKET", "profile-images")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("HOME_NATIONALITY", "japan")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("MIGRATIONS_ENABLED", true)
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Env:             EnvType(strings.ToLower(v.GetString("ENV"))),
		ServerPort:      v.GetString("SERVER_PORT"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		HomeNationality: v.GetString("HOME_NATIONALITY"),
		Migrate:         v.GetBool("MIGRATIONS_ENABLED"),
		Database: database.Config{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
		},
		Storage: media.Config{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			Region:    v.GetString("MINIO_REGION"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
			PublicURL: v.GetString("MINIO_PUBLIC_URL"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Storage.Bucket == "" {
		return fmt.Errorf("storage bucket is required")
	}
	return nil
}
