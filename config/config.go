package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	HTTPAddr       string
	LogLevel       string
	ReceiptBaseURL string

	Postgres PostgresConfig
	Redis    RedisConfig
	Keycloak KeycloakConfig
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// RedisConfig with an empty Addr disables the menu cache.
type RedisConfig struct {
	Addr    string
	MenuTTL time.Duration
}

// KeycloakConfig with an empty ServerURL disables identity provisioning.
type KeycloakConfig struct {
	ServerURL    string
	AuthRealm    string
	TargetRealm  string
	ClientID     string
	ClientSecret string
	TempPassword string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("MENU_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("parse MENU_CACHE_TTL: %w", err)
	}

	return &Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ReceiptBaseURL: getEnv("RECEIPT_BASE_URL", "http://localhost:8080"),
		Postgres: PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "foodndeliv"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:    os.Getenv("REDIS_ADDR"),
			MenuTTL: ttl,
		},
		Keycloak: KeycloakConfig{
			ServerURL:    os.Getenv("KEYCLOAK_SERVER_URL"),
			AuthRealm:    getEnv("KEYCLOAK_REALM", "master"),
			TargetRealm:  getEnv("KEYCLOAK_TARGET_REALM", "fnd"),
			ClientID:     getEnv("KEYCLOAK_CLIENT_ID", "admin-cli"),
			ClientSecret: os.Getenv("KEYCLOAK_CLIENT_SECRET"),
			TempPassword: os.Getenv("KEYCLOAK_TEMP_PASSWORD"),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func MustInitPostgres(cfg PostgresConfig, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	if err = db.Ping(); err != nil {
		logger.Fatal("failed to ping database", zap.String("host", cfg.Host), zap.Error(err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg RedisConfig, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.String("addr", cfg.Addr), zap.Error(err))
	}

	return client
}
