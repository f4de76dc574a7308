// Package config загружает настройки сервера и клиента из окружения и .env.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Common общие настройки логирования
type Common struct {
	// Environment production включает JSON логи
	Environment string `env:"MDKEEPER_ENV" envDefault:"development"`
	// LogFile пишет логи в файл с ротацией, пусто = stderr
	LogFile string `env:"MDKEEPER_LOG_FILE"`
}

// IsProduction returns true when the environment is set to production.
func (c Common) IsProduction() bool {
	return c.Environment == "production"
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	Common
	Address         string        `env:"MDKEEPER_ADDR" envDefault:":8080"`
	DatabasePath    string        `env:"MDKEEPER_DB" envDefault:"mdkeeper.db"`
	JWTSecret       string        `env:"MDKEEPER_JWT_SECRET"`
	AccessTokenTTL  time.Duration `env:"MDKEEPER_ACCESS_TTL" envDefault:"15m"`
	RefreshTokenTTL time.Duration `env:"MDKEEPER_REFRESH_TTL" envDefault:"720h"`
	ShutdownTimeout time.Duration `env:"MDKEEPER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// AuthRateLimit запросов в минуту на IP для /auth/*
	AuthRateLimit int `env:"MDKEEPER_AUTH_RATE_LIMIT" envDefault:"20"`
	// MaxContentBytes предел размера документа, 0 = без ограничений
	MaxContentBytes int `env:"MDKEEPER_MAX_CONTENT" envDefault:"1048576"`
}

// ClientConfig настройки CLI клиента
type ClientConfig struct {
	Common
	ServerURL    string        `env:"MDKEEPER_SERVER" envDefault:"http://localhost:8080"`
	DatabasePath string        `env:"MDKEEPER_CLIENT_DB"`
	Debounce     time.Duration `env:"MDKEEPER_DEBOUNCE" envDefault:"2s"`
	MaxRetries   int           `env:"MDKEEPER_MAX_RETRIES" envDefault:"5"`
	SyncOnStart  bool          `env:"MDKEEPER_SYNC_ON_START" envDefault:"true"`
	// StorageQuota предел размера локальной базы в байтах, 0 = без ограничений
	StorageQuota int64 `env:"MDKEEPER_STORAGE_QUOTA" envDefault:"0"`
}

// LoadServer reads server configuration from the environment.
func LoadServer() (*ServerConfig, error) {
	loadDotEnv()

	cfg := &ServerConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *ServerConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("MDKEEPER_JWT_SECRET is required")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("MDKEEPER_JWT_SECRET must be at least 32 characters")
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token TTLs must be positive")
	}
	if c.MaxContentBytes < 0 {
		return fmt.Errorf("MDKEEPER_MAX_CONTENT must not be negative")
	}
	return nil
}

// LoadClient reads client configuration from the environment. An empty
// database path resolves to ~/.mdkeeper/client.db.
func LoadClient() (*ClientConfig, error) {
	loadDotEnv()

	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.DatabasePath == "" {
		path, err := DefaultClientDB()
		if err != nil {
			return nil, err
		}
		cfg.DatabasePath = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate проверяет значения клиента
func (c *ClientConfig) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("MDKEEPER_SERVER is required")
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("MDKEEPER_MAX_RETRIES must be at least 1")
	}
	if c.StorageQuota < 0 {
		return fmt.Errorf("MDKEEPER_STORAGE_QUOTA must not be negative")
	}
	return nil
}

// DefaultClientDB returns ~/.mdkeeper/client.db.
func DefaultClientDB() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, ".mdkeeper", "client.db"), nil
}

func loadDotEnv() {
	_ = godotenv.Load()
	warnInsecureEnvFile()
}

// warnInsecureEnvFile предупреждает, если .env читается группой или всеми
func warnInsecureEnvFile() {
	if runtime.GOOS == "windows" {
		return
	}

	info, err := os.Stat(".env")
	if err != nil {
		return
	}

	if mode := info.Mode().Perm(); mode&0o077 != 0 {
		log.Printf("WARNING: .env file has insecure permissions %04o; recommended 0600", mode)
	}
}
