package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AppName      string
	OrgName      string
	BaseURL      string
	TrustProxy   bool
	Development  bool
	LogLevel     string
	LogFormat    string

	DB DBConfig
}

// DBConfig holds connection pool and bootstrap settings
type DBConfig struct {
	MaxOpenConns  int
	MaxIdleConns  int
	IdleTimeout   time.Duration
	QueryTimeout  time.Duration
	RetryDelay    time.Duration
	RetryAttempts int
}

const (
	DefaultPort        = 3000
	DefaultDatabaseURL = "votacao.db"
	DefaultAppName     = "Votação de Projetos"
)

// Load reads a .env file from the working directory (if any) and then parses flags.
// Variables already present in the environment win over the file.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return ParseFlags(args)
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quickly-vote", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.AppName, "app-name", "", "Application display name")
	fs.StringVar(&cfg.OrgName, "org-name", "", "Organization display name")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "Public base URL embedded in QR codes")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	trustProxy := fs.Bool("trust-proxy", false, "Trust X-Forwarded-For / X-Real-IP")
	dev := fs.Bool("dev", false, "Development mode")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var err error

	if cfg.Port == 0 {
		if cfg.Port, err = envInt("PORT", DefaultPort); err != nil {
			return Config{}, err
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = envString("DATABASE_URL", DefaultDatabaseURL)
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = inferDatabaseType(cfg.DatabaseURL)
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.AppName == "" {
		cfg.AppName = envString("APP_NAME", DefaultAppName)
	}
	if cfg.OrgName == "" {
		cfg.OrgName = os.Getenv("ORG_NAME")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = envString("BASE_URL", "http://localhost:"+strconv.Itoa(cfg.Port))
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.LogLevel == "" {
		cfg.LogLevel = envString("LOG_LEVEL", "info")
	}
	cfg.LogFormat = envString("LOG_FORMAT", "auto")

	// Bool flags can't tell "unset" from "false", so an explicit flag only turns things on
	cfg.TrustProxy = *trustProxy
	if !cfg.TrustProxy {
		if cfg.TrustProxy, err = envBool("TRUST_PROXY", false); err != nil {
			return Config{}, err
		}
	}
	cfg.Development = *dev || os.Getenv("APP_ENV") == "development"

	if cfg.DB, err = parseDBConfig(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// SlogLevel maps LogLevel onto slog levels, defaulting to info
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseDBConfig() (DBConfig, error) {
	var (
		db  DBConfig
		err error
	)
	if db.MaxOpenConns, err = envInt("DB_MAX_OPEN_CONNS", 25); err != nil {
		return db, err
	}
	if db.MaxIdleConns, err = envInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return db, err
	}
	if db.IdleTimeout, err = envDuration("DB_IDLE_TIMEOUT", 30*time.Second); err != nil {
		return db, err
	}
	if db.QueryTimeout, err = envDuration("DB_QUERY_TIMEOUT", 5*time.Second); err != nil {
		return db, err
	}
	if db.RetryDelay, err = envDuration("DB_RETRY_DELAY", 5*time.Second); err != nil {
		return db, err
	}
	if db.RetryAttempts, err = envInt("DB_RETRY_ATTEMPTS", 10); err != nil {
		return db, err
	}
	return db, nil
}

func inferDatabaseType(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return "postgres"
	}
	return "sqlite"
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	return d, nil
}
