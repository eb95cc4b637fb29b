package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds application level configuration loaded from .env, environment and flags.
type Config struct {
	Port            string
	DatabaseURI     string
	DatabaseName    string
	JWTSecret       string
	TokenTTL        time.Duration
	BcryptCost      int
	HashConcurrency int
	ShutdownTimeout time.Duration
	LogLevel        slog.Level
}

const (
	defaultPort            = "5000"
	defaultDatabaseURI     = "mongodb://localhost:27017/userauth"
	defaultDatabaseName    = "userauth"
	defaultJWTSecret       = "change-me-in-production"
	defaultTokenTTL        = time.Hour
	defaultBcryptCost      = bcrypt.DefaultCost
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	dotenvFile             = ".env"
)

var defaultHashConcurrency = runtime.NumCPU()

// Addr returns listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load parses configuration from .env file, environment variables and flags.
func Load() (*Config, error) {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", dotenvFile, err)
	}
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		Port:            getString(lookup, "PORT", defaultPort),
		DatabaseURI:     getString(lookup, "DATABASE_URI", defaultDatabaseURI),
		DatabaseName:    getString(lookup, "DATABASE_NAME", ""),
		JWTSecret:       getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:        getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		BcryptCost:      getInt(lookup, "BCRYPT_COST", defaultBcryptCost),
		HashConcurrency: getInt(lookup, "HASH_CONCURRENCY", defaultHashConcurrency),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fset := flag.NewFlagSet("userauth", flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		logLevelStr        = getString(lookup, "LOG_LEVEL", defaultLogLevel)
	)

	fset.StringVar(&cfg.Port, "p", cfg.Port, "HTTP listen port")
	fset.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "Database connection string (mongodb:// or postgres://)")
	fset.StringVar(&cfg.DatabaseName, "db-name", cfg.DatabaseName, "MongoDB database name")
	fset.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fset.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Lifetime of issued auth tokens")
	fset.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt cost factor")
	fset.IntVar(&cfg.HashConcurrency, "hash-concurrency", cfg.HashConcurrency, "Maximum concurrent password hash operations")
	fset.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fset.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level (debug, info, warn, error)")

	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, cfg.BcryptCost)
	}

	if cfg.HashConcurrency <= 0 {
		cfg.HashConcurrency = defaultHashConcurrency
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("port must be provided")
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}

	if cfg.DatabaseName == "" {
		cfg.DatabaseName = databaseNameFromURI(cfg.DatabaseURI)
	}

	return cfg, nil
}

// databaseNameFromURI extracts database from the path of a mongodb URI.
func databaseNameFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return defaultDatabaseName
	}
	if name := strings.Trim(u.Path, "/"); name != "" && strings.HasPrefix(u.Scheme, "mongodb") {
		return name
	}
	return defaultDatabaseName
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
