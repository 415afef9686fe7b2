// Package config resolves runtime settings from defaults, an optional TOML
// file, a .env file and TTP_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultPort      = "8080"
	DefaultLocalUser = "local"
	MinSecretKeyLen  = 32
	defaultFileName  = "timetrackpro.toml"
)

var (
	ErrSecretKeyMissing  = errors.New("TTP_SECRET_KEY is required")
	ErrSecretKeyTooShort = fmt.Errorf("TTP_SECRET_KEY must be at least %d bytes", MinSecretKeyLen)
	ErrSecretKeyExample  = errors.New("TTP_SECRET_KEY uses a placeholder value")
	ErrInvalidPort       = errors.New("port must be a number between 1 and 65535")
)

var placeholderSecrets = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	DBPath       string `toml:"db_path"`
	MirrorPath   string `toml:"mirror_path"`
	Port         string `toml:"port"`
	SecretKey    string `toml:"secret_key"`
	Timezone     string `toml:"timezone"`
	CookieSecure bool   `toml:"cookie_secure"`
	LocalUser    string `toml:"local_user"`
}

func DefaultConfig() *Config {
	return &Config{
		DBPath:     filepath.Join("data", "timetrackpro.db"),
		MirrorPath: defaultMirrorPath(),
		Port:       DefaultPort,
		Timezone:   "UTC",
		LocalUser:  DefaultLocalUser,
	}
}

func defaultMirrorPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return filepath.Join("data", "mirror.db")
	}
	return filepath.Join(homeDir, ".timetrackpro", "mirror.db")
}

// Load builds the configuration. An empty path falls back to TTP_CONFIG and
// then to timetrackpro.toml in the working directory; a missing file is not
// an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()

	if path == "" {
		path = getEnv("TTP_CONFIG", defaultFileName)
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.MirrorPath = expandPath(cfg.MirrorPath)
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	cfg.DBPath = getEnv("TTP_DB_PATH", cfg.DBPath)
	cfg.MirrorPath = getEnv("TTP_MIRROR_PATH", cfg.MirrorPath)
	cfg.Port = getEnv("TTP_PORT", cfg.Port)
	cfg.SecretKey = getEnv("TTP_SECRET_KEY", cfg.SecretKey)
	cfg.Timezone = getEnv("TTP_TIMEZONE", cfg.Timezone)
	cfg.LocalUser = getEnv("TTP_LOCAL_USER", cfg.LocalUser)

	if raw := strings.TrimSpace(os.Getenv("TTP_COOKIE_SECURE")); raw != "" {
		secure, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("TTP_COOKIE_SECURE: %w", err)
		}
		cfg.CookieSecure = secure
	}
	return nil
}

// ResolveSecretKey returns the JWT signing key or the reason it is unusable.
func (cfg *Config) ResolveSecretKey() (string, error) {
	secret := strings.TrimSpace(cfg.SecretKey)
	if secret == "" {
		return "", ErrSecretKeyMissing
	}
	if _, placeholder := placeholderSecrets[secret]; placeholder {
		return "", ErrSecretKeyExample
	}
	if len(secret) < MinSecretKeyLen {
		return "", ErrSecretKeyTooShort
	}
	return secret, nil
}

func (cfg *Config) ResolvePort() (string, error) {
	port := strings.TrimSpace(cfg.Port)
	if port == "" {
		return DefaultPort, nil
	}
	value, err := strconv.Atoi(port)
	if err != nil || value < 1 || value > 65535 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPort, port)
	}
	return port, nil
}

// Location returns the configured zone, or UTC when the name is unknown.
func (cfg *Config) Location() *time.Location {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
