package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the central typed configuration struct, populated from the
// environment at bootstrap and registered in the container as "config".
type Config struct {
	App    AppConfig
	DB     DBConfig
	Mail   MailConfig
	Invite InviteConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
	URL   string
	Port  string
	Key   string
}

// DBConfig describes the document store. Driver "memory" keeps everything
// in-process (tests, local hacking); "mongo" talks to MongoDB.
type DBConfig struct {
	Driver   string
	URI      string
	Database string
	Timeout  time.Duration
}

type MailConfig struct {
	Driver   string // smtp | log
	Host     string
	Port     string
	From     string
	Username string
	Password string
}

// InviteConfig controls invitation emails.
type InviteConfig struct {
	TTL time.Duration // how long an invitation token stays valid
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:  env("APP_NAME", "ChefsSuite"),
			Env:   env("APP_ENV", "local"),
			Debug: envBool("APP_DEBUG", true),
			URL:   env("APP_URL", "http://localhost"),
			Port:  env("APP_PORT", "8000"),
			Key:   env("APP_KEY", ""),
		},
		DB: DBConfig{
			Driver:   env("DB_DRIVER", "memory"),
			URI:      env("DB_URI", "mongodb://127.0.0.1:27017"),
			Database: env("DB_DATABASE", "chefs_suite"),
			Timeout:  envDuration("DB_TIMEOUT", 10*time.Second),
		},
		Mail: MailConfig{
			Driver:   env("MAIL_DRIVER", "log"),
			Host:     env("MAIL_HOST", ""),
			Port:     env("MAIL_PORT", "587"),
			From:     env("MAIL_FROM_ADDRESS", "kitchen@chefs-suite.local"),
			Username: env("MAIL_USERNAME", ""),
			Password: env("MAIL_PASSWORD", ""),
		},
		Invite: InviteConfig{
			TTL: envDuration("INVITE_TTL", 7*24*time.Hour),
		},
	}
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
