package config

import (
	"fmt"
	"time"

	"subquest/internal/domain"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Allow-list storage backends
const (
	BackendJSON     = "json"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Config holds all application configuration
type Config struct {
	BotToken string `env:"BOT_TOKEN,required,notEmpty"`
	AdminID  int64  `env:"ADMIN_ID,required,notEmpty"`
	ChatID   int64  `env:"CHAT_ID,required,notEmpty"`

	WelcomeImagePath  string        `env:"WELCOME_IMAGE_PATH" envDefault:"welcome.jpg"`
	DefaultLanguage   string        `env:"DEFAULT_LANGUAGE" envDefault:"ru"`
	LanguageSelection bool          `env:"LANGUAGE_SELECTION_ENABLED" envDefault:"true"`
	AdminCommands     bool          `env:"ADMIN_COMMANDS_ENABLED" envDefault:"true"`
	MaxAttempts       int           `env:"MAX_ATTEMPTS" envDefault:"3"`
	SinkTimeout       time.Duration `env:"SINK_TIMEOUT" envDefault:"10s"`

	AllowList AllowListConfig
	Database  DatabaseConfig
	Log       LogConfig
}

// AllowListConfig selects and locates the allow-list store
type AllowListConfig struct {
	Backend        string `env:"ALLOWLIST_BACKEND" envDefault:"json"`
	Path           string `env:"ALLOWLIST_PATH" envDefault:"paid_users.json"`
	ReloadSchedule string `env:"ALLOWLIST_RELOAD_SCHEDULE" envDefault:"@every 1m"`
	SQLitePath     string `env:"SQLITE_PATH" envDefault:"./data/quest.db"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"quest"`
	User     string `env:"DB_USER" envDefault:"quest"`
	Password string `env:"DB_PASSWORD"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	File  string `env:"LOG_FILE"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Language returns the fallback locale
func (c *Config) Language() domain.Language {
	return domain.Language(c.DefaultLanguage)
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func (c *Config) validate() error {
	switch c.Language() {
	case domain.LangRU, domain.LangEN:
	default:
		return fmt.Errorf("DEFAULT_LANGUAGE must be %q or %q, got %q", domain.LangRU, domain.LangEN, c.DefaultLanguage)
	}

	if c.MaxAttempts < 1 {
		return fmt.Errorf("MAX_ATTEMPTS must be positive, got %d", c.MaxAttempts)
	}
	if c.SinkTimeout <= 0 {
		return fmt.Errorf("SINK_TIMEOUT must be positive, got %s", c.SinkTimeout)
	}

	switch c.AllowList.Backend {
	case BackendJSON:
		if c.AllowList.Path == "" {
			return fmt.Errorf("ALLOWLIST_PATH is required for the %s backend", BackendJSON)
		}
	case BackendSQLite:
		if c.AllowList.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the %s backend", BackendSQLite)
		}
	case BackendPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the %s backend", BackendPostgres)
		}
	default:
		return fmt.Errorf("unknown ALLOWLIST_BACKEND %q", c.AllowList.Backend)
	}

	return nil
}
