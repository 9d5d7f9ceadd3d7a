package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	Vault   VaultConfig
	Alert   AlertConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// VaultConfig controls the note inventory and its persisted state.
type VaultConfig struct {
	StateFile         string
	Denominations     string
	DefaultNoteCount  int
	ResetOnCorruption bool
}

// AlertConfig holds settings for the low-reserve webhook notifications.
// An empty WebhookURL disables alerting entirely.
type AlertConfig struct {
	WebhookURL       string
	LowCashThreshold int
	CronSchedule     string
}

// LoggingConfig holds log sink options.
type LoggingConfig struct {
	File string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	defaultNotes, err := getenvInt("VAULT_DEFAULT_NOTE_COUNT", 20)
	if err != nil {
		return nil, err
	}

	threshold, err := getenvInt("ALERT_LOW_CASH_THRESHOLD", 5000)
	if err != nil {
		return nil, err
	}

	resetOnCorruption, err := getenvBool("VAULT_RESET_ON_CORRUPTION", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Vault: VaultConfig{
			StateFile:         getenvWithDefault("VAULT_STATE_FILE", "cash_state.json"),
			Denominations:     getenvWithDefault("VAULT_DENOMINATIONS", "500,200,100"),
			DefaultNoteCount:  defaultNotes,
			ResetOnCorruption: resetOnCorruption,
		},
		Alert: AlertConfig{
			WebhookURL:       os.Getenv("ALERT_WEBHOOK_URL"),
			LowCashThreshold: threshold,
			CronSchedule:     getenvWithDefault("ALERT_CHECK_SCHEDULE", "*/15 * * * *"),
		},
		Logging: LoggingConfig{
			File: os.Getenv("ATM_LOG_FILE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Vault.StateFile == "" {
		return errors.New("VAULT_STATE_FILE must be provided")
	}

	if c.Vault.Denominations == "" {
		return errors.New("VAULT_DENOMINATIONS must be provided")
	}

	if c.Vault.DefaultNoteCount < 0 {
		return errors.New("VAULT_DEFAULT_NOTE_COUNT must not be negative")
	}

	if c.Alert.LowCashThreshold < 0 {
		return errors.New("ALERT_LOW_CASH_THRESHOLD must not be negative")
	}

	if c.Alert.WebhookURL != "" && c.Alert.CronSchedule == "" {
		return errors.New("ALERT_CHECK_SCHEDULE must be provided when alerting is enabled")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

func getenvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return parsed, nil
}
