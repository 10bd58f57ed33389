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
	Server    ServerConfig
	Log       LogConfig
	Latency   LatencyConfig
	Scheduler SchedulerConfig
	Notifier  NotifierConfig
	Sheets    SheetsConfig
	MongoDB   MongoDBConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string
}

// LatencyConfig scales the simulated round trip of every service call.
// Zero disables it.
type LatencyConfig struct {
	Scale float64
}

// SchedulerConfig holds the cron expressions for the background jobs.
type SchedulerConfig struct {
	ReminderSchedule string
	ReportSchedule   string
	Timezone         string
	ReminderDays     int
}

// NotifierConfig points at the webhook receiving reminders and reports.
// An empty URL disables outbound notifications.
type NotifierConfig struct {
	WebhookURL string
}

// SheetsConfig contains configuration required to export reports to
// Google Sheets. Both fields empty disables the export.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Enabled reports whether the sheet export is configured.
func (c SheetsConfig) Enabled() bool {
	return c.CredentialsPath != "" && c.SpreadsheetID != ""
}

// MongoDBConfig holds settings for the report archive. An empty URI
// disables it.
type MongoDBConfig struct {
	URI    string
	DBName string
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

	scale, err := strconv.ParseFloat(getenvWithDefault("LATENCY_SCALE", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("LATENCY_SCALE must be a number: %w", err)
	}

	reminderDays, err := strconv.Atoi(getenvWithDefault("REMINDER_DAYS", "1"))
	if err != nil {
		return nil, fmt.Errorf("REMINDER_DAYS must be an integer: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
		Latency: LatencyConfig{
			Scale: scale,
		},
		Scheduler: SchedulerConfig{
			ReminderSchedule: getenvWithDefault("REMINDER_CRON_SCHEDULE", "0 7 * * *"),
			ReportSchedule:   getenvWithDefault("REPORT_CRON_SCHEDULE", "0 20 * * *"),
			Timezone:         getenvWithDefault("TIMEZONE", "America/Los_Angeles"),
			ReminderDays:     reminderDays,
		},
		Notifier: NotifierConfig{
			WebhookURL: os.Getenv("REMINDER_WEBHOOK_URL"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "greenthumb"),
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

	if c.Latency.Scale < 0 {
		return errors.New("LATENCY_SCALE must not be negative")
	}

	switch {
	case c.Scheduler.ReminderSchedule == "":
		return errors.New("REMINDER_CRON_SCHEDULE must be provided")
	case c.Scheduler.ReportSchedule == "":
		return errors.New("REPORT_CRON_SCHEDULE must be provided")
	case c.Scheduler.Timezone == "":
		return errors.New("TIMEZONE must be provided")
	case c.Scheduler.ReminderDays <= 0:
		return errors.New("REMINDER_DAYS must be positive")
	}

	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_DATABASE_ID must be set together")
	}

	if c.MongoDB.URI != "" && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must not be empty when MONGODB_URI is set")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
