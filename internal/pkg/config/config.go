package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Notifier kinds accepted by reminder.notifier.
const (
	NotifierPush = "push"
	NotifierLog  = "log"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Line     LineConfig     `mapstructure:"line"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Security SecurityConfig `mapstructure:"security"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DatabaseConfig holds the SQLite location and query logging settings.
// LogLevel falls back to the application logger level when unset.
type DatabaseConfig struct {
	URL           string        `mapstructure:"url"`
	SlowThreshold time.Duration `mapstructure:"slow_threshold"`
	LogLevel      string        `mapstructure:"log_level"`
}

// ReminderConfig controls the dispatcher trigger and the notification strategy.
type ReminderConfig struct {
	Cron     string `mapstructure:"cron"` // seconds precision
	Notifier string `mapstructure:"notifier"`
}

// LineConfig holds the LINE Messaging API credentials used by the push notifier.
type LineConfig struct {
	ChannelSecret      string `mapstructure:"channel_secret"`
	ChannelAccessToken string `mapstructure:"channel_access_token"`
}

// AuthConfig holds bearer token verification settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig toggles the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SecurityConfig holds request throttling settings.
type SecurityConfig struct {
	RateLimit float64 `mapstructure:"rate_limit"` // requests per second per client, 0 disables
}

// Load reads .env (if present) and the environment into a Config.
func Load() (*Config, error) {
	// A missing .env is fine, the environment may carry everything.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Database.LogLevel == "" {
		cfg.Database.LogLevel = cfg.Logger.Level
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "1m")

	v.SetDefault("database.url", "berries.db")
	v.SetDefault("database.slow_threshold", "200ms")
	v.SetDefault("database.log_level", "")

	v.SetDefault("reminder.cron", "0 */5 * * * *")
	v.SetDefault("reminder.notifier", NotifierLog)

	v.SetDefault("line.channel_secret", "")
	v.SetDefault("line.channel_access_token", "")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("metrics.enabled", true)

	v.SetDefault("security.rate_limit", 20)
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Database.URL == "" {
		errs = append(errs, errors.New("database.url must be set"))
	}
	if _, err := ParseCron(c.Reminder.Cron); err != nil {
		errs = append(errs, fmt.Errorf("reminder.cron: %w", err))
	}
	switch c.Reminder.Notifier {
	case NotifierLog:
	case NotifierPush:
		if c.Line.ChannelSecret == "" || c.Line.ChannelAccessToken == "" {
			errs = append(errs, errors.New("push notifier requires line.channel_secret and line.channel_access_token"))
		}
	default:
		errs = append(errs, fmt.Errorf("reminder.notifier must be %q or %q, got %q", NotifierPush, NotifierLog, c.Reminder.Notifier))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret must be set"))
	}
	if c.Security.RateLimit < 0 {
		errs = append(errs, errors.New("security.rate_limit must not be negative"))
	}
	return errors.Join(errs...)
}

// ParseCron parses a seconds-precision cron spec the way the scheduler does.
func ParseCron(spec string) (cron.Schedule, error) {
	return cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	).Parse(spec)
}
