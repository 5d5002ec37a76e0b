package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"extensible-calendar/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar
	Calendar  CalendarConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name model.Environment
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CalendarConfig seeds the calendar that exists when the server starts.
// An empty DefaultName starts the server with no calendars.
type CalendarConfig struct {
	DefaultName     string
	DefaultTimezone string
}

type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	MaxClients      int
	ClientRetention time.Duration
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the environment first.
// Config file name: config.yaml — searched in ./config, ., /etc/calendar/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/calendar/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = model.Environment(viper.GetString("environment.name"))
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Calendar
	cfg.Calendar.DefaultName = viper.GetString("calendar.default_name")
	cfg.Calendar.DefaultTimezone = viper.GetString("calendar.default_timezone")

	// Rate limiting
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")
	cfg.RateLimit.ClientRetention = viper.GetDuration("rate_limit.client_retention")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("calendar.default_name", "")
	viper.SetDefault("calendar.default_timezone", "UTC")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 600)
	viper.SetDefault("rate_limit.max_clients", 1000)
	viper.SetDefault("rate_limit.client_retention", "5m")
}

func validate(cfg *Config) error {
	if !cfg.Environment.Name.Valid() {
		return fmt.Errorf("environment.name must be %q or %q, got %q",
			model.EnvironmentDevelopment, model.EnvironmentProduction, cfg.Environment.Name)
	}
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Calendar.DefaultName != "" {
		if _, err := time.LoadLocation(cfg.Calendar.DefaultTimezone); err != nil {
			return fmt.Errorf("calendar.default_timezone: %w", err)
		}
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}
