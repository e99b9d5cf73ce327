// Package config provides centralized configuration management for the Employee Manager server.
package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Supported transports
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config holds the complete configuration for the application
type Config struct {
	// MCP server configuration
	Server struct {
		Name      string
		Version   string
		Transport string
		Address   string
		BaseURL   string
	}

	// Logging configuration
	Log struct {
		Level  string
		Format string
	}

	// Leave chart configuration
	Chart struct {
		Width  int
		Height int
		Cap    int
	}

	// Slack notification configuration
	Slack struct {
		BotToken  string
		ChannelID string
	}
}

var (
	once   sync.Once
	config *Config
)

// Load initializes and loads the configuration from defaults, an optional
// config file named by EMPLOYEE_MANAGER_CONFIG, and EMPLOYEE_MANAGER_*
// environment variables.
func Load() *Config {
	once.Do(func() {
		v := viper.New()

		if path := os.Getenv("EMPLOYEE_MANAGER_CONFIG"); path != "" {
			v.SetConfigFile(path)

			if err := v.ReadInConfig(); err != nil {
				log.Warn("Could not read config file, using defaults", "path", path, "error", err)
			}
		}

		config = New(v)
	})

	return config
}

// New builds a Config from the given viper instance, applying defaults and
// environment overrides.
func New(v *viper.Viper) *Config {
	// Set default values
	v.SetDefault("server.name", "EmployeeManager")
	v.SetDefault("server.version", "1.0.0")
	v.SetDefault("server.transport", TransportStdio)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("chart.width", 800)
	v.SetDefault("chart.height", 500)
	v.SetDefault("chart.cap", 20)

	// Load from environment variables
	v.SetEnvPrefix("EMPLOYEE_MANAGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Slack keeps the conventional variable names as a fallback
	_ = v.BindEnv("slack.bot_token", "EMPLOYEE_MANAGER_SLACK_BOT_TOKEN", "SLACK_BOT_TOKEN")
	_ = v.BindEnv("slack.channel_id", "EMPLOYEE_MANAGER_SLACK_CHANNEL_ID", "SLACK_DEFAULT_CHANNEL_ID")

	cfg := &Config{}

	// Server
	cfg.Server.Name = v.GetString("server.name")
	cfg.Server.Version = v.GetString("server.version")
	cfg.Server.Transport = strings.ToLower(v.GetString("server.transport"))
	cfg.Server.Address = v.GetString("server.address")
	cfg.Server.BaseURL = v.GetString("server.base_url")

	// Logging
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = strings.ToLower(v.GetString("log.format"))

	// Chart
	cfg.Chart.Width = v.GetInt("chart.width")
	cfg.Chart.Height = v.GetInt("chart.height")
	cfg.Chart.Cap = v.GetInt("chart.cap")

	// Slack
	cfg.Slack.BotToken = v.GetString("slack.bot_token")
	cfg.Slack.ChannelID = v.GetString("slack.channel_id")

	return cfg
}

// Validate checks if all configuration values are usable
func (c *Config) Validate() error {
	// List of validation errors
	var errors []string

	if c.Server.Transport != TransportStdio && c.Server.Transport != TransportSSE {
		errors = append(errors, fmt.Sprintf("unknown transport %q", c.Server.Transport))
	}

	if c.Server.Transport == TransportSSE && c.Server.Address == "" {
		errors = append(errors, "SSE transport requires a listen address")
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errors = append(errors, fmt.Sprintf("unknown log level %q", c.Log.Level))
	}

	if c.Log.Format != "text" && c.Log.Format != "json" && c.Log.Format != "logfmt" {
		errors = append(errors, fmt.Sprintf("unknown log format %q", c.Log.Format))
	}

	if c.Chart.Width <= 0 || c.Chart.Height <= 0 || c.Chart.Cap <= 0 {
		errors = append(errors, "chart width, height and cap must be positive")
	}

	if c.Slack.BotToken != "" && c.Slack.ChannelID == "" {
		errors = append(errors, "Slack bot token is set but no channel id is configured")
	}

	// If any errors were found, return them as a combined error
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}
