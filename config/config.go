package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Console specifics
	Agent      AgentConfig
	Attachment AttachmentConfig
	Session    SessionConfig
	Auth       AuthConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
	AllowedOrigins  []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AgentConfig points at the conversational agent backend.
type AgentConfig struct {
	BaseURL       string
	DefaultUserID string
}

type AttachmentConfig struct {
	MaxSizeBytes int64
	AllowedTypes []string
}

// SessionConfig tunes the conversation controller copy and the memory
// load indicator.
type SessionConfig struct {
	Greeting           string
	FailureMessage     string
	MemoryLoadCapacity int
}

// AuthConfig selects where the Google consent URL comes from. Mode
// "remote" asks the agent backend; mode "local" builds it from the
// client credentials below.
type AuthConfig struct {
	Mode               string
	GoogleClientID     string
	GoogleClientSecret string
	RedirectURL        string
	Scopes             []string
}

const (
	AuthModeRemote = "remote"
	AuthModeLocal  = "local"
)

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.HTTPServer.AllowedOrigins = splitList(viper.GetString("http_server.allowed_origins"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Agent backend
	cfg.Agent.BaseURL = viper.GetString("agent.base_url")
	cfg.Agent.DefaultUserID = viper.GetString("agent.default_user_id")
	if agentURL := viper.GetString("agent_base_url"); agentURL != "" {
		cfg.Agent.BaseURL = agentURL
	}

	// Attachments
	cfg.Attachment.MaxSizeBytes = viper.GetInt64("attachment.max_size_bytes")
	cfg.Attachment.AllowedTypes = splitList(viper.GetString("attachment.allowed_types"))

	// Session copy
	cfg.Session.Greeting = viper.GetString("session.greeting")
	cfg.Session.FailureMessage = viper.GetString("session.failure_message")
	cfg.Session.MemoryLoadCapacity = viper.GetInt("session.memory_load_capacity")

	// Auth
	cfg.Auth.Mode = viper.GetString("auth.mode")
	cfg.Auth.GoogleClientID = viper.GetString("auth.google_client_id")
	cfg.Auth.GoogleClientSecret = viper.GetString("auth.google_client_secret")
	cfg.Auth.RedirectURL = viper.GetString("auth.redirect_url")
	cfg.Auth.Scopes = splitList(viper.GetString("auth.scopes"))
	if clientID := viper.GetString("google_client_id"); clientID != "" {
		cfg.Auth.GoogleClientID = clientID
	}
	if clientSecret := viper.GetString("google_client_secret"); clientSecret != "" {
		cfg.Auth.GoogleClientSecret = clientSecret
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Agent.BaseURL == "" {
		return fmt.Errorf("agent.base_url is required")
	}
	switch cfg.Auth.Mode {
	case AuthModeRemote:
	case AuthModeLocal:
		if cfg.Auth.GoogleClientID == "" {
			return fmt.Errorf("auth.google_client_id is required in local auth mode")
		}
		if cfg.Auth.RedirectURL == "" {
			return fmt.Errorf("auth.redirect_url is required in local auth mode")
		}
	default:
		return fmt.Errorf("auth.mode must be %q or %q, got %q", AuthModeRemote, AuthModeLocal, cfg.Auth.Mode)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("agent.base_url", "http://localhost:5000")
	viper.SetDefault("agent.default_user_id", "demo_user")

	viper.SetDefault("attachment.max_size_bytes", 5*1024*1024)

	viper.SetDefault("session.memory_load_capacity", 50)

	viper.SetDefault("auth.mode", AuthModeRemote)
}

// splitList splits a comma-separated value since viper might not parse
// arrays seamlessly from env.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
