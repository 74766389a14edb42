package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName and AppVersion identify the service in logs and metadata.
	AppName    = "Patient 360 Backend"
	AppVersion = "0.1.0"

	// DefaultGeminiModel is used when GEMINI_MODEL is unset.
	DefaultGeminiModel = "gemini-1.5-flash"
)

type Config struct {
	Port         string   `mapstructure:"PORT"`
	Env          string   `mapstructure:"ENV"`
	BackendDBURL string   `mapstructure:"BACKEND_DB_URL"`
	GeminiAPIKey string   `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string   `mapstructure:"GEMINI_MODEL"`
	CORSOrigins  []string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("GEMINI_MODEL", DefaultGeminiModel)
	v.SetDefault("CORS_ORIGINS", "*")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("BACKEND_DB_URL")
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("GEMINI_MODEL")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.GeminiModel == "" {
		cfg.GeminiModel = DefaultGeminiModel
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// DBConfigured reports whether a backing database URL is present. The portal
// never opens a connection; the flag only feeds the health payload.
func (c *Config) DBConfigured() bool {
	return c.BackendDBURL != ""
}
