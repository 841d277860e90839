package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values applied when the environment does not override them.
const (
	defaultPort              = 8080
	defaultLogLevel          = "info"
	defaultTextModel         = "gemini-3-flash-preview"
	defaultImageModel        = "gemini-3-pro-image-preview"
	defaultMaxRetries        = 3
	defaultRetryDelaySeconds = 2
	defaultTokenLifetime     = 60
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("auth.token_lifetime_minutes", defaultTokenLifetime)
	v.SetDefault("llm.text_model", defaultTextModel)
	v.SetDefault("llm.image_model", defaultImageModel)
	v.SetDefault("llm.max_retries", defaultMaxRetries)
	v.SetDefault("llm.retry_delay_seconds", defaultRetryDelaySeconds)

	// Environment variables use the BRANDFORGE_ prefix with underscores
	// replacing the dots of config keys, e.g. BRANDFORGE_LLM_GEMINI_API_KEY.
	v.SetEnvPrefix("BRANDFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicit binds so AutomaticEnv sees nested keys even without a file.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"auth.jwt_secret",
		"auth.token_lifetime_minutes",
		"llm.gemini_api_key",
		"llm.text_model",
		"llm.image_model",
		"llm.max_retries",
		"llm.retry_delay_seconds",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
