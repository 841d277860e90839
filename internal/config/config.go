package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains authentication settings for the generation endpoints.
// When JWTSecret is empty, the API runs unauthenticated (local deployments).
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"omitempty,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gte=0"`
}

// LLMConfig contains all Gemini integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// TextModel handles brand analysis, validation verdicts, and scoring.
	TextModel string `mapstructure:"text_model" validate:"required"`

	// ImageModel handles asset image generation.
	ImageModel string `mapstructure:"image_model" validate:"required"`

	// MaxRetries bounds transient-error retries on text calls.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0"`

	// RetryDelaySeconds is the base delay for exponential backoff.
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=0"`
}
