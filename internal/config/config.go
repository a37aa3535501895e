package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Both binaries (server and board CLI) share this one struct.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Board client
	APIBaseURL string `mapstructure:"API_BASE_URL"`

	// Speech
	SpeechRate  float64 `mapstructure:"SPEECH_RATE"`  // 1.0 = normal speed
	SpeechPitch float64 `mapstructure:"SPEECH_PITCH"` // 1.0 = normal pitch
	Language    string  `mapstructure:"LANGUAGE"`     // en-US | pt-BR
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("API_BASE_URL", "http://localhost:5000")
	// Slightly below normal speed for clarity
	viper.SetDefault("SPEECH_RATE", 0.9)
	viper.SetDefault("SPEECH_PITCH", 1.0)
	viper.SetDefault("LANGUAGE", "en-US")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
