package config

import (
	"time"
)

type AIConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Endpoint    string        `yaml:"endpoint"`
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	Temperature float64       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

func loadAIConfig() *AIConfig {
	return &AIConfig{
		Enabled:     getEnvAsBool("AI_ENABLED", false),
		Endpoint:    getEnv("AI_ENDPOINT", "https://api.openai.com"),
		APIKey:      getEnv("AI_API_KEY", ""),
		Model:       getEnv("AI_MODEL", "gpt-4o-mini"),
		Temperature: getEnvAsFloat64("AI_TEMPERATURE", 0.2),
		Timeout:     getEnvAsDuration("AI_TIMEOUT", 25*time.Second),
	}
}
