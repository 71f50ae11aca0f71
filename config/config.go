package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Port         string `mapstructure:"port"`
	StaticDir    string `mapstructure:"static_dir"`
	AIProvider   string `mapstructure:"ai_provider"`
	Model        string `mapstructure:"model"`
	AIEndpoint   string `mapstructure:"ai_endpoint"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("port", "8000")
	v.SetDefault("static_dir", "static")
	v.SetDefault("ai_provider", ProviderGemini)
	v.SetDefault("model", "gemini-pro")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("OPENAI_API_KEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
