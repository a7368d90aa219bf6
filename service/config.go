package service

import "os"

type Config struct {
	Environment string
	Port        string
	BaseURL     string

	OpenAI struct {
		APIKey string
		Model  string
	}
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "3001"),
	}
	config.BaseURL = getEnv("BASE_URL", "http://localhost:"+config.Port)

	// OpenAI
	config.OpenAI.APIKey = getEnv("OPENAI_API_KEY", "")
	config.OpenAI.Model = getEnv("OPENAI_MODEL", "gpt-4o")

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
