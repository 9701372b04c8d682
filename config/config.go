package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LLMConfig holds the chat-completions provider settings. The primary
// model is tried first; fallback models are tried in order when it fails.
type LLMConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	FallbackModels []string
	MaxRetries     int
	TimeoutSeconds int
}

type AppConfig struct {
	Port        string
	Database    DatabaseConfig
	LLM         LLMConfig
	JWTSecret   string
	Environment string
}

func GetDatabaseConfig() DatabaseConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	password := getEnv("DB_PASSWORD", "")

	if password == "" {
		fmt.Println("⚠️  Warning: DB_PASSWORD environment variable is not set.")
		fmt.Println("   Set DB_PASSWORD before starting the server.")
	}

	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: password,
		DBName:   getEnv("DB_NAME", "careeragent"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func GetLLMConfig() LLMConfig {
	retries, _ := strconv.Atoi(getEnv("LLM_MAX_RETRIES", "3"))
	if retries <= 0 {
		retries = 3
	}
	timeout, _ := strconv.Atoi(getEnv("LLM_TIMEOUT_SECONDS", "60"))
	if timeout <= 0 {
		timeout = 60
	}

	return LLMConfig{
		APIKey:         getEnv("LLM_API_KEY", ""),
		BaseURL:        getEnv("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
		Model:          getEnv("LLM_MODEL", "openai/gpt-4o-mini"),
		FallbackModels: splitModels(getEnv("FALLBACK_MODELS", "google/gemini-flash-1.5,meta-llama/llama-3.1-8b-instruct")),
		MaxRetries:     retries,
		TimeoutSeconds: timeout,
	}
}

func GetAppConfig() AppConfig {
	return AppConfig{
		Port:        getEnv("PORT", "8081"),
		Database:    GetDatabaseConfig(),
		LLM:         GetLLMConfig(),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func splitModels(raw string) []string {
	var models []string
	for _, m := range strings.Split(raw, ",") {
		m = strings.TrimSpace(m)
		if m != "" {
			models = append(models, m)
		}
	}
	return models
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
