package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/artem13815/lifeadvisor/pkg/advisor"
	"github.com/artem13815/lifeadvisor/pkg/llm/openai"
)

const (
	DefaultPort              = "3000"
	DefaultCompletionTimeout = 60 * time.Second
)

type Config struct {
	Port string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// AdvisorUserName is the person the system prompt addresses.
	AdvisorUserName   string
	CompletionTimeout time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", DefaultPort),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:     os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:       getEnv("OPENAI_MODEL", openai.DefaultModel),
		AdvisorUserName:   getEnv("ADVISOR_USER_NAME", advisor.DefaultUserName),
		CompletionTimeout: getEnvSeconds("COMPLETION_TIMEOUT_SECONDS", DefaultCompletionTimeout),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvSeconds reads a whole number of seconds; negative or malformed
// values fall back to def.
func getEnvSeconds(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return time.Duration(n) * time.Second
}
