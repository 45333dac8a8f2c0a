package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Keycloak-issued tokens are verified with this shared secret in
	// development; production deployments point JWTSigningKey at the realm key.
	JWTSigningKey string

	// LLM configuration
	LLMProvider    string // "deepseek" (hosted) or "ollama" (local)
	DeepSeekAPIKey string
	DeepSeekAPIURL string
	OllamaHost     string
	OllamaModel    string
	LLMTimeout     time.Duration

	// Image generation
	OpenAIAPIKey string
	ImageAPIURL  string

	// Generation pipeline
	MaxGenerationAttempts int
	BatchConcurrency      int
}

// Load creates a Config from the environment. A .env file in the working
// directory is honored when present but never required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     envOrSecretFile("DB_USER", "postgres"),
		DBPassword: envOrSecretFile("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "culinarycode"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: envOrSecretFile("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisURL:      getEnv("REDIS_URL", ""),

		JWTSigningKey: envOrSecretFile("JWT_SIGNING_KEY", ""),

		LLMProvider:    getEnv("LLM_PROVIDER", "deepseek"),
		DeepSeekAPIKey: envOrSecretFile("DEEPSEEK_API_KEY", ""),
		DeepSeekAPIURL: getEnv("DEEPSEEK_API_URL", "https://api.deepseek.com/v1/chat/completions"),
		OllamaHost:     getEnv("OLLAMA_HOST", "http://localhost:11434"),
		OllamaModel:    getEnv("OLLAMA_MODEL", "llama3.2:3b"),
		LLMTimeout:     getEnvDuration("LLM_TIMEOUT", 60*time.Second),

		OpenAIAPIKey: envOrSecretFile("OPENAI_API_KEY", ""),
		ImageAPIURL:  getEnv("IMAGE_API_URL", "https://api.openai.com/v1/images/generations"),

		MaxGenerationAttempts: getEnvInt("MAX_GENERATION_ATTEMPTS", 3),
		BatchConcurrency:      getEnvInt("BATCH_CONCURRENCY", 4),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.LLMProvider != "deepseek" && c.LLMProvider != "ollama" {
		return fmt.Errorf("LLM_PROVIDER must be deepseek or ollama, got %q", c.LLMProvider)
	}
	if c.LLMProvider == "deepseek" && c.DeepSeekAPIKey == "" && !IsTest() && !IsCI() {
		return fmt.Errorf("DEEPSEEK_API_KEY or DEEPSEEK_API_KEY_FILE must be set")
	}
	if c.MaxGenerationAttempts < 1 {
		return fmt.Errorf("MAX_GENERATION_ATTEMPTS must be at least 1")
	}
	if c.BatchConcurrency < 1 {
		return fmt.Errorf("BATCH_CONCURRENCY must be at least 1")
	}
	return nil
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// envOrSecretFile reads KEY, falling back to the file named by KEY_FILE.
// Docker secrets are mounted as files, so production deployments set the
// *_FILE variant instead of putting credentials in the environment.
func envOrSecretFile(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if path := os.Getenv(key + "_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return fallback
}
