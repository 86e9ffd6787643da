package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"canvas-assistant-backend/internal/logx"
)

// Environment is the deployment environment of the service.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

func (e Environment) IsProduction() bool { return e == Production }

// ParseEnvironment falls back to Development for unknown values.
func ParseEnvironment(v string) Environment {
	switch Environment(strings.ToLower(strings.TrimSpace(v))) {
	case Production:
		return Production
	case Staging:
		return Staging
	default:
		return Development
	}
}

type Config struct {
	Port          string
	AllowedOrigin string
	Environment   Environment
	LogLevel      string
	// OpenAI enhancement; disabled when the key is empty
	OpenAIAPIKey  string
	OpenAIBaseURL string
	Model         string
	// Enhancement call guard
	EnhanceTimeout    time.Duration
	EnhanceMinLength  int
	EnhancePromptFile string
	// Enhanced reply cache. Redis is used when RedisURL is set, otherwise an
	// in-process map. CacheTTL <= 0 disables caching.
	CacheTTL        time.Duration
	CacheMaxEntries int
	RedisURL        string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:              getEnvDefault("PORT", "3000"),
		AllowedOrigin:     getEnvDefault("ALLOWED_ORIGIN", "*"),
		Environment:       ParseEnvironment(os.Getenv("APP_ENV")),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:     os.Getenv("OPENAI_BASE_URL"),
		Model:             getEnvDefault("OPENAI_MODEL", "gpt-4o-mini"),
		EnhanceTimeout:    getEnvDurationDefault("ENHANCE_TIMEOUT", 8*time.Second),
		EnhanceMinLength:  getEnvIntDefault("ENHANCE_MIN_LENGTH", 10),
		EnhancePromptFile: os.Getenv("ENHANCE_PROMPT_FILE"),
		CacheTTL:          getEnvDurationDefault("CACHE_TTL", 10*time.Minute),
		CacheMaxEntries:   getEnvIntDefault("CACHE_MAX_ENTRIES", 1000),
		RedisURL:          os.Getenv("REDIS_URL"),
	}
	if cfg.OpenAIAPIKey == "" {
		logx.Warn().Msg("OPENAI_API_KEY is not set; replies will not be AI-enhanced")
	}
	return cfg
}

// AIEnabled reports whether replies go through the OpenAI enhancer.
func (c Config) AIEnabled() bool {
	return strings.TrimSpace(c.OpenAIAPIKey) != ""
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntDefault(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
		logx.Warn().Str("key", key).Str("value", v).Msg("ignoring invalid integer")
	}
	return def
}

// getEnvDurationDefault accepts Go durations ("8s", "1m30s") or a bare number
// of seconds.
func getEnvDurationDefault(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	logx.Warn().Str("key", key).Str("value", v).Msg("ignoring invalid duration")
	return def
}
