package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP            HTTPConfig            `yaml:"http"`
	AI              AIConfig              `yaml:"ai"`
	Recommendations RecommendationsConfig `yaml:"recommendations"`
	Storage         StorageConfig         `yaml:"storage"`
	Catalog         CatalogConfig         `yaml:"catalog"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
	Retry        RetryConfig     `yaml:"retry"`
	CORS         CORSConfig      `yaml:"cors"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// AIConfig groups the orchestrator knobs and both provider blocks.
type AIConfig struct {
	CallTimeout   time.Duration `yaml:"callTimeout"`
	RecoveryAfter time.Duration `yaml:"recoveryAfter"`
	OpenAI        OpenAIConfig  `yaml:"openai"`
	Gemini        GeminiConfig  `yaml:"gemini"`
}

// OpenAIConfig holds the primary provider settings.
type OpenAIConfig struct {
	APIKey               string  `yaml:"apiKey"`
	BaseURL              string  `yaml:"baseUrl"`
	Model                string  `yaml:"model"`
	Temperature          float32 `yaml:"temperature"`
	AdviceMaxTokens      int     `yaml:"adviceMaxTokens"`
	InsightsMaxTokens    int     `yaml:"insightsMaxTokens"`
	DescriptionMaxTokens int     `yaml:"descriptionMaxTokens"`
}

// GeminiConfig holds the secondary provider settings.
type GeminiConfig struct {
	APIKey          string  `yaml:"apiKey"`
	Model           string  `yaml:"model"`
	Temperature     float32 `yaml:"temperature"`
	MaxOutputTokens int32   `yaml:"maxOutputTokens"`
}

// RecommendationsConfig tunes the preference matcher service.
type RecommendationsConfig struct {
	DefaultLimit int `yaml:"defaultLimit"`
	TrendingSize int `yaml:"trendingSize"`
}

// StorageConfig selects the optional durable backends.
type StorageConfig struct {
	Postgres PostgresConfig `yaml:"postgres"`
	Valkey   ValkeyConfig   `yaml:"valkey"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ValkeyConfig contains connection information for the trending store.
type ValkeyConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Addr      string `yaml:"addr"`
	KeyPrefix string `yaml:"keyPrefix"`
}

// CatalogConfig optionally replaces the embedded seed data.
type CatalogConfig struct {
	SeedPath string `yaml:"seedPath"`
}

// Load reads configuration from .env, a YAML file and environment variables.
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.HTTP.Address, "HTTP_ADDRESS")
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.CORS.AllowedOrigins = splitList(v)
	}
	setBool(&cfg.HTTP.RateLimit.Enabled, "HTTP_RATE_LIMIT_ENABLED")
	setInt(&cfg.HTTP.RateLimit.RequestsPerMinute, "HTTP_RATE_LIMIT_RPM")
	setInt(&cfg.HTTP.RateLimit.Burst, "HTTP_RATE_LIMIT_BURST")
	setBool(&cfg.HTTP.Retry.Enabled, "HTTP_RETRY_ENABLED")
	setInt(&cfg.HTTP.Retry.MaxAttempts, "HTTP_RETRY_MAX_ATTEMPTS")
	setDuration(&cfg.HTTP.Retry.BaseBackoff, "HTTP_RETRY_BASE_BACKOFF")

	setDuration(&cfg.AI.CallTimeout, "AI_CALL_TIMEOUT")
	setDuration(&cfg.AI.RecoveryAfter, "AI_RECOVERY_AFTER")
	setString(&cfg.AI.OpenAI.APIKey, "OPENAI_API_KEY")
	setString(&cfg.AI.OpenAI.BaseURL, "OPENAI_BASE_URL")
	setString(&cfg.AI.OpenAI.Model, "OPENAI_MODEL")
	setString(&cfg.AI.Gemini.APIKey, "GEMINI_API_KEY")
	setString(&cfg.AI.Gemini.Model, "GEMINI_MODEL")

	setInt(&cfg.Recommendations.DefaultLimit, "RECOMMENDATIONS_DEFAULT_LIMIT")

	setString(&cfg.Storage.Postgres.DSN, "POSTGRES_DSN")
	if v := os.Getenv("POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Storage.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Storage.Postgres.MinConns = int32(parsed)
		}
	}
	setBool(&cfg.Storage.Valkey.Enabled, "VALKEY_ENABLED")
	setString(&cfg.Storage.Valkey.Addr, "VALKEY_ADDR")

	setString(&cfg.Catalog.SeedPath, "CATALOG_SEED_PATH")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "1" || strings.EqualFold(v, "true")
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address: ":8080",
			// Provider calls may take up to ai.callTimeout per provider.
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/api/chat",
					"/api/recommendations",
				},
			},
			CORS: CORSConfig{
				AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
			},
		},
		AI: AIConfig{
			CallTimeout: 20 * time.Second,
			OpenAI: OpenAIConfig{
				Model:                "gpt-4o",
				Temperature:          0.7,
				AdviceMaxTokens:      1000,
				InsightsMaxTokens:    800,
				DescriptionMaxTokens: 500,
			},
			Gemini: GeminiConfig{
				Model:           "gemini-2.5-flash",
				Temperature:     0.7,
				MaxOutputTokens: 1000,
			},
		},
		Recommendations: RecommendationsConfig{
			DefaultLimit: 10,
			TrendingSize: 10,
		},
		Storage: StorageConfig{
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
			Valkey: ValkeyConfig{
				KeyPrefix: "culture-compass",
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	if c.AI.CallTimeout <= 0 {
		return errors.New("ai.callTimeout must be positive")
	}
	if c.AI.RecoveryAfter < 0 {
		return errors.New("ai.recoveryAfter cannot be negative")
	}
	if strings.TrimSpace(c.AI.OpenAI.Model) == "" {
		return errors.New("ai.openai.model cannot be empty")
	}
	if strings.TrimSpace(c.AI.Gemini.Model) == "" {
		return errors.New("ai.gemini.model cannot be empty")
	}
	if c.Recommendations.DefaultLimit <= 0 {
		return errors.New("recommendations.defaultLimit must be positive")
	}
	if c.Recommendations.TrendingSize <= 0 {
		return errors.New("recommendations.trendingSize must be positive")
	}
	if c.Storage.Postgres.MinConns < 0 || c.Storage.Postgres.MaxConns < 0 {
		return errors.New("storage.postgres pool sizes cannot be negative")
	}
	if c.Storage.Valkey.Enabled && strings.TrimSpace(c.Storage.Valkey.Addr) == "" {
		return errors.New("storage.valkey.addr cannot be empty when valkey is enabled")
	}
	return nil
}
