package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	OpenAI   OpenAIConfig
	Gemini   GeminiConfig
	Matching MatchingConfig
	Upload   UploadConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	Debug       bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type OpenAIConfig struct {
	APIKey              string
	EmbeddingModel      string
	EmbeddingDimensions int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type MatchingConfig struct {
	CacheSize         int
	CacheTTL          time.Duration
	SemanticWeight    float64
	RuleWeight        float64
	MinMatchScore     float64
	DefaultMatchLimit int
	MaxPerQuery       int
}

type UploadConfig struct {
	MaxUploadSize int64
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidWeights     = errors.New("SEMANTIC_WEIGHT and RULE_WEIGHT must sum to 1.0")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		Debug:       optBool("APP_DEBUG", false),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: optDuration("DB_CONNECT_TIMEOUT_SECONDS", 0),
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:   int32(optInt("DB_POOL_MIN_CONNS", 0)),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      optDuration("REDIS_TTL_SECONDS", 600*time.Second),
	}

	cfg.OpenAI = OpenAIConfig{
		APIKey:              req("OPENAI_API_KEY"),
		EmbeddingModel:      opt("EMBEDDING_MODEL"),
		EmbeddingDimensions: optInt("EMBEDDING_DIMENSIONS", 0),
	}

	cfg.Gemini = GeminiConfig{
		APIKey: opt("GEMINI_API_KEY"),
		Model:  opt("GEMINI_MODEL"),
	}

	cfg.Matching = MatchingConfig{
		CacheSize:         optInt("CACHE_SIZE", 1000),
		CacheTTL:          optDuration("CACHE_TTL_SECONDS", 3600*time.Second),
		SemanticWeight:    optFloat("SEMANTIC_WEIGHT", 0.6),
		RuleWeight:        optFloat("RULE_WEIGHT", 0.4),
		MinMatchScore:     optFloat("MIN_MATCH_SCORE", 40.0),
		DefaultMatchLimit: optInt("DEFAULT_MATCH_LIMIT", 50),
		MaxPerQuery:       optInt("MAX_PER_QUERY", 1000),
	}

	cfg.Upload = UploadConfig{
		MaxUploadSize: int64(optInt("MAX_UPLOAD_SIZE", 10*1024*1024)),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if math.Abs(cfg.Matching.SemanticWeight+cfg.Matching.RuleWeight-1.0) > 1e-9 {
		return Config{}, errInvalidWeights
	}

	return cfg, nil
}

func optInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func optFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func optBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func optDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
