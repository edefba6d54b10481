package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"cosmoport/shipyard/internal/constants"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv    string
	LogLevel  string
	HTTP      HTTPConfig
	Postgres  PostgresConfig
	Store     StoreConfig
	Cache     CacheConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type HTTPConfig struct {
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DB       string
	SSLMode  string
}

type StoreConfig struct {
	// Driver is one of: gorm | sqlx.
	Driver string
}

type CacheConfig struct {
	// Backend is one of: none | memory | redis.
	Backend string
	TTL     time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	// RequestsPerSecond <= 0 disables rate limiting.
	RequestsPerSecond float64
	Burst             int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("HTTP_READ_TIMEOUT_SECONDS", 15)
	v.SetDefault("HTTP_WRITE_TIMEOUT_SECONDS", 15)
	v.SetDefault("HTTP_IDLE_TIMEOUT_SECONDS", 60)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "https://*,http://localhost:8081")

	v.SetDefault("PG_HOST", "localhost")
	v.SetDefault("PG_PORT", "5432")
	v.SetDefault("PG_USER", "postgres")
	v.SetDefault("PG_PASSWORD", "postgres")
	v.SetDefault("PG_DB", "cosmoport")
	v.SetDefault("PG_SSLMODE", "disable")

	v.SetDefault("STORE_DRIVER", constants.StoreDriverGORM)
	v.SetDefault("CACHE_BACKEND", constants.CacheBackendMemory)
	v.SetDefault("CACHE_TTL_SECONDS", 60)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
}

// Load reads configuration from defaults, an optional TOML file named configName
// (searched in ./config and .), an optional .env file and the environment, in
// increasing order of precedence.
func Load(configName string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	if configName == "" {
		configName = os.Getenv("CONFIG_NAME")
	}
	if configName == "" {
		configName = "config"
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		AppEnv:   v.GetString("APP_ENV"),
		LogLevel: v.GetString("LOG_LEVEL"),
		HTTP: HTTPConfig{
			Port:           v.GetInt("HTTP_PORT"),
			ReadTimeout:    time.Duration(v.GetInt("HTTP_READ_TIMEOUT_SECONDS")) * time.Second,
			WriteTimeout:   time.Duration(v.GetInt("HTTP_WRITE_TIMEOUT_SECONDS")) * time.Second,
			IdleTimeout:    time.Duration(v.GetInt("HTTP_IDLE_TIMEOUT_SECONDS")) * time.Second,
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Postgres: PostgresConfig{
			Host:     v.GetString("PG_HOST"),
			Port:     v.GetString("PG_PORT"),
			User:     v.GetString("PG_USER"),
			Password: v.GetString("PG_PASSWORD"),
			DB:       v.GetString("PG_DB"),
			SSLMode:  v.GetString("PG_SSLMODE"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(v.GetString("STORE_DRIVER")),
		},
		Cache: CacheConfig{
			Backend: strings.ToLower(v.GetString("CACHE_BACKEND")),
			TTL:     time.Duration(v.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.HTTP.Port)
	}

	switch c.Store.Driver {
	case constants.StoreDriverGORM, constants.StoreDriverSQLX:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q",
			constants.StoreDriverGORM, constants.StoreDriverSQLX, c.Store.Driver)
	}

	switch c.Cache.Backend {
	case constants.CacheBackendNone, constants.CacheBackendMemory, constants.CacheBackendRedis:
	default:
		return fmt.Errorf("CACHE_BACKEND must be one of none, memory, redis, got %q", c.Cache.Backend)
	}

	if c.Cache.Backend != constants.CacheBackendNone && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must be positive when caching is enabled")
	}

	if c.Postgres.Host == "" || c.Postgres.DB == "" {
		return fmt.Errorf("PG_HOST and PG_DB are required")
	}

	if c.RateLimit.RequestsPerSecond > 0 && c.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive when rate limiting is enabled")
	}

	return nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Password,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.DB,
		c.Postgres.SSLMode,
	)
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
