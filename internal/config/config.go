package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Map store backends.
const (
	MapStoreMemory   = "memory"
	MapStorePostgres = "postgres"
)

// Config holds every setting of the service. Values come from an optional
// app.env file and are overridden by environment variables.
type Config struct {
	Host      string `mapstructure:"HOST"`
	Port      int    `mapstructure:"PORT"`
	GinMode   string `mapstructure:"GIN_MODE"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	OverpassURL          string        `mapstructure:"OVERPASS_URL"`
	OverpassTimeout      time.Duration `mapstructure:"OVERPASS_TIMEOUT"`
	SearchRadius         float64       `mapstructure:"SEARCH_RADIUS"`
	ResultLimit          int           `mapstructure:"RESULT_LIMIT"`
	MaxConcurrentQueries int           `mapstructure:"MAX_CONCURRENT_QUERIES"`

	MapStore         string `mapstructure:"MAP_STORE"`
	MapStoreCapacity int    `mapstructure:"MAP_STORE_CAPACITY"`
	DBSource         string `mapstructure:"DB_SOURCE"`

	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`
}

var defaults = map[string]any{
	"HOST":       "0.0.0.0",
	"PORT":       5000,
	"GIN_MODE":   "release",
	"LOG_LEVEL":  "info",
	"LOG_FORMAT": "json",

	"OVERPASS_URL":           "http://overpass-api.de/api/interpreter",
	"OVERPASS_TIMEOUT":       "30s",
	"SEARCH_RADIUS":          10000.0,
	"RESULT_LIMIT":           10,
	"MAX_CONCURRENT_QUERIES": 4,

	"MAP_STORE":          MapStoreMemory,
	"MAP_STORE_CAPACITY": 100,
	"DB_SOURCE":          "",

	"REDIS_ADDR":     "",
	"REDIS_PASSWORD": "",
	"REDIS_DB":       0,
	"CACHE_TTL":      "10m",
}

// LoadConfig reads app.env from path if present, applies environment
// overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ServerAddress is the host:port the HTTP server listens on.
func (c *Config) ServerAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *Config) validate() error {
	switch {
	case c.Port < 1 || c.Port > 65535:
		return fmt.Errorf("config: invalid PORT %d", c.Port)
	case c.OverpassURL == "":
		return fmt.Errorf("config: OVERPASS_URL must not be empty")
	case c.OverpassTimeout <= 0:
		return fmt.Errorf("config: OVERPASS_TIMEOUT must be positive")
	case c.SearchRadius <= 0:
		return fmt.Errorf("config: SEARCH_RADIUS must be positive")
	case c.ResultLimit < 1:
		return fmt.Errorf("config: RESULT_LIMIT must be at least 1")
	case c.MaxConcurrentQueries < 1:
		return fmt.Errorf("config: MAX_CONCURRENT_QUERIES must be at least 1")
	}

	switch c.MapStore {
	case MapStoreMemory:
		if c.MapStoreCapacity < 1 {
			return fmt.Errorf("config: MAP_STORE_CAPACITY must be at least 1")
		}
	case MapStorePostgres:
		if c.DBSource == "" {
			return fmt.Errorf("config: DB_SOURCE is required when MAP_STORE=%s", MapStorePostgres)
		}
	default:
		return fmt.Errorf("config: unknown MAP_STORE %q", c.MapStore)
	}

	return nil
}
