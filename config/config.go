package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Upstream  UpstreamConfig  `mapstructure:"upstream"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Session   SessionConfig   `mapstructure:"session"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Bus       BusConfig       `mapstructure:"bus"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// UpstreamConfig points at the travel REST backend that owns persistence and balances.
type UpstreamConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	CookieName string        `mapstructure:"cookie_name"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type SessionConfig struct {
	// DefaultTTL applies when the upstream token carries no exp claim.
	DefaultTTL      time.Duration `mapstructure:"default_ttl"`
	ConfirmationTTL time.Duration `mapstructure:"confirmation_ttl"`
	SecureCookie    bool          `mapstructure:"secure_cookie"`
}

type CacheConfig struct {
	DebounceWindow time.Duration `mapstructure:"debounce_window"`
	KeepUnusedFor  time.Duration `mapstructure:"keep_unused_for"`
	PruneInterval  time.Duration `mapstructure:"prune_interval"`
}

type BusConfig struct {
	// Driver is "redis" or "memory".
	Driver           string        `mapstructure:"driver"`
	InstanceID       string        `mapstructure:"instance_id"`
	ClaimMinIdleTime time.Duration `mapstructure:"claim_min_idle_time"`
	MaxRetryCount    int           `mapstructure:"max_retry_count"`
	MaxLen           int64         `mapstructure:"max_len"`
}

type TelemetryConfig struct {
	Enabled       bool    `mapstructure:"enabled"`
	ServiceName   string  `mapstructure:"service_name"`
	CollectorAddr string  `mapstructure:"collector_addr"`
	SampleRatio   float64 `mapstructure:"sample_ratio"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

var AppConfig *Config

// LoadConfig reads an optional YAML file at path and lets BACKOFFICE_* environment
// variables override any key (server.port -> BACKOFFICE_SERVER_PORT).
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("backoffice")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = cfg
	return cfg, nil
}

func LoadTestConfig() *Config {
	v := viper.New()
	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		panic(err)
	}

	cfg.Database.Port = "5433" // test DB on 5433
	cfg.Database.DBName = "test_db"
	cfg.Redis.Port = "6380" // test Redis on 6380
	cfg.Redis.DB = 1
	cfg.Bus.Driver = "memory"
	cfg.Cache.DebounceWindow = 20 * time.Millisecond
	return cfg
}

func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return errors.New("upstream.base_url is required")
	}
	if c.Upstream.Timeout <= 0 {
		return errors.New("upstream.timeout must be positive")
	}
	if c.Cache.DebounceWindow <= 0 {
		return errors.New("cache.debounce_window must be positive")
	}
	switch c.Bus.Driver {
	case "redis", "memory":
	default:
		return fmt.Errorf("bus.driver %q is not supported", c.Bus.Driver)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "45s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("upstream.base_url", "http://localhost:5001/api/v1")
	v.SetDefault("upstream.timeout", "30s")
	v.SetDefault("upstream.cookie_name", "token")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "postgres")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("session.default_ttl", "24h")
	v.SetDefault("session.confirmation_ttl", "2m")
	v.SetDefault("session.secure_cookie", false)

	v.SetDefault("cache.debounce_window", "500ms")
	v.SetDefault("cache.keep_unused_for", "60s")
	v.SetDefault("cache.prune_interval", "30s")

	v.SetDefault("bus.driver", "redis")
	v.SetDefault("bus.instance_id", "")
	v.SetDefault("bus.claim_min_idle_time", "5s")
	v.SetDefault("bus.max_retry_count", 5)
	v.SetDefault("bus.max_len", 10000)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "travel-backoffice")
	v.SetDefault("telemetry.collector_addr", "localhost:4317")
	v.SetDefault("telemetry.sample_ratio", 1.0)

	v.SetDefault("log.level", "info")
}
