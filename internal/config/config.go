package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Internal  InternalConfig  `mapstructure:"internal"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Legacy    LegacyConfig    `mapstructure:"legacy"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Retention RetentionConfig `mapstructure:"retention"`
	Shields   ShieldsConfig   `mapstructure:"shields"`
	RocketMQ  RocketMQConfig  `mapstructure:"rocketmq"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port     int    `mapstructure:"port"`
	Mode     string `mapstructure:"mode"`
	Homepage string `mapstructure:"homepage"`
}

// InternalConfig controls the per-badge entity API.
// It is served on its own listener, never on the public port.
type InternalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port"`
	Token   string `mapstructure:"token"`
}

// DatabaseConfig represents database configuration.
// Backend selects where per-badge state is stored: mysql, redis or memory.
type DatabaseConfig struct {
	Backend string      `mapstructure:"backend"`
	MySQL   MySQLConfig `mapstructure:"mysql"`
	Redis   RedisConfig `mapstructure:"redis"`
}

// MySQLConfig represents MySQL configuration
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LegacyConfig points at the read-only legacy counter store
type LegacyConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
	Salt  string      `mapstructure:"salt"`
}

// LimitClass is one sliding window quota
type LimitClass struct {
	MaxRequests int           `mapstructure:"max_requests"`
	Window      time.Duration `mapstructure:"window"`
}

// RateLimitConfig represents per-badge quota classes
type RateLimitConfig struct {
	Badge     LimitClass `mapstructure:"badge"`
	Analytics LimitClass `mapstructure:"analytics"`
}

// RetentionConfig controls analytics retention and cleanup scheduling
type RetentionConfig struct {
	Window          time.Duration `mapstructure:"window"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	SweepInterval   time.Duration `mapstructure:"sweep_interval"`
	SweepBatch      int           `mapstructure:"sweep_batch"`
	IdleTTL         time.Duration `mapstructure:"idle_ttl"`
}

// ShieldsConfig represents the badge rendering service configuration
type ShieldsConfig struct {
	URL      string        `mapstructure:"url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	RPS      float64       `mapstructure:"rps"`
	Burst    int           `mapstructure:"burst"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// RocketMQConfig represents RocketMQ configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables
	cfg.Database.Redis.Password = expandEnv(cfg.Database.Redis.Password)
	cfg.Database.MySQL.DSN = expandEnv(cfg.Database.MySQL.DSN)
	cfg.Legacy.Redis.Password = expandEnv(cfg.Legacy.Redis.Password)
	cfg.Legacy.Salt = expandEnv(cfg.Legacy.Salt)
	cfg.Internal.Token = expandEnv(cfg.Internal.Token)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values viper cannot express as defaults
func (c *Config) Validate() error {
	switch c.Database.Backend {
	case "mysql", "redis", "memory":
	default:
		return fmt.Errorf("unsupported database backend %q", c.Database.Backend)
	}
	if c.Internal.Enabled && (c.Internal.Port <= 0 || c.Internal.Port == c.Server.Port) {
		return fmt.Errorf("internal port must be set and differ from the server port")
	}
	for name, class := range map[string]LimitClass{"badge": c.RateLimit.Badge, "analytics": c.RateLimit.Analytics} {
		if class.MaxRequests <= 0 || class.Window <= 0 {
			return fmt.Errorf("invalid %s rate limit: max_requests and window must be positive", name)
		}
	}
	if c.Retention.Window <= 0 {
		return fmt.Errorf("retention window must be positive")
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.homepage", "https://github.com/Nathan13888/VisitorBadgeReloaded")
	v.SetDefault("internal.enabled", false)
	v.SetDefault("internal.port", 8081)
	v.SetDefault("database.backend", "mysql")
	v.SetDefault("legacy.salt", "guess_what")
	v.SetDefault("ratelimit.badge.max_requests", 60)
	v.SetDefault("ratelimit.badge.window", time.Minute)
	v.SetDefault("ratelimit.analytics.max_requests", 30)
	v.SetDefault("ratelimit.analytics.window", time.Minute)
	v.SetDefault("retention.window", 14*24*time.Hour)
	v.SetDefault("retention.cleanup_interval", 6*time.Hour)
	v.SetDefault("retention.sweep_interval", time.Minute)
	v.SetDefault("retention.sweep_batch", 100)
	v.SetDefault("retention.idle_ttl", 15*time.Minute)
	v.SetDefault("shields.url", "https://img.shields.io")
	v.SetDefault("shields.timeout", 5*time.Second)
	v.SetDefault("shields.rps", 50.0)
	v.SetDefault("shields.burst", 100)
	v.SetDefault("shields.cache_ttl", 10*time.Minute)
	v.SetDefault("rocketmq.topic", "badge_hits")
	v.SetDefault("rocketmq.group", "badge_hit_consumer_group")
}

// expandEnv expands a ${VAR} placeholder from the environment
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envKey := s[2 : len(s)-1]
		return os.Getenv(envKey)
	}
	return s
}
