package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus metrics listener
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// rate limits
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
	SyncRateLimitAllowedPerMin  int `toml:"sync_rate_limit_allowed_per_min"`

	// hevy api (workout source)
	HevyBaseURL         string `toml:"hevy_base_url"`
	HevyCacheTTLSeconds int    `toml:"hevy_cache_ttl_seconds"`

	// progression tuning, all weights in kg
	UpperBodyIncrementKg float64 `toml:"upper_body_increment_kg"`
	LowerBodyIncrementKg float64 `toml:"lower_body_increment_kg"`
	MinBarWeightKg       float64 `toml:"min_bar_weight_kg"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development", "ddev", "dockerdev":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env %q missing", env)
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.UpperBodyIncrementKg == 0 {
		c.UpperBodyIncrementKg = 2.5
	}
	if c.LowerBodyIncrementKg == 0 {
		c.LowerBodyIncrementKg = 5
	}
	if c.MinBarWeightKg == 0 {
		c.MinBarWeightKg = 20
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 5
	}
	if c.SyncRateLimitAllowedPerMin == 0 {
		c.SyncRateLimitAllowedPerMin = 10
	}
	if c.HevyCacheTTLSeconds == 0 {
		c.HevyCacheTTLSeconds = 60
	}
}
