package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the example command configuration loaded from files and environment variables.
type Config struct {
	AppName            string        `mapstructure:"app_name"`
	LogLevel           string        `mapstructure:"log_level"`
	APIKey             string        `mapstructure:"zomato_api_key"`
	BaseURL            string        `mapstructure:"zomato_base_url"`
	Debug              bool          `mapstructure:"debug"`
	QueriesFile        string        `mapstructure:"queries_file"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`

	StorageType            string        `mapstructure:"storage_type"`
	BBoltPath              string        `mapstructure:"bbolt_path"`
	StorageTTLSeconds      int64         `mapstructure:"storage_ttl_seconds"`
	StorageCleanupSeconds  int64         `mapstructure:"storage_cleanup_interval_seconds"`
	StorageTTL             time.Duration `mapstructure:"-"`
	StorageCleanupInterval time.Duration `mapstructure:"-"`
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.APIKey != "" {
		c.APIKey = "***"
	}
	return c
}

// Load reads configuration from configs/.env, environment variables and defaults.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("app_name", "zomathon")
	v.SetDefault("log_level", "info")
	v.SetDefault("zomato_api_key", "")
	v.SetDefault("zomato_base_url", "https://developers.zomato.com/api/v2.1/")
	v.SetDefault("debug", false)
	v.SetDefault("queries_file", "./configs/queries.yaml")
	v.SetDefault("http_timeout_seconds", 15)
	v.SetDefault("storage_type", "bbolt")
	v.SetDefault("bbolt_path", "./data/seen.db")
	v.SetDefault("storage_ttl_seconds", int64((30*24*time.Hour)/time.Second))
	v.SetDefault("storage_cleanup_interval_seconds", int64((12*time.Hour)/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing zomato_api_key (set ZOMATO_API_KEY)")
	}

	var err error
	if cfg.HTTPTimeout, err = positiveSeconds("http_timeout_seconds", cfg.HTTPTimeoutSeconds); err != nil {
		return nil, err
	}
	if cfg.StorageTTL, err = positiveSeconds("storage_ttl_seconds", cfg.StorageTTLSeconds); err != nil {
		return nil, err
	}
	if cfg.StorageCleanupInterval, err = positiveSeconds("storage_cleanup_interval_seconds", cfg.StorageCleanupSeconds); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func positiveSeconds(key string, n int64) (time.Duration, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s (must be positive seconds)", key)
	}
	return time.Duration(n) * time.Second, nil
}
