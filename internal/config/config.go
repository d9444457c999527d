package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance
func New() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/phish-filter/")
	v.AddConfigPath("$HOME/.phish-filter")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// Set defaults
	setDefaults(v)

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix("PHISH_FILTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.filter_type", "smtp")
	v.SetDefault("server.listen_address", "0.0.0.0:10025")
	v.SetDefault("server.block_phishing", false)
	v.SetDefault("server.headers.status", "X-Phish-Status")
	v.SetDefault("server.headers.score", "X-Phish-Score")
	v.SetDefault("server.headers.breakdown", "X-Phish-Breakdown")
	v.SetDefault("server.subject_prefix", "")
	v.SetDefault("server.modify_subject", false)
	v.SetDefault("server.relay.enabled", false)
	v.SetDefault("server.relay.address", "127.0.0.1")
	v.SetDefault("server.relay.port", 10026)

	// Rule defaults; the numeric tuning is deliberately configuration,
	// never hard-coded in rule logic
	v.SetDefault("rules.legit_domains", []string{"paypal.com", "google.com"})
	v.SetDefault("rules.keywords", []string{"urgent", "verify", "account", "password", "click"})
	v.SetDefault("rules.lookalike_threshold", 2)
	v.SetDefault("rules.early_body_window", 200)
	v.SetDefault("rules.classification_threshold", 4.0)
	v.SetDefault("rules.weights.subject_keyword", 3.0)
	v.SetDefault("rules.weights.body_keyword", 1.0)
	v.SetDefault("rules.weights.early_body_bonus", 2.0)
	v.SetDefault("rules.weights.lookalike_domain", 5.0)
	v.SetDefault("rules.weights.whitelist_miss", 2.0)
	v.SetDefault("rules.weights.ip_url", 5.0)
	v.SetDefault("rules.weights.userinfo_url", 3.0)
	v.SetDefault("rules.weights.domain_mismatch", 4.0)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", "24h")
	v.SetDefault("cache.cleanup_frequency", "1h")
	v.SetDefault("cache.sqlite_path", "/data/verdict_cache.db")
	v.SetDefault("cache.mysql_dsn", "user:password@tcp(localhost:3306)/phish_filter")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetFloat64 gets a float64 value from the configuration
func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// GetDuration gets a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	return time.ParseDuration(c.GetString(key))
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
