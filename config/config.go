// Package config loads library tuning knobs from a YAML file and
// environment variables. Everything has a sensible default; a missing
// config file is not an error.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the tunable settings of the library.
type Config struct {
	Pattern struct {
		// CacheSize is the number of parsed patterns the LRU cache keeps
		CacheSize int `mapstructure:"cache_size"`
		// RegexTimeoutMs bounds MATCHES regex checks, in milliseconds
		RegexTimeoutMs int `mapstructure:"regex_timeout_ms"`
	} `mapstructure:"pattern"`

	Bundle struct {
		// StrictDecoding rejects object types without a registered decoder
		StrictDecoding bool `mapstructure:"strict_decoding"`
		// ValidateEnvelope runs JSON-schema validation before decoding files
		ValidateEnvelope bool `mapstructure:"validate_envelope"`
	} `mapstructure:"bundle"`

	Identifiers struct {
		// CustomTypes extends the known object type set for registry-based
		// validation, e.g. vendor extension types
		CustomTypes []string `mapstructure:"custom_types"`
	} `mapstructure:"identifiers"`

	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`
}

// RegexTimeout returns the MATCHES check timeout as a duration.
func (c *Config) RegexTimeout() time.Duration {
	return time.Duration(c.Pattern.RegexTimeoutMs) * time.Millisecond
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pattern.cache_size", 1024)
	v.SetDefault("pattern.regex_timeout_ms", 500)
	v.SetDefault("bundle.strict_decoding", false)
	v.SetDefault("bundle.validate_envelope", true)
	v.SetDefault("identifiers.custom_types", []string{})
	v.SetDefault("logging.level", "info")
}

func validateConfig(config *Config) error {
	if config.Pattern.CacheSize <= 0 {
		return fmt.Errorf("pattern.cache_size must be positive, got %d", config.Pattern.CacheSize)
	}
	if config.Pattern.RegexTimeoutMs <= 0 {
		return fmt.Errorf("pattern.regex_timeout_ms must be positive, got %d", config.Pattern.RegexTimeoutMs)
	}
	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug/info/warn/error, got %q", config.Logging.Level)
	}
	return nil
}

// LoadConfig loads configuration from stixcore.yaml (current directory or
// ./config) and STIXCORE_* environment variables, falling back to defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("stixcore")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	return load(v, false)
}

// LoadConfigFile loads configuration from an explicit file path. Unlike
// LoadConfig, a missing file is an error here.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v, true)
}

func load(v *viper.Viper, requireFile bool) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("STIXCORE")
	v.AutomaticEnv()
	_ = v.BindEnv("pattern.cache_size", "STIXCORE_PATTERN_CACHE_SIZE")
	_ = v.BindEnv("pattern.regex_timeout_ms", "STIXCORE_REGEX_TIMEOUT_MS")
	_ = v.BindEnv("logging.level", "STIXCORE_LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		if requireFile {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, will use defaults and env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
