package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable read by Load
const EnvPrefix = "MENSAJERO"

const (
	// DefaultParamSlots is the number of query param rows a fresh session starts with
	DefaultParamSlots = 4
	// DefaultUserAgent is sent unless the user edits the header
	DefaultUserAgent = "Mensajero v0.1"
)

// Config holds the application configuration loaded from .env and environment variables.
type Config struct {
	LogLevel    string `mapstructure:"log_level"`
	LogFile     string `mapstructure:"log_file"`
	ParamSlots  int    `mapstructure:"param_slots"`
	EncodeQuery bool   `mapstructure:"encode_query"`
	UserAgent   string `mapstructure:"user_agent"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		ParamSlots:  DefaultParamSlots,
		UserAgent:   DefaultUserAgent,
		EncodeQuery: false,
	}
}

// Load reads configuration from a .env file in the working directory (if any)
// and MENSAJERO_* environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	def := Default()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("param_slots", def.ParamSlots)
	v.SetDefault("encode_query", def.EncodeQuery)
	v.SetDefault("user_agent", def.UserAgent)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.ParamSlots <= 0 {
		return fmt.Errorf("invalid param_slots %d (must be positive)", c.ParamSlots)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log_level %q (use debug, info, warn or error)", c.LogLevel)
	}

	return nil
}
