package config

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	API     APIConfig     `mapstructure:"api" validate:"required"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type APIConfig struct {
	KeyID     string        `mapstructure:"key_id" validate:"required"`
	KeySecret string        `mapstructure:"key_secret" validate:"required"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// NewConfig loads configuration from config.yaml (searched in the working
// directory, ./config and /etc/nimblepay) with NIMBLEPAY_* environment
// variable overrides.
func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/nimblepay")

	// Defaults also register the keys so env overrides survive Unmarshal
	v.SetDefault("api.key_id", "")
	v.SetDefault("api.key_secret", "")
	v.SetDefault("api.base_url", "")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("logging.level", "info")

	v.SetEnvPrefix("NIMBLEPAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a configuration for local development. Credentials
// still have to be provided by the caller.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		API: APIConfig{
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{Level: "debug"},
	}
}
