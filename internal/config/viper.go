// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"fjacquet/mt940/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Parse struct {
		// Sanitize repairs noncompliant statements before parsing; false means strict parsing.
		Sanitize bool `mapstructure:"sanitize" yaml:"sanitize"`
	} `mapstructure:"parse" yaml:"parse"`

	Input struct {
		Encoding string `mapstructure:"encoding" yaml:"encoding"`
	} `mapstructure:"input" yaml:"input"`

	Output struct {
		Format string `mapstructure:"format" yaml:"format"`
		Pretty bool   `mapstructure:"pretty" yaml:"pretty"`
	} `mapstructure:"output" yaml:"output"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Batch struct {
		Workers   int    `mapstructure:"workers" yaml:"workers"`
		Extension string `mapstructure:"extension" yaml:"extension"`
	} `mapstructure:"batch" yaml:"batch"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return initializeConfig(viper.New())
}

func initializeConfig(v *viper.Viper) (*Config, error) {
	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.mt940")
	v.AddConfigPath(".mt940")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("MT940")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration made of the built-in defaults only.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("parse.sanitize", true)
	v.SetDefault("input.encoding", "utf-8")

	v.SetDefault("output.format", "json")
	v.SetDefault("output.pretty", true)
	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("batch.workers", 4)
	v.SetDefault("batch.extension", ".sta")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if err := validation.IsValidEncoding(config.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: %w", err)
	}

	if err := validation.IsValidOutputFormat(config.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}

	if err := validation.IsValidDelimiter(config.CSV.Delimiter); err != nil {
		return err
	}

	if err := validation.IsValidWorkerCount(config.Batch.Workers); err != nil {
		return fmt.Errorf("batch.%w", err)
	}

	if !strings.HasPrefix(config.Batch.Extension, ".") || len(config.Batch.Extension) < 2 {
		return fmt.Errorf("batch.extension must start with a dot, got: %s", config.Batch.Extension)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
