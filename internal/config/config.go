package config

import (
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"fjacquet/mt940/internal/common"
	"fjacquet/mt940/internal/fileutils"

	"github.com/joho/godotenv"
)

var envOnce sync.Once

// LoadEnv loads environment variables from a .env file in the current or parent directory.
// It is silent because logging is not configured yet when it runs.
func LoadEnv() {
	envOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// OutputFormat returns the validated output format.
func (c *Config) OutputFormat() common.OutputFormat {
	f, err := common.ParseOutputFormat(c.Output.Format)
	if err != nil {
		return common.FormatJSON
	}
	return f
}

// InputEncoding returns the validated input encoding.
func (c *Config) InputEncoding() fileutils.Encoding {
	enc, err := fileutils.ParseEncoding(c.Input.Encoding)
	if err != nil {
		return fileutils.EncodingUTF8
	}
	return enc
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// OutputOptions builds the writer options from the configuration.
func (c *Config) OutputOptions() common.OutputOptions {
	return common.OutputOptions{
		Format:    c.OutputFormat(),
		Pretty:    c.Output.Pretty,
		Delimiter: c.Delimiter(),
	}
}
