// Package config loads pdfchunk configuration from defaults, an optional
// yaml config file, and PDFCHUNK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// Config holds pdfchunk configuration.
type Config struct {
	// ChunkSize is the pages-per-chunk size for page mode.
	ChunkSize int `mapstructure:"chunk_size" yaml:"chunk_size"`
	// TOCScanPages is how many leading pages are searched for a table of contents.
	TOCScanPages int `mapstructure:"toc_scan_pages" yaml:"toc_scan_pages"`
	// TitleMaxLength bounds sanitized chapter titles in output filenames.
	TitleMaxLength int `mapstructure:"title_max_length" yaml:"title_max_length"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ChunkSize:      99,
		TOCScanPages:   25,
		TitleMaxLength: 50,
	}
}

// Load reads configuration. cfgFile names an explicit config file; when empty,
// ./config.yaml and ~/.pdfchunk/config.yaml are searched and a missing file is
// fine. Environment variables with the PDFCHUNK_ prefix override file values.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("chunk_size", defaults.ChunkSize)
	v.SetDefault("toc_scan_pages", defaults.TOCScanPages)
	v.SetDefault("title_max_length", defaults.TitleMaxLength)

	v.SetEnvPrefix("PDFCHUNK")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.pdfchunk")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	header := []byte(`# pdfchunk configuration
# Values can be overridden with PDFCHUNK_* environment variables
# (e.g. PDFCHUNK_CHUNK_SIZE=50) or command line flags.

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
