package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"patterns/internal/domain"
)

// Config holds runtime options shared by the programs.
type Config struct {
	ReportPath     string `yaml:"report_path" toml:"report_path" validate:"required"`        // expense report file, e.g. report.txt
	CurrencySymbol string `yaml:"currency_symbol" toml:"currency_symbol" validate:"required"` // prefix for money amounts
	LogLevel       string `yaml:"log_level" toml:"log_level" validate:"oneof=off debug info warn error"`
}

var validate = validator.New()

// DefaultConfig is used when no file is given and fills fields a file omits.
func DefaultConfig() Config {
	return Config{
		ReportPath:     "report.txt",
		CurrencySymbol: "$",
		LogLevel:       "off",
	}
}

// LoadConfig reads path over the defaults. The extension picks the format:
// .toml for TOML, .yaml/.yml for YAML. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %s: unsupported format %q", domain.ErrInvalidConfig, path, ext)
	}
	return cfg, nil
}

// Validate checks every field against its rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}
