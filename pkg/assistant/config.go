package assistant

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Project         string  `yaml:"project"`      // Falls back to $GCP_PROJECT.
	Region          string  `yaml:"region"`       // Falls back to $GCP_REGION.
	AccessToken     string  `yaml:"access_token"` //nolint:gosec // configuration field, not a hardcoded secret
	Endpoint        string  `yaml:"endpoint"`     // Overrides the regional endpoint when set.
	FastModel       string  `yaml:"fast_model"`
	QualityModel    string  `yaml:"quality_model"`
	Temperature     float64 `yaml:"temperature"`
	MaxOutputTokens int     `yaml:"max_output_tokens"` // 0 = provider default.
	Stream          bool    `yaml:"stream"`
	CatalogURI      string  `yaml:"catalog_uri"` // Optional gs:// reference shown as a link.
}

// DefaultConfig returns the built-in defaults: the two Gemini 1.5 tiers,
// streaming enabled, and the stock questionnaire temperature.
func DefaultConfig() Config {
	return Config{
		FastModel:    "gemini-1.5-flash",
		QualityModel: "gemini-1.5-pro",
		Temperature:  0.95,
		Stream:       true,
	}
}

// LoadConfig reads a YAML file and returns a Config merged over the
// defaults. Environment variables referenced as ${VAR} or $VAR in the YAML
// are expanded before parsing, so tokens can be kept in the environment
// (e.g. loaded from a .env file) rather than committed in the config. A
// missing file returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("assistant: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("assistant: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.FastModel == "" || c.QualityModel == "" {
		return fmt.Errorf("assistant: config: both model tiers are required")
	}
	return nil
}
