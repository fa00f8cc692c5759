package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/paramlint/paramlint/internal/rule"
)

// FormatText and FormatJSON are the supported report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ProjectConfig represents a .paramlint.yaml file in a repository.
type ProjectConfig struct {
	Version string `yaml:"version"`

	// Rules holds per-rule settings.
	Rules RulesConfig `yaml:"rules"`

	// File patterns
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`

	// Report settings
	Report ReportConfig `yaml:"report,omitempty"`
}

// RulesConfig holds the settings of every rule the tool knows.
type RulesConfig struct {
	MaxParams rule.Limits `yaml:"max-params"`
}

// ReportConfig holds report rendering preferences.
type ReportConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format,omitempty"`
}

// DefaultProjectConfig returns sensible defaults: the function limit checks
// by default, the constructor limit is unset and therefore unchecked.
func DefaultProjectConfig() *ProjectConfig {
	funcLimit := 3
	return &ProjectConfig{
		Version: "1.0",
		Rules: RulesConfig{
			MaxParams: rule.Limits{Func: &funcLimit},
		},
		Include: []string{"**/*.js", "**/*.jsx", "**/*.mjs", "**/*.cjs"},
		Exclude: []string{
			"**/node_modules/**",
			"**/dist/**",
			"**/*.min.js",
		},
		Report: ReportConfig{Format: FormatText},
	}
}

// LoadProjectConfig loads a .paramlint.yaml from the given directory,
// falling back to defaults when no config file exists.
func LoadProjectConfig(root string) (*ProjectConfig, error) {
	configPath := filepath.Join(root, ".paramlint.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Also try .paramlint.yml
		configPath = filepath.Join(root, ".paramlint.yml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return DefaultProjectConfig(), nil
		}
	}

	return LoadProjectConfigFile(configPath)
}

// LoadProjectConfigFile loads a config from an explicit path.
func LoadProjectConfigFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultProjectConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveProjectConfig saves the config to .paramlint.yaml.
func SaveProjectConfig(root string, cfg *ProjectConfig) error {
	configPath := filepath.Join(root, ".paramlint.yaml")

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Validate checks the configuration before any analysis runs. The core may
// assume validated limits: non-negative integers or absent.
func (c *ProjectConfig) Validate() error {
	if err := c.Rules.MaxParams.Validate(); err != nil {
		return fmt.Errorf("rules.max-params: %w", err)
	}
	switch c.Report.Format {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("report.format must be %q or %q, got %q", FormatText, FormatJSON, c.Report.Format)
	}
	return nil
}

// Merge applies overrides from another config (e.g. CLI flags).
func (c *ProjectConfig) Merge(other *ProjectConfig) {
	if other == nil {
		return
	}

	if other.Rules.MaxParams.Func != nil {
		c.Rules.MaxParams.Func = other.Rules.MaxParams.Func
	}

	if other.Rules.MaxParams.Constructor != nil {
		c.Rules.MaxParams.Constructor = other.Rules.MaxParams.Constructor
	}

	if len(other.Include) > 0 {
		c.Include = other.Include
	}

	if len(other.Exclude) > 0 {
		c.Exclude = other.Exclude
	}

	if other.Report.Format != "" {
		c.Report.Format = other.Report.Format
	}
}
