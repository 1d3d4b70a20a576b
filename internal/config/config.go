package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the top-level configuration for sv-lint
type Config struct {
	// Lint contains linting rule configuration
	Lint LintConfig `json:"lint,omitempty"`

	// Output contains report and log destinations
	Output OutputConfig `json:"output,omitempty"`

	// Analysis contains analysis options
	Analysis AnalysisConfig `json:"analysis,omitempty"`
}

// LintConfig contains linting configuration
type LintConfig struct {
	// Rules maps rule names to "off" or "on"; unknown rules default to on
	Rules map[string]string `json:"rules,omitempty"`

	// IgnorePatterns is a list of file patterns to skip linting entirely
	IgnorePatterns []string `json:"ignorePatterns,omitempty"`

	// MaxLineLength is the line-length limit for the line-length rule
	MaxLineLength int `json:"maxLineLength,omitempty"`
}

// OutputConfig contains output destinations
type OutputConfig struct {
	// Report is the path the remediation report is written to
	Report string `json:"report,omitempty"`

	// Log is the path the run log is written to
	Log string `json:"log,omitempty"`

	// Format selects the report format: "markdown" or "json"
	Format string `json:"format,omitempty"`
}

// AnalysisConfig contains analysis options
type AnalysisConfig struct {
	// MaxParallelChecks limits concurrently running checks (0 or 1 = sequential)
	MaxParallelChecks int `json:"maxParallelChecks,omitempty"`

	// Recursive controls directory traversal when collecting files
	Recursive *bool `json:"recursive,omitempty"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		Lint: LintConfig{
			Rules:          map[string]string{},
			IgnorePatterns: []string{},
			MaxLineLength:  120,
		},
		Output: OutputConfig{
			Report: "sv_lint.out",
			Log:    "sv_lint.log",
			Format: "markdown",
		},
		Analysis: AnalysisConfig{
			MaxParallelChecks: 0,
			Recursive:         boolPtr(true),
		},
	}
}

func boolPtr(v bool) *bool {
	return &v
}

// Load finds and loads the configuration file
// Search order:
//  1. ./sv_lint.json (current working directory)
//  2. ./.sv_lint.json (current working directory)
//  3. <rootPath>/sv_lint.json (if different from cwd)
//  4. ~/.config/sv_lint/config.json
//
// Returns DefaultConfig if no config file is found
func Load(rootPath string) (*Config, error) {
	cwd, _ := os.Getwd()

	searchPaths := []string{
		filepath.Join(cwd, "sv_lint.json"),
		filepath.Join(cwd, ".sv_lint.json"),
	}

	// If rootPath is a directory and different from cwd, also check there
	if info, err := os.Stat(rootPath); err == nil && info.IsDir() {
		absRoot, _ := filepath.Abs(rootPath)
		if absRoot != cwd {
			searchPaths = append(searchPaths,
				filepath.Join(rootPath, "sv_lint.json"),
				filepath.Join(rootPath, ".sv_lint.json"),
			)
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(home, ".config", "sv_lint", "config.json"))
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	// No config found, return defaults
	return DefaultConfig(), nil
}

// LoadFile loads configuration from a specific file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Lint.Rules == nil {
		c.Lint.Rules = make(map[string]string)
	}
	if c.Lint.MaxLineLength <= 0 {
		c.Lint.MaxLineLength = 120
	}
	if c.Output.Report == "" {
		c.Output.Report = "sv_lint.out"
	}
	if c.Output.Log == "" {
		c.Output.Log = "sv_lint.log"
	}
	if c.Output.Format == "" {
		c.Output.Format = "markdown"
	}
	if c.Analysis.Recursive == nil {
		c.Analysis.Recursive = boolPtr(true)
	}
}

// Save writes the configuration to a file
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// IsRuleEnabled returns true if the rule is not set to "off"
func (c *Config) IsRuleEnabled(rule string) bool {
	if setting, ok := c.Lint.Rules[rule]; ok {
		return setting != "off"
	}
	return true // enabled by default
}

// ShouldIgnoreFile checks if a file should be skipped entirely
func (c *Config) ShouldIgnoreFile(filePath string) bool {
	for _, pattern := range c.Lint.IgnorePatterns {
		if matched, _ := filepath.Match(pattern, filePath); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, filepath.Base(filePath)); matched {
			return true
		}
	}
	return false
}
