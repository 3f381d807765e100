package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values
const (
	DefaultTargetDir      = "."
	DefaultConfigFile     = "nooa.yaml"
	DefaultOutputDir      = "analysis_output"
	DefaultFollowSymlinks = false
	DefaultConcurrency    = 1
)

// Config defines the application's configuration structure. It narrows
// down the original crawler/cache config to what the grammar-driven
// pipeline actually needs: project location, output, and crawl exclusions.
// There is no rules directory or cache directory: rule kinds are closed
// and bound in internal/rules/registry.go, and the file-content cache is
// invocation-scoped only (§3, §9).
type Config struct {
	TargetDir       string   `yaml:"targetDirectory"`
	GrammarPath     string   `yaml:"grammarPath,omitempty"`
	OutputDir       string   `yaml:"outputDirectory"`
	FollowSymlinks  bool     `yaml:"followSymlinks"`
	ExcludePatterns []string `yaml:"excludePatterns,omitempty"`
	ExcludeSuffixes []string `yaml:"excludeSuffixes,omitempty"`
	LogLevel        string   `yaml:"logLevel,omitempty"` // e.g., "debug", "info", "warn"
	Concurrency     int      `yaml:"concurrency,omitempty"`
}

// Load attempts to load configuration from a YAML file.
// It applies default values for fields not specified in the file.
func Load(configPath string) (*Config, error) {
	cfg := &Config{
		TargetDir:      DefaultTargetDir,
		OutputDir:      DefaultOutputDir,
		FollowSymlinks: DefaultFollowSymlinks,
		LogLevel:       "info",
		Concurrency:    DefaultConcurrency,
	}

	if configPath == "" {
		configPath = DefaultConfigFile
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && configPath == DefaultConfigFile {
			return cfg, nil // No config file found, use defaults
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", configPath, err)
	}

	return cfg, nil
}
