package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".jvcheck.yaml"

// Config represents the optional configuration for jvcheck.
type Config struct {
	// RulesFile points at an extra compatibility-rules YAML file merged
	// over the built-in knowledge base. Relative paths are resolved
	// against the directory the config file was found in.
	RulesFile string `yaml:"rulesFile"`

	// Output configuration
	Output struct {
		Format string `yaml:"format"` // text, json, sarif
		File   string `yaml:"file"`   // output file path (stdout if empty)
	} `yaml:"output"`

	// IgnorePackages lists dependency identities (group:artifact) excluded
	// from issue and recommendation reporting.
	IgnorePackages []string `yaml:"ignorePackages"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	config := &Config{}
	config.Output.Format = "text"
	return config
}

// LoadConfig loads the configuration from the given file path. A missing
// file yields the default configuration, not an error.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		configPath = configFileName
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	config.resolveRulesFile(filepath.Dir(configPath))
	return config, nil
}

// FindAndLoadConfig searches for a config file in the project directory and
// its parents, returning the default configuration when none is found.
func FindAndLoadConfig(projectPath string) (*Config, error) {
	currentDir := projectPath
	for {
		configPath := filepath.Join(currentDir, configFileName)
		if _, err := os.Stat(configPath); err == nil {
			return LoadConfig(configPath)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return DefaultConfig(), nil
}

// IsPackageIgnored checks if a dependency identity is excluded by the
// configuration.
func (c *Config) IsPackageIgnored(name string) bool {
	for _, ignored := range c.IgnorePackages {
		if ignored == name {
			return true
		}
	}
	return false
}

func (c *Config) resolveRulesFile(baseDir string) {
	if c.RulesFile != "" && !filepath.IsAbs(c.RulesFile) {
		c.RulesFile = filepath.Join(baseDir, c.RulesFile)
	}
}
