// Package config handles configuration loading and validation for svnkit.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/svnkit/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	SvnPath        string        `yaml:"svn_path"`
	SvnversionPath string        `yaml:"svnversion_path"`
	CommandTimeout time.Duration `yaml:"command_timeout"`
	MaxStatusDepth int           `yaml:"max_status_depth"`
	MinSvnVersion  string        `yaml:"min_svn_version"`
	Theme          string        `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SvnPath:        "svn",
		SvnversionPath: "svnversion",
		MaxStatusDepth: 256,
		MinSvnVersion:  ">= 1.7",
		Theme:          styles.DefaultTheme,
	}
}

// Load reads configuration from configPath. A missing file yields defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills options a config file left empty.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.SvnPath == "" {
		c.SvnPath = defaults.SvnPath
	}
	if c.SvnversionPath == "" {
		c.SvnversionPath = defaults.SvnversionPath
	}
	if c.MaxStatusDepth == 0 {
		c.MaxStatusDepth = defaults.MaxStatusDepth
	}
	if c.MinSvnVersion == "" {
		c.MinSvnVersion = defaults.MinSvnVersion
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// Validate checks the configuration without touching the filesystem.
func (c *Config) Validate() error {
	if c.SvnPath == "" {
		return fmt.Errorf("svn_path cannot be empty")
	}

	if c.CommandTimeout < 0 {
		return fmt.Errorf("command_timeout cannot be negative")
	}

	if c.MaxStatusDepth < 1 {
		return fmt.Errorf("max_status_depth must be at least 1")
	}

	if _, err := c.VersionConstraint(); err != nil {
		return err
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("theme %q is not one of %v", c.Theme, styles.ThemeNames())
	}

	return nil
}

// VersionConstraint parses MinSvnVersion.
func (c *Config) VersionConstraint() (*semver.Constraints, error) {
	constraint, err := semver.NewConstraint(c.MinSvnVersion)
	if err != nil {
		return nil, fmt.Errorf("min_svn_version %q: %w", c.MinSvnVersion, err)
	}
	return constraint, nil
}
