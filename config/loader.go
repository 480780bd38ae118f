package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ProjectConfigFile is the name of the project-level config file
const ProjectConfigFile = "structdata.yaml"

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadOptions selects the layers Load combines.
type LoadOptions struct {
	// SiteDir is the site root. Empty means the current directory, unless a
	// config file sets siteDir.
	SiteDir string
	// ConfigFile is an explicit config file; it must exist.
	ConfigFile string
	// Overrides is merged after the files. Zero values in it are ignored.
	Overrides *Config
	// Apply runs after Overrides and before validation. It sets values that
	// must win even when zero, such as --verbose=false.
	Apply func(*Config)
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. Project config (structdata.yaml in the site directory or its parents)
// 3. Explicit config file
// 4. Overrides, then Apply (flags and environment)
func (l *Loader) Load(opts LoadOptions) (*Config, error) {
	config := DefaultConfig()

	siteDir := opts.SiteDir
	if siteDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve site directory: %w", err)
		}
		siteDir = cwd
	}

	if projectConfigPath := l.findProjectConfig(siteDir); projectConfigPath != "" {
		projectConfig, err := decodeFile(projectConfigPath)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded project config", slog.String("path", projectConfigPath))
		if err := config.Merge(projectConfig); err != nil {
			return nil, err
		}
	} else {
		l.logger.Debug("No project config found", slog.String("site_dir", siteDir))
	}

	if opts.ConfigFile != "" {
		explicit, err := decodeFile(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded config file", slog.String("path", opts.ConfigFile))
		if err := config.Merge(explicit); err != nil {
			return nil, err
		}
	}

	if err := config.Merge(opts.Overrides); err != nil {
		return nil, err
	}
	if opts.Apply != nil {
		opts.Apply(config)
	}

	if opts.SiteDir != "" || config.SiteDir == "" {
		config.SiteDir = siteDir
	}
	if abs, err := filepath.Abs(config.SiteDir); err == nil {
		config.SiteDir = abs
	}

	if config.Options.BaseSchema != nil {
		for _, s := range config.Options.BaseSchema.Skipped {
			l.logger.Debug("Base schema section will be skipped", slog.String("section", s.Name), slog.String("error", s.Err.Error()))
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// findProjectConfig searches for structdata.yaml in dir and its parents
func (l *Loader) findProjectConfig(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		} else if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("Failed to stat project config", slog.String("path", configPath), slog.String("error", err.Error()))
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
