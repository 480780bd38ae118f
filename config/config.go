// Package config provides configuration loading and management for structdata.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/structdata/content"
	"github.com/c360studio/structdata/export"
	"github.com/c360studio/structdata/schema"
)

// Default directory names, relative to the site directory.
const (
	DefaultSrcDir    = "src"
	DefaultBlogDir   = "blog"
	DefaultDocsDir   = "docs"
	DefaultStaticDir = "static"
)

// Config represents the complete structdata configuration for one run.
type Config struct {
	// SiteDir is the site root all relative paths are resolved against.
	SiteDir string       `yaml:"siteDir,omitempty"`
	Site    content.Site `yaml:"site"`
	Options Options      `yaml:"options"`
}

// Options configures discovery and output.
type Options struct {
	// Verbose promotes progress logging from debug to info.
	Verbose bool `yaml:"verbose,omitempty"`
	// OutputFile replaces the default output path when set.
	OutputFile string `yaml:"outputFile,omitempty"`
	SrcDir     string `yaml:"srcDir,omitempty"`
	BlogDir    string `yaml:"blogDir,omitempty"`
	DocsDir    string `yaml:"docsDir,omitempty"`
	// BaseSchema is merged over the generated nodes.
	BaseSchema *schema.Override `yaml:"baseSchema,omitempty"`
	// Content is an optional content manifest supplied by the host.
	Content string `yaml:"content,omitempty"`
	// Format is the output format (component or jsonld).
	Format      string   `yaml:"format,omitempty"`
	MetricsFile string   `yaml:"metricsFile,omitempty"`
	Include     []string `yaml:"include,omitempty"`
	Exclude     []string `yaml:"exclude,omitempty"`
	// DryRun writes the output to stdout instead of the output file.
	DryRun bool `yaml:"-"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Options: Options{
			SrcDir:  DefaultSrcDir,
			BlogDir: DefaultBlogDir,
			DocsDir: DefaultDocsDir,
			Format:  string(export.FormatComponent),
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Site.URL) == "" {
		return ErrMissingSiteURL
	}
	if strings.TrimSpace(c.Site.Title) == "" {
		return ErrMissingSiteTitle
	}
	if _, err := export.ParseFormat(c.Options.Format); err != nil {
		return fmt.Errorf("options.format: %w", err)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	fileConfig, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := config.Merge(fileConfig); err != nil {
		return nil, err
	}
	return config, nil
}

// decodeFile reads a config file without applying defaults, so that it can
// be layered over another config.
func decodeFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if config.SiteDir != "" && !filepath.IsAbs(config.SiteDir) {
		config.SiteDir = filepath.Join(filepath.Dir(path), config.SiteDir)
	}
	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one. Non-zero values of other take
// precedence; a base schema in other replaces this one as a whole.
func (c *Config) Merge(other *Config) error {
	if other == nil {
		return nil
	}

	src := *other
	src.Options.BaseSchema = nil
	if err := mergo.Merge(c, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	if other.Options.BaseSchema != nil {
		c.Options.BaseSchema = other.Options.BaseSchema
	}
	return nil
}

// ExportFormat returns the configured output format.
func (c *Config) ExportFormat() (export.Format, error) {
	return export.ParseFormat(c.Options.Format)
}

// OutputPath returns the file the run writes. An explicit output file is
// used as given; otherwise the component goes to <siteDir>/<srcDir>/theme/Root.js
// and the JSON-LD document to <siteDir>/static.
func (c *Config) OutputPath() string {
	if c.Options.OutputFile != "" {
		return c.Options.OutputFile
	}

	format, err := c.ExportFormat()
	if err != nil {
		format = export.FormatComponent
	}
	info, _ := export.GetFormatInfo(format)
	if format == export.FormatJSONLD {
		return filepath.Join(c.SiteDir, DefaultStaticDir, info.DefaultFile)
	}
	return filepath.Join(c.SiteDir, c.srcDir(), "theme", info.DefaultFile)
}

// Sources returns the content locations, resolved against SiteDir.
func (c *Config) Sources() content.Sources {
	return content.Sources{
		SiteDir:  c.SiteDir,
		SrcDir:   c.srcDir(),
		BlogDir:  c.Options.BlogDir,
		DocsDir:  c.Options.DocsDir,
		Manifest: c.resolve(c.Options.Content),
		Include:  c.Options.Include,
		Exclude:  c.Options.Exclude,
	}
}

// Directory is a named content directory.
type Directory struct {
	Name string
	Path string
}

// CustomDirectories lists the content directories that differ from their
// defaults, resolved against SiteDir.
func (c *Config) CustomDirectories() []Directory {
	var dirs []Directory
	for _, d := range []struct {
		name, value, def string
	}{
		{"srcDir", c.Options.SrcDir, DefaultSrcDir},
		{"blogDir", c.Options.BlogDir, DefaultBlogDir},
		{"docsDir", c.Options.DocsDir, DefaultDocsDir},
	} {
		if d.value != "" && d.value != d.def {
			dirs = append(dirs, Directory{Name: d.name, Path: c.resolve(d.value)})
		}
	}
	return dirs
}

func (c *Config) srcDir() string {
	if c.Options.SrcDir == "" {
		return DefaultSrcDir
	}
	return c.Options.SrcDir
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.SiteDir, p)
}
