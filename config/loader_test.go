package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderLayers(t *testing.T) {
	root := t.TempDir()
	siteDir := filepath.Join(root, "website")
	writeFile(t, filepath.Join(root, ProjectConfigFile), `
site:
  url: https://example.com
  title: Project Title
options:
  blogDir: news
  docsDir: guides
`)
	explicitPath := filepath.Join(root, "ci.yaml")
	writeFile(t, explicitPath, `
site:
  title: Explicit Title
options:
  docsDir: handbook
`)

	loader := NewLoader(nil)
	cfg, err := loader.Load(LoadOptions{
		SiteDir:    siteDir,
		ConfigFile: explicitPath,
		Overrides:  &Config{Options: Options{Verbose: true, OutputFile: "/tmp/Root.js"}},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SiteDir != siteDir {
		t.Errorf("expected siteDir %s, got %s", siteDir, cfg.SiteDir)
	}
	if cfg.Site.URL != "https://example.com" {
		t.Errorf("expected project url, got %s", cfg.Site.URL)
	}
	if cfg.Site.Title != "Explicit Title" {
		t.Errorf("expected explicit title, got %s", cfg.Site.Title)
	}
	if cfg.Options.BlogDir != "news" {
		t.Errorf("expected project blogDir news, got %s", cfg.Options.BlogDir)
	}
	if cfg.Options.DocsDir != "handbook" {
		t.Errorf("expected explicit docsDir handbook, got %s", cfg.Options.DocsDir)
	}
	if cfg.Options.SrcDir != "src" {
		t.Errorf("expected default srcDir, got %s", cfg.Options.SrcDir)
	}
	if !cfg.Options.Verbose || cfg.Options.OutputFile != "/tmp/Root.js" {
		t.Errorf("expected overrides to apply, got %+v", cfg.Options)
	}
}

func TestLoaderSiteDirFromConfig(t *testing.T) {
	root := t.TempDir()
	explicitPath := filepath.Join(root, "conf", "structdata.yaml")
	writeFile(t, explicitPath, `
siteDir: ../site
site:
  url: https://example.com
  title: My Site
`)

	cfg, err := NewLoader(nil).Load(LoadOptions{SiteDir: "", ConfigFile: explicitPath})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if want := filepath.Join(root, "site"); cfg.SiteDir != want {
		t.Errorf("expected siteDir %s, got %s", want, cfg.SiteDir)
	}
}

func TestLoaderValidation(t *testing.T) {
	siteDir := t.TempDir()
	writeFile(t, filepath.Join(siteDir, ProjectConfigFile), "site:\n  title: No URL\n")

	_, err := NewLoader(nil).Load(LoadOptions{SiteDir: siteDir})
	if !errors.Is(err, ErrMissingSiteURL) {
		t.Errorf("expected ErrMissingSiteURL, got %v", err)
	}
}

func TestLoaderMissingExplicitConfig(t *testing.T) {
	siteDir := t.TempDir()
	_, err := NewLoader(nil).Load(LoadOptions{
		SiteDir:    siteDir,
		ConfigFile: filepath.Join(siteDir, "nope.yaml"),
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestLoaderApplyClearsValues(t *testing.T) {
	siteDir := t.TempDir()
	writeFile(t, filepath.Join(siteDir, ProjectConfigFile), `
site:
  url: https://example.com
  title: Example
options:
  verbose: true
  outputFile: build/Root.js
`)

	cfg, err := NewLoader(nil).Load(LoadOptions{
		SiteDir:   siteDir,
		Overrides: &Config{Options: Options{Verbose: false, OutputFile: ""}},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Options.Verbose || cfg.Options.OutputFile != "build/Root.js" {
		t.Errorf("expected zero overrides to be ignored, got %+v", cfg.Options)
	}

	cfg, err = NewLoader(nil).Load(LoadOptions{
		SiteDir: siteDir,
		Apply: func(c *Config) {
			c.Options.Verbose = false
			c.Options.OutputFile = ""
		},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Options.Verbose {
		t.Errorf("expected Apply to turn verbose off")
	}
	if cfg.Options.OutputFile != "" {
		t.Errorf("expected Apply to clear outputFile, got %s", cfg.Options.OutputFile)
	}
}

func TestLoaderApplyIsValidated(t *testing.T) {
	siteDir := t.TempDir()
	writeFile(t, filepath.Join(siteDir, ProjectConfigFile), "site:\n  url: https://example.com\n  title: Example\n")

	_, err := NewLoader(nil).Load(LoadOptions{
		SiteDir: siteDir,
		Apply:   func(c *Config) { c.Site.URL = "" },
	})
	if !errors.Is(err, ErrMissingSiteURL) {
		t.Errorf("expected ErrMissingSiteURL, got %v", err)
	}
}
