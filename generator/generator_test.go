package generator

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/structdata/config"
	"github.com/c360studio/structdata/content"
	"github.com/c360studio/structdata/schema"
)

const blogPost = `---
title: Launch day
description: We shipped.
authors: [jane]
tags: [release]
---
Body text is never read.
`

const authorsYAML = `
jane:
  name: Jane Doe
  title: Maintainer
  url: https://github.com/jane
`

func writeSiteFile(t *testing.T, siteDir, rel, data string) {
	t.Helper()
	path := filepath.Join(siteDir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	siteDir := t.TempDir()
	writeSiteFile(t, siteDir, "blog/2024-01-15-launch.md", blogPost)
	writeSiteFile(t, siteDir, "blog/authors.yml", authorsYAML)

	cfg := config.DefaultConfig()
	cfg.SiteDir = siteDir
	cfg.Site = content.Site{
		URL:          "https://mysite.io",
		Title:        "My Amazing Site",
		Organization: &content.Organization{Name: "My Organization"},
	}
	return cfg
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func TestRunWritesDefaultPath(t *testing.T) {
	cfg := testConfig(t)

	report, err := New(cfg, nil, nil).Run(context.Background())
	require.NoError(t, err)

	want := filepath.Join(cfg.SiteDir, "src", "theme", "Root.js")
	assert.Equal(t, want, report.OutputPath)
	assert.True(t, report.Written)
	assert.NotEmpty(t, report.RunID)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "AUTO-GENERATED FILE")
	assert.Contains(t, text, "https://mysite.io")
	assert.Contains(t, text, "My Amazing Site")
	assert.Contains(t, text, "My Organization")
	assert.Contains(t, text, "articlesWithAuthorPublisher")
	assert.Contains(t, text, `"/blog/2024/01/15/launch": {`)
	assert.Contains(t, text, "Jane Doe")
	assert.Equal(t, len(data), report.Bytes)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(want), ".Root.js.*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers, "temporary files must not survive a run")
}

func TestRunCustomOutputFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Options.OutputFile = filepath.Join(t.TempDir(), "custom", "Root.js")

	report, err := New(cfg, nil, nil).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.Options.OutputFile, report.OutputPath)
	assert.FileExists(t, cfg.Options.OutputFile)
	assert.NoFileExists(t, filepath.Join(cfg.SiteDir, "src", "theme", "Root.js"))
}

func TestRunDirectoryCreationError(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	cfg.Options.OutputFile = filepath.Join(blocker, "theme", "Root.js")

	_, err := New(cfg, nil, nil).Run(context.Background())
	require.Error(t, err)
	assert.IsType(t, &fs.PathError{}, err, "filesystem errors are returned unwrapped")
}

func TestRunWriteError(t *testing.T) {
	cfg := testConfig(t)
	// The output path is an existing directory, so the final rename fails.
	target := filepath.Join(t.TempDir(), "Root.js")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "occupied"), 0755))
	cfg.Options.OutputFile = target

	_, err := New(cfg, nil, nil).Run(context.Background())
	require.Error(t, err)
	assert.IsType(t, &os.LinkError{}, err)

	leftovers, globErr := filepath.Glob(filepath.Join(filepath.Dir(target), ".Root.js.*"))
	require.NoError(t, globErr)
	assert.Empty(t, leftovers)
}

func TestRunVerboseLogsMore(t *testing.T) {
	count := func(verbose bool) int {
		cfg := testConfig(t)
		cfg.Options.Verbose = verbose
		var logs bytes.Buffer
		_, err := New(cfg, newLogger(&logs), nil).Run(context.Background())
		require.NoError(t, err)
		return strings.Count(logs.String(), "\n")
	}

	quiet := count(false)
	verbose := count(true)
	assert.Greater(t, verbose, quiet)
	assert.Equal(t, 1, quiet)
}

func TestRunVerboseLogsMoreAtDebugLevel(t *testing.T) {
	run := func(verbose bool) string {
		cfg := testConfig(t)
		cfg.Options.Verbose = verbose
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
		_, err := New(cfg, logger, nil).Run(context.Background())
		require.NoError(t, err)
		return logs.String()
	}

	quiet := run(false)
	verbose := run(true)
	assert.Greater(t, strings.Count(verbose, "\n"), strings.Count(quiet, "\n"))
	assert.Contains(t, verbose, "Classified content item")
	assert.Contains(t, verbose, "Using content directories")
	assert.NotContains(t, quiet, "Classified content item")
	assert.NotContains(t, quiet, "Using content directories")

	cfg := testConfig(t)
	cfg.Options.BlogDir = "news"
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := New(cfg, logger, nil).Run(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), "Using custom directory")
}

func TestRunVerboseLogsCustomDirectories(t *testing.T) {
	cfg := testConfig(t)
	cfg.Options.Verbose = true
	cfg.Options.BlogDir = "news"
	cfg.Options.DocsDir = "guides"
	var logs, out bytes.Buffer

	_, err := New(cfg, newLogger(&logs), &out).Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, logs.String(), filepath.Join(cfg.SiteDir, "news"))
	assert.Contains(t, logs.String(), filepath.Join(cfg.SiteDir, "guides"))
	assert.Contains(t, logs.String(), "run_id=")
	assert.Contains(t, out.String(), "Node type", "verbose runs print a summary")
}

func TestRunLocales(t *testing.T) {
	cfg := testConfig(t)
	cfg.Site.I18n = &content.I18n{Locales: []string{"en", "fr", "es"}, DefaultLocale: "en"}

	report, err := New(cfg, nil, nil).Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(report.OutputPath)
	require.NoError(t, err)
	for _, locale := range []string{`"en"`, `"fr"`, `"es"`} {
		assert.Contains(t, string(data), locale)
	}
}

func TestRunEmptySite(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SiteDir = t.TempDir()
	cfg.Site = content.Site{URL: "https://example.com", Title: "My Site"}

	report, err := New(cfg, nil, nil).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Result.Entries, 1)
	assert.Equal(t, schema.Node{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     "My Site",
		"url":      "https://example.com",
	}, report.Result.Entries[0].Node)
}

func TestRunIdempotent(t *testing.T) {
	cfg := testConfig(t)

	first, err := New(cfg, nil, nil).Run(context.Background())
	require.NoError(t, err)
	a, err := os.ReadFile(first.OutputPath)
	require.NoError(t, err)

	second, err := New(cfg, nil, nil).Run(context.Background())
	require.NoError(t, err)
	b, err := os.ReadFile(second.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRunBaseSchema(t *testing.T) {
	cfg := testConfig(t)
	cfg.Options.BaseSchema = schema.NewOverride(
		schema.Section{Name: "organization", Value: map[string]any{"name": "Override Org"}},
		schema.Section{Name: "website", Value: []any{"not", "a", "mapping"}},
	)
	var logs bytes.Buffer

	report, err := New(cfg, newLogger(&logs), nil).Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(report.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Override Org")
	assert.NotContains(t, string(data), "My Organization")
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestRunDryRun(t *testing.T) {
	cfg := testConfig(t)
	cfg.Options.DryRun = true
	cfg.Options.Format = "jsonld"
	var out bytes.Buffer

	report, err := New(cfg, nil, &out).Run(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Written)
	assert.NoFileExists(t, report.OutputPath)
	assert.True(t, strings.HasPrefix(out.String(), "["))
	assert.Contains(t, out.String(), `"BlogPosting"`)
}

func TestRunCanceled(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(cfg, nil, nil).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, cfg.OutputPath())
}

func TestRunMetrics(t *testing.T) {
	cfg := testConfig(t)
	cfg.Options.MetricsFile = filepath.Join(t.TempDir(), "structdata.prom")
	gen := New(cfg, nil, nil)

	report, err := gen.Run(context.Background())
	require.NoError(t, err)

	m := gen.Metrics()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.nodes.WithLabelValues("WebSite")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.nodes.WithLabelValues("Organization")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.nodes.WithLabelValues("BlogPosting")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.items.WithLabelValues("BlogPosting")))
	assert.Equal(t, float64(report.Bytes), testutil.ToFloat64(m.outputBytes))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.skipped))

	data, err := os.ReadFile(cfg.Options.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "structdata_nodes{type=\"BlogPosting\"} 1")
	assert.Contains(t, string(data), "structdata_output_bytes")
}
