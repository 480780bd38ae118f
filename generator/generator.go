package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/structdata/config"
	"github.com/c360studio/structdata/content"
	"github.com/c360studio/structdata/export"
	"github.com/c360studio/structdata/schema"
	"github.com/c360studio/structdata/vocabulary/schemaorg"
)

// Generator runs structured-data builds for one configuration.
type Generator struct {
	cfg     *config.Config
	logger  *slog.Logger
	out     io.Writer
	metrics *Metrics
	now     func() time.Time
}

// Report describes a finished run.
type Report struct {
	RunID      string
	OutputPath string
	Format     export.Format
	Bytes      int
	// Written is false for dry runs.
	Written bool
	Result  schema.Result
}

// New creates a generator. out receives dry-run output and the verbose
// summary; it may be nil when neither is used.
func New(cfg *config.Config, logger *slog.Logger, out io.Writer) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if out == nil {
		out = io.Discard
	}
	return &Generator{
		cfg:     cfg,
		logger:  logger,
		out:     out,
		metrics: NewMetrics(),
		now:     time.Now,
	}
}

// Metrics returns the metrics of the last run.
func (g *Generator) Metrics() *Metrics {
	return g.metrics
}

// Run performs one build. Failures to create the output directory or to write
// the output file are returned as the os package reports them.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	start := g.now()
	runID := uuid.NewString()
	logger := g.logger.With(slog.String("run_id", runID))

	format, err := g.cfg.ExportFormat()
	if err != nil {
		return nil, err
	}
	report := &Report{
		RunID:      runID,
		OutputPath: g.cfg.OutputPath(),
		Format:     format,
	}

	g.progress(ctx, logger, "Generating structured data",
		slog.String("site_dir", g.cfg.SiteDir),
		slog.String("site_url", g.cfg.Site.URL),
		slog.String("output", report.OutputPath),
		slog.String("format", string(format)))
	opts := g.cfg.Options
	g.detail(ctx, logger, "Using content directories",
		slog.String("src_dir", opts.SrcDir),
		slog.String("blog_dir", opts.BlogDir),
		slog.String("docs_dir", opts.DocsDir),
		slog.String("manifest", g.cfg.Sources().Manifest))
	for _, dir := range g.cfg.CustomDirectories() {
		g.detail(ctx, logger, "Using custom directory", slog.String("name", dir.Name), slog.String("path", dir.Path))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items, err := content.NewLoader(logger).Load(g.cfg.Sources())
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	g.progress(ctx, logger, "Loaded content", slog.Int("items", len(items)))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	site := g.cfg.Site
	result := schema.NewAggregator(site, logger).Aggregate(schema.ClassifyAll(site, items), g.cfg.Options.BaseSchema)
	report.Result = result
	for _, c := range result.Classified {
		g.detail(ctx, logger, "Classified content item",
			slog.String("route", c.Item.Route),
			slog.String("kind", string(c.Item.Kind)),
			slog.String("type", typeLabel(c.Type)))
	}
	g.progress(ctx, logger, "Built structured data",
		slog.Int("nodes", len(result.Entries)),
		slog.Int("site_nodes", len(result.SiteNodes())),
		slog.Int("skipped_sections", len(result.Skipped)))

	emitter, err := export.NewEmitter(format)
	if err != nil {
		return nil, err
	}
	data, err := emitter.Emit(result, site)
	if err != nil {
		return nil, err
	}
	report.Bytes = len(data)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if g.cfg.Options.DryRun {
		if _, err := g.out.Write(data); err != nil {
			return nil, err
		}
	} else {
		g.progress(ctx, logger, "Writing output file", slog.String("path", report.OutputPath))
		if err := writeFileAtomic(report.OutputPath, data); err != nil {
			logger.Error("Failed to write output file", slog.String("path", report.OutputPath), slog.String("error", err.Error()))
			return nil, err
		}
		report.Written = true
	}

	finished := g.now()
	g.metrics.Observe(result, report.Bytes, finished.Sub(start), finished)
	if path := g.cfg.Options.MetricsFile; path != "" {
		if err := g.metrics.WriteTextfile(path); err != nil {
			return nil, fmt.Errorf("write metrics: %w", err)
		}
		g.progress(ctx, logger, "Wrote metrics", slog.String("path", path))
	}

	if g.cfg.Options.Verbose && !g.cfg.Options.DryRun {
		renderSummary(g.out, result)
	}

	logger.Info("Generated structured data",
		slog.String("output", report.OutputPath),
		slog.Int("nodes", len(result.Entries)),
		slog.Int("bytes", report.Bytes),
		slog.Bool("dry_run", g.cfg.Options.DryRun))
	return report, nil
}

// detail logs lines that only verbose runs produce, whatever the log level.
func (g *Generator) detail(ctx context.Context, logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if !g.cfg.Options.Verbose {
		return
	}
	logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// progress logs at info level in verbose mode and at debug level otherwise.
func (g *Generator) progress(ctx context.Context, logger *slog.Logger, msg string, attrs ...slog.Attr) {
	level := slog.LevelDebug
	if g.cfg.Options.Verbose {
		level = slog.LevelInfo
	}
	logger.LogAttrs(ctx, level, msg, attrs...)
}

func typeLabel(t schemaorg.Type) string {
	if t == "" {
		return "unclassified"
	}
	return string(t)
}
