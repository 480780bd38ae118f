package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/c360studio/structdata/config"
	"github.com/c360studio/structdata/export"
	"github.com/c360studio/structdata/generator"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"generate-structured-data"},
		Short:   "Generate JSON-LD structured data",
		Long: `Generate loads structdata.yaml, reads the front matter of the blog, docs
and pages directories (and the optional content manifest), and writes the
structured data component.

Every flag can also be set through an environment variable named after it,
e.g. STRUCTDATA_OUTPUT_FILE or STRUCTDATA_VERBOSE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := settings(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd, v)
		},
	}

	addGenerateFlags(cmd.Flags())
	return cmd
}

// addGenerateFlags registers the generate options. Names match the
// STRUCTDATA_* environment variables with dashes as underscores.
func addGenerateFlags(flags *pflag.FlagSet) {
	flags.BoolP("verbose", "v", false, "Log progress at info level and print a summary")
	flags.StringP("output-file", "o", "", "Output file (default <site-dir>/<src-dir>/theme/Root.js)")
	flags.String("src-dir", "", "Source directory, relative to the site (default src)")
	flags.String("blog-dir", "", "Blog directory, relative to the site (default blog)")
	flags.String("docs-dir", "", "Docs directory, relative to the site (default docs)")
	flags.String("content", "", "Content manifest (YAML list of items)")
	flags.String("format", "", "Output format: "+strings.Join(export.FormatNames(), ", "))
	flags.String("metrics-file", "", "Write run metrics in Prometheus text format to this file")
	flags.Bool("dry-run", false, "Print the output instead of writing it")
}

func runGenerate(cmd *cobra.Command, v *viper.Viper) error {
	logger, err := newLogger(v, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader(logger).Load(config.LoadOptions{
		SiteDir:    v.GetString("site-dir"),
		ConfigFile: v.GetString("config"),
		Apply:      applySettings(v),
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	_, err = generator.New(cfg, logger, cmd.OutOrStdout()).Run(cmd.Context())
	return err
}

// applySettings copies every flag or environment variable that was set onto
// the loaded config. Values set to false or "" still replace the file's.
func applySettings(v *viper.Viper) func(*config.Config) {
	return func(cfg *config.Config) {
		o := &cfg.Options
		strs := map[string]*string{
			"output-file":  &o.OutputFile,
			"src-dir":      &o.SrcDir,
			"blog-dir":     &o.BlogDir,
			"docs-dir":     &o.DocsDir,
			"content":      &o.Content,
			"format":       &o.Format,
			"metrics-file": &o.MetricsFile,
		}
		for key, dst := range strs {
			if v.IsSet(key) {
				*dst = v.GetString(key)
			}
		}
		bools := map[string]*bool{
			"verbose": &o.Verbose,
			"dry-run": &o.DryRun,
		}
		for key, dst := range bools {
			if v.IsSet(key) {
				*dst = v.GetBool(key)
			}
		}
	}
}
