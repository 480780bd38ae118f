// Package main provides the structdata binary entry point.
// structdata generates the JSON-LD structured data of a documentation or blog
// site and writes it as a page-wrapper component the site renders into every
// page head.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "structdata"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "JSON-LD structured data generator",
		Long: `structdata reads site configuration and content front matter at build
time, classifies every page into a schema.org type and writes the JSON-LD
graph as a page-wrapper component (src/theme/Root.js by default).

Emitted types: WebSite, Organization, Article, BlogPosting, Person, Service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Config file path (YAML); structdata.yaml is searched in the site directory and its parents")
	cmd.PersistentFlags().String("site-dir", "", "Site root directory (default: the current directory)")
	registerLoggingFlags(cmd)

	cmd.AddCommand(generateCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}
