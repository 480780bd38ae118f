package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/c360studio/structdata/config"
	"github.com/c360studio/structdata/content"
)

func initCmd() *cobra.Command {
	var (
		siteURL string
		title   string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter structdata.yaml into the site directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := settings(cmd)
			if err != nil {
				return err
			}
			path := filepath.Join(v.GetString("site-dir"), config.ProjectConfigFile)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg := config.DefaultConfig()
			cfg.Site = content.Site{URL: siteURL, Title: title}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.SaveToFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&siteURL, "url", "", "Canonical site URL, e.g. https://example.com")
	cmd.Flags().StringVar(&title, "title", "", "Site title")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
