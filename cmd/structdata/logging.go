package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func registerLoggingFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
}

// newLogger builds the process logger from the log-level and log-format
// settings. Logs go to w, keeping stdout free for dry-run output.
func newLogger(v *viper.Viper, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "", "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s", v.GetString("log-level"))
	}

	// Verbose output is info-level, so --verbose lowers a stricter level.
	if v.GetBool("verbose") && level > slog.LevelInfo {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(v.GetString("log-format")) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s", v.GetString("log-format"))
	}
}
