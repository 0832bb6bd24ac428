package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/msalah0e/graphpad/internal/config"
	"github.com/msalah0e/graphpad/internal/ui"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

var debugMode bool

var rootCmd = &cobra.Command{
	Use:   "graphpad",
	Short: "graphpad — sketch small graphs in the terminal",
	Long: ui.Brand.Sprint(ui.Mark+" graphpad") + " — sketch small graphs in the terminal\n" +
		ui.Subtle.Sprint("Place nodes, draw edges, and watch the adjacency matrix follow along"),
	Version: version + " " + ui.Mark,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !config.Load().UI.Color {
			ui.SetColor(false)
		}
	},
}

func init() {
	rootCmd.SetVersionTemplate("graphpad {{ .Version }}\n")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Verbose logging (stderr, or the log file in the editor)")

	rootCmd.AddCommand(
		editCmd(),
		statsCmd(),
		actlogCmd(),
		configCmd(),
		completionCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// stderrLogger is used by commands that print to the terminal. It only
// emits with --debug.
func stderrLogger() *slog.Logger {
	if !debugMode {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// fileLogger opens the debug log for the editor, which owns the terminal.
func fileLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	if debugMode {
		level = slog.LevelDebug
	}

	path := config.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return log, func() { f.Close() }, nil
}
