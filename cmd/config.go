package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/msalah0e/graphpad/internal/config"
	"github.com/msalah0e/graphpad/internal/ui"
	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the graphpad configuration",
		Run: func(cmd *cobra.Command, args []string) {
			showConfig()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Run: func(cmd *cobra.Command, args []string) {
				showConfig()
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write a default config file if none exists",
			Run: func(cmd *cobra.Command, args []string) {
				if err := config.EnsureExists(); err != nil {
					ui.Bad.Printf("  Failed to write config: %v\n", err)
					os.Exit(1)
				}
				ui.Good.Printf("  %s Config at %s\n", ui.StatusIcon(true), config.Path())
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(config.Path())
			},
		},
	)

	return cmd
}

func showConfig() {
	ui.Banner("config")

	path := config.Path()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Printf("  %s\n\n", ui.Subtle.Sprint("No config file, using defaults. Run `graphpad config init` to create one."))
	} else {
		fmt.Printf("  %s\n\n", ui.Subtle.Sprint(path))
	}

	if err := toml.NewEncoder(os.Stdout).Encode(config.Load()); err != nil {
		ui.Bad.Printf("  %v\n", err)
		os.Exit(1)
	}
}
