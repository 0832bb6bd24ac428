package cmd

import (
	"fmt"
	"os"

	"github.com/msalah0e/graphpad/internal/activity"
	"github.com/msalah0e/graphpad/internal/ui"
	"github.com/spf13/cobra"
)

func actlogCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"activity", "history"},
		Short:   "Show graphs saved from the editor",
		Run: func(cmd *cobra.Command, args []string) {
			ui.Banner("activity log")

			entries, err := activity.Read(count)
			if err != nil {
				ui.Bad.Printf("  Failed to read log: %v\n", err)
				os.Exit(1)
			}
			if len(entries) == 0 {
				fmt.Println("  No activity recorded yet.")
				fmt.Println("  Saves are logged when you press ctrl+s in the editor:")
				ui.Info.Println("  graphpad edit")
				return
			}

			printEntries(entries, 40)
			fmt.Printf("\n  Showing %d most recent entries\n", len(entries))
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 20, "Number of entries to show (0 for all)")

	cmd.AddCommand(
		actlogSearchCmd(),
		actlogClearCmd(),
	)

	return cmd
}

func actlogSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search log entries by action, graph name or payload",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			results, err := activity.Search(args[0], 50)
			if err != nil || len(results) == 0 {
				fmt.Printf("  No entries matching %q\n", args[0])
				return
			}

			ui.Banner("search results")
			printEntries(results, 60)
			fmt.Printf("\n  %d results\n", len(results))
		},
	}
}

func actlogClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the activity log",
		Run: func(cmd *cobra.Command, args []string) {
			if err := activity.Clear(); err != nil {
				ui.Bad.Printf("  Failed to clear: %v\n", err)
				os.Exit(1)
			}
			ui.Good.Printf("  %s Activity log cleared\n", ui.StatusIcon(true))
		},
	}
}

func printEntries(entries []activity.Entry, detailWidth int) {
	var rows [][]string
	for _, e := range entries {
		rows = append(rows, []string{
			e.Timestamp.Format("Jan 02 15:04"),
			e.Action,
			e.Graph,
			fmt.Sprintf("%d", e.Nodes),
			fmt.Sprintf("%d", e.Edges),
			truncateLog(e.Details, detailWidth),
		})
	}
	ui.Table([]string{"Time", "Action", "Graph", "Nodes", "Edges", "Payload"}, rows)
}

// truncateLog shortens s to max runes.
func truncateLog(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		return string(r[:max-3]) + "..."
	}
	return s
}
