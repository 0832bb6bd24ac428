package cmd

import (
	"os"

	"github.com/msalah0e/graphpad/internal/activity"
	"github.com/msalah0e/graphpad/internal/config"
	"github.com/msalah0e/graphpad/internal/graph"
	"github.com/msalah0e/graphpad/internal/tui"
	"github.com/msalah0e/graphpad/internal/ui"
	"github.com/spf13/cobra"
)

func editCmd() *cobra.Command {
	var (
		nodes int
		name  string
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:     "edit",
		Aliases: []string{"ui", "tui"},
		Short:   "Open the interactive graph editor",
		Long: `Open the full-screen graph editor.

Drag nodes with the mouse, click an edge to bend it and click an edge label
to flip its direction. Edges are added from the form below the canvas as
soon as both ids name existing nodes.

  graphpad edit                  # start from the configured defaults
  graphpad edit --nodes 5        # five randomly placed nodes
  graphpad edit --seed 42        # reproducible layout`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			if !cmd.Flags().Changed("nodes") {
				nodes = cfg.Graph.Nodes
			}
			if !cmd.Flags().Changed("name") {
				name = cfg.Graph.Name
			}

			log, closeLog, err := fileLogger(cfg)
			if err != nil {
				ui.Bad.Printf("  Failed to open log: %v\n", err)
				os.Exit(1)
			}
			defer closeLog()

			g := graph.NewModel(
				graph.WithBounds(cfg.Bounds()),
				graph.WithRand(graph.NewRand(seed)),
				graph.WithLoopRadius(cfg.Canvas.LoopRadius),
				graph.WithLogger(log),
			)
			if err := g.SetNodeCount(nodes); err != nil {
				ui.Bad.Printf("  %v\n", err)
				os.Exit(1)
			}

			log.Info("editor started", "nodes", nodes, "name", name, "seed", seed)
			err = tui.Run(g, tui.Options{
				Name:         name,
				ShowMatrix:   cfg.UI.ShowMatrix,
				CanvasWidth:  cfg.Canvas.Width,
				CanvasHeight: cfg.Canvas.Height,
				NodeRadius:   cfg.Canvas.NodeRadius,
				Logger:       log,
				Save: func(p graph.SavePayload) error {
					return activity.Log("save", p.GraphName, p.NumNodes, len(p.Edges), p.JSON())
				},
			})
			if err != nil {
				log.Error("editor failed", "err", err)
				ui.Bad.Printf("  Editor failed: %v\n", err)
				os.Exit(1)
			}
			log.Info("editor closed")
		},
	}

	cmd.Flags().IntVarP(&nodes, "nodes", "n", 0, "Number of nodes to place")
	cmd.Flags().StringVar(&name, "name", "", "Graph name")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Layout seed (0 picks one from the clock)")

	return cmd
}
