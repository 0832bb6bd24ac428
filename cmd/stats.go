package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/msalah0e/graphpad/internal/config"
	"github.com/msalah0e/graphpad/internal/graph"
	"github.com/msalah0e/graphpad/internal/ui"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	var (
		nodes  int
		edges  []string
		seed   uint64
		name   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Build a graph from flags and print its matrix and degrees",
		Long: `Build a graph without the editor and print what the editor would show.

  graphpad stats --nodes 3 --edge v1-v2 --edge v2->v3
  graphpad stats --nodes 4 --edge v1-v1 --format json
  graphpad stats --nodes 3 --edge v1->v2 --format dot | neato -n -Tsvg`,
		Run: func(cmd *cobra.Command, args []string) {
			switch format {
			case "table", "json", "dot":
			default:
				ui.Bad.Printf("  Unknown format %q (want table, json or dot)\n", format)
				os.Exit(1)
			}

			cfg := config.Load()
			if !cmd.Flags().Changed("name") {
				name = cfg.Graph.Name
			}

			g := graph.NewModel(
				graph.WithBounds(cfg.Bounds()),
				graph.WithRand(graph.NewRand(seed)),
				graph.WithLoopRadius(cfg.Canvas.LoopRadius),
				graph.WithLogger(stderrLogger()),
			)
			skipped, err := buildGraph(g, nodes, edges)
			if err != nil {
				ui.Bad.Printf("  %v\n", err)
				os.Exit(1)
			}
			for _, s := range skipped {
				ui.Warn.Fprintf(cmd.ErrOrStderr(), "  %s skipped: %v\n", ui.WarnIcon(), s)
			}

			if err := renderStats(cmd.OutOrStdout(), g.Snapshot(), name, format); err != nil {
				ui.Bad.Printf("  %v\n", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().IntVarP(&nodes, "nodes", "n", 0, "Number of nodes to place")
	cmd.Flags().StringArrayVarP(&edges, "edge", "e", nil, "Edge to add: v1-v2 (undirected) or v1->v2 (directed); repeatable")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Layout seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&name, "name", "", "Graph name")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json, dot")
	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletionFunc)

	return cmd
}

type edgeSpec struct {
	source, target string
	directed       bool
}

// parseEdgeSpec reads "a->b" as directed and "a-b" as undirected.
func parseEdgeSpec(s string) (edgeSpec, error) {
	sep, directed := "-", false
	if strings.Contains(s, "->") {
		sep, directed = "->", true
	}
	src, tgt, ok := strings.Cut(s, sep)
	src, tgt = strings.TrimSpace(src), strings.TrimSpace(tgt)
	if !ok || src == "" || tgt == "" || strings.Contains(tgt, "-") {
		return edgeSpec{}, fmt.Errorf("invalid edge %q (want v1-v2 or v1->v2)", s)
	}
	return edgeSpec{source: src, target: tgt, directed: directed}, nil
}

// buildGraph places n nodes and adds the edges in order. Edges naming
// unknown nodes or repeating an earlier edge are returned as skipped.
func buildGraph(g *graph.Model, n int, specs []string) ([]error, error) {
	if err := g.SetNodeCount(n); err != nil {
		return nil, err
	}
	var skipped []error
	for _, s := range specs {
		es, err := parseEdgeSpec(s)
		if err != nil {
			return nil, err
		}
		if err := g.TryAddEdge(es.source, es.target, es.directed); err != nil {
			if !graph.IsNoop(err) {
				return nil, err
			}
			skipped = append(skipped, err)
		}
	}
	return skipped, nil
}

func renderStats(w io.Writer, snap graph.Snapshot, name, format string) error {
	switch format {
	case "json":
		data, err := snap.ExportJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "dot":
		_, err := io.WriteString(w, snap.ExportDOT(name))
		return err
	}

	prev := ui.Out
	ui.Out = w
	defer func() { ui.Out = prev }()

	ui.Banner(name)

	var rows [][]string
	for i, n := range snap.Nodes {
		rows = append(rows, []string{n.ID, fmt.Sprintf("%.0f", n.X), fmt.Sprintf("%.0f", n.Y), strconv.Itoa(snap.Stats.Degrees[i])})
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "  No nodes. Try:")
		ui.Info.Fprintln(w, "  graphpad stats --nodes 3 --edge v1-v2")
		return nil
	}
	ui.Table([]string{"Node", "X", "Y", "Degree"}, rows)

	if len(snap.Edges) > 0 {
		fmt.Fprintln(w)
		rows = rows[:0]
		for i, e := range snap.Edges {
			dir := "no"
			if e.Directed {
				dir = "yes"
			}
			rows = append(rows, []string{graph.EdgeLabel(i), e.Source, e.Target, dir, e.ID[:8]})
		}
		ui.Table([]string{"Edge", "From", "To", "Directed", "ID"}, rows)
	}

	fmt.Fprintf(w, "\n  %s\n\n", ui.Brand.Sprint(snap.Stats.Title()))
	labels := make([]string, len(snap.Nodes))
	for i, n := range snap.Nodes {
		labels[i] = n.ID
	}
	ui.Matrix(labels, snap.Stats.Matrix)

	fmt.Fprintf(w, "\n  %d nodes · %d edges · %d loops · degree sum %d\n",
		len(snap.Nodes), len(snap.Edges), graph.CountLoops(snap.Edges), snap.Stats.EdgeEndpoints())
	return nil
}
