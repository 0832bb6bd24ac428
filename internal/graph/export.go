package graph

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SavedEdge is one edge as it appears in a save payload.
type SavedEdge struct {
	SourceNode string `json:"sourceNode"`
	TargetNode string `json:"targetNode"`
	IsDirected bool   `json:"isDirected"`
}

// SavePayload is what the save action emits. It is logged, never read back.
type SavePayload struct {
	NumNodes  int         `json:"numNodes"`
	Edges     []SavedEdge `json:"edges"`
	GraphName string      `json:"graphName"`
}

// SavePayload builds the save action's payload for the current state.
func (m *Model) SavePayload(name string) SavePayload {
	edges := m.Edges()
	p := SavePayload{
		NumNodes:  len(m.Nodes()),
		Edges:     make([]SavedEdge, 0, len(edges)),
		GraphName: name,
	}
	for _, e := range edges {
		p.Edges = append(p.Edges, SavedEdge{SourceNode: e.Source, TargetNode: e.Target, IsDirected: e.Directed})
	}
	return p
}

// JSON returns the payload as compact JSON.
func (p SavePayload) JSON() string {
	// only strings, ints and bools: Marshal cannot fail
	data, _ := json.Marshal(p)
	return string(data)
}

// ExportJSON returns the snapshot as pretty-printed JSON.
func (s Snapshot) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ExportDOT returns the snapshot in Graphviz DOT format. Node positions are
// emitted as pos attributes so neato can reproduce the layout.
func (s Snapshot) ExportDOT(name string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("digraph %q {\n", name))
	b.WriteString("  node [shape=circle];\n\n")

	for i, n := range s.Nodes {
		deg := 0
		if i < len(s.Stats.Degrees) {
			deg = s.Stats.Degrees[i]
		}
		b.WriteString(fmt.Sprintf("  %q [label=\"%s\\nd: %d\", pos=\"%.0f,%.0f!\"];\n", n.ID, n.ID, deg, n.X, -n.Y))
	}

	if len(s.Edges) > 0 {
		b.WriteString("\n")
	}
	for i, e := range s.Edges {
		attrs := fmt.Sprintf("label=%q", EdgeLabel(i))
		if !e.Directed {
			attrs += ", dir=none"
		}
		b.WriteString(fmt.Sprintf("  %q -> %q [%s];\n", e.Source, e.Target, attrs))
	}

	b.WriteString("}\n")
	return b.String()
}
