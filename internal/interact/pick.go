package interact

import (
	"math"

	"github.com/msalah0e/graphpad/internal/graph"
)

// Kind says what a pointer landed on.
type Kind int

const (
	None Kind = iota
	NodeHit
	EdgeHit
	LabelHit
)

func (k Kind) String() string {
	switch k {
	case NodeHit:
		return "node"
	case EdgeHit:
		return "edge"
	case LabelHit:
		return "label"
	}
	return "none"
}

// Target is the result of hit testing.
type Target struct {
	Kind   Kind
	NodeID string
	Edge   int
}

// Picker hit-tests canvas points. CellWidth and CellHeight are the size of
// one hit cell in canvas units, so the same picker works for a pixel canvas
// (1x1) and a terminal grid (for example 10x25).
type Picker struct {
	NodeRadius float64
	CellWidth  float64
	CellHeight float64
	LoopRadius float64
}

const curveSamples = 48

// Pick returns what lies under p. Nodes win over edge labels, labels over
// edge curves. Within each kind the last drawn (highest index) wins.
func (pk Picker) Pick(snap graph.Snapshot, p graph.Point) Target {
	for i := len(snap.Nodes) - 1; i >= 0; i-- {
		n := snap.Nodes[i]
		if n.Pos().Dist(p) <= pk.NodeRadius || pk.cellDist(n.Pos(), p) <= 1 {
			return Target{Kind: NodeHit, NodeID: n.ID}
		}
	}

	for i := len(snap.Edges) - 1; i >= 0; i-- {
		c, ok := snap.Curve(i, pk.LoopRadius)
		if !ok {
			continue
		}
		if pk.onLabel(c.LabelAnchor(), len(graph.EdgeLabel(i)), p) {
			return Target{Kind: LabelHit, Edge: i}
		}
	}

	best, bestDist := -1, math.Inf(1)
	for i := range snap.Edges {
		c, ok := snap.Curve(i, pk.LoopRadius)
		if !ok {
			continue
		}
		for _, q := range c.Sample(curveSamples) {
			if d := pk.cellDist(q, p); d <= bestDist {
				best, bestDist = i, d
			}
		}
	}
	if best >= 0 && bestDist <= 1 {
		return Target{Kind: EdgeHit, Edge: best}
	}
	return Target{Kind: None}
}

// onLabel reports whether p falls on a label of width cells drawn to the
// right of anchor.
func (pk Picker) onLabel(anchor graph.Point, width int, p graph.Point) bool {
	w, h := pk.cell()
	dx := (p.X - anchor.X) / w
	dy := (p.Y - anchor.Y) / h
	return dy >= -0.5 && dy <= 0.5 && dx >= -0.5 && dx <= float64(width)-0.5
}

func (pk Picker) cellDist(a, b graph.Point) float64 {
	w, h := pk.cell()
	return math.Hypot((a.X-b.X)/w, (a.Y-b.Y)/h)
}

func (pk Picker) cell() (float64, float64) {
	w, h := pk.CellWidth, pk.CellHeight
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return w, h
}
