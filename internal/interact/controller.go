// Package interact turns raw pointer events into graph edits: dragging
// nodes, bending edges and toggling edge direction.
package interact

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/msalah0e/graphpad/internal/graph"
)

// Graph is the part of the model the controller edits.
type Graph interface {
	Snapshot() graph.Snapshot
	Position(id string) (graph.Point, bool)
	MoveNode(id string, x, y float64)
	SetBend(index int, bend float64) error
	ToggleDirection(index int) error
}

// Controller tracks which node, if any, is being dragged. All coordinates
// are canvas coordinates.
type Controller struct {
	g        Graph
	log      *slog.Logger
	dragging string
}

// New returns an idle controller.
func New(g Graph, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{g: g, log: log}
}

// PointerDown handles a press on t at p. A press on a node starts a drag,
// on an edge label toggles that edge's direction, and on a non-loop edge
// sets its bend to half the distance from the edge's source to p.
func (c *Controller) PointerDown(t Target, p graph.Point) error {
	switch t.Kind {
	case NodeHit:
		if _, ok := c.g.Position(t.NodeID); !ok {
			return nil
		}
		c.dragging = t.NodeID
		c.log.Debug("drag start", "node", t.NodeID)
	case LabelHit:
		return c.g.ToggleDirection(t.Edge)
	case EdgeHit:
		return c.bend(t.Edge, p)
	}
	return nil
}

func (c *Controller) bend(index int, p graph.Point) error {
	snap := c.g.Snapshot()
	if index < 0 || index >= len(snap.Edges) {
		return fmt.Errorf("bend: %w: %d", graph.ErrIndexOutOfRange, index)
	}
	e := snap.Edges[index]
	if e.IsLoop() {
		return nil
	}
	src, ok := c.g.Position(e.Source)
	if !ok {
		return nil
	}
	return c.g.SetBend(index, p.Dist(src)/2)
}

// PointerMove moves the dragged node to p. It reports whether a node moved.
func (c *Controller) PointerMove(p graph.Point) bool {
	if c.dragging == "" {
		return false
	}
	c.g.MoveNode(c.dragging, p.X, p.Y)
	return true
}

// PointerUp ends any drag, wherever the pointer is.
func (c *Controller) PointerUp() {
	if c.dragging != "" {
		c.log.Debug("drag end", "node", c.dragging)
	}
	c.dragging = ""
}

// Cancel drops the drag state, for example after the node list was
// regenerated underneath it.
func (c *Controller) Cancel() {
	c.dragging = ""
}

// Dragging returns the id of the node being dragged.
func (c *Controller) Dragging() (string, bool) {
	return c.dragging, c.dragging != ""
}
