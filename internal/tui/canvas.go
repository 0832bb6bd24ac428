package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/msalah0e/graphpad/internal/graph"
)

// viewport maps the fixed-size canvas coordinate space onto a grid of
// terminal cells. Every pointer position is converted to canvas units
// before it reaches the controller.
type viewport struct {
	cols, rows    int
	width, height float64
}

func (v viewport) cellSize() (float64, float64) {
	return v.width / float64(v.cols), v.height / float64(v.rows)
}

// toCell returns the cell containing p. Points off the canvas map to
// cells outside [0, cols) x [0, rows).
func (v viewport) toCell(p graph.Point) (int, int) {
	cw, ch := v.cellSize()
	return int(math.Floor(p.X / cw)), int(math.Floor(p.Y / ch))
}

// toPoint returns the canvas position at the centre of a cell. Cells outside
// the grid give positions outside the canvas; nothing is clamped.
func (v viewport) toPoint(col, row int) graph.Point {
	cw, ch := v.cellSize()
	return graph.Point{X: (float64(col) + 0.5) * cw, Y: (float64(row) + 0.5) * ch}
}

type cellKind int

const (
	cellEmpty cellKind = iota
	cellEdge
	cellArrow
	cellLabel
	cellNode
	cellNodeLabel
	cellActive
)

type cell struct {
	r    rune
	kind cellKind
}

// raster is a grid of glyphs with a style class per cell.
type raster struct {
	cols, rows int
	cells      [][]cell
}

func newRaster(cols, rows int) *raster {
	r := &raster{cols: cols, rows: rows, cells: make([][]cell, rows)}
	for i := range r.cells {
		r.cells[i] = make([]cell, cols)
		for j := range r.cells[i] {
			r.cells[i][j] = cell{r: ' '}
		}
	}
	return r
}

func (r *raster) set(col, row int, ch rune, kind cellKind) {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return
	}
	r.cells[row][col] = cell{r: ch, kind: kind}
}

func (r *raster) text(col, row int, s string, kind cellKind) {
	for i, ch := range []rune(s) {
		r.set(col+i, row, ch, kind)
	}
}

var arrows = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// arrowFor picks the glyph pointing from a to b in screen space (y down).
func arrowFor(a, b graph.Point) rune {
	angle := math.Atan2(b.Y-a.Y, b.X-a.X)
	octant := int(math.Round(angle/(math.Pi/4))+8) % 8
	return arrows[octant]
}

// scene is everything the canvas needs for one frame.
type scene struct {
	snap       graph.Snapshot
	loopRadius float64
	dragging   string
}

// draw renders edges first, then edge labels, then nodes on top.
func draw(v viewport, sc scene) *raster {
	r := newRaster(v.cols, v.rows)
	samples := 4 * (v.cols + v.rows)

	for i, e := range sc.snap.Edges {
		c, ok := sc.snap.Curve(i, sc.loopRadius)
		if !ok {
			continue
		}
		tcol, trow := v.toCell(c.End)
		var last graph.Point
		haveLast := false
		for _, p := range c.Sample(samples) {
			col, row := v.toCell(p)
			if col == tcol && row == trow {
				continue
			}
			r.set(col, row, '·', cellEdge)
			last, haveLast = p, true
		}
		if e.Directed && haveLast {
			col, row := v.toCell(last)
			r.set(col, row, arrowFor(last, c.End), cellArrow)
		}
	}

	for i := range sc.snap.Edges {
		c, ok := sc.snap.Curve(i, sc.loopRadius)
		if !ok {
			continue
		}
		col, row := v.toCell(c.LabelAnchor())
		r.text(col, row, graph.EdgeLabel(i), cellLabel)
	}

	for i, n := range sc.snap.Nodes {
		col, row := v.toCell(n.Pos())
		kind := cellNode
		if n.ID == sc.dragging {
			kind = cellActive
		}
		deg := 0
		if i < len(sc.snap.Stats.Degrees) {
			deg = sc.snap.Stats.Degrees[i]
		}
		r.set(col, row, '●', kind)
		r.text(col+2, row, fmt.Sprintf("%s d:%d", n.ID, deg), cellNodeLabel)
	}
	return r
}

// render turns the raster into styled text, one line per row.
func (r *raster) render(styles map[cellKind]lipgloss.Style) string {
	var b strings.Builder
	for i, row := range r.cells {
		var run strings.Builder
		kind := cellEmpty
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if st, ok := styles[kind]; ok {
				b.WriteString(st.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, c := range row {
			if c.kind != kind {
				flush()
				kind = c.kind
			}
			run.WriteRune(c.r)
		}
		flush()
		if i < len(r.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String returns the unstyled grid.
func (r *raster) String() string {
	return r.render(nil)
}
