package graph

import "math"

// DefaultLoopRadius is the control-point offset used to draw self-loops.
const DefaultLoopRadius = 60

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Pos returns the node's position as a Point.
func (n Node) Pos() Point {
	return Point{X: n.X, Y: n.Y}
}

// Curve is the drawable shape of an edge. Non-loop edges are quadratic
// Béziers through C1; self-loops are cubic Béziers through C1 and C2.
type Curve struct {
	Start, C1, C2, End Point
	Loop               bool
}

// EdgeCurve builds the curve for an edge between src and dst. bend moves the
// control point away from the chord midpoint along the chord's normal.
func EdgeCurve(src, dst Node, bend, loopRadius float64) Curve {
	a, b := src.Pos(), dst.Pos()
	if src.ID == dst.ID {
		return Curve{
			Start: a,
			C1:    Point{X: a.X + loopRadius, Y: a.Y - loopRadius},
			C2:    Point{X: a.X - loopRadius, Y: a.Y - loopRadius},
			End:   a,
			Loop:  true,
		}
	}

	mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	dx, dy := b.X-a.X, b.Y-a.Y
	if l := math.Hypot(dx, dy); l > 0 {
		mid.X += -dy / l * bend
		mid.Y += dx / l * bend
	}
	return Curve{Start: a, C1: mid, C2: mid, End: b}
}

// At evaluates the curve at t in [0, 1].
func (c Curve) At(t float64) Point {
	u := 1 - t
	if c.Loop {
		return Point{
			X: u*u*u*c.Start.X + 3*u*u*t*c.C1.X + 3*u*t*t*c.C2.X + t*t*t*c.End.X,
			Y: u*u*u*c.Start.Y + 3*u*u*t*c.C1.Y + 3*u*t*t*c.C2.Y + t*t*t*c.End.Y,
		}
	}
	return Point{
		X: u*u*c.Start.X + 2*u*t*c.C1.X + t*t*c.End.X,
		Y: u*u*c.Start.Y + 2*u*t*c.C1.Y + t*t*c.End.Y,
	}
}

// Sample returns n+1 evenly spaced points from Start to End.
func (c Curve) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = c.At(float64(i) / float64(n))
	}
	return pts
}

// LabelAnchor is where the edge label is drawn: the curve's halfway point.
func (c Curve) LabelAnchor() Point {
	return c.At(0.5)
}

// Distance returns the approximate shortest distance from p to the curve.
func (c Curve) Distance(p Point, samples int) float64 {
	best := math.Inf(1)
	for _, q := range c.Sample(samples) {
		if d := p.Dist(q); d < best {
			best = d
		}
	}
	return best
}
