package graph

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEdgeCurveStraight(t *testing.T) {
	c := EdgeCurve(Node{ID: "v1", X: 0, Y: 0}, Node{ID: "v2", X: 100, Y: 0}, 0, DefaultLoopRadius)
	if c.Loop {
		t.Fatal("expected a non-loop curve")
	}
	mid := c.At(0.5)
	if !near(mid.X, 50) || !near(mid.Y, 0) {
		t.Errorf("expected straight midpoint (50, 0), got %+v", mid)
	}
	if s, e := c.At(0), c.At(1); s != c.Start || e != c.End {
		t.Error("curve must start and end at the nodes")
	}
}

func TestEdgeCurveBendIsPerpendicular(t *testing.T) {
	c := EdgeCurve(Node{ID: "v1", X: 0, Y: 0}, Node{ID: "v2", X: 100, Y: 0}, 40, DefaultLoopRadius)
	if !near(c.C1.X, 50) || !near(c.C1.Y, 40) {
		t.Errorf("expected control point (50, 40), got %+v", c.C1)
	}
	// A quadratic passes halfway between chord midpoint and control point.
	if a := c.LabelAnchor(); !near(a.X, 50) || !near(a.Y, 20) {
		t.Errorf("expected label anchor (50, 20), got %+v", a)
	}
}

func TestEdgeCurveLoop(t *testing.T) {
	n := Node{ID: "v1", X: 200, Y: 200}
	c := EdgeCurve(n, n, 99, 60)
	if !c.Loop {
		t.Fatal("expected a loop curve")
	}
	if c.C1 != (Point{X: 260, Y: 140}) || c.C2 != (Point{X: 140, Y: 140}) {
		t.Errorf("unexpected loop control points: %+v %+v", c.C1, c.C2)
	}
	apex := c.LabelAnchor()
	if !near(apex.X, 200) || !near(apex.Y, 155) {
		t.Errorf("expected loop apex (200, 155), got %+v", apex)
	}
}

func TestCurveDistance(t *testing.T) {
	c := EdgeCurve(Node{ID: "a", X: 0, Y: 0}, Node{ID: "b", X: 100, Y: 0}, 0, DefaultLoopRadius)
	if d := c.Distance(Point{X: 50, Y: 10}, 100); !near(d, 10) {
		t.Errorf("expected distance 10, got %v", d)
	}
	if pts := c.Sample(0); len(pts) != 2 {
		t.Errorf("Sample(0) should clamp to 2 points, got %d", len(pts))
	}
}

func TestSnapshotCurve(t *testing.T) {
	m := newTestModel(t, 2)
	m.TryAddEdge("v1", "v2", false)
	snap := m.Snapshot()

	if _, ok := snap.Curve(0, m.LoopRadius()); !ok {
		t.Error("expected curve for edge 0")
	}
	if _, ok := snap.Curve(1, m.LoopRadius()); ok {
		t.Error("expected no curve for missing edge")
	}
}
