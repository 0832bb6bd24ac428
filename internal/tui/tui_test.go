package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/msalah0e/graphpad/internal/graph"
)

type fixedRand struct{}

func (fixedRand) Float64() float64 { return 0.5 }

// newTestEditor builds a 100x30 editor over two nodes at (100,100) and
// (700,100) joined by one undirected edge.
func newTestEditor(t *testing.T, opts Options) (*Model, *graph.Model) {
	t.Helper()
	g := graph.NewModel(graph.WithRand(fixedRand{}))
	if err := g.SetNodeCount(2); err != nil {
		t.Fatalf("SetNodeCount failed: %v", err)
	}
	g.MoveNode("v1", 100, 100)
	g.MoveNode("v2", 700, 100)
	if err := g.TryAddEdge("v1", "v2", false); err != nil {
		t.Fatalf("TryAddEdge failed: %v", err)
	}
	m := New(g, opts)
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, g
}

func mouse(action tea.MouseAction, col, row int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      col + canvasLeft,
		Y:      row + canvasTop,
		Action: action,
		Button: tea.MouseButtonLeft,
	}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := viewport{cols: 98, rows: 24, width: 800, height: 600}
	for _, c := range [][2]int{{0, 0}, {12, 4}, {97, 23}, {50, 10}} {
		col, row := v.toCell(v.toPoint(c[0], c[1]))
		if col != c[0] || row != c[1] {
			t.Errorf("cell %v round-tripped to (%d,%d)", c, col, row)
		}
	}
	if col, row := v.toCell(graph.Point{X: -1, Y: 601}); col >= 0 || row < v.rows {
		t.Errorf("off-canvas point mapped inside: (%d,%d)", col, row)
	}
}

func TestArrowFor(t *testing.T) {
	o := graph.Point{X: 0, Y: 0}
	tests := []struct {
		to   graph.Point
		want rune
	}{
		{graph.Point{X: 1, Y: 0}, '→'},
		{graph.Point{X: 0, Y: 1}, '↓'},
		{graph.Point{X: -1, Y: 0}, '←'},
		{graph.Point{X: 0, Y: -1}, '↑'},
		{graph.Point{X: 1, Y: 1}, '↘'},
	}
	for _, tt := range tests {
		if got := arrowFor(o, tt.to); got != tt.want {
			t.Errorf("arrowFor(%v) = %c, want %c", tt.to, got, tt.want)
		}
	}
}

func TestDrawScene(t *testing.T) {
	g := graph.NewModel(graph.WithRand(fixedRand{}))
	g.SetNodeCount(2)
	g.MoveNode("v1", 100, 100)
	g.MoveNode("v2", 700, 100)
	g.TryAddEdge("v1", "v2", true)

	v := viewport{cols: 80, rows: 24, width: 800, height: 600}
	out := draw(v, scene{snap: g.Snapshot(), loopRadius: g.LoopRadius()}).String()

	lines := strings.Split(out, "\n")
	if len(lines) != 24 {
		t.Fatalf("expected 24 rows, got %d", len(lines))
	}
	for i, l := range lines {
		if n := len([]rune(l)); n != 80 {
			t.Fatalf("row %d has %d cells, want 80", i, n)
		}
	}
	for _, want := range []string{"●", "v1 d:1", "v2 d:1", "e1", "·", "→"} {
		if !strings.Contains(out, want) {
			t.Errorf("canvas missing %q:\n%s", want, out)
		}
	}
}

func TestDragMovesNode(t *testing.T) {
	m, g := newTestEditor(t, Options{})
	v := m.viewport()

	col, row := v.toCell(graph.Point{X: 100, Y: 100})
	m.Update(mouse(tea.MouseActionPress, col, row))
	if id, ok := m.ctrl.Dragging(); !ok || id != "v1" {
		t.Fatalf("expected drag of v1, got %q %v", id, ok)
	}
	if m.focus != focusCanvas {
		t.Errorf("press on canvas should focus it")
	}

	m.Update(mouse(tea.MouseActionMotion, 30, 10))
	want := v.toPoint(30, 10)
	got, _ := g.Position("v1")
	if got != want {
		t.Errorf("v1 at %v, want %v", got, want)
	}

	// release outside the canvas still ends the drag
	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if _, ok := m.ctrl.Dragging(); ok {
		t.Error("drag should end on release")
	}
	m.Update(mouse(tea.MouseActionMotion, 40, 12))
	if p, _ := g.Position("v1"); p != want {
		t.Errorf("v1 moved after release: %v", p)
	}
}

func TestPressOutsideCanvasIgnored(t *testing.T) {
	m, _ := newTestEditor(t, Options{})
	before := m.Snapshot()
	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.focus == focusCanvas {
		t.Error("press on the border should not focus the canvas")
	}
	if m.Snapshot().EdgesVersion != before.EdgesVersion || m.Snapshot().NodesVersion != before.NodesVersion {
		t.Error("press outside the canvas changed the graph")
	}
}

func TestLabelClickTogglesDirection(t *testing.T) {
	m, g := newTestEditor(t, Options{})
	v := m.viewport()

	col, row := v.toCell(graph.Point{X: 403, Y: 100})
	m.Update(mouse(tea.MouseActionPress, col, row))
	m.Update(mouse(tea.MouseActionRelease, col, row))

	if !g.Edges()[0].Directed {
		t.Fatal("label click should make e1 directed")
	}
	if !strings.Contains(m.status, "e1 is now directed") {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestEdgeClickBends(t *testing.T) {
	m, g := newTestEditor(t, Options{})
	v := m.viewport()

	col, row := v.toCell(graph.Point{X: 250, Y: 100})
	m.Update(mouse(tea.MouseActionPress, col, row))

	p := v.toPoint(col, row)
	want := p.Dist(graph.Point{X: 100, Y: 100}) / 2
	if got := g.Edges()[0].Bend; math.Abs(got-want) > 1e-9 {
		t.Errorf("bend = %v, want %v", got, want)
	}
	if g.Edges()[0].Directed {
		t.Error("bending should not toggle direction")
	}
}

func TestReactiveAddAndEnterClears(t *testing.T) {
	m, g := newTestEditor(t, Options{})
	g.SetNodeCount(3)

	m.Update(tea.KeyMsg{Type: tea.KeyTab}) // nodes -> source
	typeText(m, "v3")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "v1")

	edges := g.Edges()
	if len(edges) != 1 || edges[0].Source != "v3" || edges[0].Target != "v1" || edges[0].Directed {
		t.Fatalf("expected undirected v3-v1, got %+v", edges)
	}

	// toggling directed re-triggers the add
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if len(g.Edges()) != 2 || !g.Edges()[1].Directed {
		t.Fatalf("expected directed v3->v1 to be added, got %+v", g.Edges())
	}

	// enter on a duplicate reports it and clears both ids
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(g.Edges()) != 2 {
		t.Errorf("duplicate was added: %+v", g.Edges())
	}
	if m.inputs[inSource].Value() != "" || m.inputs[inTarget].Value() != "" {
		t.Error("enter should clear source and target")
	}
	if !strings.Contains(m.status, "already exists") {
		t.Errorf("status %q should report the duplicate", m.status)
	}
}

func TestNodeCountField(t *testing.T) {
	m, g := newTestEditor(t, Options{})

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if len(g.Nodes()) != 0 || len(g.Edges()) != 0 {
		t.Fatalf("empty field should mean zero nodes, got %d nodes %d edges", len(g.Nodes()), len(g.Edges()))
	}
	typeText(m, "5")
	if len(g.Nodes()) != 5 {
		t.Fatalf("expected 5 nodes, got %d", len(g.Nodes()))
	}

	v := g.Snapshot().NodesVersion
	typeText(m, "x")
	if m.statusKind != statusErr {
		t.Errorf("non-numeric count should set an error status, got %q", m.status)
	}
	if g.Snapshot().NodesVersion != v {
		t.Error("invalid count must not regenerate")
	}
}

func TestSaveCallsHook(t *testing.T) {
	var got graph.SavePayload
	calls := 0
	m, _ := newTestEditor(t, Options{
		Name: "triangle",
		Save: func(p graph.SavePayload) error {
			got = p
			calls++
			return nil
		},
	})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if calls != 1 {
		t.Fatalf("save hook called %d times", calls)
	}
	if got.GraphName != "triangle" || got.NumNodes != 2 || len(got.Edges) != 1 {
		t.Errorf("unexpected payload %+v", got)
	}
	if got.Edges[0].SourceNode != "v1" || got.Edges[0].TargetNode != "v2" {
		t.Errorf("unexpected edge %+v", got.Edges[0])
	}
	if m.statusKind != statusOK {
		t.Errorf("status %q should be ok", m.status)
	}
}

func TestCanvasKeys(t *testing.T) {
	m, _ := newTestEditor(t, Options{})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != focusCanvas {
		t.Fatal("esc should focus the canvas")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if !m.showMatrix {
		t.Error("m should show the matrix")
	}
	view := m.View()
	if !strings.Contains(view, "Undirected graph") {
		t.Errorf("matrix pane missing from view:\n%s", view)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q on the canvas should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit message")
	}
}

func TestCtrlCQuitsFromInput(t *testing.T) {
	m, _ := newTestEditor(t, Options{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit message")
	}
}

func TestViewShrinksCanvasForMatrix(t *testing.T) {
	m, _ := newTestEditor(t, Options{})
	without := m.viewport().cols
	m.showMatrix = true
	if with := m.viewport().cols; with >= without {
		t.Errorf("canvas should narrow when the matrix is shown: %d vs %d", with, without)
	}
}

func TestLabelClickHitsTopmostLabel(t *testing.T) {
	m, g := newTestEditor(t, Options{})
	if err := g.TryAddEdge("v2", "v1", false); err != nil {
		t.Fatal(err)
	}
	v := m.viewport()
	col, row := v.toCell(graph.Point{X: 403, Y: 100})

	drawn := draw(v, scene{snap: m.Snapshot(), loopRadius: g.LoopRadius()})
	acol, arow := v.toCell(graph.Point{X: 400, Y: 100})
	if got := string([]rune{drawn.cells[arow][acol].r, drawn.cells[arow][acol+1].r}); got != "e2" {
		t.Fatalf("expected e2 drawn on top, got %q", got)
	}

	m.Update(mouse(tea.MouseActionPress, col, row))
	m.Update(mouse(tea.MouseActionRelease, col, row))

	edges := g.Edges()
	if edges[0].Directed || !edges[1].Directed {
		t.Errorf("click should toggle e2 only, got %+v", edges)
	}
	if !strings.Contains(m.status, "e2 is now directed") {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestLabelClickRejectsDuplicateToggle(t *testing.T) {
	m, g := newTestEditor(t, Options{})
	if err := g.TryAddEdge("v1", "v2", true); err != nil {
		t.Fatal(err)
	}
	v := m.viewport()
	col, row := v.toCell(graph.Point{X: 403, Y: 100})

	m.Update(mouse(tea.MouseActionPress, col, row))
	m.Update(mouse(tea.MouseActionRelease, col, row))

	edges := g.Edges()
	if len(edges) != 2 || edges[0].Directed || !edges[1].Directed {
		t.Errorf("edges must be unchanged, got %+v", edges)
	}
	if !strings.Contains(m.status, "already exists") || m.statusKind != statusInfo {
		t.Errorf("expected a duplicate notice, got %q (kind %d)", m.status, m.statusKind)
	}
}
