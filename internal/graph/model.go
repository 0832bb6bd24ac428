package graph

import (
	"io"
	"log/slog"
)

// Snapshot is an immutable view of the model after a change.
type Snapshot struct {
	Nodes        []Node `json:"nodes"`
	Edges        []Edge `json:"edges"`
	Stats        Stats  `json:"stats"`
	NodesVersion uint64 `json:"-"`
	EdgesVersion uint64 `json:"-"`
}

// Node finds a node in the snapshot by id.
func (s Snapshot) Node(id string) (Node, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Curve resolves the edge at index against the snapshot's nodes.
func (s Snapshot) Curve(index int, loopRadius float64) (Curve, bool) {
	if index < 0 || index >= len(s.Edges) {
		return Curve{}, false
	}
	e := s.Edges[index]
	src, ok := s.Node(e.Source)
	if !ok {
		return Curve{}, false
	}
	dst, ok := s.Node(e.Target)
	if !ok {
		return Curve{}, false
	}
	return EdgeCurve(src, dst, e.Bend, loopRadius), true
}

// Option configures a Model.
type Option func(*Model)

// WithBounds sets the rectangle new nodes are placed in.
func WithBounds(b Bounds) Option {
	return func(m *Model) { m.bounds = b }
}

// WithRand injects the layout random source.
func WithRand(r Rand) Option {
	return func(m *Model) { m.rng = r }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithLoopRadius sets the self-loop control offset used by Model.Curve.
func WithLoopRadius(r float64) Option {
	return func(m *Model) { m.loopRadius = r }
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Model owns the geometry and edge stores and keeps them consistent:
// regenerating nodes always clears edges. Listeners are notified
// synchronously after every change that altered state.
type Model struct {
	bounds     Bounds
	rng        Rand
	log        *slog.Logger
	loopRadius float64

	geometry *GeometryStore
	edges    *EdgeStore

	subs    []subscriber
	nextSub int
}

// NewModel creates an empty model with no nodes.
func NewModel(opts ...Option) *Model {
	m := &Model{
		bounds:     DefaultBounds,
		loopRadius: DefaultLoopRadius,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m.geometry = NewGeometryStore(m.bounds, m.rng)
	m.edges = NewEdgeStore()
	return m
}

// Subscribe registers fn to receive a snapshot after each change.
// The returned func removes the subscription.
func (m *Model) Subscribe(fn func(Snapshot)) func() {
	m.nextSub++
	id := m.nextSub
	m.subs = append(m.subs, subscriber{id: id, fn: fn})
	return func() {
		kept := make([]subscriber, 0, len(m.subs))
		for _, s := range m.subs {
			if s.id != id {
				kept = append(kept, s)
			}
		}
		m.subs = kept
	}
}

func (m *Model) publish() {
	if len(m.subs) == 0 {
		return
	}
	snap := m.Snapshot()
	for _, s := range m.subs {
		s.fn(snap)
	}
}

// Snapshot returns the current state with freshly computed statistics.
func (m *Model) Snapshot() Snapshot {
	nodes := m.geometry.Nodes()
	edges := m.edges.Edges()
	return Snapshot{
		Nodes:        nodes,
		Edges:        edges,
		Stats:        Compute(nodes, edges),
		NodesVersion: m.geometry.Version(),
		EdgesVersion: m.edges.Version(),
	}
}

// SetNodeCount replaces every node with n freshly placed ones and drops
// all edges, which would otherwise point at discarded nodes.
func (m *Model) SetNodeCount(n int) error {
	if _, err := m.geometry.Regenerate(n); err != nil {
		m.log.Warn("regenerate rejected", "count", n, "err", err)
		return err
	}
	m.edges.Reset()
	m.log.Info("nodes regenerated", "count", n)
	m.publish()
	return nil
}

// MoveNode repositions a node. Unknown ids are ignored.
func (m *Model) MoveNode(id string, x, y float64) {
	before := m.geometry.Version()
	m.geometry.MoveNode(id, x, y)
	if m.geometry.Version() == before {
		m.log.Debug("move ignored", "node", id)
		return
	}
	m.publish()
}

// TryAddEdge appends an edge if both ids exist and no identical edge is
// present. Skipped adds return an error for which IsNoop is true.
func (m *Model) TryAddEdge(source, target string, directed bool) error {
	if _, err := m.edges.TryAdd(m.geometry, source, target, directed); err != nil {
		m.log.Debug("edge not added", "source", source, "target", target, "directed", directed, "err", err)
		return err
	}
	m.log.Info("edge added", "source", source, "target", target, "directed", directed, "index", len(m.edges.Edges())-1)
	m.publish()
	return nil
}

// ToggleDirection flips the directed flag of the edge at index.
func (m *Model) ToggleDirection(index int) error {
	if _, err := m.edges.ToggleDirection(index); err != nil {
		if IsNoop(err) {
			m.log.Debug("toggle skipped", "index", index, "err", err)
		} else {
			m.log.Error("toggle direction failed", "index", index, "err", err)
		}
		return err
	}
	m.log.Info("edge direction toggled", "edge", EdgeLabel(index), "directed", m.edges.Edges()[index].Directed)
	m.publish()
	return nil
}

// SetBend sets the curvature of the edge at index.
func (m *Model) SetBend(index int, bend float64) error {
	if _, err := m.edges.SetBend(index, bend); err != nil {
		m.log.Error("set bend failed", "index", index, "err", err)
		return err
	}
	m.log.Debug("edge bent", "edge", EdgeLabel(index), "bend", bend)
	m.publish()
	return nil
}

// Nodes returns the current node list.
func (m *Model) Nodes() []Node {
	return m.geometry.Nodes()
}

// Edges returns the current edge list.
func (m *Model) Edges() []Edge {
	return m.edges.Edges()
}

// Position resolves a node id to its live position.
func (m *Model) Position(id string) (Point, bool) {
	n, _, ok := m.geometry.Lookup(id)
	return n.Pos(), ok
}

// Endpoints resolves both ends of e against the current node list.
func (m *Model) Endpoints(e Edge) (src, dst Point, ok bool) {
	src, ok = m.Position(e.Source)
	if !ok {
		return Point{}, Point{}, false
	}
	dst, ok = m.Position(e.Target)
	return src, dst, ok
}

// EdgeIndex returns the current position of the edge with the given id.
func (m *Model) EdgeIndex(id string) int {
	return m.edges.IndexOf(id)
}

// LoopRadius is the self-loop control offset.
func (m *Model) LoopRadius() float64 {
	return m.loopRadius
}

// Bounds is the node placement rectangle.
func (m *Model) Bounds() Bounds {
	return m.bounds
}
