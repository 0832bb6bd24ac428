package graph

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Node is a labelled point on the canvas. ID never changes after creation.
type Node struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Bounds is the rectangle freshly generated nodes are placed in.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// DefaultBounds matches an 800x600 canvas with a 100 unit margin.
var DefaultBounds = Bounds{MinX: 100, MaxX: 700, MinY: 100, MaxY: 500}

// Contains reports whether (x, y) lies inside b, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Rand is the random source used for initial layout.
type Rand interface {
	Float64() float64
}

// NewRand returns a PCG-backed source. A zero seed seeds from the clock.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NodeID returns the label of the i-th generated node (0-based).
func NodeID(i int) string {
	return fmt.Sprintf("v%d", i+1)
}

// GeometryStore owns the node list. Every change installs a new slice;
// slices already returned to callers are never written to.
type GeometryStore struct {
	bounds  Bounds
	rng     Rand
	nodes   []Node
	version uint64
}

// NewGeometryStore creates an empty store.
func NewGeometryStore(bounds Bounds, rng Rand) *GeometryStore {
	if rng == nil {
		rng = NewRand(0)
	}
	return &GeometryStore{bounds: bounds, rng: rng, nodes: []Node{}}
}

// Regenerate discards every node and creates count new ones, v1..vcount,
// at random positions inside the store's bounds.
func (s *GeometryStore) Regenerate(count int) ([]Node, error) {
	if count < 0 {
		return s.nodes, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	nodes := make([]Node, count)
	w := s.bounds.MaxX - s.bounds.MinX
	h := s.bounds.MaxY - s.bounds.MinY
	for i := range nodes {
		nodes[i] = Node{
			ID: NodeID(i),
			X:  s.bounds.MinX + s.rng.Float64()*w,
			Y:  s.bounds.MinY + s.rng.Float64()*h,
		}
	}
	s.nodes = nodes
	s.version++
	return s.nodes, nil
}

// MoveNode gives the node with the given id new coordinates. Coordinates are
// not clamped. An unknown id leaves the list untouched.
func (s *GeometryStore) MoveNode(id string, x, y float64) []Node {
	_, idx, ok := s.Lookup(id)
	if !ok {
		return s.nodes
	}
	nodes := make([]Node, len(s.nodes))
	copy(nodes, s.nodes)
	nodes[idx].X = x
	nodes[idx].Y = y
	s.nodes = nodes
	s.version++
	return s.nodes
}

// Nodes returns the current node list. Callers must treat it as read-only.
func (s *GeometryStore) Nodes() []Node {
	return s.nodes
}

// Lookup finds a node by id and returns it with its list position.
func (s *GeometryStore) Lookup(id string) (Node, int, bool) {
	for i, n := range s.nodes {
		if n.ID == id {
			return n, i, true
		}
	}
	return Node{}, -1, false
}

// Bounds returns the placement rectangle.
func (s *GeometryStore) Bounds() Bounds {
	return s.bounds
}

// Version increases on every successful mutation.
func (s *GeometryStore) Version() uint64 {
	return s.version
}
