package graph

import (
	"fmt"

	"github.com/google/uuid"
)

// Edge connects two nodes by id. Endpoint positions are always resolved
// through the node list, so dragging a node never touches the edge list.
type Edge struct {
	ID       string  `json:"id"`
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Directed bool    `json:"directed"`
	Bend     float64 `json:"bend"`
}

// IsLoop reports whether the edge starts and ends at the same node.
func (e Edge) IsLoop() bool {
	return e.Source == e.Target
}

// EdgeLabel is the display name of the edge at position index.
func EdgeLabel(index int) string {
	return fmt.Sprintf("e%d", index+1)
}

// NodeResolver resolves node ids to nodes.
type NodeResolver interface {
	Lookup(id string) (Node, int, bool)
}

// EdgeStore owns the ordered edge list. Position in the list is the
// operational identity used by ToggleDirection and SetBend.
type EdgeStore struct {
	edges   []Edge
	version uint64
}

// NewEdgeStore creates an empty store.
func NewEdgeStore() *EdgeStore {
	return &EdgeStore{edges: []Edge{}}
}

// TryAdd appends a straight edge from source to target. The list is returned
// unchanged with ErrNodeNotFound if either id is unknown, or with
// ErrDuplicateEdge if (source, target, directed) is already present.
func (s *EdgeStore) TryAdd(nodes NodeResolver, source, target string, directed bool) ([]Edge, error) {
	if _, _, ok := nodes.Lookup(source); !ok {
		return s.edges, fmt.Errorf("%w: %q", ErrNodeNotFound, source)
	}
	if _, _, ok := nodes.Lookup(target); !ok {
		return s.edges, fmt.Errorf("%w: %q", ErrNodeNotFound, target)
	}
	if s.Find(source, target, directed) >= 0 {
		return s.edges, fmt.Errorf("%w: %s", ErrDuplicateEdge, describe(source, target, directed))
	}

	edges := make([]Edge, len(s.edges), len(s.edges)+1)
	copy(edges, s.edges)
	edges = append(edges, Edge{
		ID:       uuid.NewString(),
		Source:   source,
		Target:   target,
		Directed: directed,
	})
	s.edges = edges
	s.version++
	return s.edges, nil
}

// Find returns the position of the edge matching all three keys, or -1.
func (s *EdgeStore) Find(source, target string, directed bool) int {
	for i, e := range s.edges {
		if e.Source == source && e.Target == target && e.Directed == directed {
			return i
		}
	}
	return -1
}

// IndexOf returns the current position of the edge with the given id, or -1.
func (s *EdgeStore) IndexOf(id string) int {
	for i, e := range s.edges {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// ToggleDirection flips the directed flag of the edge at index. If the
// flipped edge already exists the list is returned unchanged with
// ErrDuplicateEdge.
func (s *EdgeStore) ToggleDirection(index int) ([]Edge, error) {
	if index >= 0 && index < len(s.edges) {
		e := s.edges[index]
		if s.Find(e.Source, e.Target, !e.Directed) >= 0 {
			return s.edges, fmt.Errorf("%w: %s", ErrDuplicateEdge, describe(e.Source, e.Target, !e.Directed))
		}
	}
	return s.update(index, func(e *Edge) { e.Directed = !e.Directed })
}

// SetBend overwrites the curvature offset of the edge at index.
func (s *EdgeStore) SetBend(index int, bend float64) ([]Edge, error) {
	return s.update(index, func(e *Edge) { e.Bend = bend })
}

func (s *EdgeStore) update(index int, fn func(*Edge)) ([]Edge, error) {
	if index < 0 || index >= len(s.edges) {
		return s.edges, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.edges))
	}
	edges := make([]Edge, len(s.edges))
	copy(edges, s.edges)
	fn(&edges[index])
	s.edges = edges
	s.version++
	return s.edges, nil
}

// Reset drops every edge.
func (s *EdgeStore) Reset() {
	s.edges = []Edge{}
	s.version++
}

// Edges returns the current edge list. Callers must treat it as read-only.
func (s *EdgeStore) Edges() []Edge {
	return s.edges
}

// Version increases on every successful mutation.
func (s *EdgeStore) Version() uint64 {
	return s.version
}

func describe(source, target string, directed bool) string {
	if directed {
		return source + " -> " + target
	}
	return source + " -- " + target
}
