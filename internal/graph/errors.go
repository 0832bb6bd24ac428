package graph

import "errors"

var (
	// ErrNodeNotFound means a referenced node id does not exist.
	ErrNodeNotFound = errors.New("node not found")
	// ErrDuplicateEdge means an edge with the same source, target and
	// direction flag already exists.
	ErrDuplicateEdge = errors.New("edge already exists")
	// ErrIndexOutOfRange means an edge position does not exist.
	ErrIndexOutOfRange = errors.New("edge index out of range")
	// ErrInvalidCount means a negative node count was requested.
	ErrInvalidCount = errors.New("node count must not be negative")
)

// IsNoop reports whether err describes an operation that was skipped
// without changing state (unknown node or duplicate edge).
func IsNoop(err error) bool {
	return errors.Is(err, ErrNodeNotFound) || errors.Is(err, ErrDuplicateEdge)
}
