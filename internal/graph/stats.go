package graph

// Stats holds everything derived from the node order and the edge set.
type Stats struct {
	Matrix   [][]int `json:"matrix"`
	Degrees  []int   `json:"degrees"`
	Directed bool    `json:"directed"`
}

// Compute builds the adjacency matrix, degree sequence and directed flag
// from scratch. Matrix[i][j] is 1 when any edge runs from node i to node j,
// whatever its direction flag. A self-loop adds 2 to its node's degree.
func Compute(nodes []Node, edges []Edge) Stats {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
	}

	st := Stats{
		Matrix:  make([][]int, len(nodes)),
		Degrees: make([]int, len(nodes)),
	}
	for i := range st.Matrix {
		st.Matrix[i] = make([]int, len(nodes))
	}

	for _, e := range edges {
		if e.Directed {
			st.Directed = true
		}
		si, ok := index[e.Source]
		if !ok {
			continue
		}
		ti, ok := index[e.Target]
		if !ok {
			continue
		}
		st.Matrix[si][ti] = 1
		if si == ti {
			st.Degrees[si] += 2
		} else {
			st.Degrees[si]++
			st.Degrees[ti]++
		}
	}
	return st
}

// EdgeEndpoints is the sum of the degree sequence.
func (s Stats) EdgeEndpoints() int {
	total := 0
	for _, d := range s.Degrees {
		total += d
	}
	return total
}

// Title is the matrix heading shown to the user.
func (s Stats) Title() string {
	if s.Directed {
		return "Directed graph"
	}
	return "Undirected graph"
}

// CountLoops returns how many edges are self-loops.
func CountLoops(edges []Edge) int {
	n := 0
	for _, e := range edges {
		if e.IsLoop() {
			n++
		}
	}
	return n
}
