package graphview

import "sort"

// Graph is an immutable view of a simple undirected graph over node
// ids [0,NumNodes). It is built once and never mutated.
type Graph struct {
	numNodes  int
	hasEdge   []bool  // numNodes*numNodes dense flags, row-major
	neighbors [][]int // per-node, ascending, deduplicated
	edges     [][2]int
}

// New builds a Graph from a directed edge list that must contain both
// orientations of every undirected edge. numNodes, if given, fixes the
// node count; otherwise it defaults to one past the maximum endpoint
// seen in edges.
//
// New returns ErrInvalidNode for any endpoint outside the resolved
// range, ErrSelfLoop for any edge with u==v, and ErrAsymmetricEdge if
// an edge (u,v) appears without its mirror (v,u). Duplicate edges are
// silently collapsed.
func New(edges [][2]int, numNodes ...int) (*Graph, error) {
	n := 0
	if len(numNodes) > 0 {
		n = numNodes[0]
	} else {
		for _, e := range edges {
			if e[0]+1 > n {
				n = e[0] + 1
			}
			if e[1]+1 > n {
				n = e[1] + 1
			}
		}
	}

	hasEdge := make([]bool, n*n)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, ErrInvalidNode
		}
		if u == v {
			return nil, ErrSelfLoop
		}
		hasEdge[u*n+v] = true
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if hasEdge[u*n+v] != hasEdge[v*n+u] {
				return nil, ErrAsymmetricEdge
			}
		}
	}

	neighbors := make([][]int, n)
	var canonical [][2]int
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if hasEdge[u*n+v] {
				neighbors[u] = append(neighbors[u], v)
				canonical = append(canonical, [2]int{u, v})
			}
		}
	}
	sort.Slice(canonical, func(i, j int) bool {
		if canonical[i][0] != canonical[j][0] {
			return canonical[i][0] < canonical[j][0]
		}
		return canonical[i][1] < canonical[j][1]
	})

	return &Graph{
		numNodes:  n,
		hasEdge:   hasEdge,
		neighbors: neighbors,
		edges:     canonical,
	}, nil
}

// NumNodes returns the node count N fixed at construction.
func (g *Graph) NumNodes() int { return g.numNodes }

// Neighbors returns an ascending, deduplicated copy of v's neighbor list.
// Returns nil if v is out of range.
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.numNodes {
		return nil
	}
	out := make([]int, len(g.neighbors[v]))
	copy(out, g.neighbors[v])
	return out
}

// HasEdge reports whether the directed pair (u,v) is an edge. Out-of-range
// endpoints report false rather than panicking.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.numNodes || v < 0 || v >= g.numNodes {
		return false
	}
	return g.hasEdge[u*g.numNodes+v]
}

// Edges returns a copy of every directed edge pair, in stable
// row-major (u,v) order, both orientations included.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, len(g.edges))
	copy(out, g.edges)
	return out
}
