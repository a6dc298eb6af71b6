package partition

import "github.com/wlgame/pebblegame/graphview"

// Partition is the canonicalized connected-component labeling of a
// graphview.Graph's edges for one pebbled-node set.
type Partition struct {
	// EdgeCC maps each directed edge (u,v) to its CC-id in [0,NumCC).
	EdgeCC map[[2]int]int
	// CCEdges[c] lists every directed edge belonging to CC c, in the
	// order they were first discovered.
	CCEdges [][][2]int
}

// NumCC returns the number of connected components, len(p.CCEdges).
func (p Partition) NumCC() int { return len(p.CCEdges) }

// disjointSet is a path-compressing, union-by-rank union-find over
// node ids.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}
	return u
}

func (ds *disjointSet) union(u, v int) {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return
	}
	if ds.rank[ru] < ds.rank[rv] {
		ru, rv = rv, ru
	}
	ds.parent[rv] = ru
	if ds.rank[ru] == ds.rank[rv] {
		ds.rank[ru]++
	}
}

// Label computes the CC partition of g's edges induced by removing
// the nodes in pebbled (duplicates and out-of-range ids are errors;
// -1 sentinel "pebble off" entries must already be filtered out by
// the caller). Returns an empty Partition on error.
func Label(g *graphview.Graph, pebbled []int) (Partition, error) {
	n := g.NumNodes()

	seen := make(map[int]bool, len(pebbled))
	isPebbled := make([]bool, n)
	for _, p := range pebbled {
		if p < 0 || p >= n {
			return Partition{}, ErrInvalidNode
		}
		if seen[p] {
			return Partition{}, ErrDuplicatePebble
		}
		seen[p] = true
		isPebbled[p] = true
	}

	ds := newDisjointSet(n)
	for _, e := range g.Edges() {
		u, v := e[0], e[1]
		if !isPebbled[u] && !isPebbled[v] {
			ds.union(u, v)
		}
	}

	// CC-ids are assigned in strict first-edge-appearance order
	// (the canonicalization step): non-degenerate edges share an id
	// keyed by DSU root, degenerate (both-endpoints-pebbled) edges
	// each get a fresh id keyed by the edge itself, since such an edge
	// is the sole member of its CC.
	rootToCC := make(map[int]int)
	edgeCC := make(map[[2]int]int, len(g.Edges()))
	var ccEdges [][][2]int

	nextID := func() int {
		id := len(ccEdges)
		ccEdges = append(ccEdges, nil)
		return id
	}

	for _, e := range g.Edges() {
		u, v := e[0], e[1]
		var cc int
		switch {
		case isPebbled[u] && isPebbled[v]:
			cc = nextID() // degenerate: this edge is its own CC
		case isPebbled[u]:
			root := ds.find(v)
			id, ok := rootToCC[root]
			if !ok {
				id = nextID()
				rootToCC[root] = id
			}
			cc = id
		case isPebbled[v]:
			root := ds.find(u)
			id, ok := rootToCC[root]
			if !ok {
				id = nextID()
				rootToCC[root] = id
			}
			cc = id
		default:
			root := ds.find(u) // == ds.find(v), joined by this very edge
			id, ok := rootToCC[root]
			if !ok {
				id = nextID()
				rootToCC[root] = id
			}
			cc = id
		}
		edgeCC[[2]int{u, v}] = cc
		ccEdges[cc] = append(ccEdges[cc], [2]int{u, v})
	}

	return Partition{EdgeCC: edgeCC, CCEdges: ccEdges}, nil
}
