package recipes

import "github.com/wlgame/pebblegame/graphview"

// khopNeighbors returns the nodes reachable from node within exactly
// (only=true) or at most (only=false) k hops, via a plain BFS distance
// computation over graphview.Graph's adjacency.
func khopNeighbors(g *graphview.Graph, node, k int, only bool) []int {
	if k == 0 {
		return []int{node}
	}
	n := g.NumNodes()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[node] = 0
	frontier := []int{node}
	for hop := 1; hop <= k; hop++ {
		var next []int
		for _, u := range frontier {
			for _, v := range g.Neighbors(u) {
				if dist[v] == -1 {
					dist[v] = hop
					next = append(next, v)
				}
			}
		}
		frontier = next
	}
	var out []int
	for v := 0; v < n; v++ {
		if only {
			if dist[v] == k {
				out = append(out, v)
			}
		} else if dist[v] != -1 && dist[v] <= k {
			out = append(out, v)
		}
	}
	return out
}

func intersect(a, b []int) []int {
	set := make(map[int]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	var out []int
	for _, v := range b {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}

// singleArgTuples builds the [][]int form of range(n), one single-int
// tuple per node, for use as a fixed ArgSpace.
func singleArgTuples(n int) [][]int {
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		out[i] = []int{i}
	}
	return out
}
