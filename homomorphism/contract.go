package homomorphism

import "sort"

func numNodesOf(edges [][2]int) int {
	max := -1
	for _, e := range edges {
		if e[0] > max {
			max = e[0]
		}
		if e[1] > max {
			max = e[1]
		}
	}
	return max + 1
}

// remapAfterRemoving shifts an id down by one if it lies past the
// removed node u, matching ordinary vertex-deletion renumbering.
func remapAfterRemoving(id, u int) int {
	if id > u {
		return id - 1
	}
	return id
}

// Contract merges node u into node v: every edge endpoint equal to u
// is rewritten to v, the resulting self-loop (an edge directly between
// u and v) is dropped, duplicate edges are deduplicated, and every
// remaining node id above u is shifted down by one so the returned
// edge list spans a dense [0, numNodes-1) range with u removed.
func Contract(edges [][2]int, u, v int) [][2]int {
	seen := make(map[[2]int]bool, len(edges))
	var out [][2]int
	for _, e := range edges {
		a, b := e[0], e[1]
		if a == u {
			a = v
		}
		if b == u {
			b = v
		}
		if a == b {
			continue
		}
		a, b = remapAfterRemoving(a, u), remapAfterRemoving(b, u)
		key := [2]int{a, b}
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// AllContractionPairs returns every unordered pair (i,j), i<j, of
// nodes in [0,numNodes) that is NOT already joined by an edge —
// candidates for the next contraction step.
func AllContractionPairs(edges [][2]int, numNodes int) [][2]int {
	adj := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		adj[e] = true
	}
	var out [][2]int
	for i := 0; i < numNodes; i++ {
		for j := i + 1; j < numNodes; j++ {
			if !adj[[2]int{i, j}] && !adj[[2]int{j, i}] {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

func isClique(edges [][2]int, numNodes int) bool {
	return len(AllContractionPairs(edges, numNodes)) == 0
}

func resolveNumNodes(groups [][][2]int, numNodes []int) int {
	if len(numNodes) > 0 {
		return numNodes[0]
	}
	max := 0
	for _, g := range groups {
		if n := numNodesOf(g); n > max {
			max = n
		}
	}
	return max
}

func contractOnce(graphs [][][2]int, numNodes int) [][][2]int {
	var out [][][2]int
	for _, g := range graphs {
		for _, pair := range AllContractionPairs(g, numNodes) {
			// Merge the larger-indexed node into the smaller.
			result := Contract(g, pair[1], pair[0])
			dup := false
			for _, existing := range out {
				if IsIsomorphic(result, existing) {
					dup = true
					break
				}
			}
			if !dup {
				out = append(out, result)
			}
		}
	}
	return out
}

// ContractAll repeatedly contracts non-adjacent node pairs down toward
// a single clique,
// returning every distinct (up to isomorphism) graph produced across
// every round, including the starting graph itself.
func ContractAll(edges [][2]int, numNodes ...int) [][][2]int {
	n := resolveNumNodes([][][2]int{edges}, numNodes)
	var all [][][2]int
	current := [][][2]int{edges}
	for {
		all = append(all, current...)
		if len(current) == 1 && isClique(current[0], n) {
			break
		}
		if n <= 1 {
			break
		}
		current = contractOnce(current, n)
		n--
		if len(current) == 0 {
			break
		}
	}
	return all
}
