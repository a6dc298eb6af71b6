package homomorphism

import "sort"

func edgeSet(edges [][2]int) map[[2]int]bool {
	set := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		set[e] = true
	}
	return set
}

func degrees(edges [][2]int, numNodes int) []int {
	deg := make([]int, numNodes)
	for _, e := range edges {
		deg[e[0]]++
	}
	return deg
}

func sortedCopy(xs []int) []int {
	out := append([]int(nil), xs...)
	sort.Ints(out)
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsIsomorphic reports whether a and b describe the same graph up to
// relabeling, decided by degree-pruned backtracking over candidate
// vertex permutations. Exact and cheap at this system's node counts.
func IsIsomorphic(a, b [][2]int) bool {
	na, nb := numNodesOf(a), numNodesOf(b)
	if na != nb {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	n := na
	if n == 0 {
		return true
	}
	degA, degB := degrees(a, n), degrees(b, n)
	if !equalInts(sortedCopy(degA), sortedCopy(degB)) {
		return false
	}

	setB := edgeSet(b)
	assign := make([]int, n)
	used := make([]bool, n)
	for i := range assign {
		assign[i] = -1
	}

	var backtrack func(pos int) bool
	backtrack = func(pos int) bool {
		if pos == n {
			for _, e := range a {
				if !setB[[2]int{assign[e[0]], assign[e[1]]}] {
					return false
				}
			}
			return true
		}
		for cand := 0; cand < n; cand++ {
			if used[cand] || degA[pos] != degB[cand] {
				continue
			}
			used[cand] = true
			assign[pos] = cand
			if backtrack(pos + 1) {
				return true
			}
			used[cand] = false
			assign[pos] = -1
		}
		return false
	}
	return backtrack(0)
}
