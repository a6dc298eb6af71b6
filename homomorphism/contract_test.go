package homomorphism_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wlgame/pebblegame/homomorphism"
)

func pathEdges() [][2]int {
	// 0-1-2, both directions.
	return [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}}
}

func triangleEdges() [][2]int {
	return [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}, {0, 2}}
}

func TestContract_MergesAndDropsSelfLoop(t *testing.T) {
	got := homomorphism.Contract(pathEdges(), 2, 1) // merge node 2 into node 1
	// node 2 removed, no id shift needed for 0/1; edge (1,2)/(2,1) collapses to a self-loop and is dropped.
	require.ElementsMatch(t, [][2]int{{0, 1}, {1, 0}}, got)
}

func TestContract_RenumbersAboveRemovedNode(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {0, 2}, {2, 0}}
	got := homomorphism.Contract(edges, 0, 1) // remove node 0, node 2 becomes node 1
	for _, e := range got {
		require.Less(t, e[0], 2)
		require.Less(t, e[1], 2)
	}
}

func TestAllContractionPairs_TriangleHasNone(t *testing.T) {
	pairs := homomorphism.AllContractionPairs(triangleEdges(), 3)
	require.Empty(t, pairs, "a triangle is already a clique on 3 nodes")
}

func TestAllContractionPairs_PathHasOne(t *testing.T) {
	pairs := homomorphism.AllContractionPairs(pathEdges(), 3)
	require.Equal(t, [][2]int{{0, 2}}, pairs)
}

func TestIsIsomorphic_TrianglesMatchRegardlessOfLabeling(t *testing.T) {
	relabeled := [][2]int{{0, 2}, {2, 0}, {2, 1}, {1, 2}, {1, 0}, {0, 1}}
	require.True(t, homomorphism.IsIsomorphic(triangleEdges(), relabeled))
}

func TestIsIsomorphic_DifferentDegreeSequencesAreNotIsomorphic(t *testing.T) {
	require.False(t, homomorphism.IsIsomorphic(triangleEdges(), pathEdges()))
}

func TestContractAll_TriangleIsAlreadyAClique(t *testing.T) {
	results := homomorphism.ContractAll(triangleEdges())
	require.Len(t, results, 1)
	require.True(t, homomorphism.IsIsomorphic(results[0], triangleEdges()))
}

func TestContractAll_PathContractsDownToATwoNodeClique(t *testing.T) {
	results := homomorphism.ContractAll(pathEdges())
	require.Len(t, results, 2, "the 3-node path and the 2-node graph it contracts to")
	last := results[len(results)-1]
	require.ElementsMatch(t, [][2]int{{0, 1}, {1, 0}}, last, "two nodes joined by one edge is already complete")
}
