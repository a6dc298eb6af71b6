package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wlgame/pebblegame/graphview"
	"github.com/wlgame/pebblegame/partition"
)

func cycle(n int) [][2]int {
	var edges [][2]int
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edges = append(edges, [2]int{i, j}, [2]int{j, i})
	}
	return edges
}

func TestLabel_NoPebbles_SingleComponent(t *testing.T) {
	g, err := graphview.New(cycle(4))
	require.NoError(t, err)

	p, err := partition.Label(g, nil)
	require.NoError(t, err)
	require.Equal(t, 1, p.NumCC())
	require.Len(t, p.CCEdges[0], 8)
}

func TestLabel_OnePebble_SplitsCycleIntoOnePath(t *testing.T) {
	g, err := graphview.New(cycle(4))
	require.NoError(t, err)

	// Pebbling one node of a 4-cycle leaves a path on the other 3
	// nodes: a single connected component (paths don't split further).
	p, err := partition.Label(g, []int{0})
	require.NoError(t, err)
	require.Equal(t, 1, p.NumCC())
}

func TestLabel_TwoOppositePebbles_SplitsCycleInTwo(t *testing.T) {
	g, err := graphview.New(cycle(4))
	require.NoError(t, err)

	// Pebbling nodes 0 and 2 (opposite corners) leaves nodes 1 and 3
	// disconnected: one CC holds the edges 0-1 and 1-2, the other the
	// edges 2-3 and 3-0.
	p, err := partition.Label(g, []int{0, 2})
	require.NoError(t, err)
	require.Equal(t, 2, p.NumCC())
}

func TestLabel_BothEndpointsPebbled_Degenerate(t *testing.T) {
	g, err := graphview.New([][2]int{{0, 1}, {1, 0}})
	require.NoError(t, err)

	p, err := partition.Label(g, []int{0, 1})
	require.NoError(t, err)
	// Both directions of the same edge are degenerate, each its own CC.
	require.Equal(t, 2, p.NumCC())
	for _, edges := range p.CCEdges {
		require.Len(t, edges, 1)
	}
}

func TestLabel_CanonicalizationIsOrderIndependent(t *testing.T) {
	edges := cycle(5)
	g1, err := graphview.New(edges)
	require.NoError(t, err)

	reversed := make([][2]int, len(edges))
	for i, e := range edges {
		reversed[len(edges)-1-i] = e
	}
	g2, err := graphview.New(reversed)
	require.NoError(t, err)

	p1, err := partition.Label(g1, []int{0})
	require.NoError(t, err)
	p2, err := partition.Label(g2, []int{0})
	require.NoError(t, err)
	require.Equal(t, p1.EdgeCC, p2.EdgeCC)
}

func TestLabel_Errors(t *testing.T) {
	g, err := graphview.New(cycle(4))
	require.NoError(t, err)

	_, err = partition.Label(g, []int{9})
	require.ErrorIs(t, err, partition.ErrInvalidNode)

	_, err = partition.Label(g, []int{0, 0})
	require.ErrorIs(t, err, partition.ErrDuplicatePebble)
}
