package pebblegame_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wlgame/pebblegame/gamestate"
	"github.com/wlgame/pebblegame/pebblegame"
)

func cycleEdges(n int) [][2]int {
	var edges [][2]int
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edges = append(edges, [2]int{i, j}, [2]int{j, i})
	}
	return edges
}

func triangleEdges() [][2]int {
	return [][2]int{
		{0, 1}, {1, 0},
		{1, 2}, {2, 1},
		{2, 0}, {0, 2},
	}
}

func TestInitialize_IsUniqueAllOffState(t *testing.T) {
	e, err := pebblegame.NewEngine(triangleEdges(), 3)
	require.NoError(t, err)

	ids := e.Initialize()
	require.Len(t, ids, 1)

	id2 := e.Initialize() // re-calling must return the same id (interning)
	require.Equal(t, ids, id2)

	cc, pebbles, edges, err := e.SerializeState(ids[0])
	require.NoError(t, err)
	require.Equal(t, -1, cc)
	require.Equal(t, []int{-1, -1, -1}, pebbles)
	require.Nil(t, edges)
}

func TestRestrict_FromNoCCSelected_BranchesAcrossAllCCs(t *testing.T) {
	e, err := pebblegame.NewEngine(cycleEdges(4), 2)
	require.NoError(t, err)

	s0, err := e.GetState([]int{0, -1}, -1, 0)
	require.NoError(t, err)

	succ, err := e.Restrict(s0, 1, 2)
	require.NoError(t, err)
	require.Len(t, succ, 2, "pebbling opposite corners of a 4-cycle splits it into two CCs")
}

func TestRestrict_DeduplicatesAndSortsSuccessors(t *testing.T) {
	e, err := pebblegame.NewEngine(cycleEdges(4), 2)
	require.NoError(t, err)

	s0, err := e.GetState([]int{0, -1}, -1, 0)
	require.NoError(t, err)
	succ, err := e.Restrict(s0, 1, 2)
	require.NoError(t, err)
	require.True(t, sort.SliceIsSorted(succ, func(i, j int) bool { return succ[i] < succ[j] }))
	seen := map[gamestate.StateID]bool{}
	for _, id := range succ {
		require.False(t, seen[id], "successor ids must be deduplicated")
		seen[id] = true
	}
}

func TestRestrict_MarksSourceVisited(t *testing.T) {
	e, err := pebblegame.NewEngine(triangleEdges(), 2)
	require.NoError(t, err)
	s0 := e.Initialize()[0]
	require.False(t, e.HasVisited(s0))
	_, err = e.Restrict(s0, 0, 0)
	require.NoError(t, err)
	require.True(t, e.HasVisited(s0))
}

func TestRestrict_MarkFalseLeavesSourceUnvisited(t *testing.T) {
	e, err := pebblegame.NewEngine(triangleEdges(), 2)
	require.NoError(t, err)
	s0 := e.Initialize()[0]
	_, err = e.Restrict(s0, 0, 0, pebblegame.Mark(false))
	require.NoError(t, err)
	require.False(t, e.HasVisited(s0))
}

func TestRestrict_RecordFalseSkipsGameGraphEdge(t *testing.T) {
	e, err := pebblegame.NewEngine(triangleEdges(), 2)
	require.NoError(t, err)
	s0 := e.Initialize()[0]
	_, err = e.Restrict(s0, 0, 0, pebblegame.Record(false))
	require.NoError(t, err)
	require.Empty(t, e.GameGraph())
}

// P3: restrict then expand the same pebble returns to the state with
// that pebble off, other pebbles unchanged, and the CC containing the
// prior selected CC.
func TestExpand_IsInverseOfRestrict(t *testing.T) {
	e, err := pebblegame.NewEngine(cycleEdges(4), 2)
	require.NoError(t, err)

	s0 := e.Initialize()[0]
	ids1, err := e.Restrict(s0, 0, 0) // P=[0,-1], c=-1 -> single CC -> one successor
	require.NoError(t, err)
	require.Len(t, ids1, 1)
	s1 := ids1[0]

	ids2, err := e.Restrict(s1, 1, 2, pebblegame.Tag(5)) // branches into 2 CCs
	require.NoError(t, err)
	require.Len(t, ids2, 2)

	for _, s2 := range ids2 {
		back, err := e.Expand(s2, 1) // lift pebble 1, default tag 0
		require.NoError(t, err)
		require.Equal(t, s1, back, "expanding pebble 1 must land back on the state before it was placed")

		_, pebbles, _, err := e.SerializeState(back)
		require.NoError(t, err)
		require.Equal(t, []int{0, -1}, pebbles)
	}
}

func TestExpand_OnAlreadyOffPebbleIsIdempotent(t *testing.T) {
	e, err := pebblegame.NewEngine(triangleEdges(), 2)
	require.NoError(t, err)
	s0 := e.Initialize()[0]
	id, err := e.Expand(s0, 0)
	require.NoError(t, err)
	require.Equal(t, s0, id)
}

// P4: composite equals folding moves one at a time.
func TestComposite_EqualsManualFold(t *testing.T) {
	e, err := pebblegame.NewEngine(cycleEdges(4), 2)
	require.NoError(t, err)

	s0 := e.Initialize()[0]
	ops := []pebblegame.Op{
		pebblegame.RestrictOp(0, 0),
		pebblegame.RestrictOp(1, 2),
		pebblegame.ExpandOp(0),
	}

	got, err := e.Composite(s0, ops, pebblegame.Tag(7))
	require.NoError(t, err)

	// Manual fold, mirroring pebblegame.Engine.Composite's own algorithm.
	current := []gamestate.StateID{s0}
	for _, op := range ops {
		seen := map[gamestate.StateID]bool{}
		var next []gamestate.StateID
		for _, cur := range current {
			switch op.Kind {
			case pebblegame.OpRestrict:
				ids, err := e.Restrict(cur, op.Pebble, op.Node, pebblegame.Tag(7), pebblegame.Mark(false))
				require.NoError(t, err)
				for _, id := range ids {
					if !seen[id] {
						seen[id] = true
						next = append(next, id)
					}
				}
			case pebblegame.OpExpand:
				id, err := e.Expand(cur, op.Pebble, pebblegame.Tag(7), pebblegame.Mark(false))
				require.NoError(t, err)
				if !seen[id] {
					seen[id] = true
					next = append(next, id)
				}
			}
		}
		current = next
	}
	sort.Slice(current, func(i, j int) bool { return current[i] < current[j] })

	require.Equal(t, current, got)
}

func TestComposite_EmptyOpsReturnsSourceAndOnlyMarksRoot(t *testing.T) {
	e, err := pebblegame.NewEngine(triangleEdges(), 2)
	require.NoError(t, err)
	s0 := e.Initialize()[0]

	got, err := e.Composite(s0, nil)
	require.NoError(t, err)
	require.Equal(t, []gamestate.StateID{s0}, got)
	require.True(t, e.HasVisited(s0))
}

func TestComposite_EmptyOpsMarkFalseLeavesUnvisited(t *testing.T) {
	e, err := pebblegame.NewEngine(triangleEdges(), 2)
	require.NoError(t, err)
	s0 := e.Initialize()[0]

	_, err = e.Composite(s0, nil, pebblegame.Mark(false))
	require.NoError(t, err)
	require.False(t, e.HasVisited(s0))
}

// P6: local predicate is true iff the selected CC has no unpebbled-unpebbled edge.
func TestIsSpoilerWinLocal(t *testing.T) {
	e, err := pebblegame.NewEngine(triangleEdges(), 3)
	require.NoError(t, err)

	// No CC selected: never a local win.
	noCC, err := e.GetState([]int{-1, -1, -1}, -1, 0)
	require.NoError(t, err)
	win, err := e.IsSpoilerWinLocal(noCC)
	require.NoError(t, err)
	require.False(t, win)

	// All three triangle nodes pebbled: every edge is degenerate (both
	// endpoints pebbled), so its lone CC is a local win.
	allPebbled, err := e.GetState([]int{0, 1, 2}, 0, 0)
	require.NoError(t, err)
	win, err = e.IsSpoilerWinLocal(allPebbled)
	require.NoError(t, err)
	require.True(t, win)

	// One node pebbled: the remaining two nodes still share an
	// unpebbled-unpebbled edge, so it is not a local win.
	onePebbled, err := e.GetState([]int{0, -1, -1}, 0, 0)
	require.NoError(t, err)
	win, err = e.IsSpoilerWinLocal(onePebbled)
	require.NoError(t, err)
	require.False(t, win)
}

func TestEdgeCC_InvariantUnderEdgeOrderPermutation(t *testing.T) {
	edges := cycleEdges(5)
	e1, err := pebblegame.NewEngine(edges, 2)
	require.NoError(t, err)

	reversed := make([][2]int, len(edges))
	for i, edge := range edges {
		reversed[len(edges)-1-i] = edge
	}
	e2, err := pebblegame.NewEngine(reversed, 2)
	require.NoError(t, err)

	cc1, err := e1.EdgeCC([]int{0})
	require.NoError(t, err)
	cc2, err := e2.EdgeCC([]int{0})
	require.NoError(t, err)
	require.Equal(t, cc1, cc2)
}

func TestErrors_InvalidArguments(t *testing.T) {
	e, err := pebblegame.NewEngine(triangleEdges(), 2)
	require.NoError(t, err)
	s0 := e.Initialize()[0]

	_, err = e.Restrict(s0, 9, 0)
	require.ErrorIs(t, err, pebblegame.ErrInvalidPebble)

	_, err = e.Restrict(s0, 0, 99)
	require.ErrorIs(t, err, pebblegame.ErrInvalidNode)

	_, err = e.Restrict(gamestate.StateID(999), 0, 0)
	require.ErrorIs(t, err, pebblegame.ErrInvalidState)

	_, _, _, err = e.SerializeState(gamestate.StateID(999))
	require.ErrorIs(t, err, pebblegame.ErrInvalidState)

	_, err = e.GetState([]int{0}, -1, 0) // wrong length for K=2
	require.ErrorIs(t, err, pebblegame.ErrInvalidPebble)

	_, err = e.Composite(s0, []pebblegame.Op{{Kind: pebblegame.OpKind(99)}})
	require.ErrorIs(t, err, pebblegame.ErrInvalidOp)
}
