package recipes

import (
	"github.com/wlgame/pebblegame/gamestate"
	"github.com/wlgame/pebblegame/homomorphism"
	"github.com/wlgame/pebblegame/pebblegame"
	"github.com/wlgame/pebblegame/search"
)

// DRFWL1, DRFWL2, DRFWL3 are the named hop-pair tables: each
// (hop1,hop2) pair drives one variant of the "distance-restricted"
// FWL game step.
var (
	DRFWL1 = [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	DRFWL2 = append(append([][2]int{}, DRFWL1...), [2]int{0, 2}, [2]int{2, 0}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})
	DRFWL3 = append(append([][2]int{}, DRFWL2...), [2]int{0, 3}, [2]int{3, 0}, [2]int{1, 3}, [2]int{3, 1}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3})
)

var drfwlTags = map[[2]int]int{
	{0, 0}: 1, {0, 1}: 2, {1, 0}: 3, {1, 1}: 4,
	{0, 2}: 5, {2, 0}: 6, {1, 2}: 7, {2, 1}: 8, {2, 2}: 9,
	{0, 3}: 10, {3, 0}: 11, {1, 3}: 12, {3, 1}: 13, {2, 3}: 14, {3, 2}: 15, {3, 3}: 16,
}

func drfwlStep(e *pebblegame.Engine, mode [][2]int) (search.ArgSpace, search.Move) {
	args := func(s gamestate.StateID) [][]int {
		_, pebbles, _, err := e.SerializeState(s)
		if err != nil {
			return nil
		}
		var out [][]int
		for idx, hp := range mode {
			inter := intersect(
				khopNeighbors(e.Graph(), pebbles[0], hp[0], true),
				khopNeighbors(e.Graph(), pebbles[1], hp[1], true),
			)
			for _, node := range inter {
				out = append(out, []int{idx, node, 0})
				out = append(out, []int{idx, node, 1})
			}
		}
		return out
	}
	move := func(s gamestate.StateID, args ...int) ([]gamestate.StateID, error) {
		idx, node, pebble := args[0], args[1], args[2]
		hp := mode[idx]
		return KFWLOperation(e, s, pebble, node, drfwlTags[hp])
	}
	return args, move
}

// CanDRFWLCountColorful decides whether the DRFWL variant named by
// mode (e.g. DRFWL1/DRFWL2/DRFWL3) is Spoiler-winning at distance k,
// on an already-contracted colorful graph. The second return value is
// the number of distinct states the underlying engine interned while
// deciding it.
func CanDRFWLCountColorful(edges [][2]int, mode [][2]int, k int, numNodes ...int) (bool, int, error) {
	e, err := pebblegame.NewEngine(edges, 3, numNodes...)
	if err != nil {
		return false, 0, err
	}
	d := search.NewDriver(e)
	allNodes := search.FixedArgs(singleArgTuples(e.NumNodes()))

	frontier, err := d.Search(e.Initialize(), allNodes, restrictMove(e, 0))
	if err != nil {
		return false, 0, err
	}

	hopArgs := search.ArgSpace(func(s gamestate.StateID) [][]int {
		_, pebbles, _, err := e.SerializeState(s)
		if err != nil {
			return nil
		}
		nbs := khopNeighbors(e.Graph(), pebbles[0], k, false)
		out := make([][]int, len(nbs))
		for i, v := range nbs {
			out[i] = []int{v}
		}
		return out
	})
	frontier, err = d.Search(frontier, hopArgs, restrictMove(e, 1))
	if err != nil {
		return false, 0, err
	}

	argSpace, move := drfwlStep(e, mode)
	for len(frontier) > 0 {
		frontier, err = d.Search(frontier, argSpace, move)
		if err != nil {
			return false, 0, err
		}
	}

	ok, err := d.CanSpoilerWin(e.Initialize())
	return ok, e.NumStates(), err
}

// CanDRFWLCount folds CanDRFWLCountColorful over every contraction of
// edges. The second return value is the total number of states
// interned across every contraction's engine.
func CanDRFWLCount(edges [][2]int, mode [][2]int, k int, numNodes ...int) (bool, int, error) {
	totalStates := 0
	for _, g := range homomorphism.ContractAll(edges, numNodes...) {
		ok, states, err := CanDRFWLCountColorful(g, mode, k)
		totalStates += states
		if err != nil {
			return false, totalStates, err
		}
		if !ok {
			return false, totalStates, nil
		}
	}
	return true, totalStates, nil
}
