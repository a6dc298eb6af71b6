package recipes

import (
	"github.com/wlgame/pebblegame/gamestate"
	"github.com/wlgame/pebblegame/homomorphism"
	"github.com/wlgame/pebblegame/pebblegame"
	"github.com/wlgame/pebblegame/search"
)

// KFWLOperation is the composite "place the scratch pebble, swap it
// with oldPebble, remove the scratch pebble" move every k-FWL-family
// recipe below is built from. The scratch pebble is always the
// engine's last pebble slot.
func KFWLOperation(e *pebblegame.Engine, s gamestate.StateID, oldPebble, newNode, tag int) ([]gamestate.StateID, error) {
	scratch := e.NumPebbles() - 1
	ops := []pebblegame.Op{
		pebblegame.RestrictOp(scratch, newNode),
		pebblegame.ExpandOp(oldPebble),
		pebblegame.RestrictOp(oldPebble, newNode),
		pebblegame.ExpandOp(scratch),
	}
	return e.Composite(s, ops, pebblegame.Tag(tag))
}

func restrictMove(e *pebblegame.Engine, pebble int) search.Move {
	return func(s gamestate.StateID, args ...int) ([]gamestate.StateID, error) {
		return e.Restrict(s, pebble, args[0])
	}
}

// CanKFWLCountColorful decides whether k-FWL (using k+1 pebbles) is
// Spoiler-winning on the given colorful (already-contracted) graph.
// The second return value is the number of distinct states the
// underlying engine interned while deciding it.
func CanKFWLCountColorful(edges [][2]int, k int, numNodes ...int) (bool, int, error) {
	e, err := pebblegame.NewEngine(edges, k+1, numNodes...)
	if err != nil {
		return false, 0, err
	}
	d := search.NewDriver(e)
	allNodes := search.FixedArgs(singleArgTuples(e.NumNodes()))

	frontier := e.Initialize()
	for i := 0; i < k; i++ {
		frontier, err = d.Search(frontier, allNodes, restrictMove(e, i))
		if err != nil {
			return false, 0, err
		}
	}

	var moveArgs [][]int
	for node := 0; node < e.NumNodes(); node++ {
		for pebble := 0; pebble < e.NumPebbles()-1; pebble++ {
			moveArgs = append(moveArgs, []int{node, pebble})
		}
	}
	gameStep := search.FixedArgs(moveArgs)
	gameMove := func(s gamestate.StateID, args ...int) ([]gamestate.StateID, error) {
		return KFWLOperation(e, s, args[1], args[0], 0)
	}
	for len(frontier) > 0 {
		frontier, err = d.Search(frontier, gameStep, gameMove)
		if err != nil {
			return false, 0, err
		}
	}

	ok, err := d.CanSpoilerWin(e.Initialize())
	return ok, e.NumStates(), err
}

// CanKFWLCount folds CanKFWLCountColorful over every graph
// homomorphism.ContractAll produces from edges. The second return
// value is the total number of states interned across every
// contraction's engine.
func CanKFWLCount(edges [][2]int, k int, numNodes ...int) (bool, int, error) {
	totalStates := 0
	for _, g := range homomorphism.ContractAll(edges, numNodes...) {
		ok, states, err := CanKFWLCountColorful(g, k)
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
