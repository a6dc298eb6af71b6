package search

import (
	"sort"

	"github.com/wlgame/pebblegame/gamestate"
	"github.com/wlgame/pebblegame/pebblegame"
)

// ArgSpace yields the argument tuples to try from a given state; it
// may be a fixed iterable or depend on the state itself. FixedArgs
// adapts a constant value into the function form for the common case
// where the arguments don't depend on the state.
type ArgSpace func(gamestate.StateID) [][]int

// FixedArgs returns an ArgSpace that ignores its state and always
// yields the same argument tuples.
func FixedArgs(args [][]int) ArgSpace {
	return func(gamestate.StateID) [][]int { return args }
}

// Move applies one step from a state with the given arguments,
// returning the resulting successor ids (possibly empty, meaning "no move").
type Move func(state gamestate.StateID, args ...int) ([]gamestate.StateID, error)

// Driver is a thin client of a pebblegame.Engine that drives BFS
// exploration of its state space.
type Driver struct {
	Engine *pebblegame.Engine
}

// NewDriver wraps an Engine for search-driven exploration.
func NewDriver(e *pebblegame.Engine) *Driver {
	return &Driver{Engine: e}
}

// Search runs one exploration level: for every state in frontier that
// is not yet visited, it calls move once per argument tuple yielded
// by args(state), collecting every returned successor id. The
// returned frontier is the deduplicated union of all collected ids,
// sorted for determinism. The caller drives the loop (repeatedly
// calling Search) until the returned frontier is empty.
func (d *Driver) Search(frontier []gamestate.StateID, args ArgSpace, move Move) ([]gamestate.StateID, error) {
	seen := make(map[gamestate.StateID]bool)
	var next []gamestate.StateID

	for _, s := range frontier {
		if d.Engine.HasVisited(s) {
			continue
		}
		for _, tuple := range args(s) {
			ids, err := move(s, tuple...)
			if err != nil {
				return nil, err
			}
			for _, id := range ids {
				if !seen[id] {
					seen[id] = true
					next = append(next, id)
				}
			}
		}
	}

	sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
	return next, nil
}

// neighborKey groups a game-graph successor by (Pebbles, CC),
// deliberately excluding Tag: alternatives that differ only by tag
// represent the same Duplicator choice.
type neighborKey struct {
	pebbles string
	cc      int
}

func (d *Driver) neighborKeyOf(s gamestate.StateID) (neighborKey, error) {
	cc, pebbleNodes, _, err := d.Engine.SerializeState(s)
	if err != nil {
		return neighborKey{}, err
	}
	key := make([]byte, 0, len(pebbleNodes)*4)
	for _, v := range pebbleNodes {
		key = append(key, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	return neighborKey{pebbles: string(key), cc: cc}, nil
}

// CanSpoilerWin performs the monotone fixed-point back-induction over
// every state interned so far and reports whether every state in
// initial has W=true.
//
// W[i] starts at IsSpoilerWinLocal(i). Repeatedly, for each i with
// W[i]=false, i's recorded outgoing successors are grouped by
// (Pebbles, CC) (tag ignored); if any group is entirely W=true,
// W[i] is promoted to true. This repeats to a fixed point (the graph
// is finite and W only grows, so it always terminates).
func (d *Driver) CanSpoilerWin(initial []gamestate.StateID) (bool, error) {
	n := d.Engine.NumStates()
	win := make([]bool, n)
	for i := 0; i < n; i++ {
		w, err := d.Engine.IsSpoilerWinLocal(gamestate.StateID(i))
		if err != nil {
			return false, err
		}
		win[i] = w
	}

	for {
		changed := false
		for i := 0; i < n; i++ {
			if win[i] {
				continue
			}
			groups := make(map[neighborKey][]gamestate.StateID)
			var order []neighborKey
			for _, nb := range d.Engine.Successors(gamestate.StateID(i)) {
				key, err := d.neighborKeyOf(nb)
				if err != nil {
					return false, err
				}
				if _, ok := groups[key]; !ok {
					order = append(order, key)
				}
				groups[key] = append(groups[key], nb)
			}
			for _, key := range order {
				allWin := true
				for _, nb := range groups[key] {
					if !win[nb] {
						allWin = false
						break
					}
				}
				if allWin {
					win[i] = true
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}

	for _, s := range initial {
		if int(s) >= n || !win[s] {
			return false, nil
		}
	}
	return true, nil
}
