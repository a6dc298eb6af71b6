package recipes

import (
	"github.com/wlgame/pebblegame/gamestate"
	"github.com/wlgame/pebblegame/homomorphism"
	"github.com/wlgame/pebblegame/pebblegame"
	"github.com/wlgame/pebblegame/search"
)

// recipeStep is a Local-FWL primitive: an arg-space generator and a
// move, both taking the Engine they act on as their first argument.
type recipeStep struct {
	args func(e *pebblegame.Engine, s gamestate.StateID) [][]int
	move func(e *pebblegame.Engine, s gamestate.StateID, args []int) ([]gamestate.StateID, error)
}

var localFWLTags = map[string]int{
	"P_uu": 1, "P_vv": 2, "L_u": 3, "L_v": 4, "G_u": 5, "G_v": 6,
	"P_vu": 7, "LFWL": 8, "SLFWL": 9, "FWL": 10,
}

func gOperation(e *pebblegame.Engine, s gamestate.StateID, pebble, node, tag int) ([]gamestate.StateID, error) {
	ops := []pebblegame.Op{
		pebblegame.ExpandOp(pebble),
		pebblegame.RestrictOp(pebble, node),
	}
	return e.Composite(s, ops, pebblegame.Tag(tag))
}

func pebbledNode(e *pebblegame.Engine, s gamestate.StateID, pebble int) (int, error) {
	_, pebbles, _, err := e.SerializeState(s)
	if err != nil {
		return 0, err
	}
	return pebbles[pebble], nil
}

var localFWLTable = map[string]recipeStep{
	"P_uu": {
		args: func(e *pebblegame.Engine, s gamestate.StateID) [][]int {
			node, err := pebbledNode(e, s, 0)
			if err != nil {
				return nil
			}
			return [][]int{{node}}
		},
		move: func(e *pebblegame.Engine, s gamestate.StateID, args []int) ([]gamestate.StateID, error) {
			return KFWLOperation(e, s, 1, args[0], localFWLTags["P_uu"])
		},
	},
	"P_vv": {
		args: func(e *pebblegame.Engine, s gamestate.StateID) [][]int {
			node, err := pebbledNode(e, s, 1)
			if err != nil {
				return nil
			}
			return [][]int{{node}}
		},
		move: func(e *pebblegame.Engine, s gamestate.StateID, args []int) ([]gamestate.StateID, error) {
			return KFWLOperation(e, s, 0, args[0], localFWLTags["P_vv"])
		},
	},
	"L_u": {
		args: func(e *pebblegame.Engine, s gamestate.StateID) [][]int {
			node, err := pebbledNode(e, s, 1)
			if err != nil {
				return nil
			}
			return singleArgTuplesFrom(e.Graph().Neighbors(node))
		},
		move: func(e *pebblegame.Engine, s gamestate.StateID, args []int) ([]gamestate.StateID, error) {
			return KFWLOperation(e, s, 1, args[0], localFWLTags["L_u"])
		},
	},
	"L_v": {
		args: func(e *pebblegame.Engine, s gamestate.StateID) [][]int {
			node, err := pebbledNode(e, s, 0)
			if err != nil {
				return nil
			}
			return singleArgTuplesFrom(e.Graph().Neighbors(node))
		},
		move: func(e *pebblegame.Engine, s gamestate.StateID, args []int) ([]gamestate.StateID, error) {
			return KFWLOperation(e, s, 0, args[0], localFWLTags["L_v"])
		},
	},
	"G_u": {
		args: func(e *pebblegame.Engine, s gamestate.StateID) [][]int {
			return singleArgTuples(e.NumNodes())
		},
		move: func(e *pebblegame.Engine, s gamestate.StateID, args []int) ([]gamestate.StateID, error) {
			return gOperation(e, s, 1, args[0], localFWLTags["G_u"])
		},
	},
	"G_v": {
		args: func(e *pebblegame.Engine, s gamestate.StateID) [][]int {
			return singleArgTuples(e.NumNodes())
		},
		move: func(e *pebblegame.Engine, s gamestate.StateID, args []int) ([]gamestate.StateID, error) {
			return gOperation(e, s, 0, args[0], localFWLTags["G_v"])
		},
	},
	"P_vu": {
		args: func(e *pebblegame.Engine, s gamestate.StateID) [][]int {
			return [][]int{{-1}}
		},
		move: func(e *pebblegame.Engine, s gamestate.StateID, args []int) ([]gamestate.StateID, error) {
			return pVuOperation(e, s, localFWLTags["P_vu"])
		},
	},
	"LFWL": {
		args: func(e *pebblegame.Engine, s gamestate.StateID) [][]int {
			node, err := pebbledNode(e, s, 1)
			if err != nil {
				return nil
			}
			return productWithPebbleChoice(e.Graph().Neighbors(node))
		},
		move: func(e *pebblegame.Engine, s gamestate.StateID, args []int) ([]gamestate.StateID, error) {
			return KFWLOperation(e, s, args[1], args[0], localFWLTags["LFWL"])
		},
	},
	"SLFWL": {
		args: func(e *pebblegame.Engine, s gamestate.StateID) [][]int {
			n0, err := pebbledNode(e, s, 0)
			if err != nil {
				return nil
			}
			n1, err := pebbledNode(e, s, 1)
			if err != nil {
				return nil
			}
			both := append(append([]int{}, e.Graph().Neighbors(n0)...), e.Graph().Neighbors(n1)...)
			return productWithPebbleChoice(both)
		},
		move: func(e *pebblegame.Engine, s gamestate.StateID, args []int) ([]gamestate.StateID, error) {
			return KFWLOperation(e, s, args[1], args[0], localFWLTags["SLFWL"])
		},
	},
	"FWL": {
		args: func(e *pebblegame.Engine, s gamestate.StateID) [][]int {
			nodes := make([]int, e.NumNodes())
			for i := range nodes {
				nodes[i] = i
			}
			return productWithPebbleChoice(nodes)
		},
		move: func(e *pebblegame.Engine, s gamestate.StateID, args []int) ([]gamestate.StateID, error) {
			return KFWLOperation(e, s, args[1], args[0], localFWLTags["FWL"])
		},
	},
}

func singleArgTuplesFrom(nodes []int) [][]int {
	out := make([][]int, len(nodes))
	for i, v := range nodes {
		out[i] = []int{v}
	}
	return out
}

func productWithPebbleChoice(nodes []int) [][]int {
	out := make([][]int, 0, len(nodes)*2)
	for _, v := range nodes {
		out = append(out, []int{v, 0}, []int{v, 1})
	}
	return out
}

// pVuOperation swaps the pebbled u and v nodes via the scratch pebble
// (index NumPebbles()-1): the scratch pebble holds u while pebble 0
// moves to v, pebble 1 then moves to the scratch pebble's node u, and
// the scratch pebble is lifted once the swap completes.
func pVuOperation(e *pebblegame.Engine, s gamestate.StateID, tag int) ([]gamestate.StateID, error) {
	u, err := pebbledNode(e, s, 0)
	if err != nil {
		return nil, err
	}
	v, err := pebbledNode(e, s, 1)
	if err != nil {
		return nil, err
	}
	scratch := e.NumPebbles() - 1

	ops := []pebblegame.Op{
		pebblegame.RestrictOp(scratch, u),
		pebblegame.ExpandOp(0),
		pebblegame.RestrictOp(0, v),
		pebblegame.ExpandOp(1),
		pebblegame.RestrictOp(1, u),
		pebblegame.ExpandOp(scratch),
	}
	return e.Composite(s, ops, pebblegame.Tag(tag))
}

// LocalFWLMode names an initialization order (VS places pebble 0 then
// pebble 1; SV is the reverse) plus the ordered list of named
// recipeStep game-step prompts to combine each round.
type LocalFWLMode struct {
	Init  string
	Steps []string
}

var (
	SWL_VS  = LocalFWLMode{Init: "VS", Steps: []string{"L_u"}}
	SWL_SV  = LocalFWLMode{Init: "SV", Steps: []string{"L_u"}}
	PSWL_VS = LocalFWLMode{Init: "VS", Steps: []string{"L_u", "P_vv"}}
	PSWL_SV = LocalFWLMode{Init: "SV", Steps: []string{"L_u", "P_vv"}}
	GSWL    = LocalFWLMode{Init: "VS", Steps: []string{"L_u", "G_v"}}
	SSWL    = LocalFWLMode{Init: "VS", Steps: []string{"L_u", "L_v"}}
	LFWL2   = LocalFWLMode{Init: "VS", Steps: []string{"LFWL"}}
	SLFWL2  = LocalFWLMode{Init: "VS", Steps: []string{"SLFWL"}}
	FWL2    = LocalFWLMode{Init: "VS", Steps: []string{"FWL"}}
)

func combinedLocalStep(e *pebblegame.Engine, steps []string) (search.ArgSpace, search.Move) {
	args := func(s gamestate.StateID) [][]int {
		var out [][]int
		for idx, name := range steps {
			for _, a := range localFWLTable[name].args(e, s) {
				out = append(out, append([]int{idx}, a...))
			}
		}
		return out
	}
	move := func(s gamestate.StateID, args ...int) ([]gamestate.StateID, error) {
		name := steps[args[0]]
		return localFWLTable[name].move(e, s, args[1:])
	}
	return args, move
}

// CanLocalFWLCountColorful decides whether the named Local-FWL mode is
// Spoiler-winning on an already-contracted colorful graph. The second
// return value is the number of distinct states the underlying engine
// interned while deciding it.
func CanLocalFWLCountColorful(edges [][2]int, mode LocalFWLMode, numNodes ...int) (bool, int, error) {
	e, err := pebblegame.NewEngine(edges, 3, numNodes...)
	if err != nil {
		return false, 0, err
	}
	d := search.NewDriver(e)
	allNodes := search.FixedArgs(singleArgTuples(e.NumNodes()))

	frontier := e.Initialize()
	first, second := 0, 1
	if mode.Init == "SV" {
		first, second = 1, 0
	}
	frontier, err = d.Search(frontier, allNodes, restrictMove(e, first))
	if err != nil {
		return false, 0, err
	}
	frontier, err = d.Search(frontier, allNodes, restrictMove(e, second))
	if err != nil {
		return false, 0, err
	}

	argSpace, move := combinedLocalStep(e, mode.Steps)
	for len(frontier) > 0 {
		frontier, err = d.Search(frontier, argSpace, move)
		if err != nil {
			return false, 0, err
		}
	}

	ok, err := d.CanSpoilerWin(e.Initialize())
	return ok, e.NumStates(), err
}

// CanLocalFWLCount folds CanLocalFWLCountColorful over every
// contraction of edges. The second return value is the total number
// of states interned across every contraction's engine.
func CanLocalFWLCount(edges [][2]int, mode LocalFWLMode, numNodes ...int) (bool, int, error) {
	totalStates := 0
	for _, g := range homomorphism.ContractAll(edges, numNodes...) {
		ok, states, err := CanLocalFWLCountColorful(g, mode)
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
