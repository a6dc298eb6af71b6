package pebblegame

import (
	"sort"

	"github.com/wlgame/pebblegame/gamestate"
	"github.com/wlgame/pebblegame/graphview"
	"github.com/wlgame/pebblegame/partition"
)

// Engine is the public facade over the pebble-game state engine:
// graphview.Graph + gamestate.Table + the append-only game-state
// graph.
type Engine struct {
	graph      *graphview.Graph
	numPebbles int
	table      *gamestate.Table
	gg         *gameGraph
}

// NewEngine builds an Engine over the graph described by edgeIndex
// (both orientations required, per graphview.New) with a fixed pebble
// count K. numNodes optionally fixes the node count.
func NewEngine(edgeIndex [][2]int, numPebbles int, numNodes ...int) (*Engine, error) {
	g, err := graphview.New(edgeIndex, numNodes...)
	if err != nil {
		return nil, err
	}
	return &Engine{
		graph:      g,
		numPebbles: numPebbles,
		table:      gamestate.NewTable(numPebbles),
		gg:         newGameGraph(),
	}, nil
}

// NumNodes returns the fixed node count N.
func (e *Engine) NumNodes() int { return e.graph.NumNodes() }

// NumPebbles returns the fixed pebble count K.
func (e *Engine) NumPebbles() int { return e.numPebbles }

// NumStates returns the number of distinct states interned so far.
func (e *Engine) NumStates() int { return e.table.Len() }

// Graph returns the Engine's underlying immutable graph view. Safe to
// share: graphview.Graph never mutates after construction.
func (e *Engine) Graph() *graphview.Graph { return e.graph }

// Initialize returns the singleton initial-state set: all pebbles
// off, no CC selected, tag 0.
func (e *Engine) Initialize() []gamestate.StateID {
	off := make(gamestate.Pebbles, e.numPebbles)
	for i := range off {
		off[i] = -1
	}
	id, _ := e.table.Intern(off, -1, 0)
	return []gamestate.StateID{id}
}

func (e *Engine) validateNode(v int) error {
	if v < 0 || v >= e.graph.NumNodes() {
		return ErrInvalidNode
	}
	return nil
}

func (e *Engine) validatePebble(i int) error {
	if i < 0 || i >= e.numPebbles {
		return ErrInvalidPebble
	}
	return nil
}

func (e *Engine) lookupState(s gamestate.StateID) (gamestate.State, error) {
	st, ok := e.table.Lookup(s)
	if !ok {
		return gamestate.State{}, ErrInvalidState
	}
	return st, nil
}

// dedupedPebbledNodes returns the distinct, non-sentinel node ids in
// p, in first-appearance order, so multiple pebbles sharing a node
// never trip partition.Label's duplicate-pebble check.
func dedupedPebbledNodes(p gamestate.Pebbles) []int {
	seen := make(map[int]bool, len(p))
	var out []int
	for _, v := range p {
		if v < 0 {
			continue
		}
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func (e *Engine) partitionOf(p gamestate.Pebbles) (partition.Partition, error) {
	return partition.Label(e.graph, dedupedPebbledNodes(p))
}

func isPebbledOn(p gamestate.Pebbles, node int) bool {
	for _, v := range p {
		if v == node {
			return true
		}
	}
	return false
}

// Restrict places pebble i on node v from source state s, branching
// into one successor per reachable CC of the resulting configuration.
// Successor ids are deduplicated and sorted.
func (e *Engine) Restrict(s gamestate.StateID, pebble, node int, opts ...MoveOption) ([]gamestate.StateID, error) {
	cfg := resolveMoveConfig(opts...)

	state, err := e.lookupState(s)
	if err != nil {
		return nil, err
	}
	if err := e.validatePebble(pebble); err != nil {
		return nil, err
	}
	if err := e.validateNode(node); err != nil {
		return nil, err
	}

	next := state.Pebbles.Clone()
	next[pebble] = node

	newPart, err := e.partitionOf(next)
	if err != nil {
		return nil, err
	}

	var reachable []int
	if state.CC == -1 {
		for c := 0; c < newPart.NumCC(); c++ {
			reachable = append(reachable, c)
		}
	} else {
		oldPart, err := e.partitionOf(state.Pebbles)
		if err != nil {
			return nil, err
		}
		seen := make(map[int]bool)
		for _, edge := range oldPart.CCEdges[state.CC] {
			if cc, ok := newPart.EdgeCC[edge]; ok && !seen[cc] {
				seen[cc] = true
				reachable = append(reachable, cc)
			}
		}
		sort.Ints(reachable)
	}

	successors := make([]gamestate.StateID, 0, len(reachable))
	for _, cc := range reachable {
		id, _ := e.table.Intern(next, cc, cfg.tag)
		successors = append(successors, id)
		if cfg.record {
			e.gg.addEdge(s, id)
		}
	}
	sort.Slice(successors, func(i, j int) bool { return successors[i] < successors[j] })

	if cfg.mark {
		e.table.MarkVisited(s)
	}
	return successors, nil
}

// Expand lifts pebble i from source state s, returning the single
// successor state.
func (e *Engine) Expand(s gamestate.StateID, pebble int, opts ...MoveOption) (gamestate.StateID, error) {
	cfg := resolveMoveConfig(opts...)

	state, err := e.lookupState(s)
	if err != nil {
		return 0, err
	}
	if err := e.validatePebble(pebble); err != nil {
		return 0, err
	}

	next := state.Pebbles.Clone()
	next[pebble] = -1

	newCC := -1
	if state.CC != -1 {
		oldPart, err := e.partitionOf(state.Pebbles)
		if err != nil {
			return 0, err
		}
		newPart, err := e.partitionOf(next)
		if err != nil {
			return 0, err
		}
		edges := oldPart.CCEdges[state.CC]
		if len(edges) > 0 {
			newCC = newPart.EdgeCC[edges[0]]
		}
	}

	id, _ := e.table.Intern(next, newCC, cfg.tag)
	if cfg.record {
		e.gg.addEdge(s, id)
	}
	if cfg.mark {
		e.table.MarkVisited(s)
	}
	return id, nil
}

// Composite folds a sequence of primitive moves starting from s,
// branching after every Restrict and collapsing after every Expand,
// and returns the deduplicated final successor set. mark applies only
// to s itself; intermediate states are never marked. An empty ops
// returns []StateID{s}.
func (e *Engine) Composite(s gamestate.StateID, ops []Op, opts ...MoveOption) ([]gamestate.StateID, error) {
	cfg := resolveMoveConfig(opts...)

	if _, err := e.lookupState(s); err != nil {
		return nil, err
	}
	for _, op := range ops {
		switch op.Kind {
		case OpRestrict:
			if err := e.validatePebble(op.Pebble); err != nil {
				return nil, err
			}
			if err := e.validateNode(op.Node); err != nil {
				return nil, err
			}
		case OpExpand:
			if err := e.validatePebble(op.Pebble); err != nil {
				return nil, err
			}
		default:
			return nil, ErrInvalidOp
		}
	}
	if cfg.mark {
		e.table.MarkVisited(s)
	}

	current := []gamestate.StateID{s}
	for _, op := range ops {
		seen := make(map[gamestate.StateID]bool)
		var next []gamestate.StateID
		for _, cur := range current {
			switch op.Kind {
			case OpRestrict:
				ids, err := e.Restrict(cur, op.Pebble, op.Node, Record(cfg.record), Mark(false), Tag(cfg.tag))
				if err != nil {
					return nil, err
				}
				for _, id := range ids {
					if !seen[id] {
						seen[id] = true
						next = append(next, id)
					}
				}
			case OpExpand:
				id, err := e.Expand(cur, op.Pebble, Record(cfg.record), Mark(false), Tag(cfg.tag))
				if err != nil {
					return nil, err
				}
				if !seen[id] {
					seen[id] = true
					next = append(next, id)
				}
			default:
				return nil, ErrInvalidOp
			}
		}
		current = next
	}

	sort.Slice(current, func(i, j int) bool { return current[i] < current[j] })
	return current, nil
}

// SerializeState returns the diagnostic triple (selected CC, pebble
// nodes, edges belonging to the selected CC) for s.
func (e *Engine) SerializeState(s gamestate.StateID) (cc int, pebbleNodes []int, edgesInCC [][2]int, err error) {
	state, err := e.lookupState(s)
	if err != nil {
		return 0, nil, nil, err
	}
	pebbleNodes = []int(state.Pebbles)
	if state.CC == -1 {
		return -1, pebbleNodes, nil, nil
	}
	part, err := e.partitionOf(state.Pebbles)
	if err != nil {
		return 0, nil, nil, err
	}
	if state.CC < 0 || state.CC >= part.NumCC() {
		return 0, nil, nil, ErrInvalidState
	}
	edges := make([][2]int, len(part.CCEdges[state.CC]))
	copy(edges, part.CCEdges[state.CC])
	return state.CC, pebbleNodes, edges, nil
}

// GetState directly interns (pebbleNodes, cc, tag). pebbleNodes must
// have length NumPebbles() and each entry must be -1 or a valid node
// id; cc, if not -1, must be within range of the resulting
// configuration's CC partition.
func (e *Engine) GetState(pebbleNodes []int, cc, tag int) (gamestate.StateID, error) {
	if len(pebbleNodes) != e.numPebbles {
		return 0, ErrInvalidPebble
	}
	p := make(gamestate.Pebbles, len(pebbleNodes))
	copy(p, pebbleNodes)
	for _, v := range p {
		if v != -1 {
			if err := e.validateNode(v); err != nil {
				return 0, err
			}
		}
	}
	if cc != -1 {
		part, err := e.partitionOf(p)
		if err != nil {
			return 0, err
		}
		if cc < 0 || cc >= part.NumCC() {
			return 0, ErrInvalidState
		}
	}
	id, _ := e.table.Intern(p, cc, tag)
	return id, nil
}

// IsSpoilerWinLocal reports the local win predicate: true iff s has a
// selected CC and that CC has no edge with both endpoints unpebbled.
// States with no selected CC (-1) are never a local win.
func (e *Engine) IsSpoilerWinLocal(s gamestate.StateID) (bool, error) {
	state, err := e.lookupState(s)
	if err != nil {
		return false, err
	}
	if state.CC == -1 {
		return false, nil
	}
	part, err := e.partitionOf(state.Pebbles)
	if err != nil {
		return false, err
	}
	if state.CC < 0 || state.CC >= part.NumCC() {
		return false, ErrInvalidState
	}
	for _, edge := range part.CCEdges[state.CC] {
		if !isPebbledOn(state.Pebbles, edge[0]) && !isPebbledOn(state.Pebbles, edge[1]) {
			return false, nil
		}
	}
	return true, nil
}

// HasVisited reports s's visited flag.
func (e *Engine) HasVisited(s gamestate.StateID) bool { return e.table.HasVisited(s) }

// MarkVisited sets s's visited flag.
func (e *Engine) MarkVisited(s gamestate.StateID) { e.table.MarkVisited(s) }

// GameGraph returns every recorded (from, to) edge of the game-state
// graph, in insertion order.
func (e *Engine) GameGraph() [][2]gamestate.StateID { return e.gg.dump() }

// AddGameGraphEdge appends an edge a->b directly, bypassing Restrict/Expand.
func (e *Engine) AddGameGraphEdge(a, b gamestate.StateID) { e.gg.addEdge(a, b) }

// Successors returns s's recorded outgoing game-graph neighbors,
// insertion-ordered, duplicates included.
func (e *Engine) Successors(s gamestate.StateID) []gamestate.StateID { return e.gg.successors(s) }

// EdgeCC computes the CC labeling of the graph's edges induced by
// pebbling exactly the given node ids.
func (e *Engine) EdgeCC(pebbleNodes []int) (map[[2]int]int, error) {
	part, err := partition.Label(e.graph, pebbleNodes)
	if err != nil {
		return nil, err
	}
	out := make(map[[2]int]int, len(part.EdgeCC))
	for k, v := range part.EdgeCC {
		out[k] = v
	}
	return out, nil
}
