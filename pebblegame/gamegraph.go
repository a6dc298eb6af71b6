package pebblegame

import "github.com/wlgame/pebblegame/gamestate"

// gameGraph is the append-only directed multigraph over state ids.
// Duplicate edges are tolerated by design.
type gameGraph struct {
	out   map[gamestate.StateID][]gamestate.StateID
	edges [][2]gamestate.StateID // global insertion order, for dump()
}

func newGameGraph() *gameGraph {
	return &gameGraph{out: make(map[gamestate.StateID][]gamestate.StateID)}
}

// addEdge appends a directed edge a->b, always, even if it duplicates
// an existing edge.
func (g *gameGraph) addEdge(a, b gamestate.StateID) {
	g.out[a] = append(g.out[a], b)
	g.edges = append(g.edges, [2]gamestate.StateID{a, b})
}

// successors returns a's outgoing neighbor ids, insertion-ordered,
// duplicates included. The returned slice is a copy.
func (g *gameGraph) successors(a gamestate.StateID) []gamestate.StateID {
	src := g.out[a]
	out := make([]gamestate.StateID, len(src))
	copy(out, src)
	return out
}

// dump returns every recorded edge as (from, to) pairs, in global
// insertion order.
func (g *gameGraph) dump() [][2]gamestate.StateID {
	out := make([][2]gamestate.StateID, len(g.edges))
	copy(out, g.edges)
	return out
}
