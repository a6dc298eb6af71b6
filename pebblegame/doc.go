// Package pebblegame implements the transition engine, the append-only
// game-state graph, and the public Engine facade that drives the
// pebble game over a fixed graph.
//
// Design contract:
//   - One entry point per move: Restrict, Expand, Composite. Each
//     validates its arguments against the fixed graph/pebble-count
//     before touching the state table, so a validation error never
//     partially mutates anything.
//   - MoveOption functional options (Record, Mark, Tag) resolve into an
//     immutable moveConfig per call; the three knobs are independent.
//   - Engine owns a graphview.Graph, a gamestate.Table, and the
//     append-only game-state graph; it never shares these across
//     instances and never deletes from them.
//
// Errors:
//
//	ErrInvalidNode   - node id outside [0,N).
//	ErrInvalidPebble - pebble index outside [0,K).
//	ErrInvalidState  - state id not issued by this Engine, or an
//	                   out-of-range CC selection passed to GetState.
//	ErrInvalidOp     - a Composite op of unrecognized OpKind.
package pebblegame
