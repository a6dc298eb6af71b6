package pebblegame

import "errors"

// ErrInvalidNode indicates a node id outside the graph's [0,N) range.
var ErrInvalidNode = errors.New("pebblegame: node id out of range")

// ErrInvalidPebble indicates a pebble index outside [0,K).
var ErrInvalidPebble = errors.New("pebblegame: pebble index out of range")

// ErrInvalidState indicates a state id not issued by this Engine, or
// (for GetState) a CC selection outside the resulting partition's range.
var ErrInvalidState = errors.New("pebblegame: unknown or invalid state")

// ErrInvalidOp indicates a Composite op of unrecognized kind.
var ErrInvalidOp = errors.New("pebblegame: unrecognized composite op")
