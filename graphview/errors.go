package graphview

import "errors"

// ErrInvalidNode indicates a node id outside [0,N).
var ErrInvalidNode = errors.New("graphview: node id out of range")

// ErrSelfLoop indicates an edge whose two endpoints are equal.
var ErrSelfLoop = errors.New("graphview: self-loops are not supported")

// ErrAsymmetricEdge indicates an edge (u,v) whose mirror (v,u) is missing.
var ErrAsymmetricEdge = errors.New("graphview: edge given without its mirror orientation")
