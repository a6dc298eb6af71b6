// Package graphview provides an immutable adjacency view of a simple
// undirected graph over integer node ids [0,N).
//
// What:
//   - Graph wraps a dense edge-existence relation plus, per node, an
//     ordered neighbor list, built once from an edge list.
//   - Both edge orientations are required at construction; duplicate
//     edges are collapsed.
//
// Why:
//   - The pebble-game engine (package pebblegame) and CC labeler
//     (package partition) both need O(1) edge lookups and a stable
//     neighbor iteration order; locking is unnecessary here because
//     the graph never mutates after construction.
//
// Errors:
//
//	ErrInvalidNode    - an edge endpoint is out of range [0,N).
//	ErrSelfLoop       - an edge has equal endpoints.
//	ErrAsymmetricEdge - edge (u,v) appears without its mirror (v,u).
package graphview
