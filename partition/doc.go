// Package partition computes the connected-component (CC) labeling of
// a graphview.Graph's edges induced by removing a set of pebbled
// nodes.
//
// Algorithm:
//  1. Union-find over edges whose both endpoints are non-pebbled,
//     giving every non-pebbled node a node-component id.
//  2. Every edge (u,v) is assigned a CC: if neither endpoint is
//     pebbled, the shared node-component id; if exactly one endpoint
//     is pebbled, the non-pebbled endpoint's node-component id; if
//     both are pebbled, a fresh per-edge id.
//  3. Final CC-ids are reassigned in order of first appearance while
//     walking g.Edges(), so that two calls with the same pebbled set
//     produce identical numbering regardless of internal bookkeeping
//     order (the canonicalization step).
package partition
