// Package homomorphism provides the node-contraction and small-graph
// isomorphism primitives the recipes package folds over: contracting
// node pairs down toward a clique and deduplicating the results up to
// isomorphism via a direct degree-pruned permutation search, suitable
// at the small graph sizes this system works with.
package homomorphism
