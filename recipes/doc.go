// Package recipes implements the k-FWL, DRFWL, and Local-FWL graph
// counting recipes as client patterns over the core engine API. Every
// function here is ordinary client code built from pebblegame.Engine
// and search.Driver — nothing in this package touches engine internals
// directly. The Local-FWL recipe's per-mode dispatch is an explicit
// map[string]recipeStep table rather than name-based reflection.
package recipes
