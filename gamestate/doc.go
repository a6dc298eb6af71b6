// Package gamestate implements the deduplicating state table: every
// distinct (Pebbles, CC, Tag) triple is assigned a stable,
// monotonically increasing StateID on first sight.
package gamestate
