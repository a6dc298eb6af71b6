// Package search drives level-by-level exploration of a
// pebblegame.Engine's state space and performs the Spoiler-wins
// back-induction fixed point.
package search
