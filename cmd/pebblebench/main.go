// Command pebblebench is a thin diagnostic CLI over the recipes
// package: it builds a graph from a flag-given edge list, runs one
// named recipe, and prints whether Spoiler wins plus how many distinct
// states the underlying engine(s) interned while deciding it.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wlgame/pebblegame/recipes"
)

func parseEdges(spec string) ([][2]int, error) {
	var edges [][2]int
	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "-", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed edge %q: want u-v", pair)
		}
		u, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("malformed edge %q: %w", pair, err)
		}
		v, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("malformed edge %q: %w", pair, err)
		}
		edges = append(edges, [2]int{u, v}, [2]int{v, u})
	}
	return edges, nil
}

func drfwlTable(mode string) ([][2]int, error) {
	switch mode {
	case "1":
		return recipes.DRFWL1, nil
	case "2":
		return recipes.DRFWL2, nil
	case "3":
		return recipes.DRFWL3, nil
	default:
		return nil, fmt.Errorf("unknown drfwl mode %q: want 1, 2, or 3", mode)
	}
}

func localFWLMode(name string) (recipes.LocalFWLMode, error) {
	switch name {
	case "SWL_VS":
		return recipes.SWL_VS, nil
	case "SWL_SV":
		return recipes.SWL_SV, nil
	case "PSWL_VS":
		return recipes.PSWL_VS, nil
	case "PSWL_SV":
		return recipes.PSWL_SV, nil
	case "GSWL":
		return recipes.GSWL, nil
	case "SSWL":
		return recipes.SSWL, nil
	case "LFWL2":
		return recipes.LFWL2, nil
	case "SLFWL2":
		return recipes.SLFWL2, nil
	case "FWL2":
		return recipes.FWL2, nil
	default:
		return recipes.LocalFWLMode{}, fmt.Errorf("unknown local-fwl mode %q", name)
	}
}

func run() error {
	edgeSpec := flag.String("edges", "", "comma-separated u-v edge list, e.g. \"0-1,1-2,2-0\"")
	recipeName := flag.String("recipe", "kfwl", "recipe to run: kfwl, drfwl, or localfwl")
	k := flag.Int("k", 2, "k for kfwl/drfwl recipes")
	mode := flag.String("mode", "2", "drfwl table (1, 2, 3) or local-fwl mode name")
	nodes := flag.Int("nodes", 0, "override node count (0 = infer from edges)")
	flag.Parse()

	if *edgeSpec == "" {
		return fmt.Errorf("-edges is required")
	}
	edges, err := parseEdges(*edgeSpec)
	if err != nil {
		return err
	}

	var numNodes []int
	if *nodes > 0 {
		numNodes = []int{*nodes}
	}

	var result bool
	var states int
	switch *recipeName {
	case "kfwl":
		result, states, err = recipes.CanKFWLCount(edges, *k, numNodes...)
	case "drfwl":
		table, tErr := drfwlTable(*mode)
		if tErr != nil {
			return tErr
		}
		result, states, err = recipes.CanDRFWLCount(edges, table, *k, numNodes...)
	case "localfwl":
		m, mErr := localFWLMode(*mode)
		if mErr != nil {
			return mErr
		}
		result, states, err = recipes.CanLocalFWLCount(edges, m, numNodes...)
	default:
		return fmt.Errorf("unknown recipe %q: want kfwl, drfwl, or localfwl", *recipeName)
	}
	if err != nil {
		return err
	}

	fmt.Printf("spoiler_wins=%t states=%d\n", result, states)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "pebblebench:", err)
		os.Exit(1)
	}
}
