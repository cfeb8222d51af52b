/*
Package stategraph analyzes state-machine flow graphs: the states, rules and
conditions behind visual flow editors and workflow engines.

It loads a set of states from pluggable sources (a Loam document repository,
a CSV transition table, or an in-memory definition) and runs structural
analyses over the resulting directed graph: exhaustive path discovery with
cycle detection, balanced partitioning along rule boundaries, snapshot-based
structural diffing and consistency validation.

# Concept

A graph is a list of states, each carrying labeled rules that point at other
states. Rules are guarded by free-text conditions that the condition package
decomposes into compound parts. The analyzer never executes a graph; it
answers questions about its shape.

# Key Features

  - Pluggable Loading: Loam repositories, CSV tables or in-memory states through the GraphLoader port.
  - Path Discovery: bounded DFS enumerating simple paths and cycles, with via-state filtering.
  - Partitioning: splits large graphs into balanced groups while reporting the rules that cross boundaries.
  - Structural Diff: matches states across two snapshots by id and name and classifies every change.
  - Validation: duplicate ids, dangling rule targets, empty conditions and unreachable states.

# Usage

Initialize the Analyzer with a repository path, or inject a custom loader.

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/uhaseeb85/stategraph"
		"github.com/uhaseeb85/stategraph/pkg/pathfind"
	)

	func main() {
		analyzer, err := stategraph.New("./my-flow")
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		result, err := analyzer.FindPaths(ctx, pathfind.Options{Start: "draft"})
		if err != nil {
			log.Fatal(err)
		}

		for _, p := range result.Paths() {
			for _, step := range p.Steps {
				fmt.Print(step.StateID, " ")
			}
			fmt.Println()
		}
	}
*/
package stategraph
