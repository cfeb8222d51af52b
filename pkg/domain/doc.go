/*
Package domain contains the core graph model shared by every stategraph
algorithm.

It defines the fundamental entities of a state-machine snapshot: States
(vertices), Rules (condition-guarded directed edges), and the Graph
arena built over them. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - State: a named vertex with an ordered list of outgoing Rules.
  - Rule: a directed transition guarded by a condition string, with an
    opaque priority and an optional operation label.
  - Graph: an index over a State slice providing id lookup, degree and
    adjacency queries for the path-finder, partitioner and differ.

All result structures produced from a Graph are ephemeral values; the
caller owns the snapshot and may mutate it between calls, never
concurrently with one.
*/
package domain
