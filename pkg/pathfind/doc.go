/*
Package pathfind enumerates finite acyclic paths through a state graph.

The search is a depth-first traversal over arena indices with an
explicit frame stack. Visitation is tracked per current path, not
globally, so diamond-shaped graphs are fully explored while any edge
back onto the current path is recorded as a cycle and pruned instead of
recursed into.

Results are computed once per call and paged by slicing; the search
itself is bounded by MaxPaths and MaxDepth so pathological graphs
terminate in bounded time.
*/
package pathfind
