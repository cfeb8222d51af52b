/*
Package partition splits a state graph into non-overlapping subgraphs.

Natural decomposition comes first: if the graph already falls apart into
several connected components (edges treated as undirected), those
components are the partitions and the requested count is ignored.
Otherwise a seeded heuristic grows the requested number of partitions
from the highest-degree states, assigning each remaining state to the
partition it is most connected to.

Boundary edges, entry points and exit points are always computed against
the complete state set, so their classification does not depend on how
the other partitions were formed.
*/
package partition
