package partition

import (
	"fmt"
	"sort"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

// Partition is a non-overlapping subset of states with its boundary to
// the rest of the graph.
type Partition struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	StateIDs      map[string]bool `json:"state_ids"`
	States        []domain.State  `json:"states"`
	BoundaryEdges []BoundaryEdge  `json:"boundary_edges"`
}

// BoundaryEdge is a rule whose source lies inside a partition and whose
// target lies outside it (or is unresolved).
type BoundaryEdge struct {
	FromState string `json:"from_state"`
	ToState   string `json:"to_state"`
	Condition string `json:"condition"`
	Type      string `json:"type"` // "external" or "dangling"
}

// Split partitions the graph into at most targetCount subgraphs.
// Natural connected components take priority: a graph that is already
// disconnected returns its components as partitions regardless of
// targetCount. A connected graph is split by seeded growth from the
// highest-degree states. The result never contains a state id twice and
// never contains empty partitions.
func Split(g *domain.Graph, targetCount int) ([]Partition, error) {
	if targetCount < 1 {
		return nil, &domain.ValidationError{Field: "targetCount", Reason: fmt.Sprintf("must be >= 1, got %d", targetCount)}
	}
	if g.Len() == 0 {
		return []Partition{}, nil
	}

	components := ConnectedComponents(g)
	if len(components) > 1 {
		partitions := make([]Partition, 0, len(components))
		for i, ids := range components {
			partitions = append(partitions, build(g, fmt.Sprintf("component-%d", i+1), fmt.Sprintf("Component %d", i+1), ids))
		}
		return partitions, nil
	}

	buckets := seedAndGrow(g, targetCount)

	partitions := make([]Partition, 0, len(buckets))
	for _, ids := range buckets {
		if len(ids) == 0 {
			continue
		}
		n := len(partitions) + 1
		partitions = append(partitions, build(g, fmt.Sprintf("partition-%d", n), fmt.Sprintf("Partition %d", n), ids))
	}
	return partitions, nil
}

// seedAndGrow implements the heuristic for a single connected
// component: the top-degree states each seed a bucket, every other
// state joins the bucket it shares the most edges with. Ties resolve to
// the lowest bucket index so the result is deterministic.
func seedAndGrow(g *domain.Graph, targetCount int) [][]string {
	states := g.States()

	byDegree := make([]string, 0, len(states))
	for _, s := range states {
		byDegree = append(byDegree, s.ID)
	}
	sort.SliceStable(byDegree, func(a, b int) bool {
		return g.Degree(byDegree[a]) > g.Degree(byDegree[b])
	})

	seedCount := targetCount
	if seedCount > len(states) {
		seedCount = len(states)
	}

	buckets := make([][]string, seedCount)
	assigned := make(map[string]int, len(states))
	for i := 0; i < seedCount; i++ {
		buckets[i] = []string{byDegree[i]}
		assigned[byDegree[i]] = i
	}

	// Assign the rest in stored order so results are reproducible for
	// a given snapshot.
	for _, s := range states {
		if _, done := assigned[s.ID]; done {
			continue
		}

		best := 0
		bestScore := -1
		for i, bucket := range buckets {
			score := 0
			for _, member := range bucket {
				score += g.LinkCount(s.ID, member)
			}
			if score > bestScore {
				best = i
				bestScore = score
			}
		}

		buckets[best] = append(buckets[best], s.ID)
		assigned[s.ID] = best
	}

	return buckets
}

// build assembles a Partition, computing its boundary against the full
// graph.
func build(g *domain.Graph, id, name string, stateIDs []string) Partition {
	p := Partition{
		ID:       id,
		Name:     name,
		StateIDs: make(map[string]bool, len(stateIDs)),
	}
	for _, sid := range stateIDs {
		p.StateIDs[sid] = true
	}
	for _, sid := range stateIDs {
		if s := g.FindState(sid); s != nil {
			p.States = append(p.States, *s)
		}
	}
	p.BoundaryEdges = Boundary(g, p.StateIDs)
	return p
}
