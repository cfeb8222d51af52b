package partition

import (
	"github.com/uhaseeb85/stategraph/pkg/domain"
)

// Boundary edge type tags.
const (
	EdgeExternal = "external"
	EdgeDangling = "dangling"
)

// Boundary returns the edges leaving the given state-id set, classified
// against the complete graph: a rule is a boundary edge when its source
// is a member and its target is a non-member or does not resolve at
// all.
func Boundary(g *domain.Graph, members map[string]bool) []BoundaryEdge {
	var edges []BoundaryEdge
	for _, s := range g.States() {
		if !members[s.ID] {
			continue
		}
		for _, r := range s.Rules {
			if r.NextState == "" || g.FindState(r.NextState) == nil {
				edges = append(edges, BoundaryEdge{
					FromState: s.ID,
					ToState:   r.NextState,
					Condition: r.Condition,
					Type:      EdgeDangling,
				})
				continue
			}
			if !members[r.NextState] {
				edges = append(edges, BoundaryEdge{
					FromState: s.ID,
					ToState:   r.NextState,
					Condition: r.Condition,
					Type:      EdgeExternal,
				})
			}
		}
	}
	return edges
}

// EntryPoints returns the ids of partition members that are referenced
// by rules of non-member states, in stored graph order.
func EntryPoints(g *domain.Graph, p Partition) []string {
	targets := make(map[string]bool)
	for _, s := range g.States() {
		if p.StateIDs[s.ID] {
			continue
		}
		for _, r := range s.Rules {
			if p.StateIDs[r.NextState] {
				targets[r.NextState] = true
			}
		}
	}

	var ids []string
	for _, s := range g.States() {
		if targets[s.ID] {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// ExitPoints returns the ids of partition members whose own rules point
// outside the partition (or dangle), in stored graph order.
func ExitPoints(g *domain.Graph, p Partition) []string {
	var ids []string
	for _, s := range g.States() {
		if !p.StateIDs[s.ID] {
			continue
		}
		for _, r := range s.Rules {
			if !p.StateIDs[r.NextState] {
				ids = append(ids, s.ID)
				break
			}
		}
	}
	return ids
}

// ValidatePartitions reports whether the partition set is disjoint: no
// state id may appear in more than one partition. Split guarantees
// this, but the check is exposed separately so heuristic changes get
// caught.
func ValidatePartitions(partitions []Partition) bool {
	seen := make(map[string]bool)
	for _, p := range partitions {
		for id := range p.StateIDs {
			if seen[id] {
				return false
			}
			seen[id] = true
		}
	}
	return true
}
