package domain

// Graph wraps a state snapshot with an id→index arena so traversal code
// can work on integer indices instead of chasing references. The graph
// is a directed multigraph: several rules between the same pair of
// states with different conditions are legal.
//
// A Graph is immutable for the duration of any algorithm call. Callers
// own the underlying slice and may mutate it between calls, never
// concurrently with one.
type Graph struct {
	states []State
	index  map[string]int
}

// NewGraph builds a Graph over the given states. Duplicate ids keep the
// first occurrence; callers wanting strict checking use the validator.
func NewGraph(states []State) *Graph {
	g := &Graph{
		states: states,
		index:  make(map[string]int, len(states)),
	}
	for i, s := range states {
		if _, exists := g.index[s.ID]; !exists {
			g.index[s.ID] = i
		}
	}
	return g
}

// States returns the underlying snapshot in stored order.
func (g *Graph) States() []State {
	return g.states
}

// Len returns the number of states.
func (g *Graph) Len() int {
	return len(g.states)
}

// FindState returns the state with the given id, or nil if not found.
func (g *Graph) FindState(id string) *State {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	return &g.states[i]
}

// IndexOf returns the arena index for a state id, or -1.
func (g *Graph) IndexOf(id string) int {
	i, ok := g.index[id]
	if !ok {
		return -1
	}
	return i
}

// At returns the state at arena index i.
func (g *Graph) At(i int) *State {
	return &g.states[i]
}

// StateName resolves a state id to its display name, or UnknownStateName
// for dangling references.
func (g *Graph) StateName(id string) string {
	if s := g.FindState(id); s != nil {
		return s.Name
	}
	return UnknownStateName
}

// OutgoingRules returns the rules leaving the given state in stored order.
func (g *Graph) OutgoingRules(id string) []Rule {
	if s := g.FindState(id); s != nil {
		return s.Rules
	}
	return nil
}

// IncomingRefs counts rules across the whole graph that target the given
// state id.
func (g *Graph) IncomingRefs(id string) int {
	count := 0
	for _, s := range g.states {
		for _, r := range s.Rules {
			if r.NextState == id {
				count++
			}
		}
	}
	return count
}

// Degree is the sum of outgoing rule count and incoming reference count.
func (g *Graph) Degree(id string) int {
	s := g.FindState(id)
	if s == nil {
		return 0
	}
	return len(s.Rules) + g.IncomingRefs(s.ID)
}

// DeadEnds returns the ids of all states with zero outgoing rules, in
// stored order.
func (g *Graph) DeadEnds() []string {
	var ids []string
	for _, s := range g.states {
		if s.IsDeadEnd() {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// StateIDs returns all state ids in stored order.
func (g *Graph) StateIDs() []string {
	ids := make([]string, 0, len(g.states))
	for _, s := range g.states {
		ids = append(ids, s.ID)
	}
	return ids
}

// Neighbors returns the arena indices adjacent to state index i treating
// rules as undirected links. Dangling targets are skipped. Each neighbor
// appears once, in first-encountered order.
func (g *Graph) Neighbors(i int) []int {
	seen := make(map[int]bool)
	var out []int

	add := func(j int) {
		if j >= 0 && j != i && !seen[j] {
			seen[j] = true
			out = append(out, j)
		}
	}

	for _, r := range g.states[i].Rules {
		if r.NextState != "" {
			add(g.IndexOf(r.NextState))
		}
	}
	id := g.states[i].ID
	for j, s := range g.states {
		for _, r := range s.Rules {
			if r.NextState == id {
				add(j)
			}
		}
	}
	return out
}

// LinkCount counts rules in either direction between two states.
func (g *Graph) LinkCount(aID, bID string) int {
	count := 0
	if a := g.FindState(aID); a != nil {
		for _, r := range a.Rules {
			if r.NextState == bID {
				count++
			}
		}
	}
	if b := g.FindState(bID); b != nil {
		for _, r := range b.Rules {
			if r.NextState == aID {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the snapshot, detached from the caller's
// slice.
func (g *Graph) Clone() []State {
	out := make([]State, len(g.states))
	for i, s := range g.states {
		cp := s
		cp.Rules = make([]Rule, len(s.Rules))
		copy(cp.Rules, s.Rules)
		for j, r := range s.Rules {
			if r.Priority != nil {
				v := *r.Priority
				cp.Rules[j].Priority = &v
			}
		}
		out[i] = cp
	}
	return out
}
