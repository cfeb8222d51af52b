package pathfind

// Step pairs a state with the rule taken out of it. The final step of a
// path is the terminus and carries no rule.
type Step struct {
	StateID   string `json:"state_id"`
	StateName string `json:"state_name"`
	RuleID    string `json:"rule_id,omitempty"`
	Condition string `json:"condition,omitempty"`
}

// Path is an ordered sequence of steps from the start state to a
// terminus.
type Path struct {
	Steps []Step `json:"steps"`
}

// Contains reports whether the path's node sequence includes the given
// state id.
func (p Path) Contains(stateID string) bool {
	for _, s := range p.Steps {
		if s.StateID == stateID {
			return true
		}
	}
	return false
}

// Cycle is a pruned branch that revisited a state already on the
// current path. Its Path ends with the repeated state.
type Cycle struct {
	Path            Path   `json:"path"`
	RepeatedStateID string `json:"repeated_state_id"`
}

// Result holds the complete outcome of one search. Paths appear in DFS
// discovery order (pre-order over rules in their stored order); callers
// page through them by slicing, the search is never re-run per page.
type Result struct {
	paths  []Path
	cycles []Cycle

	// Truncated is set when MaxPaths or MaxDepth stopped the search
	// before exhausting the graph.
	Truncated bool
}

// Paths returns all discovered paths.
func (r *Result) Paths() []Path {
	return r.paths
}

// Cycles returns all cycles detected during the search.
func (r *Result) Cycles() []Cycle {
	return r.cycles
}

// Len is the number of discovered paths.
func (r *Result) Len() int {
	return len(r.paths)
}

// Page slices the cached path list. Offsets beyond the end yield an
// empty page; a non-positive limit means "the rest".
func (r *Result) Page(offset, limit int) []Path {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.paths) {
		return []Path{}
	}
	end := len(r.paths)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return r.paths[offset:end]
}
