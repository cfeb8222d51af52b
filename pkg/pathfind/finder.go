package pathfind

import (
	"github.com/uhaseeb85/stategraph/pkg/domain"
)

// Mode selects the termination criterion of a search.
type Mode string

const (
	// ModeToEnd enumerates paths from the start to any dead-end state.
	ModeToEnd Mode = "to_end"
	// ModeToTarget enumerates paths from the start to a named state.
	ModeToTarget Mode = "to_target"
)

// Default traversal bounds. A near-complete graph has factorially many
// simple paths even without cycles, so an unbounded enumeration is not
// an option.
const (
	DefaultMaxPaths = 1000
	DefaultMaxDepth = 100
)

// Options parameterizes a search.
type Options struct {
	Mode   Mode
	Start  string
	Target string // required for ModeToTarget
	Via    string // optional: only keep paths passing through this state

	// MaxPaths caps recorded paths plus cycles; MaxDepth caps the DFS
	// stack. Zero means the package default.
	MaxPaths int
	MaxDepth int
}

// frame is one level of the explicit DFS stack: a state index and a
// cursor over its rules.
type frame struct {
	idx  int
	next int
}

// Find runs the search and returns the full result set. It fails fast
// with *domain.NotFoundError when the start, target or via id does not
// resolve; an empty result is not an error.
func Find(g *domain.Graph, opts Options) (*Result, error) {
	maxPaths := opts.MaxPaths
	if maxPaths <= 0 {
		maxPaths = DefaultMaxPaths
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	startIdx := g.IndexOf(opts.Start)
	if startIdx < 0 {
		return nil, &domain.NotFoundError{Kind: "start state", ID: opts.Start}
	}

	targetIdx := -1
	if opts.Mode == ModeToTarget {
		targetIdx = g.IndexOf(opts.Target)
		if targetIdx < 0 {
			return nil, &domain.NotFoundError{Kind: "target state", ID: opts.Target}
		}
	}

	if opts.Via != "" && g.IndexOf(opts.Via) < 0 {
		return nil, &domain.NotFoundError{Kind: "intermediate state", ID: opts.Via}
	}

	res := &Result{}

	onPath := make([]bool, g.Len())
	stack := []frame{{idx: startIdx}}
	onPath[startIdx] = true
	// steps[k] is the (state, rule) pair taken from stack[k].
	var steps []Step

	record := func(terminus int) {
		if len(steps) == 0 {
			// A zero-length path (start is itself the terminus)
			// does not count as a path.
			return
		}
		path := makePath(g, steps, terminus)
		if opts.Via != "" && !path.Contains(opts.Via) {
			return
		}
		res.paths = append(res.paths, path)
	}

	for len(stack) > 0 {
		if len(res.paths)+len(res.cycles) >= maxPaths {
			res.Truncated = true
			break
		}

		top := &stack[len(stack)-1]
		state := g.At(top.idx)

		if top.next == 0 {
			// First visit of this frame: check termination.
			terminal := false
			switch opts.Mode {
			case ModeToTarget:
				terminal = top.idx == targetIdx
			default:
				terminal = state.IsDeadEnd()
			}
			if terminal {
				record(top.idx)
				popFrame(&stack, &steps, onPath)
				continue
			}
		}

		if top.next >= len(state.Rules) {
			popFrame(&stack, &steps, onPath)
			continue
		}

		rule := state.Rules[top.next]
		top.next++

		if rule.NextState == "" {
			continue // dangling reference, tolerated
		}
		childIdx := g.IndexOf(rule.NextState)
		if childIdx < 0 {
			continue
		}

		if onPath[childIdx] {
			cycle := makeCycle(g, steps, top.idx, rule, rule.NextState)
			if opts.Via == "" || cycle.Path.Contains(opts.Via) {
				res.cycles = append(res.cycles, cycle)
			}
			continue
		}

		if len(stack) >= maxDepth {
			res.Truncated = true
			continue
		}

		steps = append(steps, Step{
			StateID:   state.ID,
			StateName: state.Name,
			RuleID:    rule.ID,
			Condition: rule.Condition,
		})
		stack = append(stack, frame{idx: childIdx})
		onPath[childIdx] = true
	}

	return res, nil
}

func popFrame(stack *[]frame, steps *[]Step, onPath []bool) {
	top := (*stack)[len(*stack)-1]
	onPath[top.idx] = false
	*stack = (*stack)[:len(*stack)-1]
	if len(*steps) > 0 && len(*steps) == len(*stack) {
		*steps = (*steps)[:len(*steps)-1]
	}
}

func makePath(g *domain.Graph, steps []Step, terminus int) Path {
	out := make([]Step, len(steps), len(steps)+1)
	copy(out, steps)
	t := g.At(terminus)
	out = append(out, Step{StateID: t.ID, StateName: t.Name})
	return Path{Steps: out}
}

func makeCycle(g *domain.Graph, steps []Step, fromIdx int, rule domain.Rule, repeated string) Cycle {
	s := g.At(fromIdx)
	out := make([]Step, len(steps), len(steps)+2)
	copy(out, steps)
	out = append(out, Step{StateID: s.ID, StateName: s.Name, RuleID: rule.ID, Condition: rule.Condition})
	out = append(out, Step{StateID: repeated, StateName: g.StateName(repeated)})
	return Cycle{Path: Path{Steps: out}, RepeatedStateID: repeated}
}
