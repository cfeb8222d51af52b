// Package validator runs structural consistency checks over a loaded
// graph before the analyses that assume a well-formed one.
package validator

import (
	"fmt"
	"strings"

	"github.com/uhaseeb85/stategraph/pkg/condition"
	"github.com/uhaseeb85/stategraph/pkg/domain"
)

// Issue is one finding. Severity is "error" for problems that break
// analysis semantics and "warning" for suspicious but workable shapes.
type Issue struct {
	Severity string `json:"severity"`
	StateID  string `json:"state_id,omitempty"`
	RuleID   string `json:"rule_id,omitempty"`
	Message  string `json:"message"`
}

// Report collects all findings for one graph.
type Report struct {
	Issues []Issue `json:"issues"`
}

// HasErrors reports whether any issue is severity "error".
func (r *Report) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == "error" {
			return true
		}
	}
	return false
}

// Err converts the report into a single error, nil when clean.
func (r *Report) Err() error {
	if !r.HasErrors() {
		return nil
	}
	var msgs []string
	for _, i := range r.Issues {
		if i.Severity == "error" {
			msgs = append(msgs, i.Message)
		}
	}
	return fmt.Errorf("found %d errors:\n- %s", len(msgs), strings.Join(msgs, "\n- "))
}

func (r *Report) errorf(stateID, ruleID, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Severity: "error",
		StateID:  stateID,
		RuleID:   ruleID,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Report) warnf(stateID, ruleID, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Severity: "warning",
		StateID:  stateID,
		RuleID:   ruleID,
		Message:  fmt.Sprintf(format, args...),
	})
}

// ValidateStates checks the raw state list as it came from a loader.
// Duplicate ids are an error here even though the graph index would
// silently keep the first occurrence.
func ValidateStates(states []domain.State) *Report {
	report := &Report{}

	seen := make(map[string]bool)
	for _, s := range states {
		if s.ID == "" {
			report.errorf("", "", "state %q has no id", s.Name)
			continue
		}
		if seen[s.ID] {
			report.errorf(s.ID, "", "duplicate state id '%s'", s.ID)
		}
		seen[s.ID] = true
	}

	g := domain.NewGraph(states)

	for _, s := range states {
		for _, rule := range s.Rules {
			if rule.NextState != "" && g.FindState(rule.NextState) == nil {
				report.errorf(s.ID, rule.ID, "state '%s' rule '%s' targets missing state '%s'", s.ID, rule.ID, rule.NextState)
			}
			if err := condition.Validate(rule.Condition); err != nil {
				report.warnf(s.ID, rule.ID, "state '%s' rule '%s': %v", s.ID, rule.ID, err)
			}
		}
	}

	checkReachability(g, report)

	return report
}

// checkReachability warns about states that no rule can reach. States
// with no incoming references at all count as entry points, so the
// warning only fires when there is at least one entry point and the
// state is not connected to any of them.
func checkReachability(g *domain.Graph, report *Report) {
	if g.Len() == 0 {
		return
	}

	hasIncoming := make(map[string]bool)
	for _, s := range g.States() {
		for _, rule := range s.Rules {
			if rule.NextState != "" && rule.NextState != s.ID {
				hasIncoming[rule.NextState] = true
			}
		}
	}

	var roots []string
	for _, s := range g.States() {
		if !hasIncoming[s.ID] {
			roots = append(roots, s.ID)
		}
	}
	if len(roots) == 0 {
		// Every state sits on a cycle; nothing is distinguishable as
		// an entry point, so reachability is not meaningful.
		return
	}

	visited := make(map[string]bool)
	queue := append([]string{}, roots...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true

		state := g.FindState(id)
		if state == nil {
			continue
		}
		for _, rule := range state.Rules {
			if rule.NextState != "" && !visited[rule.NextState] {
				queue = append(queue, rule.NextState)
			}
		}
	}

	for _, s := range g.States() {
		if !visited[s.ID] {
			report.warnf(s.ID, "", "state '%s' (%s) is unreachable from any entry point", s.ID, s.Name)
		}
	}
}
