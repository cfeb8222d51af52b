package diff

import (
	"fmt"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

// Compare diffs two graph snapshots. State ids are not assumed stable
// across snapshots; see the package documentation for the matching
// rules. Comparing a snapshot against itself yields a report with
// HasChanges() == false and only unchanged entries.
func Compare(baseStates, compareStates []domain.State) *Report {
	base := domain.NewGraph(baseStates)
	compare := domain.NewGraph(compareStates)

	report := &Report{}

	pairs, unmatchedBase, unmatchedCompare := matchStates(baseStates, compareStates)

	for _, p := range pairs {
		report.addMatchedState(base, compare, p.base, p.compare)
	}
	for _, s := range unmatchedBase {
		report.addRemovedState(base, s)
	}
	for _, s := range unmatchedCompare {
		report.addAddedState(compare, s)
	}

	return report
}

type statePair struct {
	base    domain.State
	compare domain.State
}

// matchStates pairs states across snapshots in strict priority order:
// all id matches first, then exact names, then normalized names. Each
// compare-side state is consumed at most once.
func matchStates(baseStates, compareStates []domain.State) (pairs []statePair, unmatchedBase, unmatchedCompare []domain.State) {
	taken := make([]bool, len(compareStates))
	pairedBase := make([]bool, len(baseStates))

	tiers := []func(a, b domain.State) bool{
		matchByID,
		matchByExactName,
		matchByNormalizedName,
	}

	for _, match := range tiers {
		for i, b := range baseStates {
			if pairedBase[i] {
				continue
			}
			for j, c := range compareStates {
				if taken[j] {
					continue
				}
				if match(b, c) {
					pairs = append(pairs, statePair{base: b, compare: c})
					pairedBase[i] = true
					taken[j] = true
					break
				}
			}
		}
	}

	for i, b := range baseStates {
		if !pairedBase[i] {
			unmatchedBase = append(unmatchedBase, b)
		}
	}
	for j, c := range compareStates {
		if !taken[j] {
			unmatchedCompare = append(unmatchedCompare, c)
		}
	}
	return pairs, unmatchedBase, unmatchedCompare
}

func (r *Report) addMatchedState(base, compare *domain.Graph, b, c domain.State) {
	var stateChanges []string

	if b.Name != c.Name {
		stateChanges = append(stateChanges, fmt.Sprintf("Name changed: %q → %q", b.Name, c.Name))
	}
	if len(b.Rules) != len(c.Rules) {
		stateChanges = append(stateChanges, fmt.Sprintf("Rule count changed: %d → %d", len(b.Rules), len(c.Rules)))
	}

	matchedCompare := make([]bool, len(c.Rules))
	modified := 0
	removed := 0

	for _, br := range b.Rules {
		var pairIdx = -1
		for j, cr := range c.Rules {
			if matchedCompare[j] {
				continue
			}
			if rulesMatch(br, cr, base, compare) {
				pairIdx = j
				break
			}
		}

		if pairIdx < 0 {
			removed++
			r.Rules = append(r.Rules, RuleChange{
				Status:     StatusRemoved,
				StateID:    b.ID,
				StateName:  b.Name,
				RuleID:     br.ID,
				Condition:  br.Condition,
				TargetName: base.StateName(br.NextState),
			})
			r.Summary.RemovedRules++
			continue
		}

		matchedCompare[pairIdx] = true
		cr := c.Rules[pairIdx]
		changes := ruleChanges(base, compare, br, cr)

		entry := RuleChange{
			StateID:    b.ID,
			StateName:  b.Name,
			RuleID:     br.ID,
			Condition:  br.Condition,
			TargetName: base.StateName(br.NextState),
			Changes:    changes,
		}
		if len(changes) > 0 {
			entry.Status = StatusModified
			modified++
			r.Summary.ModifiedRules++
		} else {
			entry.Status = StatusUnchanged
		}
		r.Rules = append(r.Rules, entry)
	}

	added := 0
	for j, cr := range c.Rules {
		if matchedCompare[j] {
			continue
		}
		added++
		r.Rules = append(r.Rules, RuleChange{
			Status:     StatusAdded,
			StateID:    c.ID,
			StateName:  c.Name,
			RuleID:     cr.ID,
			Condition:  cr.Condition,
			TargetName: compare.StateName(cr.NextState),
		})
		r.Summary.AddedRules++
	}

	if modified > 0 {
		stateChanges = append(stateChanges, fmt.Sprintf("%d rule(s) modified", modified))
	}
	if removed > 0 {
		stateChanges = append(stateChanges, fmt.Sprintf("%d rule(s) removed", removed))
	}
	if added > 0 {
		stateChanges = append(stateChanges, fmt.Sprintf("%d rule(s) added", added))
	}

	entry := StateChange{ID: b.ID, Name: b.Name, Changes: stateChanges}
	if len(stateChanges) > 0 {
		entry.Status = StatusModified
		r.Summary.ModifiedStates++
	} else {
		entry.Status = StatusUnchanged
	}
	r.States = append(r.States, entry)
}

// ruleChanges describes the differences between two matched rules.
func ruleChanges(base, compare *domain.Graph, br, cr domain.Rule) []string {
	var changes []string

	baseTarget := base.StateName(br.NextState)
	compareTarget := compare.StateName(cr.NextState)
	if baseTarget != compareTarget {
		changes = append(changes, fmt.Sprintf("Target changed: %q → %q", baseTarget, compareTarget))
	}

	if br.EffectivePriority() != cr.EffectivePriority() {
		changes = append(changes, fmt.Sprintf("Priority changed: %d → %d", br.EffectivePriority(), cr.EffectivePriority()))
	}

	if br.Operation != cr.Operation {
		changes = append(changes, fmt.Sprintf("Operation changed: %q → %q", br.Operation, cr.Operation))
	}

	return changes
}

func (r *Report) addRemovedState(base *domain.Graph, s domain.State) {
	r.States = append(r.States, StateChange{
		Status: StatusRemoved,
		ID:     s.ID,
		Name:   s.Name,
	})
	r.Summary.RemovedStates++

	for _, rule := range s.Rules {
		r.Rules = append(r.Rules, RuleChange{
			Status:     StatusRemoved,
			StateID:    s.ID,
			StateName:  s.Name,
			RuleID:     rule.ID,
			Condition:  rule.Condition,
			TargetName: base.StateName(rule.NextState),
		})
		r.Summary.RemovedRules++
	}
}

func (r *Report) addAddedState(compare *domain.Graph, s domain.State) {
	r.States = append(r.States, StateChange{
		Status: StatusAdded,
		ID:     s.ID,
		Name:   s.Name,
	})
	r.Summary.AddedStates++

	for _, rule := range s.Rules {
		r.Rules = append(r.Rules, RuleChange{
			Status:     StatusAdded,
			StateID:    s.ID,
			StateName:  s.Name,
			RuleID:     rule.ID,
			Condition:  rule.Condition,
			TargetName: compare.StateName(rule.NextState),
		})
		r.Summary.AddedRules++
	}
}
