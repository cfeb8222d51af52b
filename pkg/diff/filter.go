package diff

import "strings"

// FilterSpec narrows a report. Zero-valued fields are inactive; active
// fields AND together.
type FilterSpec struct {
	Status Status `json:"status,omitempty" mapstructure:"status"`
	Kind   Kind   `json:"kind,omitempty" mapstructure:"kind"`
	Search string `json:"search,omitempty" mapstructure:"search"`
}

// Filter returns a new report containing only the entries that pass
// the spec. The summary is recomputed over the retained entries.
func (r *Report) Filter(spec FilterSpec) *Report {
	out := &Report{}
	search := strings.ToLower(strings.TrimSpace(spec.Search))

	if spec.Kind == "" || spec.Kind == KindState {
		for _, e := range r.States {
			if spec.Status != "" && e.Status != spec.Status {
				continue
			}
			if search != "" && !strings.Contains(strings.ToLower(e.Name), search) {
				continue
			}
			out.States = append(out.States, e)
			switch e.Status {
			case StatusAdded:
				out.Summary.AddedStates++
			case StatusRemoved:
				out.Summary.RemovedStates++
			case StatusModified:
				out.Summary.ModifiedStates++
			}
		}
	}

	if spec.Kind == "" || spec.Kind == KindRule {
		for _, e := range r.Rules {
			if spec.Status != "" && e.Status != spec.Status {
				continue
			}
			if search != "" && !ruleMatchesSearch(e, search) {
				continue
			}
			out.Rules = append(out.Rules, e)
			switch e.Status {
			case StatusAdded:
				out.Summary.AddedRules++
			case StatusRemoved:
				out.Summary.RemovedRules++
			case StatusModified:
				out.Summary.ModifiedRules++
			}
		}
	}

	return out
}

// ruleMatchesSearch checks the case-insensitive substring across state
// name, rule condition and target name.
func ruleMatchesSearch(e RuleChange, search string) bool {
	return strings.Contains(strings.ToLower(e.StateName), search) ||
		strings.Contains(strings.ToLower(e.Condition), search) ||
		strings.Contains(strings.ToLower(e.TargetName), search)
}
