package diff

// Status classifies an entity across two snapshots.
type Status string

const (
	StatusAdded     Status = "added"
	StatusRemoved   Status = "removed"
	StatusModified  Status = "modified"
	StatusUnchanged Status = "unchanged"
)

// Kind distinguishes entity types in a report.
type Kind string

const (
	KindState Kind = "state"
	KindRule  Kind = "rule"
)

// StateChange is the per-state diff entry.
type StateChange struct {
	Status  Status   `json:"status"`
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Changes []string `json:"changes,omitempty"`
}

// RuleChange is the per-rule diff entry. TargetName is resolved against
// the rule's own snapshot, "unknown" when the reference dangles.
type RuleChange struct {
	Status     Status   `json:"status"`
	StateID    string   `json:"state_id"`
	StateName  string   `json:"state_name"`
	RuleID     string   `json:"rule_id"`
	Condition  string   `json:"condition"`
	TargetName string   `json:"target_name"`
	Changes    []string `json:"changes,omitempty"`
}

// Summary aggregates change counts per status and entity type.
type Summary struct {
	AddedStates    int `json:"added_states"`
	RemovedStates  int `json:"removed_states"`
	ModifiedStates int `json:"modified_states"`
	AddedRules     int `json:"added_rules"`
	RemovedRules   int `json:"removed_rules"`
	ModifiedRules  int `json:"modified_rules"`
}

// HasChanges reports whether any counter is nonzero.
func (s Summary) HasChanges() bool {
	return s.AddedStates+s.RemovedStates+s.ModifiedStates+
		s.AddedRules+s.RemovedRules+s.ModifiedRules > 0
}

// Report is the complete comparison result.
type Report struct {
	States  []StateChange `json:"states"`
	Rules   []RuleChange  `json:"rules"`
	Summary Summary       `json:"summary"`
}
