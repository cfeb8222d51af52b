package domain

// DefaultRulePriority is assumed when a rule carries no explicit priority.
// Consumers (diffing, export) treat a nil Priority as this value.
const DefaultRulePriority = 50

// UnknownStateName is rendered wherever a rule's target cannot be resolved.
// Dangling references are tolerated data, never errors.
const UnknownStateName = "unknown"

// StableIDPrefix marks rule ids that originate from a stable import source.
// Regenerated ids (fresh imports) are not comparable across snapshots, so
// matching by raw id equality is only meaningful when both sides carry this
// prefix.
const StableIDPrefix = "id_"

// State is a named vertex in the directed graph with zero or more
// outgoing rules. ID is the only stable identity; Name is display text
// and is not guaranteed unique.
type State struct {
	ID    string `json:"id" yaml:"id" mapstructure:"id"`
	Name  string `json:"name" yaml:"name" mapstructure:"name"`
	Rules []Rule `json:"rules" yaml:"rules" mapstructure:"rules"`
}

// Rule is a labeled directed transition guarded by a condition.
// NextState holds the id of the target State; an empty value models a
// dangling or intentionally open reference. Priority is an opaque
// ordering key for consumers; nil means "unset".
type Rule struct {
	ID        string `json:"id" yaml:"id" mapstructure:"id"`
	Condition string `json:"condition" yaml:"condition" mapstructure:"condition"`
	NextState string `json:"next_state,omitempty" yaml:"next_state,omitempty" mapstructure:"next_state"`
	Priority  *int   `json:"priority,omitempty" yaml:"priority,omitempty" mapstructure:"priority"`
	Operation string `json:"operation,omitempty" yaml:"operation,omitempty" mapstructure:"operation"`
}

// EffectivePriority resolves the rule's ordering key, substituting the
// default when none is set.
func (r Rule) EffectivePriority() int {
	if r.Priority == nil {
		return DefaultRulePriority
	}
	return *r.Priority
}

// IsDeadEnd reports whether the state has no outgoing rules.
func (s State) IsDeadEnd() bool {
	return len(s.Rules) == 0
}

// Priority returns a pointer to v, for building Rule literals.
func Priority(v int) *int {
	return &v
}
