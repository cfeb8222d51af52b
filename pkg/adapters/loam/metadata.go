package loam

// StateMetadata represents the frontmatter of a state document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type StateMetadata struct {
	ID    string       `json:"id" mapstructure:"id"`
	Name  string       `json:"name" mapstructure:"name"`
	Rules []LoaderRule `json:"rules" mapstructure:"rules"`
}

// LoaderRule is the on-disk shape of a transition rule. Both "to" and
// "next_state" are accepted for the target; "to" wins when both are set.
type LoaderRule struct {
	ID        string `json:"id" mapstructure:"id"`
	Condition string `json:"condition" mapstructure:"condition"`
	To        string `json:"to" mapstructure:"to"`
	NextState string `json:"next_state" mapstructure:"next_state"`
	Priority  *int   `json:"priority,omitempty" mapstructure:"priority"`
	Operation string `json:"operation,omitempty" mapstructure:"operation"`
}
