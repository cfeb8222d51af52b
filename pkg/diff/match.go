package diff

import (
	"regexp"
	"strings"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

var nameWhitespace = regexp.MustCompile(`\s+`)

// normalizeName lowercases and collapses whitespace for the weakest
// state-matching tier.
func normalizeName(name string) string {
	return nameWhitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), " ")
}

// statesMatch tiers, strongest first. The ordering is load-bearing: an
// id match must never lose to a name heuristic, and an exact-case name
// match must never lose to a normalized one.
func matchByID(a, b domain.State) bool {
	return a.ID == b.ID
}

func matchByExactName(a, b domain.State) bool {
	return a.Name == b.Name
}

func matchByNormalizedName(a, b domain.State) bool {
	return normalizeName(a.Name) == normalizeName(b.Name)
}

// stableID reports whether a rule id looks like a stable-origin id.
// Regenerated ids from re-imports are not comparable, so raw equality
// only counts when both sides carry the stable prefix. This is one
// tie-breaker among several, not a load-bearing key.
func stableID(id string) bool {
	return strings.HasPrefix(id, domain.StableIDPrefix)
}

// rulesMatch decides whether two rules of already-matched states are
// the same logical rule.
func rulesMatch(base, compare domain.Rule, baseGraph, compareGraph *domain.Graph) bool {
	if stableID(base.ID) && stableID(compare.ID) && base.ID == compare.ID {
		return true
	}

	// Condition text equality is required: rules with different
	// conditions never match regardless of target.
	if !strings.EqualFold(strings.TrimSpace(base.Condition), strings.TrimSpace(compare.Condition)) {
		return false
	}

	baseTarget := baseGraph.FindState(base.NextState)
	compareTarget := compareGraph.FindState(compare.NextState)

	switch {
	case baseTarget != nil && compareTarget != nil:
		return strings.EqualFold(baseTarget.Name, compareTarget.Name)
	case baseTarget == nil && compareTarget == nil:
		return true
	default:
		// A broken reference on one side only is itself a difference.
		return false
	}
}
