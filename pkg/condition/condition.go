package condition

import (
	"regexp"
	"strings"
)

// Operator identifies the logical connective joining the parts of a
// compound condition.
type Operator string

const (
	OpAnd       Operator = "AND"
	OpOr        Operator = "OR"
	OpPlus      Operator = "+"
	OpAmpersand Operator = "&"
	OpPipe      Operator = "|"
)

// Parsed is the decomposition of a condition description. For a
// non-compound condition Parts holds the single trimmed description and
// Operator is empty.
type Parsed struct {
	IsCompound bool     `json:"is_compound"`
	Parts      []string `json:"parts"`
	Operator   Operator `json:"operator,omitempty"`
}

// pattern couples an operator with its split behavior. Word operators
// are matched case-insensitively on word boundaries so that e.g.
// "brand" never splits on AND.
type pattern struct {
	op Operator
	re *regexp.Regexp
}

var patterns = []pattern{
	{OpAnd, regexp.MustCompile(`(?i)\bAND\b`)},
	{OpOr, regexp.MustCompile(`(?i)\bOR\b`)},
	{OpPlus, regexp.MustCompile(`\+`)},
	{OpAmpersand, regexp.MustCompile(`&`)},
	{OpPipe, regexp.MustCompile(`\|`)},
}

var whitespace = regexp.MustCompile(`\s+`)

// Parse decomposes a condition description. The first operator pattern
// (in priority order) whose split yields at least two non-empty parts
// wins; otherwise the description is a single atomic part. Empty input
// yields a zero-value result.
func Parse(description string) Parsed {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return Parsed{Parts: []string{}}
	}

	for _, p := range patterns {
		if !p.re.MatchString(trimmed) {
			continue
		}
		parts := splitParts(p, trimmed)
		if len(parts) < 2 {
			// Degenerate split ("x AND "): fall through to the
			// next pattern, then to the single-part result.
			continue
		}
		return Parsed{IsCompound: true, Parts: parts, Operator: p.op}
	}

	return Parsed{Parts: []string{trimmed}}
}

// splitParts splits on the operator pattern, trims each piece and drops
// empty ones.
func splitParts(p pattern, s string) []string {
	raw := p.re.Split(s, -1)
	parts := make([]string, 0, len(raw))
	for _, piece := range raw {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			parts = append(parts, piece)
		}
	}
	return parts
}

// Normalize standardizes spacing around the detected operator to a
// single canonical form (" AND ", " OR ", " + ", " & ", " | ") and
// collapses repeated whitespace. It changes display only, never the
// parsed structure: Parse(Normalize(s)) equals Parse(s).
func Normalize(description string) string {
	parsed := Parse(description)
	if !parsed.IsCompound {
		if len(parsed.Parts) == 0 {
			return ""
		}
		return whitespace.ReplaceAllString(parsed.Parts[0], " ")
	}

	parts := make([]string, len(parsed.Parts))
	for i, part := range parsed.Parts {
		parts[i] = whitespace.ReplaceAllString(part, " ")
	}
	return strings.Join(parts, " "+string(parsed.Operator)+" ")
}
