package condition

import (
	"errors"
	"strings"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

// Sentinel causes for condition validation failures. They are wrapped
// in a *domain.ValidationError so callers can branch on either level.
var (
	ErrEmptyDescription   = errors.New("empty condition description")
	ErrDegenerateCompound = errors.New("operator present but fewer than two operands")
	ErrEmptyOperand       = errors.New("compound condition contains an empty operand")
)

// Validate checks a condition description for structural problems.
// Unlike Parse, which falls through degenerate splits, Validate flags
// the first operator it detects: "retry AND " is a mistake, not an
// atomic condition containing the word AND.
func Validate(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return &domain.ValidationError{Field: "condition", Reason: "description is blank", Err: ErrEmptyDescription}
	}

	for _, p := range patterns {
		if !p.re.MatchString(trimmed) {
			continue
		}

		raw := p.re.Split(trimmed, -1)
		nonEmpty := 0
		hasBlank := false
		for _, piece := range raw {
			if strings.TrimSpace(piece) == "" {
				hasBlank = true
			} else {
				nonEmpty++
			}
		}

		if nonEmpty < 2 {
			return &domain.ValidationError{Field: "condition", Reason: "degenerate compound: " + trimmed, Err: ErrDegenerateCompound}
		}
		if hasBlank {
			return &domain.ValidationError{Field: "condition", Reason: "empty operand in: " + trimmed, Err: ErrEmptyOperand}
		}
		return nil
	}

	return nil
}
