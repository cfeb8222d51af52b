package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"valid atomic", "hasError", nil},
		{"valid compound", "a AND b", nil},
		{"valid triple", "a + b + c", nil},
		{"blank", "   ", ErrEmptyDescription},
		{"empty", "", ErrEmptyDescription},
		{"trailing operator", "retry AND ", ErrDegenerateCompound},
		{"leading operator", "| x", ErrDegenerateCompound},
		{"operator only", "AND", ErrDegenerateCompound},
		{"double operator", "a AND AND b", ErrEmptyOperand},
		{"empty middle operand", "a + + b", ErrEmptyOperand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var verr *domain.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestDescribe(t *testing.T) {
	dict := map[string]string{
		"hasError":    "an error occurred",
		"isRetryable": "the operation can be retried",
	}

	// Collapsed mode returns the original text untouched.
	assert.Equal(t, "hasError AND isRetryable",
		Describe("hasError AND isRetryable", dict, false))

	// Expanded mode resolves each part, falling back to the raw token.
	assert.Equal(t, "an error occurred AND unknownFlag",
		Describe("hasError AND unknownFlag", dict, true))

	// Atomic conditions resolve directly.
	assert.Equal(t, "the operation can be retried",
		Describe("isRetryable", dict, true))

	// Empty input stays empty.
	assert.Equal(t, "", Describe("", dict, true))
}
