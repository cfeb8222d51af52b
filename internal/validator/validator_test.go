package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

func TestValidateStates_Clean(t *testing.T) {
	states := []domain.State{
		{ID: "1", Name: "Start", Rules: []domain.Rule{
			{ID: "r1", Condition: "go", NextState: "2"},
		}},
		{ID: "2", Name: "End"},
	}

	report := ValidateStates(states)
	assert.Empty(t, report.Issues)
	assert.False(t, report.HasErrors())
	assert.NoError(t, report.Err())
}

func TestValidateStates_DuplicateID(t *testing.T) {
	states := []domain.State{
		{ID: "1", Name: "A"},
		{ID: "1", Name: "B"},
	}

	report := ValidateStates(states)
	require.True(t, report.HasErrors())
	assert.Contains(t, report.Err().Error(), "duplicate state id '1'")
}

func TestValidateStates_MissingTarget(t *testing.T) {
	states := []domain.State{
		{ID: "1", Name: "Start", Rules: []domain.Rule{
			{ID: "r1", Condition: "go", NextState: "ghost"},
		}},
	}

	report := ValidateStates(states)
	require.True(t, report.HasErrors())
	assert.Contains(t, report.Err().Error(), "missing state 'ghost'")
}

func TestValidateStates_EmptyConditionIsWarning(t *testing.T) {
	states := []domain.State{
		{ID: "1", Name: "Start", Rules: []domain.Rule{
			{ID: "r1", Condition: "", NextState: "2"},
		}},
		{ID: "2", Name: "End"},
	}

	report := ValidateStates(states)
	assert.False(t, report.HasErrors())
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "warning", report.Issues[0].Severity)
}

func TestValidateStates_Unreachable(t *testing.T) {
	states := []domain.State{
		{ID: "1", Name: "Start", Rules: []domain.Rule{
			{ID: "r1", Condition: "go", NextState: "2"},
		}},
		{ID: "2", Name: "End"},
		{ID: "3", Name: "Orphan", Rules: []domain.Rule{
			{ID: "r3", Condition: "loop", NextState: "3"},
		}},
	}

	report := ValidateStates(states)
	// Orphan has no incoming refs (self-loops don't count), so it is
	// itself an entry point and everything stays reachable.
	assert.Empty(t, report.Issues)
}

func TestValidateStates_UnreachableIsland(t *testing.T) {
	states := []domain.State{
		{ID: "1", Name: "Start", Rules: []domain.Rule{
			{ID: "r1", Condition: "go", NextState: "2"},
		}},
		{ID: "2", Name: "End"},
		// a and b point at each other, so neither is an entry point
		// and neither is reachable from "1".
		{ID: "a", Name: "IslandA", Rules: []domain.Rule{
			{ID: "ra", Condition: "swap", NextState: "b"},
		}},
		{ID: "b", Name: "IslandB", Rules: []domain.Rule{
			{ID: "rb", Condition: "swap", NextState: "a"},
		}},
	}

	report := ValidateStates(states)
	assert.False(t, report.HasErrors())

	var unreachable []string
	for _, issue := range report.Issues {
		if issue.Severity == "warning" {
			unreachable = append(unreachable, issue.StateID)
		}
	}
	assert.ElementsMatch(t, []string{"a", "b"}, unreachable)
}

func TestValidateStates_AllCyclic(t *testing.T) {
	states := []domain.State{
		{ID: "a", Name: "A", Rules: []domain.Rule{{ID: "r1", Condition: "next", NextState: "b"}}},
		{ID: "b", Name: "B", Rules: []domain.Rule{{ID: "r2", Condition: "next", NextState: "a"}}},
	}

	report := ValidateStates(states)
	assert.Empty(t, report.Issues)
}
