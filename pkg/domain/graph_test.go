package domain

import (
	"testing"
)

func sampleStates() []State {
	return []State{
		{ID: "1", Name: "Idle", Rules: []Rule{
			{ID: "r1", Condition: "start", NextState: "2"},
			{ID: "r2", Condition: "abort", NextState: "3"},
		}},
		{ID: "2", Name: "Running", Rules: []Rule{
			{ID: "r3", Condition: "done", NextState: "3"},
			{ID: "r4", Condition: "retry", NextState: "2"},
		}},
		{ID: "3", Name: "Stopped", Rules: nil},
	}
}

func TestGraphLookup(t *testing.T) {
	g := NewGraph(sampleStates())

	if g.Len() != 3 {
		t.Fatalf("Len = %d, want 3", g.Len())
	}
	if s := g.FindState("2"); s == nil || s.Name != "Running" {
		t.Errorf("FindState(2) = %v, want Running", s)
	}
	if s := g.FindState("missing"); s != nil {
		t.Errorf("FindState(missing) = %v, want nil", s)
	}
	if got := g.StateName("missing"); got != UnknownStateName {
		t.Errorf("StateName(missing) = %q, want %q", got, UnknownStateName)
	}
	if i := g.IndexOf("3"); i != 2 {
		t.Errorf("IndexOf(3) = %d, want 2", i)
	}
}

func TestGraphDegreeAndRefs(t *testing.T) {
	g := NewGraph(sampleStates())

	tests := []struct {
		id       string
		incoming int
		degree   int
	}{
		{"1", 0, 2},
		{"2", 2, 4}, // r1 + self-loop r4 incoming, 2 outgoing
		{"3", 2, 2},
	}
	for _, tt := range tests {
		if got := g.IncomingRefs(tt.id); got != tt.incoming {
			t.Errorf("IncomingRefs(%s) = %d, want %d", tt.id, got, tt.incoming)
		}
		if got := g.Degree(tt.id); got != tt.degree {
			t.Errorf("Degree(%s) = %d, want %d", tt.id, got, tt.degree)
		}
	}
}

func TestGraphDeadEnds(t *testing.T) {
	g := NewGraph(sampleStates())
	ends := g.DeadEnds()
	if len(ends) != 1 || ends[0] != "3" {
		t.Fatalf("DeadEnds = %v, want [3]", ends)
	}
}

func TestGraphNeighborsUndirected(t *testing.T) {
	g := NewGraph(sampleStates())

	// State 3 has no outgoing rules but is referenced by 1 and 2.
	neighbors := g.Neighbors(2)
	if len(neighbors) != 2 {
		t.Fatalf("Neighbors(3) = %v, want two entries", neighbors)
	}
}

func TestGraphLinkCount(t *testing.T) {
	g := NewGraph(sampleStates())

	if got := g.LinkCount("1", "2"); got != 1 {
		t.Errorf("LinkCount(1,2) = %d, want 1", got)
	}
	if got := g.LinkCount("2", "3"); got != 1 {
		t.Errorf("LinkCount(2,3) = %d, want 1", got)
	}
	if got := g.LinkCount("1", "3"); got != 1 {
		t.Errorf("LinkCount(1,3) = %d, want 1", got)
	}
}

func TestGraphClone(t *testing.T) {
	states := sampleStates()
	states[0].Rules[0].Priority = Priority(5)
	g := NewGraph(states)

	cp := g.Clone()
	cp[0].Rules[0].Condition = "mutated"
	*cp[0].Rules[0].Priority = 99

	if states[0].Rules[0].Condition != "start" {
		t.Error("Clone shares rule slice with original")
	}
	if *states[0].Rules[0].Priority != 5 {
		t.Error("Clone shares priority pointer with original")
	}
}

func TestEffectivePriority(t *testing.T) {
	r := Rule{ID: "r1", Condition: "x"}
	if got := r.EffectivePriority(); got != DefaultRulePriority {
		t.Errorf("EffectivePriority unset = %d, want %d", got, DefaultRulePriority)
	}
	r.Priority = Priority(7)
	if got := r.EffectivePriority(); got != 7 {
		t.Errorf("EffectivePriority = %d, want 7", got)
	}
}
