package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

func graph(states ...domain.State) *domain.Graph {
	return domain.NewGraph(states)
}

func st(id, name string, rules ...domain.Rule) domain.State {
	return domain.State{ID: id, Name: name, Rules: rules}
}

func rule(id, condition, next string) domain.Rule {
	return domain.Rule{ID: id, Condition: condition, NextState: next}
}

// ids extracts the node sequence of a path.
func ids(p Path) []string {
	out := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		out[i] = s.StateID
	}
	return out
}

func TestFindToEnd(t *testing.T) {
	g := graph(
		st("a", "A", rule("r1", "go", "b"), rule("r2", "skip", "c")),
		st("b", "B", rule("r3", "finish", "c")),
		st("c", "C"),
	)

	res, err := Find(g, Options{Mode: ModeToEnd, Start: "a"})
	require.NoError(t, err)
	require.Equal(t, 2, res.Len())
	assert.False(t, res.Truncated)

	// Discovery order follows rule order: a→b→c before a→c.
	assert.Equal(t, []string{"a", "b", "c"}, ids(res.Paths()[0]))
	assert.Equal(t, []string{"a", "c"}, ids(res.Paths()[1]))

	// Terminal step carries no rule.
	last := res.Paths()[0].Steps[2]
	assert.Empty(t, last.RuleID)
	assert.Equal(t, "C", last.StateName)
}

func TestFindDiamondExploresBothBranches(t *testing.T) {
	// a→b→d, a→c→d: d is visited on two distinct paths; a global
	// visited set would lose one of them.
	g := graph(
		st("a", "A", rule("r1", "left", "b"), rule("r2", "right", "c")),
		st("b", "B", rule("r3", "join", "d")),
		st("c", "C", rule("r4", "join", "d")),
		st("d", "D"),
	)

	res, err := Find(g, Options{Mode: ModeToEnd, Start: "a"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Len())
	assert.Empty(t, res.Cycles())
}

func TestFindCycleTerminatesWithNoPaths(t *testing.T) {
	// A→B→A: no dead end is reachable, the traversal must terminate
	// and report the cycle.
	g := graph(
		st("a", "A", rule("r1", "x", "b")),
		st("b", "B", rule("r2", "y", "a")),
	)

	res, err := Find(g, Options{Mode: ModeToEnd, Start: "a"})
	require.NoError(t, err)
	assert.Zero(t, res.Len())
	require.Len(t, res.Cycles(), 1)

	cycle := res.Cycles()[0]
	assert.Equal(t, "a", cycle.RepeatedStateID)
	assert.Equal(t, []string{"a", "b", "a"}, ids(cycle.Path))
}

func TestFindSelfLoop(t *testing.T) {
	g := graph(
		st("a", "A", rule("r1", "again", "a"), rule("r2", "out", "b")),
		st("b", "B"),
	)

	res, err := Find(g, Options{Mode: ModeToEnd, Start: "a"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Len())
	require.Len(t, res.Cycles(), 1)
	assert.Equal(t, "a", res.Cycles()[0].RepeatedStateID)
}

func TestFindToTarget(t *testing.T) {
	g := graph(
		st("a", "A", rule("r1", "go", "b"), rule("r2", "jump", "c")),
		st("b", "B", rule("r3", "on", "c")),
		st("c", "C", rule("r4", "past", "d")),
		st("d", "D"),
	)

	res, err := Find(g, Options{Mode: ModeToTarget, Start: "a", Target: "c"})
	require.NoError(t, err)
	require.Equal(t, 2, res.Len())
	assert.Equal(t, []string{"a", "b", "c"}, ids(res.Paths()[0]))
	assert.Equal(t, []string{"a", "c"}, ids(res.Paths()[1]))
}

func TestFindViaConstraint(t *testing.T) {
	g := graph(
		st("a", "A", rule("r1", "go", "b"), rule("r2", "jump", "c")),
		st("b", "B", rule("r3", "on", "c")),
		st("c", "C"),
	)

	res, err := Find(g, Options{Mode: ModeToEnd, Start: "a", Via: "b"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())
	assert.Equal(t, []string{"a", "b", "c"}, ids(res.Paths()[0]))
}

func TestFindStartIsDeadEnd(t *testing.T) {
	g := graph(st("a", "A"))

	res, err := Find(g, Options{Mode: ModeToEnd, Start: "a"})
	require.NoError(t, err)
	assert.Zero(t, res.Len())
	assert.Empty(t, res.Cycles())
}

func TestFindNoDeadEndsReturnsEmpty(t *testing.T) {
	g := graph(
		st("a", "A", rule("r1", "x", "b")),
		st("b", "B", rule("r2", "y", "a")),
	)
	res, err := Find(g, Options{Mode: ModeToEnd, Start: "b"})
	require.NoError(t, err)
	assert.Zero(t, res.Len())
}

func TestFindStartNotFound(t *testing.T) {
	g := graph(st("a", "A"))

	_, err := Find(g, Options{Mode: ModeToEnd, Start: "zzz"})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	_, err = Find(g, Options{Mode: ModeToTarget, Start: "a", Target: "zzz"})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	_, err = Find(g, Options{Mode: ModeToEnd, Start: "a", Via: "zzz"})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestFindDanglingReferenceSkipped(t *testing.T) {
	g := graph(
		st("a", "A", rule("r1", "ghost", "missing"), rule("r2", "go", "b")),
		st("b", "B"),
	)

	res, err := Find(g, Options{Mode: ModeToEnd, Start: "a"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())
	assert.Equal(t, []string{"a", "b"}, ids(res.Paths()[0]))
}

func TestFindMaxPathsTruncates(t *testing.T) {
	// Three parallel branches but room for only two paths.
	g := graph(
		st("a", "A", rule("r1", "1", "b"), rule("r2", "2", "c"), rule("r3", "3", "d")),
		st("b", "B"),
		st("c", "C"),
		st("d", "D"),
	)

	res, err := Find(g, Options{Mode: ModeToEnd, Start: "a", MaxPaths: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Len())
	assert.True(t, res.Truncated)
}

func TestFindMaxDepthTruncates(t *testing.T) {
	g := graph(
		st("a", "A", rule("r1", "x", "b")),
		st("b", "B", rule("r2", "y", "c")),
		st("c", "C"),
	)

	res, err := Find(g, Options{Mode: ModeToEnd, Start: "a", MaxDepth: 2})
	require.NoError(t, err)
	assert.Zero(t, res.Len())
	assert.True(t, res.Truncated)
}

func TestResultPage(t *testing.T) {
	g := graph(
		st("a", "A", rule("r1", "1", "b"), rule("r2", "2", "c"), rule("r3", "3", "d")),
		st("b", "B"),
		st("c", "C"),
		st("d", "D"),
	)

	res, err := Find(g, Options{Mode: ModeToEnd, Start: "a"})
	require.NoError(t, err)
	require.Equal(t, 3, res.Len())

	assert.Len(t, res.Page(0, 2), 2)
	assert.Len(t, res.Page(2, 2), 1)
	assert.Empty(t, res.Page(3, 2))
	assert.Empty(t, res.Page(99, 2))
	assert.Len(t, res.Page(1, 0), 2) // non-positive limit: the rest
	assert.Len(t, res.Page(-1, 10), 3)
}
