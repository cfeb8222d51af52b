package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

func st(id, name string, rules ...domain.Rule) domain.State {
	return domain.State{ID: id, Name: name, Rules: rules}
}

func rule(id, condition, next string) domain.Rule {
	return domain.Rule{ID: id, Condition: condition, NextState: next}
}

// twoIslands: {1,2} reference each other, {3,4,5} form a chain.
func twoIslands() *domain.Graph {
	return domain.NewGraph([]domain.State{
		st("1", "S1", rule("r1", "a", "2")),
		st("2", "S2", rule("r2", "b", "1")),
		st("3", "S3", rule("r3", "c", "4")),
		st("4", "S4", rule("r4", "d", "5")),
		st("5", "S5"),
	})
}

func TestConnectedComponents(t *testing.T) {
	components := ConnectedComponents(twoIslands())
	require.Len(t, components, 2)
	assert.ElementsMatch(t, []string{"1", "2"}, components[0])
	assert.ElementsMatch(t, []string{"3", "4", "5"}, components[1])
}

func TestConnectedComponentsSingle(t *testing.T) {
	g := domain.NewGraph([]domain.State{
		st("a", "A", rule("r1", "x", "b")),
		st("b", "B"),
	})
	components := ConnectedComponents(g)
	require.Len(t, components, 1)
	assert.ElementsMatch(t, []string{"a", "b"}, components[0])
}

func TestSplitNaturalComponentsWin(t *testing.T) {
	// targetCount is ignored when the graph is already disconnected.
	for _, target := range []int{1, 2, 4} {
		partitions, err := Split(twoIslands(), target)
		require.NoError(t, err)
		require.Len(t, partitions, 2, "targetCount=%d", target)
		assert.True(t, ValidatePartitions(partitions))

		sizes := []int{len(partitions[0].States), len(partitions[1].States)}
		assert.ElementsMatch(t, []int{2, 3}, sizes)
	}
}

func TestSplitConnectedGraph(t *testing.T) {
	// hub is the highest-degree state; leaf1/leaf2 hang off it, tail
	// hangs off leaf2.
	g := domain.NewGraph([]domain.State{
		st("hub", "Hub", rule("r1", "a", "leaf1"), rule("r2", "b", "leaf2")),
		st("leaf1", "Leaf 1", rule("r3", "back", "hub")),
		st("leaf2", "Leaf 2", rule("r4", "on", "tail")),
		st("tail", "Tail", rule("r5", "home", "hub")),
	})

	partitions, err := Split(g, 2)
	require.NoError(t, err)
	require.Len(t, partitions, 2)
	assert.True(t, ValidatePartitions(partitions))

	total := 0
	for _, p := range partitions {
		assert.NotEmpty(t, p.States)
		total += len(p.States)
	}
	assert.Equal(t, 4, total)
}

func TestSplitEdgeCases(t *testing.T) {
	empty, err := Split(domain.NewGraph(nil), 3)
	require.NoError(t, err)
	assert.Empty(t, empty)

	single, err := Split(domain.NewGraph([]domain.State{st("only", "Only")}), 3)
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, []string{"only"}, []string{single[0].States[0].ID})

	_, err = Split(twoIslands(), 0)
	require.Error(t, err)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

// Disjointness must hold for every requested partition count.
func TestSplitAlwaysDisjoint(t *testing.T) {
	g := domain.NewGraph([]domain.State{
		st("a", "A", rule("r1", "1", "b"), rule("r2", "2", "c")),
		st("b", "B", rule("r3", "3", "d")),
		st("c", "C", rule("r4", "4", "d")),
		st("d", "D", rule("r5", "5", "e")),
		st("e", "E"),
	})

	for k := 1; k <= 7; k++ {
		partitions, err := Split(g, k)
		require.NoError(t, err)
		assert.True(t, ValidatePartitions(partitions), "k=%d", k)

		total := 0
		for _, p := range partitions {
			total += len(p.States)
		}
		assert.Equal(t, 5, total, "k=%d", k)
	}
}

func TestBoundaryEdges(t *testing.T) {
	g := domain.NewGraph([]domain.State{
		st("a", "A", rule("r1", "in", "b"), rule("r2", "out", "c"), rule("r3", "ghost", "nowhere")),
		st("b", "B"),
		st("c", "C"),
	})

	members := map[string]bool{"a": true, "b": true}
	edges := Boundary(g, members)
	require.Len(t, edges, 2)

	assert.Equal(t, "c", edges[0].ToState)
	assert.Equal(t, EdgeExternal, edges[0].Type)
	assert.Equal(t, "nowhere", edges[1].ToState)
	assert.Equal(t, EdgeDangling, edges[1].Type)
}

func TestEntryAndExitPoints(t *testing.T) {
	g := domain.NewGraph([]domain.State{
		st("a", "A", rule("r1", "x", "b")),
		st("b", "B", rule("r2", "y", "c")),
		st("c", "C", rule("r3", "z", "b")),
	})

	p := Partition{StateIDs: map[string]bool{"b": true, "c": true}}

	assert.Equal(t, []string{"b"}, EntryPoints(g, p))
	assert.Empty(t, ExitPoints(g, p))

	q := Partition{StateIDs: map[string]bool{"a": true, "b": true}}
	assert.Empty(t, EntryPoints(g, q))
	assert.Equal(t, []string{"b"}, ExitPoints(g, q))
}

func TestValidatePartitionsDetectsOverlap(t *testing.T) {
	good := []Partition{
		{StateIDs: map[string]bool{"a": true}},
		{StateIDs: map[string]bool{"b": true}},
	}
	assert.True(t, ValidatePartitions(good))

	bad := []Partition{
		{StateIDs: map[string]bool{"a": true, "b": true}},
		{StateIDs: map[string]bool{"b": true}},
	}
	assert.False(t, ValidatePartitions(bad))
}
