package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	snap := &Snapshot{
		Name: "order-flow",
		States: []State{
			{ID: "1", Name: "New", Rules: []Rule{
				{ID: "id_r1", Condition: "paid AND inStock", NextState: "2", Priority: Priority(10), Operation: "reserve"},
			}},
			{ID: "2", Name: "Shipped"},
		},
	}

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := EncodeSnapshot(snap, format)
			require.NoError(t, err)

			got, err := DecodeSnapshot(data, format)
			require.NoError(t, err)

			assert.Equal(t, snap.Name, got.Name)
			require.Len(t, got.States, 2)
			assert.Equal(t, snap.States[0].Rules, got.States[0].Rules)
			assert.Empty(t, got.States[1].Rules)
		})
	}
}

func TestDecodeSnapshotMissingStates(t *testing.T) {
	got, err := DecodeSnapshot([]byte(`{"name":"empty"}`), FormatJSON)
	require.NoError(t, err)
	assert.NotNil(t, got.States)
	assert.Empty(t, got.States)
}

func TestDecodeSnapshotBadFormat(t *testing.T) {
	_, err := DecodeSnapshot([]byte("{}"), Format("toml"))
	require.Error(t, err)

	_, err = DecodeSnapshot([]byte("{not json"), FormatJSON)
	require.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("graph.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("graph.YML"))
	assert.Equal(t, FormatJSON, DetectFormat("graph.json"))
	assert.Equal(t, FormatJSON, DetectFormat("graph"))
}
