package domain

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Format identifies a snapshot wire encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Snapshot is the round-trippable container for a graph: the state set
// plus a display name and save timestamp. It carries no derived data;
// paths, partitions and diffs are recomputed on demand.
type Snapshot struct {
	Name    string    `json:"name,omitempty" yaml:"name,omitempty"`
	SavedAt time.Time `json:"saved_at,omitempty" yaml:"saved_at,omitempty"`
	States  []State   `json:"states" yaml:"states"`
}

// EncodeSnapshot serializes a snapshot in the given format.
func EncodeSnapshot(s *Snapshot, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(s, "", "  ")
	case FormatYAML:
		return yaml.Marshal(s)
	default:
		return nil, &ValidationError{Field: "format", Reason: fmt.Sprintf("unsupported format %q", format)}
	}
}

// DecodeSnapshot parses a snapshot from data. A snapshot whose states
// field is absent decodes to an empty (not nil-erroring) state set.
func DecodeSnapshot(data []byte, format Format) (*Snapshot, error) {
	var s Snapshot
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot: %w", err)
		}
	default:
		return nil, &ValidationError{Field: "format", Reason: fmt.Sprintf("unsupported format %q", format)}
	}
	if s.States == nil {
		s.States = []State{}
	}
	return &s, nil
}

// DetectFormat picks a Format from a file path extension, defaulting to
// JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
