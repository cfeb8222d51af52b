package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/uhaseeb85/stategraph/pkg/domain"
	"github.com/uhaseeb85/stategraph/pkg/partition"
)

// Overlay contains optional analysis results to visualize on the graph.
type Overlay struct {
	// Partitions colors each partition's members with its own class.
	Partitions []partition.Partition
	// Highlight marks the states of one path (e.g. a trace to review).
	Highlight []string
}

// Palette for partition classes, cycled when there are more partitions
// than colors. Text forced to black for contrast on both themes.
var partitionPalette = []string{
	"fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000",
	"fill:#f3e5f5,stroke:#6a1b9a,stroke-width:2px,color:#000",
	"fill:#e8f5e9,stroke:#1b5e20,stroke-width:2px,color:#000",
	"fill:#fff3e0,stroke:#e65100,stroke-width:2px,color:#000",
	"fill:#fce4ec,stroke:#880e4f,stroke-width:2px,color:#000",
	"fill:#ede7f6,stroke:#311b92,stroke-width:2px,color:#000",
}

// GenerateMermaid produces Mermaid flowchart syntax for a graph.
// Dead-end states render as circles, dangling rule targets as dotted
// arrows to a ghost node styled distinctly.
func GenerateMermaid(g *domain.Graph, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	danglingTargets := make(map[string]bool)

	for _, state := range g.States() {
		safeID := sanitizeMermaidID(state.ID)

		opener, closer := "[", "]"
		if state.IsDeadEnd() {
			opener, closer = "((", "))"
		}

		label := state.Name
		if label == "" {
			label = state.ID
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(label), closer))

		for _, rule := range state.Rules {
			if rule.NextState == "" {
				continue
			}
			safeTo := sanitizeMermaidID(rule.NextState)

			dangling := g.FindState(rule.NextState) == nil
			if dangling {
				danglingTargets[rule.NextState] = true
			}

			arrow := "-->"
			if rule.Condition != "" {
				arrow = fmt.Sprintf("-- \"%s\" -->", escapeLabel(rule.Condition))
			}
			if dangling {
				arrow = "-.->"
				if rule.Condition != "" {
					arrow = fmt.Sprintf("-. \"%s\" .->", escapeLabel(rule.Condition))
				}
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, safeTo))
		}
	}

	if len(danglingTargets) > 0 {
		sb.WriteString("\n    %% Dangling Targets\n")
		sb.WriteString("    classDef dangling fill:#fafafa,stroke:#9e9e9e,stroke-dasharray: 5 5,color:#000;\n")
		for _, target := range sortedKeys(danglingTargets) {
			safeID := sanitizeMermaidID(target)
			sb.WriteString(fmt.Sprintf("    %s[\"%s?\"]\n", safeID, escapeLabel(target)))
			sb.WriteString(fmt.Sprintf("    class %s dangling;\n", safeID))
		}
	}

	if overlay != nil {
		writeOverlay(&sb, overlay)
	}

	return sb.String()
}

func writeOverlay(sb *strings.Builder, overlay *Overlay) {
	if len(overlay.Partitions) > 0 {
		sb.WriteString("\n    %% Partition Styles\n")
		for i, part := range overlay.Partitions {
			class := fmt.Sprintf("partition%d", i)
			style := partitionPalette[i%len(partitionPalette)]
			sb.WriteString(fmt.Sprintf("    classDef %s %s;\n", class, style))
			for _, s := range part.States {
				sb.WriteString(fmt.Sprintf("    class %s %s;\n", sanitizeMermaidID(s.ID), class))
			}
		}
	}

	if len(overlay.Highlight) > 0 {
		sb.WriteString("\n    %% Highlighted Path\n")
		sb.WriteString("    classDef highlighted fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		seen := make(map[string]bool)
		for _, id := range overlay.Highlight {
			safeID := sanitizeMermaidID(id)
			if safeID == "" || seen[safeID] {
				continue
			}
			seen[safeID] = true
			sb.WriteString(fmt.Sprintf("    class %s highlighted;\n", safeID))
		}
	}
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys) // deterministic output
	return keys
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
