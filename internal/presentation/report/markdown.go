// Package report formats analysis results as markdown, which the CLI
// renders with glamour on terminals and prints raw otherwise.
package report

import (
	"fmt"
	"strings"

	"github.com/uhaseeb85/stategraph/internal/validator"
	"github.com/uhaseeb85/stategraph/pkg/diff"
	"github.com/uhaseeb85/stategraph/pkg/pathfind"
)

// DiffMarkdown renders a comparison report.
func DiffMarkdown(r *diff.Report) string {
	var sb strings.Builder
	sb.WriteString("# Graph Comparison\n\n")

	s := r.Summary
	if !s.HasChanges() {
		sb.WriteString("No changes detected.\n")
		return sb.String()
	}

	sb.WriteString("| | Added | Removed | Modified |\n")
	sb.WriteString("|---|---|---|---|\n")
	fmt.Fprintf(&sb, "| States | %d | %d | %d |\n", s.AddedStates, s.RemovedStates, s.ModifiedStates)
	fmt.Fprintf(&sb, "| Rules | %d | %d | %d |\n\n", s.AddedRules, s.RemovedRules, s.ModifiedRules)

	wroteHeader := false
	for _, e := range r.States {
		if e.Status == diff.StatusUnchanged {
			continue
		}
		if !wroteHeader {
			sb.WriteString("## States\n\n")
			wroteHeader = true
		}
		fmt.Fprintf(&sb, "- **%s** %s (`%s`)\n", e.Status, e.Name, e.ID)
		for _, c := range e.Changes {
			fmt.Fprintf(&sb, "  - %s\n", c)
		}
	}

	wroteHeader = false
	for _, e := range r.Rules {
		if e.Status == diff.StatusUnchanged {
			continue
		}
		if !wroteHeader {
			sb.WriteString("\n## Rules\n\n")
			wroteHeader = true
		}
		fmt.Fprintf(&sb, "- **%s** %s: \"%s\" → %s\n", e.Status, e.StateName, e.Condition, e.TargetName)
		for _, c := range e.Changes {
			fmt.Fprintf(&sb, "  - %s\n", c)
		}
	}

	return sb.String()
}

// PathsMarkdown renders a path-finding result.
func PathsMarkdown(r *pathfind.Result) string {
	var sb strings.Builder
	sb.WriteString("# Paths\n\n")

	paths := r.Paths()
	cycles := r.Cycles()

	fmt.Fprintf(&sb, "Found **%d** path(s) and **%d** cycle(s).", len(paths), len(cycles))
	if r.Truncated {
		sb.WriteString(" Search truncated by limits.")
	}
	sb.WriteString("\n\n")

	for i, p := range paths {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, formatPath(p))
	}

	if len(cycles) > 0 {
		sb.WriteString("\n## Cycles\n\n")
		for i, c := range cycles {
			fmt.Fprintf(&sb, "%d. %s (repeats at `%s`)\n", i+1, formatPath(c.Path), c.RepeatedStateID)
		}
	}

	return sb.String()
}

func formatPath(p pathfind.Path) string {
	var sb strings.Builder
	for i, step := range p.Steps {
		fmt.Fprintf(&sb, "`%s`", step.StateName)
		if i == len(p.Steps)-1 {
			continue
		}
		if step.Condition != "" {
			fmt.Fprintf(&sb, " --[%s]--> ", step.Condition)
		} else {
			sb.WriteString(" --> ")
		}
	}
	return sb.String()
}

// ValidationMarkdown renders a validation report.
func ValidationMarkdown(r *validator.Report) string {
	var sb strings.Builder
	sb.WriteString("# Validation\n\n")

	if len(r.Issues) == 0 {
		sb.WriteString("Graph is structurally consistent.\n")
		return sb.String()
	}

	for _, issue := range r.Issues {
		marker := "⚠️"
		if issue.Severity == "error" {
			marker = "❌"
		}
		fmt.Fprintf(&sb, "- %s %s\n", marker, issue.Message)
	}
	return sb.String()
}
