// Package csv imports flow graphs from flat transition tables, the
// interchange shape spreadsheets and legacy exports tend to produce.
// Each row is one rule; states are materialized in first-seen order.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/uhaseeb85/stategraph/pkg/domain"
)

// Expected header columns. Order is fixed; priority and operation are
// optional trailing columns.
const (
	colSourceID = iota
	colSourceName
	colCondition
	colTarget
	colPriority
	colOperation
)

var requiredHeader = []string{"source_id", "source_name", "condition", "target"}

// Loader implements ports.GraphLoader over a CSV transition table.
type Loader struct {
	Path string
}

// NewLoader creates a loader for the given CSV file.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Load reads the whole table and assembles states in first-seen order.
func (l *Loader) Load(ctx context.Context) ([]domain.State, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse assembles states from CSV rows. A row with an empty condition
// and empty target declares a state without adding a rule, which is how
// dead-end states appear in a transition table.
func Parse(r io.Reader) ([]domain.State, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validated per row below
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return []domain.State{}, nil
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	var order []string
	states := make(map[string]*domain.State)

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record at line %d: %w", line, err)
		}
		if len(record) < len(requiredHeader) {
			return nil, fmt.Errorf("line %d: expected at least %d columns, got %d", line, len(requiredHeader), len(record))
		}

		id := strings.TrimSpace(record[colSourceID])
		if id == "" {
			return nil, fmt.Errorf("line %d: source_id cannot be empty", line)
		}

		state, ok := states[id]
		if !ok {
			state = &domain.State{
				ID:   id,
				Name: strings.TrimSpace(record[colSourceName]),
			}
			if state.Name == "" {
				state.Name = id
			}
			states[id] = state
			order = append(order, id)
		}

		condition := strings.TrimSpace(record[colCondition])
		target := strings.TrimSpace(record[colTarget])
		if condition == "" && target == "" {
			continue // state declaration row
		}

		rule := domain.Rule{
			ID:        fmt.Sprintf("%s-r%d", id, len(state.Rules)+1),
			Condition: condition,
			NextState: target,
		}

		if len(record) > colPriority {
			if p := strings.TrimSpace(record[colPriority]); p != "" {
				v, err := strconv.Atoi(p)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid priority %q: %w", line, p, err)
				}
				rule.Priority = domain.Priority(v)
			}
		}
		if len(record) > colOperation {
			rule.Operation = strings.TrimSpace(record[colOperation])
		}

		state.Rules = append(state.Rules, rule)
	}

	out := make([]domain.State, 0, len(order))
	for _, id := range order {
		out = append(out, *states[id])
	}
	return out, nil
}

func validateHeader(header []string) error {
	if len(header) < len(requiredHeader) {
		return fmt.Errorf("csv header must contain at least columns %v", requiredHeader)
	}
	for i, want := range requiredHeader {
		got := strings.ToLower(strings.TrimSpace(header[i]))
		if got != want {
			return fmt.Errorf("csv header column %d: expected %q, got %q", i+1, want, header[i])
		}
	}
	return nil
}
