package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/uhaseeb85/stategraph"
	"github.com/uhaseeb85/stategraph/internal/logging"
	"github.com/uhaseeb85/stategraph/internal/presentation/tui"
	csvAdapter "github.com/uhaseeb85/stategraph/pkg/adapters/csv"
	fileAdapter "github.com/uhaseeb85/stategraph/pkg/adapters/file"
	redisAdapter "github.com/uhaseeb85/stategraph/pkg/adapters/redis"
	"github.com/uhaseeb85/stategraph/pkg/ports"
)

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// newAnalyzer builds the analyzer from the persistent flags: a CSV
// table when --csv is set, otherwise a Loam directory.
func newAnalyzer(cmd *cobra.Command, opts ...stategraph.Option) (*stategraph.Analyzer, error) {
	level, _ := cmd.Flags().GetString("log-level")
	opts = append(opts, stategraph.WithLogger(logging.New(parseLogLevel(level))))

	if csvPath, _ := cmd.Flags().GetString("csv"); csvPath != "" {
		opts = append(opts, stategraph.WithLoader(csvAdapter.NewLoader(csvPath)))
		return stategraph.New("", opts...)
	}

	dir, _ := cmd.Flags().GetString("dir")
	return stategraph.New(dir, opts...)
}

// newStore builds the snapshot store from the persistent flags: Redis
// when --redis is set, otherwise a directory of JSON files.
func newStore(cmd *cobra.Command) ports.SnapshotStore {
	if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		return redisAdapter.New(addr, "", 0)
	}
	dir, _ := cmd.Flags().GetString("store")
	return fileAdapter.New(dir)
}

// printMarkdown renders markdown with glamour when stdout is a
// terminal and prints it raw otherwise (pipes, redirects).
func printMarkdown(md string) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		render := tui.NewRenderer()
		if out, err := render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
