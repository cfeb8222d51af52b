package stategraph

import _ "embed"

// Version is the library version, embedded from the VERSION file at the
// repository root. Consumers should TrimSpace before display.
//
//go:embed VERSION
var Version string
