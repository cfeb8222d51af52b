// Package observability provides Prometheus instrumentation for graph
// analysis operations. A nil *Metrics is a valid no-op, so callers never
// need to guard metric calls.
package observability
