/*
Package condition decomposes compound rule conditions into atomic parts.

A condition like "hasError AND isRetryable" is split on the first
matching operator, in priority order: AND, OR, "+", "&", "|". The word
operators are case-insensitive and word-bounded; the symbol operators
are literal. Parsing never evaluates a condition, it only exposes its
structure for display, diffing and export.
*/
package condition
