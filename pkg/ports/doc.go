/*
Package ports defines the driven ports (interfaces) for stategraph.

These interfaces decouple the analysis core from external implementations,
allowing graphs to be loaded from various sources and snapshots to be
persisted to various backends.

# Key Interfaces

  - GraphLoader: Responsible for loading state definitions (e.g., from Loam, CSV, or Memory).
  - SnapshotStore: Responsible for persisting named graph snapshots for later comparison.
  - Watchable: Optional loader capability for change notification (hot reload).
*/
package ports
