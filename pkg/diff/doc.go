/*
Package diff computes structural differences between two snapshots of a
state graph.

State identity is not assumed stable across snapshots: the same logical
state may carry different ids after a re-import. Matching therefore
runs through a strict priority ladder (id, exact name, normalized name)
and rule matching leans on condition text rather than regenerated rule
ids. Every state and rule in either snapshot receives a status tag and
a human-readable change list; an aggregate summary counts changes per
status and entity type.
*/
package diff
