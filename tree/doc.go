// Package tree labels a reduced, merged spatial graph with a per-vertex
// generation number by walking it breadth-first from one or more roots and
// deciding, at each tree edge, whether the child continues the parent's
// branch or starts a new generation. It implements spec.md §4.11.
package tree
