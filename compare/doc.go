// Package compare relates a low-information graph g0 to a high-information
// graph g1 of the same underlying object, using a locate.Locator built over
// both to match positions across them. It implements the three operations
// spec.md §4.9 describes: diffing spurious g1 branches against g0, grafting
// g1 "peninsulas" (subgraphs touching the rest of the combined graph at
// exactly one point) onto g0, and extending g0's edge-point geometry to
// follow g1's finer path without changing g0's topology.
package compare
