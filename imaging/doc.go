// Package imaging declares the collaborator interfaces spec.md §6 names as
// inputs/outputs of the core engine: a generic 3-D image (size, origin,
// spacing, direction, index↔physical conversion), a label image
// (read/write integer pixels), and a distance-map image (read-only
// float pixels). No concrete imaging toolkit is wired here — the spec
// treats these as boundary types supplied by an external collaborator — but
// a small in-memory implementation of each is provided for tests and for
// callers without a real imaging pipeline on hand.
package imaging
