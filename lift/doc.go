// Package lift converts a foreground voxel set — the output of a skeletonization
// or segmentation step upstream — into a graph.SpatialGraph: one vertex per
// voxel, one edge per unordered 26-adjacent voxel pair, and no edge_points
// (those are only introduced once the chain reducer runs). The voxel set is
// expressed through the VoxelSet interface so the lifter never depends on a
// concrete image representation; DenseVoxelSet is the implementation this
// package provides.
package lift
