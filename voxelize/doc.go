// Package voxelize rasterizes a spatial graph back into a labeled image:
// every mapped vertex stamps its voxel with its label, every mapped edge
// stamps every voxel along its polyline. It implements spec.md §4.10.
package voxelize
