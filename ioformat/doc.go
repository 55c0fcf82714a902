// Package ioformat reads and writes the small CSV tabular formats the tree
// module consumes and produces: vertex_to_label_map, vertex_to_generation_map
// (both "# header" then vertex_id,label rows), and edge_to_label_map ("#
// header" then source-target,label rows, with a literal hyphen joining the
// two endpoint ids). It implements spec.md §6's tabular file formats.
package ioformat
