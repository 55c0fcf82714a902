// Command sgext drives the spatial-graph extraction and topology-repair
// pipeline from the shell: lift a voxel set into a graph, repair its
// topology, label it with a tree generation, or rasterize it back into a
// label image, one subcommand per stage.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
