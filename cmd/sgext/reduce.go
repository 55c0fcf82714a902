package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sgext-go/sgext/graphio"
	"github.com/sgext-go/sgext/topology"
)

var (
	reduceInPath   string
	reduceOutPath  string
	reduceMerge    bool
	reduceParallel bool
)

var reduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Repair a lifted graph's topology",
	Long: `reduce removes 26-connectivity extra edges, collapses degree-2 chains
into single edges carrying their interior points, and optionally merges small
cliques and collapses parallel edges.`,
	RunE: runReduce,
}

func init() {
	reduceCmd.Flags().StringVar(&reduceInPath, "in", "", "input graph text dump")
	reduceCmd.Flags().StringVar(&reduceOutPath, "out", "", "output graph text dump")
	reduceCmd.Flags().BoolVar(&reduceMerge, "merge-cliques", false, "collapse 3- and 4-cliques and 2x3 bridges after chain reduction")
	reduceCmd.Flags().BoolVar(&reduceParallel, "remove-parallel", false, "collapse parallel edges after chain reduction, keeping the shortest")
	reduceCmd.MarkFlagRequired("in")
	reduceCmd.MarkFlagRequired("out")
}

func runReduce(cmd *cobra.Command, args []string) error {
	in, err := os.Open(reduceInPath)
	if err != nil {
		return err
	}
	g, err := graphio.ReadText(in)
	in.Close()
	if err != nil {
		return err
	}

	logger := newLogger()

	removed := topology.RemoveExtraEdges(g, logger)
	logger.Infow("extra-edge removal", "changed", removed)

	reduced, _ := topology.Reduce(g, logger)

	if reduceMerge {
		n3 := topology.Merge3(reduced, topology.WithLogger(logger))
		n4 := topology.Merge4(reduced, topology.WithLogger(logger))
		n23 := topology.Merge2x3(reduced, topology.WithLogger(logger))
		logger.Infow("collapsed cliques", "triangles", n3, "quads", n4, "bridges2x3", n23)
	}

	if reduceParallel {
		reduced = topology.RemoveParallelEdges(reduced, false)
	}

	logger.Infow("reduced graph", "vertices", reduced.VertexCount(), "edges", reduced.EdgeCount())

	out, err := os.Create(reduceOutPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return graphio.WriteText(out, reduced)
}
