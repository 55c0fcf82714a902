package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sgext-go/sgext/graphio"
	"github.com/sgext-go/sgext/lift"
)

var (
	liftInPath  string
	liftOutPath string
)

var liftCmd = &cobra.Command{
	Use:   "lift",
	Short: "Lift a foreground voxel set into a spatial graph",
	RunE:  runLift,
}

func init() {
	liftCmd.Flags().StringVar(&liftInPath, "in", "", "voxel list file (x y z per line)")
	liftCmd.Flags().StringVar(&liftOutPath, "out", "", "output graph text dump")
	liftCmd.MarkFlagRequired("in")
	liftCmd.MarkFlagRequired("out")
}

func runLift(cmd *cobra.Command, args []string) error {
	in, err := os.Open(liftInPath)
	if err != nil {
		return err
	}
	defer in.Close()

	voxels, err := readVoxelList(in)
	if err != nil {
		return err
	}

	g, _ := lift.Lift(lift.NewDenseVoxelSet(voxels))

	out, err := os.Create(liftOutPath)
	if err != nil {
		return err
	}
	defer out.Close()

	logger := newLogger()
	logger.Infow("lifted voxel set", "voxels", len(voxels), "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return graphio.WriteText(out, g)
}
