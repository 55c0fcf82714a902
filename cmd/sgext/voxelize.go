package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgext-go/sgext/graphio"
	"github.com/sgext-go/sgext/imaging"
	"github.com/sgext-go/sgext/ioformat"
	"github.com/sgext-go/sgext/voxelize"
)

var errNotDenseLabelImage = errors.New("sgext: voxelize produced a non-dense label image")

var (
	voxelizeGraphPath     string
	voxelizeRefPath       string
	voxelizeVertexLabels  string
	voxelizeOutPath       string
	voxelizePhysical      bool
)

var voxelizeCmd = &cobra.Command{
	Use:   "voxelize",
	Short: "Rasterize a labeled graph back into a label image",
	RunE:  runVoxelize,
}

func init() {
	voxelizeCmd.Flags().StringVar(&voxelizeGraphPath, "graph", "", "input graph text dump")
	voxelizeCmd.Flags().StringVar(&voxelizeRefPath, "reference", "", "reference distance-map text dump (supplies size/origin/spacing/direction)")
	voxelizeCmd.Flags().StringVar(&voxelizeVertexLabels, "vertex-labels", "", "vertex-to-generation map (e.g. from label-tree)")
	voxelizeCmd.Flags().StringVar(&voxelizeOutPath, "out", "", "output label image text dump")
	voxelizeCmd.Flags().BoolVar(&voxelizePhysical, "physical", false, "vertex positions are physical, not index, coordinates")
	voxelizeCmd.MarkFlagRequired("graph")
	voxelizeCmd.MarkFlagRequired("reference")
	voxelizeCmd.MarkFlagRequired("vertex-labels")
	voxelizeCmd.MarkFlagRequired("out")
}

func runVoxelize(cmd *cobra.Command, args []string) error {
	gf, err := os.Open(voxelizeGraphPath)
	if err != nil {
		return err
	}
	g, err := graphio.ReadText(gf)
	gf.Close()
	if err != nil {
		return err
	}

	rf, err := os.Open(voxelizeRefPath)
	if err != nil {
		return err
	}
	ref, err := imaging.ReadDistanceMapText(rf)
	rf.Close()
	if err != nil {
		return err
	}

	vf, err := os.Open(voxelizeVertexLabels)
	if err != nil {
		return err
	}
	vertexLabels, err := ioformat.ReadVertexIntMap(vf)
	vf.Close()
	if err != nil {
		return err
	}

	logger := newLogger()
	edgeLabels := voxelize.EdgeLabelFromVertexLabelMap(g, vertexLabels, nil)
	img, report := voxelize.Voxelize(g, ref, vertexLabels, edgeLabels, voxelizePhysical, logger)
	logger.Infow("voxelized graph", "verticesStamped", report.VerticesStamped, "edgesStamped", report.EdgesStamped, "zeroLabels", report.ZeroLabels)

	out, err := os.Create(voxelizeOutPath)
	if err != nil {
		return err
	}
	defer out.Close()

	dense, ok := img.(*imaging.DenseLabelImage)
	if !ok {
		return errNotDenseLabelImage
	}
	return imaging.WriteLabelImageText(out, dense)
}
