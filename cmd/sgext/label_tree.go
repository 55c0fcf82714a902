package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sgext-go/sgext/graphio"
	"github.com/sgext-go/sgext/imaging"
	"github.com/sgext-go/sgext/ioformat"
	"github.com/sgext-go/sgext/tree"
)

var (
	labelTreeGraphPath    string
	labelTreeDistMapPath  string
	labelTreeOutPath      string
	labelTreePhysical     bool
	labelTreeDecreaseRatio float64
	labelTreeKeepAngle     float64
	labelTreeForceAngle    float64
)

var labelTreeCmd = &cobra.Command{
	Use:   "label-tree",
	Short: "Assign a tree generation to every vertex",
	RunE:  runLabelTree,
}

func init() {
	labelTreeCmd.Flags().StringVar(&labelTreeGraphPath, "graph", "", "input graph text dump")
	labelTreeCmd.Flags().StringVar(&labelTreeDistMapPath, "distance-map", "", "input distance-map text dump")
	labelTreeCmd.Flags().StringVar(&labelTreeOutPath, "out", "", "output vertex-to-generation map")
	labelTreeCmd.Flags().BoolVar(&labelTreePhysical, "physical", false, "vertex positions are physical, not index, coordinates")
	labelTreeCmd.Flags().Float64Var(&labelTreeDecreaseRatio, "decrease-radius-ratio", 0.1, "node-radius drop ratio that increases generation")
	labelTreeCmd.Flags().Float64Var(&labelTreeKeepAngle, "keep-angle", 10, "degrees below which generation is kept even on a radius drop")
	labelTreeCmd.Flags().Float64Var(&labelTreeForceAngle, "force-angle", 40, "degrees above which generation is forced to increase")
	labelTreeCmd.MarkFlagRequired("graph")
	labelTreeCmd.MarkFlagRequired("distance-map")
	labelTreeCmd.MarkFlagRequired("out")
}

func runLabelTree(cmd *cobra.Command, args []string) error {
	gf, err := os.Open(labelTreeGraphPath)
	if err != nil {
		return err
	}
	g, err := graphio.ReadText(gf)
	gf.Close()
	if err != nil {
		return err
	}

	df, err := os.Open(labelTreeDistMapPath)
	if err != nil {
		return err
	}
	dist, err := imaging.ReadDistanceMapText(df)
	df.Close()
	if err != nil {
		return err
	}

	logger := newLogger()
	opts := tree.NewOptions(
		tree.WithDecreaseRadiusRatio(labelTreeDecreaseRatio),
		tree.WithKeepGenerationAngle(labelTreeKeepAngle),
		tree.WithForceIncreaseAngle(labelTreeForceAngle),
		tree.WithPhysicalPositions(labelTreePhysical),
		tree.WithLogger(logger),
	)

	result := tree.Label(g, dist, opts)
	logger.Infow("labeled tree", "roots", len(result.Roots), "anomalies", len(result.Anomalies))

	out, err := os.Create(labelTreeOutPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return ioformat.WriteVertexIntMap(out, "vertex_id, generation", result.Generations)
}
