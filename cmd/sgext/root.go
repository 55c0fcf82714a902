package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sgext",
	Short: "Spatial graph extraction and topology repair",
	Long: `sgext lifts a foreground voxel set into a spatial graph, repairs its
topology (extra-edge removal, chain reduction, clique merging, parallel-edge
collapsing), labels it with a tree generation, and rasterizes it back into a
label image.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(liftCmd, reduceCmd, labelTreeCmd, voxelizeCmd)
}

func newLogger() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
