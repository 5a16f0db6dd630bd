package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/golidar/internal/app"
	"github.com/philipparndt/golidar/pkg/viewer"
	"github.com/philipparndt/golidar/version"
)

var (
	flagPoints    int
	flagSeed      int64
	flagSpacing   float64
	flagPointSize float64
	flagLabels    string
)

var rootCmd = &cobra.Command{
	Use:   "golidar",
	Short: "An interactive viewer for 3D point clouds",
	Long: `golidar renders point clouds with an orbit camera, a scale-reference
grid with axis value labels, and several point coloring modes. Without a
subcommand it opens the native viewer window on a generated sample cloud.`,
	Version: version.GetFullVersion(),
	Run:     runViewer,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagPoints, "points", 100000, "number of points in the generated cloud")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 42, "random seed for cloud generation")
	rootCmd.PersistentFlags().Float64Var(&flagSpacing, "spacing", 1.0, "grid line spacing in world units")
	rootCmd.PersistentFlags().Float64Var(&flagPointSize, "point-size", 2.0, "point size in pixels")
	rootCmd.PersistentFlags().StringVar(&flagLabels, "labels", "projected", "axis label placement: projected or strip")
}

func labelPolicy() viewer.LabelPolicy {
	if flagLabels == "strip" {
		return viewer.FixedEdgeStrip
	}
	return viewer.ProjectedAnchors
}

func runViewer(cmd *cobra.Command, args []string) {
	app.Run(app.Options{
		Points:      flagPoints,
		Seed:        flagSeed,
		GridSpacing: flagSpacing,
		PointSize:   flagPointSize,
		LabelPolicy: labelPolicy(),
	})
}

func main() {
	// glog writes to stderr, not log files
	flag.Set("logtostderr", "true")
	flag.CommandLine.Parse(nil)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
