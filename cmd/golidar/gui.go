package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/golidar/internal/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the viewer with the Fyne control panel interface",
	Long:  "Render the point cloud in a Fyne window with sliders and toggles for all display settings instead of keyboard shortcuts.",
	Run:   runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

func runGUI(cmd *cobra.Command, args []string) {
	gui.Run(gui.Options{
		Points:      flagPoints,
		Seed:        flagSeed,
		GridSpacing: flagSpacing,
		PointSize:   flagPointSize,
		LabelPolicy: labelPolicy(),
	})
}
