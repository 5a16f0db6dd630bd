package main

import (
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the native viewer window (same as running with no subcommand)",
	Run:   runViewer,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
