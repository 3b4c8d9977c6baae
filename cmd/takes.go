package cmd

import (
	"github.com/spf13/cobra"

	"github.com/drumtake-cli/drumtake/tui"
)

func init() {
	rootCmd.AddCommand(takesCmd)
}

// takesCmd launches the fullscreen browser over the saved takes catalog.
var takesCmd = &cobra.Command{
	Use:   "takes",
	Short: "Browse, replay and manage saved takes",
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()
		handleErr(tui.Run())
	},
}
