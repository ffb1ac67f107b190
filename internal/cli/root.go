package cli

import (
	"github.com/spf13/cobra"
)

var (
	version      = "0.1.0"
	scenariosDir string
	noColor      bool
)

var rootCmd = &cobra.Command{
	Use:   "realign",
	Short: "Two-stage recovery planning for misaligned stacked objects",
	Long: `Realign finds what drifted in a stacked-object scene and plans how to fix it.

Two stages:
  identify - search for corrective interventions (MCTS over symbolic+geometric state)
  recover  - turn the findings into an executable plan via an optimal classical planner

Get started:
  realign identify scenario1      Find misaligned entities and corrective shifts
  realign recover scenario1       Plan the precise re-placements
  realign run scenario1           Both stages end to end`,
	Version: version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&scenariosDir, "scenarios", "scenarios", "directory with scenario and state files")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.SetVersionTemplate("realign version " + version + "\n")
}
