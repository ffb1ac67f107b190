package cli

import (
	"github.com/spf13/cobra"
	"github.com/stacklab/realign/internal/display"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Identify corrections and plan recovery in one pass",
	Long: `Run the full pipeline: search for the corrective interventions, then
feed the corrected entities straight into the external planner. Equivalent
to 'realign identify' followed by 'realign recover' with shared output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wsDir, cfg, err := loadWorkspaceConfig()
		if err != nil {
			return err
		}
		d := display.New(noColor)

		report, err := runIdentification(cmd, cfg, d, args[0])
		if err != nil {
			return err
		}
		recoverOut = identifyOut
		_, err = runRecovery(cmd, wsDir, cfg, d, args[0], report)
		return err
	},
}

func init() {
	runCmd.Flags().IntVar(&identifyIterations, "iterations", 0, "iteration budget (default from config)")
	runCmd.Flags().Int64Var(&identifySeed, "seed", 0, "random seed (default from config)")
	runCmd.Flags().Float64Var(&identifyExploration, "exploration", -1, "UCT exploration constant (default from config)")
	runCmd.Flags().Float64Var(&identifyThreshold, "threshold", 0, "per-axis alignment threshold (default from config)")
	runCmd.Flags().StringVar(&recoverDomain, "domain", "", "path to the domain file (default: workspace domain, then built-in)")
	runCmd.Flags().StringVar(&recoverWorkDir, "work-dir", "", "planner working directory (default: temp dir)")
	runCmd.Flags().IntVar(&recoverTimeout, "timeout", 0, "planner timeout in seconds (default from config)")
	runCmd.Flags().StringVar(&identifyOut, "out", ".", "directory for result and plan files")
	rootCmd.AddCommand(runCmd)
}
