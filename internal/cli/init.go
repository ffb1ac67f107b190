package cli

import (
	"github.com/spf13/cobra"
	"github.com/stacklab/realign/internal/display"
	"github.com/stacklab/realign/internal/workspace"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new realign workspace",
	Long: `Initialize a new realign workspace in the current directory.

Creates .realign/ folder with:
  - config.yaml   Planner, search, and world settings
  - domain.pddl   The recovery-blocks planning domain

and an empty scenarios/ directory for scenario and state files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := workspace.Init(initForce); err != nil {
			return err
		}
		d := display.New(noColor)
		d.Success("workspace initialized")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing workspace")
	rootCmd.AddCommand(initCmd)
}
