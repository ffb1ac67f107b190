package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/stacklab/realign/internal/config"
	"github.com/stacklab/realign/internal/display"
	"github.com/stacklab/realign/internal/pddl"
	"github.com/stacklab/realign/internal/planner"
	"github.com/stacklab/realign/internal/recovery"
	"github.com/stacklab/realign/internal/scenario"
	"github.com/stacklab/realign/internal/workspace"
)

var (
	recoverDomain  string
	recoverWorkDir string
	recoverTimeout int
	recoverOut     string
)

var recoverCmd = &cobra.Command{
	Use:   "recover <scenario>",
	Short: "Plan physical recovery for an identified set of corrections",
	Long: `Read the results_<scenario>.json produced by 'realign identify', build a
target-tricked planning problem for the corrected entities, and solve it
with the external Fast Downward planner.

The decoded plan is written to plan_<scenario>.json. An infeasible
problem (the planner proves no plan exists) is reported as a warning,
not a failure.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wsDir, cfg, err := loadWorkspaceConfig()
		if err != nil {
			return err
		}
		d := display.New(noColor)

		report, err := scenario.LoadReport(recoverOut, args[0])
		if err != nil {
			return fmt.Errorf("no identification result for %q (run 'realign identify' first): %w", args[0], err)
		}
		_, err = runRecovery(cmd, wsDir, cfg, d, args[0], report)
		return err
	},
}

func init() {
	recoverCmd.Flags().StringVar(&recoverDomain, "domain", "", "path to the domain file (default: workspace domain, then built-in)")
	recoverCmd.Flags().StringVar(&recoverWorkDir, "work-dir", "", "planner working directory (default: temp dir)")
	recoverCmd.Flags().IntVar(&recoverTimeout, "timeout", 0, "planner timeout in seconds (default from config)")
	recoverCmd.Flags().StringVar(&recoverOut, "out", ".", "directory with the results file and for the plan artifact")
	rootCmd.AddCommand(recoverCmd)
}

// runRecovery executes the planning stage for one scenario against an
// existing identification report
func runRecovery(cmd *cobra.Command, wsDir string, cfg *config.Config, d *display.Display, name string, report *scenario.Report) (*recovery.RunResult, error) {
	sc, err := scenario.LoadScenario(scenariosDir, name)
	if err != nil {
		return nil, err
	}

	workDir := recoverWorkDir
	if workDir == "" {
		workDir, err = os.MkdirTemp("", "realign-planner-")
		if err != nil {
			return nil, err
		}
		defer os.RemoveAll(workDir)
	}

	domainPath := recoverDomain
	if domainPath == "" {
		domainPath = workspace.DomainPath(wsDir)
	}
	domainPath, err = pddl.ResolveDomain(domainPath, workDir)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.Planner.TimeoutSecs) * time.Second
	if recoverTimeout > 0 {
		timeout = time.Duration(recoverTimeout) * time.Second
	}

	solver := planner.NewFastDownward(cfg.Planner.Binary, cfg.Planner.Strategy, workDir, timeout)

	d.Banner("RECOVER", fmt.Sprintf("scenario %s: run %s", sc.Name, report.RunID))

	runner := recovery.New(recovery.Config{
		ScenariosDir: scenariosDir,
		DomainPath:   domainPath,
		OutputDir:    recoverOut,
	}, solver, d)

	result, err := runner.Run(cmd.Context(), sc, report)
	if err != nil {
		return nil, err
	}

	if !result.Infeasible {
		for i, action := range result.Artifact.Actions {
			d.Step(i+1, action.String())
		}
	}
	d.Info("saved", scenario.PlanArtifactPath(recoverOut, sc.Name))
	d.Info("took", result.Duration.Round(time.Millisecond).String())

	return result, nil
}
