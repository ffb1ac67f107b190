package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stacklab/realign/internal/config"
	"github.com/stacklab/realign/internal/display"
	"github.com/stacklab/realign/internal/scenario"
	"github.com/stacklab/realign/internal/search"
)

var (
	identifyIterations  int
	identifySeed        int64
	identifyExploration float64
	identifyThreshold   float64
	identifyOut         string
)

var identifyCmd = &cobra.Command{
	Use:   "identify <scenario>",
	Short: "Search for the interventions that fix a misaligned scene",
	Long: `Run Monte Carlo Tree Search over the scenario's intervention space to
discover which entities drifted out of alignment and which directional
shifts correct them.

The result is written to results_<scenario>.json and consumed by
'realign recover'. A fixed --seed reproduces the search exactly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadWorkspaceConfig()
		if err != nil {
			return err
		}
		d := display.New(noColor)

		report, err := runIdentification(cmd, cfg, d, args[0])
		if err != nil {
			return err
		}

		if !report.Solved {
			d.Warning("iteration budget exhausted without full alignment (best effort result)")
		}
		return nil
	},
}

func init() {
	identifyCmd.Flags().IntVar(&identifyIterations, "iterations", 0, "iteration budget (default from config)")
	identifyCmd.Flags().Int64Var(&identifySeed, "seed", 0, "random seed (default from config)")
	identifyCmd.Flags().Float64Var(&identifyExploration, "exploration", -1, "UCT exploration constant (default from config)")
	identifyCmd.Flags().Float64Var(&identifyThreshold, "threshold", 0, "per-axis alignment threshold (default from config)")
	identifyCmd.Flags().StringVar(&identifyOut, "out", ".", "directory for the results file")
	rootCmd.AddCommand(identifyCmd)
}

// runIdentification executes the search stage for one scenario and persists
// the stage-boundary report
func runIdentification(cmd *cobra.Command, cfg *config.Config, d *display.Display, name string) (*scenario.Report, error) {
	sc, err := scenario.LoadScenario(scenariosDir, name)
	if err != nil {
		return nil, err
	}
	stateFile, err := scenario.LoadStateFile(scenariosDir)
	if err != nil {
		return nil, err
	}
	root, err := stateFile.ToWorld(sc.Reference)
	if err != nil {
		return nil, err
	}
	space, err := search.BuildSpace(sc.InterventionSpace)
	if err != nil {
		return nil, err
	}

	iterations := cfg.Search.Iterations
	if identifyIterations > 0 {
		iterations = identifyIterations
	}
	seed := seedFlag(cmd.Flags(), identifySeed, cfg.Search.Seed)
	exploration := cfg.Search.ExplorationConstant
	if identifyExploration >= 0 {
		exploration = identifyExploration
	}
	alignmentThreshold := cfg.World.AlignmentThreshold
	if identifyThreshold > 0 {
		alignmentThreshold = identifyThreshold
	}

	d.Banner("IDENTIFY", fmt.Sprintf("scenario %s: %d root actions, depth %d, threshold %g",
		sc.Name, len(space), sc.MaxRolloutDepth, sc.TerminationThreshold))

	initial := root.Evaluate(alignmentThreshold)
	if misaligned := initial.Misaligned(); len(misaligned) > 0 {
		d.Info("drift", fmt.Sprintf("misaligned entities: %v", misaligned))
	} else {
		d.Info("drift", "no entity currently misaligned")
	}

	engine, err := search.New(search.Config{
		Space:                space,
		MaxRolloutDepth:      sc.MaxRolloutDepth,
		Iterations:           iterations,
		ExplorationConstant:  exploration,
		TerminationThreshold: sc.TerminationThreshold,
		AlignmentThreshold:   alignmentThreshold,
		Shaping: search.ShapingConfig{
			ShiftBonus:   sc.RewardShaping.ShiftBonus,
			DepthPenalty: sc.RewardShaping.DepthPenalty,
			Dense:        cfg.Search.DenseShaping,
		},
		Seed: seed,
		Progress: func(iteration int, reward float64, depth int) {
			if iteration%1000 == 0 && iteration > 0 {
				d.Info("search", fmt.Sprintf("iteration %d, reward %.3f, depth %d", iteration, reward, depth))
			}
		},
	})
	if err != nil {
		return nil, err
	}

	result, err := engine.Search(root)
	if err != nil {
		return nil, err
	}

	report := scenario.NewReport(sc.Name, uuid.NewString(), result)
	if err := scenario.SaveReport(identifyOut, report); err != nil {
		return nil, err
	}

	if result.Solved {
		d.Success(fmt.Sprintf("solved in %d iterations (%d rollouts)", result.Iterations, result.Rollouts))
	} else {
		d.Warning(fmt.Sprintf("unsolved after %d iterations (%d rollouts), best reward %.3f",
			result.Iterations, result.Rollouts, result.BestReward))
	}
	for i, iv := range result.Interventions {
		d.Step(i+1, iv.String())
	}
	d.Info("saved", scenario.ReportPath(identifyOut, sc.Name))

	return report, nil
}
