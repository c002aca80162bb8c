package cmd

import (
	"fmt"

	"github.com/samuelfneumann/goai/mdp/gridworld"
	"github.com/samuelfneumann/goai/mdp/valueiteration"
	"github.com/samuelfneumann/goai/tracker"
	"github.com/samuelfneumann/goai/utils/matutils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type valueIterationSettings struct {
	valueiteration.Config `mapstructure:",squash"`

	Grid         string  `mapstructure:"grid"`
	Noise        float64 `mapstructure:"noise"`
	LivingReward float64 `mapstructure:"living-reward"`
	Track        string  `mapstructure:"track"`
}

func newValueIterationCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "valueiteration",
		Aliases: []string{"vi"},
		Short:   "Plan in a gridworld with value iteration",
		Long: "Valueiteration runs value iteration on a built-in gridworld " +
			"and prints the state values and greedy policy.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var s struct {
				ValueIteration valueIterationSettings `mapstructure:"valueiteration"`
			}
			if err := a.unmarshal(&s); err != nil {
				return err
			}
			return runValueIteration(cmd, a.logger, s.ValueIteration)
		},
	}

	flags := cmd.Flags()
	flags.StringP("grid", "g", "BookGrid", fmt.Sprintf("gridworld layout, "+
		"one of %v", gridworld.Names()))
	flags.Float64P("discount", "d", 0.9, "discount factor")
	flags.Float64P("noise", "n", 0.2, "probability of moving in an "+
		"unintended direction")
	flags.Float64P("living-reward", "r", 0, "reward for each move")
	flags.IntP("iterations", "i", 100, "number of value iteration sweeps")
	flags.String("track", "", "file to save the residual of each sweep to")
	a.bind(flags, "valueiteration", "grid", "discount", "noise",
		"living-reward", "iterations", "track")

	return cmd
}

func runValueIteration(cmd *cobra.Command, logger *zap.Logger,
	s valueIterationSettings) error {
	layout, err := gridworld.Layout(s.Grid)
	if err != nil {
		return err
	}
	g, err := gridworld.New(layout, s.Noise, s.LivingReward)
	if err != nil {
		return err
	}

	agent, err := valueiteration.New[gridworld.Cell, gridworld.Action](g,
		s.Config, logger)
	if err != nil {
		return err
	}

	if s.Track != "" {
		series := tracker.NewSeries(s.Track)
		tracker.TrackAll(series, agent.Residuals())
		if err := series.Save(); err != nil {
			return err
		}
		logger.Info("saved residuals", zap.String("file", s.Track))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Values after %d iterations:\n%s\n\n", s.Iterations,
		matutils.FormatPrecision(g.ValueGrid(agent.Value), 2))
	fmt.Fprintf(out, "Policy:\n%s", g.RenderPolicy(agent.Policy))
	fmt.Fprintf(out, "Value of start state: %.4f\n", agent.Value(g.Start()))
	return nil
}
