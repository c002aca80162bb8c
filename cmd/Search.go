package cmd

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/goai/search"
	"github.com/samuelfneumann/goai/search/maze"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type searchSettings struct {
	Layout    string `mapstructure:"layout"`
	Algorithm string `mapstructure:"algorithm"`
	Heuristic string `mapstructure:"heuristic"`
	Cost      string `mapstructure:"cost"`
}

var heuristics = map[string]search.Heuristic[maze.Position, maze.Direction]{
	"null":      search.NullHeuristic[maze.Position, maze.Direction],
	"manhattan": maze.ManhattanHeuristic,
	"euclidean": maze.EuclideanHeuristic,
}

var costs = map[string]maze.CostFn{
	"unit": maze.UnitCost,
	"east": maze.StayEastCost,
	"west": maze.StayWestCost,
}

func newSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find a path through a maze",
		Long: "Search finds a path from the start (P) to the goal (.) of a " +
			"maze layout, given by name or by file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var s struct {
				Search searchSettings `mapstructure:"search"`
			}
			if err := a.unmarshal(&s); err != nil {
				return err
			}
			return runSearch(cmd, a.logger, s.Search)
		},
	}

	flags := cmd.Flags()
	flags.StringP("layout", "l", "tinyMaze", "maze layout name or file")
	flags.StringP("algorithm", "a", "bfs", "search algorithm: dfs, bfs, "+
		"ucs or astar")
	flags.String("heuristic", "manhattan", "A* heuristic: null, manhattan "+
		"or euclidean")
	flags.String("cost", "unit", "step cost: unit, east or west")
	a.bind(flags, "search", "layout", "algorithm", "heuristic", "cost")

	return cmd
}

func runSearch(cmd *cobra.Command, logger *zap.Logger,
	s searchSettings) error {
	layout, err := maze.LoadLayout(s.Layout)
	if err != nil {
		return err
	}

	cost, ok := costs[s.Cost]
	if !ok {
		return fmt.Errorf("unknown cost function %q", s.Cost)
	}

	problem, err := maze.NewPositionProblem(layout, cost)
	if err != nil {
		return err
	}

	var actions []maze.Direction
	switch strings.ToLower(s.Algorithm) {
	case "dfs":
		actions, err = search.DepthFirst[maze.Position, maze.Direction](problem)
	case "bfs":
		actions, err = search.BreadthFirst[maze.Position, maze.Direction](
			problem)
	case "ucs":
		actions, err = search.UniformCost[maze.Position, maze.Direction](
			problem)
	case "astar":
		heuristic, ok := heuristics[s.Heuristic]
		if !ok {
			return fmt.Errorf("unknown heuristic %q", s.Heuristic)
		}
		actions, err = search.AStar[maze.Position, maze.Direction](problem,
			heuristic)
	default:
		return fmt.Errorf("unknown search algorithm %q", s.Algorithm)
	}
	if err != nil {
		return err
	}

	total := problem.CostOfActions(actions)
	logger.Info("search finished", zap.String("layout", s.Layout),
		zap.String("algorithm", s.Algorithm),
		zap.Float64("cost", total), zap.Int("expanded", problem.Expanded()))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Path found with total cost of %v in %d expanded "+
		"states\n", total, problem.Expanded())

	path := make([]string, len(actions))
	for i, a := range actions {
		path[i] = string(a)
	}
	fmt.Fprintln(out, strings.Join(path, " "))
	return nil
}
