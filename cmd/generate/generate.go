// Package generate contains the command to generate, solve and export one
// maze.
package generate

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazegen/export"
	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/logger"
	"github.com/katalvlaran/mazegen/maze"
	"github.com/katalvlaran/mazegen/pathfinder"
)

const (
	sizeFlag          = "size"
	seedFlag          = "seed"
	startFlag         = "start"
	goalFlag          = "goal"
	minValidPathsFlag = "min-valid-paths"
	algorithmFlag     = "algorithm"
	outputFlag        = "output"
	drawSolutionFlag  = "draw-solution"
	logFormatFlag     = "log-format"
	logLevelFlag      = "log-level"
)

func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and export it as HTML or PNG",
		Long: `Generate a seeded maze, solve it with the configured search strategy,
and export the result to a file picked by the output extension.`,
		RunE: runGenerate,
		Args: cobra.NoArgs,
	}

	flags := cmd.Flags()

	flags.Int(sizeFlag, 40, "side of the square maze grid")
	flags.Int64(seedFlag, 42, "random seed for reproducible generation")
	flags.IntSlice(startFlag, []int{1, 1}, "start position as row,col")
	flags.IntSlice(goalFlag, nil, "goal position as row,col (default size-2,size-2)")
	flags.Int(minValidPathsFlag, 3, "minimum number of structurally distinct start-goal routes")
	flags.String(algorithmFlag, "bfs", "search strategy used to validate and solve the maze")
	flags.String(outputFlag, "", "output file path, .html or .png (default {size}x{size}_seed{seed}_paths{N}_{ALG}_maze.html)")
	flags.Bool(drawSolutionFlag, false, "draw the solved route in the exported maze")
	flags.String(logFormatFlag, "text", "log output format (text or json)")
	flags.String(logLevelFlag, "info", "log level (none, debug, info, warn, error, panic, fatal)")

	// NOTE: if you add a new flag here, update flags.go too.

	cmd.PreRun = bindGenerateFlagsFunc(flags)

	return cmd
}

func runGenerate(_ *cobra.Command, _ []string) error {
	log := logger.MustNewLogger(viper.GetString(logFormatFlag), viper.GetString(logLevelFlag))

	size := viper.GetInt(sizeFlag)
	seed := viper.GetInt64(seedFlag)
	minValidPaths := viper.GetInt(minValidPathsFlag)

	alg, err := pathfinder.ParseAlgorithm(viper.GetString(algorithmFlag))
	if err != nil {
		return err
	}
	start, err := position(viper.GetIntSlice(startFlag))
	if err != nil {
		return fmt.Errorf("--%s: %w", startFlag, err)
	}
	goal := grid.Pos(size-2, size-2)
	if raw := viper.GetIntSlice(goalFlag); len(raw) > 0 {
		if goal, err = position(raw); err != nil {
			return fmt.Errorf("--%s: %w", goalFlag, err)
		}
	}
	output := viper.GetString(outputFlag)
	if output == "" {
		output = defaultOutputName(size, seed, minValidPaths, alg)
	}

	m, err := maze.New(seed, size, start, goal,
		maze.WithMinValidPaths(minValidPaths),
		maze.WithAlgorithm(alg),
	)
	if err != nil {
		return err
	}

	started := time.Now()
	if err = m.GenerateMaze(alg); err != nil {
		return err
	}

	log.Info("maze generated",
		zap.Int("size", size),
		zap.Int64("seed", seed),
		zap.Stringer("algorithm", alg),
		zap.Int("path_length", len(m.Path())),
		zap.Duration("elapsed", time.Since(started)),
	)

	if err = export.File(output, m, viper.GetBool(drawSolutionFlag)); err != nil {
		return err
	}
	log.Info("maze exported", zap.String("output", output))

	return nil
}

// position converts a two-int flag value to a grid position.
func position(raw []int) (grid.Position, error) {
	if len(raw) != 2 {
		return grid.Position{}, fmt.Errorf("want row,col, got %v", raw)
	}
	return grid.Pos(raw[0], raw[1]), nil
}

// defaultOutputName derives the output file name from the generation
// parameters, e.g. 40x40_seed42_paths3_BFS_maze.html.
func defaultOutputName(size int, seed int64, minValidPaths int, alg pathfinder.Algorithm) string {
	return fmt.Sprintf("%dx%d_seed%d_paths%d_%s_maze.html", size, size, seed, minValidPaths, alg)
}
