// N 皇后求解器命令行入口
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/paiban/ils/internal/config"
	"github.com/paiban/ils/pkg/domain/nqueens"
	"github.com/paiban/ils/pkg/ils"
	"github.com/paiban/ils/pkg/logger"
	"github.com/paiban/ils/pkg/seedhash"
)

func main() {
	boardSize := flag.Int("board-size", 8, "board size (N in N-queens)")
	seed := flag.String("seed", "", "string seed, defaults to the engine config's default seed")
	logLevel := flag.String("log-level", "info", "log level: debug/info/warn/error")
	flag.Parse()

	logger.Init(logger.Config{Level: *logLevel, Format: "console"})

	cfg := config.LoadEngineConfig()
	if *seed != "" {
		cfg.Seed = *seed
	}

	initialGen, err := nqueens.NewInitialGenerator(*boardSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -board-size: %v\n", err)
		os.Exit(2)
	}

	hashedSeed := seedhash.Int64(cfg.Seed)
	localSearchRNG := rand.New(rand.NewSource(hashedSeed))
	iteratedSearchRNG := rand.New(rand.NewSource(hashedSeed))

	calculator := nqueens.Calculator{}
	localSearch := ils.NewLocalSearch[string](
		nqueens.MoveProposer{},
		calculator,
		uint64(cfg.LocalSearchMaxIterations),
		*boardSize*5,
		cfg.BestSolutionsCapacity,
		cfg.AllSolutionsCapacity,
		cfg.AllSolutionIterationExpiry,
		localSearchRNG,
	)
	history := ils.NewHistory[string](cfg.BestSolutionsCapacity, cfg.AllSolutionsCapacity, cfg.AllSolutionIterationExpiry)

	search := ils.New[string](
		initialGen,
		calculator,
		localSearch,
		nqueens.NewPerturbation(),
		history,
		ils.NewDefaultAcceptance[string](),
		ils.Config{
			MaxIterations:            cfg.IteratedLocalSearchMaxIterations,
			MaxAllowNoImprovementFor: cfg.MaxAllowNoImprovementFor,
			RestartInterval:          cfg.RestartInterval,
		},
		iteratedSearchRNG,
	)

	logger.Info().
		Int("board_size", *boardSize).
		Str("seed", cfg.Seed).
		Msg("starting n-queens search")

	search.Run()

	best := search.GetBestSolution()
	score := best.Score.(nqueens.Score)
	fmt.Printf("board size: %d\nseed: %s\nconflicts: %s\n\n%s\n", *boardSize, cfg.Seed, score.String(), best.Solution.String())

	if score != 0 {
		os.Exit(1)
	}
}
