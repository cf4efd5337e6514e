// 排班求解器命令行入口
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/paiban/ils/internal/config"
	"github.com/paiban/ils/pkg/domain/schedule"
	"github.com/paiban/ils/pkg/ils"
	"github.com/paiban/ils/pkg/logger"
	"github.com/paiban/ils/pkg/seedhash"
)

func main() {
	employeeCount := flag.Int("employees", 7, "number of employees")
	days := flag.Int("days", 30, "number of days to schedule")
	startDateFlag := flag.String("start-date", "", "start date, RFC3339 date (2006-01-02); defaults to today")
	seed := flag.String("seed", "", "string seed, defaults to the engine config's default seed")
	logLevel := flag.String("log-level", "info", "log level: debug/info/warn/error")
	flag.Parse()

	logger.Init(logger.Config{Level: *logLevel, Format: "console"})

	cfg := config.LoadEngineConfig()
	if *seed != "" {
		cfg.Seed = *seed
	}

	startDate := time.Now().UTC()
	if *startDateFlag != "" {
		parsed, err := time.Parse("2006-01-02", *startDateFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -start-date: %v\n", err)
			os.Exit(2)
		}
		startDate = parsed
	}
	endDate := startDate.AddDate(0, 0, *days-1)

	employees := make([]uuid.UUID, *employeeCount)
	for i := range employees {
		employees[i] = uuid.New()
	}

	initialGen, err := schedule.NewInitialGenerator(startDate, endDate, employees)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid schedule parameters: %v\n", err)
		os.Exit(2)
	}

	hashedSeed := seedhash.Int64(cfg.Seed)
	localSearchRNG := rand.New(rand.NewSource(hashedSeed))
	iteratedSearchRNG := rand.New(rand.NewSource(hashedSeed))

	calculator := schedule.NewCalculator(nil)
	localSearch := ils.NewLocalSearch[string](
		schedule.MoveProposer{},
		calculator,
		uint64(cfg.LocalSearchMaxIterations),
		cfg.WindowSize,
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
		schedule.NewPerturbation(),
		history,
		ils.NewDefaultAcceptance[string](),
		ils.Config{
			MaxIterations:            cfg.IteratedLocalSearchMaxIterations,
			MaxAllowNoImprovementFor: cfg.MaxAllowNoImprovementFor,
			RestartInterval:          cfg.RestartInterval,
		},
		iteratedSearchRNG,
	)

	schedulerLogger := logger.NewSchedulerLogger()
	schedulerLogger.StartSchedule(cfg.Seed, *employeeCount, *days)

	started := time.Now()
	search.Run()
	elapsed := time.Since(started)

	best := search.GetBestSolution()
	score := best.Score.(schedule.Score)
	schedulerLogger.ScheduleComplete(cfg.Seed, elapsed, score.Hard)
	if score.Hard != 0 {
		schedulerLogger.ConstraintViolation("hard_score", fmt.Sprintf("schedule %s left with hard_score=%g after the iteration budget was exhausted", cfg.Seed, score.Hard))
	}

	fmt.Printf("employees: %d\ndays: %d\nseed: %s\nhard_score: %g\nsoft_score: %g\n\n%s\n",
		*employeeCount, *days, cfg.Seed, score.Hard, score.Soft, best.Solution.String())

	if score.Hard != 0 {
		os.Exit(1)
	}
}
