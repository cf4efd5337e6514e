package ackley

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paiban/ils/pkg/ils"
)

func runAckley(dimensions int, seed int64, iteratedMaxIterations uint64) ils.ScoredSolution[string] {
	localSearchRNG := rand.New(rand.NewSource(seed))
	iteratedSearchRNG := rand.New(rand.NewSource(seed))

	localSearch := ils.NewLocalSearch[string](
		NewMoveProposer(dimensions),
		NewCalculator(),
		100_000, // local_search_max_iterations, matching the reference benchmark
		256,     // window_size
		16,      // best_solutions_capacity
		10_000,  // all_solutions_capacity
		10_000,  // all_solution_iteration_expiry
		localSearchRNG,
	)
	history := ils.NewHistory[string](16, 10_000, 10_000)

	search := ils.New[string](
		InitialGenerator{Dimensions: dimensions},
		NewCalculator(),
		localSearch,
		NewPerturbation(),
		history,
		ils.NewDefaultAcceptance[string](),
		ils.Config{
			MaxIterations:            iteratedMaxIterations,
			MaxAllowNoImprovementFor: 1,
			RestartInterval:          50,
		},
		iteratedSearchRNG,
	)

	search.Run()
	return search.GetBestSolution()
}

func TestAckley_Dimensions2_Seed0_ReachesKnownOptimum(t *testing.T) {
	result := runAckley(2, 0, 2_000)
	score := result.Score.(Score)
	if math.Abs(score.Value()) > 1e-2 {
		t.Fatalf("expected |score| <= 1e-2, got %g for solution %s", score.Value(), result.Solution.String())
	}
}

func TestAckley_Dimensions10_Seed0_ReachesKnownOptimum(t *testing.T) {
	result := runAckley(10, 0, 4_000)
	score := result.Score.(Score)
	if math.Abs(score.Value()) > 1e-2 {
		t.Fatalf("expected |score| <= 1e-2, got %g for solution %s", score.Value(), result.Solution.String())
	}
}

func TestAckley_Dimensions20_Seed0_ReachesKnownOptimum(t *testing.T) {
	result := runAckley(20, 0, 8_000)
	score := result.Score.(Score)
	if math.Abs(score.Value()) > 1e-2 {
		t.Fatalf("expected |score| <= 1e-2, got %g for solution %s", score.Value(), result.Solution.String())
	}
}

func TestFunction_Calculate_ZeroAtOrigin(t *testing.T) {
	f := DefaultFunction()
	for _, dims := range []int{1, 2, 5} {
		origin := make([]float64, dims)
		got := f.Calculate(origin)
		if math.Abs(got) > 1e-9 {
			t.Errorf("expected Ackley(0,...,0) ~ 0 for %d dimensions, got %g", dims, got)
		}
	}
}

func TestLocalSearch_AtGlobalMinimum_DoesNotMove(t *testing.T) {
	dimensions := 2
	rng := rand.New(rand.NewSource(42))
	localSearch := ils.NewLocalSearch[string](
		NewMoveProposer(dimensions),
		NewCalculator(),
		100_000,
		256,
		16,
		10_000,
		10_000,
		rng,
	)

	start := NewSolution(make([]float64, dimensions))
	result := localSearch.Execute(start, 1)

	if result.Solution.Key() != start.Key() {
		t.Errorf("expected descent from the global minimum to stay put, moved to %s", result.Solution.String())
	}
}

func TestLocalSearch_ImprovesOnRandomStart(t *testing.T) {
	dimensions := 2
	solverRNG := rand.New(rand.NewSource(42))
	localSearch := ils.NewLocalSearch[string](
		NewMoveProposer(dimensions),
		NewCalculator(),
		100_000,
		256,
		16,
		10_000,
		10_000,
		solverRNG,
	)

	initialRNG := rand.New(rand.NewSource(42))
	start := InitialGenerator{Dimensions: dimensions}.Generate(initialRNG)
	startScore := NewCalculator().Score(start).Score.(Score)

	end := localSearch.Execute(start, 1)
	endScore := end.Score.(Score)

	if endScore.Value() >= startScore.Value() {
		t.Errorf("expected descent to improve on the random start: start=%g end=%g", startScore.Value(), endScore.Value())
	}
	if end.Solution.Key() == start.Key() {
		t.Errorf("expected descent to move away from the random start")
	}
}
