package ils

import (
	"math/rand"
	"testing"
)

func newTestLocalSearch(seed int64, ceiling int) *LocalSearch[int] {
	rng := rand.New(rand.NewSource(seed))
	return NewLocalSearch[int](
		intMoveProposer{},
		intCalculator{},
		1000,
		8,
		16,
		10_000,
		10_000,
		rng,
	)
}

func TestLocalSearch_FindsZeroMinimum(t *testing.T) {
	ls := newTestLocalSearch(1, 50)
	start := intSolution{value: 37, ceiling: 50}

	result := ls.Execute(start, 1)

	if int(result.Score.(intScore)) != 0 {
		t.Errorf("expected descent to reach score 0, got %d", result.Score.(intScore))
	}
}

func TestLocalSearch_NeverWorsensStartingScore(t *testing.T) {
	tests := []struct {
		name  string
		start int
	}{
		{"already optimal", 0},
		{"near optimal", 1},
		{"far from optimal", 49},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := newTestLocalSearch(7, 50)
			startSolution := intSolution{value: tt.start, ceiling: 50}
			startScore := intCalculator{}.Score(startSolution).Score

			result := ls.Execute(startSolution, 1)

			if compareScore(result.Score, startScore) > 0 {
				t.Errorf("descent from %d worsened score: start=%v end=%v", tt.start, startScore, result.Score)
			}
		})
	}
}

func TestLocalSearch_StopsImmediatelyWhenStartIsBest(t *testing.T) {
	ls := newTestLocalSearch(3, 50)
	start := intSolution{value: 0, ceiling: 50}

	result := ls.Execute(start, 1)

	if result.Solution.(intSolution).value != 0 {
		t.Errorf("expected local search to stay at the optimal starting solution, got %v", result.Solution)
	}
}

func TestLocalSearch_RespectsMaxIterations(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	ls := NewLocalSearch[int](
		intMoveProposer{},
		intCalculator{},
		2, // max_iterations
		8,
		16,
		10_000,
		10_000,
		rng,
	)
	start := intSolution{value: 1000, ceiling: 1000}

	result := ls.Execute(start, 1000)

	// With only 2 iterations allowed and a far starting point, the
	// descent cannot possibly have reached the optimum.
	if result.Score.IsBest() {
		t.Fatalf("did not expect max_iterations=2 from distance 1000 to reach the optimum")
	}
}

func TestLocalSearch_TabuFilteringExcludesRecentlySeen(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	ls := NewLocalSearch[int](
		intMoveProposer{},
		intCalculator{},
		100,
		8,
		16,
		10_000,
		10_000,
		rng,
	)
	// Force everything reachable from 5 within one step to already be tabu,
	// so the very first iteration finds an empty (post-filter) neighborhood.
	ls.history.SeenSolution(scoredInt(4, 10))
	ls.history.SeenSolution(scoredInt(6, 10))
	ls.history.SeenSolution(scoredInt(5, 10))

	start := intSolution{value: 5, ceiling: 10}
	result := ls.Execute(start, 1)

	if result.Solution.(intSolution).value != 5 {
		t.Errorf("expected descent to halt immediately with all neighbors tabu, got %v", result.Solution)
	}
}
