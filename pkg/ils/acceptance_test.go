package ils

import (
	"math/rand"
	"testing"
)

func TestDefaultAcceptance_EmptyHistory_OnlyExistingOrNew(t *testing.T) {
	h := NewHistory[int](4, 100, 100)
	a := NewDefaultAcceptance[int]()
	rng := rand.New(rand.NewSource(1))

	existing := scoredInt(10, 100)
	newSolution := scoredInt(20, 100)

	seenExisting, seenNew := false, false
	for i := 0; i < 200; i++ {
		chosen := a.Choose(existing, newSolution, h, rng)
		switch chosen.Solution.(intSolution).value {
		case 10:
			seenExisting = true
		case 20:
			seenNew = true
		default:
			t.Fatalf("unexpected choice %v with empty history", chosen.Solution)
		}
	}
	if !seenExisting || !seenNew {
		t.Errorf("expected to see both existing and new drawn over 200 samples, got existing=%v new=%v", seenExisting, seenNew)
	}
}

func TestDefaultAcceptance_NonEmptyHistory_CanDrawBest(t *testing.T) {
	h := NewHistory[int](4, 100, 100)
	h.LocalSearchChoseSolution(scoredInt(99, 100))
	a := NewDefaultAcceptance[int]()
	rng := rand.New(rand.NewSource(2))

	existing := scoredInt(10, 100)
	newSolution := scoredInt(20, 100)

	seenBest := false
	for i := 0; i < 500; i++ {
		chosen := a.Choose(existing, newSolution, h, rng)
		if chosen.Solution.(intSolution).value == 99 {
			seenBest = true
			break
		}
	}
	if !seenBest {
		t.Errorf("expected the random-best branch to be drawn at least once over 500 samples")
	}
}

func TestDefaultAcceptance_WeightsBiasTowardNew(t *testing.T) {
	h := NewHistory[int](4, 100, 100)
	a := NewDefaultAcceptance[int]()
	rng := rand.New(rand.NewSource(3))

	existing := scoredInt(10, 100)
	newSolution := scoredInt(20, 100)

	newCount := 0
	const samples = 1000
	for i := 0; i < samples; i++ {
		if a.Choose(existing, newSolution, h, rng).Solution.(intSolution).value == 20 {
			newCount++
		}
	}
	// Weight 5 of (1 existing + 5 new) = 5/6 ~ 83%; assert it dominates.
	if newCount < samples/2 {
		t.Errorf("expected new solution to be chosen a clear majority of the time, got %d/%d", newCount, samples)
	}
}
