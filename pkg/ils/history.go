package ils

import (
	"math/rand"
	"sort"
)

// recentEntry pairs a scored solution with the iteration at which it was
// inserted into the recent deque, for age-based expiry.
type recentEntry[K comparable] struct {
	scored    ScoredSolution[K]
	iteration uint64
}

// History is the bounded memory shared by every descent: an ordered
// best-set (top-k by score) and a FIFO deque of recently-seen solutions
// that doubles as the LocalSearch tabu set. The deque is kept oldest-first
// (index 0) so expiry pops from the front, the same shape as
// pkg/scheduler/optimizer/local_search.go's TabuList.Add: append new
// entries and re-slice off the oldest.
type History[K comparable] struct {
	bestSolutions   []ScoredSolution[K] // sorted ascending by (score, tiebreak)
	bestCapacity    int
	recent          []recentEntry[K] // oldest-first
	recentLookup    map[K]struct{}
	recentCapacity  int
	iterationExpiry uint64
	iterationCount  uint64
}

// NewHistory constructs an empty History with three capacities: the
// best-set size cap, the recent-deque size cap, and the age (in LS steps)
// after which a recent entry is retired.
func NewHistory[K comparable](bestSolutionsCapacity, allSolutionsCapacity int, allSolutionIterationExpiry uint64) *History[K] {
	return &History[K]{
		bestSolutions:   make([]ScoredSolution[K], 0, bestSolutionsCapacity),
		bestCapacity:    bestSolutionsCapacity,
		recent:          make([]recentEntry[K], 0, allSolutionsCapacity),
		recentLookup:    make(map[K]struct{}, allSolutionsCapacity),
		recentCapacity:  allSolutionsCapacity,
		iterationExpiry: allSolutionIterationExpiry,
	}
}

func compareScore(a, b Score) int {
	if a.Less(b) {
		return -1
	}
	if b.Less(a) {
		return 1
	}
	return 0
}

// compareScoredSolution orders first by score, then by the solution's
// string form as a stable tie-break.
func compareScoredSolution[K comparable](a, b ScoredSolution[K]) int {
	if c := compareScore(a.Score, b.Score); c != 0 {
		return c
	}
	as, bs := a.Solution.String(), b.Solution.String()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func (h *History[K]) insertBest(s ScoredSolution[K]) {
	idx := sort.Search(len(h.bestSolutions), func(i int) bool {
		return compareScoredSolution(s, h.bestSolutions[i]) < 0
	})
	h.bestSolutions = append(h.bestSolutions, ScoredSolution[K]{})
	copy(h.bestSolutions[idx+1:], h.bestSolutions[idx:])
	h.bestSolutions[idx] = s
}

// LocalSearchChoseSolution admits s into the best-set. Below capacity it is
// always admitted; once full it replaces the current worst member iff its
// score is no worse.
func (h *History[K]) LocalSearchChoseSolution(s ScoredSolution[K]) {
	if h.bestCapacity == 0 {
		return
	}
	if len(h.bestSolutions) < h.bestCapacity {
		h.insertBest(s)
		return
	}
	worst := h.bestSolutions[len(h.bestSolutions)-1]
	if compareScore(s.Score, worst.Score) <= 0 {
		h.bestSolutions = h.bestSolutions[:len(h.bestSolutions)-1]
		h.insertBest(s)
	}
}

func (h *History[K]) expireByAge() {
	for len(h.recent) > 0 {
		oldest := h.recent[0]
		if oldest.iteration+h.iterationExpiry <= h.iterationCount {
			delete(h.recentLookup, oldest.scored.Key())
			h.recent = h.recent[1:]
			continue
		}
		break
	}
}

func (h *History[K]) expireBySize() {
	for len(h.recent) >= h.recentCapacity && h.recentCapacity > 0 {
		oldest := h.recent[0]
		delete(h.recentLookup, oldest.scored.Key())
		h.recent = h.recent[1:]
	}
}

// SeenSolution records s in the recent deque, following a five-step
// admission rule: bump the iteration counter, age-expire, skip
// re-insertion if already tabu, size-expire, then push.
func (h *History[K]) SeenSolution(s ScoredSolution[K]) {
	h.iterationCount++
	h.expireByAge()
	if _, ok := h.recentLookup[s.Key()]; ok {
		return
	}
	if h.recentCapacity == 0 {
		return
	}
	h.expireBySize()
	h.recent = append(h.recent, recentEntry[K]{scored: s, iteration: h.iterationCount})
	h.recentLookup[s.Key()] = struct{}{}
}

// IsSolutionTabu reports whether solution is present in the recent deque.
func (h *History[K]) IsSolutionTabu(solution Solution[K]) bool {
	_, ok := h.recentLookup[solution.Key()]
	return ok
}

// IsBestSolution reports whether s's underlying solution is present in the
// best-set, regardless of the score s itself carries (equality is by
// solution, not by score).
func (h *History[K]) IsBestSolution(s ScoredSolution[K]) bool {
	key := s.Key()
	for _, b := range h.bestSolutions {
		if b.Key() == key {
			return true
		}
	}
	return false
}

// GetBest returns the single best scored solution, if any.
func (h *History[K]) GetBest() (ScoredSolution[K], bool) {
	if len(h.bestSolutions) == 0 {
		return ScoredSolution[K]{}, false
	}
	return h.bestSolutions[0], true
}

// GetBestMultiple returns up to n of the best scored solutions, in
// ascending score order.
func (h *History[K]) GetBestMultiple(n int) []ScoredSolution[K] {
	if n > len(h.bestSolutions) {
		n = len(h.bestSolutions)
	}
	result := make([]ScoredSolution[K], n)
	copy(result, h.bestSolutions[:n])
	return result
}

// GetRandomBestSolution picks uniformly among the best-set. Iteration is
// over the ordered bestSolutions slice, not a hash structure, so the
// choice is reproducible given rng's state.
func (h *History[K]) GetRandomBestSolution(rng *rand.Rand) (ScoredSolution[K], bool) {
	if len(h.bestSolutions) == 0 {
		return ScoredSolution[K]{}, false
	}
	idx := rng.Intn(len(h.bestSolutions))
	return h.bestSolutions[idx], true
}

// IterationCount returns the number of times SeenSolution has been called.
func (h *History[K]) IterationCount() uint64 {
	return h.iterationCount
}

// Clear empties both the best-set and the recent deque.
func (h *History[K]) Clear() {
	h.bestSolutions = h.bestSolutions[:0]
	h.recent = h.recent[:0]
	h.recentLookup = make(map[K]struct{}, h.recentCapacity)
}
