package ils

import (
	"fmt"
	"math/rand"

	"github.com/paiban/ils/pkg/logger"
)

// scoreString renders a Score for logging, preferring fmt.Stringer when a
// domain implements it.
func scoreString(s Score) string {
	if str, ok := s.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%v", s)
}

// LocalSearch descends from a starting solution through a move
// neighborhood until stuck, returning the best scored solution found
// during the descent. It owns a private History instance used
// exclusively for tabu bookkeeping; this is a distinct instance from any
// History an enclosing IteratedLocalSearch keeps for its best-set. The
// private History is not cleared between Execute calls: its entries
// leave only through age or size expiry.
type LocalSearch[K comparable] struct {
	moveProposer  MoveProposer[K]
	scorer        SolutionScoreCalculator[K]
	maxIterations uint64
	windowSize    int
	history       *History[K]
	rng           *rand.Rand
	logger        *logger.SearchLogger
}

// NewLocalSearch constructs a LocalSearch with its own private tabu
// History, sized by bestSolutionsCapacity/allSolutionsCapacity/
// allSolutionIterationExpiry.
func NewLocalSearch[K comparable](
	moveProposer MoveProposer[K],
	scorer SolutionScoreCalculator[K],
	maxIterations uint64,
	windowSize int,
	bestSolutionsCapacity, allSolutionsCapacity int,
	allSolutionIterationExpiry uint64,
	rng *rand.Rand,
) *LocalSearch[K] {
	return &LocalSearch[K]{
		moveProposer:  moveProposer,
		scorer:        scorer,
		maxIterations: maxIterations,
		windowSize:    windowSize,
		history:       NewHistory[K](bestSolutionsCapacity, allSolutionsCapacity, allSolutionIterationExpiry),
		rng:           rng,
		logger:        logger.NewSearchLogger("local-search"),
	}
}

// Execute runs one descent from start. allowNoImprovementFor is a
// per-call argument rather than a struct field, so each descent can be
// given its own bound; IteratedLocalSearch passes the same
// Config.MaxAllowNoImprovementFor on every round.
func (l *LocalSearch[K]) Execute(start Solution[K], allowNoImprovementFor uint64) ScoredSolution[K] {
	startScore := l.scorer.Score(start)
	current := startScore
	best := current
	var noImprovementFor uint64
	var iterationsRun int

	for iter := uint64(0); iter < l.maxIterations; iter++ {
		iterationsRun++
		l.history.SeenSolution(current)
		if current.Score.IsBest() {
			best = current
			break
		}

		candidates := l.moveProposer.IterLocalMoves(current.Solution, l.rng, l.windowSize)
		var neighborBest ScoredSolution[K]
		found := false
		for _, candidate := range candidates {
			if l.history.IsSolutionTabu(candidate) {
				continue
			}
			scored := l.scorer.Score(candidate)
			if !found || compareScoredSolution(scored, neighborBest) < 0 {
				neighborBest = scored
				found = true
			}
		}
		if !found {
			break
		}

		if compareScore(neighborBest.Score, current.Score) < 0 {
			best = neighborBest
			noImprovementFor = 0
		} else {
			noImprovementFor++
			if noImprovementFor >= allowNoImprovementFor {
				break
			}
		}
		current = neighborBest
	}
	l.logger.Descent(scoreString(startScore.Score), scoreString(best.Score), iterationsRun)
	return best
}
