package ils

import (
	"math/rand"

	"github.com/paiban/ils/pkg/logger"
)

// defaultRestartInterval is the periodic random-restart interval used when
// Config.RestartInterval is left unset (zero). Exposed as a tunable since
// reference implementations disagree on 50 vs 100.
const defaultRestartInterval = 50

// IterationInfo reports the outer loop's progress for a driving UI.
type IterationInfo struct {
	Current uint64
	Total   uint64
}

// Config bundles the IteratedLocalSearch tunables that aren't already
// arguments to NewLocalSearch.
type Config struct {
	MaxIterations            uint64
	MaxAllowNoImprovementFor uint64
	RestartInterval          uint64
}

// IteratedLocalSearch is the outer loop: generate initial -> LS -> perturb
// -> LS -> accept -> record -> repeat. It exclusively
// owns its LocalSearch, its best-set History, its RNG, and its "current"
// scored solution.
type IteratedLocalSearch[K comparable] struct {
	initialGen  InitialSolutionGenerator[K]
	scorer      SolutionScoreCalculator[K]
	localSearch *LocalSearch[K]
	perturbation Perturbation[K]
	history     *History[K]
	acceptance  AcceptanceCriterion[K]
	cfg         Config
	rng         *rand.Rand
	logger      *logger.SearchLogger

	current   ScoredSolution[K]
	iteration uint64
}

// New constructs an IteratedLocalSearch. It resolves the "GetBestSolution
// before any round" edge case by seeding the best-set History with the
// scored initial solution, so GetBestSolution is always safe to call,
// even before ExecuteRound.
func New[K comparable](
	initialGen InitialSolutionGenerator[K],
	scorer SolutionScoreCalculator[K],
	localSearch *LocalSearch[K],
	perturbation Perturbation[K],
	history *History[K],
	acceptance AcceptanceCriterion[K],
	cfg Config,
	rng *rand.Rand,
) *IteratedLocalSearch[K] {
	if cfg.RestartInterval == 0 {
		cfg.RestartInterval = defaultRestartInterval
	}
	initial := scorer.Score(initialGen.Generate(rng))
	history.LocalSearchChoseSolution(initial)

	return &IteratedLocalSearch[K]{
		initialGen:   initialGen,
		scorer:       scorer,
		localSearch:  localSearch,
		perturbation: perturbation,
		history:      history,
		acceptance:   acceptance,
		cfg:          cfg,
		rng:          rng,
		logger:       logger.NewSearchLogger("iterated-local-search"),
		current:      initial,
	}
}

// ExecuteRound runs a single outer-loop iteration. It is a no-op (beyond
// incrementing the iteration counter) once the best-ever score is already
// known-optimal.
func (s *IteratedLocalSearch[K]) ExecuteRound() {
	s.iteration++

	if best, ok := s.history.GetBest(); ok && best.Score.IsBest() {
		return
	}

	if s.iteration > 0 && s.iteration%s.cfg.RestartInterval == 0 {
		s.current = s.scorer.Score(s.initialGen.Generate(s.rng))
		s.logger.Restart(s.iteration)
	}

	previousBest, _ := s.history.GetBest()
	perturbed := s.perturbation.Propose(s.current, s.history, s.rng)
	newLocalMinimum := s.localSearch.Execute(perturbed, s.cfg.MaxAllowNoImprovementFor)
	s.history.LocalSearchChoseSolution(newLocalMinimum)
	s.current = s.acceptance.Choose(s.current, newLocalMinimum, s.history, s.rng)

	if newBest, ok := s.history.GetBest(); ok && (previousBest.Solution == nil || compareScore(newBest.Score, previousBest.Score) < 0) {
		s.logger.BestFound(s.iteration, scoreString(newBest.Score))
	}
	s.logger.Round(s.iteration, scoreString(s.current.Score), s.current.Key() == newLocalMinimum.Key())
}

// IsFinished reports whether the outer loop has exhausted its iteration
// budget or already found a known-optimal best score.
func (s *IteratedLocalSearch[K]) IsFinished() bool {
	if s.iteration >= s.cfg.MaxIterations {
		return true
	}
	if best, ok := s.history.GetBest(); ok && best.Score.IsBest() {
		return true
	}
	return false
}

// Run drives ExecuteRound to completion. Callers needing UI responsiveness
// should call ExecuteRound directly from their own event loop instead.
func (s *IteratedLocalSearch[K]) Run() {
	for !s.IsFinished() {
		s.ExecuteRound()
	}
}

// GetBestSolution returns the best scored solution seen across the run.
// Always safe: New seeds the best-set with the initial scored solution.
func (s *IteratedLocalSearch[K]) GetBestSolution() ScoredSolution[K] {
	best, _ := s.history.GetBest()
	return best
}

// GetIterationInfo reports outer-loop progress for a driving UI.
func (s *IteratedLocalSearch[K]) GetIterationInfo() IterationInfo {
	return IterationInfo{Current: s.iteration, Total: s.cfg.MaxIterations}
}
