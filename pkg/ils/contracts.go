// Package ils implements Iterated Local Search (ILS) layered over a
// classical Local Search (LS) descent, following Lourenço, Martin and
// Stützle, "Iterated Local Search: Framework and Applications" (2010).
//
// The package itself knows nothing about any concrete optimization
// problem. Callers plug in a Solution/Score pair and the five
// host-implemented capabilities below; pkg/domain/nqueens,
// pkg/domain/ackley and pkg/domain/schedule are three such callers.
package ils

import "math/rand"

// Solution is an opaque, domain-defined representation of a candidate
// answer. It must support equality and stable hashing (via a Go
// comparable key, since LocalSearch only ever compares/keys solutions
// through Solution.Key), and must clone by value.
type Solution[K comparable] interface {
	// Key returns a comparable representation used for equality, hashing
	// and tabu-set membership. Two solutions that are semantically equal
	// must return equal keys.
	Key() K
	// Clone returns an independent copy; mutating the clone must never
	// affect the original.
	Clone() Solution[K]
	// String renders the solution for debugging/logging.
	String() string
}

// Score is totally ordered and answers IsBest as a termination hint.
type Score interface {
	// Less reports whether this score is strictly better than other.
	// Implementations must provide a strict weak ordering.
	Less(other Score) bool
	// Equal reports score equality (not solution equality).
	Equal(other Score) bool
	// IsBest reports whether this score is a known-optimal score. Domains
	// without a known optimum may always return false.
	IsBest() bool
}

// ScoredSolution binds a Solution to the Score a SolutionScoreCalculator
// produced for it. Ordering is by Score alone (with a tie-break so the
// best-set stays well-defined); equality/hashing is by Solution alone, so
// two ScoredSolutions wrapping the same Solution but different Score
// collide — this is required for tabu lookups.
type ScoredSolution[K comparable] struct {
	Solution Solution[K]
	Score    Score
}

// Key forwards to the wrapped solution's key, so ScoredSolution can be
// used directly wherever a comparable solution key is needed.
func (s ScoredSolution[K]) Key() K {
	return s.Solution.Key()
}

// SolutionScoreCalculator is a pure function from a solution to its score.
// Given the same solution value it must return an equal score within a
// single search run; it may be internally randomized as long as it is
// stable within the enclosing LocalSearch/IteratedLocalSearch execution.
type SolutionScoreCalculator[K comparable] interface {
	Score(solution Solution[K]) ScoredSolution[K]
}

// MoveProposer produces candidate neighbors of a starting solution. The
// sequence is logically finite but LocalSearch only ever consumes a
// bounded prefix (window_size), so an implementation that in practice
// never terminates is still safe to use.
type MoveProposer[K comparable] interface {
	// IterLocalMoves returns up to limit candidate neighbor solutions of
	// start. Implementations may return fewer. Proposals may repeat start
	// or each other; LocalSearch filters via the tabu set.
	IterLocalMoves(start Solution[K], rng *rand.Rand, limit int) []Solution[K]
}

// InitialSolutionGenerator produces a syntactically valid (not necessarily
// feasible) starting solution. Called once at ILS construction and again
// on every periodic random restart.
type InitialSolutionGenerator[K comparable] interface {
	Generate(rng *rand.Rand) Solution[K]
}

// Perturbation takes the current local minimum and returns a solution
// further away than a single local move, for LocalSearch to re-descend
// from. The returned solution need not be better than current.
type Perturbation[K comparable] interface {
	Propose(current ScoredSolution[K], history *History[K], rng *rand.Rand) Solution[K]
}

// AcceptanceCriterion picks which scored solution becomes the next
// "current" for the ILS outer loop, given the existing current, the
// freshly-descended local minimum, and the running history.
type AcceptanceCriterion[K comparable] interface {
	Choose(existing, new ScoredSolution[K], history *History[K], rng *rand.Rand) ScoredSolution[K]
}
