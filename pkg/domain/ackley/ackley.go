// Package ackley is a reference domain plugged into pkg/ils: minimizing
// the continuous Ackley function, a standard multimodal optimization
// benchmark with a known global minimum of 0 at the origin.
//
// https://www.sfu.ca/~ssurjano/ackley.html
package ackley

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/paiban/ils/pkg/ils"
)

const (
	domainMin = -32.768
	domainMax = 32.768
)

// Function evaluates the Ackley function at an n-dimensional point,
// grounded on the standard definition (a=20, b=0.2, c=2*pi).
type Function struct {
	A, B, C float64
}

// DefaultFunction returns the canonical Ackley parameters.
func DefaultFunction() Function {
	return Function{A: 20, B: 0.2, C: 2 * math.Pi}
}

// Calculate evaluates the Ackley function at x.
func (f Function) Calculate(x []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}

	var sumSquares, sumCos float64
	for _, xi := range x {
		sumSquares += xi * xi
		sumCos += math.Cos(f.C * xi)
	}

	term1 := -f.A * math.Exp(-f.B*math.Sqrt(sumSquares/n))
	term2 := -math.Exp(sumCos / n)
	return term1 + term2 + f.A + math.E
}

// Solution is a point in R^n.
type Solution struct {
	x []float64
}

// NewSolution copies x into a Solution.
func NewSolution(x []float64) Solution {
	cp := make([]float64, len(x))
	copy(cp, x)
	return Solution{x: cp}
}

// key is the string form used for both Solution.Key and the stable
// best-set tie-break, since plain float64 isn't a Go map key that
// compares the way we want for near-duplicate points.
func (s Solution) key() string {
	return fmt.Sprint(s.x)
}

func (s Solution) Key() string { return s.key() }

func (s Solution) Clone() ils.Solution[string] { return NewSolution(s.x) }

func (s Solution) String() string { return fmt.Sprintf("%v", s.x) }

// Score wraps the Ackley function value in a total order with an
// epsilon-based IsBest, since the known global optimum (0.0) is rarely
// reached exactly by a floating-point descent.
type Score struct {
	value float64
}

const bestEpsilon = 1e-2

func (s Score) Less(other ils.Score) bool  { return s.value < other.(Score).value }
func (s Score) Equal(other ils.Score) bool { return s.value == other.(Score).value }
func (s Score) IsBest() bool               { return math.Abs(s.value) <= bestEpsilon }
func (s Score) Value() float64             { return s.value }
func (s Score) String() string             { return fmt.Sprintf("%g", s.value) }

// Calculator scores a Solution by evaluating the wrapped Ackley function.
type Calculator struct {
	Function Function
}

// NewCalculator builds a Calculator with the canonical Ackley parameters.
func NewCalculator() Calculator {
	return Calculator{Function: DefaultFunction()}
}

func (c Calculator) Score(solution ils.Solution[string]) ils.ScoredSolution[string] {
	x := solution.(Solution).x
	return ils.ScoredSolution[string]{
		Solution: solution,
		Score:    Score{value: c.Function.Calculate(x)},
	}
}

// InitialGenerator draws each coordinate uniformly from [-32.768, 32.768].
type InitialGenerator struct {
	Dimensions int
}

func (g InitialGenerator) Generate(rng *rand.Rand) ils.Solution[string] {
	x := make([]float64, g.Dimensions)
	for i := range x {
		x[i] = domainMin + rng.Float64()*(domainMax-domainMin)
	}
	return NewSolution(x)
}

// MoveProposer explores the neighborhood by nudging one coordinate up or
// down by a fixed-for-this-call step size, visiting coordinates in a
// shuffled order so the search isn't biased toward low indices.
type MoveProposer struct {
	Dimensions  int
	MinMoveSize float64
	MaxMoveSize float64
}

// NewMoveProposer builds a MoveProposer with the reference step-size
// bounds from the original Ackley local-search example.
func NewMoveProposer(dimensions int) MoveProposer {
	return MoveProposer{Dimensions: dimensions, MinMoveSize: 1e-6, MaxMoveSize: 0.1}
}

func (m MoveProposer) IterLocalMoves(start ils.Solution[string], rng *rand.Rand, limit int) []ils.Solution[string] {
	x := start.(Solution).x
	dims := make([]int, m.Dimensions)
	for i := range dims {
		dims[i] = i
	}
	rng.Shuffle(len(dims), func(i, j int) { dims[i], dims[j] = dims[j], dims[i] })

	moveSize := m.MinMoveSize + rng.Float64()*(m.MaxMoveSize-m.MinMoveSize)

	moves := make([]ils.Solution[string], 0, m.Dimensions*2)
	for _, d := range dims {
		for _, delta := range [2]float64{moveSize, -moveSize} {
			if len(moves) >= limit {
				return moves
			}
			moved := make([]float64, len(x))
			copy(moved, x)
			moved[d] += delta
			moves = append(moves, NewSolution(moved))
		}
	}
	return moves
}

// PerturbationStrategy names the two moves AckleyPerturbation can choose
// between, grounded on the original Rust crate's weighted enum.
type PerturbationStrategy int

const (
	ChangeSubset PerturbationStrategy = iota
	DoNothing
)

// Perturbation escapes a local minimum either by re-sampling a random
// subset of dimensions from a normal distribution centered on their
// current value (clamped to the domain), or by leaving the solution
// unchanged, weighted 100:10 as in the original.
type Perturbation struct {
	changeSubsetWeight int
	doNothingWeight    int
}

// NewPerturbation builds a Perturbation with the reference 100:10 weights.
func NewPerturbation() Perturbation {
	return Perturbation{changeSubsetWeight: 100, doNothingWeight: 10}
}

func (p Perturbation) Propose(current ils.ScoredSolution[string], history *ils.History[string], rng *rand.Rand) ils.Solution[string] {
	total := p.changeSubsetWeight + p.doNothingWeight
	if total <= 0 || rng.Intn(total) >= p.changeSubsetWeight {
		return current.Solution
	}

	x := current.Solution.(Solution).x
	dims := make([]int, len(x))
	for i := range dims {
		dims[i] = i
	}
	rng.Shuffle(len(dims), func(i, j int) { dims[i], dims[j] = dims[j], dims[i] })

	numToAlter := rng.Intn(len(dims))
	altered := make([]float64, len(x))
	copy(altered, x)
	for _, d := range dims[:numToAlter] {
		v := altered[d] + rng.NormFloat64()
		altered[d] = clamp(v, domainMin, domainMax)
	}
	return NewSolution(altered)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
