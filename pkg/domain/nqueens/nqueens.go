// Package nqueens is a reference domain plugged into pkg/ils: placing N
// queens on an N x N board so that no two attack each other. The column
// of each queen is fixed by construction (queen i sits in column i), so a
// candidate solution is just the row assignment per column.
package nqueens

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/paiban/ils/pkg/ils"
	"github.com/paiban/ils/pkg/ilserr"
)

// Solution holds one row index per column: rows[col] is the row of the
// queen placed in column col.
type Solution struct {
	rows []int
}

// NewSolution copies rows into a Solution.
func NewSolution(rows []int) Solution {
	cp := make([]int, len(rows))
	copy(cp, rows)
	return Solution{rows: cp}
}

func rowsKey(rows []int) string {
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(r))
	}
	return b.String()
}

// Key returns the row assignment as a comparable string.
func (s Solution) Key() string { return rowsKey(s.rows) }

// Clone returns an independent copy of s.
func (s Solution) Clone() ils.Solution[string] {
	return NewSolution(s.rows)
}

// String renders an ASCII board, queens marked "Q", grounded on the
// original Rust crate's Debug impl for NQueensSolution.
func (s Solution) String() string {
	boardSize := len(s.rows)
	lookup := make(map[[2]int]struct{}, boardSize)
	for col, row := range s.rows {
		lookup[[2]int{row, col}] = struct{}{}
	}

	var b strings.Builder
	border := strings.Repeat("-", boardSize*4+1)
	for row := 0; row < boardSize*2+1; row++ {
		if row%2 == 0 {
			b.WriteString(border)
			if row != boardSize*2 {
				b.WriteByte('\n')
			}
			continue
		}
		actualRow := (row - 1) / 2
		for col := 0; col < boardSize; col++ {
			if _, ok := lookup[[2]int{actualRow, col}]; ok {
				b.WriteString("| Q ")
			} else {
				b.WriteString("|   ")
			}
			if col == boardSize-1 {
				b.WriteByte('|')
			}
		}
		if row != boardSize*2 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Score counts the number of queen pairs that attack each other, either
// on the same row or on a shared diagonal (columns are already distinct
// by construction). Zero conflicts is the known global optimum.
type Score int

func (s Score) Less(other ils.Score) bool  { return s < other.(Score) }
func (s Score) Equal(other ils.Score) bool { return s == other.(Score) }
func (s Score) IsBest() bool               { return s == 0 }

// Calculator is the stateless SolutionScoreCalculator for this domain.
type Calculator struct{}

// Score counts attacking pairs across all (col1, col2) combinations.
func (Calculator) Score(solution ils.Solution[string]) ils.ScoredSolution[string] {
	rows := solution.(Solution).rows
	conflicts := 0
	for col1 := 0; col1 < len(rows); col1++ {
		for col2 := col1 + 1; col2 < len(rows); col2++ {
			rowDiff := rows[col2] - rows[col1]
			if rowDiff == 0 {
				conflicts++
				continue
			}
			colDiff := col2 - col1
			if abs(rowDiff) == colDiff {
				conflicts++
			}
		}
	}
	return ils.ScoredSolution[string]{Solution: solution, Score: Score(conflicts)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// InitialGenerator produces a uniformly shuffled permutation of rows
// 0..boardSize-1, so every starting solution already has distinct rows
// and only diagonal conflicts remain to be resolved.
type InitialGenerator struct {
	BoardSize int
}

// NewInitialGenerator validates boardSize before it reaches Generate,
// where a non-positive size would otherwise produce an empty or
// nonsensical permutation silently.
func NewInitialGenerator(boardSize int) (InitialGenerator, error) {
	if boardSize <= 0 {
		return InitialGenerator{}, ilserr.InvalidInput("board_size", "must be positive")
	}
	return InitialGenerator{BoardSize: boardSize}, nil
}

func (g InitialGenerator) Generate(rng *rand.Rand) ils.Solution[string] {
	rows := make([]int, g.BoardSize)
	for i := range rows {
		rows[i] = i
	}
	rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
	return NewSolution(rows)
}

// MoveProposer proposes neighbors by swapping the rows of two distinct
// columns, which keeps the permutation property (distinct rows) that
// InitialGenerator establishes, so local search only ever needs to
// resolve diagonal conflicts.
type MoveProposer struct{}

func (MoveProposer) IterLocalMoves(start ils.Solution[string], rng *rand.Rand, limit int) []ils.Solution[string] {
	rows := start.(Solution).rows
	n := len(rows)
	if n < 2 {
		return nil
	}

	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	if limit < len(pairs) {
		pairs = pairs[:limit]
	}

	moves := make([]ils.Solution[string], 0, len(pairs))
	for _, p := range pairs {
		swapped := make([]int, n)
		copy(swapped, rows)
		swapped[p[0]], swapped[p[1]] = swapped[p[1]], swapped[p[0]]
		moves = append(moves, NewSolution(swapped))
	}
	return moves
}

// Perturbation escapes a local minimum by swapping the rows of Swaps
// randomly chosen column pairs at once; with Swaps above 1 this is a
// coarser move than the single swap MoveProposer explores. The two
// columns of each pair are drawn independently and may coincide.
type Perturbation struct {
	// Swaps is how many random column-pairs to swap per perturbation.
	Swaps int
}

// NewPerturbation builds a Perturbation that swaps a single random pair,
// the same size of move as one MoveProposer step (or no move at all when
// both drawn columns coincide).
func NewPerturbation() Perturbation {
	return Perturbation{Swaps: 1}
}

func (p Perturbation) Propose(current ils.ScoredSolution[string], history *ils.History[string], rng *rand.Rand) ils.Solution[string] {
	rows := current.Solution.(Solution).rows
	n := len(rows)
	if n < 2 {
		return current.Solution
	}
	swapped := make([]int, n)
	copy(swapped, rows)
	swaps := p.Swaps
	if swaps <= 0 {
		swaps = 1
	}
	for i := 0; i < swaps; i++ {
		a := rng.Intn(n)
		b := rng.Intn(n)
		swapped[a], swapped[b] = swapped[b], swapped[a]
	}
	return NewSolution(swapped)
}

// String is a thin formatting convenience for CLI drivers.
func (s Score) String() string { return fmt.Sprintf("%d", int(s)) }
