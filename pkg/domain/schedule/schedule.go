// Package schedule is a reference domain plugged into pkg/ils: assigning
// exactly one employee per calendar day across a date range, subject to
// hard constraints (no two consecutive days for the same employee, no
// more than three assignments per employee in any 14-day window, no
// shared employee between consecutive Sat-Sun pairs, holiday avoidance)
// and soft constraints (weekday clustering, total-days and
// total-weekends fairness across employees).
package schedule

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/paiban/ils/pkg/ils"
	"github.com/paiban/ils/pkg/ilserr"
)

// Employee is a schedulable worker, identified by a UUID.
type Employee struct {
	ID uuid.UUID
}

// Holiday marks a date an employee must not be scheduled on.
type Holiday struct {
	EmployeeID uuid.UUID
	Date       time.Time
}

func civilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Solution assigns one employee per day across [startDate, endDate].
type Solution struct {
	startDate      time.Time
	endDate        time.Time
	dateToEmployee []uuid.UUID
	employees      []uuid.UUID
}

// NewSolution builds a Solution, copying both slices by value.
func NewSolution(startDate, endDate time.Time, dateToEmployee, employees []uuid.UUID) Solution {
	dte := make([]uuid.UUID, len(dateToEmployee))
	copy(dte, dateToEmployee)
	emp := make([]uuid.UUID, len(employees))
	copy(emp, employees)
	return Solution{
		startDate:      civilDay(startDate),
		endDate:        civilDay(endDate),
		dateToEmployee: dte,
		employees:      emp,
	}
}

// GetEmployeeForDate returns the employee assigned to date, if it falls
// within the schedule's range.
func (s Solution) GetEmployeeForDate(date time.Time) (uuid.UUID, bool) {
	day := civilDay(date)
	if day.Before(s.startDate) || day.After(s.endDate) {
		return uuid.Nil, false
	}
	index := int(day.Sub(s.startDate).Hours() / 24)
	return s.dateToEmployee[index], true
}

type dayAssignment struct {
	date     time.Time
	employee uuid.UUID
}

func (s Solution) daysToEmployees() []dayAssignment {
	result := make([]dayAssignment, len(s.dateToEmployee))
	for i, emp := range s.dateToEmployee {
		result[i] = dayAssignment{date: s.startDate.AddDate(0, 0, i), employee: emp}
	}
	return result
}

func (s Solution) employeesToDays() map[uuid.UUID][]time.Time {
	result := make(map[uuid.UUID][]time.Time, len(s.employees))
	for _, d := range s.daysToEmployees() {
		result[d.employee] = append(result[d.employee], d.date)
	}
	return result
}

// Key renders the day-by-day assignment as a stable comparable string.
func (s Solution) Key() string {
	ids := make([]string, len(s.dateToEmployee))
	for i, e := range s.dateToEmployee {
		ids[i] = e.String()
	}
	return strings.Join(ids, ",")
}

func (s Solution) Clone() ils.Solution[string] {
	return NewSolution(s.startDate, s.endDate, s.dateToEmployee, s.employees)
}

// String renders one line per day: weekday, date, employee.
func (s Solution) String() string {
	var b strings.Builder
	for i, d := range s.daysToEmployees() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s - %s", d.date.Weekday(), d.date.Format("2006-01-02"), d.employee)
	}
	return b.String()
}

// Score has a hard component (feasibility, must reach zero) and a soft
// component (preference/fairness, minimized once hard_score is zero).
// Ordering is lexicographic: hard_score first, then soft_score, matching
// the field order the original ScheduleScore derives Ord from.
type Score struct {
	Hard float64
	Soft float64
}

func (s Score) Less(other ils.Score) bool {
	o := other.(Score)
	if s.Hard != o.Hard {
		return s.Hard < o.Hard
	}
	return s.Soft < o.Soft
}

func (s Score) Equal(other ils.Score) bool {
	o := other.(Score)
	return s.Hard == o.Hard && s.Soft == o.Soft
}

func (s Score) IsBest() bool { return s.Hard == 0 && s.Soft == 0 }

func (s Score) String() string { return fmt.Sprintf("hard=%g soft=%g", s.Hard, s.Soft) }

// Calculator scores a Solution against holiday avoidance (hard) plus the
// consecutive-day, 14-day-window, weekday-clustering and fairness
// constraints.
type Calculator struct {
	employeeToHolidays map[uuid.UUID]map[time.Time]struct{}
}

// NewCalculator indexes holidays by employee and civil day for lookup.
func NewCalculator(holidays []Holiday) Calculator {
	byEmployee := make(map[uuid.UUID]map[time.Time]struct{})
	for _, h := range holidays {
		day := civilDay(h.Date)
		if byEmployee[h.EmployeeID] == nil {
			byEmployee[h.EmployeeID] = make(map[time.Time]struct{})
		}
		byEmployee[h.EmployeeID][day] = struct{}{}
	}
	return Calculator{employeeToHolidays: byEmployee}
}

func (c Calculator) Score(solution ils.Solution[string]) ils.ScoredSolution[string] {
	sol := solution.(Solution)
	var hardScore, softScore float64

	days := sol.daysToEmployees()

	// Holidays are a hard constraint.
	for employeeID, holidays := range c.employeeToHolidays {
		for holiday := range holidays {
			if assigned, ok := sol.GetEmployeeForDate(holiday); ok && assigned == employeeID {
				hardScore++
			}
		}
	}

	// No employee scheduled on two consecutive days.
	for i := 1; i < len(days); i++ {
		if days[i].employee == days[i-1].employee {
			hardScore++
		}
	}

	// No more than 3 assignments per employee in any 14-day window.
	const windowSize = 14
	for start := 0; start+windowSize <= len(days); start++ {
		counts := make(map[uuid.UUID]int)
		for _, d := range days[start : start+windowSize] {
			counts[d.employee]++
		}
		for _, count := range counts {
			if count > 3 {
				hardScore++
			}
		}
	}

	// No employee shared between consecutive Sat-Sun pairs.
	hardScore += countSharedConsecutiveWeekends(days)

	employeesToDays := sol.employeesToDays()

	// Soft: reward concentrating an employee's weekday work onto a
	// single weekday rather than spreading it thin.
	for _, employeeDays := range employeesToDays {
		weekdayCounts := make(map[time.Weekday]int)
		total := 0
		for _, d := range employeeDays {
			wd := d.Weekday()
			if wd == time.Saturday || wd == time.Sunday {
				continue
			}
			weekdayCounts[wd]++
			total++
		}
		if total == 0 {
			continue
		}
		maxCount := 0
		for _, count := range weekdayCounts {
			if count > maxCount {
				maxCount = count
			}
		}
		softScore += float64(total - maxCount)
	}

	// Soft: balance total days worked across employees.
	if minDays, maxDays, ok := minMaxInt(dayCountsPerEmployee(employeesToDays)); ok {
		softScore += float64(maxDays - minDays)
	}

	// Soft: balance total weekend days worked across employees.
	if minWeekends, maxWeekends, ok := minMaxInt(weekendCountsPerEmployee(employeesToDays)); ok {
		softScore += float64(maxWeekends - minWeekends)
	}

	return ils.ScoredSolution[string]{
		Solution: solution,
		Score:    Score{Hard: hardScore, Soft: softScore},
	}
}

func dayCountsPerEmployee(employeesToDays map[uuid.UUID][]time.Time) []int {
	counts := make([]int, 0, len(employeesToDays))
	for _, days := range employeesToDays {
		counts = append(counts, len(days))
	}
	return counts
}

func weekendCountsPerEmployee(employeesToDays map[uuid.UUID][]time.Time) []int {
	counts := make([]int, 0, len(employeesToDays))
	for _, days := range employeesToDays {
		n := 0
		for _, d := range days {
			if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
				n++
			}
		}
		counts = append(counts, n)
	}
	return counts
}

func minMaxInt(values []int) (min, max int, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, true
}

// countSharedConsecutiveWeekends counts, for every Sat-Sun pair, whether
// any employee also worked the immediately following Sat-Sun pair.
func countSharedConsecutiveWeekends(days []dayAssignment) float64 {
	var weekends [][2]dayAssignment
	for i := 0; i+1 < len(days); i++ {
		if days[i].date.Weekday() == time.Saturday && days[i+1].date.Weekday() == time.Sunday {
			weekends = append(weekends, [2]dayAssignment{days[i], days[i+1]})
		}
	}

	var violations float64
	for i := 1; i < len(weekends); i++ {
		prev := map[uuid.UUID]struct{}{weekends[i-1][0].employee: {}, weekends[i-1][1].employee: {}}
		if _, ok := prev[weekends[i][0].employee]; ok {
			violations++
		}
		if _, ok := prev[weekends[i][1].employee]; ok {
			violations++
		}
	}
	return violations
}

// InitialGenerator assigns a uniformly random employee to every day.
type InitialGenerator struct {
	StartDate time.Time
	EndDate   time.Time
	Employees []uuid.UUID
}

// NewInitialGenerator validates the date range and employee list before
// they reach Generate, where an empty range or an empty roster would
// otherwise panic deep inside the random assignment loop.
func NewInitialGenerator(startDate, endDate time.Time, employees []uuid.UUID) (InitialGenerator, error) {
	if civilDay(endDate).Before(civilDay(startDate)) {
		return InitialGenerator{}, ilserr.InvalidInput("end_date", "must not be before start_date")
	}
	if len(employees) == 0 {
		return InitialGenerator{}, ilserr.InvalidInput("employees", "must not be empty")
	}
	return InitialGenerator{StartDate: startDate, EndDate: endDate, Employees: employees}, nil
}

func (g InitialGenerator) Generate(rng *rand.Rand) ils.Solution[string] {
	days := int(civilDay(g.EndDate).Sub(civilDay(g.StartDate)).Hours()/24) + 1
	dateToEmployee := make([]uuid.UUID, days)
	for i := range dateToEmployee {
		dateToEmployee[i] = g.Employees[rng.Intn(len(g.Employees))]
	}
	return NewSolution(g.StartDate, g.EndDate, dateToEmployee, g.Employees)
}

// MoveProposer proposes, for each day in order, reassigning that day to
// each other employee in turn, bounded by limit.
type MoveProposer struct{}

func (MoveProposer) IterLocalMoves(start ils.Solution[string], rng *rand.Rand, limit int) []ils.Solution[string] {
	sol := start.(Solution)
	moves := make([]ils.Solution[string], 0, limit)

	for day := 0; day < len(sol.dateToEmployee); day++ {
		current := sol.dateToEmployee[day]
		for _, employeeID := range sol.employees {
			if employeeID == current {
				continue
			}
			if len(moves) >= limit {
				return moves
			}
			candidate := NewSolution(sol.startDate, sol.endDate, sol.dateToEmployee, sol.employees)
			candidate.dateToEmployee[day] = employeeID
			moves = append(moves, candidate)
		}
	}
	return moves
}

// PerturbationStrategy names the two moves Perturbation chooses between.
type PerturbationStrategy int

const (
	DoNothing PerturbationStrategy = iota
	ChangeDaysSubsetRandomly
)

// Perturbation escapes a local minimum by reassigning a random subset of
// days to random employees, chosen over doing nothing with weights
// 100:10. The
// subset size shrinks when the current solution is already a recorded
// best (fine-tune) versus when it isn't (explore more broadly).
type Perturbation struct {
	doNothingWeight        int
	changeDaysSubsetWeight int
}

// NewPerturbation builds a Perturbation with the reference 10:100 weights.
func NewPerturbation() Perturbation {
	return Perturbation{doNothingWeight: 10, changeDaysSubsetWeight: 100}
}

func (p Perturbation) Propose(current ils.ScoredSolution[string], history *ils.History[string], rng *rand.Rand) ils.Solution[string] {
	total := p.doNothingWeight + p.changeDaysSubsetWeight
	if total <= 0 || rng.Intn(total) < p.doNothingWeight {
		return current.Solution
	}

	sol := current.Solution.(Solution)
	totalDays := len(sol.dateToEmployee)
	if totalDays == 0 {
		return current.Solution
	}

	var maxAlter int
	if history.IsBestSolution(current) {
		maxAlter = clampInt(totalDays/20, 1, totalDays)
	} else {
		maxAlter = clampInt(totalDays/2, 1, totalDays)
	}
	numberOfDaysToAlter := 1 + rng.Intn(maxAlter)

	indices := make([]int, totalDays)
	for i := range indices {
		indices[i] = i
	}
	rng.Shuffle(len(indices), func(i, j int) { indices[i], indices[j] = indices[j], indices[i] })

	candidate := NewSolution(sol.startDate, sol.endDate, sol.dateToEmployee, sol.employees)
	for _, idx := range indices[:numberOfDaysToAlter] {
		candidate.dateToEmployee[idx] = sol.employees[rng.Intn(len(sol.employees))]
	}
	return candidate
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SortedEmployeeIDs returns employees sorted by UUID bytes, a stable
// order for tests and debug output. MoveProposer does not use it; it
// walks employees in the solution's own order.
func SortedEmployeeIDs(employees []uuid.UUID) []uuid.UUID {
	sorted := make([]uuid.UUID, len(employees))
	copy(sorted, employees)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.Compare(sorted[i].String(), sorted[j].String()) < 0
	})
	return sorted
}
