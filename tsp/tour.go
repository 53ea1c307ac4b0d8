// Package tsp - tour utilities.
//
// Helpers that operate on closed tours (len == N+1, tour[0] == tour[N]):
//   - ValidateTour: enforce Hamiltonian cycle invariants.
//   - RotateTourToStart: cyclic shift so the tour starts/ends at a given city.
//   - TourCost: price a tour on a CostMatrix; forbidden arcs are an error.
//   - FormatTour: "A → C → D → B → A" using city labels.
//
// No logging, no panics on user input. O(N) time.
package tsp

import (
	"fmt"
	"math"
	"strings"
)

// ValidateTour enforces:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each city v ∈ [0, n) appears exactly once in positions [0, n).
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return fmt.Errorf("%w: length %d for N=%d", ErrInvalidTour, len(tour), n)
	}
	if start < 0 || start >= n {
		return fmt.Errorf("%w: start=%d, N=%d", ErrStartOutOfRange, start, n)
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("%w: tour does not start and end at %d", ErrInvalidTour, start)
	}

	seen := make([]bool, n)
	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: city %d at position %d", ErrInvalidTour, v, i)
		}
		seen[v] = true
	}

	return nil
}

// RotateTourToStart returns a fresh copy of tour shifted so that
// out[0] == out[n] == start. The input may be closed (len == n+1) or a raw
// cyclic order (len == n) without the closing city.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	if len(tour) == 0 {
		return nil, fmt.Errorf("%w: empty tour", ErrInvalidTour)
	}
	var n = len(tour)
	if n > 1 && tour[0] == tour[n-1] {
		n--
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d, N=%d", ErrStartOutOfRange, start, n)
	}

	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, fmt.Errorf("%w: city %d not on tour", ErrInvalidTour, start)
	}

	out := make([]int, n+1)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	out[n] = start

	return out, nil
}

// TourCost sums the arc costs of a closed tour on m, rounded to 1e-9.
//
// Errors: ErrInvalidTour for a malformed tour or a forbidden arc.
func TourCost(m CostMatrix, tour []int) (float64, error) {
	if len(tour) < 1 {
		return 0, fmt.Errorf("%w: empty tour", ErrInvalidTour)
	}
	if err := ValidateTour(tour, m.N(), tour[0]); err != nil {
		return 0, err
	}
	var (
		sum float64
		k   int
	)
	for k = 0; k < m.N(); k++ {
		if m.Forbidden(tour[k], tour[k+1]) {
			return 0, fmt.Errorf("%w: arc %d→%d is forbidden", ErrInvalidTour, tour[k], tour[k+1])
		}
		sum += m.At(tour[k], tour[k+1])
	}

	return round1e9(sum), nil
}

// FormatTour renders a city sequence with labels, e.g. "A → C → D → B → A".
func FormatTour(tour []int, labels ...string) string {
	o := Options{Labels: labels}
	parts := make([]string, len(tour))
	var i int
	for i = range tour {
		parts[i] = o.label(tour[i])
	}

	return strings.Join(parts, " → ")
}

// round1e9 rounds x to 1e-9 so reported costs are stable across platforms.
func round1e9(x float64) float64 {
	return math.Round(x*1e9) / 1e9
}
