package tsp

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// DefaultSentinel is the finite cost standing in for "forbidden arc".
// Finite input costs must satisfy N·max(cost) < Sentinel (see validate.go).
const DefaultSentinel = 1e9

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds parameters and callbacks for one Solve call.
type Options struct {
	// Start is the city every returned tour begins and ends at.
	Start int

	// Ctx allows cancellation and deadlines; checked once per Select/Expand cycle.
	Ctx context.Context

	// TimeLimit, if > 0, aborts the search with ErrTimeLimit once elapsed.
	TimeLimit time.Duration

	// Sentinel is the forbidden-arc cost. Any cell ≥ Sentinel is forbidden.
	Sentinel float64

	// Eps widens pruning: a node is discarded when its estimate ≥ best−Eps.
	Eps float64

	// Logger receives Debug records for every phase of the search.
	Logger *slog.Logger

	// OnStep is called after each step is appended to the trace.
	// Returning an error aborts Solve with that error.
	OnStep func(Step) error

	// Labels names cities in step descriptions; missing entries fall back
	// to spreadsheet-style letters (A, B, …, Z, AA, …).
	Labels []string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Start 0, context.Background(), no time limit,
//   - Sentinel = DefaultSentinel, Eps = 0,
//   - slog.Default() logger, no step hook, letter labels.
func DefaultOptions() Options {
	return Options{
		Start:    0,
		Ctx:      context.Background(),
		Sentinel: DefaultSentinel,
		Logger:   slog.Default(),
	}
}

// WithStart selects the start city. Range is checked against N in Solve.
func WithStart(start int) Option {
	return func(o *Options) {
		o.Start = start
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeLimit sets a soft wall-clock budget.
//
//	d > 0: abort with ErrTimeLimit after d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithSentinel replaces DefaultSentinel. It must be positive and finite.
func WithSentinel(s float64) Option {
	return func(o *Options) {
		if !(s > 0) || math.IsInf(s, 0) {
			o.err = fmt.Errorf("%w: Sentinel must be positive and finite (%g)", ErrOptionViolation, s)
			return
		}
		o.Sentinel = s
	}
}

// WithEps sets the pruning tolerance. It must be non-negative.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if !(eps >= 0) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: Eps must be finite and non-negative (%g)", ErrOptionViolation, eps)
			return
		}
		o.Eps = eps
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnStep registers a callback run for every appended step.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithLabels sets city names used in step descriptions.
func WithLabels(labels ...string) Option {
	return func(o *Options) {
		o.Labels = append([]string(nil), labels...)
	}
}

// label returns the display name of city i.
func (o *Options) label(i int) string {
	if i >= 0 && i < len(o.Labels) && o.Labels[i] != "" {
		return o.Labels[i]
	}

	return CityLabel(i)
}

// CityLabel returns the spreadsheet-style letter name of city i:
// 0→A, 25→Z, 26→AA. Negative indices render as "?".
func CityLabel(i int) string {
	if i < 0 {
		return "?"
	}
	var buf []byte
	for i >= 0 {
		buf = append([]byte{byte('A' + i%26)}, buf...)
		i = i/26 - 1
	}

	return string(buf)
}
