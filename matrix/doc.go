// Package matrix provides the dense float64 matrix used as the input surface
// of the tsp package.
//
// The package offers:
//
//   - Matrix, a minimal bounds-checked interface (Rows, Cols, At, Set, Clone)
//     that callers may implement with their own storage.
//   - Dense, a row-major implementation with O(1) access, deep Clone,
//     deterministic visitors (Do, Apply) and copy-out helpers (ToRows).
//
// Values are stored as given: ±Inf is a legal entry (the tsp package reads it
// as a missing arc) and NaN is kept so that validators upstream can report it
// with coordinates. Public accessors never panic; they return the sentinels
// from errors.go wrapped with the offending coordinates.
package matrix
