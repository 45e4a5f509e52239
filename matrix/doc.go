// Package matrix offers dense exact-arithmetic matrices over rational.Rat.
//
// The matrix package provides:
//
//   - Dense, a flat row-major container with bounds-checked At/Set that
//     return errors instead of panicking.
//   - Elementwise Add/Sub, Mul, Transpose and Scale, each returning a fresh
//     Dense and never mutating its operands.
//   - Induced / SelectRowsCols to cut sub-matrices by explicit index lists,
//     preserving the order of the lists.
//   - Inverse, a Gauss-Jordan inverter with row swaps on zero pivots.
//
// Every entry is an exact fraction, so results are bit-exact and
// reproducible. Costs grow with the bit width of the entries as well as
// with the shape; this package targets small dense systems.
package matrix
