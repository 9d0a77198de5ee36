// Package numerology implements the deterministic calculation engine behind a
// reading: the Pythagorean letter cipher, digit-sum reduction with master
// numbers, and the name and date decompositions that produce the Destiny, Soul,
// Personality and Personal Year numbers.
//
// Every function in this package is pure. Inputs are never rejected: characters
// outside a-z are ignored, date components are summed without range checks, and
// an empty selection yields the zero result. Range validation belongs to the
// caller's boundary.
package numerology
