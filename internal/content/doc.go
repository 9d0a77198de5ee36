// Package content resolves display text for a reading. Operators can override
// any catalogue text by storing an entry under a well-known key
// (number_meaning_<n>, tarot_meaning_<n>) or add UI labels of their own; the
// Resolver consults that store first and falls back to the embedded
// catalogue.
package content
