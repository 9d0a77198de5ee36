// Package domain contains the entities exchanged between the numerology
// engine and its delivery layers: reading requests and results, and the
// operator-managed content entries that override catalogue text.
package domain
