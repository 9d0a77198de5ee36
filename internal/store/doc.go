// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing the content resolver to remain
// independent of the database that holds operator-managed text.
package store
