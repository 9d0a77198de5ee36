// Package sqlite provides a file-backed content store for single-node
// deployments and the CLI. It mirrors the PostgreSQL store: the same
// app_content table, the same store errors, and schema changes applied with
// goose from migrations embedded in the binary.
package sqlite
