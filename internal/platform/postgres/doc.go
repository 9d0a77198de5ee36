// Package postgres implements the content store on PostgreSQL through the
// pgx database/sql driver, and owns the goose migrations for its schema.
// The migrations are embedded so the server binary can apply them without
// shipping SQL files.
package postgres
