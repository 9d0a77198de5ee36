//go:build integration

// Package testdb provides helpers for PostgreSQL integration tests.
//
// Tests run against the database named by NUMEROLOGY_TEST_DB_URL (or
// DATABASE_URL) and are skipped when neither is set. Each test works inside
// a transaction that is rolled back when it finishes, so tests can run in
// parallel against the same schema:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	    s := postgres.NewPostgresContentStore(tx, nil)
//	    ...
//	})
package testdb
