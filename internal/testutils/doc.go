// Package testutils provides shared helpers for tests that need a real
// PostgreSQL database. Tests that call these helpers are skipped unless
// the DATABASE_URL environment variable points at a test database.
//
// The main pattern is WithTx, which runs a test body inside a transaction
// that is always rolled back, so tests never leave rows behind and can run
// concurrently against the same database.
package testutils
