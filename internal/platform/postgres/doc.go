// Package postgres implements the store interfaces on PostgreSQL using
// hand-written SQL through database/sql and the pgx stdlib driver.
package postgres
