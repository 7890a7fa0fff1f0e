// Package postgres provides PostgreSQL-backed implementations of the
// interfaces in internal/store, using the pgx driver through database/sql.
package postgres
