// Package store defines the persistence interfaces and errors for the
// bookstore's entities. Implementations live under internal/platform.
package store
