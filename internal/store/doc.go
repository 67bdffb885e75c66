// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic, so handlers depend on behavior rather than
// on the in-memory implementation that currently backs them.
package store
