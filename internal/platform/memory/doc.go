// Package memory provides in-memory implementations of the store interfaces.
// Data lives for the lifetime of the process, and every value crossing the
// package boundary is a copy, so callers never share mutable state with the
// store. All operations are safe for concurrent use.
package memory
