// Package domain contains the core business entities and rules of the
// contacts service. It is independent of any specific storage or delivery
// mechanism; HTTP and persistence concerns live in the layers above it.
package domain
