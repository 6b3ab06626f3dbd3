// Package memory provides an in-memory implementation of the storage
// interfaces (repositories) defined in the internal/store package.
// Storage is transient and memory-resident only: all records are
// discarded on process exit, and nothing is ever written to disk.
package memory
