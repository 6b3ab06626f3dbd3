// Package store defines interfaces for record storage operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic, so handlers and tests interact with records
// through plain structured values rather than storage-specific types.
package store
