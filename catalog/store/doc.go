// Package store owns the authoritative catalog State.
//
// Readers take consistent snapshots under a read lock. Writers apply one success event at
// a time under the write lock, guarded by optimistic version checking: an Apply whose
// expected version is stale fails with ErrConcurrencyConflict, and the command handler
// decides again on a fresh snapshot.
package store
