// Package shell is the imperative shell around the catalog core.
//
// It provides the handler contracts shared by all features, the retry loop for optimistic
// concurrency conflicts, the observability helpers (metrics, tracing, logging) used by the
// observable wrappers, and the translation of domain events into storable journal events
// together with their metadata.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
