// Package core contains the domain model of the library catalog:
// books, borrowing records, the events that change them, and the pure State they evolve.
//
// Nothing in this package performs I/O. Command features evaluate their business rules
// against a State snapshot with a pure Decide function, which yields a DecisionResult
// carrying exactly one DomainEvent. Success events are applied to the State, failure
// events only go to the activity journal.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
