package shell

import (
	"context"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/store"
)

// CatalogStore defines what command handlers need from the store.
type CatalogStore interface {
	Snapshot() (core.State, store.Version)
	Apply(ctx context.Context, expectedVersion store.Version, event core.DomainEvent, committed ...store.Committed) (store.Version, error)
}

// SnapshotsCatalog defines what query handlers need from the store.
type SnapshotsCatalog interface {
	Snapshot() (core.State, store.Version)
}

// DecideFunc evaluates a command against a snapshot of the catalog.
type DecideFunc func(state core.State) core.DecisionResult

// Execution describes one Snapshot -> Decide -> Apply cycle.
// After equals Before unless the decision was a success.
type Execution struct {
	Before   core.State
	After    core.State
	Decision core.DecisionResult
}

// ExecuteDecision takes a snapshot, decides, applies a success event and journals the event.
//
// Success events are journaled inside the store's commit, so the journal order equals the
// order in which the store applied them. Failure events change nothing and are journaled
// after the decision.
// Business rule violations are journaled and returned as the decision error.
// A stale snapshot yields store.ErrConcurrencyConflict and journals nothing, so the
// whole cycle can be retried.
func ExecuteDecision(ctx context.Context, catalog CatalogStore, recorder *EventRecorder, decide DecideFunc) (Execution, error) {
	if err := ctx.Err(); err != nil {
		return Execution{}, err
	}

	before, version := catalog.Snapshot()
	decision := decide(before)
	execution := Execution{Before: before, After: before, Decision: decision}

	if err := decision.HasError(); err != nil {
		recorder.Record(ctx, decision.Event)
		return execution, err
	}

	if !decision.HasEventToApply() {
		return execution, nil
	}

	journalEvent := func(store.Version) { recorder.Record(ctx, decision.Event) }

	if _, err := catalog.Apply(ctx, version, decision.Event, journalEvent); err != nil {
		return execution, err
	}

	execution.After = before.Clone()
	execution.After.Apply(decision.Event)

	return execution, nil
}
