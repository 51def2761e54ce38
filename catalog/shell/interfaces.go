package shell

import (
	"context"
)

// Command represents the contract for all command types of the catalog.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// CoreCommandHandler defines the contract for components that process commands with pure business logic.
// Handlers take a snapshot of the store, decide, apply and journal the resulting event.
// R is the entity the command produced or changed.
// Implementations focus on business logic; observability is added by decorators.
type CoreCommandHandler[C Command, R any] interface {
	Handle(ctx context.Context, command C) (R, HandlerResult, error)
}

// Query represents the contract for all query types of the catalog.
type Query interface {
	QueryType() string
}

// CoreQueryHandler defines the contract for components that answer queries from a snapshot
// of the store or from the activity journal.
type CoreQueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
