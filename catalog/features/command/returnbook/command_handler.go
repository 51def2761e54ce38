package returnbook

import (
	"context"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

// CommandHandler orchestrates Snapshot -> Decide -> Apply -> Journal with retry.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	store        shell.CatalogStore
	recorder     *shell.EventRecorder
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler. The recorder may be nil.
func NewCommandHandler(store shell.CatalogStore, recorder *shell.EventRecorder, opts ...Option) CommandHandler {
	handler := CommandHandler{
		store:    store,
		recorder: recorder,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle closes the borrowing record and returns it.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.BorrowingRecord, shell.HandlerResult, error) {
	var record core.BorrowingRecord

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		execution, execErr := shell.ExecuteDecision(retryCtx, h.store, h.recorder, func(state core.State) core.DecisionResult {
			return Decide(state, command)
		})
		if execErr != nil {
			return execErr
		}

		record, _ = execution.After.FindBorrowing(command.BorrowingID)

		return nil
	}, h.retryOptions...)

	if err != nil {
		return core.BorrowingRecord{}, shell.NewErrorResult(retryMetrics), err
	}

	return record, shell.NewSuccessResult(retryMetrics), nil
}
