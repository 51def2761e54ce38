package core

// Outcome classifies a DecisionResult.
type Outcome string

const (
	// OutcomeIdempotent means the command asks for nothing that is not already true.
	OutcomeIdempotent Outcome = "idempotent"

	// OutcomeSuccess means the command is accepted and its event changes the state.
	OutcomeSuccess Outcome = "success"

	// OutcomeError means the command violates a business rule. Its event is journaled only.
	OutcomeError Outcome = "error"
)

// DecisionResult is what a Decide function returns.
//
// Construct it only with IdempotentDecision, SuccessDecision or ErrorDecision.
type DecisionResult struct {
	Outcome Outcome
	Event   DomainEvent // nil for idempotent decisions
	Err     error
}

// IdempotentDecision creates a DecisionResult that needs no state change.
func IdempotentDecision() DecisionResult {
	return DecisionResult{Outcome: OutcomeIdempotent}
}

// SuccessDecision creates a DecisionResult with a success event to apply.
func SuccessDecision(event DomainEvent) DecisionResult {
	return DecisionResult{Outcome: OutcomeSuccess, Event: event}
}

// ErrorDecision creates a DecisionResult with a failure event to journal and the error to report.
func ErrorDecision(event DomainEvent, err error) DecisionResult {
	return DecisionResult{Outcome: OutcomeError, Event: event, Err: err}
}

// HasEventToApply returns true if the state must be evolved with the event.
func (r DecisionResult) HasEventToApply() bool {
	return r.Outcome == OutcomeSuccess
}

// HasEventToJournal returns true for every decision that produced an event.
func (r DecisionResult) HasEventToJournal() bool {
	return r.Event != nil
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == OutcomeError {
		return r.Err
	}

	return nil
}
