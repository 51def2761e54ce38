package returnbook

import (
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

const (
	commandType = "ReturnBook"
)

// Command represents the intent to bring a borrowed book back.
type Command struct {
	BorrowingID core.BorrowingID
	OccurredAt  core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command.
func BuildCommand(borrowingID core.BorrowingID, occurredAt time.Time) Command {
	return Command{
		BorrowingID: borrowingID,
		OccurredAt:  core.ToOccurredAt(occurredAt),
	}
}
