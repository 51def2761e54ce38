package updatebook

import (
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

const (
	commandType = "UpdateBook"
)

// Command represents the intent to change some attributes of a book.
type Command struct {
	BookID     core.BookID
	Patch      core.BookPatch
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command.
func BuildCommand(bookID core.BookID, patch core.BookPatch, occurredAt time.Time) Command {
	return Command{
		BookID:     bookID,
		Patch:      patch,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
