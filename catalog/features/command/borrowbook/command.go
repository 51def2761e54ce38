package borrowbook

import (
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

const (
	commandType = "BorrowBook"
)

// Command represents the intent to lend a book to a borrower.
type Command struct {
	BookID       core.BookID
	BorrowerName string
	Days         int
	OccurredAt   core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command. Days default to core.DefaultBorrowingDays when not supplied.
func BuildCommand(bookID core.BookID, borrowerName string, days core.Optional[int], occurredAt time.Time) Command {
	return Command{
		BookID:       bookID,
		BorrowerName: borrowerName,
		Days:         days.OrElse(core.DefaultBorrowingDays),
		OccurredAt:   core.ToOccurredAt(occurredAt),
	}
}
