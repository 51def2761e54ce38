package addbook

import (
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

const (
	commandType = "AddBook"
)

// Command represents the intent to add a book to the catalog.
type Command struct {
	Title      string
	Author     string
	ISBN       string
	Category   string
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command.
func BuildCommand(title, author, isbn, category string, occurredAt time.Time) Command {
	return Command{
		Title:      title,
		Author:     author,
		ISBN:       isbn,
		Category:   category,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
