package activitylog

import (
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// Entry is one journaled event in a flat shape.
// Reason holds the failure info of rejected commands and is empty otherwise.
type Entry struct {
	SequenceNumber uint64           `json:"sequence"`
	EventType      string           `json:"type"`
	OccurredAt     time.Time        `json:"occurredAt"`
	BookID         core.BookID      `json:"bookId,omitempty"`
	BorrowingID    core.BorrowingID `json:"borrowingId,omitempty"`
	BorrowerName   string           `json:"borrowerName,omitempty"`
	Failed         bool             `json:"failed"`
	Reason         string           `json:"reason,omitempty"`
}

// Activity is the query result.
type Activity struct {
	Entries []Entry `json:"entries"`
	Count   int     `json:"-"`
}
