package service

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/addbook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/borrowbook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/deletebook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/returnbook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/command/updatebook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/activitylog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/getbook"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/getborrowing"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/listbooks"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/listborrowings"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/observable"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal"
)

// ErrNilStore is returned when a Catalog is built without a store.
var ErrNilStore = errors.New("catalog store must not be nil")

// DeleteResult is the outcome of DeleteBook as the transports render it.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Catalog offers every catalog operation. It is safe for concurrent use.
type Catalog struct {
	store shell.CatalogStore
	clock func() time.Time

	addBookHandler    *observable.CommandWrapper[addbook.Command, core.Book]
	updateBookHandler *observable.CommandWrapper[updatebook.Command, core.Book]
	deleteBookHandler *observable.CommandWrapper[deletebook.Command, core.Book]
	borrowBookHandler *observable.CommandWrapper[borrowbook.Command, core.BorrowingRecord]
	returnBookHandler *observable.CommandWrapper[returnbook.Command, core.BorrowingRecord]

	listBooksHandler      *observable.QueryWrapper[listbooks.Query, listbooks.Books]
	getBookHandler        *observable.QueryWrapper[getbook.Query, getbook.BookLookup]
	listBorrowingsHandler *observable.QueryWrapper[listborrowings.Query, listborrowings.Borrowings]
	getBorrowingHandler   *observable.QueryWrapper[getborrowing.Query, getborrowing.BorrowingLookup]
	activityHandler       *observable.QueryWrapper[activitylog.Query, activitylog.Activity]
}

// New creates a Catalog on top of the store. The journal may be nil, then nothing is recorded
// and Activity fails with activitylog.ErrNoJournalConfigured.
//
//nolint:funlen
func New(catalogStore shell.CatalogStore, journal eventjournal.Journal, opts ...Option) (*Catalog, error) {
	if catalogStore == nil {
		return nil, ErrNilStore
	}

	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	var recorder *shell.EventRecorder
	var activityJournal activitylog.EventJournal
	if journal != nil {
		recorder = shell.NewEventRecorder(
			journal,
			shell.WithRecorderMetrics(o.metricsCollector),
			shell.WithRecorderContextualLogging(o.contextualLogger),
			shell.WithRecorderLogging(o.logger),
		)
		activityJournal = journal
	}

	c := &Catalog{store: catalogStore, clock: o.clock}
	var err error

	if c.addBookHandler, err = wrapCommandHandler(
		addbook.NewCommandHandler(catalogStore, recorder, addbook.WithRetryOptions(o.retryOptions...)), o,
	); err != nil {
		return nil, err
	}

	if c.updateBookHandler, err = wrapCommandHandler(
		updatebook.NewCommandHandler(catalogStore, recorder, updatebook.WithRetryOptions(o.retryOptions...)), o,
	); err != nil {
		return nil, err
	}

	if c.deleteBookHandler, err = wrapCommandHandler(
		deletebook.NewCommandHandler(catalogStore, recorder, deletebook.WithRetryOptions(o.retryOptions...)), o,
	); err != nil {
		return nil, err
	}

	if c.borrowBookHandler, err = wrapCommandHandler(
		borrowbook.NewCommandHandler(catalogStore, recorder, borrowbook.WithRetryOptions(o.retryOptions...)), o,
	); err != nil {
		return nil, err
	}

	if c.returnBookHandler, err = wrapCommandHandler(
		returnbook.NewCommandHandler(catalogStore, recorder, returnbook.WithRetryOptions(o.retryOptions...)), o,
	); err != nil {
		return nil, err
	}

	if c.listBooksHandler, err = wrapQueryHandler(listbooks.NewQueryHandler(catalogStore), o); err != nil {
		return nil, err
	}

	if c.getBookHandler, err = wrapQueryHandler(getbook.NewQueryHandler(catalogStore), o); err != nil {
		return nil, err
	}

	if c.listBorrowingsHandler, err = wrapQueryHandler(listborrowings.NewQueryHandler(catalogStore), o); err != nil {
		return nil, err
	}

	if c.getBorrowingHandler, err = wrapQueryHandler(getborrowing.NewQueryHandler(catalogStore), o); err != nil {
		return nil, err
	}

	if c.activityHandler, err = wrapQueryHandler(activitylog.NewQueryHandler(activityJournal), o); err != nil {
		return nil, err
	}

	return c, nil
}

/*** Queries ***/

// ListBooks returns all books, or only those whose availability matches if available is not nil.
func (c *Catalog) ListBooks(ctx context.Context, available *bool) ([]core.Book, error) {
	result, err := c.listBooksHandler.Handle(ctx, listbooks.Query{Available: available})
	if err != nil {
		return nil, err
	}

	return result.Books, nil
}

// GetBook looks up a book. The bool is false if no book has the id.
func (c *Catalog) GetBook(ctx context.Context, id core.BookID) (core.Book, bool, error) {
	result, err := c.getBookHandler.Handle(ctx, getbook.BuildQuery(id))
	if err != nil {
		return core.Book{}, false, err
	}

	return result.Book, result.Found, nil
}

// ListBorrowings returns all borrowing records, or only those with the status if it is not empty.
func (c *Catalog) ListBorrowings(ctx context.Context, status string) ([]core.BorrowingView, error) {
	result, err := c.listBorrowingsHandler.Handle(ctx, listborrowings.BuildQuery(status, c.clock()))
	if err != nil {
		return nil, err
	}

	return result.Borrowings, nil
}

// GetBorrowing looks up a borrowing record. The bool is false if no record has the id.
func (c *Catalog) GetBorrowing(ctx context.Context, id core.BorrowingID) (core.BorrowingView, bool, error) {
	result, err := c.getBorrowingHandler.Handle(ctx, getborrowing.BuildQuery(id, c.clock()))
	if err != nil {
		return core.BorrowingView{}, false, err
	}

	return result.Borrowing, result.Found, nil
}

// Activity returns journaled catalog activity.
func (c *Catalog) Activity(ctx context.Context, query activitylog.Query) ([]activitylog.Entry, error) {
	result, err := c.activityHandler.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	return result.Entries, nil
}

/*** Commands ***/

// AddBook adds a book to the catalog and returns it with its new id.
func (c *Catalog) AddBook(ctx context.Context, title, author, isbn, category string) (core.Book, error) {
	book, _, err := c.addBookHandler.Handle(ctx, addbook.BuildCommand(title, author, isbn, category, c.clock()))

	return book, err
}

// UpdateBook overwrites the attributes the patch supplies and returns the updated book.
func (c *Catalog) UpdateBook(ctx context.Context, id core.BookID, patch core.BookPatch) (core.Book, error) {
	book, _, err := c.updateBookHandler.Handle(ctx, updatebook.BuildCommand(id, patch, c.clock()))

	return book, err
}

// DeleteBook removes a book. Business rule violations are reported in the result, not as error.
// The error is reserved for failures like a canceled context.
func (c *Catalog) DeleteBook(ctx context.Context, id core.BookID) (DeleteResult, error) {
	_, _, err := c.deleteBookHandler.Handle(ctx, deletebook.BuildCommand(id, c.clock()))

	switch core.KindOf(err) {
	case core.KindNotFound, core.KindInvalidState:
		return DeleteResult{Success: false, Message: err.Error()}, nil
	}

	if err != nil {
		return DeleteResult{}, err
	}

	return DeleteResult{Success: true, Message: core.ReasonBookDeleted}, nil
}

// BorrowBook lends the book for the given days, core.DefaultBorrowingDays if days are not set.
func (c *Catalog) BorrowBook(
	ctx context.Context,
	bookID core.BookID,
	borrowerName string,
	days core.Optional[int],
) (core.BorrowingView, error) {

	now := c.clock()

	record, _, err := c.borrowBookHandler.Handle(ctx, borrowbook.BuildCommand(bookID, borrowerName, days, now))
	if err != nil {
		return core.BorrowingView{}, err
	}

	return c.viewOf(record, now), nil
}

// ReturnBook closes the borrowing record and makes its book available again.
func (c *Catalog) ReturnBook(ctx context.Context, id core.BorrowingID) (core.BorrowingView, error) {
	now := c.clock()

	record, _, err := c.returnBookHandler.Handle(ctx, returnbook.BuildCommand(id, now))
	if err != nil {
		return core.BorrowingView{}, err
	}

	return c.viewOf(record, now), nil
}

func (c *Catalog) viewOf(record core.BorrowingRecord, now time.Time) core.BorrowingView {
	state, _ := c.store.Snapshot()

	return core.BuildBorrowingView(state, record, now)
}
