package repl

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/activitylog"
)

const dateFormat = "2006-01-02"

func (c *Console) newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)

	return t
}

func (c *Console) render(t table.Writer, rows int) {
	fmt.Fprintln(c.out, t.Render())

	rowText := "rows"
	if rows == 1 {
		rowText = "row"
	}
	fmt.Fprintf(c.out, "%d %s\n", rows, rowText)
}

func (c *Console) renderBooks(books []core.Book) {
	t := c.newTable(table.Row{"ID", "Title", "Author", "ISBN", "Category", "Available"})

	for _, book := range books {
		t.AppendRow(table.Row{book.ID, book.Title, book.Author, book.ISBN, book.Category, yesNo(book.Available)})
	}

	c.render(t, len(books))
}

func (c *Console) renderBorrowings(borrowings []core.BorrowingView) {
	t := c.newTable(table.Row{"ID", "Book", "Borrower", "Borrowed", "Due", "Returned", "Status"})

	for _, b := range borrowings {
		book := strconv.Itoa(b.BookID) + " (deleted)"
		if b.Book != nil {
			book = strconv.Itoa(b.BookID) + " " + b.Book.Title
		}

		returned := "-"
		if b.ReturnDate != nil {
			returned = b.ReturnDate.Format(dateFormat)
		}

		status := b.Status
		if b.Overdue {
			status = core.StatusOverdue
		}

		t.AppendRow(table.Row{
			b.ID, book, b.BorrowerName, b.BorrowDate.Format(dateFormat), b.DueDate.Format(dateFormat), returned, status,
		})
	}

	c.render(t, len(borrowings))
}

func (c *Console) renderActivity(entries []activitylog.Entry) {
	t := c.newTable(table.Row{"#", "When", "Event", "Book", "Borrowing", "Detail"})

	for _, e := range entries {
		detail := e.BorrowerName
		if e.Failed {
			detail = "failed: " + e.Reason
		}

		t.AppendRow(table.Row{
			e.SequenceNumber, e.OccurredAt.Local().Format(time.DateTime), e.EventType, e.BookID, e.BorrowingID, detail,
		})
	}

	c.render(t, len(entries))
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
