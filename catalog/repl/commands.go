package repl

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/activitylog"
)

const activityLimit = 50

var (
	errUsage        = errors.New("wrong arguments")
	errUnknownField = errors.New("unknown field")
)

func usage(format string) error {
	return fmt.Errorf("%w, usage: %s", errUsage, format)
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}

	return id, nil
}

func (c *Console) books(ctx context.Context, args []string) error {
	var available *bool

	if len(args) > 0 {
		var value bool
		switch strings.ToLower(args[0]) {
		case "available":
			value = true
		case "unavailable":
			value = false
		default:
			return usage("books [available|unavailable]")
		}
		available = &value
	}

	books, err := c.catalog.ListBooks(ctx, available)
	if err != nil {
		return err
	}

	c.renderBooks(books)

	return nil
}

func (c *Console) book(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("book <id>")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	book, found, err := c.catalog.GetBook(ctx, id)
	if err != nil {
		return err
	}

	if !found {
		fmt.Fprintf(c.out, "No book with id %d\n", id)
		return nil
	}

	c.renderBooks([]core.Book{book})

	return nil
}

func (c *Console) add(ctx context.Context, rest string) error {
	parts := strings.Split(rest, "|")
	if len(parts) != 4 {
		return usage("add <title> | <author> | <isbn> | <category>")
	}

	for i, name := range []string{"title", "author", "isbn", "category"} {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	book, err := c.catalog.AddBook(ctx, parts[0], parts[1], parts[2], parts[3])
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Added book %d\n", book.ID)
	c.renderBooks([]core.Book{book})

	return nil
}

func (c *Console) update(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("update <id> field=value ...")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	patch, err := parsePatch(args[1:])
	if err != nil {
		return err
	}

	book, err := c.catalog.UpdateBook(ctx, id, patch)
	if err != nil {
		return err
	}

	c.renderBooks([]core.Book{book})

	return nil
}

// parsePatch reads field=value pairs. A token without '=' continues the previous value,
// so "title=Anak Semua Bangsa" sets the whole title.
func parsePatch(tokens []string) (core.BookPatch, error) {
	values := make(map[string]string)
	var order []string
	current := ""

	for _, token := range tokens {
		field, value, isPair := strings.Cut(token, "=")
		if !isPair {
			if current == "" {
				return core.BookPatch{}, usage("update <id> field=value ...")
			}
			values[current] += " " + token
			continue
		}

		current = strings.ToLower(field)
		if _, seen := values[current]; !seen {
			order = append(order, current)
		}
		values[current] = value
	}

	var patch core.BookPatch

	for _, field := range order {
		value := values[field]

		switch field {
		case "title":
			patch.Title = core.Some(value)
		case "author":
			patch.Author = core.Some(value)
		case "isbn":
			patch.ISBN = core.Some(value)
		case "category":
			patch.Category = core.Some(value)
		case "available":
			available, err := strconv.ParseBool(value)
			if err != nil {
				return core.BookPatch{}, fmt.Errorf("available must be true or false, got %q", value)
			}
			patch.Available = core.Some(available)
		default:
			return core.BookPatch{}, fmt.Errorf("%w %q", errUnknownField, field)
		}
	}

	return patch, nil
}

func (c *Console) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("delete <id>")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	result, err := c.catalog.DeleteBook(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, result.Message)

	return nil
}

func (c *Console) borrow(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return usage("borrow <bookId> <days> <borrower name>")
	}

	bookID, err := parseID(args[0])
	if err != nil {
		return err
	}

	days := core.None[int]()
	if args[1] != "-" {
		value, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			return fmt.Errorf("invalid days %q", args[1])
		}
		days = core.Some(value)
	}

	borrowing, err := c.catalog.BorrowBook(ctx, bookID, strings.Join(args[2:], " "), days)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Created borrowing %d\n", borrowing.ID)
	c.renderBorrowings([]core.BorrowingView{borrowing})

	return nil
}

func (c *Console) returnBook(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("return <borrowingId>")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	borrowing, err := c.catalog.ReturnBook(ctx, id)
	if err != nil {
		return err
	}

	c.renderBorrowings([]core.BorrowingView{borrowing})

	return nil
}

func (c *Console) borrowings(ctx context.Context, args []string) error {
	status := ""
	if len(args) > 0 {
		status = strings.ToLower(args[0])
	}

	borrowings, err := c.catalog.ListBorrowings(ctx, status)
	if err != nil {
		return err
	}

	c.renderBorrowings(borrowings)

	return nil
}

func (c *Console) borrowing(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("borrowing <id>")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	borrowing, found, err := c.catalog.GetBorrowing(ctx, id)
	if err != nil {
		return err
	}

	if !found {
		fmt.Fprintf(c.out, "No borrowing record with id %d\n", id)
		return nil
	}

	c.renderBorrowings([]core.BorrowingView{borrowing})

	return nil
}

func (c *Console) activity(ctx context.Context, args []string) error {
	bookID := 0

	if len(args) > 0 {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		bookID = id
	}

	entries, err := c.catalog.Activity(ctx, activitylog.BuildQuery(bookID, activityLimit))
	if err != nil {
		return err
	}

	c.renderActivity(entries)

	return nil
}
