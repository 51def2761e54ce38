package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/activitylog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/service"
)

// ErrExit is returned by Execute for the exit command.
var ErrExit = errors.New("exit requested")

// Catalog is what the console needs from service.Catalog.
type Catalog interface {
	ListBooks(ctx context.Context, available *bool) ([]core.Book, error)
	GetBook(ctx context.Context, id core.BookID) (core.Book, bool, error)
	ListBorrowings(ctx context.Context, status string) ([]core.BorrowingView, error)
	GetBorrowing(ctx context.Context, id core.BorrowingID) (core.BorrowingView, bool, error)
	Activity(ctx context.Context, query activitylog.Query) ([]activitylog.Entry, error)
	AddBook(ctx context.Context, title, author, isbn, category string) (core.Book, error)
	UpdateBook(ctx context.Context, id core.BookID, patch core.BookPatch) (core.Book, error)
	DeleteBook(ctx context.Context, id core.BookID) (service.DeleteResult, error)
	BorrowBook(ctx context.Context, bookID core.BookID, borrowerName string, days core.Optional[int]) (core.BorrowingView, error)
	ReturnBook(ctx context.Context, id core.BorrowingID) (core.BorrowingView, error)
}

// Console executes catalog commands typed by a librarian.
type Console struct {
	catalog     Catalog
	out         io.Writer
	historyFile string
}

// Option configures a Console.
type Option func(*Console)

// WithOutput sets where results are written. The default is os.Stdout.
func WithOutput(out io.Writer) Option {
	return func(c *Console) {
		c.out = out
	}
}

// WithHistoryFile sets the readline history file. An empty path disables history.
func WithHistoryFile(path string) Option {
	return func(c *Console) {
		c.historyFile = path
	}
}

// NewConsole creates a new Console.
func NewConsole(catalog Catalog, opts ...Option) *Console {
	c := &Console{
		catalog:     catalog,
		out:         os.Stdout,
		historyFile: defaultHistoryFile(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func defaultHistoryFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return filepath.Join(homeDir, ".librarian_history")
}

// Run reads and executes lines until exit, EOF, Ctrl+C or the context is done.
func (c *Console) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "\033[1;36mlibrarian>\033[0m ",
		HistoryFile:       c.historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		Stdout:            c.out,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer func() { _ = rl.Close() }()

	fmt.Fprintln(c.out, "Library catalog console")
	fmt.Fprintln(c.out, "Enter 'help' for the list of commands or 'exit' to quit.")

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}

			return err
		}

		if err := c.Execute(ctx, line); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}

			fmt.Fprintf(c.out, "\033[1;31mError:\033[0m %v\n", err)
		}
	}
}

// Execute runs one console line.
func (c *Console) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))

	switch name {
	case "exit", "quit", `\q`:
		return ErrExit
	case "help", `\h`, "?":
		c.printHelp()
		return nil
	case "books":
		return c.books(ctx, args)
	case "book":
		return c.book(ctx, args)
	case "add":
		return c.add(ctx, rest)
	case "update":
		return c.update(ctx, args)
	case "delete":
		return c.delete(ctx, args)
	case "borrow":
		return c.borrow(ctx, args)
	case "return":
		return c.returnBook(ctx, args)
	case "borrowings":
		return c.borrowings(ctx, args)
	case "borrowing":
		return c.borrowing(ctx, args)
	case "activity":
		return c.activity(ctx, args)
	default:
		return fmt.Errorf("unknown command %q, try 'help'", fields[0])
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `Commands:
  books [available|unavailable]                   list books
  book <id>                                       show one book
  add <title> | <author> | <isbn> | <category>    add a book
  update <id> field=value ...                     change title, author, isbn, category or available
  delete <id>                                     delete a book
  borrow <bookId> <days> <borrower name>          lend a book, days may be '-' for 14
  return <borrowingId>                            return a book
  borrowings [borrowed|returned|overdue]          list borrowing records
  borrowing <id>                                  show one borrowing record
  activity [bookId]                               show journaled activity
  help                                            show this help
  exit                                            quit`)
}
