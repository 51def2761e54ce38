package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/activitylog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/service"
)

// Catalog is what the API needs from service.Catalog.
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

// Server routes HTTP requests to the catalog.
type Server struct {
	catalog        Catalog
	logger         *slog.Logger
	allowedOrigins []string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for request logs and internal errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithAllowedOrigins sets the CORS origins. The default allows every origin.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// NewServer creates a new Server.
func NewServer(catalog Catalog, opts ...Option) *Server {
	s := &Server{
		catalog:        catalog,
		logger:         slog.New(slog.DiscardHandler),
		allowedOrigins: []string{"*"},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler returns the complete middleware chain and router.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(s.correlationID, s.accessLog)

	router.HandleFunc("/", s.index).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/books", s.listBooks).Methods(http.MethodGet)
	api.HandleFunc("/books", s.addBook).Methods(http.MethodPost)
	api.HandleFunc("/books/{id:[0-9]+}", s.getBook).Methods(http.MethodGet)
	api.HandleFunc("/books/{id:[0-9]+}", s.updateBook).Methods(http.MethodPatch)
	api.HandleFunc("/books/{id:[0-9]+}", s.deleteBook).Methods(http.MethodDelete)
	api.HandleFunc("/borrowings", s.listBorrowings).Methods(http.MethodGet)
	api.HandleFunc("/borrowings", s.borrowBook).Methods(http.MethodPost)
	api.HandleFunc("/borrowings/{id:[0-9]+}", s.getBorrowing).Methods(http.MethodGet)
	api.HandleFunc("/borrowings/{id:[0-9]+}/return", s.returnBook).Methods(http.MethodPost)
	api.HandleFunc("/activity", s.activity).Methods(http.MethodGet)

	// the router skips its middleware for unmatched requests
	notFound := s.withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	}))
	methodNotAllowed := s.withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}))
	router.NotFoundHandler, api.NotFoundHandler = notFound, notFound
	router.MethodNotAllowedHandler, api.MethodNotAllowedHandler = methodNotAllowed, methodNotAllowed

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", correlationHeader},
		ExposedHeaders: []string{correlationHeader},
	})

	return c.Handler(router)
}

const indexPage = `<h1>Library Borrowing Catalog</h1>
<p>The JSON API lives under <code>/api</code>: books, borrowings and activity.</p>
`

func (s *Server) index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexPage))
}
