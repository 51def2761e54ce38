package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

type addBookRequest struct {
	Title    core.Optional[string] `json:"title"`
	Author   core.Optional[string] `json:"author"`
	ISBN     core.Optional[string] `json:"isbn"`
	Category core.Optional[string] `json:"category"`
}

type booksResponse struct {
	Books []core.Book `json:"books"`
}

type bookResponse struct {
	Book *core.Book `json:"book"`
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])

	return id, err == nil
}

func (s *Server) listBooks(w http.ResponseWriter, r *http.Request) {
	var available *bool

	if raw := r.URL.Query().Get("available"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "available must be true or false")
			return
		}
		available = &value
	}

	books, err := s.catalog.ListBooks(r.Context(), available)
	if err != nil {
		s.writeOperationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, booksResponse{Books: books})
}

func (s *Server) getBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	book, found, err := s.catalog.GetBook(r.Context(), id)
	if err != nil {
		s.writeOperationError(w, r, err)
		return
	}

	if !found {
		writeJSON(w, http.StatusOK, bookResponse{})
		return
	}

	writeJSON(w, http.StatusOK, bookResponse{Book: &book})
}

func (s *Server) addBook(w http.ResponseWriter, r *http.Request) {
	var request addBookRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if field, missing := firstMissing(
		requiredField{"title", request.Title.Set},
		requiredField{"author", request.Author.Set},
		requiredField{"isbn", request.ISBN.Set},
		requiredField{"category", request.Category.Set},
	); missing {
		writeError(w, http.StatusBadRequest, field+" is required")
		return
	}

	book, err := s.catalog.AddBook(
		r.Context(),
		request.Title.Value,
		request.Author.Value,
		request.ISBN.Value,
		request.Category.Value,
	)
	if err != nil {
		s.writeOperationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, bookResponse{Book: &book})
}

func (s *Server) updateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	var patch core.BookPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	book, err := s.catalog.UpdateBook(r.Context(), id, patch)
	if err != nil {
		s.writeOperationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, bookResponse{Book: &book})
}

func (s *Server) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	result, err := s.catalog.DeleteBook(r.Context(), id)
	if err != nil {
		s.writeOperationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
