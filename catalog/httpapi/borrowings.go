package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/features/query/activitylog"
)

type borrowBookRequest struct {
	BookID       core.Optional[int]    `json:"bookId"`
	BorrowerName core.Optional[string] `json:"borrowerName"`
	Days         core.Optional[int]    `json:"days"`
}

type borrowingsResponse struct {
	Borrowings []core.BorrowingView `json:"borrowings"`
}

type borrowingResponse struct {
	Borrowing *core.BorrowingView `json:"borrowing"`
}

type activityResponse struct {
	Entries []activitylog.Entry `json:"entries"`
}

func (s *Server) listBorrowings(w http.ResponseWriter, r *http.Request) {
	borrowings, err := s.catalog.ListBorrowings(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		s.writeOperationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, borrowingsResponse{Borrowings: borrowings})
}

func (s *Server) getBorrowing(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid borrowing id")
		return
	}

	borrowing, found, err := s.catalog.GetBorrowing(r.Context(), id)
	if err != nil {
		s.writeOperationError(w, r, err)
		return
	}

	if !found {
		writeJSON(w, http.StatusOK, borrowingResponse{})
		return
	}

	writeJSON(w, http.StatusOK, borrowingResponse{Borrowing: &borrowing})
}

func (s *Server) borrowBook(w http.ResponseWriter, r *http.Request) {
	var request borrowBookRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if field, missing := firstMissing(
		requiredField{"bookId", request.BookID.Set},
		requiredField{"borrowerName", request.BorrowerName.Set},
	); missing {
		writeError(w, http.StatusBadRequest, field+" is required")
		return
	}

	borrowing, err := s.catalog.BorrowBook(r.Context(), request.BookID.Value, request.BorrowerName.Value, request.Days)
	if err != nil {
		s.writeOperationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, borrowingResponse{Borrowing: &borrowing})
}

func (s *Server) returnBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid borrowing id")
		return
	}

	borrowing, err := s.catalog.ReturnBook(r.Context(), id)
	if err != nil {
		s.writeOperationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, borrowingResponse{Borrowing: &borrowing})
}

func (s *Server) activity(w http.ResponseWriter, r *http.Request) {
	query, err := activityQueryFrom(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := s.catalog.Activity(r.Context(), query)
	if err != nil {
		s.writeOperationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, activityResponse{Entries: entries})
}

func activityQueryFrom(r *http.Request) (activitylog.Query, error) {
	params := r.URL.Query()
	query := activitylog.Query{EventTypes: params["type"]}

	var err error

	if raw := params.Get("bookId"); raw != "" {
		if query.BookID, err = strconv.Atoi(raw); err != nil {
			return activitylog.Query{}, errInvalidParameter("bookId")
		}
	}

	if raw := params.Get("limit"); raw != "" {
		if query.Limit, err = strconv.Atoi(raw); err != nil || query.Limit < 0 {
			return activitylog.Query{}, errInvalidParameter("limit")
		}
	}

	if raw := params.Get("from"); raw != "" {
		if query.From, err = time.Parse(time.RFC3339, raw); err != nil {
			return activitylog.Query{}, errInvalidParameter("from")
		}
	}

	if raw := params.Get("until"); raw != "" {
		if query.Until, err = time.Parse(time.RFC3339, raw); err != nil {
			return activitylog.Query{}, errInvalidParameter("until")
		}
	}

	return query, nil
}

type errInvalidParameter string

func (e errInvalidParameter) Error() string {
	return "invalid query parameter " + string(e)
}
