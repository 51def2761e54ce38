package httpapi

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errMalformedBody = errors.New("request body is not valid JSON")

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// statusFor maps an operation error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, core.ErrInvalidInput):
		return http.StatusBadRequest
	case shell.IsTimeoutError(err):
		return http.StatusGatewayTimeout
	case shell.IsCancellationError(err):
		// client gave up, nobody reads the response
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeOperationError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status != http.StatusInternalServerError {
		writeError(w, status, err.Error())
		return
	}

	s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
	writeError(w, status, http.StatusText(status))
}

func decodeBody(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return errMalformedBody
	}

	return nil
}

type requiredField struct {
	name    string
	present bool
}

// firstMissing returns the name of the first field absent from a request body.
// A field sent as null counts as absent.
func firstMissing(fields ...requiredField) (string, bool) {
	for _, field := range fields {
		if !field.present {
			return field.name, true
		}
	}

	return "", false
}
