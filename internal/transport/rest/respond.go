package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// handleError maps domain errors onto HTTP statuses. Anything unrecognized
// is logged and answered with 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *domain.ValidationError
		se *domain.StoreError
	)
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: errorDetail{
			Code:    "validation",
			Message: "invalid input",
			Fields:  toFieldErrors(ve.Errors),
		}})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, domain.ErrLoad):
		log.WarnContext(r.Context(), "load failed", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "load_failed", "ideas could not be loaded, retry later")
	case errors.As(err, &se):
		log.ErrorContext(r.Context(), "store error",
			slog.String("collection", se.Collection),
			slog.String("op", se.Op),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadGateway, "store", se.Message)
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

func toFieldErrors(errs []domain.FieldError) []fieldError {
	out := make([]fieldError, len(errs))
	for i, fe := range errs {
		out[i] = fieldError{Field: fe.Field, Message: fe.Message}
	}
	return out
}

// decodeJSON reads a bounded JSON body into dst. Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "required")
		}
		return domain.NewValidationError("body", err.Error())
	}
	return nil
}

// idParam parses the {id} route segment.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}
