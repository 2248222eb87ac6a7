package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore"
)

// recordResult converts the outcome of a single-record statement into a
// store result. ok is false when err is not about the record itself
// (cancellation, lost connection) and the whole call has to fail.
//
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func recordResult(err error) (res recordstore.Result, ok bool) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return recordstore.Result{}, false
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return recordstore.Result{Code: recordstore.CodeNotFound, Message: "record does not exist"}, true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		res := recordstore.Result{Message: pgErr.Message}
		switch {
		case pgErr.Code == "23505": // unique_violation
			res.Message = "duplicate record: " + pgErr.Message
		case pgErr.Code == "23503": // foreign_key_violation
			res.Code = recordstore.CodeNotFound
		case strings.HasPrefix(pgErr.Code, "22"), strings.HasPrefix(pgErr.Code, "23"):
			// data exceptions and the remaining integrity violations (not null, check)
			res.Code = recordstore.CodeValidation
		default:
			return recordstore.Result{}, false
		}
		if pgErr.ColumnName != "" {
			res.Errors = []recordstore.FieldIssue{{FieldLabel: pgErr.ColumnName, Message: pgErr.Message}}
		}
		return res, true
	}

	return recordstore.Result{}, false
}
