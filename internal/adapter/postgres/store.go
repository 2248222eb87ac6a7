package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore"
)

// Store serves the record store contract from PostgreSQL, one table per
// collection. Every record of a batched write is its own statement, so a
// rejected record is reported in the results without undoing the others.
type Store struct {
	db  Querier
	log *slog.Logger
}

var _ recordstore.Client = (*Store)(nil)

// NewStore creates a Store over db.
func NewStore(db Querier, log *slog.Logger) *Store {
	return &Store{db: db, log: log.With("adapter", "postgres")}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func failure(format string, args ...any) *recordstore.Response {
	return &recordstore.Response{Success: false, Message: fmt.Sprintf(format, args...)}
}

func lookup(collection string) (*table, *recordstore.Response) {
	t, ok := tables[collection]
	if !ok {
		return nil, failure("unknown collection %q", collection)
	}
	return t, nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// FetchRecords returns every record of the collection.
func (s *Store) FetchRecords(ctx context.Context, collection string, params recordstore.FetchParams) (*recordstore.Response, error) {
	t, fail := lookup(collection)
	if fail != nil {
		return fail, nil
	}
	cols, err := t.selectColumns(params.Fields)
	if err != nil {
		return failure("%v", err), nil
	}
	order, err := t.orderClauses(params.OrderBy)
	if err != nil {
		return failure("%v", err), nil
	}

	query, args, err := builder().
		Select(columnNames(cols)...).
		From(t.name).
		OrderBy(order...).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build fetch %s: %w", collection, err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", collection, err)
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", collection, err)
	}

	recs := make([]recordstore.Record, 0, len(maps))
	for _, m := range maps {
		recs = append(recs, rowRecord(cols, m))
	}

	resp := &recordstore.Response{Success: true}
	if err := resp.SetData(recs); err != nil {
		return nil, fmt.Errorf("encode %s: %w", collection, err)
	}
	return resp, nil
}

// GetRecordByID returns one record; a missing Id answers with null data.
func (s *Store) GetRecordByID(ctx context.Context, collection string, id int64, params recordstore.FetchParams) (*recordstore.Response, error) {
	t, fail := lookup(collection)
	if fail != nil {
		return fail, nil
	}
	cols, err := t.selectColumns(params.Fields)
	if err != nil {
		return failure("%v", err), nil
	}

	query, args, err := builder().
		Select(columnNames(cols)...).
		From(t.name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get %s: %w", collection, err)
	}

	row, err := s.queryOne(ctx, query, args)
	resp := &recordstore.Response{Success: true}
	switch {
	case err == nil:
		if err := resp.SetData(rowRecord(cols, row)); err != nil {
			return nil, fmt.Errorf("encode %s: %w", collection, err)
		}
	case isNoRows(err):
		// null data
	default:
		return nil, fmt.Errorf("get %s %d: %w", collection, id, err)
	}
	return resp, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// CreateRecords inserts each record and reports one result per record.
func (s *Store) CreateRecords(ctx context.Context, collection string, records []recordstore.Record) (*recordstore.Response, error) {
	t, fail := lookup(collection)
	if fail != nil {
		return fail, nil
	}

	return s.writeEach(ctx, "create", collection, records, func(rec recordstore.Record) (recordstore.Result, error) {
		vals, issues := t.values(rec)
		if len(issues) > 0 {
			return invalid(issues), nil
		}
		if len(vals) == 0 {
			return recordstore.Result{Code: recordstore.CodeValidation, Message: "record has no fields"}, nil
		}

		query, args, err := builder().
			Insert(t.name).
			SetMap(vals).
			Suffix("RETURNING " + joinNames(t.columns)).
			ToSql()
		if err != nil {
			return recordstore.Result{}, fmt.Errorf("build insert: %w", err)
		}
		return s.returning(ctx, t, query, args)
	})
}

// UpdateRecords writes the fields present in each record to the row named by its Id.
func (s *Store) UpdateRecords(ctx context.Context, collection string, records []recordstore.Record) (*recordstore.Response, error) {
	t, fail := lookup(collection)
	if fail != nil {
		return fail, nil
	}

	return s.writeEach(ctx, "update", collection, records, func(rec recordstore.Record) (recordstore.Result, error) {
		id := rec.ID()
		if id <= 0 {
			return recordstore.Result{Code: recordstore.CodeValidation, Message: "record has no Id"}, nil
		}
		vals, issues := t.values(rec)
		if len(issues) > 0 {
			return invalid(issues), nil
		}

		var (
			query string
			args  []any
			err   error
		)
		if len(vals) == 0 {
			query, args, err = builder().
				Select(columnNames(t.columns)...).
				From(t.name).
				Where(squirrel.Eq{"id": id}).
				ToSql()
		} else {
			query, args, err = builder().
				Update(t.name).
				SetMap(vals).
				Where(squirrel.Eq{"id": id}).
				Suffix("RETURNING " + joinNames(t.columns)).
				ToSql()
		}
		if err != nil {
			return recordstore.Result{}, fmt.Errorf("build update: %w", err)
		}
		return s.returning(ctx, t, query, args)
	})
}

// DeleteRecords removes the given Ids; Ids that did not exist fail with NOT_FOUND.
func (s *Store) DeleteRecords(ctx context.Context, collection string, ids []int64) (*recordstore.Response, error) {
	t, fail := lookup(collection)
	if fail != nil {
		return fail, nil
	}
	if len(ids) == 0 {
		return &recordstore.Response{Success: true}, nil
	}

	query, args, err := builder().
		Delete(t.name).
		Where(squirrel.Eq{"id": ids}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete %s: %w", collection, err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("delete %s: %w", collection, err)
	}
	deleted, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("delete %s: %w", collection, err)
	}

	gone := make(map[int64]bool, len(deleted))
	for _, id := range deleted {
		gone[id] = true
	}

	resp := &recordstore.Response{Success: true, Results: make([]recordstore.Result, 0, len(ids))}
	for _, id := range ids {
		if gone[id] {
			resp.Results = append(resp.Results, recordstore.Result{Success: true, Data: recordstore.Record{recordstore.IDField: id}})
			continue
		}
		resp.Results = append(resp.Results, recordstore.Result{
			Code:    recordstore.CodeNotFound,
			Message: fmt.Sprintf("record %d does not exist", id),
		})
	}
	return resp, nil
}

// writeEach runs fn per record. Record-level failures become failed results;
// anything else aborts the call.
func (s *Store) writeEach(
	ctx context.Context,
	op, collection string,
	records []recordstore.Record,
	fn func(recordstore.Record) (recordstore.Result, error),
) (*recordstore.Response, error) {
	resp := &recordstore.Response{Success: true, Results: make([]recordstore.Result, 0, len(records))}

	for i, rec := range records {
		res, err := fn(rec)
		if err != nil {
			mapped, ok := recordResult(err)
			if !ok {
				return nil, fmt.Errorf("%s %s record %d: %w", op, collection, i, err)
			}
			res = mapped
		}
		if !res.Success {
			s.log.DebugContext(ctx, "record rejected",
				slog.String("op", op),
				slog.String("collection", collection),
				slog.Int("index", i),
				slog.String("message", res.Message),
			)
		}
		resp.Results = append(resp.Results, res)
	}
	return resp, nil
}

func (s *Store) returning(ctx context.Context, t *table, query string, args []any) (recordstore.Result, error) {
	row, err := s.queryOne(ctx, query, args)
	if err != nil {
		return recordstore.Result{}, err
	}
	return recordstore.Result{Success: true, Data: rowRecord(t.columns, row)}, nil
}

func (s *Store) queryOne(ctx context.Context, query string, args []any) (map[string]any, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToMap)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func invalid(issues []recordstore.FieldIssue) recordstore.Result {
	return recordstore.Result{Code: recordstore.CodeValidation, Message: "invalid record", Errors: issues}
}

func joinNames(cols []column) string {
	return strings.Join(columnNames(cols), ", ")
}
