package recordstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

// Collection binds a Client to one named collection with a fixed field list
// and ordering, and turns store envelopes into domain errors:
//
//   - transport failures and non-success envelopes become *domain.StoreError
//   - any failed record of a batch fails the whole call
//   - missing records (null get data, NOT_FOUND results) become domain.ErrNotFound
//
// Failures are logged here, at the store boundary, before they are returned.
type Collection struct {
	client  Client
	name    string
	fields  []string
	orderBy []OrderBy
	log     *slog.Logger
}

// NewCollection creates a Collection reading fields in the given order.
func NewCollection(client Client, name string, fields []string, orderBy []OrderBy, log *slog.Logger) *Collection {
	return &Collection{
		client:  client,
		name:    name,
		fields:  fields,
		orderBy: orderBy,
		log:     log.With("collection", name),
	}
}

// Name returns the collection name.
func (c *Collection) Name() string { return c.name }

func (c *Collection) params() FetchParams {
	return FetchParams{Fields: c.fields, OrderBy: c.orderBy}
}

// Fetch returns every record in the collection's ordering.
func (c *Collection) Fetch(ctx context.Context) ([]Record, error) {
	resp, err := c.client.FetchRecords(ctx, c.name, c.params())
	if err := c.check(ctx, "fetch", resp, err); err != nil {
		return nil, err
	}

	recs, err := resp.Records()
	if err != nil {
		return nil, c.fail(ctx, "fetch", fmt.Sprintf("decode records: %v", err), nil)
	}
	return recs, nil
}

// Get returns the record with the given Id.
func (c *Collection) Get(ctx context.Context, id int64) (Record, error) {
	resp, err := c.client.GetRecordByID(ctx, c.name, id, c.params())
	if err := c.check(ctx, "get", resp, err); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, c.notFound(ctx, id)
		}
		return nil, err
	}

	rec, err := resp.Record()
	if err != nil {
		return nil, c.fail(ctx, "get", fmt.Sprintf("decode record: %v", err), nil)
	}
	if len(rec) == 0 {
		return nil, c.notFound(ctx, id)
	}
	return rec, nil
}

// Create stores rec and returns the record as the store saved it.
func (c *Collection) Create(ctx context.Context, rec Record) (Record, error) {
	resp, err := c.client.CreateRecords(ctx, c.name, []Record{rec})
	if err := c.check(ctx, "create", resp, err); err != nil {
		return nil, err
	}
	return c.single(ctx, "create", 0, resp)
}

// Update writes the fields present in rec to the record named by rec's Id.
func (c *Collection) Update(ctx context.Context, rec Record) (Record, error) {
	id := rec.ID()
	resp, err := c.client.UpdateRecords(ctx, c.name, []Record{rec})
	if err := c.check(ctx, "update", resp, err); err != nil {
		return nil, err
	}
	return c.single(ctx, "update", id, resp)
}

// Delete removes the record with the given Id.
func (c *Collection) Delete(ctx context.Context, id int64) error {
	resp, err := c.client.DeleteRecords(ctx, c.name, []int64{id})
	if err := c.check(ctx, "delete", resp, err); err != nil {
		return err
	}
	if _, err := c.batch(ctx, "delete", id, resp); err != nil {
		return err
	}
	return nil
}

// check handles the transport error and the top-level envelope.
func (c *Collection) check(ctx context.Context, op string, resp *Response, err error) error {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s %s: %w", op, c.name, err)
		}
		return c.fail(ctx, op, err.Error(), nil)
	}
	if resp == nil {
		return c.fail(ctx, op, "empty response", nil)
	}
	if !resp.Success {
		if resp.Code == CodeNotFound {
			return fmt.Errorf("%s %s: %w", op, c.name, domain.ErrNotFound)
		}
		return c.fail(ctx, op, resp.Message, nil)
	}
	return nil
}

// single expects exactly one successful result and returns its data.
func (c *Collection) single(ctx context.Context, op string, id int64, resp *Response) (Record, error) {
	ok, err := c.batch(ctx, op, id, resp)
	if err != nil {
		return nil, err
	}
	if len(ok) == 0 {
		return nil, c.fail(ctx, op, "no record in response", nil)
	}
	return ok[0].Data, nil
}

// batch splits results; a single failure fails the call.
func (c *Collection) batch(ctx context.Context, op string, id int64, resp *Response) ([]Result, error) {
	var (
		ok       []Result
		failed   []domain.FailedRecord
		notFound int
	)
	for i, r := range resp.Results {
		if r.Success {
			ok = append(ok, r)
			continue
		}
		if r.Code == CodeNotFound {
			notFound++
		}
		failed = append(failed, domain.FailedRecord{Index: i, Message: resultMessage(r)})
	}

	if len(failed) == 0 {
		return ok, nil
	}
	if notFound == len(failed) && len(ok) == 0 {
		return nil, c.notFound(ctx, id)
	}
	msg := fmt.Sprintf("failed to %s %d of %d records", op, len(failed), len(resp.Results))
	return nil, c.fail(ctx, op, msg, failed)
}

func (c *Collection) fail(ctx context.Context, op, msg string, failed []domain.FailedRecord) error {
	c.log.ErrorContext(ctx, "record store call failed",
		slog.String("op", op),
		slog.String("message", msg),
		slog.Int("failed_records", len(failed)),
	)
	return &domain.StoreError{Op: op, Collection: c.name, Message: msg, Failed: failed}
}

func (c *Collection) notFound(ctx context.Context, id int64) error {
	c.log.DebugContext(ctx, "record not found", slog.Int64("id", id))
	return fmt.Errorf("%s %d: %w", c.name, id, domain.ErrNotFound)
}

func resultMessage(r Result) string {
	parts := make([]string, 0, len(r.Errors)+1)
	if r.Message != "" {
		parts = append(parts, r.Message)
	}
	for _, fe := range r.Errors {
		parts = append(parts, fe.FieldLabel+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}
