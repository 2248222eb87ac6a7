// Package recordstoretest provides an in-memory recordstore.Client for tests
// of code that persists through a record store.
package recordstoretest

import (
	"cmp"
	"context"
	"encoding/json"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore"
)

// Operation names passed to Client.Intercept.
const (
	OpFetch  = "fetch"
	OpGet    = "get"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Client keeps collections in memory and answers with the record store
// envelope. Ids start at 1 per collection. Fetch honours the first OrderBy key.
type Client struct {
	// Intercept, when set, runs before every call. A non-nil response or
	// error is returned instead of touching the data.
	Intercept func(op, collection string) (*recordstore.Response, error)

	mu     sync.Mutex
	data   map[string][]recordstore.Record
	nextID map[string]int64
	params map[string]recordstore.FetchParams
}

var _ recordstore.Client = (*Client)(nil)

// NewClient returns an empty Client.
func NewClient() *Client {
	return &Client{
		data:   make(map[string][]recordstore.Record),
		nextID: make(map[string]int64),
		params: make(map[string]recordstore.FetchParams),
	}
}

// Records returns copies of everything stored in collection, in insertion order.
func (c *Client) Records(collection string) []recordstore.Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]recordstore.Record, len(c.data[collection]))
	for i, r := range c.data[collection] {
		out[i] = maps.Clone(r)
	}
	return out
}

// LastParams returns the FetchParams of the latest fetch or get on collection.
func (c *Client) LastParams(collection string) recordstore.FetchParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params[collection]
}

func (c *Client) intercept(op, collection string) (*recordstore.Response, bool, error) {
	if c.Intercept == nil {
		return nil, false, nil
	}
	resp, err := c.Intercept(op, collection)
	return resp, resp != nil || err != nil, err
}

func (c *Client) FetchRecords(ctx context.Context, collection string, params recordstore.FetchParams) (*recordstore.Response, error) {
	if resp, ok, err := c.intercept(OpFetch, collection); ok {
		return resp, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.params[collection] = params
	recs := make([]recordstore.Record, 0, len(c.data[collection]))
	for _, r := range c.data[collection] {
		recs = append(recs, project(r, params.Fields))
	}
	c.mu.Unlock()

	if len(params.OrderBy) > 0 {
		o := params.OrderBy[0]
		slices.SortStableFunc(recs, func(a, b recordstore.Record) int {
			n := compareField(a, b, o.FieldName)
			if strings.EqualFold(o.SortType, recordstore.SortDesc) {
				return -n
			}
			return n
		})
	}

	resp := &recordstore.Response{Success: true}
	if err := resp.SetData(recs); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetRecordByID(ctx context.Context, collection string, id int64, params recordstore.FetchParams) (*recordstore.Response, error) {
	if resp, ok, err := c.intercept(OpGet, collection); ok {
		return resp, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.params[collection] = params

	resp := &recordstore.Response{Success: true, Data: json.RawMessage("null")}
	if i := c.indexOf(collection, id); i >= 0 {
		if err := resp.SetData(project(c.data[collection][i], params.Fields)); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (c *Client) CreateRecords(ctx context.Context, collection string, records []recordstore.Record) (*recordstore.Response, error) {
	if resp, ok, err := c.intercept(OpCreate, collection); ok {
		return resp, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	resp := &recordstore.Response{Success: true}
	for _, r := range records {
		c.nextID[collection]++
		rec := maps.Clone(r)
		rec[recordstore.IDField] = c.nextID[collection]
		c.data[collection] = append(c.data[collection], rec)
		resp.Results = append(resp.Results, recordstore.Result{Success: true, Data: maps.Clone(rec)})
	}
	return resp, nil
}

func (c *Client) UpdateRecords(ctx context.Context, collection string, records []recordstore.Record) (*recordstore.Response, error) {
	if resp, ok, err := c.intercept(OpUpdate, collection); ok {
		return resp, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	resp := &recordstore.Response{Success: true}
	for _, r := range records {
		i := c.indexOf(collection, r.ID())
		if i < 0 {
			resp.Results = append(resp.Results, notFound())
			continue
		}
		stored := c.data[collection][i]
		maps.Copy(stored, r)
		resp.Results = append(resp.Results, recordstore.Result{Success: true, Data: maps.Clone(stored)})
	}
	return resp, nil
}

func (c *Client) DeleteRecords(ctx context.Context, collection string, ids []int64) (*recordstore.Response, error) {
	if resp, ok, err := c.intercept(OpDelete, collection); ok {
		return resp, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	resp := &recordstore.Response{Success: true}
	for _, id := range ids {
		i := c.indexOf(collection, id)
		if i < 0 {
			resp.Results = append(resp.Results, notFound())
			continue
		}
		c.data[collection] = slices.Delete(c.data[collection], i, i+1)
		resp.Results = append(resp.Results, recordstore.Result{Success: true})
	}
	return resp, nil
}

func (c *Client) indexOf(collection string, id int64) int {
	return slices.IndexFunc(c.data[collection], func(r recordstore.Record) bool {
		return r.ID() == id
	})
}

func notFound() recordstore.Result {
	return recordstore.Result{Code: recordstore.CodeNotFound, Message: "record does not exist"}
}

// project keeps Id plus the requested fields; no fields means all.
func project(r recordstore.Record, fields []string) recordstore.Record {
	if len(fields) == 0 {
		return maps.Clone(r)
	}
	out := recordstore.Record{recordstore.IDField: r[recordstore.IDField]}
	for _, f := range fields {
		if v, ok := r[f]; ok {
			out[f] = v
		}
	}
	return out
}

func compareField(a, b recordstore.Record, key string) int {
	if _, isString := a[key].(string); isString {
		return cmp.Compare(a.String(key), b.String(key))
	}
	return cmp.Compare(a.Int64(key), b.Int64(key))
}
