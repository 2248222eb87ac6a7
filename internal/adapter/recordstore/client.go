// Package recordstore defines the contract of the generic record store the
// entity repositories persist through, and the helpers they share.
//
// A store keeps named collections of flat records addressed by an integer
// "Id". Every call answers with the same envelope: a success flag, a message
// on failure, the fetched data, and one result per record for batched writes.
package recordstore

import (
	"context"
	"encoding/json"
)

// Result codes a store may attach to a failed record or response.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION"
)

// Sort directions understood by FetchParams.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// IDField is the store-assigned identity of every record.
const IDField = "Id"

// Client performs CRUD against named collections of a record store.
type Client interface {
	FetchRecords(ctx context.Context, collection string, params FetchParams) (*Response, error)
	GetRecordByID(ctx context.Context, collection string, id int64, params FetchParams) (*Response, error)
	CreateRecords(ctx context.Context, collection string, records []Record) (*Response, error)
	UpdateRecords(ctx context.Context, collection string, records []Record) (*Response, error)
	DeleteRecords(ctx context.Context, collection string, ids []int64) (*Response, error)
}

// OrderBy is one sort key of a fetch.
type OrderBy struct {
	FieldName string `json:"fieldName"`
	SortType  string `json:"sorttype"`
}

// FetchParams selects the fields and ordering of a read.
type FetchParams struct {
	Fields  []string
	OrderBy []OrderBy
}

type wireFieldName struct {
	Name string `json:"Name"`
}

type wireField struct {
	Field wireFieldName `json:"field"`
}

type wireFetchParams struct {
	Fields  []wireField `json:"fields"`
	OrderBy []OrderBy   `json:"orderBy,omitempty"`
}

// MarshalJSON encodes the params in the store's nested field-list shape.
func (p FetchParams) MarshalJSON() ([]byte, error) {
	w := wireFetchParams{
		Fields:  make([]wireField, 0, len(p.Fields)),
		OrderBy: p.OrderBy,
	}
	for _, f := range p.Fields {
		w.Fields = append(w.Fields, wireField{Field: wireFieldName{Name: f}})
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the nested field-list shape.
func (p *FetchParams) UnmarshalJSON(data []byte) error {
	var w wireFetchParams
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.Fields = make([]string, 0, len(w.Fields))
	for _, f := range w.Fields {
		p.Fields = append(p.Fields, f.Field.Name)
	}
	p.OrderBy = w.OrderBy
	return nil
}

// FieldIssue is a per-field complaint attached to a failed record.
type FieldIssue struct {
	FieldLabel string `json:"fieldLabel"`
	Message    string `json:"message"`
}

// Result is the outcome for one record of a batched write.
type Result struct {
	Success bool         `json:"success"`
	Data    Record       `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Code    string       `json:"code,omitempty"`
	Errors  []FieldIssue `json:"errors,omitempty"`
}

// Response is the envelope every store call returns.
type Response struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Code    string          `json:"code,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Results []Result        `json:"results,omitempty"`
}

// Records decodes Data as a list. Missing or null data is an empty list.
func (r *Response) Records() ([]Record, error) {
	if isNull(r.Data) {
		return nil, nil
	}
	var recs []Record
	if err := unmarshalRecords(r.Data, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// Record decodes Data as a single record. Missing or null data yields nil.
func (r *Response) Record() (Record, error) {
	if isNull(r.Data) {
		return nil, nil
	}
	var rec Record
	if err := unmarshalRecords(r.Data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// SetData encodes v into Data.
func (r *Response) SetData(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.Data = b
	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// Collection names of the feedback schema.
const (
	CollectionIdea      = "idea"
	CollectionReview    = "review"
	CollectionChangelog = "changelog_entry"
	CollectionActivity  = "app_Activity"
	CollectionProject   = "project"
)
