// Package httpstore is the JSON-over-HTTP record store client.
package httpstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/config"
)

const maxErrorBody = 4 << 10

// Client talks to a hosted record store.
type Client struct {
	baseURL   string
	projectID string
	publicKey string
	http      *http.Client
}

var _ recordstore.Client = (*Client)(nil)

// New creates a Client from cfg. A nil httpClient gets one with cfg.Timeout.
func New(cfg config.RecordStoreConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		projectID: cfg.ProjectID,
		publicKey: cfg.PublicKey,
		http:      httpClient,
	}
}

type recordsBody struct {
	Records []recordstore.Record `json:"records"`
}

type deleteBody struct {
	RecordIDs []int64 `json:"RecordIds"`
}

// FetchRecords handles POST /collections/{c}/fetch.
func (c *Client) FetchRecords(ctx context.Context, collection string, params recordstore.FetchParams) (*recordstore.Response, error) {
	return c.do(ctx, http.MethodPost, c.collectionURL(collection, "fetch"), params)
}

// GetRecordByID handles POST /collections/{c}/records/{id}.
func (c *Client) GetRecordByID(ctx context.Context, collection string, id int64, params recordstore.FetchParams) (*recordstore.Response, error) {
	return c.do(ctx, http.MethodPost, c.collectionURL(collection, "records", strconv.FormatInt(id, 10)), params)
}

// CreateRecords handles POST /collections/{c}/records.
func (c *Client) CreateRecords(ctx context.Context, collection string, records []recordstore.Record) (*recordstore.Response, error) {
	return c.do(ctx, http.MethodPost, c.collectionURL(collection, "records"), recordsBody{Records: records})
}

// UpdateRecords handles PUT /collections/{c}/records.
func (c *Client) UpdateRecords(ctx context.Context, collection string, records []recordstore.Record) (*recordstore.Response, error) {
	return c.do(ctx, http.MethodPut, c.collectionURL(collection, "records"), recordsBody{Records: records})
}

// DeleteRecords handles DELETE /collections/{c}/records.
func (c *Client) DeleteRecords(ctx context.Context, collection string, ids []int64) (*recordstore.Response, error) {
	return c.do(ctx, http.MethodDelete, c.collectionURL(collection, "records"), deleteBody{RecordIDs: ids})
}

func (c *Client) collectionURL(collection string, parts ...string) string {
	segs := append([]string{c.baseURL, "collections", url.PathEscape(collection)}, parts...)
	return strings.Join(segs, "/")
}

func (c *Client) do(ctx context.Context, method, u string, body any) (*recordstore.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Project-Id", c.projectID)
	if c.publicKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.publicKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, u, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var out recordstore.Response
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	decodeErr := dec.Decode(&out)

	if resp.StatusCode >= http.StatusBadRequest {
		// The store sends its envelope on errors too; keep its message when it does.
		if decodeErr == nil && out.Message != "" {
			out.Success = false
			if resp.StatusCode == http.StatusNotFound && out.Code == "" {
				out.Code = recordstore.CodeNotFound
			}
			return &out, nil
		}
		return nil, fmt.Errorf("%s %s: status %d: %s", method, u, resp.StatusCode, truncate(raw))
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}

	return &out, nil
}

func truncate(b []byte) string {
	if len(b) > maxErrorBody {
		b = b[:maxErrorBody]
	}
	return strings.TrimSpace(string(b))
}
