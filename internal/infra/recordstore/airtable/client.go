package airtable

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
	"time"

	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/pkg/config"

	"golang.org/x/time/rate"
)

const (
	pageSize        = 100
	createBatchSize = 10
)

// Client talks to the Airtable REST API for one base
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ recordstore.Client = (*Client)(nil)

func NewClient(cfg config.AirtableConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		token:   cfg.Token,
		baseURL: strings.TrimRight(cfg.APIURL, "/") + "/" + url.PathEscape(cfg.BaseID),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		// Airtable allows 5 requests per second per base
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

type apiRecord struct {
	ID          string             `json:"id"`
	CreatedTime time.Time          `json:"createdTime"`
	Fields      recordstore.Fields `json:"fields"`
}

type listResponse struct {
	Records []apiRecord `json:"records"`
	Offset  string      `json:"offset"`
}

type createRequest struct {
	Records []createEntry `json:"records"`
}

type createEntry struct {
	Fields recordstore.Fields `json:"fields"`
}

type updateRequest struct {
	Fields recordstore.Fields `json:"fields"`
}

func (r apiRecord) toRecord() recordstore.Record {
	fields := r.Fields
	if fields == nil {
		fields = recordstore.Fields{}
	}
	return recordstore.Record{ID: r.ID, CreatedTime: r.CreatedTime, Fields: fields}
}

func (c *Client) Find(ctx context.Context, table, id string) (recordstore.Record, error) {
	var rec apiRecord
	if err := c.do(ctx, http.MethodGet, c.recordURL(table, id), nil, &rec); err != nil {
		return recordstore.Record{}, c.classify(err, table, id)
	}
	return rec.toRecord(), nil
}

func (c *Client) Select(ctx context.Context, table string, opts recordstore.SelectOptions) ([]recordstore.Record, error) {
	query := selectQuery(opts)

	var out []recordstore.Record
	for {
		var page listResponse
		u := c.tableURL(table) + "?" + query.Encode()
		if err := c.do(ctx, http.MethodGet, u, nil, &page); err != nil {
			return nil, c.classify(err, table, "")
		}
		for _, r := range page.Records {
			out = append(out, r.toRecord())
		}
		if page.Offset == "" || (opts.MaxRecords > 0 && len(out) >= opts.MaxRecords) {
			break
		}
		query.Set("offset", page.Offset)
	}

	if opts.MaxRecords > 0 && len(out) > opts.MaxRecords {
		out = out[:opts.MaxRecords]
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, table string, records ...recordstore.Fields) ([]recordstore.Record, error) {
	out := make([]recordstore.Record, 0, len(records))
	for start := 0; start < len(records); start += createBatchSize {
		end := min(start+createBatchSize, len(records))

		req := createRequest{Records: make([]createEntry, 0, end-start)}
		for _, f := range records[start:end] {
			req.Records = append(req.Records, createEntry{Fields: f})
		}

		var resp listResponse
		if err := c.do(ctx, http.MethodPost, c.tableURL(table), req, &resp); err != nil {
			return out, c.classify(err, table, "")
		}
		for _, r := range resp.Records {
			out = append(out, r.toRecord())
		}
	}
	return out, nil
}

func (c *Client) Update(ctx context.Context, table, id string, fields recordstore.Fields) (recordstore.Record, error) {
	var rec apiRecord
	if err := c.do(ctx, http.MethodPatch, c.recordURL(table, id), updateRequest{Fields: fields}, &rec); err != nil {
		return recordstore.Record{}, c.classify(err, table, id)
	}
	return rec.toRecord(), nil
}

func (c *Client) Destroy(ctx context.Context, table, id string) error {
	if err := c.do(ctx, http.MethodDelete, c.recordURL(table, id), nil, nil); err != nil {
		return c.classify(err, table, id)
	}
	return nil
}

func (c *Client) tableURL(table string) string {
	return c.baseURL + "/" + url.PathEscape(table)
}

func (c *Client) recordURL(table, id string) string {
	return c.tableURL(table) + "/" + url.PathEscape(id)
}

func selectQuery(opts recordstore.SelectOptions) url.Values {
	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(pageSize))
	if opts.Filter != nil {
		q.Set("filterByFormula", opts.Filter.Airtable())
	}
	for _, f := range opts.Fields {
		q.Add("fields[]", f)
	}
	for i, s := range opts.Sort {
		q.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
		dir := "asc"
		if s.Desc {
			dir = "desc"
		}
		q.Set(fmt.Sprintf("sort[%d][direction]", i), dir)
	}
	if opts.MaxRecords > 0 {
		q.Set("maxRecords", strconv.Itoa(opts.MaxRecords))
	}
	return q
}

func (c *Client) do(ctx context.Context, method, u string, payload, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return &apiError{msg: "failed to marshal request", err: err}
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return &apiError{msg: "failed to create request", err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apiError{msg: "failed to execute request", err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apiError{msg: "failed to read response body", err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &apiError{msg: "failed to unmarshal response", err: err}
	}
	return nil
}
