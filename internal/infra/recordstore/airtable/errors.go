package airtable

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"sponsor-portal/internal/infra/recordstore"

	"github.com/tidwall/gjson"
)

type apiError struct {
	status  int
	errType string
	msg     string
	err     error
}

func (e *apiError) Error() string {
	if e.status == 0 {
		if e.err != nil {
			return e.msg + ": " + e.err.Error()
		}
		return e.msg
	}
	return fmt.Sprintf("airtable %d %s: %s", e.status, e.errType, e.msg)
}

func (e *apiError) Unwrap() error {
	return e.err
}

// newAPIError reads both error shapes the API returns:
// {"error":"NOT_FOUND"} and {"error":{"type":"...","message":"..."}}
func newAPIError(status int, body []byte) *apiError {
	e := &apiError{status: status}

	node := gjson.GetBytes(body, "error")
	switch {
	case node.Type == gjson.String:
		e.errType = node.String()
	case node.IsObject():
		e.errType = node.Get("type").String()
		e.msg = node.Get("message").String()
	}
	if e.errType == "" {
		e.errType = http.StatusText(status)
	}
	return e
}

func (c *Client) classify(err error, table, id string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return recordstore.Failure("airtable request on "+table+" aborted", err)
	}

	var apiErr *apiError
	if !errors.As(err, &apiErr) || apiErr.status == 0 {
		return recordstore.Failure("airtable request on "+table+" failed", err)
	}

	switch {
	case apiErr.status == http.StatusNotFound:
		return recordstore.NotFound(table, id)
	case apiErr.status == http.StatusTooManyRequests:
		return recordstore.RateLimited("airtable rate limit on "+table, apiErr)
	case apiErr.status == http.StatusUnprocessableEntity:
		return recordstore.InvalidRecord("airtable rejected payload for "+table, apiErr)
	default:
		return recordstore.Failure("airtable request on "+table+" failed", apiErr)
	}
}
