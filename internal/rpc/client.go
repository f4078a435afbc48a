// Package rpc implements a minimal JSON-RPC 2.0 client for Ethereum nodes.
// It speaks the wire protocol directly over net/http rather than going
// through a full client library, so the request envelope and error handling
// stay visible and testable.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Client performs JSON-RPC calls against a single configured endpoint.
// It is safe for concurrent use; the underlying http.Client pools
// connections across requests.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint URL. Calls that exceed
// the timeout fail with a TransportError rather than hanging.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Call executes a single JSON-RPC call and returns the raw "result" payload.
// Exactly one attempt is made per call: failures are reported to the caller
// as-is, never retried.
//
// Failure modes:
//   - *TransportError: connection failure, timeout, or non-2xx HTTP status
//   - *ProtocolError: the response body carried a JSON-RPC error object,
//     regardless of HTTP status
//
// The returned payload may be JSON null (e.g. querying a block past the
// chain head); callers must handle that.
func (c *Client) Call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}

	req := Request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &TransportError{Err: fmt.Errorf("HTTP %d from %s", httpResp.StatusCode, c.url)}
	}

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{Err: errors.Wrap(err, "read response body")}
	}

	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, &TransportError{Err: errors.Wrap(err, "invalid JSON response")}
	}

	if resp.Error != nil {
		return nil, &ProtocolError{Code: resp.Error.Code, Message: resp.Error.Message}
	}

	return resp.Result, nil
}
