package mock

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/smartlms/smartlms-cli/internal/api"
)

// APIRequest is a request received by the mock api client
type APIRequest struct {
	Method string
	Path   string
	Header http.Header
	Query  url.Values
	Body   []byte
}

// JSON decodes the request body into out
func (r APIRequest) JSON(out interface{}) error {
	return json.Unmarshal(r.Body, out)
}

// ErrNoResponse is returned when the mock api client runs out of responses
var ErrNoResponse = errors.New("mock api client has no more responses")

// APIClient is a mocked api.Client which records every request
// and replies with the queued responses in order, unless DoFn is provided
type APIClient struct {
	DoFn func(req APIRequest) (*http.Response, error)

	mu        sync.Mutex
	responses []*http.Response
	requests  []APIRequest
}

// NewAPIClient creates a new mock api client replying with the provided responses
func NewAPIClient(responses ...*http.Response) *APIClient {
	return &APIClient{responses: responses}
}

// Do records the request and returns the next response
func (c *APIClient) Do(ctx context.Context, method, path string, options api.RequestOptions) (*http.Response, error) {
	req := APIRequest{
		Method: method,
		Path:   path,
		Header: options.Header.Clone(),
		Query:  options.Query,
	}
	if req.Header == nil {
		req.Header = http.Header{}
	}
	if options.Body != nil {
		body, err := io.ReadAll(options.Body)
		if err != nil {
			return nil, err
		}
		req.Body = body
	}

	c.mu.Lock()
	c.requests = append(c.requests, req)
	if c.DoFn != nil {
		c.mu.Unlock()
		return c.DoFn(req)
	}
	defer c.mu.Unlock()

	if len(c.responses) == 0 {
		return nil, ErrNoResponse
	}
	res := c.responses[0]
	c.responses = c.responses[1:]
	return res, nil
}

// Requests returns the requests received so far
func (c *APIClient) Requests() []APIRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]APIRequest(nil), c.requests...)
}

// NewResponse creates a new *http.Response with the provided status and body
func NewResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

// NewJSONResponse creates a new *http.Response with the provided status and JSON payload
func NewJSONResponse(statusCode int, payload interface{}) *http.Response {
	body, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	res := NewResponse(statusCode, string(body))
	res.Header.Set(api.HeaderContentType, api.MediaTypeApplicationJSON)
	return res
}
