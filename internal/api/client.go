package api

import (
	"context"
	"net/http"
	"strings"
)

// Client is capable of making HTTP requests against the SmartLMS API
type Client interface {
	Do(ctx context.Context, method, path string, options RequestOptions) (*http.Response, error)
}

// NewClient returns a Client that resolves request paths against baseURL.
// The returned Client performs no authentication and returns every response,
// whatever its status, to the caller.
func NewClient(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &basicClient{strings.TrimSuffix(baseURL, "/"), httpClient}
}

type basicClient struct {
	baseURL    string
	httpClient *http.Client
}

func (c *basicClient) Do(ctx context.Context, method, path string, options RequestOptions) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, options.Body)
	if err != nil {
		return nil, err
	}

	copyHeader(req.Header, options.Header)
	if req.Header.Get(HeaderAccept) == "" {
		req.Header.Set(HeaderAccept, MediaTypeApplicationJSON)
	}

	if len(options.Query) > 0 {
		req.URL.RawQuery = options.Query.Encode()
	}

	return c.httpClient.Do(req)
}
