package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

// set of supported api header keys
const (
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "X-Request-ID"
	HeaderRequestOrigin = "X-SmartLMS-Request-Origin"
)

// set of supported api media types
const (
	MediaTypeApplicationJSON = "application/json"
)

// RequestOptions are options to configure an *http.Request
type RequestOptions struct {
	Body   io.Reader
	Header http.Header
	Query  url.Values

	// NoAuth sends the request without credentials and never refreshes them
	NoAuth bool
}

// JSONRequestOptions returns RequestOptions configured to send the provided payload as JSON
func JSONRequestOptions(payload interface{}) (RequestOptions, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return RequestOptions{}, err
	}
	return RequestOptions{
		Body:   bytes.NewReader(body),
		Header: http.Header{HeaderContentType: []string{MediaTypeApplicationJSON}},
	}, nil
}

// IsSuccess reports whether the status code is in the 2xx range
func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode <= 299
}

func copyHeader(dst, src http.Header) {
	for key, values := range src {
		dst[key] = append([]string(nil), values...)
	}
}
