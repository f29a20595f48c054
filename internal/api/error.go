package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrNoRefreshToken is the reason a session is invalidated when no refresh token is stored
	ErrNoRefreshToken = errors.New("no refresh token is available")

	errEmptyAccessToken = errors.New("token refresh response did not include an access token")
)

// ServerError is a SmartLMS server error
type ServerError struct {
	StatusCode int
	Status     string
	Detail     string
	Payload    []byte
}

func (se ServerError) Error() string {
	switch {
	case se.Detail != "":
		return fmt.Sprintf("%s: %s", se.Status, se.Detail)
	case len(se.Payload) > 0:
		return fmt.Sprintf("%s: %s", se.Status, se.Payload)
	}
	return se.Status
}

// IsStatus reports whether err is a ServerError with the provided status code
func IsStatus(err error, statusCode int) bool {
	var se ServerError
	if !errors.As(err, &se) {
		return false
	}
	return se.StatusCode == statusCode
}

// IsUnauthorized reports whether err is a 401 ServerError
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// ParseResponseError reads the provided *http.Response into a ServerError.
// The caller remains responsible for closing the response body.
func ParseResponseError(res *http.Response) error {
	serverError := ServerError{StatusCode: res.StatusCode, Status: res.Status}
	if serverError.Status == "" {
		serverError.Status = fmt.Sprintf("%d %s", res.StatusCode, http.StatusText(res.StatusCode))
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", serverError.Status, err)
	}

	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return serverError
	}
	serverError.Payload = payload

	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(payload, &detail); err == nil {
		serverError.Detail = detail.Detail
	}
	return serverError
}
