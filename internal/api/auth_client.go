package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// RefreshPath is the path of the token refresh endpoint
	RefreshPath = "/token/refresh/"
)

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// AuthClient is a Client that attaches the stored access token to every request.
// When the server rejects a request with a 401 the access token is refreshed
// and the request is replayed, at most once per request. If the refresh fails
// the stored session is cleared and the registered invalidation handlers run.
type AuthClient struct {
	client Client
	store  SessionStore
	logger zerolog.Logger

	mu            sync.RWMutex
	defaultHeader http.Header
	onInvalidated []func(cause error)
}

// AuthClientOption configures an AuthClient
type AuthClientOption func(ac *AuthClient)

// WithLogger sets the logger used to trace requests
func WithLogger(logger zerolog.Logger) AuthClientOption {
	return func(ac *AuthClient) { ac.logger = logger }
}

// WithDefaultHeader sets a header sent with every request
func WithDefaultHeader(key, value string) AuthClientOption {
	return func(ac *AuthClient) { ac.defaultHeader.Set(key, value) }
}

// WithSessionInvalidatedHandler registers a handler run when the session is invalidated
func WithSessionInvalidatedHandler(fn func(cause error)) AuthClientOption {
	return func(ac *AuthClient) { ac.onInvalidated = append(ac.onInvalidated, fn) }
}

// NewAuthClient creates a new AuthClient sending requests through client
// with the credentials held by store
func NewAuthClient(client Client, store SessionStore, opts ...AuthClientOption) *AuthClient {
	ac := &AuthClient{
		client:        client,
		store:         store,
		logger:        zerolog.Nop(),
		defaultHeader: http.Header{},
	}
	for _, opt := range opts {
		opt(ac)
	}
	return ac
}

// OnSessionInvalidated registers a handler run when the session is invalidated
func (ac *AuthClient) OnSessionInvalidated(fn func(cause error)) {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	ac.onInvalidated = append(ac.onInvalidated, fn)
}

// DefaultHeader returns a copy of the headers sent with every request
func (ac *AuthClient) DefaultHeader() http.Header {
	ac.mu.RLock()
	defer ac.mu.RUnlock()
	return ac.defaultHeader.Clone()
}

// attempt is an outbound request along with its single-use retry marker
type attempt struct {
	method  string
	path    string
	header  http.Header
	query   url.Values
	body    []byte
	noAuth  bool
	retried bool
}

func newAttempt(method, path string, options RequestOptions) (*attempt, error) {
	a := attempt{
		method: method,
		path:   path,
		header: http.Header{},
		query:  options.Query,
		noAuth: options.NoAuth,
	}

	copyHeader(a.header, options.Header)
	if a.header.Get(HeaderRequestID) == "" {
		a.header.Set(HeaderRequestID, uuid.New().String())
	}

	if options.Body != nil {
		body, err := io.ReadAll(options.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		a.body = body
	}
	return &a, nil
}

// Do sends the request and returns the response when its status is 2xx.
// Any other status is returned as a ServerError.
func (ac *AuthClient) Do(ctx context.Context, method, path string, options RequestOptions) (*http.Response, error) {
	a, err := newAttempt(method, path, options)
	if err != nil {
		return nil, err
	}
	return ac.send(ctx, a)
}

func (ac *AuthClient) send(ctx context.Context, a *attempt) (*http.Response, error) {
	res, err := ac.client.Do(ctx, a.method, a.path, ac.prepare(a))
	if err != nil {
		ac.logger.Debug().
			Str("method", a.method).
			Str("path", a.path).
			Str("request_id", a.header.Get(HeaderRequestID)).
			Err(err).
			Msg("request failed")
		return nil, err
	}

	ac.logger.Debug().
		Str("method", a.method).
		Str("path", a.path).
		Str("request_id", a.header.Get(HeaderRequestID)).
		Int("status", res.StatusCode).
		Bool("retried", a.retried).
		Msg("request completed")

	return ac.intercept(ctx, a, res)
}

// prepare builds the request options for an attempt.
// The stored access token wins over any other Authorization header,
// and none is sent from the defaults when no token is stored or the
// attempt goes without credentials.
func (ac *AuthClient) prepare(a *attempt) RequestOptions {
	header := ac.DefaultHeader()

	session := ac.store.Session()
	if session.AccessToken == "" || a.noAuth {
		header.Del(HeaderAuthorization)
	}

	copyHeader(header, a.header)

	if session.AccessToken != "" && !a.noAuth {
		header.Set(HeaderAuthorization, session.AuthorizationHeader())
	}

	options := RequestOptions{Header: header, Query: a.query}
	if a.body != nil {
		options.Body = bytes.NewReader(a.body)
	}
	return options
}

func (ac *AuthClient) intercept(ctx context.Context, a *attempt, res *http.Response) (*http.Response, error) {
	if IsSuccess(res.StatusCode) {
		return res, nil
	}

	failure := ParseResponseError(res)
	res.Body.Close()

	if res.StatusCode != http.StatusUnauthorized || a.retried || a.noAuth {
		return nil, failure
	}

	a.retried = true

	accessToken, refreshErr := ac.refresh(ctx)
	if refreshErr != nil {
		// a canceled caller says nothing about the session
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ac.invalidate(refreshErr)
		return nil, failure
	}

	a.header.Set(HeaderAuthorization, bearer(accessToken))

	replayed, replayErr := ac.send(ctx, a)
	if replayErr != nil && IsUnauthorized(replayErr) {
		ac.invalidate(replayErr)
	}
	return replayed, replayErr
}

// refresh exchanges the stored refresh token for a new access token
func (ac *AuthClient) refresh(ctx context.Context) (string, error) {
	refreshToken := ac.store.Session().RefreshToken
	if refreshToken == "" {
		return "", ErrNoRefreshToken
	}

	options, err := JSONRequestOptions(refreshRequest{refreshToken})
	if err != nil {
		return "", err
	}

	res, err := ac.client.Do(ctx, http.MethodPost, RefreshPath, options)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", ParseResponseError(res)
	}

	var payload refreshResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to read token refresh response: %w", err)
	}
	if payload.Access == "" {
		return "", errEmptyAccessToken
	}

	ac.store.SetAccessToken(payload.Access)
	if err := ac.store.Save(); err != nil {
		return "", err
	}

	ac.mu.Lock()
	ac.defaultHeader.Set(HeaderAuthorization, bearer(payload.Access))
	ac.mu.Unlock()

	ac.logger.Debug().Msg("access token refreshed")
	return payload.Access, nil
}

func (ac *AuthClient) invalidate(cause error) {
	ac.store.ClearSession()
	if err := ac.store.Save(); err != nil {
		ac.logger.Debug().Err(err).Msg("failed to save cleared session")
	}

	ac.mu.Lock()
	ac.defaultHeader.Del(HeaderAuthorization)
	handlers := append([]func(error){}, ac.onInvalidated...)
	ac.mu.Unlock()

	ac.logger.Debug().Err(cause).Msg("session invalidated")

	for _, handler := range handlers {
		handler(cause)
	}
}
