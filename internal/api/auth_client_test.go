package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/smartlms/smartlms-cli/internal/api"
	"github.com/smartlms/smartlms-cli/internal/utils/test/mock"
	u "github.com/smartlms/smartlms-cli/internal/utils/test/so"
)

type invalidations struct {
	mu     sync.Mutex
	causes []error
}

func (i *invalidations) handler(cause error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.causes = append(i.causes, cause)
}

func (i *invalidations) count() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.causes)
}

func TestAuthClientAuthorization(t *testing.T) {
	t.Run("with a stored access token should send it as a bearer token", func(t *testing.T) {
		client := mock.NewAPIClient(mock.NewResponse(http.StatusOK, "[]"))
		store := api.NewMemoryStore(api.Session{AccessToken: "A1", RefreshToken: "R1"})

		res, err := api.NewAuthClient(client, store).Do(context.Background(), http.MethodGet, "/courses/", api.RequestOptions{})
		u.So(t, err, u.ShouldBeNil)
		defer res.Body.Close()

		requests := client.Requests()
		u.So(t, requests, u.ShouldHaveLength, 1)
		u.So(t, requests[0].Header.Get(api.HeaderAuthorization), u.ShouldEqual, "Bearer A1")
	})

	t.Run("without a stored access token should send no authorization header", func(t *testing.T) {
		client := mock.NewAPIClient(mock.NewResponse(http.StatusOK, "[]"))
		store := api.NewMemoryStore(api.Session{})

		authClient := api.NewAuthClient(client, store, api.WithDefaultHeader(api.HeaderAuthorization, "Bearer stale"))

		res, err := authClient.Do(context.Background(), http.MethodGet, "/courses/", api.RequestOptions{})
		u.So(t, err, u.ShouldBeNil)
		defer res.Body.Close()

		requests := client.Requests()
		u.So(t, requests, u.ShouldHaveLength, 1)
		u.So(t, requests[0].Header, u.ShouldNotContainKey, api.HeaderAuthorization)
	})

	t.Run("should send the default headers and a request id with every request", func(t *testing.T) {
		client := mock.NewAPIClient(mock.NewResponse(http.StatusOK, "{}"))
		store := api.NewMemoryStore(api.Session{})

		authClient := api.NewAuthClient(client, store, api.WithDefaultHeader(api.HeaderRequestOrigin, "smartlms-cli"))

		res, err := authClient.Do(context.Background(), http.MethodGet, "/courses/1/", api.RequestOptions{})
		u.So(t, err, u.ShouldBeNil)
		defer res.Body.Close()

		requests := client.Requests()
		u.So(t, requests[0].Header.Get(api.HeaderRequestOrigin), u.ShouldEqual, "smartlms-cli")
		u.So(t, requests[0].Header.Get(api.HeaderRequestID), u.ShouldNotBeBlank)
	})

	t.Run("should pass a network failure through unchanged", func(t *testing.T) {
		networkErr := errors.New("connection refused")
		client := &mock.APIClient{DoFn: func(req mock.APIRequest) (*http.Response, error) {
			return nil, networkErr
		}}
		store := api.NewMemoryStore(api.Session{AccessToken: "A1", RefreshToken: "R1"})

		_, err := api.NewAuthClient(client, store).Do(context.Background(), http.MethodGet, "/courses/", api.RequestOptions{})
		u.So(t, err, u.ShouldEqual, networkErr)
		u.So(t, store.Session(), u.ShouldResemble, api.Session{AccessToken: "A1", RefreshToken: "R1"})
	})
}

func TestAuthClientRefresh(t *testing.T) {
	t.Run("on unauthorized with a valid refresh token should refresh once and replay the request", func(t *testing.T) {
		client := mock.NewAPIClient(
			mock.NewJSONResponse(http.StatusUnauthorized, map[string]string{"detail": "Given token not valid for any token type"}),
			mock.NewJSONResponse(http.StatusOK, map[string]string{"access": "A2"}),
			mock.NewJSONResponse(http.StatusCreated, map[string]int{"id": 1}),
		)
		store := api.NewMemoryStore(api.Session{AccessToken: "A1", RefreshToken: "R1"})

		var invalidated invalidations
		authClient := api.NewAuthClient(client, store, api.WithSessionInvalidatedHandler(invalidated.handler))

		options, err := api.JSONRequestOptions(map[string]int{"course": 5})
		u.So(t, err, u.ShouldBeNil)

		res, err := authClient.Do(context.Background(), http.MethodPost, "/enrollments/", options)
		u.So(t, err, u.ShouldBeNil)
		defer res.Body.Close()
		u.So(t, res.StatusCode, u.ShouldEqual, http.StatusCreated)

		requests := client.Requests()
		u.So(t, requests, u.ShouldHaveLength, 3)

		original, refresh, replay := requests[0], requests[1], requests[2]

		u.So(t, original.Header.Get(api.HeaderAuthorization), u.ShouldEqual, "Bearer A1")

		u.So(t, refresh.Method, u.ShouldEqual, http.MethodPost)
		u.So(t, refresh.Path, u.ShouldEqual, api.RefreshPath)
		u.So(t, refresh.Header, u.ShouldNotContainKey, api.HeaderAuthorization)
		u.So(t, string(refresh.Body), u.ShouldEqual, `{"refresh":"R1"}`)

		u.So(t, replay.Method, u.ShouldEqual, http.MethodPost)
		u.So(t, replay.Path, u.ShouldEqual, "/enrollments/")
		u.So(t, replay.Header.Get(api.HeaderAuthorization), u.ShouldEqual, "Bearer A2")
		u.So(t, string(replay.Body), u.ShouldEqual, `{"course":5}`)
		u.So(t, replay.Header.Get(api.HeaderRequestID), u.ShouldEqual, original.Header.Get(api.HeaderRequestID))

		u.So(t, store.Session(), u.ShouldResemble, api.Session{AccessToken: "A2", RefreshToken: "R1"})
		u.So(t, authClient.DefaultHeader().Get(api.HeaderAuthorization), u.ShouldEqual, "Bearer A2")
		u.So(t, invalidated.count(), u.ShouldEqual, 0)
	})

	t.Run("on unauthorized replay should not refresh a second time and return the second failure", func(t *testing.T) {
		client := mock.NewAPIClient(
			mock.NewJSONResponse(http.StatusUnauthorized, map[string]string{"detail": "first"}),
			mock.NewJSONResponse(http.StatusOK, map[string]string{"access": "A2"}),
			mock.NewJSONResponse(http.StatusUnauthorized, map[string]string{"detail": "second"}),
		)
		store := api.NewMemoryStore(api.Session{AccessToken: "A1", RefreshToken: "R1"})

		var invalidated invalidations
		authClient := api.NewAuthClient(client, store, api.WithSessionInvalidatedHandler(invalidated.handler))

		_, err := authClient.Do(context.Background(), http.MethodGet, "/users/me/", api.RequestOptions{})
		u.So(t, api.IsUnauthorized(err), u.ShouldBeTrue)
		u.So(t, err.Error(), u.ShouldEqual, "401 Unauthorized: second")

		requests := client.Requests()
		u.So(t, requests, u.ShouldHaveLength, 3)

		var refreshes int
		for _, req := range requests {
			if req.Path == api.RefreshPath {
				refreshes++
			}
		}
		u.So(t, refreshes, u.ShouldEqual, 1)

		u.So(t, store.Session(), u.ShouldResemble, api.Session{})
		u.So(t, invalidated.count(), u.ShouldEqual, 1)
	})

	t.Run("on unauthorized without a refresh token should clear the session and return the original failure", func(t *testing.T) {
		client := mock.NewAPIClient(
			mock.NewJSONResponse(http.StatusUnauthorized, map[string]string{"detail": "Token is expired"}),
		)
		store := api.NewMemoryStore(api.Session{AccessToken: "A1"})

		var invalidated invalidations
		authClient := api.NewAuthClient(client, store, api.WithSessionInvalidatedHandler(invalidated.handler))

		_, err := authClient.Do(context.Background(), http.MethodGet, "/certificates/", api.RequestOptions{})
		u.So(t, err, u.ShouldResemble, api.ServerError{
			StatusCode: http.StatusUnauthorized,
			Status:     "401 Unauthorized",
			Detail:     "Token is expired",
			Payload:    []byte(`{"detail":"Token is expired"}`),
		})

		u.So(t, client.Requests(), u.ShouldHaveLength, 1)
		u.So(t, store.Session(), u.ShouldResemble, api.Session{})
		u.So(t, invalidated.count(), u.ShouldEqual, 1)
		u.So(t, errors.Is(invalidated.causes[0], api.ErrNoRefreshToken), u.ShouldBeTrue)
	})

	t.Run("on a failed refresh should clear the session and return the original failure", func(t *testing.T) {
		client := mock.NewAPIClient(
			mock.NewJSONResponse(http.StatusUnauthorized, map[string]string{"detail": "Token is expired"}),
			mock.NewJSONResponse(http.StatusUnauthorized, map[string]string{"detail": "Token is blacklisted"}),
		)
		store := api.NewMemoryStore(api.Session{AccessToken: "A1", RefreshToken: "R1"})

		var invalidated invalidations
		authClient := api.NewAuthClient(client, store, api.WithSessionInvalidatedHandler(invalidated.handler))

		_, err := authClient.Do(context.Background(), http.MethodGet, "/enrollments/", api.RequestOptions{})
		u.So(t, err.Error(), u.ShouldEqual, "401 Unauthorized: Token is expired")

		u.So(t, client.Requests(), u.ShouldHaveLength, 2)
		u.So(t, store.Session(), u.ShouldResemble, api.Session{})
		u.So(t, invalidated.count(), u.ShouldEqual, 1)
		u.So(t, invalidated.causes[0].Error(), u.ShouldEqual, "401 Unauthorized: Token is blacklisted")
	})

	t.Run("on a refresh response without an access token should clear the session", func(t *testing.T) {
		client := mock.NewAPIClient(
			mock.NewResponse(http.StatusUnauthorized, ""),
			mock.NewJSONResponse(http.StatusOK, map[string]string{}),
		)
		store := api.NewMemoryStore(api.Session{AccessToken: "A1", RefreshToken: "R1"})

		var invalidated invalidations
		authClient := api.NewAuthClient(client, store)
		authClient.OnSessionInvalidated(invalidated.handler)

		_, err := authClient.Do(context.Background(), http.MethodGet, "/enrollments/", api.RequestOptions{})
		u.So(t, api.IsUnauthorized(err), u.ShouldBeTrue)
		u.So(t, store.Session(), u.ShouldResemble, api.Session{})
		u.So(t, invalidated.count(), u.ShouldEqual, 1)
	})

	t.Run("on a failure other than unauthorized should not refresh and return the failure unchanged", func(t *testing.T) {
		for _, statusCode := range []int{http.StatusBadRequest, http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
			t.Run(http.StatusText(statusCode), func(t *testing.T) {
				client := mock.NewAPIClient(mock.NewJSONResponse(statusCode, map[string]string{"detail": "Not allowed"}))
				store := api.NewMemoryStore(api.Session{AccessToken: "A1", RefreshToken: "R1"})

				var invalidated invalidations
				authClient := api.NewAuthClient(client, store, api.WithSessionInvalidatedHandler(invalidated.handler))

				_, err := authClient.Do(context.Background(), http.MethodDelete, "/courses/5/", api.RequestOptions{})
				u.So(t, api.IsStatus(err, statusCode), u.ShouldBeTrue)
				u.So(t, err.Error(), u.ShouldEndWith, ": Not allowed")

				u.So(t, client.Requests(), u.ShouldHaveLength, 1)
				u.So(t, store.Session(), u.ShouldResemble, api.Session{AccessToken: "A1", RefreshToken: "R1"})
				u.So(t, invalidated.count(), u.ShouldEqual, 0)
			})
		}
	})

	t.Run("on a failed replay other than unauthorized should keep the session", func(t *testing.T) {
		client := mock.NewAPIClient(
			mock.NewResponse(http.StatusUnauthorized, ""),
			mock.NewJSONResponse(http.StatusOK, map[string]string{"access": "A2"}),
			mock.NewJSONResponse(http.StatusBadRequest, map[string][]string{"course": {"This field is required."}}),
		)
		store := api.NewMemoryStore(api.Session{AccessToken: "A1", RefreshToken: "R1"})

		var invalidated invalidations
		authClient := api.NewAuthClient(client, store, api.WithSessionInvalidatedHandler(invalidated.handler))

		_, err := authClient.Do(context.Background(), http.MethodPost, "/enrollments/", api.RequestOptions{Body: strings.NewReader("{}")})
		u.So(t, api.IsStatus(err, http.StatusBadRequest), u.ShouldBeTrue)
		u.So(t, store.Session(), u.ShouldResemble, api.Session{AccessToken: "A2", RefreshToken: "R1"})
		u.So(t, invalidated.count(), u.ShouldEqual, 0)
	})
}
