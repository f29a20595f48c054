package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/smartlms/smartlms-cli/internal/api"
	"github.com/smartlms/smartlms-cli/internal/utils/test/assert"

	"github.com/golang-jwt/jwt/v5"
)

func newAccessToken(t *testing.T, userID int, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"token_type": "access",
		"user_id":    userID,
		"exp":        expiresAt.Unix(),
		"jti":        "c3f1e2d4",
	})
	signed, err := token.SignedString([]byte("django-insecure-secret"))
	assert.Nil(t, err)
	return signed
}

func TestSession(t *testing.T) {
	expiresAt := time.Now().Add(5 * time.Minute).Truncate(time.Second)

	t.Run("should carry the access token expiry into the oauth2 token", func(t *testing.T) {
		session := api.Session{AccessToken: newAccessToken(t, 42, expiresAt), RefreshToken: "R1"}

		tok := session.Token()
		assert.Equal(t, "Bearer", tok.Type())
		assert.True(t, tok.Expiry.Equal(expiresAt), "expected expiry %s but got %s", expiresAt, tok.Expiry)
		assert.True(t, tok.Valid(), "token should be valid")
	})

	t.Run("should report an expired access token as invalid", func(t *testing.T) {
		session := api.Session{AccessToken: newAccessToken(t, 42, time.Now().Add(-time.Minute))}
		assert.False(t, session.Token().Valid(), "token should be expired")
	})

	t.Run("should treat an opaque access token as never expiring", func(t *testing.T) {
		tok := api.Session{AccessToken: "A1"}.Token()
		assert.True(t, tok.Expiry.IsZero(), "expiry should be unset")
		assert.Equal(t, "Bearer A1", api.Session{AccessToken: "A1"}.AuthorizationHeader())
	})
}

func TestParseClaims(t *testing.T) {
	claims, err := api.ParseClaims(newAccessToken(t, 42, time.Now().Add(time.Hour)))
	assert.Nil(t, err)
	assert.Equal(t, "42", claims.User())
	assert.Equal(t, "access", claims.TokenType)

	_, err = api.ParseClaims("not-a-jwt")
	assert.NotNil(t, err)
}

func TestMemoryStore(t *testing.T) {
	store := api.NewMemoryStore(api.Session{AccessToken: "A1", RefreshToken: "R1"})

	store.SetAccessToken("A2")
	assert.Equal(t, api.Session{AccessToken: "A2", RefreshToken: "R1"}, store.Session())

	store.ClearSession()
	assert.Equal(t, api.Session{}, store.Session())
	assert.Nil(t, store.Save())
}

func TestParseResponseError(t *testing.T) {
	for _, tc := range []struct {
		description string
		statusCode  int
		body        string
		expected    string
	}{
		{
			description: "should use the detail of the payload",
			statusCode:  http.StatusForbidden,
			body:        `{"detail":"Not allowed"}`,
			expected:    "403 Forbidden: Not allowed",
		},
		{
			description: "should fall back to the raw payload",
			statusCode:  http.StatusBadRequest,
			body:        `{"title":["This field is required."]}` + "\n",
			expected:    `400 Bad Request: {"title":["This field is required."]}`,
		},
		{
			description: "should fall back to the status without a payload",
			statusCode:  http.StatusBadGateway,
			expected:    "502 Bad Gateway",
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			err := api.ParseResponseError(&http.Response{
				StatusCode: tc.statusCode,
				Body:       readCloser(tc.body),
			})
			assert.Equal(t, tc.expected, err.Error())
			assert.True(t, api.IsStatus(err, tc.statusCode), "should match the status code")
		})
	}
}

type nopCloser struct{ *strings.Reader }

func (nopCloser) Close() error { return nil }

func readCloser(s string) nopCloser { return nopCloser{strings.NewReader(s)} }
