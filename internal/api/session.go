package api

import (
	"sync"

	"golang.org/x/oauth2"
)

const tokenTypeBearer = "Bearer"

// Session is the pair of credentials issued to a logged in user
type Session struct {
	AccessToken  string
	RefreshToken string
}

// Token returns the session as an OAuth2 bearer token.
// When the access token is a readable JWT its expiry is carried over.
func (s Session) Token() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    tokenTypeBearer,
	}
	if claims, err := ParseClaims(s.AccessToken); err == nil && claims.ExpiresAt != nil {
		tok.Expiry = claims.ExpiresAt.Time
	}
	return tok
}

// AuthorizationHeader returns the Authorization header value for the access token
func (s Session) AuthorizationHeader() string {
	return bearer(s.AccessToken)
}

func bearer(accessToken string) string {
	tok := oauth2.Token{AccessToken: accessToken, TokenType: tokenTypeBearer}
	return tok.Type() + " " + tok.AccessToken
}

// SessionStore holds the session used by an AuthClient.
// Implementations must be safe for concurrent use.
type SessionStore interface {
	// Session reads the stored session
	Session() Session

	// SetAccessToken overwrites the stored access token, leaving the refresh token untouched
	SetAccessToken(token string)

	// ClearSession removes the tokens along with every other piece of user session data
	ClearSession()

	// Save persists the store
	Save() error
}

// MemoryStore is a SessionStore held in memory
type MemoryStore struct {
	mu      sync.RWMutex
	session Session
}

// NewMemoryStore creates a new MemoryStore holding the provided session
func NewMemoryStore(session Session) *MemoryStore {
	return &MemoryStore{session: session}
}

// Session reads the stored session
func (s *MemoryStore) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// SetSession overwrites the stored session
func (s *MemoryStore) SetSession(session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
}

// SetAccessToken overwrites the stored access token
func (s *MemoryStore) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.AccessToken = token
}

// ClearSession removes the stored session
func (s *MemoryStore) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{}
}

// Save is a noop
func (s *MemoryStore) Save() error { return nil }
