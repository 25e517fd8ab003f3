package session

import (
	"context"
	"sync"

	"github.com/Ivaneres/coffee/internal/api"
	"github.com/Ivaneres/coffee/internal/errors"
	"github.com/Ivaneres/coffee/internal/logging"
)

// Authenticator is the slice of the API client the session needs. Defined
// here so tests can substitute a fake.
type Authenticator interface {
	Login(ctx context.Context, creds api.LoginCredentials) (*api.TokenResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.User, error)
	CurrentUser(ctx context.Context) (*api.User, error)
}

// Session is the process-wide authentication state: the current bearer
// token plus the cached user profile. It is created once at startup and
// injected into views; login and logout are the only writers.
//
// The session never verifies the token itself. A stale token simply
// surfaces as a failed API call on first use.
type Session struct {
	store  TokenStore
	logger *logging.Logger

	mu    sync.RWMutex
	auth  Authenticator
	token string
	user  *api.User
}

// New creates a Session backed by the given token store. Call SetAuth to
// wire the API client before using Login, Register or RefreshUser.
func New(store TokenStore, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Session{store: store, logger: logger}
}

// SetAuth wires the API client used for login and profile fetches. Set once
// during startup; the client in turn reads the bearer token back from this
// session via Token.
func (s *Session) SetAuth(auth Authenticator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = auth
}

// Restore loads a previously persisted token into memory. A missing token
// is not an error; the session simply starts unauthenticated.
func (s *Session) Restore() {
	token, err := s.store.Load()
	if err != nil {
		if !errors.Is(err, errors.ErrTokenNotFound) {
			s.logger.Warn("failed to restore token", "error", err)
		}
		return
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.logger.Debug("session restored from stored token")
}

// Token returns the current bearer token, or "" when unauthenticated.
// Implements api.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is held. It says nothing about
// whether the server still accepts it.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// CurrentUser returns the cached user profile, or nil when no profile has
// been fetched yet.
func (s *Session) CurrentUser() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Login exchanges credentials for a token, persists it, and caches the user
// profile. On failure the session state is left untouched.
func (s *Session) Login(ctx context.Context, username, password string) error {
	s.mu.RLock()
	auth := s.auth
	s.mu.RUnlock()
	if auth == nil {
		return errors.NewSessionError("no API client wired", nil)
	}

	resp, err := auth.Login(ctx, api.LoginCredentials{Username: username, Password: password})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = resp.AccessToken
	s.mu.Unlock()

	if err := s.store.Save(resp.AccessToken); err != nil {
		// The in-memory session is usable; the token just won't survive
		// a restart.
		s.logger.Warn("failed to persist token", "error", err)
	}

	user, err := auth.CurrentUser(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch profile after login", "error", err)
		return nil
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.logger.Info("logged in", "username", user.Username)
	return nil
}

// Register creates a new account. It does not log the new user in.
func (s *Session) Register(ctx context.Context, username, email, password string) (*api.User, error) {
	s.mu.RLock()
	auth := s.auth
	s.mu.RUnlock()
	if auth == nil {
		return nil, errors.NewSessionError("no API client wired", nil)
	}

	return auth.Register(ctx, api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
}

// RefreshUser fetches and caches the current user profile. Used on startup
// when a restored token is present.
func (s *Session) RefreshUser(ctx context.Context) error {
	s.mu.RLock()
	auth := s.auth
	s.mu.RUnlock()
	if auth == nil {
		return errors.NewSessionError("no API client wired", nil)
	}

	user, err := auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// Logout clears the token and cached user, both in memory and on disk.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		return err
	}
	s.logger.Info("logged out")
	return nil
}
