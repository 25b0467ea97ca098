// ABOUTME: Process-wide session store holding the authentication state
// ABOUTME: Drives the CSRF-then-auth request sequence and publishes state transitions

package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jmercadier/finflow/internal/client"
)

// AuthAPI is the slice of the API client the store drives. The store owns the
// ordering (CSRF bootstrap strictly before the dependent auth call) and pushes
// the bearer token into the client whenever it changes.
type AuthAPI interface {
	GetCsrfCookie(ctx context.Context) error
	Login(ctx context.Context, email, password string) (*client.AuthResponse, error)
	Register(ctx context.Context, input client.RegisterInput) (*client.AuthResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*client.User, error)
	SetToken(token string)
	ClearToken()
}

// Store is the single writer of session state. The authenticated flag, user,
// and token are replaced together under one lock, so a concurrent reader never
// observes a half-updated combination.
type Store struct {
	api   AuthAPI
	creds *Credentials

	mu            sync.RWMutex
	authenticated bool
	user          *client.User
	token         string

	nextSubID int
	authSubs  map[int]chan bool
	userSubs  map[int]chan *client.User
}

// NewStore creates a session store in the unauthenticated default state.
// Call Restore to rehydrate a persisted session.
func NewStore(api AuthAPI, creds *Credentials) *Store {
	return &Store{
		api:      api,
		creds:    creds,
		authSubs: make(map[int]chan bool),
		userSubs: make(map[int]chan *client.User),
	}
}

// Restore rehydrates the session from the persisted credential record.
// When both a token and user are present it optimistically publishes the
// cached state; callers should follow up with Revalidate to confirm the
// backend still accepts the token. Returns whether a session was restored.
func (s *Store) Restore() bool {
	token, user := s.creds.Load()
	if token == "" || user == nil {
		return false
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.authenticated = true
	s.publishAuthLocked(true)
	s.publishUserLocked(user)
	s.mu.Unlock()

	s.api.SetToken(token)
	return true
}

// Revalidate confirms a restored session against the who-am-I endpoint.
// Failure is an implicit logout: local state is cleared and nothing is
// surfaced beyond the state transition. Safe to call when unauthenticated.
func (s *Store) Revalidate(ctx context.Context) {
	if !s.IsLoggedIn() {
		return
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		slog.Debug("Session revalidation failed, clearing session", "error", err)
		s.clear()
		return
	}

	s.replaceUser(user)
}

// Login performs the CSRF bootstrap, then the credentialed sign-in, then the
// shared auth-success handling. On failure the session state is untouched and
// the backend's message is surfaced. Overlapping calls are not de-duplicated;
// only state replacement is serialized.
func (s *Store) Login(ctx context.Context, email, password string) (*client.AuthResponse, error) {
	if err := s.api.GetCsrfCookie(ctx); err != nil {
		return nil, err
	}

	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.handleAuthSuccess(resp)
	return resp, nil
}

// Register performs the CSRF bootstrap, then the create-account call, then
// the shared auth-success handling. Same failure contract as Login.
func (s *Store) Register(ctx context.Context, input client.RegisterInput) (*client.AuthResponse, error) {
	if err := s.api.GetCsrfCookie(ctx); err != nil {
		return nil, err
	}

	resp, err := s.api.Register(ctx, input)
	if err != nil {
		return nil, err
	}

	s.handleAuthSuccess(resp)
	return resp, nil
}

// Logout attempts the remote sign-out but always ends the local session:
// clearing runs deferred so the network cannot veto it. The returned error
// reports the remote outcome only.
func (s *Store) Logout(ctx context.Context) error {
	defer s.clear()

	if err := s.api.GetCsrfCookie(ctx); err != nil {
		return err
	}
	return s.api.Logout(ctx)
}

// Refresh re-fetches the current user from the who-am-I endpoint and
// republishes it. Unlike Revalidate, errors are surfaced and the session is
// left as-is.
func (s *Store) Refresh(ctx context.Context) (*client.User, error) {
	user, err := s.api.Me(ctx)
	if err != nil {
		return nil, err
	}

	s.replaceUser(user)
	return user, nil
}

// Token returns the currently held bearer token, empty when unauthenticated
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsLoggedIn reports whether the session is authenticated
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// CurrentUser returns the published user, nil when unauthenticated
func (s *Store) CurrentUser() *client.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SubscribeAuth returns a channel that immediately replays the current
// authenticated flag and then receives every transition, plus an unsubscribe
// func. Slow consumers only ever see the latest value.
func (s *Store) SubscribeAuth() (<-chan bool, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan bool, 1)
	ch <- s.authenticated
	id := s.nextSubID
	s.nextSubID++
	s.authSubs[id] = ch

	return ch, func() {
		s.mu.Lock()
		delete(s.authSubs, id)
		s.mu.Unlock()
	}
}

// SubscribeUser returns a channel that immediately replays the current user
// and then receives every replacement, plus an unsubscribe func.
func (s *Store) SubscribeUser() (<-chan *client.User, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan *client.User, 1)
	ch <- s.user
	id := s.nextSubID
	s.nextSubID++
	s.userSubs[id] = ch

	return ch, func() {
		s.mu.Lock()
		delete(s.userSubs, id)
		s.mu.Unlock()
	}
}

// handleAuthSuccess applies a 2xx auth response. A response with no usable
// token leaves the session unauthenticated: the backend produced a success
// without a credential, and the store reports rather than masks that.
func (s *Store) handleAuthSuccess(resp *client.AuthResponse) {
	token := resp.BearerToken()
	if token == "" {
		slog.Warn("Auth response contained no token, session left unauthenticated")
		return
	}

	s.mu.Lock()
	s.token = token
	if resp.User != nil {
		s.user = resp.User
	}
	s.authenticated = true
	user := s.user
	s.publishAuthLocked(true)
	if resp.User != nil {
		s.publishUserLocked(user)
	}
	s.mu.Unlock()

	s.api.SetToken(token)
	if err := s.creds.Save(token, user); err != nil {
		slog.Warn("Failed to persist credentials", "error", err)
	}
}

// clear resets the session to the unauthenticated default, in memory and on
// disk, and drops the client's bearer token
func (s *Store) clear() {
	s.api.ClearToken()
	if err := s.creds.Clear(); err != nil {
		slog.Warn("Failed to clear persisted credentials", "error", err)
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.authenticated = false
	s.publishAuthLocked(false)
	s.publishUserLocked(nil)
	s.mu.Unlock()
}

// replaceUser swaps the user wholesale and re-persists the record
func (s *Store) replaceUser(user *client.User) {
	s.mu.Lock()
	s.user = user
	token := s.token
	s.publishUserLocked(user)
	s.mu.Unlock()

	if token == "" {
		return
	}
	if err := s.creds.Save(token, user); err != nil {
		slog.Warn("Failed to persist credentials", "error", err)
	}
}

func (s *Store) publishAuthLocked(v bool) {
	for _, ch := range s.authSubs {
		select {
		case ch <- v:
		default:
			// Drop the stale value so the subscriber sees the latest
			select {
			case <-ch:
			default:
			}
			ch <- v
		}
	}
}

func (s *Store) publishUserLocked(user *client.User) {
	for _, ch := range s.userSubs {
		select {
		case ch <- user:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- user
		}
	}
}
