// Package session holds the authentication state of the workspace.
//
// A Store starts in StateChecking and settles to StateAuthenticated or
// StateAnonymous once Init has resolved the persisted credential. Callers
// that serve protected views must Wait for that first resolution.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"resumebuilder/internal/localstore"
	"resumebuilder/internal/logger"
	"resumebuilder/internal/model"
)

var (
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	// ErrRegisteredNotLoggedIn means the account was created but the
	// follow-up login failed. The caller should ask the user to log in.
	ErrRegisteredNotLoggedIn = errors.New("account created but login failed")
)

type State int

const (
	StateChecking State = iota
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Authenticator is the slice of the backend client used by the session.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*model.AuthResult, error)
	Register(ctx context.Context, reg model.Registration) (*model.User, error)
	CurrentUser(ctx context.Context) (*model.User, error)
}

// Snapshot is a point-in-time copy of the session.
type Snapshot struct {
	State State       `json:"-"`
	User  *model.User `json:"user,omitempty"`
}

func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated
}

// AuthenticatedFunc is notified every time the session becomes authenticated.
type AuthenticatedFunc func(ctx context.Context, user model.User)

type Store struct {
	mu        sync.RWMutex
	state     State
	user      *model.User
	ready     chan struct{}
	settled   bool
	listeners []AuthenticatedFunc

	auth  Authenticator
	slots localstore.Store
	now   func() time.Time
	log   zerolog.Logger
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

func New(auth Authenticator, slots localstore.Store, opts ...Option) *Store {
	s := &Store{
		state: StateChecking,
		ready: make(chan struct{}),
		auth:  auth,
		slots: slots,
		now:   time.Now,
		log:   logger.Component("session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnAuthenticated registers fn. Listeners run synchronously, in
// registration order, after the state change is visible.
func (s *Store) OnAuthenticated(fn AuthenticatedFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := Snapshot{State: s.state}
	if s.user != nil {
		u := *s.user
		out.User = &u
	}
	return out
}

// User returns the current profile, or nil when not authenticated.
func (s *Store) User() *model.User {
	return s.Snapshot().User
}

// Wait blocks until the session has left StateChecking or ctx is done.
func (s *Store) Wait(ctx context.Context) error {
	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()

	select {
	case <-ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Init resolves the persisted credential. A missing, expired or rejected
// credential settles the session to anonymous and is discarded. Init may be
// called again to re-check after a reset.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateChecking
	s.user = nil
	if s.settled {
		s.ready = make(chan struct{})
		s.settled = false
	}
	s.mu.Unlock()

	token, err := s.slots.Get(ctx, localstore.KeyAccessToken)
	if err != nil {
		s.settle(ctx, StateAnonymous, nil)
		return fmt.Errorf("read credential: %w", err)
	}
	if token == "" {
		s.settle(ctx, StateAnonymous, nil)
		return nil
	}

	if tokenExpired(token, s.now()) {
		s.log.Info().Msg("stored credential expired")
		s.discardToken(ctx)
		s.settle(ctx, StateAnonymous, nil)
		return nil
	}

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("auth check failed")
		s.discardToken(ctx)
		s.settle(ctx, StateAnonymous, nil)
		return nil
	}

	s.settle(ctx, StateAuthenticated, user)
	return nil
}

// Login exchanges credentials for a token, persists it and authenticates
// the session. On failure the session is left untouched.
func (s *Store) Login(ctx context.Context, email, password string) (*model.User, error) {
	if err := validateStruct(model.Credentials{Email: email, Password: password}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, describe(err))
	}

	res, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.slots.Set(ctx, localstore.KeyAccessToken, res.AccessToken); err != nil {
		return nil, fmt.Errorf("persist credential: %w", err)
	}

	user := res.User
	s.log.Info().Str("user_id", user.ID).Msg("logged in")
	s.settle(ctx, StateAuthenticated, &user)
	return &user, nil
}

// Register creates the account and then logs in with the same
// credentials. The two calls are not atomic: if the login fails the
// account exists and ErrRegisteredNotLoggedIn is returned with the
// created user.
func (s *Store) Register(ctx context.Context, reg model.Registration) (*model.User, error) {
	if err := validateStruct(reg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRegistration, describe(err))
	}

	created, err := s.auth.Register(ctx, reg)
	if err != nil {
		return nil, err
	}

	if _, err := s.Login(ctx, reg.Email, reg.Password); err != nil {
		s.log.Warn().Err(err).Str("email", reg.Email).Msg("registered but login failed")
		return created, fmt.Errorf("%w: %v", ErrRegisteredNotLoggedIn, err)
	}
	return created, nil
}

// Logout discards the credential and profile. No network call is made.
func (s *Store) Logout(ctx context.Context) error {
	err := s.slots.Delete(ctx, localstore.KeyAccessToken)
	s.settle(ctx, StateAnonymous, nil)
	if err != nil {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}

// Expire drops the session after the backend rejected the credential.
// The credential itself has already been removed by the client.
func (s *Store) Expire(ctx context.Context) {
	s.log.Warn().Msg("session expired")
	s.settle(ctx, StateAnonymous, nil)
}

func (s *Store) discardToken(ctx context.Context) {
	if err := s.slots.Delete(ctx, localstore.KeyAccessToken); err != nil {
		s.log.Error().Err(err).Msg("failed to remove credential")
	}
}

func (s *Store) settle(ctx context.Context, state State, user *model.User) {
	s.mu.Lock()
	s.state = state
	s.user = user
	if !s.settled {
		close(s.ready)
		s.settled = true
	}
	listeners := append([]AuthenticatedFunc(nil), s.listeners...)
	s.mu.Unlock()

	if state != StateAuthenticated || user == nil {
		return
	}
	for _, fn := range listeners {
		fn(ctx, *user)
	}
}
