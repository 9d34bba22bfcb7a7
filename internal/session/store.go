// Package session owns the "who is logged in" state: bootstrapped once at
// start from persisted state, mutated only through Login and Logout, and
// purged process-wide when any call sees a 401.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/localstore"
	"github.com/Didine-06/travel-agency-sub000/pkg/token"
)

// Route constants for the role-gated surface.
const (
	RouteHome         = "/"
	RouteLogin        = "/login"
	RouteUnauthorized = "/unauthorized"
	RouteAdmin        = "/admin"
	RouteAgent        = "/agent"
	RouteClient       = "/client"
)

// Navigator receives route changes. The shell decides what "navigating"
// means (the CLI prints the landing route).
type Navigator interface {
	Go(route string)
}

// AuthAPI is the slice of the API client the store needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	Logout(ctx context.Context) error
}

// Store is the single source of truth for the current session.
type Store struct {
	local *localstore.Store
	auth  AuthAPI
	nav   Navigator
	now   func() time.Time
	log   *zap.Logger

	mu      sync.RWMutex
	current *domain.Session
	loading bool
}

// NewStore creates a session store. Loading stays true until Bootstrap has
// run, so gated routes can wait instead of flashing a login redirect.
func NewStore(local *localstore.Store, auth AuthAPI, nav Navigator, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		local:   local,
		auth:    auth,
		nav:     nav,
		now:     time.Now,
		log:     log,
		loading: true,
	}
}

// SetClock overrides the time source, for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Bootstrap restores the session from persisted state. A token whose expiry
// has passed (or cannot be decoded) purges both stored values. No network
// call is made. Loading is false afterwards in every path.
func (s *Store) Bootstrap() {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	rawUser, okUser := s.local.Get(localstore.KeyUser)
	rawToken, okToken := s.local.Get(localstore.KeyAccessToken)
	if !okUser || !okToken || rawUser == "" || rawToken == "" {
		return
	}

	claims, err := token.ExtractUnverified(rawToken)
	if err != nil || !claims.ExpiresAtTime().After(s.now()) {
		s.purgeLocked()
		return
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(rawUser), &sess); err != nil {
		s.purgeLocked()
		return
	}
	s.current = &sess
}

// Login authenticates against the collaborator. On success the session and
// token are persisted together and the navigator receives the role's
// landing route. On failure nothing is written.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	sess := domain.NewSession(
		resp.User.ID,
		resp.User.Email,
		resp.User.FirstName,
		resp.User.LastName,
		resp.User.Role,
		resp.User.LanguageID,
	)

	rawUser, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.local.Set(localstore.KeyUser, string(rawUser)); err != nil {
		return err
	}
	if err := s.local.Set(localstore.KeyAccessToken, resp.AccessToken); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	s.nav.Go(LandingRoute(sess.Role))
	return nil
}

// Logout tells the server best-effort, then clears local state
// unconditionally. Logout always succeeds locally.
func (s *Store) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.log.Debug("server logout failed, clearing local state anyway", zap.Error(err))
	}

	s.mu.Lock()
	s.purgeLocked()
	s.current = nil
	s.mu.Unlock()

	s.nav.Go(RouteLogin)
}

// HandleUnauthorized is the process-wide 401 reaction: purge and force the
// login route regardless of which call tripped it. Wire it as the API
// client's OnUnauthorized hook.
func (s *Store) HandleUnauthorized() {
	s.mu.Lock()
	s.purgeLocked()
	s.current = nil
	s.mu.Unlock()

	s.nav.Go(RouteLogin)
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Loading reports whether Bootstrap has completed yet.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Current returns the active session, or nil.
func (s *Store) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	sess := *s.current
	return &sess
}

// AccessToken implements apiclient.TokenSource from persisted state.
func (s *Store) AccessToken() (string, bool) {
	return s.local.Get(localstore.KeyAccessToken)
}

// GuardRoute decides whether the current session may enter a route tree
// requiring the given role, returning the redirect target otherwise.
func (s *Store) GuardRoute(required domain.Role) (bool, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return false, RouteLogin
	}
	if s.current.Role != required {
		return false, RouteUnauthorized
	}
	return true, ""
}

func (s *Store) purgeLocked() {
	if err := s.local.Delete(localstore.KeyUser, localstore.KeyAccessToken); err != nil {
		s.log.Warn("failed to clear persisted session", zap.Error(err))
	}
	s.current = nil
}

// LandingRoute maps a role to its dashboard route; unknown roles land on
// the public home page.
func LandingRoute(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return RouteAdmin
	case domain.RoleAgent:
		return RouteAgent
	case domain.RoleClient:
		return RouteClient
	default:
		return RouteHome
	}
}
