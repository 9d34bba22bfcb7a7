package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/localstore"
	"github.com/Didine-06/travel-agency-sub000/pkg/token"
)

// mockAuthAPI is a mock implementation of AuthAPI
type mockAuthAPI struct {
	loginResp  *dto.AuthResponse
	loginErr   error
	logoutErr  error
	logoutHits int
}

func (m *mockAuthAPI) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.loginResp, nil
}

func (m *mockAuthAPI) Logout(ctx context.Context) error {
	m.logoutHits++
	return m.logoutErr
}

// recordingNav records every route change
type recordingNav struct {
	routes []string
}

func (n *recordingNav) Go(route string) {
	n.routes = append(n.routes, route)
}

func (n *recordingNav) last() string {
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	tok, err := token.NewManager("test-secret", ttl, "test").Generate("u1", "a@b.c", "AGENT")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return tok
}

func storedSession(t *testing.T) string {
	t.Helper()
	sess := domain.NewSession("u1", "a@b.c", "Ann", "Agent", "AGENT", "en")
	raw, err := json.Marshal(sess)
	if err != nil {
		t.Fatal(err)
	}
	return string(raw)
}

func TestBootstrapEmptyStore(t *testing.T) {
	local := localstore.NewMemory()
	s := NewStore(local, &mockAuthAPI{}, &recordingNav{}, nil)

	if !s.Loading() {
		t.Error("expected loading before bootstrap")
	}
	s.Bootstrap()
	if s.Loading() {
		t.Error("expected loading false after bootstrap")
	}
	if s.IsAuthenticated() {
		t.Error("expected no session from empty store")
	}
}

func TestBootstrapValidToken(t *testing.T) {
	local := localstore.NewMemory()
	local.Set(localstore.KeyUser, storedSession(t))
	local.Set(localstore.KeyAccessToken, signedToken(t, time.Hour))

	s := NewStore(local, &mockAuthAPI{}, &recordingNav{}, nil)
	s.Bootstrap()

	if !s.IsAuthenticated() {
		t.Fatal("expected restored session")
	}
	cur := s.Current()
	if cur.Name != "Ann Agent" || cur.Role != domain.RoleAgent {
		t.Errorf("unexpected session: %+v", cur)
	}
}

func TestBootstrapExpiredTokenPurges(t *testing.T) {
	local := localstore.NewMemory()
	local.Set(localstore.KeyUser, storedSession(t))
	local.Set(localstore.KeyAccessToken, signedToken(t, -time.Minute))

	s := NewStore(local, &mockAuthAPI{}, &recordingNav{}, nil)
	s.Bootstrap()

	if s.IsAuthenticated() {
		t.Error("expected expired token to be rejected")
	}
	if _, ok := local.Get(localstore.KeyUser); ok {
		t.Error("expected stored user purged")
	}
	if _, ok := local.Get(localstore.KeyAccessToken); ok {
		t.Error("expected stored token purged")
	}
}

func TestBootstrapUndecodableTokenPurges(t *testing.T) {
	local := localstore.NewMemory()
	local.Set(localstore.KeyUser, storedSession(t))
	local.Set(localstore.KeyAccessToken, "not-a-jwt")

	s := NewStore(local, &mockAuthAPI{}, &recordingNav{}, nil)
	s.Bootstrap()

	if s.IsAuthenticated() {
		t.Error("expected undecodable token to be rejected")
	}
	if _, ok := local.Get(localstore.KeyAccessToken); ok {
		t.Error("expected stored token purged")
	}
}

func TestBootstrapHonorsInjectedClock(t *testing.T) {
	local := localstore.NewMemory()
	local.Set(localstore.KeyUser, storedSession(t))
	local.Set(localstore.KeyAccessToken, signedToken(t, time.Hour))

	s := NewStore(local, &mockAuthAPI{}, &recordingNav{}, nil)
	s.SetClock(func() time.Time { return time.Now().Add(2 * time.Hour) })
	s.Bootstrap()

	if s.IsAuthenticated() {
		t.Error("token should count as expired under the advanced clock")
	}
}

func TestLoginPersistsAndNavigates(t *testing.T) {
	local := localstore.NewMemory()
	nav := &recordingNav{}
	auth := &mockAuthAPI{loginResp: &dto.AuthResponse{
		AccessToken: signedToken(t, time.Hour),
		User: dto.UserPayload{
			ID: "u1", Email: "a@b.c", FirstName: "Ann", LastName: "Agent",
			Role: "AGENT", LanguageID: "ru",
		},
	}}

	s := NewStore(local, auth, nav, nil)
	s.Bootstrap()

	if err := s.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if nav.last() != RouteAgent {
		t.Errorf("expected agent landing route, got %q", nav.last())
	}
	if _, ok := local.Get(localstore.KeyAccessToken); !ok {
		t.Error("expected token persisted")
	}
	cur := s.Current()
	if cur == nil || cur.Name != "Ann Agent" {
		t.Errorf("unexpected session: %+v", cur)
	}
}

func TestLoginFailureWritesNothing(t *testing.T) {
	local := localstore.NewMemory()
	nav := &recordingNav{}
	auth := &mockAuthAPI{loginErr: errors.New("Invalid email or password")}

	s := NewStore(local, auth, nav, nil)
	s.Bootstrap()

	if err := s.Login(context.Background(), "a@b.c", "bad"); err == nil {
		t.Fatal("expected login error")
	}
	if s.IsAuthenticated() {
		t.Error("expected no session after failed login")
	}
	if _, ok := local.Get(localstore.KeyAccessToken); ok {
		t.Error("expected nothing persisted after failed login")
	}
	if len(nav.routes) != 0 {
		t.Errorf("expected no navigation, got %v", nav.routes)
	}
}

func TestLogoutClearsLocallyEvenWhenServerFails(t *testing.T) {
	local := localstore.NewMemory()
	local.Set(localstore.KeyUser, storedSession(t))
	local.Set(localstore.KeyAccessToken, signedToken(t, time.Hour))
	nav := &recordingNav{}
	auth := &mockAuthAPI{logoutErr: errors.New("no response from server")}

	s := NewStore(local, auth, nav, nil)
	s.Bootstrap()
	if !s.IsAuthenticated() {
		t.Fatal("setup: expected session")
	}

	s.Logout(context.Background())

	if auth.logoutHits != 1 {
		t.Errorf("expected one server logout attempt, got %d", auth.logoutHits)
	}
	if s.IsAuthenticated() {
		t.Error("expected local session cleared despite server failure")
	}
	if _, ok := local.Get(localstore.KeyAccessToken); ok {
		t.Error("expected token removed")
	}
	if nav.last() != RouteLogin {
		t.Errorf("expected redirect to login, got %q", nav.last())
	}
}

func TestHandleUnauthorized(t *testing.T) {
	local := localstore.NewMemory()
	local.Set(localstore.KeyUser, storedSession(t))
	local.Set(localstore.KeyAccessToken, signedToken(t, time.Hour))
	nav := &recordingNav{}

	s := NewStore(local, &mockAuthAPI{}, nav, nil)
	s.Bootstrap()

	s.HandleUnauthorized()

	if s.IsAuthenticated() {
		t.Error("expected session purged on 401")
	}
	if _, ok := local.Get(localstore.KeyUser); ok {
		t.Error("expected stored user purged on 401")
	}
	if nav.last() != RouteLogin {
		t.Errorf("expected login redirect, got %q", nav.last())
	}
}

func TestGuardRoute(t *testing.T) {
	local := localstore.NewMemory()
	local.Set(localstore.KeyUser, storedSession(t)) // AGENT
	local.Set(localstore.KeyAccessToken, signedToken(t, time.Hour))

	s := NewStore(local, &mockAuthAPI{}, &recordingNav{}, nil)
	s.Bootstrap()

	if ok, _ := s.GuardRoute(domain.RoleAgent); !ok {
		t.Error("agent should enter the agent tree")
	}
	if ok, redirect := s.GuardRoute(domain.RoleAdmin); ok || redirect != RouteUnauthorized {
		t.Errorf("agent in admin tree should redirect to %s, got ok=%v %q", RouteUnauthorized, ok, redirect)
	}

	anon := NewStore(localstore.NewMemory(), &mockAuthAPI{}, &recordingNav{}, nil)
	anon.Bootstrap()
	if ok, redirect := anon.GuardRoute(domain.RoleAdmin); ok || redirect != RouteLogin {
		t.Errorf("anonymous should redirect to %s, got ok=%v %q", RouteLogin, ok, redirect)
	}
}

func TestLandingRoutes(t *testing.T) {
	tests := []struct {
		role domain.Role
		want string
	}{
		{domain.RoleAdmin, RouteAdmin},
		{domain.RoleAgent, RouteAgent},
		{domain.RoleClient, RouteClient},
		{domain.Role("INTERN"), RouteHome},
	}
	for _, tt := range tests {
		if got := LandingRoute(tt.role); got != tt.want {
			t.Errorf("LandingRoute(%s) = %s, want %s", tt.role, got, tt.want)
		}
	}
}
