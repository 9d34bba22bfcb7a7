package service

import (
	"context"
	"testing"
	"time"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/repository"
	"github.com/Didine-06/travel-agency-sub000/pkg/token"
)

func newAuthService() (*AuthService, *repository.MemoryUserRepository, *repository.MemorySessionRepository) {
	users := repository.NewMemoryUserRepository()
	sessions := repository.NewMemorySessionRepository()
	tokens := token.NewManager("test-secret", time.Hour, "test")
	return NewAuthService(users, sessions, tokens), users, sessions
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Email: "new@example.com", Password: "secret123", FirstName: "New", LastName: "User",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected access token")
	}
	if resp.User.Role != string(domain.RoleClient) {
		t.Errorf("registration must create a CLIENT, got %s", resp.User.Role)
	}

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "new@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.User.Email != "new@example.com" {
		t.Errorf("unexpected user payload: %+v", login.User)
	}
	if login.ExpiresIn != 3600 {
		t.Errorf("expected expiresIn 3600, got %d", login.ExpiresIn)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()
	req := &dto.RegisterRequest{Email: "dup@example.com", Password: "secret123", FirstName: "A", LastName: "B"}

	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if _, err := svc.Register(ctx, req); err != ErrUserAlreadyExists {
		t.Errorf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()
	svc.Register(ctx, &dto.RegisterRequest{Email: "u@example.com", Password: "right", FirstName: "U", LastName: "V"})

	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "u@example.com", Password: "wrong"}); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthService()
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "x"}); err != ErrInvalidCredentials {
		// Unknown email and wrong password are indistinguishable to the caller.
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	svc, users, _ := newAuthService()
	ctx := context.Background()
	resp, err := svc.Register(ctx, &dto.RegisterRequest{Email: "gone@example.com", Password: "secret123", FirstName: "G", LastName: "H"})
	if err != nil {
		t.Fatal(err)
	}

	user, _ := users.GetByID(ctx, resp.User.ID)
	user.IsActive = false
	users.Update(ctx, user)

	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "gone@example.com", Password: "secret123"}); err != ErrUserInactive {
		t.Errorf("expected ErrUserInactive, got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, sessions := newAuthService()
	ctx := context.Background()
	resp, err := svc.Register(ctx, &dto.RegisterRequest{Email: "out@example.com", Password: "secret123", FirstName: "O", LastName: "P"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Logout(ctx, resp.AccessToken); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	revoked, err := sessions.IsRevoked(ctx, resp.AccessToken)
	if err != nil {
		t.Fatal(err)
	}
	if !revoked {
		t.Error("expected token revoked after logout")
	}
}

func TestLogoutUndecodableTokenSucceeds(t *testing.T) {
	svc, _, _ := newAuthService()
	if err := svc.Logout(context.Background(), "garbage"); err != nil {
		t.Errorf("logout with garbage token must still succeed, got %v", err)
	}
}

func TestProfileAndUpdate(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()
	resp, err := svc.Register(ctx, &dto.RegisterRequest{Email: "p@example.com", Password: "secret123", FirstName: "Pat", LastName: "Lee"})
	if err != nil {
		t.Fatal(err)
	}

	payload, err := svc.Profile(ctx, resp.User.ID)
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if payload.FirstName != "Pat" {
		t.Errorf("unexpected profile: %+v", payload)
	}

	updated, err := svc.UpdateProfile(ctx, resp.User.ID, &dto.UpdateProfileRequest{LanguageID: "ru"})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.LanguageID != "ru" {
		t.Errorf("expected language ru, got %s", updated.LanguageID)
	}
	if updated.FirstName != "Pat" {
		t.Error("partial update must not clear other fields")
	}
}

func TestProfileUnknownUser(t *testing.T) {
	svc, _, _ := newAuthService()
	if _, err := svc.Profile(context.Background(), "ghost"); err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
