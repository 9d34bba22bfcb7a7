package apiclient

import (
	"context"

	"github.com/Didine-06/travel-agency-sub000/internal/dto"
)

// AuthService talks to the authentication endpoints.
type AuthService struct {
	c *Client
}

// Auth returns the authentication service
func (c *Client) Auth() *AuthService {
	return &AuthService{c: c}
}

// Login exchanges credentials for an access token and user payload
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if err := s.c.post(ctx, "/api/v1/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new client account
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := s.c.post(ctx, "/api/v1/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the current token server-side
func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.post(ctx, "/api/v1/auth/logout", nil, nil)
}

// ProfileService talks to the profile endpoints.
type ProfileService struct {
	c *Client
}

// Profile returns the profile service
func (c *Client) Profile() *ProfileService {
	return &ProfileService{c: c}
}

// Get fetches the current user's profile
func (s *ProfileService) Get(ctx context.Context) (*dto.UserPayload, error) {
	var out dto.UserPayload
	if err := s.c.get(ctx, "/api/v1/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update updates the current user's profile
func (s *ProfileService) Update(ctx context.Context, req dto.UpdateProfileRequest) (*dto.UserPayload, error) {
	var out dto.UserPayload
	if err := s.c.put(ctx, "/api/v1/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLanguage pushes only the language preference
func (s *ProfileService) UpdateLanguage(ctx context.Context, languageID string) error {
	return s.c.put(ctx, "/api/v1/profile", dto.UpdateProfileRequest{LanguageID: languageID}, nil)
}

// GetLanguage fetches just the language preference from the profile
func (s *ProfileService) GetLanguage(ctx context.Context) (string, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	return p.LanguageID, nil
}
