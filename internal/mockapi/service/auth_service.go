package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/repository"
	"github.com/Didine-06/travel-agency-sub000/pkg/token"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user is inactive")
	ErrTokenRevoked       = errors.New("token revoked")
)

// AuthService implements login, registration, logout and profile access for
// the dev API server.
type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	tokens   *token.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, tokens *token.Manager) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Register creates a new client account and returns a fresh token
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hashed),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         domain.RoleClient,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

// Login authenticates a user and returns a token plus the user payload
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// Logout revokes the presented token until its natural expiry
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := token.ExtractUnverified(tokenString)
	if err != nil {
		// Nothing to revoke; logout still succeeds.
		return nil
	}
	ttl := time.Until(claims.ExpiresAtTime())
	return s.sessions.Revoke(ctx, tokenString, ttl)
}

// Profile returns the user payload for the given user id
func (s *AuthService) Profile(ctx context.Context, userID string) (*dto.UserPayload, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	payload := userPayload(user)
	return &payload, nil
}

// UpdateProfile applies a partial profile update
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserPayload, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.LanguageID != "" {
		user.LanguageID = req.LanguageID
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	payload := userPayload(user)
	return &payload, nil
}

func (s *AuthService) authResponse(user *domain.User) (*dto.AuthResponse, error) {
	accessToken, err := s.tokens.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
		User:        userPayload(user),
	}, nil
}

func userPayload(user *domain.User) dto.UserPayload {
	return dto.UserPayload{
		ID:         user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Role:       string(user.Role),
		LanguageID: user.LanguageID,
	}
}
