package service

import (
	"context"
	"errors"
	"strings"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

const (
	msgAllFieldsRequired  = "All fields required"
	msgEmailRegistered    = "Email already registered"
	msgInvalidCredentials = "Invalid credentials"
)

// AuthService coordinates signup, login and logout.
type AuthService struct {
	users    repository.UserRepository
	sessions auth.SessionStore
	tokenMgr *auth.TokenManager
	hasher   auth.PasswordHasher
	// decoy is compared against when the email is unknown so both failure
	// paths cost one bcrypt comparison.
	decoy string
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Sessions auth.SessionStore
}

// SignupInput describes a new account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// AuthResult is returned by signup and login.
type AuthResult struct {
	User    *domain.User
	Token   string
	Session domain.Session
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) (*AuthService, error) {
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	decoy, err := hasher.Hash("decoy-password")
	if err != nil {
		return nil, err
	}
	return &AuthService{
		users:    deps.UserRepo,
		sessions: deps.Sessions,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL()),
		hasher:   hasher,
		decoy:    decoy,
	}, nil
}

// Signup creates an account and opens a session for it.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, apperrors.NewValidationError(msgAllFieldsRequired, nil)
	}
	if !in.Role.Valid() {
		return nil, apperrors.NewValidationError("Role must be employer or candidate", map[string]any{"role": in.Role})
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, apperrors.NewValidationError(msgEmailRegistered, nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewInternalError(err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewValidationError(msgEmailRegistered, nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	return s.issue(user)
}

// Login authenticates by email and password. Every failure reports the same
// message so callers cannot tell which field was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.NewUnauthorized(msgInvalidCredentials)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.hasher.Matches(s.decoy, password)
			return nil, apperrors.NewUnauthorized(msgInvalidCredentials)
		}
		return nil, apperrors.NewInternalError(err)
	}
	if !s.hasher.Matches(user.PasswordHash, password) {
		return nil, apperrors.NewUnauthorized(msgInvalidCredentials)
	}
	return s.issue(user)
}

// Logout revokes the session until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, session domain.Session) error {
	if err := s.sessions.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) issue(user *domain.User) (*AuthResult, error) {
	token, session, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &AuthResult{User: user, Token: token, Session: session}, nil
}
