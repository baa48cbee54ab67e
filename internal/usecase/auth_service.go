package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"resume-builder/internal/auth"
	"resume-builder/internal/domain"
)

const (
	MinPasswordLength = 6
	DefaultSocialName = "Google User"
)

// Session is what a successful sign in returns.
type Session struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type AuthService struct {
	users  UserRepo
	tokens *auth.Tokens
	logger *slog.Logger
	now    func() time.Time
}

func NewAuthService(users UserRepo, tokens *auth.Tokens, logger *slog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger.With("component", "auth"), now: time.Now}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*Session, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.Errorf(domain.ErrInvalidInput, "Name, email and password are required")
	}
	email = strings.ToLower(email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.Errorf(domain.ErrAlreadyExists, "Email already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, domain.Errorf(domain.ErrInvalidInput, "Password must be at least 6 characters long")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	u := &domain.User{
		Name: name, Email: email, PasswordHash: hash,
		Provider: domain.ProviderLocal, Role: domain.RoleUser,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.Errorf(domain.ErrAlreadyExists, "Email already exists")
		}
		return nil, err
	}
	s.logger.Info("user registered", "user_id", u.ID)
	return s.session(u)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, domain.Errorf(domain.ErrInvalidInput, "Email and password are required")
	}
	u, err := s.users.GetByEmail(ctx, strings.ToLower(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if u.PasswordHash == "" || !auth.CheckPassword(u.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return s.session(u)
}

// SocialLogin signs in a user verified by an external identity provider,
// creating the account on first use.
func (s *AuthService) SocialLogin(ctx context.Context, email, name, picture string) (*Session, error) {
	if email == "" {
		return nil, domain.Errorf(domain.ErrInvalidInput, "Email is required")
	}
	email = strings.ToLower(email)
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		if name == "" {
			name = DefaultSocialName
		}
		now := s.now().UTC()
		u = &domain.User{
			Name: name, Email: email, Picture: picture,
			Provider: domain.ProviderGoogle, Role: domain.RoleUser,
			CreatedAt: now, UpdatedAt: now,
		}
		if err := s.users.Create(ctx, u); err != nil {
			return nil, err
		}
		s.logger.Info("social user created", "user_id", u.ID)
	} else if err != nil {
		return nil, err
	}
	return s.session(u)
}

// PromoteAdmin grants the admin role to an existing account.
func (s *AuthService) PromoteAdmin(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	u.Role = domain.RoleAdmin
	u.UpdatedAt = s.now().UTC()
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("user promoted to admin", "user_id", u.ID)
	return u, nil
}

// CreateAdmin registers a local account with the admin role, or promotes
// and resets the password of an existing one.
func (s *AuthService) CreateAdmin(ctx context.Context, name, email, password string) (*domain.User, error) {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, domain.Errorf(domain.ErrInvalidInput, "Password must be at least 6 characters long")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(email)
	now := s.now().UTC()

	u, err := s.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		u = &domain.User{
			Name: name, Email: email, PasswordHash: hash,
			Provider: domain.ProviderLocal, Role: domain.RoleAdmin,
			CreatedAt: now, UpdatedAt: now,
		}
		err = s.users.Create(ctx, u)
	case err == nil:
		u.Role, u.PasswordHash, u.UpdatedAt = domain.RoleAdmin, hash, now
		err = s.users.Update(ctx, u)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) session(u *domain.User) (*Session, error) {
	token, err := s.tokens.Issue(*u)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: u}, nil
}
