// Package services – AccountService
//
// AccountService handles email/password signup and login, Google sign-in via
// a verified ID token, and session token issuance.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/creatorlab/creatorlab-backend/internal/auth"
	"github.com/creatorlab/creatorlab-backend/internal/domain"
	"github.com/creatorlab/creatorlab-backend/internal/repo"
)

// MinPasswordLen is the shortest accepted password.
const MinPasswordLen = 6

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(id domain.Identity) (string, error)
}

// Session is a signed token plus the user it was issued for.
type Session struct {
	Token string
	User  domain.User
}

// AccountService manages users and sessions.
type AccountService struct {
	DB     *gorm.DB
	Tokens TokenIssuer

	// Google is nil when Google sign-in is not configured.
	Google auth.GoogleVerifier

	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

// Signup creates a password account and returns a session for it.
func (s *AccountService) Signup(ctx context.Context, name, email, password string) (*Session, error) {
	tr := otel.Tracer("services/AccountService")
	ctx, span := tr.Start(ctx, "Signup")
	defer span.End()

	name = strings.TrimSpace(name)
	email = repo.NormalizeEmail(email)
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	case email == "" || !strings.Contains(email, "@"):
		return nil, fmt.Errorf("%w: a valid email is required", ErrBadRequest)
	case len(password) < MinPasswordLen:
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrBadRequest, MinPasswordLen)
	}

	taken, err := repo.EmailTaken(ctx, s.DB, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	cost := s.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password too long", ErrBadRequest)
		}
		return nil, err
	}

	u, err := repo.CreateUser(ctx, s.DB, email, name, string(hash), repo.ProviderPassword)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	span.SetAttributes(attribute.String("user.id", u.ID))
	return s.session(*u)
}

// Login verifies email and password.
func (s *AccountService) Login(ctx context.Context, email, password string) (*Session, error) {
	tr := otel.Tracer("services/AccountService")
	ctx, span := tr.Start(ctx, "Login")
	defer span.End()

	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrBadRequest)
	}
	u, err := repo.GetUserByEmail(ctx, s.DB, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	span.SetAttributes(attribute.String("user.id", u.ID))
	return s.session(*u)
}

// GoogleLogin verifies a Google ID token and signs the user in, creating the
// account on first use.
func (s *AccountService) GoogleLogin(ctx context.Context, idToken string) (*Session, error) {
	tr := otel.Tracer("services/AccountService")
	ctx, span := tr.Start(ctx, "GoogleLogin")
	defer span.End()

	if s.Google == nil {
		return nil, ErrMisconfigured
	}
	if strings.TrimSpace(idToken) == "" {
		return nil, fmt.Errorf("%w: idToken is required", ErrBadRequest)
	}
	profile, err := s.Google.Verify(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	u, err := repo.GetUserByEmail(ctx, s.DB, profile.Email)
	if errors.Is(err, repo.ErrNotFound) {
		name := profile.Name
		if name == "" {
			name, _, _ = strings.Cut(profile.Email, "@")
		}
		u, err = repo.CreateUser(ctx, s.DB, profile.Email, name, "", repo.ProviderGoogle)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// a concurrent first sign-in created the account
			u, err = repo.GetUserByEmail(ctx, s.DB, profile.Email)
		}
	}
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("user.id", u.ID))
	return s.session(*u)
}

// Me returns the user behind an authenticated request.
func (s *AccountService) Me(ctx context.Context, userID string) (*domain.User, error) {
	tr := otel.Tracer("services/AccountService")
	ctx, span := tr.Start(ctx, "Me", trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()

	u, err := repo.GetUser(ctx, s.DB, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *AccountService) session(u domain.User) (*Session, error) {
	tok, err := s.Tokens.Issue(u.Identity())
	if err != nil {
		return nil, err
	}
	return &Session{Token: tok, User: u}, nil
}
