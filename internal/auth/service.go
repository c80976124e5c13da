package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/events"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/token"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)

// Service encapsulates account creation and credential checking.
type Service struct {
	store  Store
	tokens *token.Manager
	pub    *events.Publisher
	log    logger.Logger
}

// NewService returns a configured Service.
func NewService(store Store, tokens *token.Manager, pub *events.Publisher, log logger.Logger) *Service {
	return &Service{store: store, tokens: tokens, pub: pub, log: log}
}

// SignUp creates an account and returns a signed token for it. A duplicate
// email fails with faults.ErrConflict.
func (s *Service) SignUp(ctx context.Context, name, email, password string) (User, string, error) {
	if name == "" {
		return User{}, "", faults.Validation("name", "name is required")
	}
	if !emailPattern.MatchString(email) {
		return User{}, "", faults.Validation("email", "email must look like local@domain.tld")
	}
	if len(password) < 6 {
		return User{}, "", faults.Validation("password", "password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, "", fmt.Errorf("hash password: %w", err)
	}

	stored, err := s.store.InsertUser(ctx, User{Name: name, Email: email, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, faults.ErrConflict) {
			return User{}, "", fmt.Errorf("email %s already registered: %w", email, faults.ErrConflict)
		}
		return User{}, "", fmt.Errorf("store user: %w", err)
	}

	signed, err := s.tokens.Issue(stored.Name, stored.Email)
	if err != nil {
		return User{}, "", err
	}

	s.pub.Publish(ctx, events.UserSignedUp, map[string]string{"email": stored.Email})
	s.log.Info("account created", logger.String("email", stored.Email))
	return stored, signed, nil
}

// SignIn checks the credentials and returns a fresh token. An unknown email
// is faults.ErrNotFound; a wrong password is faults.ErrUnauthenticated.
func (s *Service) SignIn(ctx context.Context, email, password string) (User, string, error) {
	u, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, faults.ErrNotFound) {
			return User{}, "", fmt.Errorf("no account for %s: %w", email, faults.ErrNotFound)
		}
		return User{}, "", fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, "", fmt.Errorf("wrong password: %w", faults.ErrUnauthenticated)
	}

	signed, err := s.tokens.Issue(u.Name, u.Email)
	if err != nil {
		return User{}, "", err
	}
	return u, signed, nil
}
