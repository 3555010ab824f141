package account

import (
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/vchartered/backend/internal/domain/user"
	"github.com/vchartered/backend/internal/store"
)

// Service creates accounts and verifies credentials. Passwords are stored
// as bcrypt hashes; there is no password-change or account-deletion path.
type Service struct {
	store  store.Store
	policy user.SignupPolicy
	logger *slog.Logger
}

func NewService(s store.Store, logger *slog.Logger) *Service {
	return &Service{
		store:  s,
		policy: user.DefaultSignupPolicy,
		logger: logger,
	}
}

// WithPolicy replaces the sign-up validation policy.
func (s *Service) WithPolicy(p user.SignupPolicy) *Service {
	s.policy = p
	return s
}

// Create registers a new account. It returns false when the email is
// already taken; every other failure is an error.
func (s *Service) Create(email, name, password string) (bool, error) {
	if err := s.policy(email, name, password); err != nil {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	err = s.store.CreateUser(user.New(email, name, string(hash)))
	if errors.Is(err, store.ErrDuplicate) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// VerifyLogin checks credentials and returns the stored display name on a
// match. A wrong email and a wrong password are indistinguishable.
func (s *Service) VerifyLogin(email, password string) (string, bool) {
	u, err := s.store.GetUser(email)
	if errors.Is(err, store.ErrNotFound) {
		return "", false
	}
	if err != nil {
		s.logger.Error("login lookup failed", "error", err)
		return "", false
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", false
	}
	return u.Name, true
}

// DisplayName resolves an email to its display name. A miss is not an
// error; it degrades to the fallback placeholder.
func (s *Service) DisplayName(email string) string {
	u, err := s.store.GetUser(email)
	if err != nil {
		return user.FallbackName
	}
	return u.Name
}
