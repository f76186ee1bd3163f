package service

import (
	"fmt"

	"github.com/ayodiya/hux-assessment-backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore owns password hashing and verification. Hashing happens
// exactly once per password value change: EnsureHashed consults the user's
// password-changed flag instead of relying on a persistence lifecycle hook.
type CredentialStore struct {
	cost int
}

func NewCredentialStore() *CredentialStore {
	return &CredentialStore{cost: bcrypt.DefaultCost}
}

// Hash derives a randomly salted bcrypt hash from the plaintext.
func (s *CredentialStore) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. It returns
// false on any failure; callers cannot distinguish a malformed hash from a
// wrong password.
func (s *CredentialStore) Verify(plaintext, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	return err == nil
}

// EnsureHashed replaces the user's plaintext password with its hash when,
// and only when, the password was modified since it was last hashed.
func (s *CredentialStore) EnsureHashed(user *model.User) error {
	if !user.PasswordChanged() {
		return nil
	}

	hashed, err := s.Hash(user.Password)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.MarkPasswordHashed()
	return nil
}
