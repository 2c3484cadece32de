package test

import (
	"context"
	"errors"

	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// SessionManagerStub controls session behaviour via function overrides.
type SessionManagerStub struct {
	CreateFn  func(context.Context, int64) (string, error)
	ResolveFn func(context.Context, string) (int64, error)
	DestroyFn func(context.Context, string) error

	Destroyed []string
}

// Create issues deterministic tokens for tests.
func (s *SessionManagerStub) Create(ctx context.Context, accountID int64) (string, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, accountID)
	}
	return "token", nil
}

// Resolve maps tokens to account ids for tests.
func (s *SessionManagerStub) Resolve(ctx context.Context, token string) (int64, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token)
	}
	return 1, nil
}

// Destroy records destroyed tokens.
func (s *SessionManagerStub) Destroy(ctx context.Context, token string) error {
	if s.DestroyFn != nil {
		return s.DestroyFn(ctx, token)
	}
	s.Destroyed = append(s.Destroyed, token)
	return nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
