package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
)

// SessionManager describes the session lifecycle operations the auth flow needs.
type SessionManager interface {
	Create(ctx context.Context, accountID int64) (string, error)
	Resolve(ctx context.Context, token string) (int64, error)
	Destroy(ctx context.Context, token string) error
}

// AuthUseCase handles registration, login, logout and session guarding.
type AuthUseCase struct {
	accounts repository.AccountRepository
	hasher   pkgAuth.PasswordHasher
	sessions SessionManager
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(accounts repository.AccountRepository, hasher pkgAuth.PasswordHasher, sessions SessionManager) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, hasher: hasher, sessions: sessions}
}

// Register creates a new account and opens a session for it, so no
// separate login step follows a successful registration. Conflicts from
// the repository propagate verbatim.
func (u *AuthUseCase) Register(ctx context.Context, username, email, password string) (*model.Account, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, "", domainErrors.NewValidation("all fields are required")
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	account, err := u.accounts.Create(ctx, username, email, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := u.sessions.Create(ctx, account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// Authenticate validates credentials and opens a session. Unknown username
// and wrong password are deliberately indistinguishable to the caller.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.Account, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.NewValidation("username and password are required")
	}

	account, err := u.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(account.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.sessions.Create(ctx, account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// Logout destroys the session. It always succeeds from the caller's
// perspective, even for tokens that are already gone.
func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	return u.sessions.Destroy(ctx, token)
}

// RequireSession resolves the token into an account id. It is the guard
// every protected operation invokes before touching the domain.
func (u *AuthUseCase) RequireSession(ctx context.Context, token string) (int64, error) {
	return u.sessions.Resolve(ctx, token)
}

// CurrentUser returns the account behind the token.
func (u *AuthUseCase) CurrentUser(ctx context.Context, token string) (*model.Account, error) {
	accountID, err := u.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	return u.accounts.GetByID(ctx, accountID)
}
