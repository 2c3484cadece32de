package test

import (
	"context"
	"sort"
	"time"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// AccountRepositoryStub stores accounts in-memory for tests.
type AccountRepositoryStub struct {
	ByUsername map[string]*model.Account
	ByEmail    map[string]*model.Account
	ByID       map[int64]*model.Account
	Next       int64
	Err        error
}

// NewAccountRepositoryStub constructs stub repository with initialized maps.
func NewAccountRepositoryStub() *AccountRepositoryStub {
	return &AccountRepositoryStub{
		ByUsername: make(map[string]*model.Account),
		ByEmail:    make(map[string]*model.Account),
		ByID:       make(map[int64]*model.Account),
		Next:       1,
	}
}

// Create registers account unless username or email is taken.
func (s *AccountRepositoryStub) Create(ctx context.Context, username, email, passwordHash string) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByUsername[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	account := &model.Account{
		ID:           s.Next,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.Next++
	s.ByUsername[username] = account
	s.ByEmail[email] = account
	s.ByID[account.ID] = account
	return account, nil
}

// GetByUsername fetches account by username or returns not found.
func (s *AccountRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if account, ok := s.ByUsername[username]; ok {
		return account, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches account by identifier or returns not found.
func (s *AccountRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if account, ok := s.ByID[id]; ok {
		return account, nil
	}
	return nil, domainErrors.ErrNotFound
}

// SessionRepositoryStub keeps sessions in a map keyed by token.
type SessionRepositoryStub struct {
	Sessions map[string]model.Session
	Err      error
	Deleted  []string
}

// NewSessionRepositoryStub constructs stub with initialized map.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{Sessions: make(map[string]model.Session)}
}

// Create stores the session.
func (s *SessionRepositoryStub) Create(ctx context.Context, session model.Session) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sessions[session.Token] = session
	return nil
}

// Get returns the session or not found.
func (s *SessionRepositoryStub) Get(ctx context.Context, token string) (*model.Session, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if session, ok := s.Sessions[token]; ok {
		return &session, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes the session and records the call.
func (s *SessionRepositoryStub) Delete(ctx context.Context, token string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Deleted = append(s.Deleted, token)
	delete(s.Sessions, token)
	return nil
}

// DeleteExpired drops sessions expired before the cut-off, up to limit.
func (s *SessionRepositoryStub) DeleteExpired(ctx context.Context, before time.Time, limit int) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	var removed int64
	for token, session := range s.Sessions {
		if removed >= int64(limit) {
			break
		}
		if !session.ExpiresAt.After(before) {
			delete(s.Sessions, token)
			removed++
		}
	}
	return removed, nil
}

// OrderRepositoryStub stores orders in-memory and allows overrides.
type OrderRepositoryStub struct {
	CreateFn func(context.Context, int64, model.OrderDraft) (*model.Order, error)
	ListFn   func(context.Context, int64) ([]model.Order, error)

	Orders []model.Order
	Next   int64
	Err    error
}

// Create persists the draft with a fresh id and timestamp.
func (s *OrderRepositoryStub) Create(ctx context.Context, accountID int64, draft model.OrderDraft) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, accountID, draft)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Next++
	order := model.Order{
		ID:          s.Next,
		AccountID:   accountID,
		Description: draft.Description,
		Category:    draft.Category,
		Consent:     draft.Consent,
		Phone:       draft.Phone,
		Location:    draft.Location,
		CreatedAt:   time.Now().Add(time.Duration(s.Next) * time.Millisecond),
	}
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// ListByAccount returns the account's orders newest first.
func (s *OrderRepositoryStub) ListByAccount(ctx context.Context, accountID int64) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, accountID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Order, 0)
	for _, o := range s.Orders {
		if o.AccountID == accountID {
			result = append(result, o)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
