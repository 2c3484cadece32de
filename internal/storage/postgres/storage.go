package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

const uniqueViolation = "23505"

// pool is the subset of pgxpool.Pool the storage relies on; tests swap in
// a mock implementation.
type pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// newPgxPool is swapped in tests to avoid a live database.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	db     pool
	logger *slog.Logger
}

type accountRepository struct {
	storage *Storage
}

type sessionRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pgPool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{db: pgPool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pgPool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Accounts() repository.AccountRepository {
	return &accountRepository{storage: s}
}

func (s *Storage) Sessions() repository.SessionRepository {
	return &sessionRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
            id BIGSERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS sessions (
            token TEXT PRIMARY KEY,
            account_id BIGINT NOT NULL REFERENCES accounts(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            expires_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            account_id BIGINT NOT NULL REFERENCES accounts(id),
            description TEXT NOT NULL,
            category TEXT NOT NULL,
            consent BOOLEAN NOT NULL,
            phone TEXT NOT NULL,
            latitude DOUBLE PRECISION,
            longitude DOUBLE PRECISION,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_account ON orders(account_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_expiry ON sessions(expires_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- AccountRepository implementation ---

// Create relies on the unique constraints for conflict detection, so the
// existence check and the insert are a single atomic statement.
func (r *accountRepository) Create(ctx context.Context, username, email, passwordHash string) (*model.Account, error) {
	const query = `INSERT INTO accounts (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	var a model.Account
	err := r.storage.db.QueryRow(ctx, query, username, email, passwordHash).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	a.Username = username
	a.Email = email
	a.PasswordHash = passwordHash
	return &a, nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	const query = `SELECT id, username, email, password_hash, created_at FROM accounts WHERE username=$1`
	return r.scanAccount(r.storage.db.QueryRow(ctx, query, username))
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	const query = `SELECT id, username, email, password_hash, created_at FROM accounts WHERE id=$1`
	return r.scanAccount(r.storage.db.QueryRow(ctx, query, id))
}

func (r *accountRepository) scanAccount(row pgx.Row) (*model.Account, error) {
	var a model.Account
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// --- SessionRepository implementation ---

func (r *sessionRepository) Create(ctx context.Context, session model.Session) error {
	const query = `INSERT INTO sessions (token, account_id, created_at, expires_at) VALUES ($1, $2, $3, $4)`
	_, err := r.storage.db.Exec(ctx, query, session.Token, session.AccountID, session.CreatedAt, session.ExpiresAt)
	return err
}

func (r *sessionRepository) Get(ctx context.Context, token string) (*model.Session, error) {
	const query = `SELECT token, account_id, created_at, expires_at FROM sessions WHERE token=$1`
	var s model.Session
	err := r.storage.db.QueryRow(ctx, query, token).Scan(&s.Token, &s.AccountID, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	const query = `DELETE FROM sessions WHERE token=$1`
	_, err := r.storage.db.Exec(ctx, query, token)
	return err
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, before time.Time, limit int) (int64, error) {
	const query = `DELETE FROM sessions
                   WHERE token IN (SELECT token FROM sessions WHERE expires_at <= $1 LIMIT $2)`
	tag, err := r.storage.db.Exec(ctx, query, before, limit)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, accountID int64, draft model.OrderDraft) (*model.Order, error) {
	const query = `INSERT INTO orders (account_id, description, category, consent, phone, latitude, longitude)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at`

	var latitude, longitude *float64
	if draft.Location != nil {
		latitude = &draft.Location.Latitude
		longitude = &draft.Location.Longitude
	}

	var order model.Order
	err := r.storage.db.QueryRow(ctx, query, accountID, draft.Description, draft.Category, draft.Consent, draft.Phone, latitude, longitude).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	order.AccountID = accountID
	order.Description = draft.Description
	order.Category = draft.Category
	order.Consent = draft.Consent
	order.Phone = draft.Phone
	order.Location = draft.Location
	return &order, nil
}

func (r *orderRepository) ListByAccount(ctx context.Context, accountID int64) ([]model.Order, error) {
	const query = `SELECT id, account_id, description, category, consent, phone, latitude, longitude, created_at
                   FROM orders WHERE account_id=$1 ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		var latitude, longitude *float64
		if err := rows.Scan(&o.ID, &o.AccountID, &o.Description, &o.Category, &o.Consent, &o.Phone, &latitude, &longitude, &o.CreatedAt); err != nil {
			return nil, err
		}
		if latitude != nil && longitude != nil {
			o.Location = &model.Coordinates{Latitude: *latitude, Longitude: *longitude}
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.db.Ping(ctx)
}
