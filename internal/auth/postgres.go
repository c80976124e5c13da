package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
)

// PostgresStore persists accounts in the users table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps the connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// uniqueViolation is the postgres error code for a broken unique constraint.
const uniqueViolation = "23505"

func (s *PostgresStore) InsertUser(ctx context.Context, u User) (User, error) {
	var out User
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id::text, name, email, password_hash`,
		u.Name, u.Email, u.PasswordHash,
	).Scan(&out.ID, &out.Name, &out.Email, &out.PasswordHash)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return User{}, faults.ErrConflict
	}
	if err != nil {
		return User{}, err
	}
	return out, nil
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var out User
	err := s.pool.QueryRow(ctx,
		`SELECT id::text, name, email, password_hash FROM users WHERE email = $1`, email,
	).Scan(&out.ID, &out.Name, &out.Email, &out.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, faults.ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return out, nil
}
