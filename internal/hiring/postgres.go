package hiring

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
)

// PostgresStore persists candidates in the candidates table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps the connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const candidateColumns = `id::text, name, email, position, experience, path_cv`

func (s *PostgresStore) Insert(ctx context.Context, c Candidate) (Candidate, error) {
	var out Candidate
	err := s.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, email, position, experience, path_cv)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+candidateColumns,
		c.Name, c.Email, c.Position, c.Experience, c.PathCV,
	).Scan(&out.ID, &out.Name, &out.Email, &out.Position, &out.Experience, &out.PathCV)
	if err != nil {
		return Candidate{}, err
	}
	return out, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Candidate, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Candidate, 0)
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Position, &c.Experience, &c.PathCV); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, c Candidate) (Candidate, error) {
	var out Candidate
	err := s.pool.QueryRow(ctx,
		`UPDATE candidates
		 SET name = $1, email = $2, position = $3, experience = $4,
		     path_cv = CASE WHEN $5 = '' THEN path_cv ELSE $5 END,
		     updated_at = NOW()
		 WHERE id = $6
		 RETURNING `+candidateColumns,
		c.Name, c.Email, c.Position, c.Experience, c.PathCV, c.ID,
	).Scan(&out.ID, &out.Name, &out.Email, &out.Position, &out.Experience, &out.PathCV)
	if errors.Is(err, pgx.ErrNoRows) {
		return Candidate{}, faults.ErrNotFound
	}
	if err != nil {
		return Candidate{}, err
	}
	return out, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) (Candidate, error) {
	var out Candidate
	err := s.pool.QueryRow(ctx,
		`DELETE FROM candidates WHERE id = $1 RETURNING `+candidateColumns, id,
	).Scan(&out.ID, &out.Name, &out.Email, &out.Position, &out.Experience, &out.PathCV)
	if errors.Is(err, pgx.ErrNoRows) {
		return Candidate{}, faults.ErrNotFound
	}
	if err != nil {
		return Candidate{}, err
	}
	return out, nil
}
