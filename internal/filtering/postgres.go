package filtering

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
)

// PostgresStore reads the shared candidates table and owns the
// filtered_candidates table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps the connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const filteredColumns = `id::text, name, email, position, experience, path_cv`

func (s *PostgresStore) ClearFiltered(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM filtered_candidates`)
	return err
}

func (s *PostgresStore) ListCandidates(ctx context.Context, minExp, maxExp int32, position string) ([]Candidate, error) {
	// maxExp <= 0 disables the upper bound; an empty position matches any.
	rows, err := s.pool.Query(ctx,
		`SELECT `+filteredColumns+`
		 FROM candidates
		 WHERE experience >= $1
		   AND ($2 <= 0 OR experience <= $2)
		   AND ($3 = '' OR LOWER(position) = LOWER($3))
		 ORDER BY created_at`,
		minExp, maxExp, position)
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

func (s *PostgresStore) InsertFiltered(ctx context.Context, c Candidate) (Candidate, error) {
	var out Candidate
	err := s.pool.QueryRow(ctx,
		`INSERT INTO filtered_candidates (name, email, position, experience, path_cv)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+filteredColumns,
		c.Name, c.Email, c.Position, c.Experience, c.PathCV,
	).Scan(&out.ID, &out.Name, &out.Email, &out.Position, &out.Experience, &out.PathCV)
	if err != nil {
		return Candidate{}, err
	}
	return out, nil
}

func (s *PostgresStore) DeleteFiltered(ctx context.Context, id string) (Candidate, error) {
	var out Candidate
	err := s.pool.QueryRow(ctx,
		`DELETE FROM filtered_candidates WHERE id = $1 RETURNING `+filteredColumns, id,
	).Scan(&out.ID, &out.Name, &out.Email, &out.Position, &out.Experience, &out.PathCV)
	if errors.Is(err, pgx.ErrNoRows) {
		return Candidate{}, faults.ErrNotFound
	}
	if err != nil {
		return Candidate{}, err
	}
	return out, nil
}
