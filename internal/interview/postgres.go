package interview

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
)

// PostgresStore owns the interviews table and reads candidate names from
// filtered_candidates.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps the connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const interviewColumns = `id::text, candidate_name, date, time`

func (s *PostgresStore) ClearInterviews(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM interviews`)
	return err
}

func (s *PostgresStore) ListFilteredNames(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name FROM filtered_candidates ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (s *PostgresStore) InsertInterview(ctx context.Context, iv Interview) (Interview, error) {
	var out Interview
	err := s.pool.QueryRow(ctx,
		`INSERT INTO interviews (candidate_name, date, time)
		 VALUES ($1, $2, $3)
		 RETURNING `+interviewColumns,
		iv.CandidateName, iv.Date, iv.Time,
	).Scan(&out.ID, &out.CandidateName, &out.Date, &out.Time)
	if err != nil {
		return Interview{}, err
	}
	return out, nil
}

func (s *PostgresStore) GetInterview(ctx context.Context, id string) (Interview, error) {
	var out Interview
	err := s.pool.QueryRow(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE id = $1`, id,
	).Scan(&out.ID, &out.CandidateName, &out.Date, &out.Time)
	if errors.Is(err, pgx.ErrNoRows) {
		return Interview{}, faults.ErrNotFound
	}
	if err != nil {
		return Interview{}, err
	}
	return out, nil
}

func (s *PostgresStore) ListByDate(ctx context.Context, date string) ([]Interview, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE date = $1 ORDER BY time`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Interview, 0)
	for rows.Next() {
		var iv Interview
		if err := rows.Scan(&iv.ID, &iv.CandidateName, &iv.Date, &iv.Time); err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, rows.Err()
}

func (s *PostgresStore) UpdateInterview(ctx context.Context, id, date, tm string) (Interview, error) {
	var out Interview
	err := s.pool.QueryRow(ctx,
		`UPDATE interviews SET date = $1, time = $2, updated_at = NOW()
		 WHERE id = $3
		 RETURNING `+interviewColumns,
		date, tm, id,
	).Scan(&out.ID, &out.CandidateName, &out.Date, &out.Time)
	if errors.Is(err, pgx.ErrNoRows) {
		return Interview{}, faults.ErrNotFound
	}
	if err != nil {
		return Interview{}, err
	}
	return out, nil
}

func (s *PostgresStore) DeleteInterview(ctx context.Context, id string) (Interview, error) {
	var out Interview
	err := s.pool.QueryRow(ctx,
		`DELETE FROM interviews WHERE id = $1 RETURNING `+interviewColumns, id,
	).Scan(&out.ID, &out.CandidateName, &out.Date, &out.Time)
	if errors.Is(err, pgx.ErrNoRows) {
		return Interview{}, faults.ErrNotFound
	}
	if err != nil {
		return Interview{}, err
	}
	return out, nil
}
