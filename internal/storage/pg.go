package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cloud-ru/feasibility-go/internal/model"
)

const schema = `CREATE TABLE IF NOT EXISTS project_saves (
	id            UUID PRIMARY KEY,
	view          TEXT NOT NULL,
	last_modified TIMESTAMPTZ NOT NULL,
	inputs        JSONB NOT NULL
)`

// PgStore хранит сохранения в таблице project_saves
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore подключается к базе и создаёт таблицу при необходимости
func NewPgStore(ctx context.Context, databaseURL string) (*PgStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to migrate project_saves: %w", err)
	}
	return &PgStore{pool: pool}, nil
}

// Save реализует Store
func (s *PgStore) Save(ctx context.Context, state *model.ProjectState) error {
	if err := prepare(state, time.Now().UTC()); err != nil {
		return err
	}
	inputs, err := json.Marshal(state.Inputs)
	if err != nil {
		return fmt.Errorf("failed to encode inputs: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO project_saves (id, view, last_modified, inputs)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET view = EXCLUDED.view,
		   last_modified = EXCLUDED.last_modified, inputs = EXCLUDED.inputs`,
		state.ID, state.View, state.LastModified, inputs,
	)
	return err
}

// Get реализует Store
func (s *PgStore) Get(ctx context.Context, id string) (*model.ProjectState, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id::text, view, last_modified, inputs FROM project_saves WHERE id::text = $1`, id)
	return scanState(row)
}

// Latest реализует Store
func (s *PgStore) Latest(ctx context.Context) (*model.ProjectState, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id::text, view, last_modified, inputs FROM project_saves
		 ORDER BY last_modified DESC LIMIT 1`)
	return scanState(row)
}

// List реализует Store
func (s *PgStore) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id::text, view, last_modified FROM project_saves ORDER BY last_modified DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sm Summary
		if err := rows.Scan(&sm.ID, &sm.View, &sm.LastModified); err != nil {
			return nil, err
		}
		out = append(out, sm)
	}
	return out, rows.Err()
}

// DeleteAll реализует Store
func (s *PgStore) DeleteAll(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM project_saves`)
	return err
}

// Close реализует Store
func (s *PgStore) Close() {
	s.pool.Close()
}

func scanState(row pgx.Row) (*model.ProjectState, error) {
	var st model.ProjectState
	var inputs []byte
	err := row.Scan(&st.ID, &st.View, &st.LastModified, &inputs)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	st.Inputs = &model.ProjectInputs{}
	if err := json.Unmarshal(inputs, st.Inputs); err != nil {
		return nil, fmt.Errorf("failed to decode inputs: %w", err)
	}
	return &st, nil
}
