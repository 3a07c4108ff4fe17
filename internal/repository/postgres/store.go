// Package postgres provides a Postgres implementation of the reservation store
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/campustools/roomsense/internal/config"
	"github.com/campustools/roomsense/internal/models"
	"github.com/campustools/roomsense/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS reservations (
	room_id TEXT PRIMARY KEY,
	holder_id TEXT NOT NULL,
	holder_role TEXT NOT NULL,
	start_time TIMESTAMPTZ NOT NULL,
	end_time TIMESTAMPTZ NOT NULL
);
`

// Store implements the reservation store with Postgres storage
type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects to Postgres and ensures the schema exists
func NewStore(ctx context.Context, cfg config.PostgresConfig) (*Store, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping Postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Get returns the reservation for a room
func (s *Store) Get(ctx context.Context, roomID string) (*models.Reservation, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT room_id, holder_id, holder_role, start_time, end_time FROM reservations WHERE room_id=$1`,
		roomID,
	)

	var res models.Reservation
	if err := row.Scan(&res.RoomID, &res.HolderID, &res.HolderRole, &res.Start, &res.End); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return &res, nil
}

// Set stores the reservation under its room key
func (s *Store) Set(ctx context.Context, roomID string, res *models.Reservation) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO reservations (room_id, holder_id, holder_role, start_time, end_time)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (room_id) DO UPDATE
		SET holder_id=$2, holder_role=$3, start_time=$4, end_time=$5
	`, roomID, res.HolderID, res.HolderRole, res.Start, res.End)
	if err != nil {
		return fmt.Errorf("failed to save reservation: %w", err)
	}

	return nil
}

// Remove deletes the reservation for a room
func (s *Store) Remove(ctx context.Context, roomID string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM reservations WHERE room_id=$1`, roomID)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ClearAll removes every reservation
func (s *Store) ClearAll(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM reservations`); err != nil {
		return fmt.Errorf("failed to clear reservations: %w", err)
	}

	return nil
}
