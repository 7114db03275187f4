//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates mutable tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE TABLE reservations")
	return err
}

// InsertReservation seeds one row directly, bypassing the write path, for
// read-side and sweeper scenarios. Returns the public event ID.
func InsertReservation(pool *pgxpool.Pool, resourceID, userName string, start, end time.Time, status string) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	eventID := uuid.New()
	_, err := pool.Exec(ctx, `
		INSERT INTO reservations (id, event_id, resource_id, user_name, start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
	`, uuid.New(), eventID, resourceID, userName, start, end, status)
	return eventID, err
}
