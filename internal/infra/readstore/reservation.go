package readstore

import (
	"context"
	"time"

	"roomdesk/internal/domain/reservation"
	"roomdesk/internal/infra"
	"roomdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationReadStore serves the calendar, availability and history
// views. It never writes.
type ReservationReadStore struct {
	db *pgxpool.Pool
}

func NewReservationReadStore(db *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindInWindow(
	ctx context.Context,
	resourceID string,
	statuses []reservation.Status,
	windowStart, windowEnd time.Time,
) ([]*queries.ReservationRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT event_id, user_name, start_time, end_time, status
		FROM reservations
		WHERE resource_id = $1
		  AND status = ANY($2)
		  AND end_time > $3
		  AND start_time < $4
		ORDER BY start_time`,
		resourceID, statusStrings(statuses), windowStart, windowEnd,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations in window", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *ReservationReadStore) ExistsActiveAt(
	ctx context.Context,
	resourceID string,
	statuses []reservation.Status,
	at time.Time,
) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM reservations
			WHERE resource_id = $1
			  AND status = ANY($2)
			  AND start_time <= $3
			  AND end_time > $3
		)`,
		resourceID, statusStrings(statuses), at,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check resource occupancy", err)
	}
	return exists, nil
}

// FindByResourcePaged returns one history page ordered by start_time
// descending plus the total match count. from/until bound the reservation
// start time; until is exclusive.
func (r *ReservationReadStore) FindByResourcePaged(
	ctx context.Context,
	resourceID string,
	from, until *time.Time,
	limit, offset int32,
) ([]*queries.ReservationRecord, int64, error) {
	const filter = `
		WHERE resource_id = $1
		  AND ($2::timestamptz IS NULL OR start_time >= $2)
		  AND ($3::timestamptz IS NULL OR start_time < $3)`

	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM reservations`+filter,
		resourceID, from, until,
	).Scan(&total)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reservation history", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT event_id, user_name, start_time, end_time, status
		FROM reservations`+filter+`
		ORDER BY start_time DESC
		LIMIT $4 OFFSET $5`,
		resourceID, from, until, limit, offset,
	)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to find reservation history", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

type rowIterator interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanRecords(rows rowIterator) ([]*queries.ReservationRecord, error) {
	var records []*queries.ReservationRecord
	for rows.Next() {
		var (
			eventID    uuid.UUID
			userName   string
			start, end time.Time
			status     string
		)
		if err := rows.Scan(&eventID, &userName, &start, &end, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation record", err)
		}
		records = append(records, &queries.ReservationRecord{
			EventID:   eventID,
			UserName:  userName,
			StartTime: start,
			EndTime:   end,
			Status:    reservation.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation records", err)
	}
	return records, nil
}

func statusStrings(statuses []reservation.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
