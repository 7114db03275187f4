package repository

import (
	"context"
	"errors"
	"time"

	"roomdesk/internal/domain/reservation"
	"roomdesk/internal/infra"
	"roomdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
)

// ReservationRepository is the write side of the reservation store. Reads
// that feed a subsequent write (load-for-update, the sweeper scan) live
// here too; pure view queries belong to the readstore.
type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reservations
			(id, event_id, resource_id, user_name, start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		res.ID(), res.EventID(), res.ResourceID(), res.UserName(),
		res.Slot().Start(), res.Slot().End(), res.Status().String(),
		res.CreatedAt(), res.UpdatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeExclusionViolation:
				// Lost the race against a concurrent overlapping booking.
				return infra.WrapRepoErr("overlapping reservation exists", err, infra.KindConflict)
			case pgErrCodeUniqueViolation:
				return infra.WrapRepoErr("reservation id collision", err, infra.KindDuplicateKey)
			}
		}
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, event_id, resource_id, user_name, start_time, end_time, status, created_at, updated_at
		FROM reservations
		WHERE event_id = $1`,
		eventID,
	)

	res, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by event ID", err)
	}
	return res, nil
}

// FindOverlapping returns the occupying windows on the resource that
// overlap [windowStart, windowEnd) under the half-open test
// end_time > windowStart AND start_time < windowEnd.
func (r *ReservationRepository) FindOverlapping(
	ctx context.Context,
	resourceID string,
	statuses []reservation.Status,
	slot reservation.TimeSlot,
) ([]reservation.Window, error) {
	rows, err := r.db.Query(ctx, `
		SELECT start_time, end_time, status
		FROM reservations
		WHERE resource_id = $1
		  AND status = ANY($2)
		  AND end_time > $3
		  AND start_time < $4`,
		resourceID, statusStrings(statuses), slot.Start(), slot.End(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping reservations", err)
	}
	defer rows.Close()

	var windows []reservation.Window
	for rows.Next() {
		var (
			start, end time.Time
			status     string
		)
		if err := rows.Scan(&start, &end, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation window", err)
		}
		windows = append(windows, reservation.Window{
			Slot:   reservation.ReconstructTimeSlot(start, end),
			Status: reservation.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation windows", err)
	}
	return windows, nil
}

// UpdateStatus mutates a single record. newEndTime, when non-nil,
// overwrites end_time (the return transition records the actual return
// instant this way).
func (r *ReservationRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status reservation.Status,
	newEndTime *time.Time,
	updatedAt time.Time,
) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET status = $2,
		    end_time = COALESCE($3, end_time),
		    updated_at = $4
		WHERE id = $1`,
		id, status.String(), pgconv.TimePtrToPgtype(newEndTime), updatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// ListByStatus returns every reservation currently in the given status.
// Used by the no-show sweep.
func (r *ReservationRepository) ListByStatus(ctx context.Context, status reservation.Status) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, event_id, resource_id, user_name, start_time, end_time, status, created_at, updated_at
		FROM reservations
		WHERE status = $1`,
		status.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by status", err)
	}
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservations", err)
	}
	return result, nil
}

// MarkNoShowCancelled transitions the given reservations to
// no_show_cancelled in one batch. The status guard makes the batch
// idempotent: records that already left the booked state are untouched.
func (r *ReservationRepository) MarkNoShowCancelled(ctx context.Context, ids []uuid.UUID, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET status = $2,
		    updated_at = $3
		WHERE id = ANY($1)
		  AND status = $4`,
		ids, reservation.StatusNoShowCancelled.String(), now, reservation.StatusBooked.String(),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark reservations as no-show", err)
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*reservation.Reservation, error) {
	var (
		id, eventID          uuid.UUID
		resourceID, userName string
		start, end           time.Time
		status               string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &eventID, &resourceID, &userName, &start, &end, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		id, eventID, resourceID, userName,
		reservation.ReconstructTimeSlot(start, end),
		reservation.Status(status),
		createdAt, updatedAt,
	), nil
}

func statusStrings(statuses []reservation.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
