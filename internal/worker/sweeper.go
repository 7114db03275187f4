package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"roomdesk/internal/domain/reservation"
	"roomdesk/internal/pkg/clock"

	"github.com/google/uuid"
)

// SweeperConfig holds configuration for the no-show sweeper.
type SweeperConfig struct {
	Interval    time.Duration
	GracePeriod time.Duration
}

// DefaultSweeperConfig returns the stock sweep cadence: every minute,
// cancelling bookings left unclaimed ten minutes past their start.
func DefaultSweeperConfig() SweeperConfig {
	return SweeperConfig{
		Interval:    time.Minute,
		GracePeriod: 10 * time.Minute,
	}
}

// ReservationSource is the slice of the reservation store the sweeper
// needs: scan the booked state, cancel stale records in one batch.
type ReservationSource interface {
	ListByStatus(ctx context.Context, status reservation.Status) ([]*reservation.Reservation, error)
	MarkNoShowCancelled(ctx context.Context, ids []uuid.UUID, now time.Time) (int64, error)
}

// Sweeper periodically force-cancels booked reservations whose grace
// period elapsed without a check-in. A sweep is idempotent: transitioned
// records leave the booked state and are never picked up again.
type Sweeper struct {
	source ReservationSource
	clock  clock.Clock
	config SweeperConfig
	logger *slog.Logger

	wg       sync.WaitGroup
	stopChan chan struct{}
	running  bool
	mu       sync.Mutex
}

func NewSweeper(source ReservationSource, clock clock.Clock, config SweeperConfig, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		source:   source,
		clock:    clock,
		config:   config,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins the sweep loop in a goroutine.
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(ctx)

	s.logger.Info("no-show sweeper started",
		"interval", s.config.Interval,
		"grace_period", s.config.GracePeriod,
	)

	return nil
}

// Stop gracefully stops the sweeper, waiting for an in-flight pass to
// finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info("no-show sweeper stopped")
}

func (s *Sweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			if err := s.SweepOnce(ctx); err != nil {
				s.logger.Error("no-show sweep failed", "error", err)
			}
		}
	}
}

// SweepOnce runs a single scan-and-cancel pass. A bad record is logged
// and skipped; it never aborts the pass. The batch update carries its
// own status guard, so anything that changed state between the scan and
// the write is left alone.
func (s *Sweeper) SweepOnce(ctx context.Context) error {
	booked, err := s.source.ListByStatus(ctx, reservation.StatusBooked)
	if err != nil {
		return err
	}

	now := s.clock.Now()

	var stale []uuid.UUID
	for _, res := range booked {
		if res.Slot().Start().IsZero() {
			s.logger.Warn("skipping reservation with invalid start time",
				"reservation_id", res.ID(),
				"resource_id", res.ResourceID(),
			)
			continue
		}
		if !res.IsNoShowAt(now, s.config.GracePeriod) {
			continue
		}
		stale = append(stale, res.ID())
		s.logger.Info("cancelling no-show reservation",
			"reservation_id", res.ID(),
			"event_id", res.EventID(),
			"resource_id", res.ResourceID(),
			"user_name", res.UserName(),
			"start_time", res.Slot().Start(),
		)
	}

	if len(stale) == 0 {
		return nil
	}

	cancelled, err := s.source.MarkNoShowCancelled(ctx, stale, now)
	if err != nil {
		return err
	}

	s.logger.Info("no-show sweep completed", "cancelled", cancelled)
	return nil
}
