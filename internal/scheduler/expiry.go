// Package scheduler runs the daily resource expiry sweep. The sweep is
// guarded by a lease row in the shared store so exactly one process
// executes it per day no matter how many replicas are deployed.
package scheduler

import (
	"context"
	"log/slog"
	"os"
	"time"

	"talent-services/internal/domain/resource"
	"talent-services/internal/events"
	"talent-services/internal/infra"
	"talent-services/internal/infra/db"
	"talent-services/internal/infra/repository"
	"talent-services/internal/pkg/clock"
	"talent-services/internal/pkg/errs"
	"talent-services/internal/usecase/shared"

	"github.com/google/uuid"
)

const leaseName = "service_resources_expire"

type ExpirySweeper struct {
	uow           shared.UnitOfWork
	clock         clock.Clock
	leaseDuration time.Duration
	holder        string
	logger        *slog.Logger
}

func NewExpirySweeper(uow shared.UnitOfWork, clk clock.Clock, leaseDuration time.Duration, logger *slog.Logger) *ExpirySweeper {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return &ExpirySweeper{
		uow:           uow,
		clock:         clk,
		leaseDuration: leaseDuration,
		holder:        hostname + "/" + uuid.NewString(),
		logger:        logger,
	}
}

// Run fires the sweep once per day at 00:00 UTC until the context is
// canceled. Sweep errors are logged and retried on the next scheduled run.
func (s *ExpirySweeper) Run(ctx context.Context) {
	for {
		wait := time.Until(nextMidnightUTC(s.clock.Now()))
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if err := s.Sweep(ctx); err != nil {
			s.logger.Error("expiry sweep failed", "error", err.Error())
		}
	}
}

// Sweep expires every overdue unit and, when the unit's latest assignment
// is still active, expires that too and emits a ServiceExpired event. The
// whole working set transitions in one transaction or not at all.
func (s *ExpirySweeper) Sweep(ctx context.Context) error {
	acquired, err := s.tryAcquireLease(ctx)
	if err != nil {
		return errs.Wrap(err, "lease acquisition failed")
	}
	if !acquired {
		s.logger.Info("expiry sweep skipped, lease held elsewhere")
		return nil
	}

	expired := 0
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := s.clock.Now()

		units, err := tx.Resources().FindExpirable(ctx, now)
		if err != nil {
			return err
		}

		for _, unit := range units {
			// Snapshot the linked assignment before mutating anything so
			// the event carries the pre-expiry view.
			latest, findErr := tx.Assignments().FindLatestByResource(ctx, unit.ID())
			if findErr != nil && !infra.IsKind(findErr, infra.KindNotFound) {
				return findErr
			}

			if err := unit.TransitionTo(resource.StatusExpired, now); err != nil {
				return err
			}
			if err := tx.Resources().Save(ctx, unit); err != nil {
				return err
			}

			if latest != nil && latest.IsActive() {
				tx.Record(events.ServiceExpired(latest, unit.ResourceCode(), now))
				if err := latest.Expire(now); err != nil {
					return err
				}
				if err := tx.Assignments().Update(ctx, latest); err != nil {
					return err
				}
			}
			expired++
		}
		return nil
	})
	if err != nil {
		return err
	}

	if expired > 0 {
		s.logger.Info("expiry sweep completed", "expired_units", expired)
	}
	return nil
}

// The lease lives in its own implicit transaction: its duration bounds the
// next possible run regardless of how the sweep itself fares.
func (s *ExpirySweeper) tryAcquireLease(ctx context.Context) (bool, error) {
	var acquired bool
	err := s.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		acquired, err = repository.NewLeaseRepository(dbtx).TryAcquire(ctx, leaseName, s.holder, s.clock.Now(), s.leaseDuration)
		return err
	})
	return acquired, err
}

func nextMidnightUTC(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}
