package repository

import (
	"context"
	"time"

	"talent-services/internal/infra"
	"talent-services/internal/infra/db"
)

// LeaseRepository implements the scheduler's distributed lock as a lease
// row. The upsert either creates the lease or takes over one whose expiry
// has passed; anything else leaves the row untouched.
type LeaseRepository struct {
	db db.DBTX
}

func NewLeaseRepository(dbtx db.DBTX) *LeaseRepository {
	return &LeaseRepository{db: dbtx}
}

func (r *LeaseRepository) TryAcquire(ctx context.Context, name, holder string, now time.Time, duration time.Duration) (bool, error) {
	const query = `
		INSERT INTO scheduler_leases (name, holder, acquired_at, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET holder = EXCLUDED.holder, acquired_at = EXCLUDED.acquired_at, expires_at = EXCLUDED.expires_at
		WHERE scheduler_leases.expires_at < $3`

	tag, err := r.db.Exec(ctx, query, name, holder, now, now.Add(duration))
	if err != nil {
		return false, infra.WrapRepoErr("failed to acquire scheduler lease", err)
	}
	return tag.RowsAffected() == 1, nil
}
