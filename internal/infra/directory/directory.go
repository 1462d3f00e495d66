// Package directory resolves candidate and actor IDs against the
// platform's identity tables. Only existence matters to this subsystem.
package directory

import (
	"context"

	"talent-services/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgDirectory struct {
	pool *pgxpool.Pool
}

func NewPgDirectory(pool *pgxpool.Pool) *PgDirectory {
	return &PgDirectory{pool: pool}
}

func (d *PgDirectory) CandidateExists(ctx context.Context, candidateID uuid.UUID) (bool, error) {
	return d.exists(ctx, `SELECT EXISTS (SELECT 1 FROM candidates WHERE id = $1)`, candidateID)
}

func (d *PgDirectory) ActorExists(ctx context.Context, actorID uuid.UUID) (bool, error) {
	return d.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, actorID)
}

func (d *PgDirectory) exists(ctx context.Context, query string, id uuid.UUID) (bool, error) {
	var exists bool
	if err := d.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("identity lookup failed", err)
	}
	return exists, nil
}
