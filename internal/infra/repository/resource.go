package repository

import (
	"context"
	"time"

	"talent-services/internal/domain/resource"
	"talent-services/internal/infra"
	"talent-services/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const resourceColumns = `id, provider, service_code, resource_code, status, sent_at, expires_at, created_at, updated_at`

type ResourceRepository struct {
	db db.DBTX
}

func NewResourceRepository(dbtx db.DBTX) *ResourceRepository {
	return &ResourceRepository{db: dbtx}
}

// LockNextAvailable reserves the oldest AVAILABLE unit in a single atomic
// statement. SKIP LOCKED keeps concurrent allocators from queueing on the
// same row, so two assign calls can never reserve the same unit and neither
// blocks the other.
func (r *ResourceRepository) LockNextAvailable(ctx context.Context, provider string, code resource.ServiceCode) (*resource.Unit, error) {
	const query = `
		UPDATE service_resources
		SET status = $1, updated_at = now()
		WHERE id = (
			SELECT id FROM service_resources
			WHERE provider = $2 AND service_code = $3 AND status = $4
			ORDER BY created_at, id
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		)
		RETURNING ` + resourceColumns

	row := r.db.QueryRow(ctx, query,
		string(resource.StatusReserved), provider, string(code), string(resource.StatusAvailable))

	unit, err := scanResource(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("no available resource unit", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock next available resource", err)
	}
	return unit, nil
}

func (r *ResourceRepository) InsertBatch(ctx context.Context, units []*resource.Unit) error {
	const query = `
		INSERT INTO service_resources (id, provider, service_code, resource_code, status, sent_at, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	for _, u := range units {
		_, err := r.db.Exec(ctx, query,
			u.ID(), u.Provider(), string(u.ServiceCode()), u.ResourceCode(), string(u.Status()),
			u.SentAt(), u.ExpiresAt(), u.CreatedAt(), u.UpdatedAt())
		if err != nil {
			return infra.WrapRepoErr("failed to insert resource unit", err)
		}
	}
	return nil
}

func (r *ResourceRepository) Save(ctx context.Context, unit *resource.Unit) error {
	const query = `
		UPDATE service_resources
		SET status = $2, sent_at = $3, expires_at = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		unit.ID(), string(unit.Status()), unit.SentAt(), unit.ExpiresAt(), unit.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to save resource unit", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("resource unit not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*resource.Unit, error) {
	const query = `SELECT ` + resourceColumns + ` FROM service_resources WHERE id = $1`

	unit, err := scanResource(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("resource unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource unit by id", err)
	}
	return unit, nil
}

func (r *ResourceRepository) FindByCode(ctx context.Context, provider, resourceCode string) (*resource.Unit, error) {
	const query = `SELECT ` + resourceColumns + ` FROM service_resources WHERE provider = $1 AND resource_code = $2`

	unit, err := scanResource(r.db.QueryRow(ctx, query, provider, resourceCode))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("resource unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource unit by code", err)
	}
	return unit, nil
}

// FindExpirable locks the sweep's working set so a concurrently redeeming
// admin either sees the expiry or beats it, never both.
func (r *ResourceRepository) FindExpirable(ctx context.Context, now time.Time) ([]*resource.Unit, error) {
	const query = `
		SELECT ` + resourceColumns + `
		FROM service_resources
		WHERE expires_at < $1 AND NOT (status = ANY($2))
		ORDER BY expires_at, id
		FOR UPDATE`

	excluded := make([]string, 0, 3)
	for _, s := range resource.ExpirySweepExcluded() {
		excluded = append(excluded, string(s))
	}

	rows, err := r.db.Query(ctx, query, now, excluded)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query expirable resources", err)
	}
	defer rows.Close()

	var units []*resource.Unit
	for rows.Next() {
		unit, scanErr := scanResource(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan expirable resource", scanErr)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate expirable resources", err)
	}
	return units, nil
}

func (r *ResourceRepository) CountAvailable(ctx context.Context, provider string, code resource.ServiceCode) (int64, error) {
	const query = `
		SELECT count(*) FROM service_resources
		WHERE provider = $1 AND service_code = $2 AND status = $3`

	var count int64
	err := r.db.QueryRow(ctx, query, provider, string(code), string(resource.StatusAvailable)).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count available resources", err)
	}
	return count, nil
}

func scanResource(row pgx.Row) (*resource.Unit, error) {
	var (
		id                   uuid.UUID
		provider             string
		serviceCode          string
		resourceCode         string
		status               string
		sentAt, expiresAt    *time.Time
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &provider, &serviceCode, &resourceCode, &status, &sentAt, &expiresAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	return resource.ReconstructUnit(
		id, provider, resource.ServiceCode(serviceCode), resourceCode,
		resource.Status(status), sentAt, expiresAt, createdAt, updatedAt,
	), nil
}
