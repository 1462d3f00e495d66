package repository

import (
	"context"
	"time"

	"talent-services/internal/domain/assignment"
	"talent-services/internal/domain/resource"
	"talent-services/internal/infra"
	"talent-services/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const assignmentColumns = `id, provider, service_code, resource_id, candidate_id, actor_id, status, assigned_at, updated_at`

type AssignmentRepository struct {
	db db.DBTX
}

func NewAssignmentRepository(dbtx db.DBTX) *AssignmentRepository {
	return &AssignmentRepository{db: dbtx}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *assignment.Assignment) error {
	const query = `
		INSERT INTO service_assignments (id, provider, service_code, resource_id, candidate_id, actor_id, status, assigned_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		a.ID(), a.Provider(), string(a.ServiceCode()), a.ResourceID(), a.CandidateID(),
		a.ActorID(), string(a.Status()), a.AssignedAt(), a.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create assignment", err)
	}
	return nil
}

func (r *AssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	const query = `UPDATE service_assignments SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, a.ID(), string(a.Status()), a.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update assignment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("assignment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AssignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error) {
	const query = `SELECT ` + assignmentColumns + ` FROM service_assignments WHERE id = $1`

	a, err := scanAssignment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("assignment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find assignment by id", err)
	}
	return a, nil
}

// FindActiveByCandidate locks the active row so a concurrent assign for the
// same candidate serializes on the supersede.
func (r *AssignmentRepository) FindActiveByCandidate(ctx context.Context, candidateID uuid.UUID, provider string, code resource.ServiceCode) (*assignment.Assignment, error) {
	const query = `
		SELECT ` + assignmentColumns + `
		FROM service_assignments
		WHERE candidate_id = $1 AND provider = $2 AND service_code = $3 AND status = $4
		ORDER BY assigned_at DESC
		LIMIT 1
		FOR UPDATE`

	a, err := scanAssignment(r.db.QueryRow(ctx, query,
		candidateID, provider, string(code), string(assignment.StatusAssigned)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("no active assignment for candidate", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active assignment", err)
	}
	return a, nil
}

func (r *AssignmentRepository) FindLatestByResource(ctx context.Context, resourceID uuid.UUID) (*assignment.Assignment, error) {
	const query = `
		SELECT ` + assignmentColumns + `
		FROM service_assignments
		WHERE resource_id = $1
		ORDER BY assigned_at DESC
		LIMIT 1`

	a, err := scanAssignment(r.db.QueryRow(ctx, query, resourceID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("no assignment for resource", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find latest assignment for resource", err)
	}
	return a, nil
}

func scanAssignment(row pgx.Row) (*assignment.Assignment, error) {
	var (
		id, resourceID        uuid.UUID
		candidateID, actorID  uuid.UUID
		provider, serviceCode string
		status                string
		assignedAt, updatedAt time.Time
	)
	err := row.Scan(&id, &provider, &serviceCode, &resourceID, &candidateID, &actorID, &status, &assignedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	return assignment.Reconstruct(
		id, provider, resource.ServiceCode(serviceCode), resourceID, candidateID, actorID,
		assignment.Status(status), assignedAt, updatedAt,
	), nil
}
