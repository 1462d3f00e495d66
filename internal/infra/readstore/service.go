package readstore

import (
	"context"

	"talent-services/internal/domain/resource"
	"talent-services/internal/infra"
	"talent-services/internal/infra/db"
	"talent-services/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

const assignmentViewColumns = `
	a.id, r.provider, r.service_code, a.candidate_id, a.actor_id,
	a.status, a.assigned_at,
	r.id, r.resource_code, r.status, r.sent_at, r.expires_at`

func (s *ServiceReadStore) ListAssignmentsForCandidate(ctx context.Context, candidateID uuid.UUID) ([]*queries.AssignmentView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT`+assignmentViewColumns+`
		FROM service_assignments a
		JOIN service_resources r ON r.id = a.resource_id
		WHERE a.candidate_id = $1
		ORDER BY a.assigned_at DESC, a.id`,
		candidateID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list assignments for candidate", err)
	}
	defer rows.Close()

	var views []*queries.AssignmentView
	for rows.Next() {
		v := &queries.AssignmentView{}
		if err := rows.Scan(
			&v.ID, &v.Provider, &v.ServiceCode, &v.CandidateID, &v.ActorID,
			&v.Status, &v.AssignedAt,
			&v.ResourceID, &v.ResourceCode, &v.ResourceStatus, &v.SentAt, &v.ExpiresAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan assignment view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate assignment views", err)
	}
	return views, nil
}

func (s *ServiceReadStore) ListResourcesForCandidate(ctx context.Context, provider string, code resource.ServiceCode, candidateID uuid.UUID) ([]*queries.ResourceView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT r.id, r.provider, r.service_code, r.resource_code, r.status, r.sent_at, r.expires_at
		FROM service_resources r
		JOIN service_assignments a ON a.resource_id = r.id
		WHERE r.provider = $1 AND r.service_code = $2 AND a.candidate_id = $3
		ORDER BY a.assigned_at DESC, r.id`,
		provider, string(code), candidateID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources for candidate", err)
	}
	defer rows.Close()

	var views []*queries.ResourceView
	for rows.Next() {
		v := &queries.ResourceView{}
		if err := rows.Scan(&v.ID, &v.Provider, &v.ServiceCode, &v.ResourceCode, &v.Status, &v.SentAt, &v.ExpiresAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan resource view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate resource views", err)
	}
	return views, nil
}

func (s *ServiceReadStore) CountAvailable(ctx context.Context, provider string, code resource.ServiceCode) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM service_resources
		WHERE provider = $1 AND service_code = $2 AND status = $3`,
		provider, string(code), string(resource.StatusAvailable)).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count available resources", err)
	}
	return count, nil
}
