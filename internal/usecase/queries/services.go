package queries

import (
	"context"
	"time"

	"talent-services/internal/domain/resource"
	"talent-services/internal/pkg/errs"

	"github.com/google/uuid"
)

// AssignmentView is the consolidated row returned to the admin surface:
// the assignment joined with its resource unit.
type AssignmentView struct {
	ID             uuid.UUID
	Provider       string
	ServiceCode    string
	CandidateID    uuid.UUID
	ActorID        uuid.UUID
	Status         string
	AssignedAt     time.Time
	ResourceID     uuid.UUID
	ResourceCode   string
	ResourceStatus string
	SentAt         *time.Time
	ExpiresAt      *time.Time
}

// ResourceView is the lightweight unit projection.
type ResourceView struct {
	ID           uuid.UUID
	Provider     string
	ServiceCode  string
	ResourceCode string
	Status       string
	SentAt       *time.Time
	ExpiresAt    *time.Time
}

type ServiceReadStore interface {
	ListAssignmentsForCandidate(ctx context.Context, candidateID uuid.UUID) ([]*AssignmentView, error)
	ListResourcesForCandidate(ctx context.Context, provider string, code resource.ServiceCode, candidateID uuid.UUID) ([]*ResourceView, error)
	CountAvailable(ctx context.Context, provider string, code resource.ServiceCode) (int64, error)
}

type ServiceQueries interface {
	// ListAssignmentsForCandidate answers "what services does this
	// candidate have?" across all providers.
	ListAssignmentsForCandidate(ctx context.Context, candidateID uuid.UUID) ([]*AssignmentView, error)
	ListResourcesForCandidate(ctx context.Context, provider string, code resource.ServiceCode, candidateID uuid.UUID) ([]*ResourceView, error)
	CountAvailable(ctx context.Context, provider string, code resource.ServiceCode) (int64, error)
}

type serviceQueriesImpl struct {
	store ServiceReadStore
}

func NewServiceQueries(store ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{store: store}
}

func (q *serviceQueriesImpl) ListAssignmentsForCandidate(ctx context.Context, candidateID uuid.UUID) ([]*AssignmentView, error) {
	views, err := q.store.ListAssignmentsForCandidate(ctx, candidateID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *serviceQueriesImpl) ListResourcesForCandidate(ctx context.Context, provider string, code resource.ServiceCode, candidateID uuid.UUID) ([]*ResourceView, error) {
	views, err := q.store.ListResourcesForCandidate(ctx, provider, code, candidateID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *serviceQueriesImpl) CountAvailable(ctx context.Context, provider string, code resource.ServiceCode) (int64, error) {
	count, err := q.store.CountAvailable(ctx, provider, code)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return count, nil
}
