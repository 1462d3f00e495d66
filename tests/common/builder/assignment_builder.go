//go:build unit || e2e

package builder

import (
	"time"

	"talent-services/internal/domain/assignment"
	"talent-services/internal/domain/resource"

	"github.com/google/uuid"
)

type AssignmentBuilder struct {
	ID          uuid.UUID
	ServiceCode resource.ServiceCode
	ResourceID  uuid.UUID
	CandidateID uuid.UUID
	ActorID     uuid.UUID
	Status      assignment.Status
	AssignedAt  time.Time
}

func NewAssignmentBuilder() *AssignmentBuilder {
	return &AssignmentBuilder{
		ID:          uuid.New(),
		ServiceCode: resource.CodeDuolingoTestProctored,
		ResourceID:  uuid.New(),
		CandidateID: uuid.New(),
		ActorID:     uuid.New(),
		Status:      assignment.StatusAssigned,
		AssignedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *AssignmentBuilder) With(mutate func(*AssignmentBuilder)) *AssignmentBuilder {
	mutate(b)
	return b
}

func (b *AssignmentBuilder) WithStatus(s assignment.Status) *AssignmentBuilder {
	b.Status = s
	return b
}

func (b *AssignmentBuilder) BuildDomain() *assignment.Assignment {
	return assignment.NewAssignment(b.ServiceCode, b.ResourceID, b.CandidateID, b.ActorID, b.AssignedAt)
}

func (b *AssignmentBuilder) Reconstruct() *assignment.Assignment {
	return assignment.Reconstruct(
		b.ID,
		b.ServiceCode.Provider(),
		b.ServiceCode,
		b.ResourceID,
		b.CandidateID,
		b.ActorID,
		b.Status,
		b.AssignedAt,
		b.AssignedAt,
	)
}
