package events

import (
	"time"

	"talent-services/internal/domain/assignment"
	"talent-services/internal/domain/resource"

	"github.com/google/uuid"
)

type Kind string

const (
	KindServiceAssigned Kind = "SERVICE_ASSIGNED"
	KindServiceRedeemed Kind = "SERVICE_REDEEMED"
	KindServiceExpired  Kind = "SERVICE_EXPIRED"
)

// AssignmentSnapshot is the immutable payload carried by lifecycle events.
// Handlers run after commit and must not reach back into transaction state.
type AssignmentSnapshot struct {
	AssignmentID uuid.UUID
	Provider     string
	ServiceCode  resource.ServiceCode
	ResourceID   uuid.UUID
	ResourceCode string
	CandidateID  uuid.UUID
	ActorID      uuid.UUID
	AssignedAt   time.Time
}

type Event struct {
	Kind       Kind
	Assignment AssignmentSnapshot
	OccurredAt time.Time
}

func snapshotOf(a *assignment.Assignment, resourceCode string) AssignmentSnapshot {
	return AssignmentSnapshot{
		AssignmentID: a.ID(),
		Provider:     a.Provider(),
		ServiceCode:  a.ServiceCode(),
		ResourceID:   a.ResourceID(),
		ResourceCode: resourceCode,
		CandidateID:  a.CandidateID(),
		ActorID:      a.ActorID(),
		AssignedAt:   a.AssignedAt(),
	}
}

func ServiceAssigned(a *assignment.Assignment, resourceCode string, now time.Time) Event {
	return Event{Kind: KindServiceAssigned, Assignment: snapshotOf(a, resourceCode), OccurredAt: now}
}

func ServiceRedeemed(a *assignment.Assignment, resourceCode string, now time.Time) Event {
	return Event{Kind: KindServiceRedeemed, Assignment: snapshotOf(a, resourceCode), OccurredAt: now}
}

func ServiceExpired(a *assignment.Assignment, resourceCode string, now time.Time) Event {
	return Event{Kind: KindServiceExpired, Assignment: snapshotOf(a, resourceCode), OccurredAt: now}
}
