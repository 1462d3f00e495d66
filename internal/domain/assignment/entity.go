package assignment

import (
	"errors"
	"time"

	"talent-services/internal/domain/resource"

	"github.com/google/uuid"
)

var (
	ErrAlreadyTerminal = errors.New("assignment is already in a terminal status")
	ErrUnknownStatus   = errors.New("unknown assignment status")
)

// Status of a candidate's claim on a resource unit. ASSIGNED is the only
// non-terminal status.
type Status string

const (
	StatusAssigned   Status = "ASSIGNED"
	StatusRedeemed   Status = "REDEEMED"
	StatusExpired    Status = "EXPIRED"
	StatusReassigned Status = "REASSIGNED"
)

var validStatuses = map[Status]struct{}{
	StatusAssigned:   {},
	StatusRedeemed:   {},
	StatusExpired:    {},
	StatusReassigned: {},
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := validStatuses[st]; !ok {
		return "", ErrUnknownStatus
	}
	return st, nil
}

func (s Status) String() string { return string(s) }

func (s Status) IsTerminal() bool { return s != StatusAssigned }

// Assignment links a candidate to exactly one resource unit. A candidate may
// hold at most one non-terminal assignment per provider+serviceCode;
// reassignment supersedes the old record rather than duplicating it.
type Assignment struct {
	id          uuid.UUID
	provider    string
	serviceCode resource.ServiceCode
	resourceID  uuid.UUID
	candidateID uuid.UUID
	actorID     uuid.UUID
	status      Status
	assignedAt  time.Time
	updatedAt   time.Time
}

func NewAssignment(code resource.ServiceCode, resourceID, candidateID, actorID uuid.UUID, now time.Time) *Assignment {
	return &Assignment{
		id:          uuid.New(),
		provider:    code.Provider(),
		serviceCode: code,
		resourceID:  resourceID,
		candidateID: candidateID,
		actorID:     actorID,
		status:      StatusAssigned,
		assignedAt:  now,
		updatedAt:   now,
	}
}

func Reconstruct(
	id uuid.UUID,
	provider string,
	code resource.ServiceCode,
	resourceID, candidateID, actorID uuid.UUID,
	status Status,
	assignedAt, updatedAt time.Time,
) *Assignment {
	return &Assignment{
		id:          id,
		provider:    provider,
		serviceCode: code,
		resourceID:  resourceID,
		candidateID: candidateID,
		actorID:     actorID,
		status:      status,
		assignedAt:  assignedAt,
		updatedAt:   updatedAt,
	}
}

func (a *Assignment) transitionTo(next Status, now time.Time) error {
	if a.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	a.status = next
	a.updatedAt = now
	return nil
}

// Redeem records that the candidate used the resource.
func (a *Assignment) Redeem(now time.Time) error {
	return a.transitionTo(StatusRedeemed, now)
}

// Expire is driven by the scheduled sweep when the underlying unit expires
// while the assignment is still active.
func (a *Assignment) Expire(now time.Time) error {
	return a.transitionTo(StatusExpired, now)
}

// Supersede terminates this assignment because the operator assigned a new
// unit to the same candidate for the same offering.
func (a *Assignment) Supersede(now time.Time) error {
	return a.transitionTo(StatusReassigned, now)
}

func (a *Assignment) IsActive() bool { return a.status == StatusAssigned }

func (a *Assignment) ID() uuid.UUID                     { return a.id }
func (a *Assignment) Provider() string                  { return a.provider }
func (a *Assignment) ServiceCode() resource.ServiceCode { return a.serviceCode }
func (a *Assignment) ResourceID() uuid.UUID             { return a.resourceID }
func (a *Assignment) CandidateID() uuid.UUID            { return a.candidateID }
func (a *Assignment) ActorID() uuid.UUID                { return a.actorID }
func (a *Assignment) Status() Status                    { return a.status }
func (a *Assignment) AssignedAt() time.Time             { return a.assignedAt }
func (a *Assignment) UpdatedAt() time.Time              { return a.updatedAt }
