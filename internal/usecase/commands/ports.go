package commands

import (
	"context"
	"io"

	"talent-services/internal/domain/assignment"
	"talent-services/internal/domain/resource"

	"github.com/google/uuid"
)

// CandidateDirectory resolves candidate and actor IDs against the wider
// platform's identity data. ID-only references are sufficient here; this
// subsystem never loads the full entities.
type CandidateDirectory interface {
	CandidateExists(ctx context.Context, candidateID uuid.UUID) (bool, error)
	ActorExists(ctx context.Context, actorID uuid.UUID) (bool, error)
}

// ServiceCommands is the write surface of the assignment engine.
type ServiceCommands interface {
	// Assign reserves a resource unit for the candidate and records the
	// assignment. An existing active assignment for the same offering is
	// superseded (marked REASSIGNED) first.
	Assign(ctx context.Context, providerKey string, code resource.ServiceCode, candidateID, actorID uuid.UUID) (*assignment.Assignment, error)
	// AssignToList assigns to every listed candidate that does not already
	// hold an active assignment for the offering. All-or-nothing.
	AssignToList(ctx context.Context, providerKey string, code resource.ServiceCode, candidateIDs []uuid.UUID, actorID uuid.UUID) ([]*assignment.Assignment, error)
	// Redeem transitions an active assignment and its unit to REDEEMED.
	Redeem(ctx context.Context, assignmentID, actorID uuid.UUID) (*assignment.Assignment, error)
	// UpdateResourceStatus moves a unit forward in its lifecycle.
	UpdateResourceStatus(ctx context.Context, providerKey, resourceCode string, status resource.Status) error
	// ImportInventory bulk-loads resource units from an uploaded file.
	ImportInventory(ctx context.Context, providerKey string, code resource.ServiceCode, file io.Reader) error
}
