package orchestrator

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskTemplate is a named entry in the external task catalog.
type TaskTemplate struct {
	ID   uuid.UUID
	Name string
}

// TaskCatalog resolves task templates by name.
type TaskCatalog interface {
	TemplateByName(ctx context.Context, name string) (*TaskTemplate, error)
}

// TaskAssignments is the external task-assignment collaborator. The
// taskContext ties the created task back to the originating service
// assignment so redelivered events create no duplicates.
type TaskAssignments interface {
	AssignTaskToCandidate(ctx context.Context, actorID uuid.UUID, template *TaskTemplate, candidateID uuid.UUID, taskContext string, dueDate *time.Time) error
}
