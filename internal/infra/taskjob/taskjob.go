// Package taskjob adapts the task-assignment collaborator onto the shared
// store: templates come from the platform's task catalog table and created
// tasks land as task_jobs rows picked up by the task service.
package taskjob

import (
	"context"
	"time"

	"talent-services/internal/infra"
	"talent-services/internal/orchestrator"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) TemplateByName(ctx context.Context, name string) (*orchestrator.TaskTemplate, error) {
	const query = `SELECT id, name FROM task_catalog WHERE name = $1`

	var template orchestrator.TaskTemplate
	err := s.pool.QueryRow(ctx, query, name).Scan(&template.ID, &template.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("task template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to look up task template", err)
	}
	return &template, nil
}

// AssignTaskToCandidate runs in its own implicit transaction: the
// originating assignment is already committed when this fires. The unique
// constraint makes redelivered events no-ops.
func (s *Store) AssignTaskToCandidate(ctx context.Context, actorID uuid.UUID, template *orchestrator.TaskTemplate, candidateID uuid.UUID, taskContext string, dueDate *time.Time) error {
	const query = `
		INSERT INTO task_jobs (id, template_id, candidate_id, actor_id, context, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (template_id, candidate_id, context) DO NOTHING`

	_, err := s.pool.Exec(ctx, query, uuid.New(), template.ID, candidateID, actorID, taskContext, dueDate)
	if err != nil {
		return infra.WrapRepoErr("failed to create task job", err)
	}
	return nil
}
