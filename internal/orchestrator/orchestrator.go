// Package orchestrator bridges committed assignment lifecycle events to the
// external task-assignment collaborator. Task creation is a best-effort
// side effect: failures are logged and never unwind the assignment.
package orchestrator

import (
	"context"
	"log/slog"

	"talent-services/internal/events"
	"talent-services/internal/pkg/errs"
	"talent-services/internal/provider"

	lru "github.com/hashicorp/golang-lru"
)

const templateCacheSize = 64

type TaskOrchestrator struct {
	registry      *provider.Registry
	catalog       TaskCatalog
	tasks         TaskAssignments
	templateCache *lru.Cache
	logger        *slog.Logger
}

func NewTaskOrchestrator(
	registry *provider.Registry,
	catalog TaskCatalog,
	tasks TaskAssignments,
	logger *slog.Logger,
) (*TaskOrchestrator, error) {
	// Policies draw from a small fixed set of templates, so cache catalog
	// lookups instead of hitting the external catalog per event.
	cache, err := lru.New(templateCacheSize)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build template cache")
	}
	return &TaskOrchestrator{
		registry:      registry,
		catalog:       catalog,
		tasks:         tasks,
		templateCache: cache,
		logger:        logger,
	}, nil
}

// Register subscribes the orchestrator to the post-commit dispatcher.
func (o *TaskOrchestrator) Register(d *events.Dispatcher) {
	d.Subscribe(o)
}

func (o *TaskOrchestrator) Handle(ctx context.Context, ev events.Event) error {
	p, err := o.registry.ForProvider(ev.Assignment.Provider)
	if err != nil {
		return errs.Wrap(err, "no policy for event provider")
	}

	var taskNames []provider.TaskName
	switch ev.Kind {
	case events.KindServiceAssigned:
		taskNames = p.Policy.TasksOnAssigned(ev)
	case events.KindServiceRedeemed:
		taskNames = p.Policy.TasksOnRedeemed(ev)
	case events.KindServiceExpired:
		taskNames = p.Policy.TasksOnExpired(ev)
	default:
		return errs.Newf("unhandled event kind %q", ev.Kind)
	}

	for _, name := range taskNames {
		if err := o.createTask(ctx, ev, name); err != nil {
			// At-least-once, best effort: keep creating the remaining
			// tasks even when one fails.
			o.logger.Error("failed to create follow-up task",
				"task", string(name),
				"event", string(ev.Kind),
				"assignment_id", ev.Assignment.AssignmentID.String(),
				"candidate_id", ev.Assignment.CandidateID.String(),
				"error", err.Error())
		}
	}
	return nil
}

func (o *TaskOrchestrator) createTask(ctx context.Context, ev events.Event, name provider.TaskName) error {
	template, err := o.templateByName(ctx, string(name))
	if err != nil {
		return err
	}

	// The assignment ID keys the task so redelivery is idempotent.
	taskContext := ev.Assignment.AssignmentID.String()
	return o.tasks.AssignTaskToCandidate(ctx, ev.Assignment.ActorID, template, ev.Assignment.CandidateID, taskContext, nil)
}

func (o *TaskOrchestrator) templateByName(ctx context.Context, name string) (*TaskTemplate, error) {
	if cached, ok := o.templateCache.Get(name); ok {
		return cached.(*TaskTemplate), nil
	}

	template, err := o.catalog.TemplateByName(ctx, name)
	if err != nil {
		return nil, errs.Wrap(err, "task template lookup failed")
	}
	o.templateCache.Add(name, template)
	return template, nil
}
