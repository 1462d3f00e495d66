package components

import (
	"talent-services/internal/events"
	"talent-services/internal/orchestrator"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		events.NewDispatcher,
		orchestrator.NewTaskOrchestrator,
	),
	fx.Invoke(registerOrchestrator),
)

func registerOrchestrator(o *orchestrator.TaskOrchestrator, d *events.Dispatcher) {
	o.Register(d)
}
