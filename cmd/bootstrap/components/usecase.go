package components

import (
	"talent-services/internal/pkg/clock"
	"talent-services/internal/usecase/commands"
	"talent-services/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewServiceCommands,
		queries.NewServiceQueries,
	),
)
