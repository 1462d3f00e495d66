package components

import (
	"talent-services/internal/infra/db"
	"talent-services/internal/infra/directory"
	"talent-services/internal/infra/readstore"
	"talent-services/internal/infra/taskjob"
	"talent-services/internal/infra/uow"
	"talent-services/internal/orchestrator"
	"talent-services/internal/usecase/commands"
	"talent-services/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		fx.Annotate(
			directory.NewPgDirectory,
			fx.As(new(commands.CandidateDirectory)),
		),
		fx.Annotate(
			taskjob.NewStore,
			fx.As(new(orchestrator.TaskCatalog)),
			fx.As(new(orchestrator.TaskAssignments)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
