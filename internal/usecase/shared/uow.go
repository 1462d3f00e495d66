package shared

import (
	"context"
	"time"

	"talent-services/internal/domain/assignment"
	"talent-services/internal/domain/resource"
	"talent-services/internal/events"
	"talent-services/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork is the transaction coordinator. Events recorded on the Tx are
// handed to the dispatcher only after a successful commit, so listeners
// never observe a rolled-back assignment.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Resources() ResourceRepository
	Assignments() AssignmentRepository
	// Record queues a lifecycle event for post-commit dispatch.
	Record(ev events.Event)
	DB() db.DBTX
}

// ResourceRepository is the resource store. Rows are never deleted.
type ResourceRepository interface {
	// LockNextAvailable atomically reserves the oldest AVAILABLE unit for
	// the provider/serviceCode. Returns KindNotFound when the pool is
	// exhausted. Safe under concurrent callers across processes.
	LockNextAvailable(ctx context.Context, provider string, code resource.ServiceCode) (*resource.Unit, error)
	InsertBatch(ctx context.Context, units []*resource.Unit) error
	Save(ctx context.Context, unit *resource.Unit) error
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Unit, error)
	FindByCode(ctx context.Context, provider, resourceCode string) (*resource.Unit, error)
	// FindExpirable returns units past their expiry that are not already in
	// a terminal status, locked for the sweep.
	FindExpirable(ctx context.Context, now time.Time) ([]*resource.Unit, error)
	CountAvailable(ctx context.Context, provider string, code resource.ServiceCode) (int64, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, a *assignment.Assignment) error
	Update(ctx context.Context, a *assignment.Assignment) error
	FindByID(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error)
	// FindActiveByCandidate returns the candidate's single non-terminal
	// assignment for the offering, or KindNotFound.
	FindActiveByCandidate(ctx context.Context, candidateID uuid.UUID, provider string, code resource.ServiceCode) (*assignment.Assignment, error)
	// FindLatestByResource returns the most recent assignment referencing
	// the unit, or KindNotFound.
	FindLatestByResource(ctx context.Context, resourceID uuid.UUID) (*assignment.Assignment, error)
}
