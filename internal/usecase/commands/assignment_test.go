//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"talent-services/internal/domain/assignment"
	"talent-services/internal/domain/resource"
	"talent-services/internal/events"
	"talent-services/internal/infra"
	"talent-services/internal/pkg/clock"
	"talent-services/internal/pkg/errs"
	"talent-services/internal/provider"
	"talent-services/internal/provider/duolingo"
	"talent-services/internal/usecase/commands"
	"talent-services/internal/usecase/shared"
	"talent-services/tests/common/builder"
	commandsmock "talent-services/tests/mock/commands"
	sharedmock "talent-services/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	resources   *sharedmock.MockResourceRepository
	assignments *sharedmock.MockAssignmentRepository
	directory   *commandsmock.MockCandidateDirectory
	clock       *clock.MockClock
	recorded    []events.Event
	cmds        commands.ServiceCommands
}

func (s *ServiceCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.resources = sharedmock.NewMockResourceRepository(s.ctrl)
	s.assignments = sharedmock.NewMockAssignmentRepository(s.ctrl)
	s.directory = commandsmock.NewMockCandidateDirectory(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC))
	s.recorded = nil

	s.tx.EXPECT().Resources().Return(s.resources).AnyTimes()
	s.tx.EXPECT().Assignments().Return(s.assignments).AnyTimes()
	s.tx.EXPECT().Record(gomock.Any()).DoAndReturn(func(ev events.Event) {
		s.recorded = append(s.recorded, ev)
	}).AnyTimes()

	// Route transactional closures through the mock Tx.
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()

	registry, err := provider.NewRegistry(duolingo.New())
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.cmds = commands.NewServiceCommands(registry, s.uow, s.directory, s.clock, logger)
}

func (s *ServiceCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceCommandsTestSuite))
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func (s *ServiceCommandsTestSuite) reservedUnit() *resource.Unit {
	return builder.NewResourceBuilder().WithStatus(resource.StatusReserved).Reconstruct()
}

func (s *ServiceCommandsTestSuite) TestAssign() {
	ctx := context.Background()
	candidateID := uuid.New()
	actorID := uuid.New()
	code := resource.CodeDuolingoTestProctored

	s.Run("assigns a fresh candidate", func() {
		s.SetupTest()
		unit := s.reservedUnit()

		s.directory.EXPECT().ActorExists(ctx, actorID).Return(true, nil)
		s.directory.EXPECT().CandidateExists(ctx, candidateID).Return(true, nil)
		s.assignments.EXPECT().FindActiveByCandidate(ctx, candidateID, "DUOLINGO", code).Return(nil, notFound())
		s.resources.EXPECT().LockNextAvailable(ctx, "DUOLINGO", code).Return(unit, nil)
		s.resources.EXPECT().Save(ctx, unit).Return(nil)
		s.assignments.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		created, err := s.cmds.Assign(ctx, "DUOLINGO", code, candidateID, actorID)
		s.Require().NoError(err)
		s.Equal(candidateID, created.CandidateID())
		s.Equal(unit.ID(), created.ResourceID())
		s.Equal(resource.StatusSent, unit.Status())
		s.NotNil(unit.SentAt())

		s.Require().Len(s.recorded, 1)
		s.Equal(events.KindServiceAssigned, s.recorded[0].Kind)
		s.Equal(created.ID(), s.recorded[0].Assignment.AssignmentID)
	})

	s.Run("supersedes a prior active assignment", func() {
		s.SetupTest()
		prior := builder.NewAssignmentBuilder().
			With(func(b *builder.AssignmentBuilder) { b.CandidateID = candidateID }).
			Reconstruct()
		unit := s.reservedUnit()

		s.directory.EXPECT().ActorExists(ctx, actorID).Return(true, nil)
		s.directory.EXPECT().CandidateExists(ctx, candidateID).Return(true, nil)
		s.assignments.EXPECT().FindActiveByCandidate(ctx, candidateID, "DUOLINGO", code).Return(prior, nil)
		s.assignments.EXPECT().Update(ctx, prior).Return(nil)
		s.resources.EXPECT().LockNextAvailable(ctx, "DUOLINGO", code).Return(unit, nil)
		s.resources.EXPECT().Save(ctx, unit).Return(nil)
		s.assignments.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		created, err := s.cmds.Assign(ctx, "DUOLINGO", code, candidateID, actorID)
		s.Require().NoError(err)
		s.Equal(assignment.StatusReassigned, prior.Status())
		s.NotEqual(prior.ID(), created.ID())
	})

	s.Run("exhausted pool", func() {
		s.SetupTest()
		s.directory.EXPECT().ActorExists(ctx, actorID).Return(true, nil)
		s.directory.EXPECT().CandidateExists(ctx, candidateID).Return(true, nil)
		s.assignments.EXPECT().FindActiveByCandidate(ctx, candidateID, "DUOLINGO", code).Return(nil, notFound())
		s.resources.EXPECT().LockNextAvailable(ctx, "DUOLINGO", code).Return(nil, notFound())

		_, err := s.cmds.Assign(ctx, "DUOLINGO", code, candidateID, actorID)
		s.ErrorIs(err, errs.ErrResourceExhausted)
		s.Empty(s.recorded)
	})

	s.Run("unknown provider", func() {
		s.SetupTest()
		_, err := s.cmds.Assign(ctx, "PEARSON", code, candidateID, actorID)
		s.ErrorIs(err, errs.ErrUnknownProvider)
	})

	s.Run("unknown candidate", func() {
		s.SetupTest()
		s.directory.EXPECT().ActorExists(ctx, actorID).Return(true, nil)
		s.directory.EXPECT().CandidateExists(ctx, candidateID).Return(false, nil)
		_, err := s.cmds.Assign(ctx, "DUOLINGO", code, candidateID, actorID)
		s.ErrorIs(err, errs.ErrNotFound)
	})

	s.Run("unknown actor", func() {
		s.SetupTest()
		s.directory.EXPECT().ActorExists(ctx, actorID).Return(false, nil)
		_, err := s.cmds.Assign(ctx, "DUOLINGO", code, candidateID, actorID)
		s.ErrorIs(err, errs.ErrNotFound)
		s.Empty(s.recorded)
	})
}

func (s *ServiceCommandsTestSuite) TestAssignToList() {
	ctx := context.Background()
	actorID := uuid.New()
	code := resource.CodeDuolingoTestProctored
	first, second := uuid.New(), uuid.New()

	s.Run("assigns everyone without an active assignment", func() {
		s.SetupTest()
		s.directory.EXPECT().ActorExists(ctx, actorID).Return(true, nil)
		s.resources.EXPECT().CountAvailable(ctx, "DUOLINGO", code).Return(int64(5), nil)

		// first already holds one and is skipped
		holding := builder.NewAssignmentBuilder().
			With(func(b *builder.AssignmentBuilder) { b.CandidateID = first }).
			Reconstruct()
		s.assignments.EXPECT().FindActiveByCandidate(ctx, first, "DUOLINGO", code).Return(holding, nil)

		// second gets a unit; assignInTx re-checks for an active assignment
		s.assignments.EXPECT().FindActiveByCandidate(ctx, second, "DUOLINGO", code).Return(nil, notFound()).Times(2)
		unit := s.reservedUnit()
		s.resources.EXPECT().LockNextAvailable(ctx, "DUOLINGO", code).Return(unit, nil)
		s.resources.EXPECT().Save(ctx, unit).Return(nil)
		s.assignments.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		done, err := s.cmds.AssignToList(ctx, "DUOLINGO", code, []uuid.UUID{first, second}, actorID)
		s.Require().NoError(err)
		s.Require().Len(done, 1)
		s.Equal(second, done[0].CandidateID())
		s.Equal(assignment.StatusAssigned, holding.Status())
	})

	s.Run("rejects the list when the pool is too small", func() {
		s.SetupTest()
		s.directory.EXPECT().ActorExists(ctx, actorID).Return(true, nil)
		s.resources.EXPECT().CountAvailable(ctx, "DUOLINGO", code).Return(int64(1), nil)

		_, err := s.cmds.AssignToList(ctx, "DUOLINGO", code, []uuid.UUID{first, second}, actorID)
		s.ErrorIs(err, errs.ErrResourceExhausted)
		s.Empty(s.recorded)
	})

	s.Run("unknown actor", func() {
		s.SetupTest()
		s.directory.EXPECT().ActorExists(ctx, actorID).Return(false, nil)

		_, err := s.cmds.AssignToList(ctx, "DUOLINGO", code, []uuid.UUID{first, second}, actorID)
		s.ErrorIs(err, errs.ErrNotFound)
	})
}

func (s *ServiceCommandsTestSuite) TestRedeem() {
	ctx := context.Background()
	actorID := uuid.New()

	s.Run("redeems assignment and resource together", func() {
		s.SetupTest()
		a := builder.NewAssignmentBuilder().Reconstruct()
		unit := builder.NewResourceBuilder().WithStatus(resource.StatusSent).Reconstruct()

		s.assignments.EXPECT().FindByID(ctx, a.ID()).Return(a, nil)
		s.assignments.EXPECT().Update(ctx, a).Return(nil)
		s.resources.EXPECT().FindByID(ctx, a.ResourceID()).Return(unit, nil)
		s.resources.EXPECT().Save(ctx, unit).Return(nil)

		redeemed, err := s.cmds.Redeem(ctx, a.ID(), actorID)
		s.Require().NoError(err)
		s.Equal(assignment.StatusRedeemed, redeemed.Status())
		s.Equal(resource.StatusRedeemed, unit.Status())

		s.Require().Len(s.recorded, 1)
		s.Equal(events.KindServiceRedeemed, s.recorded[0].Kind)
	})

	s.Run("terminal resource is left untouched", func() {
		s.SetupTest()
		a := builder.NewAssignmentBuilder().Reconstruct()
		unit := builder.NewResourceBuilder().WithStatus(resource.StatusExpired).Reconstruct()

		s.assignments.EXPECT().FindByID(ctx, a.ID()).Return(a, nil)
		s.assignments.EXPECT().Update(ctx, a).Return(nil)
		s.resources.EXPECT().FindByID(ctx, a.ResourceID()).Return(unit, nil)

		_, err := s.cmds.Redeem(ctx, a.ID(), actorID)
		s.Require().NoError(err)
		s.Equal(resource.StatusExpired, unit.Status())
	})

	s.Run("terminal assignment rejected", func() {
		s.SetupTest()
		a := builder.NewAssignmentBuilder().WithStatus(assignment.StatusRedeemed).Reconstruct()
		s.assignments.EXPECT().FindByID(ctx, a.ID()).Return(a, nil)

		_, err := s.cmds.Redeem(ctx, a.ID(), actorID)
		s.ErrorIs(err, errs.ErrInvalidStateTransition)
		s.Empty(s.recorded)
	})

	s.Run("unknown assignment", func() {
		s.SetupTest()
		id := uuid.New()
		s.assignments.EXPECT().FindByID(ctx, id).Return(nil, notFound())

		_, err := s.cmds.Redeem(ctx, id, actorID)
		s.ErrorIs(err, errs.ErrNotFound)
	})
}

func (s *ServiceCommandsTestSuite) TestUpdateResourceStatus() {
	ctx := context.Background()

	s.Run("moves the unit forward", func() {
		s.SetupTest()
		unit := builder.NewResourceBuilder().WithStatus(resource.StatusSent).Reconstruct()

		s.resources.EXPECT().FindByCode(ctx, "DUOLINGO", unit.ResourceCode()).Return(unit, nil)
		s.resources.EXPECT().Save(ctx, unit).Return(nil)

		err := s.cmds.UpdateResourceStatus(ctx, "DUOLINGO", unit.ResourceCode(), resource.StatusRedeemed)
		s.Require().NoError(err)
		s.Equal(resource.StatusRedeemed, unit.Status())
	})

	s.Run("backward move rejected", func() {
		s.SetupTest()
		unit := builder.NewResourceBuilder().WithStatus(resource.StatusSent).Reconstruct()
		s.resources.EXPECT().FindByCode(ctx, "DUOLINGO", unit.ResourceCode()).Return(unit, nil)

		err := s.cmds.UpdateResourceStatus(ctx, "DUOLINGO", unit.ResourceCode(), resource.StatusAvailable)
		s.ErrorIs(err, errs.ErrInvalidStateTransition)
	})

	s.Run("unknown resource code", func() {
		s.SetupTest()
		s.resources.EXPECT().FindByCode(ctx, "DUOLINGO", "NOPE").Return(nil, notFound())

		err := s.cmds.UpdateResourceStatus(ctx, "DUOLINGO", "NOPE", resource.StatusDisabled)
		s.ErrorIs(err, errs.ErrNotFound)
	})
}
