//go:build unit

package orchestrator_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"talent-services/internal/events"
	"talent-services/internal/orchestrator"
	"talent-services/internal/provider"
	"talent-services/internal/provider/duolingo"
	"talent-services/tests/common/builder"
	orchestratormock "talent-services/tests/mock/orchestrator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type orchestratorFixture struct {
	catalog *orchestratormock.MockTaskCatalog
	tasks   *orchestratormock.MockTaskAssignments
	orch    *orchestrator.TaskOrchestrator
}

func newFixture(t *testing.T) *orchestratorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	catalog := orchestratormock.NewMockTaskCatalog(ctrl)
	tasks := orchestratormock.NewMockTaskAssignments(ctrl)

	registry, err := provider.NewRegistry(duolingo.New())
	require.NoError(t, err)

	orch, err := orchestrator.NewTaskOrchestrator(
		registry, catalog, tasks, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return &orchestratorFixture{catalog: catalog, tasks: tasks, orch: orch}
}

func assignedEvent() events.Event {
	a := builder.NewAssignmentBuilder().BuildDomain()
	return events.ServiceAssigned(a, "ACC123456", time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC))
}

func TestTaskOrchestratorHandle(t *testing.T) {
	t.Run("assignment event creates the claim task", func(t *testing.T) {
		f := newFixture(t)
		ev := assignedEvent()
		template := &orchestrator.TaskTemplate{ID: uuid.New(), Name: "claimCouponButton"}

		f.catalog.EXPECT().TemplateByName(gomock.Any(), "claimCouponButton").Return(template, nil)
		f.tasks.EXPECT().AssignTaskToCandidate(
			gomock.Any(), ev.Assignment.ActorID, template, ev.Assignment.CandidateID,
			ev.Assignment.AssignmentID.String(), gomock.Nil()).Return(nil)

		require.NoError(t, f.orch.Handle(context.Background(), ev))
	})

	t.Run("redeem event creates no tasks", func(t *testing.T) {
		f := newFixture(t)
		a := builder.NewAssignmentBuilder().BuildDomain()
		ev := events.ServiceRedeemed(a, "ACC123456", time.Now().UTC())

		require.NoError(t, f.orch.Handle(context.Background(), ev))
	})

	t.Run("expiry event re-issues the test task", func(t *testing.T) {
		f := newFixture(t)
		a := builder.NewAssignmentBuilder().BuildDomain()
		ev := events.ServiceExpired(a, "ACC123456", time.Now().UTC())
		template := &orchestrator.TaskTemplate{ID: uuid.New(), Name: "duolingoTest"}

		f.catalog.EXPECT().TemplateByName(gomock.Any(), "duolingoTest").Return(template, nil)
		f.tasks.EXPECT().AssignTaskToCandidate(
			gomock.Any(), gomock.Any(), template, a.CandidateID(), a.ID().String(), gomock.Nil()).Return(nil)

		require.NoError(t, f.orch.Handle(context.Background(), ev))
	})

	t.Run("template lookups are cached", func(t *testing.T) {
		f := newFixture(t)
		template := &orchestrator.TaskTemplate{ID: uuid.New(), Name: "claimCouponButton"}

		f.catalog.EXPECT().TemplateByName(gomock.Any(), "claimCouponButton").Return(template, nil).Times(1)
		f.tasks.EXPECT().AssignTaskToCandidate(
			gomock.Any(), gomock.Any(), template, gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil).Times(2)

		require.NoError(t, f.orch.Handle(context.Background(), assignedEvent()))
		require.NoError(t, f.orch.Handle(context.Background(), assignedEvent()))
	})

	t.Run("task creation failure does not fail the handler", func(t *testing.T) {
		f := newFixture(t)
		ev := assignedEvent()
		template := &orchestrator.TaskTemplate{ID: uuid.New(), Name: "claimCouponButton"}

		f.catalog.EXPECT().TemplateByName(gomock.Any(), "claimCouponButton").Return(template, nil)
		f.tasks.EXPECT().AssignTaskToCandidate(
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("task service down"))

		assert.NoError(t, f.orch.Handle(context.Background(), ev))
	})

	t.Run("event from an unregistered provider is an error", func(t *testing.T) {
		f := newFixture(t)
		ev := assignedEvent()
		ev.Assignment.Provider = "PEARSON"

		assert.Error(t, f.orch.Handle(context.Background(), ev))
	})
}
