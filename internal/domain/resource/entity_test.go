//go:build unit

package resource_test

import (
	"testing"
	"time"

	"talent-services/internal/domain/resource"
	"talent-services/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnit(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		unit, err := builder.NewResourceBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, unit)

		assert.NotEqual(t, uuid.Nil, unit.ID())
		assert.Equal(t, "DUOLINGO", unit.Provider())
		assert.Equal(t, resource.CodeDuolingoTestProctored, unit.ServiceCode())
		assert.Equal(t, resource.StatusAvailable, unit.Status())
		assert.False(t, unit.CreatedAt().IsZero())
		assert.Equal(t, unit.CreatedAt(), unit.UpdatedAt())
	})

	t.Run("provider is derived from the service code", func(t *testing.T) {
		unit, err := builder.NewResourceBuilder().
			With(func(b *builder.ResourceBuilder) { b.ServiceCode = resource.CodeDuolingoTestNonProctored }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "DUOLINGO", unit.Provider())
	})

	t.Run("empty resource code rejected", func(t *testing.T) {
		_, err := builder.NewResourceBuilder().
			With(func(b *builder.ResourceBuilder) { b.ResourceCode = "   " }).
			BuildDomain()
		assert.ErrorIs(t, err, resource.ErrEmptyResourceCode)
	})

	t.Run("unknown service code rejected", func(t *testing.T) {
		_, err := builder.NewResourceBuilder().
			With(func(b *builder.ResourceBuilder) { b.ServiceCode = "TOEFL" }).
			BuildDomain()
		assert.ErrorIs(t, err, resource.ErrUnknownServiceCode)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := builder.NewResourceBuilder().
			With(func(b *builder.ResourceBuilder) { b.Status = "PENDING" }).
			BuildDomain()
		assert.ErrorIs(t, err, resource.ErrUnknownStatus)
	})
}

func TestUnitTransitions(t *testing.T) {
	now := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("forward transitions succeed", func(t *testing.T) {
		unit := builder.NewResourceBuilder().Reconstruct()

		require.NoError(t, unit.TransitionTo(resource.StatusReserved, now))
		require.NoError(t, unit.TransitionTo(resource.StatusSent, now))
		require.NoError(t, unit.TransitionTo(resource.StatusRedeemed, now))
		assert.Equal(t, resource.StatusRedeemed, unit.Status())
		assert.Equal(t, now, unit.UpdatedAt())
	})

	t.Run("skipping intermediate statuses is allowed", func(t *testing.T) {
		unit := builder.NewResourceBuilder().Reconstruct()
		assert.NoError(t, unit.TransitionTo(resource.StatusDisabled, now))
	})

	t.Run("backward transition rejected", func(t *testing.T) {
		unit := builder.NewResourceBuilder().WithStatus(resource.StatusSent).Reconstruct()
		err := unit.TransitionTo(resource.StatusReserved, now)
		assert.ErrorIs(t, err, resource.ErrBackwardTransition)
		assert.Equal(t, resource.StatusSent, unit.Status())
	})

	t.Run("no self transition", func(t *testing.T) {
		unit := builder.NewResourceBuilder().WithStatus(resource.StatusReserved).Reconstruct()
		assert.ErrorIs(t, unit.TransitionTo(resource.StatusReserved, now), resource.ErrBackwardTransition)
	})

	t.Run("terminal statuses are frozen", func(t *testing.T) {
		for _, s := range []resource.Status{resource.StatusRedeemed, resource.StatusExpired, resource.StatusDisabled} {
			unit := builder.NewResourceBuilder().WithStatus(s).Reconstruct()
			err := unit.TransitionTo(resource.StatusExpired, now)
			assert.ErrorIs(t, err, resource.ErrTerminalResource, "status %s", s)
		}
	})

	t.Run("unknown target status rejected", func(t *testing.T) {
		unit := builder.NewResourceBuilder().Reconstruct()
		assert.ErrorIs(t, unit.TransitionTo("WAITLISTED", now), resource.ErrUnknownStatus)
	})

	t.Run("MarkSent stamps sentAt", func(t *testing.T) {
		unit := builder.NewResourceBuilder().WithStatus(resource.StatusReserved).Reconstruct()
		require.NoError(t, unit.MarkSent(now))
		assert.Equal(t, resource.StatusSent, unit.Status())
		require.NotNil(t, unit.SentAt())
		assert.Equal(t, now, *unit.SentAt())
	})
}

func TestUnitExpirableAt(t *testing.T) {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name      string
		status    resource.Status
		expiresAt *time.Time
		want      bool
	}{
		{"past expiry, available", resource.StatusAvailable, &past, true},
		{"past expiry, sent", resource.StatusSent, &past, true},
		{"future expiry", resource.StatusAvailable, &future, false},
		{"expiry exactly now", resource.StatusAvailable, &now, false},
		{"no expiry", resource.StatusAvailable, nil, false},
		{"already redeemed", resource.StatusRedeemed, &past, false},
		{"already expired", resource.StatusExpired, &past, false},
		{"disabled", resource.StatusDisabled, &past, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			unit := builder.NewResourceBuilder().
				WithStatus(tc.status).
				WithExpiresAt(tc.expiresAt).
				Reconstruct()
			assert.Equal(t, tc.want, unit.ExpirableAt(now))
		})
	}
}

func TestParseStatus(t *testing.T) {
	st, err := resource.ParseStatus("RESERVED")
	require.NoError(t, err)
	assert.Equal(t, resource.StatusReserved, st)

	_, err = resource.ParseStatus("reserved")
	assert.ErrorIs(t, err, resource.ErrUnknownStatus)
}

func TestParseServiceCode(t *testing.T) {
	code, err := resource.ParseServiceCode("DUOLINGO_TEST_PROCTORED")
	require.NoError(t, err)
	assert.Equal(t, "DUOLINGO", code.Provider())

	_, err = resource.ParseServiceCode("IELTS")
	assert.ErrorIs(t, err, resource.ErrUnknownServiceCode)
}
