//go:build unit

package assignment_test

import (
	"testing"
	"time"

	"talent-services/internal/domain/assignment"
	"talent-services/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignment(t *testing.T) {
	a := builder.NewAssignmentBuilder().BuildDomain()

	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.Equal(t, "DUOLINGO", a.Provider())
	assert.Equal(t, assignment.StatusAssigned, a.Status())
	assert.True(t, a.IsActive())
	assert.Equal(t, a.AssignedAt(), a.UpdatedAt())
}

func TestAssignmentTransitions(t *testing.T) {
	now := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("redeem", func(t *testing.T) {
		a := builder.NewAssignmentBuilder().BuildDomain()
		require.NoError(t, a.Redeem(now))
		assert.Equal(t, assignment.StatusRedeemed, a.Status())
		assert.False(t, a.IsActive())
		assert.Equal(t, now, a.UpdatedAt())
	})

	t.Run("expire", func(t *testing.T) {
		a := builder.NewAssignmentBuilder().BuildDomain()
		require.NoError(t, a.Expire(now))
		assert.Equal(t, assignment.StatusExpired, a.Status())
	})

	t.Run("supersede", func(t *testing.T) {
		a := builder.NewAssignmentBuilder().BuildDomain()
		require.NoError(t, a.Supersede(now))
		assert.Equal(t, assignment.StatusReassigned, a.Status())
	})

	t.Run("terminal statuses reject every transition", func(t *testing.T) {
		for _, s := range []assignment.Status{assignment.StatusRedeemed, assignment.StatusExpired, assignment.StatusReassigned} {
			a := builder.NewAssignmentBuilder().WithStatus(s).Reconstruct()
			assert.ErrorIs(t, a.Redeem(now), assignment.ErrAlreadyTerminal, "redeem from %s", s)
			assert.ErrorIs(t, a.Expire(now), assignment.ErrAlreadyTerminal, "expire from %s", s)
			assert.ErrorIs(t, a.Supersede(now), assignment.ErrAlreadyTerminal, "supersede from %s", s)
			assert.Equal(t, s, a.Status())
		}
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, assignment.StatusAssigned.IsTerminal())
	assert.True(t, assignment.StatusRedeemed.IsTerminal())
	assert.True(t, assignment.StatusExpired.IsTerminal())
	assert.True(t, assignment.StatusReassigned.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	st, err := assignment.ParseStatus("REASSIGNED")
	require.NoError(t, err)
	assert.Equal(t, assignment.StatusReassigned, st)

	_, err = assignment.ParseStatus("CANCELLED")
	assert.ErrorIs(t, err, assignment.ErrUnknownStatus)
}
