package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateGoals(t *testing.T) {
	s := testStore(t)

	user, err := s.UpdateGoals(10, 40)
	require.NoError(t, err)
	assert.Equal(t, 10, user.DailyGoal)
	assert.Equal(t, 40, user.WeeklyGoal)

	// Non-positive values leave the goal alone.
	user, err = s.UpdateGoals(0, -1)
	require.NoError(t, err)
	assert.Equal(t, 10, user.DailyGoal)
	assert.Equal(t, 40, user.WeeklyGoal)

	// Partial update.
	user, err = s.UpdateGoals(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, user.DailyGoal)
	assert.Equal(t, 40, user.WeeklyGoal)
}

func TestUpdateUser(t *testing.T) {
	s := testStore(t)

	user, err := s.GetUser()
	require.NoError(t, err)

	user.DisplayName = "Ada"
	user.Email = "ada@example.com"
	require.NoError(t, s.UpdateUser(user))

	got, err := s.GetUser()
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.DisplayName)
	assert.Equal(t, "ada@example.com", got.Email)
}
