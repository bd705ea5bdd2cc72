package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethantsaox/jobflow/internal/models"
)

func achievementByKey(t *testing.T, s *Store, key string) models.Achievement {
	t.Helper()
	var a models.Achievement
	require.NoError(t, s.First(&a, "key = ?", key).Error)
	return a
}

func TestAchievements_FirstApplicationUnlocks(t *testing.T) {
	s := testStore(t)

	_, unlocked, err := s.CreateApplication(ApplicationInput{Title: "Engineer", CompanyName: "Acme"})
	require.NoError(t, err)

	keys := make(map[string]bool, len(unlocked))
	for _, a := range unlocked {
		keys[a.Key] = true
		assert.NotNil(t, a.UnlockedAt)
	}
	// First application also opens a one-day streak.
	assert.True(t, keys["applications_1"])
	assert.True(t, keys["streaks_1"])
}

func TestAchievements_ThresholdProgress(t *testing.T) {
	s := testStore(t)

	for i := 0; i < 4; i++ {
		_, _, err := s.CreateApplication(ApplicationInput{Title: "Engineer", CompanyName: "Acme"})
		require.NoError(t, err)
	}

	five := achievementByKey(t, s, "applications_5")
	assert.False(t, five.Unlocked)
	assert.Equal(t, 4, five.Progress)

	_, unlocked, err := s.CreateApplication(ApplicationInput{Title: "Engineer", CompanyName: "Acme"})
	require.NoError(t, err)

	var hitFive bool
	for _, a := range unlocked {
		if a.Key == "applications_5" {
			hitFive = true
		}
	}
	assert.True(t, hitFive)

	five = achievementByKey(t, s, "applications_5")
	assert.True(t, five.Unlocked)
	assert.Equal(t, 5, five.Progress)
}

func TestAchievements_UnlockedOnlyReportedOnce(t *testing.T) {
	s := testStore(t)

	_, first, err := s.CreateApplication(ApplicationInput{Title: "Engineer", CompanyName: "Acme"})
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	again, err := s.evaluateAchievements(time.Now())
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestAchievements_MonotonicUnlock(t *testing.T) {
	s := testStore(t)

	app, _, err := s.CreateApplication(ApplicationInput{Title: "Engineer", CompanyName: "Acme"})
	require.NoError(t, err)

	one := achievementByKey(t, s, "applications_1")
	require.True(t, one.Unlocked)

	// Progress dropping back below the target never re-locks.
	require.NoError(t, s.DeleteApplication(app.ID))
	_, err = s.evaluateAchievements(time.Now())
	require.NoError(t, err)

	one = achievementByKey(t, s, "applications_1")
	assert.True(t, one.Unlocked)
	assert.NotNil(t, one.UnlockedAt)
}

func TestAchievements_InterviewAndOfferCounts(t *testing.T) {
	s := testStore(t)

	app, _, err := s.CreateApplication(ApplicationInput{Title: "Engineer", CompanyName: "Acme"})
	require.NoError(t, err)

	interview := achievementByKey(t, s, "interviews_1")
	assert.False(t, interview.Unlocked)

	_, err = s.UpdateApplication(app.ID, ApplicationInput{Status: models.StatusInterview})
	require.NoError(t, err)

	interview = achievementByKey(t, s, "interviews_1")
	assert.True(t, interview.Unlocked)

	// An offer counts as having reached the interview stage too.
	offer := achievementByKey(t, s, "offers_1")
	assert.False(t, offer.Unlocked)

	_, err = s.UpdateApplication(app.ID, ApplicationInput{Status: models.StatusOffer})
	require.NoError(t, err)

	offer = achievementByKey(t, s, "offers_1")
	assert.True(t, offer.Unlocked)
	interview = achievementByKey(t, s, "interviews_1")
	assert.True(t, interview.Unlocked)
}

func TestListAchievements_Ordering(t *testing.T) {
	s := testStore(t)

	achievements, err := s.ListAchievements()
	require.NoError(t, err)
	require.Len(t, achievements, len(catalog))

	for i := 1; i < len(achievements); i++ {
		prev, cur := achievements[i-1], achievements[i]
		if prev.Category == cur.Category {
			assert.Less(t, prev.Target, cur.Target)
		} else {
			assert.Less(t, prev.Category, cur.Category)
		}
	}
}
