package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ethantsaox/jobflow/internal/models"
)

// achievementSeed is one catalog entry template.
type achievementSeed struct {
	category string
	target   int
	title    string
	desc     string
	icon     string
	rarity   string
}

// catalog is the static achievement catalog, seeded at bootstrap.
var catalog = []achievementSeed{
	// Application count milestones
	{models.AchievementApplications, 1, "First Step", "Applied to your first job", "🎯", models.RarityCommon},
	{models.AchievementApplications, 5, "Getting Started", "Applied to 5 jobs", "🚀", models.RarityCommon},
	{models.AchievementApplications, 10, "Double Digits", "Applied to 10 jobs", "🔟", models.RarityUncommon},
	{models.AchievementApplications, 25, "Quarter Century", "Applied to 25 jobs", "💪", models.RarityUncommon},
	{models.AchievementApplications, 50, "Half Century", "Applied to 50 jobs", "⭐", models.RarityRare},
	{models.AchievementApplications, 100, "Century Club", "Applied to 100 jobs", "💯", models.RarityEpic},
	{models.AchievementApplications, 200, "Persistent", "Applied to 200 jobs", "🏆", models.RarityLegendary},
	{models.AchievementApplications, 500, "Job Hunter", "Applied to 500 jobs", "👑", models.RarityMythic},

	// Streak milestones
	{models.AchievementStreaks, 1, "Streak Starter", "Applied 1 day in a row", "🔥", models.RarityCommon},
	{models.AchievementStreaks, 3, "Three Days Strong", "Applied 3 days in a row", "🔥", models.RarityCommon},
	{models.AchievementStreaks, 7, "Week Warrior", "Applied 7 days in a row", "🔥", models.RarityUncommon},
	{models.AchievementStreaks, 14, "Two Week Champion", "Applied 14 days in a row", "🔥", models.RarityRare},
	{models.AchievementStreaks, 30, "Month Master", "Applied 30 days in a row", "🔥", models.RarityEpic},
	{models.AchievementStreaks, 60, "Unstoppable", "Applied 60 days in a row", "🔥", models.RarityLegendary},
	{models.AchievementStreaks, 100, "Streak Legend", "Applied 100 days in a row", "🔥", models.RarityMythic},

	// Interview milestones
	{models.AchievementInterviews, 1, "First Interview", "Got your first interview", "👔", models.RarityUncommon},
	{models.AchievementInterviews, 5, "Interview Pro", "Got 5 interviews", "👔", models.RarityRare},
	{models.AchievementInterviews, 10, "Interview Expert", "Got 10 interviews", "👔", models.RarityEpic},

	// Offer milestones
	{models.AchievementOffers, 1, "First Offer", "Received your first job offer", "💼", models.RarityRare},
	{models.AchievementOffers, 3, "Multiple Offers", "Received 3 job offers", "💼", models.RarityLegendary},
}

// seedAchievements inserts any catalog entries not already present.
// Existing rows keep their unlock state.
func (s *Store) seedAchievements() error {
	for _, def := range catalog {
		a := models.Achievement{
			ID:          uuid.New().String(),
			Key:         fmt.Sprintf("%s_%d", def.category, def.target),
			Title:       def.title,
			Description: def.desc,
			Icon:        def.icon,
			Category:    def.category,
			Rarity:      def.rarity,
			Target:      def.target,
		}
		res := s.Where("key = ?", a.Key).FirstOrCreate(&a)
		if res.Error != nil {
			return res.Error
		}
	}
	return nil
}

// evaluateAchievements recomputes progress for every locked achievement and
// unlocks those whose progress has reached their target. Already-unlocked
// rows are never touched, so evaluation is idempotent and unlocking is
// monotonic. It returns the achievements newly unlocked by this call.
func (s *Store) evaluateAchievements(now time.Time) ([]models.Achievement, error) {
	total, err := s.CountApplications()
	if err != nil {
		return nil, err
	}
	streak, err := s.currentStreakAt(now)
	if err != nil {
		return nil, err
	}
	interviews, err := s.countByStatus(models.StatusInterview, models.StatusOffer)
	if err != nil {
		return nil, err
	}
	offers, err := s.countByStatus(models.StatusOffer)
	if err != nil {
		return nil, err
	}

	var locked []models.Achievement
	if err := s.Find(&locked, "unlocked = ?", false).Error; err != nil {
		return nil, storageErr("list locked achievements", err)
	}

	var newlyUnlocked []models.Achievement
	for i := range locked {
		a := &locked[i]

		var progress int
		switch a.Category {
		case models.AchievementApplications:
			progress = int(total)
		case models.AchievementStreaks:
			progress = streak
		case models.AchievementInterviews:
			progress = int(interviews)
		case models.AchievementOffers:
			progress = int(offers)
		default:
			continue
		}

		a.Progress = progress
		if progress >= a.Target {
			a.Unlocked = true
			t := now
			a.UnlockedAt = &t
		}
		if err := s.Save(a).Error; err != nil {
			return nil, storageErr("save achievement", err)
		}
		if a.Unlocked {
			newlyUnlocked = append(newlyUnlocked, *a)
		}
	}
	return newlyUnlocked, nil
}

// countByStatus counts applications whose status is any of the given values.
func (s *Store) countByStatus(statuses ...string) (int64, error) {
	var count int64
	err := s.Model(&models.JobApplication{}).
		Where("status IN ?", statuses).
		Count(&count).Error
	if err != nil {
		return 0, storageErr("count by status", err)
	}
	return count, nil
}

// ListAchievements returns the full catalog with unlock state, rarest last
// within each category.
func (s *Store) ListAchievements() ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := s.Order("category ASC").Order("target ASC").Find(&achievements).Error
	if err != nil {
		return nil, storageErr("list achievements", err)
	}
	return achievements, nil
}
