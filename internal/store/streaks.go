package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ethantsaox/jobflow/internal/models"
)

// updateStreak maintains the single active streak after an application
// write. "Today" is the device-local calendar date of the write, not the
// application's applied-date: a streak is only extended by today's activity,
// never retroactively.
func (s *Store) updateStreak(now time.Time) error {
	today := dateOf(now)
	yesterday := today.AddDate(0, 0, -1)

	todayCount, err := s.countAppliedOn(today)
	if err != nil {
		return err
	}
	if todayCount == 0 {
		return nil
	}

	active, err := s.activeStreak()
	if err != nil {
		return err
	}

	if active == nil {
		return s.openStreak(today)
	}

	// The day the active streak last counted.
	lastCounted := dateOf(active.StartDate).AddDate(0, 0, active.Count-1)
	if lastCounted.Equal(today) {
		// Not the first qualifying write today.
		return nil
	}

	// Most recent qualifying day strictly before today.
	lastActiveDay, ok, err := s.lastAppliedDayBefore(today)
	if err != nil {
		return err
	}

	if ok && lastActiveDay.Equal(yesterday) && lastCounted.Equal(yesterday) {
		active.Count++
		if err := s.Save(active).Error; err != nil {
			return storageErr("extend streak", err)
		}
		return nil
	}

	// Gap of two or more days: close the run and start over at today.
	if err := s.closeStreak(active, lastCounted); err != nil {
		return err
	}
	return s.openStreak(today)
}

// activeStreak returns the open streak, or nil when none exists.
func (s *Store) activeStreak() (*models.Streak, error) {
	var streak models.Streak
	err := s.First(&streak, "active = ?", true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr("get active streak", err)
	}
	return &streak, nil
}

func (s *Store) openStreak(start time.Time) error {
	streak := models.Streak{
		ID:        uuid.New().String(),
		StartDate: start,
		Count:     1,
		Active:    true,
	}
	if err := s.Create(&streak).Error; err != nil {
		return storageErr("open streak", err)
	}
	return nil
}

func (s *Store) closeStreak(streak *models.Streak, end time.Time) error {
	streak.Active = false
	streak.EndDate = &end
	if err := s.Save(streak).Error; err != nil {
		return storageErr("close streak", err)
	}
	return nil
}

// countAppliedOn returns the number of applications whose applied-date falls
// on the given calendar day.
func (s *Store) countAppliedOn(day time.Time) (int64, error) {
	next := day.AddDate(0, 0, 1)
	var count int64
	err := s.Model(&models.JobApplication{}).
		Where("applied_date >= ? AND applied_date < ?", day, next).
		Count(&count).Error
	if err != nil {
		return 0, storageErr("count applications for day", err)
	}
	return count, nil
}

// lastAppliedDayBefore returns the most recent calendar day strictly before
// the given day on which any application was applied.
func (s *Store) lastAppliedDayBefore(day time.Time) (time.Time, bool, error) {
	var app models.JobApplication
	err := s.Model(&models.JobApplication{}).
		Where("applied_date < ?", day).
		Order("applied_date DESC").
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, storageErr("find last applied day", err)
	}
	return dateOf(app.AppliedDate), true, nil
}

// CurrentStreak returns the active streak length. A stale open streak (one
// whose last counted day is before yesterday) reads as zero; it is closed
// lazily by the next write.
func (s *Store) CurrentStreak() (int, error) {
	return s.currentStreakAt(time.Now())
}

func (s *Store) currentStreakAt(now time.Time) (int, error) {
	active, err := s.activeStreak()
	if err != nil {
		return 0, err
	}
	if active == nil {
		return 0, nil
	}
	lastCounted := dateOf(active.StartDate).AddDate(0, 0, active.Count-1)
	yesterday := dateOf(now).AddDate(0, 0, -1)
	if lastCounted.Before(yesterday) {
		return 0, nil
	}
	return active.Count, nil
}

// LongestStreak returns the longest run on record, counting both closed
// streaks and the currently active one.
func (s *Store) LongestStreak() (int, error) {
	var longest int
	var streaks []models.Streak
	if err := s.Find(&streaks).Error; err != nil {
		return 0, storageErr("list streaks", err)
	}
	for _, st := range streaks {
		if st.Count > longest {
			longest = st.Count
		}
	}
	return longest, nil
}

// ListStreaks returns all streak history, oldest first.
func (s *Store) ListStreaks() ([]models.Streak, error) {
	var streaks []models.Streak
	if err := s.Order("start_date ASC").Find(&streaks).Error; err != nil {
		return nil, storageErr("list streaks", err)
	}
	return streaks, nil
}
