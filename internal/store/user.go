package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ethantsaox/jobflow/internal/models"
)

// seedUser inserts the default local user if no user row exists.
func (s *Store) seedUser() error {
	user := models.User{
		ID:          uuid.New().String(),
		DisplayName: "Job Seeker",
		DailyGoal:   models.DefaultDailyGoal,
		WeeklyGoal:  models.DefaultWeeklyGoal,
		Timezone:    "Local",
	}
	var count int64
	if err := s.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.Create(&user).Error
}

// GetUser returns the single user record for this store.
func (s *Store) GetUser() (*models.User, error) {
	var user models.User
	err := s.First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, storageErr("get user", err)
	}
	return &user, nil
}

// UpdateGoals sets the daily and weekly application-count goals.
// Zero or negative values leave the corresponding goal unchanged.
func (s *Store) UpdateGoals(daily, weekly int) (*models.User, error) {
	user, err := s.GetUser()
	if err != nil {
		return nil, err
	}
	if daily > 0 {
		user.DailyGoal = daily
	}
	if weekly > 0 {
		user.WeeklyGoal = weekly
	}
	if err := s.Save(user).Error; err != nil {
		return nil, storageErr("update goals", err)
	}
	return user, nil
}

// UpdateUser persists edits to the user profile.
func (s *Store) UpdateUser(user *models.User) error {
	if err := s.Save(user).Error; err != nil {
		return storageErr("update user", err)
	}
	return nil
}
