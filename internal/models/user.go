// Package models defines the core data structures for JobFlow.
package models

import (
	"time"
)

// User is the profile record. Exactly one row exists per store; it is
// created at bootstrap (local) or registration (remote) and never deleted
// except on an explicit data wipe.
type User struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	DisplayName string `gorm:"size:255" json:"display_name"`
	Email       string `gorm:"size:255" json:"email"` // optional in local-only mode

	// Goal settings
	DailyGoal  int `gorm:"default:5" json:"daily_goal"`
	WeeklyGoal int `gorm:"default:25" json:"weekly_goal"`

	Timezone string `gorm:"size:64;default:Local" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// Default goal values for a freshly bootstrapped user.
const (
	DefaultDailyGoal  = 5
	DefaultWeeklyGoal = 25
)
