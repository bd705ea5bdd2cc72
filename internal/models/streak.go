package models

import "time"

// Streak is a contiguous run of calendar days with at least one application
// each. Derived state: rows are only written by the store's streak update,
// never edited directly. At most one row is active (EndDate nil) at a time;
// closed rows are retained for longest-streak reporting.
type Streak struct {
	ID        string     `gorm:"primaryKey;size:64" json:"id"`
	StartDate time.Time  `gorm:"index;not null" json:"start_date"`
	EndDate   *time.Time `json:"end_date"` // nil while active
	Count     int        `gorm:"default:1" json:"count"`
	Active    bool       `gorm:"index;default:false" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Streak) TableName() string {
	return "streaks"
}
