package models

import "time"

// Application statuses, in lifecycle order.
const (
	StatusApplied   = "applied"
	StatusScreening = "screening"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusRejected  = "rejected"
	StatusWithdrawn = "withdrawn"
)

// ValidStatuses returns all valid application statuses in lifecycle order.
func ValidStatuses() []string {
	return []string{
		StatusApplied, StatusScreening, StatusInterview,
		StatusOffer, StatusRejected, StatusWithdrawn,
	}
}

// IsValidStatus reports whether s is a known application status.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// JobApplication is a single tracked application. AppliedDate is the activity
// date used for streak and goal accounting; edits to any other field never
// affect derived temporal state.
type JobApplication struct {
	ID        string   `gorm:"primaryKey;size:64" json:"id"`
	CompanyID string   `gorm:"size:64;index;not null" json:"company_id"`
	Company   *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	Title  string `gorm:"size:255;index;not null" json:"title"`
	Status string `gorm:"size:20;index;default:applied" json:"status"`

	// AppliedDate is stored truncated to a calendar date in the device-local
	// zone; it is the sole input to streak and goal accounting.
	AppliedDate time.Time `gorm:"index" json:"applied_date"`

	Location  string  `gorm:"size:255" json:"location"`
	SalaryMin float64 `json:"salary_min"`
	SalaryMax float64 `json:"salary_max"`
	Notes     string  `gorm:"type:text" json:"notes"`

	SourceURL      string `gorm:"size:500" json:"source_url"`
	SourcePlatform string `gorm:"size:50" json:"source_platform"` // linkedin, indeed, ...

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (JobApplication) TableName() string {
	return "job_applications"
}

// CompanyName returns the company name if the relation is loaded.
func (a *JobApplication) CompanyName() string {
	if a.Company == nil {
		return ""
	}
	return a.Company.Name
}
