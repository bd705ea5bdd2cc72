package models

import "time"

// Company is created implicitly the first time an application references a
// new company name. Names are unique case-insensitively within a store; the
// store enforces this on lookup rather than with a collated index so the
// original casing the user typed is preserved.
type Company struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Name     string `gorm:"size:255;index;not null" json:"name"`
	Website  string `gorm:"size:500" json:"website"`
	Industry string `gorm:"size:100" json:"industry"`
	Size     string `gorm:"size:50" json:"size"` // e.g. "1-10", "500+"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Company) TableName() string {
	return "companies"
}
