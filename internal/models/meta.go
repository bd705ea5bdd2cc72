package models

import "time"

// Meta is a key-value table for store-level bookkeeping.
type Meta struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"size:255" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Meta) TableName() string {
	return "meta"
}

// Meta keys.
const (
	MetaSchemaVersion  = "schema_version"
	MetaModePreference = "mode_preference"
	MetaLastSyncAt     = "last_sync_at"
)
