package models

import "time"

// Achievement categories determine how progress is computed.
const (
	AchievementApplications = "applications" // total application count
	AchievementStreaks      = "streaks"      // active streak length
	AchievementInterviews   = "interviews"   // applications in interview or offer
	AchievementOffers       = "offers"       // applications in offer
)

// Rarity tiers, least to most rare.
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
	RarityMythic    = "mythic"
)

// Achievement combines a seeded catalog entry with its per-user unlock
// state. Unlock state is mutated only by achievement evaluation and is
// monotonic: once unlocked, never re-locked.
type Achievement struct {
	ID  string `gorm:"primaryKey;size:64" json:"id"`
	Key string `gorm:"uniqueIndex;size:100;not null" json:"key"` // e.g. "applications_10"

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"size:500" json:"description"`
	Icon        string `gorm:"size:20" json:"icon"`
	Category    string `gorm:"size:30;index;not null" json:"category"`
	Rarity      string `gorm:"size:20;default:common" json:"rarity"`

	Target   int `gorm:"not null" json:"target"`
	Progress int `gorm:"default:0" json:"progress"`

	Unlocked   bool       `gorm:"index;default:false" json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Achievement) TableName() string {
	return "achievements"
}
