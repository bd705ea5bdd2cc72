package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ethantsaox/jobflow/internal/mode"
	"github.com/ethantsaox/jobflow/internal/models"
)

// GetMeta retrieves a metadata value. An absent key reads as "".
func (s *Store) GetMeta(key string) (string, error) {
	var meta models.Meta
	err := s.First(&meta, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", storageErr("get meta", err)
	}
	return meta.Value, nil
}

// SetMeta sets a metadata value.
func (s *Store) SetMeta(key, value string) error {
	meta := models.Meta{Key: key, Value: value}
	err := s.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&meta).Error
	if err != nil {
		return storageErr("set meta", err)
	}
	return nil
}

// ModePreference returns the saved mode preference, defaulting to "local"
// when none has been stored.
func (s *Store) ModePreference() (mode.Mode, error) {
	v, err := s.GetMeta(models.MetaModePreference)
	if err != nil {
		return mode.Local, err
	}
	if mode.Mode(v) == mode.Authenticated {
		return mode.Authenticated, nil
	}
	return mode.Local, nil
}

// SetModePreference persists the mode preference.
func (s *Store) SetModePreference(m mode.Mode) error {
	return s.SetMeta(models.MetaModePreference, string(m))
}
