package store

import (
	"errors"
	"time"

	"admin-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetSetting returns the value for key, or nil when the key is unknown
func (s *Store) GetSetting(key string) (*string, error) {
	var setting models.Setting
	err := s.db.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting.Value, nil
}

// SetSetting upserts the value for key, refreshing the update timestamp.
// There is always at most one row per key.
func (s *Store) SetSetting(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": time.Now().UTC(),
		}),
	}).Create(&models.Setting{Key: key, Value: value}).Error
}

// GetAllSettings returns the full key to value mapping
func (s *Store) GetAllSettings() (map[string]string, error) {
	var settings []models.Setting
	if err := s.db.Find(&settings).Error; err != nil {
		return nil, err
	}

	out := make(map[string]string, len(settings))
	for _, setting := range settings {
		out[setting.Key] = setting.Value
	}
	return out, nil
}
