package store

import (
	"admin-api/internal/models"
)

// DefaultActivityLogLimit caps activity log listings when the caller does
// not ask for a specific amount.
const DefaultActivityLogLimit = 100

// CreateActivityLog appends one audit record and returns its id
func (s *Store) CreateActivityLog(entry *models.ActivityLog) (uint, error) {
	if err := s.db.Create(entry).Error; err != nil {
		return 0, err
	}
	return entry.ID, nil
}

// GetActivityLogs returns up to limit records, newest first, joined with the
// acting user's name and email. The identity fields are null for entries
// whose user has been deleted. A non-positive limit falls back to
// DefaultActivityLogLimit.
func (s *Store) GetActivityLogs(limit int) ([]models.ActivityLogEntry, error) {
	if limit <= 0 {
		limit = DefaultActivityLogLimit
	}

	var entries []models.ActivityLogEntry
	err := s.db.Model(&models.ActivityLog{}).
		Select("activity_logs.*, users.name AS user_name, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = activity_logs.user_id").
		Order("activity_logs.created_at DESC, activity_logs.id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
