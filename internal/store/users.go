package store

import (
	"errors"
	"time"

	"admin-api/internal/models"

	"gorm.io/gorm"
)

// UserPatch is the closed set of user columns an update may touch. Nil
// fields are left unchanged.
type UserPatch struct {
	GoogleID  *string
	Email     *string
	Name      *string
	Picture   *string
	IsAdmin   *bool
	IsActive  *bool
	LastLogin *time.Time
}

func (p UserPatch) changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.GoogleID != nil {
		changes["google_id"] = *p.GoogleID
	}
	if p.Email != nil {
		changes["email"] = *p.Email
	}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Picture != nil {
		changes["picture"] = *p.Picture
	}
	if p.IsAdmin != nil {
		changes["is_admin"] = *p.IsAdmin
	}
	if p.IsActive != nil {
		changes["is_active"] = *p.IsActive
	}
	if p.LastLogin != nil {
		changes["last_login"] = *p.LastLogin
	}
	return changes
}

// GetUserByID retrieves a user by id. Returns nil without error when no
// user matches.
func (s *Store) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByGoogleID retrieves a user by Google account id
func (s *Store) GetUserByGoogleID(googleID string) (*models.User, error) {
	var user models.User
	err := s.db.Where("google_id = ?", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email address
func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user and returns the row as persisted. LastLogin
// is set to the insert time, matching first-login provisioning. Duplicate
// email or Google id surfaces as the driver's constraint error.
func (s *Store) CreateUser(user *models.User) (*models.User, error) {
	now := time.Now().UTC()
	user.LastLogin = &now

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return s.GetUserByID(user.ID)
}

// UpdateUser applies the patch to the user and returns the updated row.
// Returns nil when the user does not exist.
func (s *Store) UpdateUser(id uint, patch UserPatch) (*models.User, error) {
	changes := patch.changes()
	if len(changes) > 0 {
		err := s.db.Model(&models.User{}).Where("id = ?", id).Updates(changes).Error
		if err != nil {
			return nil, err
		}
	}
	return s.GetUserByID(id)
}

// GetAllUsers returns all users, newest first. The Google account id is not
// part of the listing.
func (s *Store) GetAllUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.
		Select("id", "email", "name", "picture", "is_admin", "is_active", "created_at", "last_login").
		Order("created_at DESC, id DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user by id. Deleting an unknown id is a no-op.
// Files, comments and activity logs of the user are left in place.
func (s *Store) DeleteUser(id uint) error {
	return s.db.Delete(&models.User{}, id).Error
}
