package models

import "time"

// User represents an account in the admin panel
type User struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	GoogleID  *string    `json:"googleId,omitempty" gorm:"uniqueIndex"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	Name      string     `json:"name" gorm:"not null"`
	Picture   *string    `json:"picture,omitempty"`
	IsAdmin   bool       `json:"isAdmin" gorm:"not null;default:false"`
	IsActive  bool       `json:"isActive" gorm:"not null;default:true"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}
