package models

import "time"

// ActivityLog is an append-only audit record. Rows are never updated;
// the user reference is not a constraint so entries survive user deletion.
type ActivityLog struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    *uint     `json:"userId,omitempty" gorm:"index"`
	Action    string    `json:"action" gorm:"not null"`
	Details   *string   `json:"details,omitempty"`
	IPAddress *string   `json:"ipAddress,omitempty"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

// ActivityLogEntry is an ActivityLog joined with the acting user's identity.
// The identity fields are null when the user has been deleted.
type ActivityLogEntry struct {
	ActivityLog `gorm:"embedded"`
	UserName    *string `json:"userName,omitempty" gorm:"->"`
	UserEmail   *string `json:"userEmail,omitempty" gorm:"->"`
}
