package models

import "time"

// Comment is a note attached to a file. Comments are removed together with
// their file; the author reference is not a constraint, so comments outlive
// deleted users.
type Comment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	FileID    uint      `json:"fileId" gorm:"not null;index"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentWithAuthor is a Comment joined with the author's identity
type CommentWithAuthor struct {
	Comment       `gorm:"embedded"`
	AuthorName    *string `json:"authorName,omitempty" gorm:"->"`
	AuthorEmail   *string `json:"authorEmail,omitempty" gorm:"->"`
	AuthorPicture *string `json:"authorPicture,omitempty" gorm:"->"`
}
