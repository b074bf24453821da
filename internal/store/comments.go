package store

import (
	"errors"

	"admin-api/internal/models"

	"gorm.io/gorm"
)

const authorColumns = "comments.*, users.name AS author_name, users.email AS author_email, users.picture AS author_picture"

// CreateComment inserts a comment and returns it joined with the author's
// identity.
func (s *Store) CreateComment(comment *models.Comment) (*models.CommentWithAuthor, error) {
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return s.GetCommentByID(comment.ID)
}

// GetCommentByID retrieves a comment joined with the author's identity.
// Returns nil without error when no comment matches.
func (s *Store) GetCommentByID(id uint) (*models.CommentWithAuthor, error) {
	var comment models.CommentWithAuthor
	err := s.db.Model(&models.Comment{}).
		Select(authorColumns).
		Joins("LEFT JOIN users ON users.id = comments.user_id").
		Where("comments.id = ?", id).
		First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByFileID returns the comments on one file, oldest first, each
// joined with the author's identity.
func (s *Store) GetCommentsByFileID(fileID uint) ([]models.CommentWithAuthor, error) {
	var comments []models.CommentWithAuthor
	err := s.db.Model(&models.Comment{}).
		Select(authorColumns).
		Joins("LEFT JOIN users ON users.id = comments.user_id").
		Where("comments.file_id = ?", fileID).
		Order("comments.created_at ASC, comments.id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateComment replaces the comment's content, refreshing its update
// timestamp, and returns the updated, author-joined row. Returns nil when
// the comment does not exist.
func (s *Store) UpdateComment(id uint, content string) (*models.CommentWithAuthor, error) {
	err := s.db.Model(&models.Comment{}).Where("id = ?", id).
		Updates(map[string]interface{}{"content": content}).Error
	if err != nil {
		return nil, err
	}
	return s.GetCommentByID(id)
}

// DeleteComment removes a comment by id. Deleting an unknown id is a no-op.
func (s *Store) DeleteComment(id uint) error {
	return s.db.Delete(&models.Comment{}, id).Error
}
