package store

import (
	"errors"
	"time"

	"admin-api/internal/models"

	"gorm.io/gorm"
)

const uploaderColumns = "files.*, users.name AS uploader_name, users.email AS uploader_email"

// FilePatch is the closed set of file columns a metadata update may touch.
// Nil fields are left unchanged. Every update refreshes the file's update
// timestamp, patched columns or not.
type FilePatch struct {
	OriginalName *string
	Description  *string
	MimeType     *string
}

func (p FilePatch) changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.OriginalName != nil {
		changes["original_name"] = *p.OriginalName
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.MimeType != nil {
		changes["mime_type"] = *p.MimeType
	}
	return changes
}

// CreateFile inserts a file metadata row and returns it joined with the
// uploader's identity.
func (s *Store) CreateFile(file *models.File) (*models.FileWithUploader, error) {
	if err := s.db.Create(file).Error; err != nil {
		return nil, err
	}
	return s.GetFileByID(file.ID)
}

// GetFileByID retrieves a file joined with the uploader's identity. Returns
// nil without error when no file matches; returns the file with null
// uploader fields when the uploading user no longer exists.
func (s *Store) GetFileByID(id uint) (*models.FileWithUploader, error) {
	var file models.FileWithUploader
	err := s.db.Model(&models.File{}).
		Select(uploaderColumns).
		Joins("LEFT JOIN users ON users.id = files.uploaded_by").
		Where("files.id = ?", id).
		First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// GetAllFiles returns all files, newest first, each joined with the
// uploader's identity.
func (s *Store) GetAllFiles() ([]models.FileWithUploader, error) {
	var files []models.FileWithUploader
	err := s.db.Model(&models.File{}).
		Select(uploaderColumns).
		Joins("LEFT JOIN users ON users.id = files.uploaded_by").
		Order("files.created_at DESC, files.id DESC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

// UpdateFile applies the patch and returns the updated, uploader-joined row.
// Returns nil when the file does not exist.
func (s *Store) UpdateFile(id uint, patch FilePatch) (*models.FileWithUploader, error) {
	changes := patch.changes()
	changes["updated_at"] = time.Now().UTC()

	err := s.db.Model(&models.File{}).Where("id = ?", id).Updates(changes).Error
	if err != nil {
		return nil, err
	}
	return s.GetFileByID(id)
}

// DeleteFile removes a file metadata row by id; comments on the file are
// cascade-deleted. Deleting an unknown id is a no-op.
func (s *Store) DeleteFile(id uint) error {
	return s.db.Delete(&models.File{}, id).Error
}
