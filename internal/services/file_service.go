package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"admin-api/internal/config"
	"admin-api/internal/utils"

	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-utils/errors"
)

// FileService handles upload validation and disk storage
type FileService struct {
	config config.UploadsConfig
}

// NewFileService creates a new file service instance
func NewFileService() *FileService {
	return &FileService{
		config: config.GetConfig().App.Uploads,
	}
}

// ValidateFile validates the uploaded file
func (s *FileService) ValidateFile(file *multipart.FileHeader) error {
	// Check file size
	if file.Size > s.config.MaxFileSizeBytes {
		return errors.BadRequestError("FILE_TOO_LARGE", fmt.Sprintf("File size exceeds maximum allowed size of %d bytes", s.config.MaxFileSizeBytes))
	}

	// Get file extension
	ext := utils.GetFileExtension(file.Filename)
	if ext == "" {
		return errors.BadRequestError("INVALID_FILE", "File must have a valid extension")
	}

	// Check if extension is blocked
	for _, blocked := range s.config.BlockedExtensions {
		if ext == blocked {
			return errors.BadRequestError("BLOCKED_FILE_TYPE", fmt.Sprintf("File type .%s is not allowed", ext))
		}
	}

	// Check if extension is allowed
	allowed := false
	for _, allowedExt := range s.config.AllowedExtensions {
		if ext == allowedExt {
			allowed = true
			break
		}
	}
	if !allowed {
		return errors.BadRequestError("INVALID_FILE_TYPE", fmt.Sprintf("File type .%s is not allowed", ext))
	}

	// MIME type validation if enabled
	if s.config.StrictMimeValidation {
		if err := s.validateMimeType(file); err != nil {
			return err
		}
	}

	return nil
}

// validateMimeType sniffs the file content and checks the detected MIME
// type against the configured patterns
func (s *FileService) validateMimeType(file *multipart.FileHeader) error {
	src, err := file.Open()
	if err != nil {
		return errors.InternalError("FILE_OPEN_ERROR", "Failed to open file for MIME type validation")
	}
	defer src.Close()

	// Read first 512 bytes for MIME type detection
	buffer := make([]byte, 512)
	_, err = src.Read(buffer)
	if err != nil && err != io.EOF {
		return errors.InternalError("FILE_READ_ERROR", "Failed to read file for MIME type validation")
	}

	detectedType := http.DetectContentType(buffer)
	// DetectContentType may append charset parameters
	detectedType = strings.TrimSpace(strings.SplitN(detectedType, ";", 2)[0])

	if !utils.IsValidMimeType(detectedType, s.config.AllowedMimeTypes) {
		return errors.BadRequestError("MIME_TYPE_MISMATCH", fmt.Sprintf("MIME type %s is not allowed", detectedType))
	}

	return nil
}

// GenerateFilePath generates a date-partitioned path and a unique stored
// name for an upload
func (s *FileService) GenerateFilePath(originalName string) (string, string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", "", errors.InternalError("UUID_GENERATION_ERROR", "Failed to generate UUID")
	}

	storedName := id.String() + strings.ToLower(filepath.Ext(originalName))
	filePath := filepath.Join(s.config.Dir, time.Now().Format("2006-01-02"), storedName)

	return filePath, storedName, nil
}

// SaveFile saves the uploaded file to storage
func (s *FileService) SaveFile(file *multipart.FileHeader, filePath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.InternalError("DIR_CREATION_ERROR", fmt.Sprintf("Failed to create directory: %v", err))
	}

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return errors.InternalError("FILE_CREATION_ERROR", fmt.Sprintf("Failed to create destination file: %v", err))
	}
	defer dst.Close()

	// Open source file
	src, err := file.Open()
	if err != nil {
		return errors.InternalError("FILE_OPEN_ERROR", fmt.Sprintf("Failed to open source file: %v", err))
	}
	defer src.Close()

	// Copy file content
	if _, err = io.Copy(dst, src); err != nil {
		return errors.InternalError("FILE_COPY_ERROR", fmt.Sprintf("Failed to copy file content: %v", err))
	}

	return nil
}
