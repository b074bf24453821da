package handlers

import (
	"fmt"
	"log"
	"os"

	"admin-api/internal/models"
	"admin-api/internal/requests"
	"admin-api/internal/services"
	"admin-api/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
	"github.com/kerimovok/go-pkg-utils/validator"
)

// FileHandler handles file-related HTTP requests
type FileHandler struct {
	store       *store.Store
	fileService *services.FileService
}

// NewFileHandler creates a new file handler
func NewFileHandler(st *store.Store) *FileHandler {
	return &FileHandler{
		store:       st,
		fileService: services.NewFileService(),
	}
}

// UploadFile handles file upload requests
func (h *FileHandler) UploadFile(c *fiber.Ctx) error {
	// Parse multipart form
	file, err := c.FormFile("file")
	if err != nil {
		response := httpx.BadRequest("No file provided", err)
		return httpx.SendResponse(c, response)
	}

	// Parse additional form data
	var input requests.UploadFileRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	// Validate request
	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	// The uploader must exist when the metadata row is created
	uploader, err := h.store.GetUserByID(input.UploadedBy)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch uploader", err)
		return httpx.SendResponse(c, response)
	}
	if uploader == nil {
		response := httpx.BadRequest("Uploading user does not exist", nil)
		return httpx.SendResponse(c, response)
	}

	// Validate file
	if err := h.fileService.ValidateFile(file); err != nil {
		response := httpx.BadRequest("File validation failed", err)
		return httpx.SendResponse(c, response)
	}

	// Generate file path and name
	filePath, storedName, err := h.fileService.GenerateFilePath(file.Filename)
	if err != nil {
		response := httpx.InternalServerError("Failed to generate file path", err)
		return httpx.SendResponse(c, response)
	}

	// Save file to storage
	if err := h.fileService.SaveFile(file, filePath); err != nil {
		response := httpx.InternalServerError("Failed to save file", err)
		return httpx.SendResponse(c, response)
	}

	var mimeType *string
	if contentType := file.Header.Get("Content-Type"); contentType != "" {
		mimeType = &contentType
	}

	// Create file record
	fileRecord, err := h.store.CreateFile(&models.File{
		StoredName:   storedName,
		OriginalName: file.Filename,
		FilePath:     filePath,
		FileSize:     file.Size,
		MimeType:     mimeType,
		Description:  input.Description,
		UploadedBy:   input.UploadedBy,
	})
	if err != nil {
		log.Printf("Failed to save file record: %v", err)
		response := httpx.InternalServerError("Failed to process file upload", err)
		return httpx.SendResponse(c, response)
	}

	recordActivity(h.store, c, &input.UploadedBy, "file.upload", fmt.Sprintf("Uploaded file %s", file.Filename))

	response := httpx.Created("File uploaded successfully", fileRecord)
	return httpx.SendResponse(c, response)
}

// GetFile retrieves file information
func (h *FileHandler) GetFile(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	file, err := h.store.GetFileByID(id)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch file", err)
		return httpx.SendResponse(c, response)
	}
	if file == nil {
		response := httpx.NotFound("File not found")
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("File retrieved successfully", file)
	return httpx.SendResponse(c, response)
}

// GetFiles lists all files, newest first
func (h *FileHandler) GetFiles(c *fiber.Ctx) error {
	files, err := h.store.GetAllFiles()
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch files", err)
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("Files retrieved successfully", files)
	return httpx.SendResponse(c, response)
}

// DownloadFile handles file download requests
func (h *FileHandler) DownloadFile(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	file, err := h.store.GetFileByID(id)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch file", err)
		return httpx.SendResponse(c, response)
	}
	if file == nil {
		response := httpx.NotFound("File not found")
		return httpx.SendResponse(c, response)
	}

	// Check if file exists on disk
	if _, err := os.Stat(file.FilePath); os.IsNotExist(err) {
		response := httpx.NotFound("File not found on disk")
		return httpx.SendResponse(c, response)
	}

	// Send file
	return c.Download(file.FilePath, file.OriginalName)
}

// UpdateFile updates file metadata
func (h *FileHandler) UpdateFile(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	var input requests.UpdateFileRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	// Validate request
	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	file, err := h.store.UpdateFile(id, store.FilePatch{
		OriginalName: input.FileName,
		Description:  input.Description,
		MimeType:     input.MimeType,
	})
	if err != nil {
		response := httpx.InternalServerError("Failed to update file", err)
		return httpx.SendResponse(c, response)
	}
	if file == nil {
		response := httpx.NotFound("File not found")
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("File updated successfully", file)
	return httpx.SendResponse(c, response)
}

// DeleteFile deletes a file and its comments
func (h *FileHandler) DeleteFile(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	file, err := h.store.GetFileByID(id)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch file", err)
		return httpx.SendResponse(c, response)
	}
	if file == nil {
		response := httpx.NotFound("File not found")
		return httpx.SendResponse(c, response)
	}

	// Delete file record; comments cascade
	if err := h.store.DeleteFile(id); err != nil {
		response := httpx.InternalServerError("Failed to delete file", err)
		return httpx.SendResponse(c, response)
	}

	// Delete file from disk
	if err := os.Remove(file.FilePath); err != nil {
		log.Printf("Warning: Failed to delete file from disk: %v", err)
	}

	recordActivity(h.store, c, nil, "file.delete", fmt.Sprintf("Deleted file %s", file.OriginalName))

	response := httpx.OK("File deleted successfully", nil)
	return httpx.SendResponse(c, response)
}
