package handlers

import (
	"fmt"

	"admin-api/internal/models"
	"admin-api/internal/requests"
	"admin-api/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
	"github.com/kerimovok/go-pkg-utils/validator"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	store *store.Store
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(st *store.Store) *CommentHandler {
	return &CommentHandler{store: st}
}

// CreateComment adds a comment to a file
func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	fileID, err := parseID(c)
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	var input requests.CreateCommentRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	// Validate request
	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	file, err := h.store.GetFileByID(fileID)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch file", err)
		return httpx.SendResponse(c, response)
	}
	if file == nil {
		response := httpx.NotFound("File not found")
		return httpx.SendResponse(c, response)
	}

	comment, err := h.store.CreateComment(&models.Comment{
		FileID:  fileID,
		UserID:  input.UserID,
		Content: input.Content,
	})
	if err != nil {
		response := httpx.InternalServerError("Failed to create comment", err)
		return httpx.SendResponse(c, response)
	}

	recordActivity(h.store, c, &input.UserID, "comment.create", fmt.Sprintf("Commented on file %s", file.OriginalName))

	response := httpx.Created("Comment created successfully", comment)
	return httpx.SendResponse(c, response)
}

// GetFileComments lists the comments on a file, oldest first
func (h *CommentHandler) GetFileComments(c *fiber.Ctx) error {
	fileID, err := parseID(c)
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	comments, err := h.store.GetCommentsByFileID(fileID)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch comments", err)
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("Comments retrieved successfully", comments)
	return httpx.SendResponse(c, response)
}

// GetComment retrieves a single comment
func (h *CommentHandler) GetComment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		response := httpx.BadRequest("Invalid comment ID", err)
		return httpx.SendResponse(c, response)
	}

	comment, err := h.store.GetCommentByID(id)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch comment", err)
		return httpx.SendResponse(c, response)
	}
	if comment == nil {
		response := httpx.NotFound("Comment not found")
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("Comment retrieved successfully", comment)
	return httpx.SendResponse(c, response)
}

// UpdateComment replaces a comment's content
func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		response := httpx.BadRequest("Invalid comment ID", err)
		return httpx.SendResponse(c, response)
	}

	var input requests.UpdateCommentRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	// Validate request
	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	comment, err := h.store.UpdateComment(id, input.Content)
	if err != nil {
		response := httpx.InternalServerError("Failed to update comment", err)
		return httpx.SendResponse(c, response)
	}
	if comment == nil {
		response := httpx.NotFound("Comment not found")
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("Comment updated successfully", comment)
	return httpx.SendResponse(c, response)
}

// DeleteComment removes a single comment
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		response := httpx.BadRequest("Invalid comment ID", err)
		return httpx.SendResponse(c, response)
	}

	comment, err := h.store.GetCommentByID(id)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch comment", err)
		return httpx.SendResponse(c, response)
	}
	if comment == nil {
		response := httpx.NotFound("Comment not found")
		return httpx.SendResponse(c, response)
	}

	if err := h.store.DeleteComment(id); err != nil {
		response := httpx.InternalServerError("Failed to delete comment", err)
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("Comment deleted successfully", nil)
	return httpx.SendResponse(c, response)
}
