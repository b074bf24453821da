package requests

// CreateCommentRequest represents a request to comment on a file
type CreateCommentRequest struct {
	UserID  uint   `json:"userId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdateCommentRequest represents a comment edit request
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}
