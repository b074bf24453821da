package requests

// UploadFileRequest represents the form fields of a file upload request
type UploadFileRequest struct {
	UploadedBy  uint    `json:"uploadedBy" form:"uploadedBy" validate:"required"`
	Description *string `json:"description,omitempty" form:"description"`
}

// UpdateFileRequest represents a file metadata update request; omitted
// fields are left unchanged
type UpdateFileRequest struct {
	FileName    *string `json:"fileName,omitempty"`
	Description *string `json:"description,omitempty"`
	MimeType    *string `json:"mimeType,omitempty"`
}
