package models

import "time"

// File represents metadata for a stored file
type File struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	StoredName   string    `json:"storedName" gorm:"not null"`
	OriginalName string    `json:"originalName" gorm:"not null"`
	FilePath     string    `json:"filePath" gorm:"not null"`
	FileSize     int64     `json:"fileSize" gorm:"not null;check:file_size >= 0"`
	MimeType     *string   `json:"mimeType,omitempty"`
	Description  *string   `json:"description,omitempty"`
	UploadedBy   uint      `json:"uploadedBy" gorm:"not null;index"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Comments []Comment `json:"-" gorm:"foreignKey:FileID;constraint:OnDelete:CASCADE"`
}

// FileWithUploader is a File joined with the uploader's identity. The
// identity fields are null when the uploading user no longer exists.
type FileWithUploader struct {
	File          `gorm:"embedded"`
	UploaderName  *string `json:"uploaderName,omitempty" gorm:"->"`
	UploaderEmail *string `json:"uploaderEmail,omitempty" gorm:"->"`
}
