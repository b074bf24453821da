package store

import (
	"testing"
	"time"

	"admin-api/internal/models"

	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, s *Store, email, name string) *models.User {
	t.Helper()

	user, err := s.CreateUser(&models.User{Email: email, Name: name, IsActive: true})
	require.NoError(t, err)
	return user
}

func createTestFile(t *testing.T, s *Store, uploadedBy uint, name string) *models.FileWithUploader {
	t.Helper()

	file, err := s.CreateFile(&models.File{
		StoredName:   name + ".stored",
		OriginalName: name,
		FilePath:     "data/uploads/" + name,
		FileSize:     1024,
		UploadedBy:   uploadedBy,
	})
	require.NoError(t, err)
	return file
}

func TestCreateFileJoinsUploader(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "uploader@example.com", "Uploader")

	file := createTestFile(t, s, user.ID, "report.pdf")
	require.NotZero(t, file.ID)
	require.NotNil(t, file.UploaderName)
	require.Equal(t, "Uploader", *file.UploaderName)
	require.NotNil(t, file.UploaderEmail)
	require.Equal(t, "uploader@example.com", *file.UploaderEmail)
}

func TestGetFileNotFound(t *testing.T) {
	s := newTestStore(t)

	file, err := s.GetFileByID(7)
	require.NoError(t, err)
	require.Nil(t, file)
}

func TestGetAllFilesNewestFirst(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "uploader@example.com", "Uploader")

	first := createTestFile(t, s, user.ID, "first.txt")
	second := createTestFile(t, s, user.ID, "second.txt")

	files, err := s.GetAllFiles()
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, second.ID, files[0].ID)
	require.Equal(t, first.ID, files[1].ID)
}

func TestUpdateFileAdvancesUpdatedAt(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "uploader@example.com", "Uploader")
	file := createTestFile(t, s, user.ID, "notes.txt")

	time.Sleep(20 * time.Millisecond)

	updated, err := s.UpdateFile(file.ID, FilePatch{Description: strPtr("x")})
	require.NoError(t, err)
	require.NotNil(t, updated)

	require.NotNil(t, updated.Description)
	require.Equal(t, "x", *updated.Description)
	require.True(t, updated.UpdatedAt.After(file.UpdatedAt))

	// Everything else stays untouched
	require.Equal(t, file.OriginalName, updated.OriginalName)
	require.Equal(t, file.StoredName, updated.StoredName)
	require.Equal(t, file.FileSize, updated.FileSize)
	require.Equal(t, file.UploadedBy, updated.UploadedBy)
	require.WithinDuration(t, file.CreatedAt, updated.CreatedAt, time.Millisecond)
}

func TestUpdateFileEmptyPatchStillTouchesTimestamp(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "uploader@example.com", "Uploader")
	file := createTestFile(t, s, user.ID, "touch.txt")

	time.Sleep(20 * time.Millisecond)

	updated, err := s.UpdateFile(file.ID, FilePatch{})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.True(t, updated.UpdatedAt.After(file.UpdatedAt))
}

func TestDeleteFileCascadesComments(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "author@example.com", "Author")
	file := createTestFile(t, s, user.ID, "discussed.txt")

	comment, err := s.CreateComment(&models.Comment{FileID: file.ID, UserID: user.ID, Content: "first"})
	require.NoError(t, err)
	_, err = s.CreateComment(&models.Comment{FileID: file.ID, UserID: user.ID, Content: "second"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteFile(file.ID))

	gone, err := s.GetFileByID(file.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	comments, err := s.GetCommentsByFileID(file.ID)
	require.NoError(t, err)
	require.Empty(t, comments)

	byID, err := s.GetCommentByID(comment.ID)
	require.NoError(t, err)
	require.Nil(t, byID)
}

func TestDeleteFileIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.DeleteFile(404))
}

func TestUserDeleteOrphansFilesAndComments(t *testing.T) {
	s := newTestStore(t)

	user := createTestUser(t, s, "a@x.com", "A")
	file := createTestFile(t, s, user.ID, "f1")
	require.NotNil(t, file.UploaderEmail)
	require.Equal(t, "a@x.com", *file.UploaderEmail)

	comment, err := s.CreateComment(&models.Comment{FileID: file.ID, UserID: user.ID, Content: "hi"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(user.ID))

	// The file survives with a null uploader identity
	orphan, err := s.GetFileByID(file.ID)
	require.NoError(t, err)
	require.NotNil(t, orphan)
	require.Nil(t, orphan.UploaderName)
	require.Nil(t, orphan.UploaderEmail)

	// So does the comment, with a null author identity
	kept, err := s.GetCommentByID(comment.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	require.Equal(t, "hi", kept.Content)
	require.Nil(t, kept.AuthorName)
}
