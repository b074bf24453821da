package store

import (
	"testing"
	"time"

	"admin-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCreateCommentJoinsAuthor(t *testing.T) {
	s := newTestStore(t)

	author, err := s.CreateUser(&models.User{
		Email:    "author@example.com",
		Name:     "Author",
		Picture:  strPtr("https://example.com/author.png"),
		IsActive: true,
	})
	require.NoError(t, err)
	file := createTestFile(t, s, author.ID, "topic.txt")

	comment, err := s.CreateComment(&models.Comment{FileID: file.ID, UserID: author.ID, Content: "nice file"})
	require.NoError(t, err)
	require.NotZero(t, comment.ID)
	require.Equal(t, "nice file", comment.Content)
	require.NotNil(t, comment.AuthorName)
	require.Equal(t, "Author", *comment.AuthorName)
	require.NotNil(t, comment.AuthorEmail)
	require.Equal(t, "author@example.com", *comment.AuthorEmail)
	require.NotNil(t, comment.AuthorPicture)
	require.Equal(t, "https://example.com/author.png", *comment.AuthorPicture)
}

func TestGetCommentNotFound(t *testing.T) {
	s := newTestStore(t)

	comment, err := s.GetCommentByID(3)
	require.NoError(t, err)
	require.Nil(t, comment)
}

func TestGetCommentsByFileIDOldestFirst(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "author@example.com", "Author")
	file := createTestFile(t, s, user.ID, "thread.txt")
	other := createTestFile(t, s, user.ID, "other.txt")

	for _, content := range []string{"one", "two", "three"} {
		_, err := s.CreateComment(&models.Comment{FileID: file.ID, UserID: user.ID, Content: content})
		require.NoError(t, err)
	}
	_, err := s.CreateComment(&models.Comment{FileID: other.ID, UserID: user.ID, Content: "elsewhere"})
	require.NoError(t, err)

	comments, err := s.GetCommentsByFileID(file.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	require.Equal(t, "one", comments[0].Content)
	require.Equal(t, "two", comments[1].Content)
	require.Equal(t, "three", comments[2].Content)
}

func TestUpdateCommentRefreshesTimestamp(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "author@example.com", "Author")
	file := createTestFile(t, s, user.ID, "edited.txt")

	comment, err := s.CreateComment(&models.Comment{FileID: file.ID, UserID: user.ID, Content: "draft"})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	updated, err := s.UpdateComment(comment.ID, "final")
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "final", updated.Content)
	require.True(t, updated.UpdatedAt.After(comment.UpdatedAt))
	require.WithinDuration(t, comment.CreatedAt, updated.CreatedAt, time.Millisecond)
}

func TestUpdateCommentUnknownID(t *testing.T) {
	s := newTestStore(t)

	updated, err := s.UpdateComment(9, "nothing here")
	require.NoError(t, err)
	require.Nil(t, updated)
}

func TestDeleteCommentIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "author@example.com", "Author")
	file := createTestFile(t, s, user.ID, "note.txt")

	comment, err := s.CreateComment(&models.Comment{FileID: file.ID, UserID: user.ID, Content: "bye"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteComment(comment.ID))
	require.NoError(t, s.DeleteComment(comment.ID))

	gone, err := s.GetCommentByID(comment.ID)
	require.NoError(t, err)
	require.Nil(t, gone)
}
