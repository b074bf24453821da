package store

import (
	"fmt"
	"testing"

	"admin-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCreateActivityLogReturnsID(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateActivityLog(&models.ActivityLog{
		Action:    "settings.update",
		Details:   strPtr("maintenanceMode set to 1"),
		IPAddress: strPtr("192.0.2.1"),
	})
	require.NoError(t, err)
	require.NotZero(t, id)
}

func TestGetActivityLogsLimitAndOrdering(t *testing.T) {
	s := newTestStore(t)

	for i := 1; i <= 5; i++ {
		_, err := s.CreateActivityLog(&models.ActivityLog{Action: fmt.Sprintf("action-%d", i)})
		require.NoError(t, err)
	}

	entries, err := s.GetActivityLogs(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "action-5", entries[0].Action)
	require.Equal(t, "action-4", entries[1].Action)
}

func TestGetActivityLogsDefaultLimit(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < DefaultActivityLogLimit+5; i++ {
		_, err := s.CreateActivityLog(&models.ActivityLog{Action: "ping"})
		require.NoError(t, err)
	}

	entries, err := s.GetActivityLogs(0)
	require.NoError(t, err)
	require.Len(t, entries, DefaultActivityLogLimit)
}

func TestGetActivityLogsJoinsUser(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "actor@example.com", "Actor")

	_, err := s.CreateActivityLog(&models.ActivityLog{
		UserID: &user.ID,
		Action: "file.upload",
	})
	require.NoError(t, err)

	entries, err := s.GetActivityLogs(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].UserName)
	require.Equal(t, "Actor", *entries[0].UserName)
	require.NotNil(t, entries[0].UserEmail)
	require.Equal(t, "actor@example.com", *entries[0].UserEmail)

	// Entries outlive their user; the identity fields go null
	require.NoError(t, s.DeleteUser(user.ID))

	entries, err = s.GetActivityLogs(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "file.upload", entries[0].Action)
	require.Nil(t, entries[0].UserName)
	require.Nil(t, entries[0].UserEmail)
}
