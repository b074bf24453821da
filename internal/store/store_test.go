package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "admin.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestOpenSeedsDefaultSettings(t *testing.T) {
	s := newTestStore(t)

	settings, err := s.GetAllSettings()
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"siteName":           "Admin WebApp",
		"maintenanceMode":    "0",
		"allowRegistrations": "1",
	}, settings)
}

func TestReopenKeepsExistingSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SetSetting("siteName", "Renamed"))
	require.NoError(t, s.SetSetting("customKey", "custom"))
	require.NoError(t, s.Close())

	// Simulates a process restart: schema creation and seeding must be
	// idempotent and must not overwrite existing values.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	settings, err := s.GetAllSettings()
	require.NoError(t, err)
	require.Len(t, settings, 4)
	require.Equal(t, "Renamed", settings["siteName"])
	require.Equal(t, "custom", settings["customKey"])
	require.Equal(t, "0", settings["maintenanceMode"])
}

func TestGetSettingUnknownKey(t *testing.T) {
	s := newTestStore(t)

	value, err := s.GetSetting("noSuchKey")
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestSetSettingUpsert(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetSetting("k", "v1"))
	require.NoError(t, s.SetSetting("k", "v2"))

	value, err := s.GetSetting("k")
	require.NoError(t, err)
	require.NotNil(t, value)
	require.Equal(t, "v2", *value)

	// One row per key: three seeds plus exactly one for "k"
	settings, err := s.GetAllSettings()
	require.NoError(t, err)
	require.Len(t, settings, 4)
}
