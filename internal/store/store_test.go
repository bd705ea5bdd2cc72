package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethantsaox/jobflow/internal/models"
)

// testStore creates a temporary test database.
func testStore(t *testing.T) *Store {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	s, err := New(Config{
		Path:        dbPath,
		Debug:       false,
		MaxIdleConn: 1,
		MaxOpenConn: 1,
	})
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})

	return s
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "jobflow.db")

	s, err := New(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	}()

	// Verify database file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}

	if s.Path() != dbPath {
		t.Errorf("Path() = %v, want %v", s.Path(), dbPath)
	}
}

func TestBootstrap_SeedsDefaults(t *testing.T) {
	s := testStore(t)

	user, err := s.GetUser()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDailyGoal, user.DailyGoal)
	assert.Equal(t, models.DefaultWeeklyGoal, user.WeeklyGoal)

	achievements, err := s.ListAchievements()
	require.NoError(t, err)
	assert.Len(t, achievements, len(catalog))
	for _, a := range achievements {
		assert.False(t, a.Unlocked, "achievement %s should start locked", a.Key)
	}

	version, err := s.GetMeta(models.MetaSchemaVersion)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, version)
}

func TestBootstrap_Idempotent(t *testing.T) {
	s := testStore(t)

	// Mutate seeded state, then bootstrap again.
	_, _, err := s.CreateApplication(ApplicationInput{Title: "Engineer", CompanyName: "Acme"})
	require.NoError(t, err)

	require.NoError(t, s.Bootstrap())
	require.NoError(t, s.Bootstrap())

	var userCount int64
	require.NoError(t, s.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(1), userCount)

	achievements, err := s.ListAchievements()
	require.NoError(t, err)
	assert.Len(t, achievements, len(catalog))

	// The unlock from the write above must survive re-bootstrap.
	unlocked := 0
	for _, a := range achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	assert.Greater(t, unlocked, 0)
}

func TestReopen_KeepsData(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "jobflow.db")

	s, err := New(DefaultConfig(dbPath))
	require.NoError(t, err)

	app, _, err := s.CreateApplication(ApplicationInput{Title: "Engineer", CompanyName: "Acme"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := New(DefaultConfig(dbPath))
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()

	got, err := s2.GetApplication(app.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", got.Title)
	assert.Equal(t, "Acme", got.CompanyName())
}
