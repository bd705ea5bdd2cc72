package manager

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethantsaox/jobflow/internal/mode"
	"github.com/ethantsaox/jobflow/internal/models"
	"github.com/ethantsaox/jobflow/internal/remote"
	"github.com/ethantsaox/jobflow/internal/store"
)

var errDown = errors.New("service unavailable")

// fakeRemote implements Remote in memory. With down set, every call fails.
type fakeRemote struct {
	down       bool
	failTitles map[string]bool
	created    []remote.Application
	apps       []remote.Application
	user       *remote.User
	calls      int
}

func (f *fakeRemote) ListApplications(ctx context.Context) ([]remote.Application, error) {
	f.calls++
	if f.down {
		return nil, errDown
	}
	return f.apps, nil
}

func (f *fakeRemote) GetApplication(ctx context.Context, id string) (*remote.Application, error) {
	f.calls++
	if f.down {
		return nil, errDown
	}
	for i := range f.apps {
		if f.apps[i].ID == id {
			return &f.apps[i], nil
		}
	}
	return nil, errDown
}

func (f *fakeRemote) CreateApplication(ctx context.Context, app remote.Application) (*remote.Application, error) {
	f.calls++
	if f.down || f.failTitles[app.Title] {
		return nil, errDown
	}
	if app.ID == "" {
		app.ID = "srv-" + app.Title
	}
	f.created = append(f.created, app)
	return &app, nil
}

func (f *fakeRemote) UpdateApplication(ctx context.Context, id string, app remote.Application) (*remote.Application, error) {
	f.calls++
	if f.down {
		return nil, errDown
	}
	app.ID = id
	return &app, nil
}

func (f *fakeRemote) DeleteApplication(ctx context.Context, id string) error {
	f.calls++
	if f.down {
		return errDown
	}
	return nil
}

func (f *fakeRemote) GetUser(ctx context.Context) (*remote.User, error) {
	f.calls++
	if f.down || f.user == nil {
		return nil, errDown
	}
	return f.user, nil
}

func (f *fakeRemote) UpdateGoals(ctx context.Context, daily, weekly int) (*remote.User, error) {
	f.calls++
	if f.down || f.user == nil {
		return nil, errDown
	}
	u := *f.user
	u.DailyGoal = daily
	u.WeeklyGoal = weekly
	return &u, nil
}

func (f *fakeRemote) Summary(ctx context.Context) (*models.Summary, error) {
	f.calls++
	if f.down {
		return nil, errDown
	}
	return &models.Summary{TotalApplications: 42}, nil
}

func (f *fakeRemote) Timeline(ctx context.Context, days int) ([]models.TimelinePoint, error) {
	f.calls++
	if f.down {
		return nil, errDown
	}
	return []models.TimelinePoint{}, nil
}

func (f *fakeRemote) ListAchievements(ctx context.Context) ([]models.Achievement, error) {
	f.calls++
	if f.down {
		return nil, errDown
	}
	return []models.Achievement{{Key: "applications_1", Unlocked: true}}, nil
}

// testManager wires a Manager over a temp store with the given remote and
// starting mode.
func testManager(t *testing.T, rc Remote, m mode.Mode) (*Manager, *store.Store) {
	t.Helper()

	st, err := store.New(store.DefaultConfig(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.SetModePreference(m))
	modes, err := mode.New(st, rc != nil)
	require.NoError(t, err)

	return New(st, rc, modes, nil), st
}

func TestLocalMode_NeverTouchesRemote(t *testing.T) {
	fake := &fakeRemote{}
	mgr, _ := testManager(t, fake, mode.Local)
	ctx := context.Background()

	app, _, err := mgr.CreateApplication(ctx, store.ApplicationInput{Title: "Engineer", CompanyName: "Acme"})
	require.NoError(t, err)

	_, err = mgr.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	_, err = mgr.ListApplications(ctx, store.ListQuery{})
	require.NoError(t, err)
	_, err = mgr.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, fake.calls)
}

func TestAuthenticatedMode_ServesFromRemote(t *testing.T) {
	fake := &fakeRemote{
		apps: []remote.Application{{ID: "r1", Title: "Remote Role", CompanyName: "Acme", AppliedDate: "2026-08-20"}},
		user: &remote.User{ID: "u1", FirstName: "Ada", LastName: "Lovelace", DailyGoal: 5, WeeklyGoal: 25},
	}
	mgr, _ := testManager(t, fake, mode.Authenticated)
	ctx := context.Background()

	apps, err := mgr.ListApplications(ctx, store.ListQuery{})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Remote Role", apps[0].Title)
	require.NotNil(t, apps[0].Company)
	assert.Equal(t, "Acme", apps[0].Company.Name)

	user, err := mgr.GetUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", user.DisplayName)

	summary, err := mgr.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), summary.TotalApplications)

	achievements, err := mgr.ListAchievements(ctx)
	require.NoError(t, err)
	require.Len(t, achievements, 1)
	assert.True(t, achievements[0].Unlocked)
}

func TestAuthenticatedMode_FallsBackWhenRemoteFails(t *testing.T) {
	fake := &fakeRemote{down: true}
	mgr, _ := testManager(t, fake, mode.Authenticated)
	ctx := context.Background()

	// Every operation succeeds from the local store despite the dead remote.
	app, _, err := mgr.CreateApplication(ctx, store.ApplicationInput{Title: "Engineer", CompanyName: "Acme"})
	require.NoError(t, err)

	got, err := mgr.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", got.Title)

	apps, err := mgr.ListApplications(ctx, store.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	user, err := mgr.UpdateGoals(ctx, 7, 30)
	require.NoError(t, err)
	assert.Equal(t, 7, user.DailyGoal)

	summary, err := mgr.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalApplications)

	require.NoError(t, mgr.DeleteApplication(ctx, app.ID))

	// The remote was tried each time.
	assert.Greater(t, fake.calls, 0)
}

func TestFallback_MatchesLocalOnlyResults(t *testing.T) {
	ctx := context.Background()

	dead, localSt := testManager(t, &fakeRemote{down: true}, mode.Authenticated)
	pure, _ := testManager(t, nil, mode.Local)

	for _, mgr := range []*Manager{dead, pure} {
		_, _, err := mgr.CreateApplication(ctx, store.ApplicationInput{Title: "Engineer", CompanyName: "Acme"})
		require.NoError(t, err)
	}

	deadApps, err := dead.ListApplications(ctx, store.ListQuery{})
	require.NoError(t, err)
	pureApps, err := pure.ListApplications(ctx, store.ListQuery{})
	require.NoError(t, err)

	require.Len(t, deadApps, 1)
	require.Len(t, pureApps, 1)
	assert.Equal(t, pureApps[0].Title, deadApps[0].Title)
	assert.Equal(t, pureApps[0].Status, deadApps[0].Status)

	// The degraded write went through the full local pipeline.
	streak, err := localSt.CurrentStreak()
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestManager_NilRemoteStaysLocal(t *testing.T) {
	mgr, _ := testManager(t, nil, mode.Local)
	ctx := context.Background()

	_, _, err := mgr.CreateApplication(ctx, store.ApplicationInput{Title: "Engineer", CompanyName: "Acme"})
	require.NoError(t, err)

	apps, err := mgr.ListApplications(ctx, store.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}
