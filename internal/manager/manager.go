// Package manager is the data-layer facade: it routes every operation to
// the local store or the remote account service according to the active
// mode, and transparently falls back to the local store when a remote call
// fails. Callers never observe which backend served a request.
package manager

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/ethantsaox/jobflow/internal/log"
	"github.com/ethantsaox/jobflow/internal/mode"
	"github.com/ethantsaox/jobflow/internal/models"
	"github.com/ethantsaox/jobflow/internal/remote"
	"github.com/ethantsaox/jobflow/internal/store"
	"github.com/ethantsaox/jobflow/internal/transform"
)

// Remote is the account-service surface the manager depends on. It is
// satisfied by *remote.Client and by test fakes.
type Remote interface {
	ListApplications(ctx context.Context) ([]remote.Application, error)
	GetApplication(ctx context.Context, id string) (*remote.Application, error)
	CreateApplication(ctx context.Context, app remote.Application) (*remote.Application, error)
	UpdateApplication(ctx context.Context, id string, app remote.Application) (*remote.Application, error)
	DeleteApplication(ctx context.Context, id string) error
	GetUser(ctx context.Context) (*remote.User, error)
	UpdateGoals(ctx context.Context, daily, weekly int) (*remote.User, error)
	Summary(ctx context.Context) (*models.Summary, error)
	Timeline(ctx context.Context, days int) ([]models.TimelinePoint, error)
	ListAchievements(ctx context.Context) ([]models.Achievement, error)
}

// Manager routes data operations between the local store and the remote
// service. Construct with New and share one instance per process.
type Manager struct {
	local   *store.Store
	remote  Remote
	modes   *mode.Controller
	logger  *log.Logger
	limiter *rate.Limiter
}

// syncUploadInterval paces sequential sync uploads so a large local backlog
// does not flood the service.
const syncUploadInterval = 200 * time.Millisecond

// New creates a Manager. remote may be nil when no credential exists; the
// mode controller guarantees local mode in that case.
func New(local *store.Store, rc Remote, modes *mode.Controller, logger *log.Logger) *Manager {
	return &Manager{
		local:   local,
		remote:  rc,
		modes:   modes,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Every(syncUploadInterval), 1),
	}
}

// Local exposes the underlying store for operations that are local by
// definition (export, import).
func (m *Manager) Local() *store.Store {
	return m.local
}

// useRemote reports whether the remote service should be tried first.
func (m *Manager) useRemote() bool {
	return m.remote != nil && m.modes.Current() == mode.Authenticated
}

// fellBack records a recovered remote failure on the diagnostic channel.
// The caller proceeds with the local store; the user never sees the error.
func (m *Manager) fellBack(op string, err error) {
	if m.logger != nil {
		m.logger.Warnf("remote %s failed, serving from local store: %v", op, err)
	}
}

// ListApplications returns applications. In authenticated mode the remote
// listing is served in the service's order; the query applies on the local
// path (and on fallback).
func (m *Manager) ListApplications(ctx context.Context, q store.ListQuery) ([]models.JobApplication, error) {
	if m.useRemote() {
		wire, err := m.remote.ListApplications(ctx)
		if err == nil {
			apps := make([]models.JobApplication, len(wire))
			for i, w := range wire {
				apps[i] = transform.ApplicationFromRemote(w)
			}
			return apps, nil
		}
		m.fellBack("list applications", err)
	}
	return m.local.ListApplications(q)
}

// GetApplication returns one application by id.
func (m *Manager) GetApplication(ctx context.Context, id string) (*models.JobApplication, error) {
	if m.useRemote() {
		wire, err := m.remote.GetApplication(ctx, id)
		if err == nil {
			app := transform.ApplicationFromRemote(*wire)
			return &app, nil
		}
		m.fellBack("get application", err)
	}
	return m.local.GetApplication(id)
}

// CreateApplication records a new application. Achievements newly unlocked
// by the write are returned only when the local store served it; in remote
// mode unlock state is read back via ListAchievements.
func (m *Manager) CreateApplication(ctx context.Context, in store.ApplicationInput) (*models.JobApplication, []models.Achievement, error) {
	if m.useRemote() {
		local := applicationFromInput(in)
		wire, err := m.remote.CreateApplication(ctx, transform.ApplicationToRemote(&local))
		if err == nil {
			app := transform.ApplicationFromRemote(*wire)
			return &app, nil, nil
		}
		m.fellBack("create application", err)
	}
	return m.local.CreateApplication(in)
}

// UpdateApplication applies edits to an application.
func (m *Manager) UpdateApplication(ctx context.Context, id string, in store.ApplicationInput) (*models.JobApplication, error) {
	if m.useRemote() {
		local := applicationFromInput(in)
		wire, err := m.remote.UpdateApplication(ctx, id, transform.ApplicationToRemote(&local))
		if err == nil {
			app := transform.ApplicationFromRemote(*wire)
			return &app, nil
		}
		m.fellBack("update application", err)
	}
	return m.local.UpdateApplication(id, in)
}

// DeleteApplication removes an application permanently.
func (m *Manager) DeleteApplication(ctx context.Context, id string) error {
	if m.useRemote() {
		if err := m.remote.DeleteApplication(ctx, id); err == nil {
			return nil
		} else {
			m.fellBack("delete application", err)
		}
	}
	return m.local.DeleteApplication(id)
}

// GetUser returns the profile record.
func (m *Manager) GetUser(ctx context.Context) (*models.User, error) {
	if m.useRemote() {
		wire, err := m.remote.GetUser(ctx)
		if err == nil {
			user := transform.UserFromRemote(*wire)
			return &user, nil
		}
		m.fellBack("get user", err)
	}
	return m.local.GetUser()
}

// UpdateGoals sets daily and weekly goals.
func (m *Manager) UpdateGoals(ctx context.Context, daily, weekly int) (*models.User, error) {
	if m.useRemote() {
		wire, err := m.remote.UpdateGoals(ctx, daily, weekly)
		if err == nil {
			user := transform.UserFromRemote(*wire)
			return &user, nil
		}
		m.fellBack("update goals", err)
	}
	return m.local.UpdateGoals(daily, weekly)
}

// Summary returns the analytics summary.
func (m *Manager) Summary(ctx context.Context) (*models.Summary, error) {
	if m.useRemote() {
		s, err := m.remote.Summary(ctx)
		if err == nil {
			return s, nil
		}
		m.fellBack("analytics summary", err)
	}
	return m.local.Summary()
}

// Timeline returns per-day application counts for the trailing window.
func (m *Manager) Timeline(ctx context.Context, days int) ([]models.TimelinePoint, error) {
	if m.useRemote() {
		points, err := m.remote.Timeline(ctx, days)
		if err == nil {
			return points, nil
		}
		m.fellBack("analytics timeline", err)
	}
	return m.local.Timeline(days)
}

// ListAchievements returns the achievement catalog with unlock state.
func (m *Manager) ListAchievements(ctx context.Context) ([]models.Achievement, error) {
	if m.useRemote() {
		achievements, err := m.remote.ListAchievements(ctx)
		if err == nil {
			return achievements, nil
		}
		m.fellBack("list achievements", err)
	}
	return m.local.ListAchievements()
}

// applicationFromInput builds a canonical application from caller input for
// the remote write path. No id is assigned; the service mints one.
func applicationFromInput(in store.ApplicationInput) models.JobApplication {
	status := in.Status
	if status == "" {
		status = models.StatusApplied
	}
	applied := in.AppliedDate
	if applied.IsZero() {
		applied = time.Now()
	}
	return models.JobApplication{
		Title:          in.Title,
		Status:         status,
		AppliedDate:    applied,
		Location:       in.Location,
		SalaryMin:      in.SalaryMin,
		SalaryMax:      in.SalaryMax,
		Notes:          in.Notes,
		SourceURL:      in.SourceURL,
		SourcePlatform: in.SourcePlatform,
		Company: &models.Company{
			Name:    in.CompanyName,
			Website: in.CompanyWebsite,
		},
	}
}
