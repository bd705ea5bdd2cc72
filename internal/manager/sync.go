package manager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethantsaox/jobflow/internal/mode"
	"github.com/ethantsaox/jobflow/internal/models"
	"github.com/ethantsaox/jobflow/internal/store"
	"github.com/ethantsaox/jobflow/internal/transform"
)

// ErrNotAuthenticated is returned when sync is attempted in local mode.
var ErrNotAuthenticated = errors.New("sync requires authenticated mode")

// SyncResult summarizes a sync-to-remote run.
type SyncResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SyncLocalToServer pushes every locally stored application to the remote
// service, one create call at a time. Uploads are sequential and paced so
// the service is not flooded and each item's failure stays isolated: a
// failed item is logged and the rest continue. Success means at least one
// item synced.
//
// Items are not marked as synced, so running this twice duplicates
// already-uploaded applications on the account. Known limitation of the
// current contract.
func (m *Manager) SyncLocalToServer(ctx context.Context) (*SyncResult, error) {
	if m.remote == nil || m.modes.Current() != mode.Authenticated {
		return nil, ErrNotAuthenticated
	}

	apps, err := m.local.ListApplications(store.ListQuery{Ascending: true})
	if err != nil {
		return nil, err
	}
	total := len(apps)
	if total == 0 {
		return &SyncResult{Success: false, Message: "0/0"}, nil
	}

	succeeded := 0
	for i := range apps {
		if err := m.limiter.Wait(ctx); err != nil {
			break
		}
		app := apps[i]
		if _, err := m.remote.CreateApplication(ctx, transform.ApplicationToRemote(&app)); err != nil {
			if m.logger != nil {
				m.logger.Warnf("sync: upload %q failed: %v", app.Title, err)
			}
			continue
		}
		succeeded++
	}

	if succeeded > 0 {
		_ = m.local.SetMeta(models.MetaLastSyncAt, time.Now().Format(time.RFC3339))
	}

	return &SyncResult{
		Success: succeeded > 0,
		Message: fmt.Sprintf("%d/%d", succeeded, total),
	}, nil
}
