// Package transform maps between the canonical local record shapes and the
// account service's wire shapes. All functions are pure and total: they
// never fail, and fields absent on one side convert to zero values.
package transform

import (
	"strings"
	"time"

	"github.com/ethantsaox/jobflow/internal/models"
	"github.com/ethantsaox/jobflow/internal/remote"
)

// wireDate is the calendar-date layout used on the wire.
const wireDate = "2006-01-02"

// ApplicationToRemote flattens a local application (and its loaded company)
// into the remote wire shape.
func ApplicationToRemote(app *models.JobApplication) remote.Application {
	r := remote.Application{
		ID:             app.ID,
		Title:          app.Title,
		CompanyName:    app.CompanyName(),
		Status:         app.Status,
		Location:       app.Location,
		SalaryMin:      app.SalaryMin,
		SalaryMax:      app.SalaryMax,
		Notes:          app.Notes,
		SourceURL:      app.SourceURL,
		SourcePlatform: app.SourcePlatform,
		CreatedAt:      app.CreatedAt,
		UpdatedAt:      app.UpdatedAt,
	}
	if app.Company != nil {
		r.CompanyWebsite = app.Company.Website
	}
	if !app.AppliedDate.IsZero() {
		r.AppliedDate = app.AppliedDate.Format(wireDate)
	}
	return r
}

// ApplicationFromRemote builds a local application from the wire shape.
// The company relation is reconstructed from the flattened name; its local
// id is empty until a store resolves it. An unparseable applied date
// converts to the zero time rather than failing.
func ApplicationFromRemote(r remote.Application) models.JobApplication {
	app := models.JobApplication{
		ID:             r.ID,
		Title:          r.Title,
		Status:         r.Status,
		Location:       r.Location,
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		Notes:          r.Notes,
		SourceURL:      r.SourceURL,
		SourcePlatform: r.SourcePlatform,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.AppliedDate != "" {
		if d, err := time.ParseInLocation(wireDate, r.AppliedDate, time.Local); err == nil {
			app.AppliedDate = d
		}
	}
	if r.CompanyName != "" {
		app.Company = &models.Company{
			Name:    r.CompanyName,
			Website: r.CompanyWebsite,
		}
	}
	return app
}

// UserToRemote splits the local display name into the service's first/last
// name pair at the first space. A single-word name becomes the first name
// with an empty last name.
func UserToRemote(u *models.User) remote.User {
	first, last := splitName(u.DisplayName)
	return remote.User{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  first,
		LastName:   last,
		DailyGoal:  u.DailyGoal,
		WeeklyGoal: u.WeeklyGoal,
		Timezone:   u.Timezone,
		CreatedAt:  u.CreatedAt,
	}
}

// UserFromRemote joins the service's name pair back into a display name.
func UserFromRemote(r remote.User) models.User {
	return models.User{
		ID:          r.ID,
		Email:       r.Email,
		DisplayName: strings.TrimSpace(r.FirstName + " " + r.LastName),
		DailyGoal:   r.DailyGoal,
		WeeklyGoal:  r.WeeklyGoal,
		Timezone:    r.Timezone,
		CreatedAt:   r.CreatedAt,
	}
}

func splitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}
