package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethantsaox/jobflow/internal/models"
)

func TestCreateApplication_Defaults(t *testing.T) {
	s := testStore(t)

	app, _, err := s.CreateApplication(ApplicationInput{
		Title:       "Backend Engineer",
		CompanyName: "Acme",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, app.ID)
	assert.Equal(t, models.StatusApplied, app.Status)
	assert.Equal(t, dateOf(time.Now()), app.AppliedDate)
	assert.Equal(t, "Acme", app.CompanyName())

	got, err := s.GetApplication(app.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", got.Title)
	require.NotNil(t, got.Company)
	assert.Equal(t, "Acme", got.Company.Name)
}

func TestCreateApplication_CompanyDedup(t *testing.T) {
	s := testStore(t)

	a, _, err := s.CreateApplication(ApplicationInput{Title: "Role A", CompanyName: "Acme"})
	require.NoError(t, err)
	b, _, err := s.CreateApplication(ApplicationInput{Title: "Role B", CompanyName: "ACME"})
	require.NoError(t, err)
	c, _, err := s.CreateApplication(ApplicationInput{Title: "Role C", CompanyName: "  acme  "})
	require.NoError(t, err)

	// All three resolve to the same company record.
	assert.Equal(t, a.CompanyID, b.CompanyID)
	assert.Equal(t, a.CompanyID, c.CompanyID)

	var count int64
	require.NoError(t, s.Model(&models.Company{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The original spelling wins.
	var company models.Company
	require.NoError(t, s.First(&company, "id = ?", a.CompanyID).Error)
	assert.Equal(t, "Acme", company.Name)
}

func TestCreateApplication_CompanyWebsiteEnrichment(t *testing.T) {
	s := testStore(t)

	a, _, err := s.CreateApplication(ApplicationInput{Title: "Role A", CompanyName: "Acme"})
	require.NoError(t, err)

	_, _, err = s.CreateApplication(ApplicationInput{
		Title:          "Role B",
		CompanyName:    "acme",
		CompanyWebsite: "https://acme.example",
	})
	require.NoError(t, err)

	var company models.Company
	require.NoError(t, s.First(&company, "id = ?", a.CompanyID).Error)
	assert.Equal(t, "https://acme.example", company.Website)

	// A later website never overwrites an existing one.
	_, _, err = s.CreateApplication(ApplicationInput{
		Title:          "Role C",
		CompanyName:    "Acme",
		CompanyWebsite: "https://other.example",
	})
	require.NoError(t, err)
	require.NoError(t, s.First(&company, "id = ?", a.CompanyID).Error)
	assert.Equal(t, "https://acme.example", company.Website)
}

func TestGetApplication_NotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.GetApplication("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateApplication(t *testing.T) {
	s := testStore(t)

	app, _, err := s.CreateApplication(ApplicationInput{Title: "Engineer", CompanyName: "Acme"})
	require.NoError(t, err)

	updated, err := s.UpdateApplication(app.ID, ApplicationInput{
		Status:   models.StatusInterview,
		Location: "Remote",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInterview, updated.Status)
	assert.Equal(t, "Remote", updated.Location)
	// Untouched fields survive.
	assert.Equal(t, "Engineer", updated.Title)
	assert.Equal(t, "Acme", updated.CompanyName())
}

func TestUpdateApplication_CompanyChange(t *testing.T) {
	s := testStore(t)

	app, _, err := s.CreateApplication(ApplicationInput{Title: "Engineer", CompanyName: "Acme"})
	require.NoError(t, err)
	oldCompanyID := app.CompanyID

	updated, err := s.UpdateApplication(app.ID, ApplicationInput{CompanyName: "Globex"})
	require.NoError(t, err)
	assert.NotEqual(t, oldCompanyID, updated.CompanyID)
	assert.Equal(t, "Globex", updated.CompanyName())

	// A case-only respelling of the current company is not a change.
	same, err := s.UpdateApplication(app.ID, ApplicationInput{CompanyName: "GLOBEX"})
	require.NoError(t, err)
	assert.Equal(t, updated.CompanyID, same.CompanyID)

	// The orphaned company record stays.
	var count int64
	require.NoError(t, s.Model(&models.Company{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestDeleteApplication(t *testing.T) {
	s := testStore(t)

	app, _, err := s.CreateApplication(ApplicationInput{Title: "Engineer", CompanyName: "Acme"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteApplication(app.ID))

	_, err = s.GetApplication(app.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = s.DeleteApplication(app.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListApplications_FilterAndSearch(t *testing.T) {
	s := testStore(t)

	_, _, err := s.CreateApplication(ApplicationInput{Title: "Backend Engineer", CompanyName: "Acme", Status: models.StatusInterview})
	require.NoError(t, err)
	_, _, err = s.CreateApplication(ApplicationInput{Title: "Frontend Engineer", CompanyName: "Globex", Location: "Berlin"})
	require.NoError(t, err)
	_, _, err = s.CreateApplication(ApplicationInput{Title: "Data Scientist", CompanyName: "Initech"})
	require.NoError(t, err)

	byStatus, err := s.ListApplications(ListQuery{Status: models.StatusInterview})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Backend Engineer", byStatus[0].Title)

	// Search is case-insensitive across title, company, and location.
	byTitle, err := s.ListApplications(ListQuery{Search: "ENGINEER"})
	require.NoError(t, err)
	assert.Len(t, byTitle, 2)

	byCompany, err := s.ListApplications(ListQuery{Search: "globex"})
	require.NoError(t, err)
	require.Len(t, byCompany, 1)
	assert.Equal(t, "Frontend Engineer", byCompany[0].Title)

	byLocation, err := s.ListApplications(ListQuery{Search: "berlin"})
	require.NoError(t, err)
	assert.Len(t, byLocation, 1)
}

func TestListApplications_SortAndPaginate(t *testing.T) {
	s := testStore(t)

	for _, title := range []string{"Charlie", "alpha", "Bravo"} {
		_, _, err := s.CreateApplication(ApplicationInput{Title: title, CompanyName: title + " Co"})
		require.NoError(t, err)
	}

	asc, err := s.ListApplications(ListQuery{SortBy: SortByTitle, Ascending: true})
	require.NoError(t, err)
	require.Len(t, asc, 3)
	// Case-insensitive collation.
	assert.Equal(t, "alpha", asc[0].Title)
	assert.Equal(t, "Bravo", asc[1].Title)
	assert.Equal(t, "Charlie", asc[2].Title)

	page, err := s.ListApplications(ListQuery{SortBy: SortByTitle, Ascending: true, Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Bravo", page[0].Title)

	count, err := s.CountApplications()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestListApplications_SameDayInsertionOrder(t *testing.T) {
	s := testStore(t)

	day := time.Now()
	first, _, err := s.CreateApplication(ApplicationInput{Title: "First", CompanyName: "Acme", AppliedDate: day})
	require.NoError(t, err)
	second, _, err := s.CreateApplication(ApplicationInput{Title: "Second", CompanyName: "Acme", AppliedDate: day})
	require.NoError(t, err)

	apps, err := s.ListApplications(ListQuery{})
	require.NoError(t, err)
	require.Len(t, apps, 2)
	// Same applied-date ties break by insertion order.
	assert.Equal(t, first.ID, apps[0].ID)
	assert.Equal(t, second.ID, apps[1].ID)
}
