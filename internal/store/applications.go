package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ethantsaox/jobflow/internal/models"
)

// ApplicationInput carries the caller-supplied fields for creating or
// updating a job application. CompanyName is resolved to a Company record
// with case-insensitive deduplication.
type ApplicationInput struct {
	Title          string
	CompanyName    string
	CompanyWebsite string
	Status         string
	AppliedDate    time.Time // zero means now
	Location       string
	SalaryMin      float64
	SalaryMax      float64
	Notes          string
	SourceURL      string
	SourcePlatform string
}

// CreateApplication creates an application, resolving its company and then
// running streak maintenance and achievement evaluation in one transaction.
// It returns the stored application plus any achievements unlocked by it.
func (s *Store) CreateApplication(in ApplicationInput) (*models.JobApplication, []models.Achievement, error) {
	now := time.Now()
	applied := in.AppliedDate
	if applied.IsZero() {
		applied = now
	}
	status := in.Status
	if status == "" {
		status = models.StatusApplied
	}

	app := &models.JobApplication{
		ID:             uuid.New().String(),
		Title:          in.Title,
		Status:         status,
		AppliedDate:    dateOf(applied),
		Location:       in.Location,
		SalaryMin:      in.SalaryMin,
		SalaryMax:      in.SalaryMax,
		Notes:          in.Notes,
		SourceURL:      in.SourceURL,
		SourcePlatform: in.SourcePlatform,
	}

	var unlocked []models.Achievement
	err := s.Transaction(func(tx *Store) error {
		company, err := tx.getOrCreateCompany(in.CompanyName, in.CompanyWebsite)
		if err != nil {
			return err
		}
		app.CompanyID = company.ID
		app.Company = company

		if err := tx.Omit(clause.Associations).Create(app).Error; err != nil {
			return storageErr("create application", err)
		}

		if err := tx.updateStreak(now); err != nil {
			return err
		}

		unlocked, err = tx.evaluateAchievements(now)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return app, unlocked, nil
}

// getOrCreateCompany looks a company up by name, case-insensitively.
// A miss creates the record; a hit may enrich an empty website field.
func (s *Store) getOrCreateCompany(name, website string) (*models.Company, error) {
	trimmed := strings.TrimSpace(name)

	var company models.Company
	err := s.First(&company, "LOWER(name) = LOWER(?)", trimmed).Error
	if err == nil {
		if company.Website == "" && website != "" {
			company.Website = website
			if err := s.Save(&company).Error; err != nil {
				return nil, storageErr("enrich company", err)
			}
		}
		return &company, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr("lookup company", err)
	}

	company = models.Company{
		ID:      uuid.New().String(),
		Name:    trimmed,
		Website: website,
	}
	if err := s.Create(&company).Error; err != nil {
		return nil, storageErr("create company", err)
	}
	return &company, nil
}

// GetApplication retrieves an application by id with its company loaded.
func (s *Store) GetApplication(id string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := s.Preload("Company").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("application %s: %w", id, ErrNotFound)
		}
		return nil, storageErr("get application", err)
	}
	return &app, nil
}

// UpdateApplication applies in to an existing application. A changed company
// name re-resolves the company (dedup rules apply). The applied-date is the
// only field feeding derived temporal state; updating it does not rerun
// streak maintenance retroactively.
func (s *Store) UpdateApplication(id string, in ApplicationInput) (*models.JobApplication, error) {
	app, err := s.GetApplication(id)
	if err != nil {
		return nil, err
	}

	err = s.Transaction(func(tx *Store) error {
		if in.CompanyName != "" && !strings.EqualFold(in.CompanyName, app.CompanyName()) {
			company, err := tx.getOrCreateCompany(in.CompanyName, in.CompanyWebsite)
			if err != nil {
				return err
			}
			app.CompanyID = company.ID
			app.Company = company
		}
		if in.Title != "" {
			app.Title = in.Title
		}
		if in.Status != "" {
			app.Status = in.Status
		}
		if !in.AppliedDate.IsZero() {
			app.AppliedDate = dateOf(in.AppliedDate)
		}
		if in.Location != "" {
			app.Location = in.Location
		}
		if in.SalaryMin > 0 {
			app.SalaryMin = in.SalaryMin
		}
		if in.SalaryMax > 0 {
			app.SalaryMax = in.SalaryMax
		}
		if in.Notes != "" {
			app.Notes = in.Notes
		}
		if in.SourceURL != "" {
			app.SourceURL = in.SourceURL
		}
		if in.SourcePlatform != "" {
			app.SourcePlatform = in.SourcePlatform
		}

		if err := tx.Omit(clause.Associations).Save(app).Error; err != nil {
			return storageErr("update application", err)
		}
		// Status edits can unlock interview/offer achievements.
		_, err := tx.evaluateAchievements(time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

// DeleteApplication removes an application permanently. The company record
// is left in place even if orphaned.
func (s *Store) DeleteApplication(id string) error {
	res := s.Delete(&models.JobApplication{}, "id = ?", id)
	if res.Error != nil {
		return storageErr("delete application", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("application %s: %w", id, ErrNotFound)
	}
	return nil
}

// Sort keys accepted by ListApplications.
const (
	SortByDate    = "date"
	SortByCompany = "company"
	SortByTitle   = "title"
	SortByStatus  = "status"
)

// ListQuery describes filtering, searching, sorting, and pagination for
// ListApplications. The zero value lists everything, newest first.
type ListQuery struct {
	Status    string // exact status filter
	Search    string // free text over title, company name, location
	SortBy    string // date (default), company, title, status
	Ascending bool
	Offset    int
	Limit     int // 0 means no limit
}

// ListApplications returns applications matching q, with companies loaded.
// Ordering is deterministic: the sort key plus an insertion-order tie-break.
func (s *Store) ListApplications(q ListQuery) ([]models.JobApplication, error) {
	tx := s.Model(&models.JobApplication{}).
		Joins("LEFT JOIN companies ON companies.id = job_applications.company_id").
		Preload("Company")

	if q.Status != "" {
		tx = tx.Where("job_applications.status = ?", q.Status)
	}
	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where(
			"LOWER(job_applications.title) LIKE ? OR LOWER(companies.name) LIKE ? OR LOWER(job_applications.location) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	dir := "DESC"
	if q.Ascending {
		dir = "ASC"
	}
	var key string
	switch q.SortBy {
	case SortByCompany:
		key = "companies.name COLLATE NOCASE"
	case SortByTitle:
		key = "job_applications.title COLLATE NOCASE"
	case SortByStatus:
		key = "job_applications.status"
	case SortByDate, "":
		key = "job_applications.applied_date"
	default:
		key = "job_applications.applied_date"
	}
	tx = tx.Order(key + " " + dir).
		Order("job_applications.created_at ASC").
		Order("job_applications.id ASC")

	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var apps []models.JobApplication
	if err := tx.Find(&apps).Error; err != nil {
		return nil, storageErr("list applications", err)
	}
	return apps, nil
}

// CountApplications returns the total number of stored applications.
func (s *Store) CountApplications() (int64, error) {
	var count int64
	if err := s.Model(&models.JobApplication{}).Count(&count).Error; err != nil {
		return 0, storageErr("count applications", err)
	}
	return count, nil
}
