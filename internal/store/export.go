package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"gorm.io/gorm/clause"

	"github.com/ethantsaox/jobflow/internal/models"
)

// ExportVersion tags exported documents.
const ExportVersion = 1

// ExportDocument is the single JSON document holding all collections.
type ExportDocument struct {
	Version      int                     `json:"version"`
	ExportedAt   time.Time               `json:"exported_at"`
	User         *models.User            `json:"user"`
	Applications []models.JobApplication `json:"applications"`
	Companies    []models.Company        `json:"companies"`
	Streaks      []models.Streak         `json:"streaks"`
	Achievements []models.Achievement    `json:"achievements"`
}

// Export collects every collection into one document.
func (s *Store) Export() (*ExportDocument, error) {
	user, err := s.GetUser()
	if err != nil {
		return nil, err
	}
	apps, err := s.ListApplications(ListQuery{Ascending: true})
	if err != nil {
		return nil, err
	}
	var companies []models.Company
	if err := s.Find(&companies).Error; err != nil {
		return nil, storageErr("list companies", err)
	}
	streaks, err := s.ListStreaks()
	if err != nil {
		return nil, err
	}
	achievements, err := s.ListAchievements()
	if err != nil {
		return nil, err
	}

	return &ExportDocument{
		Version:      ExportVersion,
		ExportedAt:   time.Now(),
		User:         user,
		Applications: apps,
		Companies:    companies,
		Streaks:      streaks,
		Achievements: achievements,
	}, nil
}

// WriteJSON writes the document as indented JSON.
func (d *ExportDocument) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Import replaces local collections with the document's contents.
// Validation happens up front: a missing version tag or user record aborts
// the whole import before anything is overwritten. After validation passes,
// collections are written independently.
func (s *Store) Import(doc *ExportDocument) error {
	if doc == nil || doc.Version == 0 {
		return fmt.Errorf("%w: missing version tag", ErrInvalidImport)
	}
	if doc.Version > ExportVersion {
		return fmt.Errorf("%w: version %d is newer than supported %d", ErrInvalidImport, doc.Version, ExportVersion)
	}
	if doc.User == nil || doc.User.ID == "" {
		return fmt.Errorf("%w: missing user record", ErrInvalidImport)
	}

	if err := replaceCollection(s, []models.User{*doc.User}); err != nil {
		return err
	}
	if err := replaceCollection(s, doc.Companies); err != nil {
		return err
	}
	if err := replaceCollection(s, doc.Applications); err != nil {
		return err
	}
	if err := replaceCollection(s, doc.Streaks); err != nil {
		return err
	}
	if err := replaceCollection(s, doc.Achievements); err != nil {
		return err
	}
	return nil
}

// replaceCollection deletes every row of T and inserts rows in its place.
// Each collection swap commits on its own.
func replaceCollection[T any](s *Store, rows []T) error {
	return s.Transaction(func(tx *Store) error {
		var model T
		if err := tx.Where("1 = 1").Delete(&model).Error; err != nil {
			return storageErr("clear collection", err)
		}
		if len(rows) == 0 {
			return nil
		}
		// Associations are exported as their own collections; writing them
		// here again would collide with the rows already inserted.
		if err := tx.Omit(clause.Associations).CreateInBatches(rows, 100).Error; err != nil {
			return storageErr("write collection", err)
		}
		return nil
	})
}

// ReadExportDocument parses an export document from r. A document that is
// not valid JSON reads as an invalid import.
func ReadExportDocument(r io.Reader) (*ExportDocument, error) {
	var doc ExportDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	return &doc, nil
}

// ExportCSV writes all applications as CSV, newest first.
func (s *Store) ExportCSV(w io.Writer) error {
	apps, err := s.ListApplications(ListQuery{})
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"Title", "Company", "Location", "Status", "Applied Date", "Salary Min", "Salary Max", "Source", "Notes"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, app := range apps {
		record := []string{
			app.Title,
			app.CompanyName(),
			app.Location,
			app.Status,
			app.AppliedDate.Format("2006-01-02"),
			formatSalary(app.SalaryMin),
			formatSalary(app.SalaryMax),
			app.SourcePlatform,
			app.Notes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatSalary(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
