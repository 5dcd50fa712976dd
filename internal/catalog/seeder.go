// Package catalog seeds and inspects the college catalog.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonesrussell/rosterwatch/internal/database"
	"github.com/jonesrussell/rosterwatch/internal/domain"
	"github.com/jonesrussell/rosterwatch/internal/logger"
)

// School is one catalog entry in the conferences file.
type School struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Logo string `json:"logo,omitempty"`
}

// Conferences maps a conference abbreviation to its schools.
type Conferences map[string][]School

// LoadConferences reads a conferences JSON file.
func LoadConferences(path string) (Conferences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read conferences file: %w", err)
	}

	var conferences Conferences
	if err := json.Unmarshal(data, &conferences); err != nil {
		return nil, fmt.Errorf("failed to parse conferences file: %w", err)
	}

	return conferences, nil
}

// CollegeStore is the catalog persistence surface the seeder consumes.
type CollegeStore interface {
	GetByID(ctx context.Context, collegeID string) (*domain.College, error)
	Insert(ctx context.Context, college *domain.College) error
}

// Seeder inserts cataloged colleges that are not yet stored. Existing
// colleges are left untouched; seeding is idempotent.
type Seeder struct {
	colleges CollegeStore
	logger   logger.Interface
}

// NewSeeder creates a new catalog seeder.
func NewSeeder(colleges CollegeStore, log logger.Interface) *Seeder {
	return &Seeder{
		colleges: colleges,
		logger:   log.WithComponent("catalog"),
	}
}

// Seed inserts every school from the conferences map that is not already
// in the catalog. Returns the number of colleges inserted.
func (s *Seeder) Seed(ctx context.Context, conferences Conferences) (int, error) {
	inserted := 0

	for conference, schools := range conferences {
		for _, school := range schools {
			_, err := s.colleges.GetByID(ctx, school.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, database.ErrCollegeNotFound) {
				return inserted, err
			}

			s.logger.Info("Inserting college", "college", school.Name, "conference", conference)

			college := &domain.College{
				CollegeID:      school.ID,
				Name:           school.Name,
				Conference:     conference,
				FullConference: domain.StrPtr(domain.ConferenceFullName(conference)),
			}
			if school.Logo != "" {
				college.Logo = &school.Logo
			}

			if err := s.colleges.Insert(ctx, college); err != nil {
				return inserted, err
			}
			inserted++
		}
	}

	return inserted, nil
}
