package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/rosterwatch/internal/database"
	"github.com/jonesrussell/rosterwatch/internal/domain"
)

// collegeColumns lists the columns returned by college SELECT queries.
var collegeColumns = []string{
	"id", "college_id", "name", "logo", "conference", "full_conference", "team_name", "last_update",
}

func newCollegeRepo(t *testing.T) (*database.CollegeRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	db := sqlx.NewDb(mockDB, "postgres")
	repo := database.NewCollegeRepository(db)

	return repo, mock, func() { mockDB.Close() }
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCollegeRepository_Insert(t *testing.T) {
	repo, mock, cleanup := newCollegeRepo(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO colleges").
		WithArgs("vermont", "Vermont", "https://cdn.example/vermont.png", "a-east", "America East").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	college := &domain.College{
		CollegeID:      "vermont",
		Name:           "Vermont",
		Logo:           domain.StrPtr("https://cdn.example/vermont.png"),
		Conference:     "a-east",
		FullConference: domain.StrPtr("America East"),
	}
	if err := repo.Insert(context.Background(), college); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if college.ID != 7 {
		t.Errorf("expected ID=7, got %d", college.ID)
	}

	expectationsMet(t, mock)
}

func TestCollegeRepository_GetByID(t *testing.T) {
	repo, mock, cleanup := newCollegeRepo(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .+ FROM colleges WHERE college_id").
		WithArgs("vermont").
		WillReturnRows(
			sqlmock.NewRows(collegeColumns).AddRow(
				1, "vermont", "Vermont", nil, "a-east", "America East", "Vermont Catamounts", now,
			),
		)

	college, err := repo.GetByID(context.Background(), "vermont")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if college.Name != "Vermont" {
		t.Errorf("expected Name=Vermont, got %s", college.Name)
	}
	if college.Logo != nil {
		t.Errorf("expected Logo=nil, got %v", *college.Logo)
	}
	if college.TeamName == nil || *college.TeamName != "Vermont Catamounts" {
		t.Errorf("expected TeamName=Vermont Catamounts, got %v", college.TeamName)
	}
	if college.LastUpdate == nil {
		t.Error("expected LastUpdate to be non-nil")
	}

	expectationsMet(t, mock)
}

func TestCollegeRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := newCollegeRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .+ FROM colleges WHERE college_id").
		WithArgs("nowhere").
		WillReturnRows(sqlmock.NewRows(collegeColumns))

	_, err := repo.GetByID(context.Background(), "nowhere")
	if !errors.Is(err, database.ErrCollegeNotFound) {
		t.Errorf("expected ErrCollegeNotFound, got %v", err)
	}

	expectationsMet(t, mock)
}

func TestCollegeRepository_GetByName(t *testing.T) {
	repo, mock, cleanup := newCollegeRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .+ FROM colleges WHERE name").
		WithArgs("Vermont").
		WillReturnRows(
			sqlmock.NewRows(collegeColumns).AddRow(
				1, "vermont", "Vermont", nil, "a-east", "America East", nil, nil,
			),
		)

	college, err := repo.GetByName(context.Background(), "Vermont")
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if college.CollegeID != "vermont" {
		t.Errorf("expected CollegeID=vermont, got %s", college.CollegeID)
	}

	expectationsMet(t, mock)
}

func TestCollegeRepository_List(t *testing.T) {
	repo, mock, cleanup := newCollegeRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .+ FROM colleges ORDER BY name").
		WillReturnRows(
			sqlmock.NewRows(collegeColumns).
				AddRow(1, "purdue", "Purdue", nil, "bigten", "Big Ten", nil, nil).
				AddRow(2, "vermont", "Vermont", nil, "a-east", "America East", nil, nil),
		)

	colleges, err := repo.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(colleges) != 2 {
		t.Fatalf("expected 2 colleges, got %d", len(colleges))
	}
	if colleges[0].CollegeID != "purdue" {
		t.Errorf("expected first college purdue, got %s", colleges[0].CollegeID)
	}

	expectationsMet(t, mock)
}

func TestCollegeRepository_List_ConferenceFilter(t *testing.T) {
	repo, mock, cleanup := newCollegeRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .+ FROM colleges WHERE conference").
		WithArgs("Big Ten").
		WillReturnRows(
			sqlmock.NewRows(collegeColumns).
				AddRow(1, "purdue", "Purdue", nil, "Big Ten", "Big Ten", nil, nil),
		)

	colleges, err := repo.List(context.Background(), "Big Ten")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(colleges) != 1 {
		t.Fatalf("expected 1 college, got %d", len(colleges))
	}

	expectationsMet(t, mock)
}

func TestCollegeRepository_UpdateTeamName(t *testing.T) {
	repo, mock, cleanup := newCollegeRepo(t)
	defer cleanup()

	mock.ExpectExec("UPDATE colleges SET team_name").
		WithArgs("Vermont Catamounts", "vermont").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateTeamName(context.Background(), "vermont", "Vermont Catamounts"); err != nil {
		t.Fatalf("UpdateTeamName() error = %v", err)
	}

	expectationsMet(t, mock)
}

func TestCollegeRepository_UpdateTeamName_NotFound(t *testing.T) {
	repo, mock, cleanup := newCollegeRepo(t)
	defer cleanup()

	mock.ExpectExec("UPDATE colleges SET team_name").
		WithArgs("Nowhere State", "nowhere").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTeamName(context.Background(), "nowhere", "Nowhere State")
	if !errors.Is(err, database.ErrCollegeNotFound) {
		t.Errorf("expected ErrCollegeNotFound, got %v", err)
	}

	expectationsMet(t, mock)
}

func TestCollegeRepository_TouchLastUpdate(t *testing.T) {
	repo, mock, cleanup := newCollegeRepo(t)
	defer cleanup()

	at := time.Now()
	mock.ExpectExec("UPDATE colleges SET last_update").
		WithArgs(at, "vermont").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.TouchLastUpdate(context.Background(), "vermont", at); err != nil {
		t.Fatalf("TouchLastUpdate() error = %v", err)
	}

	expectationsMet(t, mock)
}
