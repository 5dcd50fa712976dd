package common

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/rosterwatch/internal/browser"
	"github.com/jonesrussell/rosterwatch/internal/database"
	"github.com/jonesrussell/rosterwatch/internal/identity"
	"github.com/jonesrussell/rosterwatch/internal/refresh"
	"github.com/jonesrussell/rosterwatch/internal/scrape"
)

// Repositories bundles the store repositories commands work with.
type Repositories struct {
	DB       *sqlx.DB
	Colleges *database.CollegeRepository
	Players  *database.PlayerRepository
}

// OpenRepositories connects to the database and builds the repositories.
func OpenRepositories(deps *CommandDeps) (*Repositories, error) {
	db, err := database.NewPostgresConnection(database.Config{
		Host:     deps.Config.Database.Host,
		Port:     deps.Config.Database.Port,
		User:     deps.Config.Database.User,
		Password: deps.Config.Database.Password,
		DBName:   deps.Config.Database.DBName,
		SSLMode:  deps.Config.Database.SSLMode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repositories{
		DB:       db,
		Colleges: database.NewCollegeRepository(db),
		Players:  database.NewPlayerRepository(db),
	}, nil
}

// Close releases the database connection.
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// BuildRefresher wires the browser session, extractors, and stores into a
// ready-to-run refresher. The returned cleanup closes the browser session.
func BuildRefresher(deps *CommandDeps, repos *Repositories) (*refresh.Refresher, func(), error) {
	session, err := browser.NewSession(browser.Config{
		Headless:       deps.Config.Browser.Headless,
		UserAgent:      deps.Config.Browser.UserAgent,
		ViewportWidth:  deps.Config.Browser.ViewportWidth,
		ViewportHeight: deps.Config.Browser.ViewportHeight,
		NavTimeout:     deps.Config.Browser.NavTimeout,
	}, deps.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start browser: %w", err)
	}

	resolver := identity.NewCollegeResolver(repos.Colleges)
	baseURL := deps.Config.Refresh.BaseURL
	season := deps.Config.Refresh.Season

	extractors := []scrape.Extractor{
		scrape.NewRosterExtractor(baseURL, repos.Colleges, deps.Logger),
		scrape.NewSigneesExtractor(baseURL, season, deps.Logger),
		scrape.NewTransfersExtractor(baseURL, season, resolver, deps.Logger),
	}

	refresher := refresh.NewRefresher(
		repos.Colleges,
		repos.Players,
		extractors,
		func() (scrape.Page, func()) {
			page := session.NewPage()
			return page, page.Close
		},
		deps.Config.Refresh.ManifestDir,
		deps.Logger,
	)

	return refresher, session.Close, nil
}
