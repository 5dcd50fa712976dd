package scrape

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/rosterwatch/internal/domain"
	"github.com/jonesrussell/rosterwatch/internal/identity"
	"github.com/jonesrussell/rosterwatch/internal/logger"
)

// SigneesExtractor scrapes a college's incoming-commitments listing.
type SigneesExtractor struct {
	baseURL string
	season  string
	logger  logger.Interface
}

// NewSigneesExtractor creates a new signees extractor.
func NewSigneesExtractor(baseURL, season string, log logger.Interface) *SigneesExtractor {
	return &SigneesExtractor{
		baseURL: baseURL,
		season:  season,
		logger:  log.WithComponent("signees"),
	}
}

// Name identifies the extractor.
func (e *SigneesExtractor) Name() string { return "signees" }

// Extract scrapes the commits listing into candidate records. A page with
// the "no results" marker yields an empty sequence.
func (e *SigneesExtractor) Extract(ctx context.Context, college *domain.College, page Page) ([]*domain.Player, error) {
	if err := page.Navigate(ctx, CommitsURL(e.baseURL, college.CollegeID, e.season)); err != nil {
		return nil, err
	}

	noResults, err := page.Exists(ctx, selNoResults)
	if err != nil {
		return nil, err
	}
	if noResults {
		e.logger.Debug("No signees listed", "college", college.CollegeID)
		return nil, nil
	}

	doc, err := parseDocument(ctx, page)
	if err != nil {
		return nil, err
	}

	var players []*domain.Player
	var rowErr error
	doc.Find(selSigneeRow).EachWithBreak(func(i int, row *goquery.Selection) bool {
		player, err := e.extractRow(ctx, college, page, row, i)
		if err != nil {
			rowErr = err
			return false
		}
		players = append(players, player)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return players, nil
}

// extractRow builds one candidate record from a commits row.
func (e *SigneesExtractor) extractRow(
	ctx context.Context,
	college *domain.College,
	page Page,
	row *goquery.Selection,
	index int,
) (*domain.Player, error) {
	name, err := selectionText(row, selSigneeName)
	if err != nil {
		return nil, err
	}
	position, err := selectionText(row, selSigneePosition)
	if err != nil {
		return nil, err
	}
	status, err := selectionText(row, selSigneeStatus)
	if err != nil {
		return nil, err
	}

	// High school sits before the "(city, state)" suffix of a composite field.
	school, err := selectionText(row, selSigneeSchool)
	if err != nil {
		return nil, err
	}
	highSchool := strings.TrimSpace(strings.SplitN(school, "(", 2)[0])

	natRankText, err := selectionText(row, selSigneeNatRank)
	if err != nil {
		return nil, err
	}
	var nationalRating *int
	if rank, convErr := strconv.Atoi(natRankText); convErr == nil {
		nationalRating = &rank
	}

	stars := row.Find(selSigneeStars).Length()

	href, _ := row.Find(selSigneeName).First().Attr("href")
	playerPage := absoluteProfileURL(e.baseURL, href)

	player := &domain.Player{
		PlayerID:         identity.PlayerID(playerPage, name),
		Name:             name,
		Position:         &position,
		Status:           &status,
		StarRating:       &stars,
		NationalRating:   nationalRating,
		CurrentCollegeID: &college.CollegeID,
		NewCollegeID:     &college.CollegeID,
	}
	if highSchool != "" {
		player.HighSchool = &highSchool
	}
	if playerPage != "" {
		player.PlayerPage = &playerPage
	}

	image, imgErr := waitForImage(ctx, page, func(ctx context.Context) (string, error) {
		return page.AttrNth(ctx, selSigneeRow, index, selSigneeImage, "src")
	})
	switch {
	case imgErr == nil:
		player.Image = &image
	case errors.Is(imgErr, ErrImageNotLoaded):
		e.logger.Warn("Image never loaded", "player", name, "college", college.CollegeID)
	default:
		return nil, imgErr
	}

	return player, nil
}
