package scrape

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/rosterwatch/internal/domain"
	"github.com/jonesrussell/rosterwatch/internal/identity"
	"github.com/jonesrussell/rosterwatch/internal/logger"
)

// Roster heading format: a fixed prefix and a fixed " Roster"-style suffix
// wrap the canonical team name.
const (
	headingPrefixLen = 5
	headingSuffixLen = 18
)

// highSchoolSentinel marks an absent high school in the roster table.
const highSchoolSentinel = "-"

// CollegeWriter persists the canonical team name recovered from the roster
// heading. The roster extractor is the only extractor with a write side
// effect beyond yielding records.
type CollegeWriter interface {
	UpdateTeamName(ctx context.Context, collegeID, teamName string) error
}

// RosterExtractor scrapes a college's roster listing.
type RosterExtractor struct {
	baseURL  string
	colleges CollegeWriter
	logger   logger.Interface
}

// NewRosterExtractor creates a new roster extractor.
func NewRosterExtractor(baseURL string, colleges CollegeWriter, log logger.Interface) *RosterExtractor {
	return &RosterExtractor{
		baseURL:  baseURL,
		colleges: colleges,
		logger:   log.WithComponent("roster"),
	}
}

// Name identifies the extractor.
func (e *RosterExtractor) Name() string { return "roster" }

// Extract navigates the roster hub's team nav to the college's roster
// listing and walks its paired name/data table rows.
func (e *RosterExtractor) Extract(ctx context.Context, college *domain.College, page Page) ([]*domain.Player, error) {
	if err := page.Navigate(ctx, RosterHubURL(e.baseURL)); err != nil {
		return nil, err
	}

	hubDoc, err := parseDocument(ctx, page)
	if err != nil {
		return nil, err
	}

	link, err := e.findRosterLink(hubDoc, college.Name)
	if err != nil {
		return nil, err
	}

	if err := page.Navigate(ctx, link); err != nil {
		return nil, err
	}

	if err := e.persistTeamName(ctx, page, college); err != nil {
		return nil, err
	}

	doc, err := parseDocument(ctx, page)
	if err != nil {
		return nil, err
	}

	// The table renders two tbody containers: one of name rows, one of data
	// rows, paired by their data-row attribute.
	numPlayers := doc.Find(selRosterRows).Length() / 2

	var players []*domain.Player
	for i := 0; i < numPlayers; i++ {
		nameRow := doc.Find(fmt.Sprintf(`%s [data-row="%d"]`, selNameContainer, i))
		dataRow := doc.Find(fmt.Sprintf(`%s [data-row="%d"]`, selDataContainer, i))
		if nameRow.Length() == 0 || dataRow.Length() == 0 {
			continue
		}

		player, rowErr := e.extractRow(ctx, college, page, nameRow, dataRow, link)
		if rowErr != nil {
			return nil, rowErr
		}
		players = append(players, player)
	}

	return players, nil
}

// findRosterLink locates the college's roster URL in the hub's team nav.
func (e *RosterExtractor) findRosterLink(doc *goquery.Document, collegeName string) (string, error) {
	if doc.Find(selTeamNav).Length() == 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingField, selTeamNav)
	}

	var link string
	doc.Find(selTeamNavLinks).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if strings.TrimSpace(a.Text()) == collegeName {
			link = strings.TrimSpace(a.AttrOr("href", ""))
			return false
		}
		return true
	})
	if link == "" {
		return "", fmt.Errorf("%w: %s", ErrCollegeLinkNotFound, collegeName)
	}

	return absoluteProfileURL(e.baseURL, link), nil
}

// persistTeamName recovers the canonical team display name from the stats
// heading and writes it back onto the college record.
func (e *RosterExtractor) persistTeamName(ctx context.Context, page Page, college *domain.College) error {
	heading, err := page.Text(ctx, selRosterHeading)
	if err != nil {
		return err
	}

	teamName := trimHeading(heading)
	if teamName == "" {
		e.logger.Warn("Unexpected roster heading shape", "heading", heading, "college", college.CollegeID)
		return nil
	}

	e.logger.Info("Updating team name", "college", college.CollegeID, "team_name", teamName)
	return e.colleges.UpdateTeamName(ctx, college.CollegeID, teamName)
}

// extractRow builds one candidate record from a paired roster row.
func (e *RosterExtractor) extractRow(
	ctx context.Context,
	college *domain.College,
	page Page,
	nameRow, dataRow *goquery.Selection,
	listingURL string,
) (*domain.Player, error) {
	name, err := selectionText(nameRow, "td")
	if err != nil {
		return nil, err
	}
	position, err := selectionText(dataRow, "td:nth-child(2)")
	if err != nil {
		return nil, err
	}
	school, err := selectionText(dataRow, "td:nth-child(7)")
	if err != nil {
		return nil, err
	}

	stars := dataRow.Find(selRosterStars).Length()
	status := domain.StatusSigned

	var playerPage string
	if a := nameRow.Find("a").First(); a.Length() > 0 {
		playerPage = absoluteProfileURL(e.baseURL, a.AttrOr("href", ""))
	}

	player := &domain.Player{
		PlayerID:         identity.PlayerID(playerPage, name),
		Name:             name,
		Position:         &position,
		Status:           &status,
		StarRating:       &stars,
		CurrentCollegeID: &college.CollegeID,
	}
	if school != highSchoolSentinel && school != "" {
		player.HighSchool = &school
	}
	if playerPage != "" {
		player.PlayerPage = &playerPage

		image, imgErr := e.fetchProfileImage(ctx, page, playerPage, listingURL)
		if imgErr == nil && image != "" {
			player.Image = &image
		} else if imgErr != nil {
			// A missing photo is not worth failing the college over.
			e.logger.Warn("Failed to fetch profile image", "player", name, "error", imgErr)
		}
	}

	return player, nil
}

// fetchProfileImage visits the player's profile page for a photo, then
// returns to the roster listing.
func (e *RosterExtractor) fetchProfileImage(ctx context.Context, page Page, profileURL, listingURL string) (string, error) {
	if err := page.Navigate(ctx, profileURL); err != nil {
		return "", err
	}

	image, imgErr := waitForImage(ctx, page, func(ctx context.Context) (string, error) {
		return page.AttrNth(ctx, selProfileImage, 0, "", "src")
	})

	if err := page.Navigate(ctx, listingURL); err != nil {
		return "", err
	}
	if imgErr != nil && !errors.Is(imgErr, ErrImageNotLoaded) {
		return "", imgErr
	}
	return image, imgErr
}

// trimHeading strips the fixed prefix and suffix around the team name in
// the stats heading.
func trimHeading(heading string) string {
	runes := []rune(strings.TrimSpace(heading))
	if len(runes) <= headingPrefixLen+headingSuffixLen {
		return ""
	}
	return strings.TrimSpace(string(runes[headingPrefixLen : len(runes)-headingSuffixLen]))
}
