package scrape

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/rosterwatch/internal/database"
	"github.com/jonesrussell/rosterwatch/internal/domain"
	"github.com/jonesrussell/rosterwatch/internal/identity"
	"github.com/jonesrussell/rosterwatch/internal/logger"
)

// Transfer group positions on the portal page. The page exposes exactly
// two groups in a fixed order.
const (
	incomingGroup = 0
	outgoingGroup = 1
)

// CollegeResolver resolves a scraped college name to a catalog identifier.
type CollegeResolver interface {
	ResolveByName(ctx context.Context, name string) (string, error)
}

var _ CollegeResolver = (*identity.CollegeResolver)(nil)

// TransfersExtractor scrapes a college's transfer-portal listing, yielding
// incoming rows followed by outgoing rows.
type TransfersExtractor struct {
	baseURL  string
	season   string
	resolver CollegeResolver
	logger   logger.Interface
}

// NewTransfersExtractor creates a new transfers extractor.
func NewTransfersExtractor(baseURL, season string, resolver CollegeResolver, log logger.Interface) *TransfersExtractor {
	return &TransfersExtractor{
		baseURL:  baseURL,
		season:   season,
		resolver: resolver,
		logger:   log.WithComponent("transfers"),
	}
}

// Name identifies the extractor.
func (e *TransfersExtractor) Name() string { return "transfers" }

// Extract scrapes the transfer portal. Absence of either group is a hard
// failure for the college, not a silent skip.
func (e *TransfersExtractor) Extract(ctx context.Context, college *domain.College, page Page) ([]*domain.Player, error) {
	if err := page.Navigate(ctx, TransferPortalURL(e.baseURL, college.CollegeID, e.season)); err != nil {
		return nil, err
	}

	groupCount, err := page.Count(ctx, selTransferGroup)
	if err != nil {
		return nil, err
	}
	if groupCount < 2 {
		return nil, fmt.Errorf("%w: found %d", ErrMissingTransferGroups, groupCount)
	}

	doc, err := parseDocument(ctx, page)
	if err != nil {
		return nil, err
	}
	groups := doc.Find(selTransferGroup)

	var players []*domain.Player

	incoming, err := e.extractGroup(ctx, college, page, groups.Eq(incomingGroup), incomingGroup)
	if err != nil {
		return nil, err
	}
	players = append(players, incoming...)

	outgoing, err := e.extractGroup(ctx, college, page, groups.Eq(outgoingGroup), outgoingGroup)
	if err != nil {
		return nil, err
	}
	players = append(players, outgoing...)

	return players, nil
}

// extractGroup walks the rows of one transfer group.
func (e *TransfersExtractor) extractGroup(
	ctx context.Context,
	college *domain.College,
	page Page,
	group *goquery.Selection,
	groupIndex int,
) ([]*domain.Player, error) {
	var players []*domain.Player
	var rowErr error

	group.Find(selTransferRow).EachWithBreak(func(i int, row *goquery.Selection) bool {
		var player *domain.Player
		var err error
		if groupIndex == incomingGroup {
			player, err = e.extractIncomingRow(ctx, college, page, row, i)
		} else {
			player, err = e.extractOutgoingRow(ctx, college, page, row, i)
		}
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

// extractIncomingRow builds a candidate for a player transferring in. The
// previous college comes from the transfer-prediction image's alt text; a
// resolution miss degrades to a nil relation rather than failing the row.
func (e *TransfersExtractor) extractIncomingRow(
	ctx context.Context,
	college *domain.College,
	page Page,
	row *goquery.Selection,
	index int,
) (*domain.Player, error) {
	player, err := e.extractCommonFields(ctx, college, page, row, index, incomingGroup)
	if err != nil {
		return nil, err
	}

	player.CurrentCollegeID = &college.CollegeID
	player.NewCollegeID = &college.CollegeID

	previousName := predictionAlt(row, selTransferPrediction, selTransferPredictAny)
	if previousName != "" {
		previousID, resolveErr := e.resolver.ResolveByName(ctx, previousName)
		switch {
		case resolveErr == nil:
			player.PreviousCollegeID = &previousID
		case errors.Is(resolveErr, database.ErrCollegeNotFound):
			e.logger.Warn("Previous college not in catalog", "name", previousName, "player", player.Name)
		default:
			return nil, resolveErr
		}
	}

	return player, nil
}

// extractOutgoingRow builds a candidate for a player leaving the college.
// A predicted destination that cannot be resolved is a data-integrity
// problem and fails the row.
func (e *TransfersExtractor) extractOutgoingRow(
	ctx context.Context,
	college *domain.College,
	page Page,
	row *goquery.Selection,
	index int,
) (*domain.Player, error) {
	player, err := e.extractCommonFields(ctx, college, page, row, index, outgoingGroup)
	if err != nil {
		return nil, err
	}

	player.PreviousCollegeID = &college.CollegeID

	if dest := row.Find(selTransferDest).First(); dest.Length() > 0 {
		destName := strings.TrimSpace(dest.AttrOr("alt", ""))
		if destName == "" {
			return nil, fmt.Errorf("%w: destination image has no name", ErrUnresolvedDestination)
		}
		destID, resolveErr := e.resolver.ResolveByName(ctx, destName)
		if resolveErr != nil {
			if errors.Is(resolveErr, database.ErrCollegeNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrUnresolvedDestination, destName)
			}
			return nil, resolveErr
		}
		player.NewCollegeID = &destID
		// The move is only reflected on the roster once the player has
		// actually committed to the destination.
		if player.Status != nil && *player.Status == domain.StatusCommitted {
			player.CurrentCollegeID = &destID
		}
	}

	return player, nil
}

// extractCommonFields reads the fields shared by incoming and outgoing rows.
func (e *TransfersExtractor) extractCommonFields(
	ctx context.Context,
	college *domain.College,
	page Page,
	row *goquery.Selection,
	index, groupIndex int,
) (*domain.Player, error) {
	name, err := selectionText(row, selTransferName)
	if err != nil {
		return nil, err
	}
	position, err := selectionText(row, selTransferPosition)
	if err != nil {
		return nil, err
	}

	status, err := transferStatus(row)
	if err != nil {
		return nil, err
	}

	stars := countFilledStars(row)

	href, _ := row.Find(selTransferName).First().Attr("href")
	playerPage := absoluteProfileURL(e.baseURL, href)

	player := &domain.Player{
		PlayerID:   identity.PlayerID(playerPage, name),
		Name:       name,
		Position:   &position,
		Status:     &status,
		StarRating: &stars,
	}
	if playerPage != "" {
		player.PlayerPage = &playerPage
	}

	image, imgErr := waitForImage(ctx, page, func(ctx context.Context) (string, error) {
		return page.GroupAttrNth(ctx, selTransferGroup, groupIndex, selTransferRow, index, selTransferImage, "src")
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

// transferStatus reads the row's status badge, falling back to the
// "entered on <date>" caption with its first letter capitalized.
func transferStatus(row *goquery.Selection) (string, error) {
	if badge := row.Find(selTransferStatus).First(); badge.Length() > 0 {
		return strings.TrimSpace(badge.Text()), nil
	}
	entered, err := selectionText(row, selTransferEntered)
	if err != nil {
		return "", err
	}
	return capitalize(entered), nil
}

// countFilledStars counts rating stars by their fill marker. The portal
// renders every star glyph and marks the filled ones by color.
func countFilledStars(row *goquery.Selection) int {
	count := 0
	row.Find(selTransferStars).Each(func(_ int, star *goquery.Selection) {
		if star.Find(selTransferStarFill).Length() > 0 {
			count++
		}
	})
	return count
}

// predictionAlt returns the alt text of the transfer-prediction image,
// preferring the linked variant of the markup.
func predictionAlt(row *goquery.Selection, preferred, fallback string) string {
	if img := row.Find(preferred).First(); img.Length() > 0 {
		return strings.TrimSpace(img.AttrOr("alt", ""))
	}
	if img := row.Find(fallback).First(); img.Length() > 0 {
		return strings.TrimSpace(img.AttrOr("alt", ""))
	}
	return ""
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
