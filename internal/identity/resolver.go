// Package identity derives stable identifiers for scraped entities and
// resolves freeform college names to catalog identifiers.
package identity

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/jonesrussell/rosterwatch/internal/domain"
)

// playerPagePattern matches profile URLs of the form ".../player/<slug>-<digits>".
// The trailing digit run is the source's stable player identifier.
var playerPagePattern = regexp.MustCompile(`player/[^/]+-(\d+)`)

// PlayerID derives a stable player identifier. When the profile URL carries
// the source's numeric id, that id is used. Otherwise the identifier is an
// xxhash of the player's name; the hash is stable across runs, so a player
// with no profile page resolves to the same identity every scrape.
func PlayerID(profileURL, name string) string {
	if id, ok := PlayerIDFromURL(profileURL); ok {
		return id
	}
	return strconv.FormatUint(xxhash.Sum64String(name), 10)
}

// PlayerIDFromURL extracts the source's numeric player id from a profile
// URL. The second return is false when the URL is empty or does not match.
func PlayerIDFromURL(profileURL string) (string, bool) {
	if profileURL == "" {
		return "", false
	}
	m := playerPagePattern.FindStringSubmatch(profileURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// CollegeFinder looks up a college by its exact display name.
type CollegeFinder interface {
	GetByName(ctx context.Context, name string) (*domain.College, error)
}

// CollegeResolver maps scraped college name strings to catalog identifiers.
type CollegeResolver struct {
	finder CollegeFinder
}

// NewCollegeResolver creates a new college resolver.
func NewCollegeResolver(finder CollegeFinder) *CollegeResolver {
	return &CollegeResolver{finder: finder}
}

// ResolveByName resolves a college display name to its stable identifier.
// The match is exact after trimming surrounding whitespace; scraped alt
// text frequently carries padding. Returns the store's not-found error
// when no college matches, and callers decide whether that is fatal.
func (r *CollegeResolver) ResolveByName(ctx context.Context, name string) (string, error) {
	college, err := r.finder.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return "", err
	}
	return college.CollegeID, nil
}
