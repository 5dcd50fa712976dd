package scrape

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/rosterwatch/internal/domain"
	"github.com/jonesrussell/rosterwatch/internal/identity"
	"github.com/jonesrussell/rosterwatch/internal/logger"
)

const rosterListingPath = "/college/vermont/team/vermont-catamounts-basketball-99/roster/"

const rosterHubHTML = `
<div class="teamtabnav_blk">
  <ul>
    <li><a href="/college/purdue/team/purdue-boilermakers-basketball-84/roster/">Purdue</a></li>
    <li><a href="/college/vermont/team/vermont-catamounts-basketball-99/roster/">Vermont</a></li>
  </ul>
</div>
`

const rosterHTML = `
<h1 class="stats-page__heading">2024 Vermont Catamounts Basketball Roster</h1>
<div data-js="name-tbody-container"><table><tbody>
  <tr data-row="0"><td><a href="/player/john-smith-46135166/">John Smith</a></td></tr>
  <tr data-row="1"><td>Walk On</td></tr>
</tbody></table></div>
<div data-js="data-tbody-container"><table><tbody>
  <tr data-row="0">
    <td>3</td><td>PG</td><td>6-2</td><td>180</td><td>Fr</td><td>Omaha, NE</td><td>Westside</td>
    <td><span class="icon-starsolid yellow"></span><span class="icon-starsolid yellow"></span><span class="icon-starsolid yellow"></span></td>
  </tr>
  <tr data-row="1">
    <td>15</td><td>C</td><td>6-10</td><td>230</td><td>Sr</td><td>-</td><td>-</td>
    <td></td>
  </tr>
</tbody></table></div>
`

type stubCollegeWriter struct {
	teamNames map[string]string
}

func (s *stubCollegeWriter) UpdateTeamName(_ context.Context, collegeID, teamName string) error {
	if s.teamNames == nil {
		s.teamNames = map[string]string{}
	}
	s.teamNames[collegeID] = teamName
	return nil
}

func newRosterTestSetup(t *testing.T) (*RosterExtractor, *stubPage, *stubCollegeWriter, *domain.College) {
	t.Helper()
	writer := &stubCollegeWriter{}
	extractor := NewRosterExtractor(testBaseURL, writer, logger.NewNoOp())
	college := &domain.College{CollegeID: "vermont", Name: "Vermont", Conference: "America East"}
	page := newStubPage()
	page.htmlByURL[RosterHubURL(testBaseURL)] = rosterHubHTML
	page.htmlByURL[testBaseURL+rosterListingPath] = rosterHTML
	page.texts[selRosterHeading] = "2024 Vermont Catamounts Basketball Roster"
	return extractor, page, writer, college
}

func TestRosterExtract(t *testing.T) {
	t.Parallel()

	extractor, page, writer, college := newRosterTestSetup(t)
	page.setAttr(attrKey(selProfileImage, "0", "", "src"),
		"https://cdn.example/1x1.png",
		"https://cdn.example/smith.jpg?cb=7",
	)

	players, err := extractor.Extract(context.Background(), college, page)
	require.NoError(t, err)
	require.Len(t, players, 2)

	smith := players[0]
	assert.Equal(t, "46135166", smith.PlayerID)
	assert.Equal(t, "John Smith", smith.Name)
	assert.Equal(t, "PG", *smith.Position)
	assert.Equal(t, domain.StatusSigned, *smith.Status)
	assert.Equal(t, 3, *smith.StarRating)
	assert.Equal(t, "Westside", *smith.HighSchool)
	assert.Equal(t, "https://247sports.com/player/john-smith-46135166/", *smith.PlayerPage)
	assert.Equal(t, "https://cdn.example/smith.jpg", *smith.Image)
	assert.Equal(t, "vermont", *smith.CurrentCollegeID)

	walkOn := players[1]
	assert.Equal(t, identity.PlayerID("", "Walk On"), walkOn.PlayerID)
	assert.Equal(t, "C", *walkOn.Position)
	assert.Equal(t, 0, *walkOn.StarRating)
	// The "-" sentinel means no high school on record.
	assert.Nil(t, walkOn.HighSchool)
	assert.Nil(t, walkOn.PlayerPage)
	assert.Nil(t, walkOn.Image)

	// The canonical team name from the heading is written back.
	assert.Equal(t, "Vermont Catamounts", writer.teamNames["vermont"])

	// The profile visit returns to the listing before the next row.
	assert.Equal(t, []string{
		RosterHubURL(testBaseURL),
		testBaseURL + rosterListingPath,
		"https://247sports.com/player/john-smith-46135166/",
		testBaseURL + rosterListingPath,
	}, page.navigated)
}

func TestRosterExtractCollegeLinkNotFound(t *testing.T) {
	t.Parallel()

	extractor, page, _, _ := newRosterTestSetup(t)
	college := &domain.College{CollegeID: "nowhere", Name: "Nowhere State", Conference: "Sun Belt"}

	_, err := extractor.Extract(context.Background(), college, page)
	assert.ErrorIs(t, err, ErrCollegeLinkNotFound)
}

func TestRosterExtractMissingTeamNav(t *testing.T) {
	t.Parallel()

	extractor, page, _, college := newRosterTestSetup(t)
	page.htmlByURL[RosterHubURL(testBaseURL)] = `<div class="content">no nav here</div>`

	_, err := extractor.Extract(context.Background(), college, page)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestRosterExtractOddHeadingSkipsTeamName(t *testing.T) {
	t.Parallel()

	extractor, page, writer, college := newRosterTestSetup(t)
	page.texts[selRosterHeading] = "Roster"

	players, err := extractor.Extract(context.Background(), college, page)
	require.NoError(t, err)
	assert.Len(t, players, 2)
	assert.Empty(t, writer.teamNames)
}

func TestRosterExtractImageFailureDegrades(t *testing.T) {
	t.Parallel()

	extractor, page, _, college := newRosterTestSetup(t)
	page.setAttr(attrKey(selProfileImage, "0", "", "src"), "https://cdn.example/1x1.png")

	players, err := extractor.Extract(context.Background(), college, page)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Nil(t, players[0].Image)
}
