package scrape

import (
	"fmt"
	"strings"
)

// rosterHubPath is a fixed roster page whose team navigation block links to
// every tracked program's roster listing. Any program's roster page carries
// the same nav; this one is just a stable entry point.
const rosterHubPath = "/college/purdue/team/purdue-boilermakers-basketball-84/roster/"

// CommitsURL returns the incoming-commitments listing for a college.
func CommitsURL(baseURL, collegeID, season string) string {
	return fmt.Sprintf("%s/college/%s/season/%s/commits/", strings.TrimRight(baseURL, "/"), collegeID, season)
}

// TransferPortalURL returns the transfer portal listing for a college.
func TransferPortalURL(baseURL, collegeID, season string) string {
	return fmt.Sprintf("%s/college/%s/season/%s/transferportal/", strings.TrimRight(baseURL, "/"), collegeID, season)
}

// RosterHubURL returns the entry page for roster navigation.
func RosterHubURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + rosterHubPath
}
