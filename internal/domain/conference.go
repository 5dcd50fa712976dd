package domain

// conferenceNames maps source conference abbreviations to full display names.
var conferenceNames = map[string]string{
	"acc":       "Atlantic Coast Conference",
	"a-east":    "America East",
	"aac":       "American Athletic Conference",
	"a-10":      "Atlantic 10",
	"a-sun":     "Atlantic Sun",
	"big12":     "Big 12",
	"big-east":  "Big East",
	"big-sky":   "Big Sky",
	"b-south":   "Big South",
	"bigten":    "Big Ten",
	"b-west":    "Big West",
	"colonial":  "Colonial Athletic Association",
	"cusa":      "Conference USA",
	"horizon":   "Horizon League",
	"ivy":       "Ivy League",
	"maac":      "Metro Atlantic Athletic Conference",
	"mac":       "Mid-American Conference",
	"meac":      "Mid-Eastern Athletic Conference",
	"mvc":       "Missouri Valley Conference",
	"mw":        "Mountain West",
	"nec":       "Northeast Conference",
	"ovc":       "Ohio Valley Conference",
	"pac12":     "Pac-12",
	"patriot":   "Patriot League",
	"sec":       "Southeastern Conference",
	"southern":  "Southern Conference",
	"southland": "Southland Conference",
	"swac":      "Southwestern Athletic Conference",
	"summit":    "Summit League",
	"sunbelt":   "Sun Belt",
	"wcc":       "West Coast Conference",
	"wac":       "Western Athletic Conference",
}

// ConferenceFullName returns the full display name for a conference
// abbreviation, or the abbreviation itself when no mapping exists.
func ConferenceFullName(abbrev string) string {
	if full, ok := conferenceNames[abbrev]; ok {
		return full
	}
	return abbrev
}
