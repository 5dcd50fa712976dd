// Package scrape provides the field extractors that drive a headless
// browser against the external roster-and-recruiting site and yield
// normalized candidate player records.
package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/rosterwatch/internal/browser"
	"github.com/jonesrussell/rosterwatch/internal/domain"
)

// Page is the headless browser surface the extractors drive. Satisfied by
// *browser.Page; tests substitute a stub.
type Page interface {
	Navigate(ctx context.Context, url string) error
	Exists(ctx context.Context, sel string) (bool, error)
	Count(ctx context.Context, sel string) (int, error)
	Text(ctx context.Context, sel string) (string, error)
	OuterHTML(ctx context.Context, sel string) (string, error)
	AttrNth(ctx context.Context, listSel string, i int, childSel, attr string) (string, error)
	GroupAttrNth(ctx context.Context, groupSel string, g int, rowSel string, i int, childSel, attr string) (string, error)
	ScrollByViewport(ctx context.Context) error
}

var _ Page = (*browser.Page)(nil)

// Extractor is one pipeline stage: given a college and a live page it
// yields candidate player records. Extractors keep no state between
// colleges.
type Extractor interface {
	// Name identifies the extractor in logs and errors.
	Name() string
	// Extract scrapes one college's listing into candidate records.
	Extract(ctx context.Context, college *domain.College, page Page) ([]*domain.Player, error)
}

// parseDocument snapshots the page body and parses it for row iteration.
// Static fields are read from the snapshot; only lazy-loaded images need
// live DOM reads.
func parseDocument(ctx context.Context, page Page) (*goquery.Document, error) {
	html, err := page.OuterHTML(ctx, "body")
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}

// selectionText returns the trimmed text of the first match of sel within
// s, or ErrMissingField when nothing matches. A missing expected element is
// a structural error surfaced per row.
func selectionText(s *goquery.Selection, sel string) (string, error) {
	found := s.Find(sel).First()
	if found.Length() == 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingField, sel)
	}
	return strings.TrimSpace(found.Text()), nil
}

// stripQuery removes the query string from an image URL. The source
// rotates cache-busting tokens, so the canonical form avoids spurious
// diffs during reconciliation.
func stripQuery(url string) string {
	if i := strings.Index(url, "?"); i >= 0 {
		return url[:i]
	}
	return url
}

// absoluteProfileURL normalizes a scraped profile link to an absolute URL.
// The source emits a mix of absolute, protocol-relative, and root-relative
// hrefs.
func absoluteProfileURL(baseURL, href string) string {
	switch {
	case href == "":
		return ""
	case strings.HasPrefix(href, "http"):
		return href
	case strings.HasPrefix(href, "//"):
		return "https:" + href
	default:
		return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(href, "/")
	}
}
