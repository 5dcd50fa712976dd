package scrape

import (
	"context"
	"fmt"
	"strings"
)

const (
	// placeholderToken marks the source's 1x1 tracking pixel, served until
	// the real image lazy-loads on scroll.
	placeholderToken = "1x1"

	// maxImageAttempts bounds the scroll-and-re-read cycle. The source can
	// simply never serve a real image; exhaustion is a reported failure,
	// not a hang.
	maxImageAttempts = 20
)

// imageReader reads the current image URL candidate from the live page.
type imageReader func(ctx context.Context) (string, error)

// waitForImage repeatedly reads an image URL, scrolling the page by one
// viewport height between attempts until a non-placeholder URL appears.
// The returned URL has its query string stripped. Returns ErrImageNotLoaded
// when the retry budget is exhausted.
func waitForImage(ctx context.Context, page Page, read imageReader) (string, error) {
	for attempt := 0; attempt < maxImageAttempts; attempt++ {
		src, err := read(ctx)
		if err != nil {
			return "", err
		}
		if src != "" && !strings.Contains(src, placeholderToken) {
			return stripQuery(src), nil
		}
		if scrollErr := page.ScrollByViewport(ctx); scrollErr != nil {
			return "", scrollErr
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrImageNotLoaded, maxImageAttempts)
}
