package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/jonesrussell/rosterwatch/internal/logger"
)

// Page is a single browser tab. All operations honor the caller's context
// for cancellation and apply the session navigation timeout per operation.
type Page struct {
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
	logger  logger.Interface
}

// evalResult carries a DOM read back from the page. Found distinguishes a
// missing element from an element with empty content.
type evalResult struct {
	Found bool   `json:"found"`
	Value string `json:"value"`
}

// run executes chromedp actions against the tab with the per-op timeout.
func (p *Page) run(ctx context.Context, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	runCtx, cancelRun := context.WithTimeout(p.ctx, p.timeout)
	defer cancelRun()
	return chromedp.Run(runCtx, actions...)
}

// Navigate loads a URL and waits for the DOM to be ready.
func (p *Page) Navigate(ctx context.Context, url string) error {
	p.logger.Debug("Navigating", "url", url)
	if err := p.run(ctx, chromedp.Navigate(url), chromedp.WaitReady("body", chromedp.ByQuery)); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// Exists reports whether any element matches the selector.
func (p *Page) Exists(ctx context.Context, sel string) (bool, error) {
	var exists bool
	js := fmt.Sprintf(`document.querySelector(%q) !== null`, sel)
	if err := p.run(ctx, chromedp.Evaluate(js, &exists)); err != nil {
		return false, fmt.Errorf("failed to query %s: %w", sel, err)
	}
	return exists, nil
}

// Count returns the number of elements matching the selector.
func (p *Page) Count(ctx context.Context, sel string) (int, error) {
	var count int
	js := fmt.Sprintf(`document.querySelectorAll(%q).length`, sel)
	if err := p.run(ctx, chromedp.Evaluate(js, &count)); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", sel, err)
	}
	return count, nil
}

// Text returns the trimmed text content of the first element matching the
// selector. Returns ErrElementNotFound when nothing matches.
func (p *Page) Text(ctx context.Context, sel string) (string, error) {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		return el ? {found: true, value: el.textContent.trim()} : {found: false, value: ""};
	})()`, sel)

	var res evalResult
	if err := p.run(ctx, chromedp.Evaluate(js, &res)); err != nil {
		return "", fmt.Errorf("failed to read text of %s: %w", sel, err)
	}
	if !res.Found {
		return "", fmt.Errorf("%w: %s", ErrElementNotFound, sel)
	}
	return res.Value, nil
}

// OuterHTML returns the outer HTML of the first element matching the
// selector. Returns ErrElementNotFound when nothing matches.
func (p *Page) OuterHTML(ctx context.Context, sel string) (string, error) {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		return el ? {found: true, value: el.outerHTML} : {found: false, value: ""};
	})()`, sel)

	var res evalResult
	if err := p.run(ctx, chromedp.Evaluate(js, &res)); err != nil {
		return "", fmt.Errorf("failed to read html of %s: %w", sel, err)
	}
	if !res.Found {
		return "", fmt.Errorf("%w: %s", ErrElementNotFound, sel)
	}
	return res.Value, nil
}

// AttrNth returns an attribute read from within the i-th element matching
// listSel. childSel scopes the read to a descendant; pass "" to read the
// attribute off the list element itself. An element that matches but lacks
// the attribute yields "".
func (p *Page) AttrNth(ctx context.Context, listSel string, i int, childSel, attr string) (string, error) {
	js := fmt.Sprintf(`(() => {
		const list = document.querySelectorAll(%q);
		let el = list[%d];
		if (el && %q !== "") {
			el = el.querySelector(%q);
		}
		return el ? {found: true, value: el.getAttribute(%q) || ""} : {found: false, value: ""};
	})()`, listSel, i, childSel, childSel, attr)

	var res evalResult
	if err := p.run(ctx, chromedp.Evaluate(js, &res)); err != nil {
		return "", fmt.Errorf("failed to read attribute %s of %s[%d]: %w", attr, listSel, i, err)
	}
	if !res.Found {
		return "", fmt.Errorf("%w: %s[%d] %s", ErrElementNotFound, listSel, i, childSel)
	}
	return res.Value, nil
}

// GroupAttrNth reads an attribute from within the i-th element matching
// rowSel inside the g-th element matching groupSel. Used on pages that
// repeat the same row markup under sibling group containers.
func (p *Page) GroupAttrNth(ctx context.Context, groupSel string, g int, rowSel string, i int, childSel, attr string) (string, error) {
	js := fmt.Sprintf(`(() => {
		const groups = document.querySelectorAll(%q);
		const group = groups[%d];
		if (!group) {
			return {found: false, value: ""};
		}
		const rows = group.querySelectorAll(%q);
		let el = rows[%d];
		if (el && %q !== "") {
			el = el.querySelector(%q);
		}
		return el ? {found: true, value: el.getAttribute(%q) || ""} : {found: false, value: ""};
	})()`, groupSel, g, rowSel, i, childSel, childSel, attr)

	var res evalResult
	if err := p.run(ctx, chromedp.Evaluate(js, &res)); err != nil {
		return "", fmt.Errorf("failed to read attribute %s of %s[%d] %s[%d]: %w", attr, groupSel, g, rowSel, i, err)
	}
	if !res.Found {
		return "", fmt.Errorf("%w: %s[%d] %s[%d] %s", ErrElementNotFound, groupSel, g, rowSel, i, childSel)
	}
	return res.Value, nil
}

// ScrollByViewport scrolls the page down by one viewport height. The source
// site lazy-loads images on scroll, so extractors use this to force image
// URLs to materialize.
func (p *Page) ScrollByViewport(ctx context.Context) error {
	js := `window.scrollBy(0, window.innerHeight)`
	if err := p.run(ctx, chromedp.Evaluate(js, nil)); err != nil {
		return fmt.Errorf("failed to scroll: %w", err)
	}
	return nil
}

// Close closes the tab.
func (p *Page) Close() {
	p.cancel()
}
