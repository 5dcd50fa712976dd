package scrape

import (
	"context"
	"strconv"
	"strings"
)

// stubPage substitutes the live browser page in extractor tests. Bodies are
// served per navigated URL; attribute reads are served per call site, with a
// sequence per key so lazy-image loading can be simulated.
type stubPage struct {
	htmlByURL map[string]string
	texts     map[string]string
	exists    map[string]bool
	counts    map[string]int
	attrs     map[string][]string
	attrCalls map[string]int
	current   string
	navigated []string
	scrolls   int
}

func newStubPage() *stubPage {
	return &stubPage{
		htmlByURL: map[string]string{},
		texts:     map[string]string{},
		exists:    map[string]bool{},
		counts:    map[string]int{},
		attrs:     map[string][]string{},
		attrCalls: map[string]int{},
	}
}

func attrKey(parts ...string) string {
	return strings.Join(parts, "|")
}

func (p *stubPage) setAttr(key string, values ...string) {
	p.attrs[key] = values
}

func (p *stubPage) Navigate(_ context.Context, url string) error {
	p.current = url
	p.navigated = append(p.navigated, url)
	return nil
}

func (p *stubPage) Exists(_ context.Context, sel string) (bool, error) {
	return p.exists[sel], nil
}

func (p *stubPage) Count(_ context.Context, sel string) (int, error) {
	return p.counts[sel], nil
}

func (p *stubPage) Text(_ context.Context, sel string) (string, error) {
	return p.texts[sel], nil
}

func (p *stubPage) OuterHTML(_ context.Context, _ string) (string, error) {
	return p.htmlByURL[p.current], nil
}

func (p *stubPage) AttrNth(_ context.Context, listSel string, i int, childSel, attr string) (string, error) {
	return p.nextAttr(attrKey(listSel, strconv.Itoa(i), childSel, attr)), nil
}

func (p *stubPage) GroupAttrNth(_ context.Context, groupSel string, g int, rowSel string, i int, childSel, attr string) (string, error) {
	return p.nextAttr(attrKey(groupSel, strconv.Itoa(g), rowSel, strconv.Itoa(i), childSel, attr)), nil
}

func (p *stubPage) ScrollByViewport(_ context.Context) error {
	p.scrolls++
	return nil
}

// nextAttr serves the configured sequence for a key, repeating the last
// value once the sequence is exhausted.
func (p *stubPage) nextAttr(key string) string {
	seq := p.attrs[key]
	if len(seq) == 0 {
		return ""
	}
	idx := p.attrCalls[key]
	p.attrCalls[key]++
	if idx >= len(seq) {
		idx = len(seq) - 1
	}
	return seq[idx]
}

var _ Page = (*stubPage)(nil)
