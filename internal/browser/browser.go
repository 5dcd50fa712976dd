// Package browser provides a headless browser session for scraping
// JavaScript-rendered pages, backed by chromedp.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/jonesrussell/rosterwatch/internal/logger"
)

// Config holds headless browser configuration.
type Config struct {
	Headless       bool
	UserAgent      string
	ViewportWidth  int
	ViewportHeight int
	NavTimeout     time.Duration
}

// Session owns a browser process shared sequentially across colleges.
// One page (tab) is opened per navigation target via NewPage.
type Session struct {
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
	cfg           Config
	logger        logger.Interface
}

// NewSession launches a browser and returns a session handle.
func NewSession(cfg Config, log logger.Interface) (*Session, error) {
	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(cfg.ViewportWidth, cfg.ViewportHeight),
		chromedp.UserAgent(cfg.UserAgent),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Force the browser process to start now so launch failures surface
	// here rather than on the first navigation.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	log.Debug("Browser session started", "headless", cfg.Headless)

	return &Session{
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		cfg:           cfg,
		logger:        log,
	}, nil
}

// NewPage opens a new tab in the session.
func (s *Session) NewPage() *Page {
	tabCtx, tabCancel := chromedp.NewContext(s.browserCtx)
	return &Page{
		ctx:     tabCtx,
		cancel:  tabCancel,
		timeout: s.cfg.NavTimeout,
		logger:  s.logger,
	}
}

// Close shuts down the browser process.
func (s *Session) Close() {
	s.browserCancel()
	s.allocCancel()
}
