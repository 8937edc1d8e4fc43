package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Browser owns one headless Chromium session. A session is opened per
// scrape request and must be closed on every exit path.
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	timeout time.Duration
}

type Options struct {
	Headless       bool
	Timeout        time.Duration
	UserAgent      string
	ViewportWidth  int
	ViewportHeight int
	Locale         string
	TimezoneID     string
}

func DefaultOptions() *Options {
	return &Options{
		Headless:       true,
		Timeout:        30 * time.Second,
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		ViewportWidth:  1920,
		ViewportHeight: 1080,
		Locale:         "en-IN",
		TimezoneID:     "Asia/Kolkata",
	}
}

func New(opts *Options) (*Browser, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: &opts.Headless,
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--disable-dev-shm-usage",
			"--no-sandbox",
			"--disable-gpu",
		},
	}

	b, err := pw.Chromium.Launch(launchOpts)
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	contextOpts := playwright.BrowserNewContextOptions{
		UserAgent:  &opts.UserAgent,
		Locale:     &opts.Locale,
		TimezoneId: &opts.TimezoneID,
		Viewport: &playwright.Size{
			Width:  opts.ViewportWidth,
			Height: opts.ViewportHeight,
		},
	}

	context, err := b.NewContext(contextOpts)
	if err != nil {
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	return &Browser{
		pw:      pw,
		browser: b,
		context: context,
		timeout: opts.Timeout,
	}, nil
}

func (b *Browser) NewPage() (playwright.Page, error) {
	page, err := b.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create new page: %w", err)
	}

	page.SetDefaultTimeout(float64(b.timeout.Milliseconds()))

	return page, nil
}

// Navigate loads url and returns once the DOM is parsed. Dynamic content is
// the caller's concern; callers wait for the selectors they need.
func (b *Browser) Navigate(page playwright.Page, url string) error {
	_, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(b.timeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// Anchor is one rendered link, detached from its live DOM handle: the
// element's visible text and its raw href attribute.
type Anchor struct {
	Text string
	Href string
}

// Session couples one Browser with one Page for the duration of a single
// scrape. Close tears down the page, context, browser and driver.
type Session struct {
	browser *Browser
	page    playwright.Page
}

func NewSession(opts *Options) (*Session, error) {
	b, err := New(opts)
	if err != nil {
		return nil, err
	}

	page, err := b.NewPage()
	if err != nil {
		b.Close()
		return nil, err
	}

	return &Session{browser: b, page: page}, nil
}

func (s *Session) Navigate(url string) error {
	return s.browser.Navigate(s.page, url)
}

// WaitForSelector blocks until an element matching selector is attached or
// the timeout elapses.
func (s *Session) WaitForSelector(selector string, timeout time.Duration) error {
	_, err := s.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return err
}

// Anchors snapshots every element matching selector into detached records.
// Elements whose text or href cannot be read are skipped.
func (s *Session) Anchors(selector string) ([]Anchor, error) {
	locators, err := s.page.Locator(selector).All()
	if err != nil {
		return nil, fmt.Errorf("failed to query anchors: %w", err)
	}

	anchors := make([]Anchor, 0, len(locators))
	for _, l := range locators {
		text, err := l.InnerText()
		if err != nil {
			continue
		}

		href, err := l.GetAttribute("href")
		if err != nil {
			continue
		}

		anchors = append(anchors, Anchor{Text: text, Href: href})
	}

	return anchors, nil
}

func (s *Session) Content() (string, error) {
	return s.page.Content()
}

func (s *Session) Close() error {
	if s.page != nil {
		s.page.Close()
	}
	return s.browser.Close()
}

func (b *Browser) Close() error {
	var errs []error

	if b.context != nil {
		if err := b.context.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close context: %w", err))
		}
	}

	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
		}
	}

	if b.pw != nil {
		if err := b.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}

	return nil
}
