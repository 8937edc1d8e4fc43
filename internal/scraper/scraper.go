package scraper

import (
	"context"
	"time"

	"github.com/pharmadev/apollo-composition-scraper/internal/browser"
	"github.com/pharmadev/apollo-composition-scraper/internal/models"
)

// Scraper resolves a free-text drug name into its salt composition. A name
// with no matching product is a normal result with an empty composition,
// not an error; errors mean the scrape itself broke (navigation, driver).
type Scraper interface {
	Scrape(ctx context.Context, drugName string) (*models.SearchResult, error)
}

// Session is the slice of a browser session the orchestrator consumes:
// navigation, bounded waits, anchor snapshots, one content snapshot, and
// teardown.
type Session interface {
	Navigate(url string) error
	WaitForSelector(selector string, timeout time.Duration) error
	Anchors(selector string) ([]browser.Anchor, error)
	Content() (string, error)
	Close() error
}

// SessionFactory opens a fresh session; exactly one is invoked per Scrape
// call and released before the call returns.
type SessionFactory func() (Session, error)
