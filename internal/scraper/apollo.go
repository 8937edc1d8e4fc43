package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pharmadev/apollo-composition-scraper/internal/browser"
	"github.com/pharmadev/apollo-composition-scraper/internal/match"
	"github.com/pharmadev/apollo-composition-scraper/internal/models"
	"github.com/pharmadev/apollo-composition-scraper/internal/parser"
	"github.com/pharmadev/apollo-composition-scraper/internal/query"
)

const (
	apolloBaseURL = "https://www.apollopharmacy.in"
	searchPath    = "/search-medicines/"

	// Product pages live under /otc/ or /medicine/.
	productLinkSelector = `a[href*="/otc/"], a[href*="/medicine/"]`

	styledHeadingSelector = "h3.Gd.Dd.Sp"

	// Rendering settle pause before the composition heading wait.
	settleDelay = 2 * time.Second
)

// ApolloScraper performs one full search-and-extract pass against Apollo
// Pharmacy. Every Scrape call opens its own session through the factory and
// tears it down before returning; nothing is shared between calls.
type ApolloScraper struct {
	parser      parser.Parser
	logger      *slog.Logger
	newSession  SessionFactory
	searchWait  time.Duration
	headingWait time.Duration
	settle      time.Duration
}

func NewApolloScraper(p parser.Parser, logger *slog.Logger, opts *browser.Options, searchWait, headingWait time.Duration) *ApolloScraper {
	return &ApolloScraper{
		parser:      p,
		logger:      logger.With("component", "scraper"),
		newSession:  func() (Session, error) { return browser.NewSession(opts) },
		searchWait:  searchWait,
		headingWait: headingWait,
		settle:      settleDelay,
	}
}

func (s *ApolloScraper) Scrape(ctx context.Context, drugName string) (*models.SearchResult, error) {
	logger := s.logger.With("scrape_id", uuid.NewString(), "drug_name", drugName)

	cleaned := query.Normalize(drugName)
	searchURL := SearchURL(cleaned)
	logger.Info("starting scrape", "query", cleaned, "url", searchURL)

	sess, err := s.newSession()
	if err != nil {
		return nil, fmt.Errorf("failed to open browser session: %w", err)
	}
	defer sess.Close()

	if err := sess.Navigate(searchURL); err != nil {
		return nil, err
	}

	// Results render client-side; wait briefly for a qualifying link, then
	// work with whatever is present.
	if err := sess.WaitForSelector(productLinkSelector, s.searchWait); err != nil {
		logger.Info("timed out waiting for product links, scraping whatever is present")
	}

	candidates := collectCandidates(sess)
	logger.Info("collected candidates", "count", len(candidates))

	best := match.SelectBest(query.Flatten(cleaned), candidates)
	if best == nil {
		logger.Info("no matching product found")
		return &models.SearchResult{DrugName: drugName, SaltComposition: ""}, nil
	}

	logger.Info("selected candidate", "title", best.Title, "href", best.Href)

	if err := sess.Navigate(best.Href); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	time.Sleep(s.settle)
	if err := sess.WaitForSelector(styledHeadingSelector, s.headingWait); err != nil {
		logger.Info("composition heading did not appear, falling back to static extraction")
	}

	html, err := sess.Content()
	if err != nil {
		return nil, fmt.Errorf("failed to read product page content: %w", err)
	}

	title := s.parser.ExtractTitle(html)
	if title == "" {
		title = drugName
	}

	composition := s.parser.ExtractComposition(html)
	logger.Info("scrape finished", "title", title, "composition_found", composition != "")

	return &models.SearchResult{DrugName: title, SaltComposition: composition}, nil
}

// SearchURL builds the site search path for an already-normalized query,
// with spaces percent-encoded.
func SearchURL(normalizedQuery string) string {
	return apolloBaseURL + searchPath + url.PathEscape(normalizedQuery)
}

// collectCandidates flattens each qualifying anchor the session currently
// exposes. Anchors with blank visible text or no href are skipped.
func collectCandidates(sess Session) []match.Candidate {
	anchors, err := sess.Anchors(productLinkSelector)
	if err != nil {
		return nil
	}

	candidates := make([]match.Candidate, 0, len(anchors))
	for _, a := range anchors {
		if strings.TrimSpace(a.Text) == "" || a.Href == "" {
			continue
		}

		candidates = append(candidates, match.Candidate{
			Title: query.Flatten(query.Normalize(a.Text)),
			Href:  AbsoluteURL(a.Href),
		})
	}

	return candidates
}

// AbsoluteURL resolves site-relative hrefs against the Apollo base URL.
func AbsoluteURL(href string) string {
	if strings.HasPrefix(href, "/") {
		return apolloBaseURL + href
	}
	return href
}
