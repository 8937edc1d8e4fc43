package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// Presentation classes Apollo renders on the composition heading.
	styledHeadingSelector = "h3.Gd.Dd.Sp"

	compositionContainerID = "#composition"
	wrapperSelector        = `div[class*="compositionWrapper"]`
	titleSelector          = `[class*="DrugHeader__header-content"]`
)

// strategy is one way of locating the composition text. Strategies are
// tried in order and the first non-empty result wins.
type strategy struct {
	name    string
	extract func(doc *goquery.Document) string
}

type ApolloParser struct {
	strategies []strategy
}

func NewApolloParser() *ApolloParser {
	return &ApolloParser{
		strategies: []strategy{
			{name: "styled heading sibling", extract: extractStyledHeadingSibling},
			{name: "composition heading sibling", extract: extractCompositionHeadingSibling},
			{name: "composition container paragraphs", extract: extractCompositionParagraphs},
			{name: "composition wrapper", extract: extractWrapperText},
		},
	}
}

// ExtractComposition runs the strategy chain over the page HTML. A page
// without any recognizable composition block yields the empty string; that
// is a normal outcome, not an error.
func (p *ApolloParser) ExtractComposition(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	for _, s := range p.strategies {
		if text := s.extract(doc); text != "" {
			return text
		}
	}

	return ""
}

// ExtractTitle reads the product page header. Empty when the header element
// is absent; the caller decides the fallback.
func (p *ApolloParser) ExtractTitle(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(doc.Find(titleSelector).First().Text())
}

func extractStyledHeadingSibling(doc *goquery.Document) string {
	heading := doc.Find(styledHeadingSelector).First()
	if heading.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(heading.Next().Text())
}

func extractCompositionHeadingSibling(doc *goquery.Document) string {
	heading := doc.Find("h3").FilterFunction(func(_ int, h *goquery.Selection) bool {
		return strings.Contains(h.Text(), "Composition")
	}).First()
	if heading.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(heading.Next().Text())
}

func extractCompositionParagraphs(doc *goquery.Document) string {
	container := doc.Find(compositionContainerID).First()
	if container.Length() == 0 {
		return ""
	}

	var parts []string
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		if t := strings.TrimSpace(p.Text()); t != "" {
			parts = append(parts, t)
		}
	})

	return strings.Join(parts, " ")
}

func extractWrapperText(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(wrapperSelector).First().Text())
}
