package parser

// Parser extracts drug details from a product page's rendered HTML.
type Parser interface {
	ExtractComposition(html string) string
	ExtractTitle(html string) string
}
