package models

// SearchResult is the record returned for one composition lookup. Both
// fields are always present; SaltComposition is empty when the site exposes
// no composition for the matched product, and DrugName falls back to the
// caller's raw input when no page title could be read.
type SearchResult struct {
	DrugName        string `json:"drugName"`
	SaltComposition string `json:"saltComposition"`
}
