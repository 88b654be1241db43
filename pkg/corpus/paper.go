package corpus

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Paper is one record of the paper corpus. Produced upstream by the
// retrieval/enrichment collaborators; immutable from the engine's perspective.
// Missing or empty author/keyword lists are valid and simply contribute no
// edges to the derived graphs.
type Paper struct {
	ID         string    `json:"id" validate:"required"`
	Title      string    `json:"title"`
	Authors    []string  `json:"authors"`
	Keywords   []string  `json:"keywords"`
	Categories []string  `json:"categories"`
	Published  time.Time `json:"published"`
}

var validate = validator.New()

// Validate checks that a record carries the minimum fields the engine needs.
func (p *Paper) Validate() error {
	return validate.Struct(p)
}

// NormalizeAuthor canonicalizes an author name: trims surrounding whitespace
// and collapses internal runs of whitespace to a single space. Names that
// normalize to the empty string are invalid.
func NormalizeAuthor(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// NormalizeKeyword canonicalizes a keyword: lowercased and
// whitespace-collapsed, so "Graph  Theory" and "graph theory" are one node.
func NormalizeKeyword(kw string) string {
	return strings.ToLower(strings.Join(strings.Fields(kw), " "))
}

// DistinctAuthors returns the paper's normalized author names with duplicates
// removed, preserving first-appearance order. Duplicate listings of the same
// name on one paper collapse to a single entry so they cannot produce
// self-edges.
func (p *Paper) DistinctAuthors() []string {
	seen := make(map[string]bool, len(p.Authors))
	authors := make([]string, 0, len(p.Authors))
	for _, raw := range p.Authors {
		name := NormalizeAuthor(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		authors = append(authors, name)
	}
	return authors
}

// DistinctKeywords returns the paper's normalized keywords with duplicates
// removed, preserving first-appearance order.
func (p *Paper) DistinctKeywords() []string {
	seen := make(map[string]bool, len(p.Keywords))
	keywords := make([]string, 0, len(p.Keywords))
	for _, raw := range p.Keywords {
		kw := NormalizeKeyword(raw)
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		keywords = append(keywords, kw)
	}
	return keywords
}
