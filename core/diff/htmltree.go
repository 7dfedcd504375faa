// ABOUTME: Tree accessor wrapping goquery for parsed HTML documents
// ABOUTME: The only capability surface the diff engine gets: tags, attributes, children

package diff

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/atomicul/website-differ/core/errors"
)

// ParseDocument parses raw HTML into a navigable document tree.
// The parser recovers from most malformed markup on its own; anything it
// cannot recover from is returned as a ParseError to the caller.
func ParseDocument(source string, r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &errors.ParseError{Source: source, Err: err}
	}
	return doc, nil
}
