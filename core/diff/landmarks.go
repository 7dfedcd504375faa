// ABOUTME: Landmark extraction from parsed HTML documents
// ABOUTME: Collects semantic landmark tag names in document order

package diff

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// landmarkSelector matches the semantic landmark elements in document
// (pre-)order. Landmarks are searched document-wide, not only under <body>,
// since they signal macro page flow even inside templating wrappers.
const landmarkSelector = "header, nav, main, aside, footer, section, article"

// ExtractLandmarks returns the ordered sequence of landmark tag names found
// in the document. Nested landmarks are recorded in the order encountered,
// duplicates are kept, and a landmark-free document yields an empty sequence.
func ExtractLandmarks(doc *goquery.Document) []string {
	var tags []string
	doc.Find(landmarkSelector).Each(func(_ int, sel *goquery.Selection) {
		tags = append(tags, strings.ToLower(goquery.NodeName(sel)))
	})
	return tags
}
