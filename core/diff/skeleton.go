// ABOUTME: Skeleton extraction: shallow node profiles below the body element
// ABOUTME: Profiles structural elements at depth 1-2, body itself excluded

package diff

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/atomicul/website-differ/core/domain"
)

// ignoredTags are element nodes that never act as structural containers.
// They are skipped when emitting profiles, but still count as element
// children of their parent.
var ignoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"link":     true,
	"meta":     true,
	"noscript": true,
	"template": true,
}

// ExtractSkeleton returns node profiles for the structural elements at
// depth 1 and 2 below the first <body> element (body = depth 0, excluded),
// in document pre-order. Elements at depth 3+ are never visited, though
// they still count toward their depth-2 parent's ChildCount. A document
// without a <body> yields an empty skeleton.
func ExtractSkeleton(doc *goquery.Document) []domain.NodeProfile {
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil
	}

	var profiles []domain.NodeProfile
	body.Children().Each(func(_ int, child *goquery.Selection) {
		if !isStructuralContainer(child) {
			return
		}
		profiles = append(profiles, profileNode(child))
		child.Children().Each(func(_ int, grandchild *goquery.Selection) {
			if !isStructuralContainer(grandchild) {
				return
			}
			profiles = append(profiles, profileNode(grandchild))
		})
	})
	return profiles
}

// isStructuralContainer reports whether an element node qualifies for its
// own profile. Text and comment nodes never reach here: goquery's
// Children() yields element nodes only.
func isStructuralContainer(sel *goquery.Selection) bool {
	return !ignoredTags[goquery.NodeName(sel)]
}

// profileNode builds the 4-attribute profile of one element. ChildCount is
// taken from the raw tree and counts every direct element child, including
// children that are filtered out of the skeleton themselves.
func profileNode(sel *goquery.Selection) domain.NodeProfile {
	return domain.NodeProfile{
		Tag:        strings.ToLower(goquery.NodeName(sel)),
		ID:         strings.TrimSpace(sel.AttrOr("id", "")),
		Classes:    classTokens(sel.AttrOr("class", "")),
		ChildCount: sel.Children().Length(),
	}
}

// classTokens splits a class attribute into whitespace-separated tokens,
// collapsing duplicates while keeping first-seen order for stable output.
func classTokens(attr string) []string {
	fields := strings.Fields(attr)
	if len(fields) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(fields))
	tokens := fields[:0]
	for _, f := range fields {
		if seen[f] {
			continue
		}
		seen[f] = true
		tokens = append(tokens, f)
	}
	return tokens
}
