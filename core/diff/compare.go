// ABOUTME: Node comparator and sequence-level skeleton difference
// ABOUTME: Weighted multi-attribute scoring over positionally aligned profiles

package diff

import (
	"math"
	"strings"

	"github.com/atomicul/website-differ/core/domain"
)

// NodeDifference scores how different two aligned node profiles are, as the
// weighted sum of four sub-scores (tag, classes, id, child count), each in
// [0, 1]. The function is total and symmetric: it never fails and
// NodeDifference(a, b) == NodeDifference(b, a).
func (d *Differ) NodeDifference(a, b domain.NodeProfile) float64 {
	var tagDiff float64
	if !strings.EqualFold(a.Tag, b.Tag) {
		tagDiff = 1.0
	}

	classDiff := 1.0 - jaccard(a.Classes, b.Classes)

	var idDiff float64
	if a.ID != b.ID {
		idDiff = 1.0
	}

	childDiff := childCountVolatility(a.ChildCount, b.ChildCount)

	return d.cfg.TagWeight*tagDiff +
		d.cfg.ClassWeight*classDiff +
		d.cfg.IDWeight*idDiff +
		d.cfg.ChildCountWeight*childDiff
}

// SkeletonDifference aligns two skeleton sequences positionally and averages
// the per-position node differences. Positions present in only the longer
// sequence score full difference: an extra or missing node at a position is
// itself a structural change. Two empty skeletons have zero difference.
func (d *Differ) SkeletonDifference(a, b []domain.NodeProfile) float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return 0.0
	}

	var total float64
	for i := 0; i < n; i++ {
		if i < len(a) && i < len(b) {
			total += d.NodeDifference(a[i], b[i])
		} else {
			total += 1.0
		}
	}
	return total / float64(n)
}

// jaccard computes |X∩Y| / |X∪Y| over two class token lists treated as
// sets. Two empty sets are defined as identical (similarity 1.0) so the
// comparison never divides by zero.
func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	setA := make(map[string]bool, len(a))
	for _, t := range a {
		setA[t] = true
	}
	setB := make(map[string]bool, len(b))
	for _, t := range b {
		setB[t] = true
	}

	intersection := 0
	for t := range setA {
		if setB[t] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// childCountVolatility is |a-b| / max(a, b, 1). The floor of 1 makes two
// empty elements identical rather than an arithmetic error.
func childCountVolatility(a, b int) float64 {
	denom := a
	if b > denom {
		denom = b
	}
	if denom < 1 {
		denom = 1
	}
	return math.Abs(float64(a-b)) / float64(denom)
}
