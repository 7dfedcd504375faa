package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLandmarkSimilarity_Identical(t *testing.T) {
	seq := []string{"header", "nav", "main", "footer"}
	assert.Equal(t, 1.0, LandmarkSimilarity(seq, seq))
	assert.Equal(t, 0.0, LandmarkDifference(seq, seq))
}

func TestLandmarkSimilarity_BothEmpty(t *testing.T) {
	// No landmarks on either side means nothing changed.
	assert.Equal(t, 1.0, LandmarkSimilarity(nil, nil))
	assert.Equal(t, 1.0, LandmarkSimilarity([]string{}, []string{}))
}

func TestLandmarkSimilarity_OneEmpty(t *testing.T) {
	assert.Equal(t, 0.0, LandmarkSimilarity([]string{"header", "main"}, nil))
	assert.Equal(t, 0.0, LandmarkSimilarity(nil, []string{"header"}))
}

func TestLandmarkSimilarity_ReorderLowersRatio(t *testing.T) {
	// Same multiset of tags, different order: the contiguous-match ratio
	// must drop below 1.0.
	a := []string{"header", "nav", "main"}
	b := []string{"nav", "header", "main"}

	sim := LandmarkSimilarity(a, b)
	assert.Less(t, sim, 1.0)
	assert.InDelta(t, 2.0/3.0, sim, 1e-9)
	assert.Greater(t, LandmarkDifference(a, b), 0.0)
}

func TestLandmarkSimilarity_Disjoint(t *testing.T) {
	a := []string{"header", "nav"}
	b := []string{"footer", "aside"}
	assert.Equal(t, 0.0, LandmarkSimilarity(a, b))
}

func TestLandmarkSimilarity_PartialOverlap(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want float64
	}{
		{
			name: "appended landmark",
			a:    []string{"header", "nav", "main"},
			b:    []string{"header", "nav", "main", "footer"},
			want: 2.0 * 3.0 / 7.0,
		},
		{
			name: "removed landmark",
			a:    []string{"header", "nav", "main", "footer"},
			b:    []string{"nav", "main", "footer"},
			want: 2.0 * 3.0 / 7.0,
		},
		{
			name: "split contiguous runs",
			a:    []string{"header", "main", "footer"},
			b:    []string{"header", "aside", "main", "footer"},
			want: 2.0 * 3.0 / 7.0,
		},
		{
			name: "duplicate sections",
			a:    []string{"section", "section", "section"},
			b:    []string{"section", "section"},
			want: 2.0 * 2.0 / 5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LandmarkSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestLandmarkSimilarity_Symmetric(t *testing.T) {
	a := []string{"header", "nav", "main", "section", "footer"}
	b := []string{"nav", "main", "section", "article", "footer"}
	assert.InDelta(t, LandmarkSimilarity(a, b), LandmarkSimilarity(b, a), 1e-12)
}

func TestLongestCommonBlock(t *testing.T) {
	a := []string{"nav", "main", "section", "footer"}
	b := []string{"aside", "main", "section", "nav"}

	ai, bi, size := longestCommonBlock(a, b)
	assert.Equal(t, 1, ai)
	assert.Equal(t, 1, bi)
	assert.Equal(t, 2, size)
}
