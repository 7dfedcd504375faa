// ABOUTME: Domain types for structural diffing of HTML documents
// ABOUTME: Defines node profiles, feature bundles, and diff results

package domain

import "time"

// Diff labels, ordered from most to least severe.
const (
	LabelMajor       = "MAJOR"
	LabelSignificant = "SIGNIFICANT"
	LabelMinor       = "minor"
)

// NodeProfile is the shallow summary of one structural element: its tag,
// identity attributes, and how many element children it has. Two profiles
// are never compared with structural equality; the weighted node comparator
// in core/diff decides how different they are.
type NodeProfile struct {
	// Tag is the lower-cased element tag name.
	Tag string `json:"tag"`

	// ID is the element's id attribute, or "" when absent.
	ID string `json:"id,omitempty"`

	// Classes holds the element's class tokens with duplicates collapsed.
	// Token order carries no meaning.
	Classes []string `json:"classes,omitempty"`

	// ChildCount is the number of direct element children in the raw tree,
	// whether or not those children are profiled themselves.
	ChildCount int `json:"child_count"`
}

// FeatureBundle is everything extracted from one document: the document-wide
// landmark tag sequence and the body-scoped skeleton. Immutable once built.
type FeatureBundle struct {
	// Landmarks is the ordered sequence of landmark tag names in document
	// order. Duplicates are kept.
	Landmarks []string `json:"landmarks"`

	// Skeleton is the ordered sequence of node profiles for structural
	// elements at depth 1-2 below <body>.
	Skeleton []NodeProfile `json:"skeleton"`
}

// DiffResult is the outcome of comparing two documents.
type DiffResult struct {
	// Score is the composite diff score in [0, 1].
	Score float64 `json:"score"`

	// Label classifies the score: MAJOR, SIGNIFICANT, or minor.
	Label string `json:"label"`

	// LandmarkDifference is the landmark-sequence component in [0, 1].
	LandmarkDifference float64 `json:"landmark_difference"`

	// SkeletonDifference is the skeleton-sequence component in [0, 1].
	SkeletonDifference float64 `json:"skeleton_difference"`
}

// DiffRecord is one persisted comparison between two consecutive snapshots
// of a monitored site.
type DiffRecord struct {
	Site        string    `json:"site"`
	OldSnapshot string    `json:"old_snapshot"`
	NewSnapshot string    `json:"new_snapshot"`
	Result      DiffResult `json:"result"`
	CreatedAt   time.Time `json:"created_at"`
}
