// ABOUTME: Score composer combining landmark and skeleton differences
// ABOUTME: Produces the composite diff score and its qualitative label

package diff

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/atomicul/website-differ/core/domain"
)

// Differ computes structural diff scores between HTML documents.
// It is stateless apart from its immutable config; a single instance is
// safe for concurrent use and every comparison is independent.
type Differ struct {
	cfg Config
}

// New creates a Differ with the default config, applying any options.
// It returns an error when the resulting weights do not sum to 1.0 or the
// thresholds are out of order.
func New(opts ...Option) (*Differ, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Differ{cfg: cfg}, nil
}

// Config returns the differ's configuration.
func (d *Differ) Config() Config {
	return d.cfg
}

// ExtractFeatures pulls the landmark sequence and the skeleton out of one
// parsed document. Identical trees always yield identical bundles.
func ExtractFeatures(doc *goquery.Document) domain.FeatureBundle {
	return domain.FeatureBundle{
		Landmarks: ExtractLandmarks(doc),
		Skeleton:  ExtractSkeleton(doc),
	}
}

// Compare parses two raw HTML documents and scores the structural change
// between them. Parsing failures propagate as ParseError; an absent <body>
// or an empty document is not an error.
func (d *Differ) Compare(oldHTML, newHTML string) (domain.DiffResult, error) {
	oldDoc, err := ParseDocument("old document", strings.NewReader(oldHTML))
	if err != nil {
		return domain.DiffResult{}, err
	}
	newDoc, err := ParseDocument("new document", strings.NewReader(newHTML))
	if err != nil {
		return domain.DiffResult{}, err
	}
	return d.CompareDocuments(oldDoc, newDoc), nil
}

// CompareDocuments scores two already-parsed documents.
func (d *Differ) CompareDocuments(oldDoc, newDoc *goquery.Document) domain.DiffResult {
	return d.CompareFeatures(ExtractFeatures(oldDoc), ExtractFeatures(newDoc))
}

// CompareFeatures combines the landmark and skeleton differences of two
// feature bundles into the composite score and label.
func (d *Differ) CompareFeatures(old, new domain.FeatureBundle) domain.DiffResult {
	landmarkDiff := LandmarkDifference(old.Landmarks, new.Landmarks)
	skeletonDiff := d.SkeletonDifference(old.Skeleton, new.Skeleton)

	score := d.cfg.LandmarkWeight*landmarkDiff + d.cfg.SkeletonWeight*skeletonDiff
	score = clamp01(score)

	return domain.DiffResult{
		Score:              score,
		Label:              d.cfg.Label(score),
		LandmarkDifference: landmarkDiff,
		SkeletonDifference: skeletonDiff,
	}
}

// Label maps a composite score to its qualitative label.
func (c Config) Label(score float64) string {
	switch {
	case score > c.MajorThreshold:
		return domain.LabelMajor
	case score > c.SignificantThreshold:
		return domain.LabelSignificant
	default:
		return domain.LabelMinor
	}
}

// clamp01 guards against float accumulation drifting outside [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
