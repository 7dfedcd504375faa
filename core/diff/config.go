// ABOUTME: Immutable configuration for the structural diff engine
// ABOUTME: Holds comparator weights and score thresholds with test-friendly overrides

package diff

import (
	"math"

	"github.com/atomicul/website-differ/core/errors"
)

// Default node comparator weights. They must sum to 1.0.
const (
	DefaultTagWeight        = 0.30
	DefaultClassWeight      = 0.30
	DefaultIDWeight         = 0.20
	DefaultChildCountWeight = 0.20
)

// Default composite weights and thresholds.
const (
	DefaultLandmarkWeight = 0.40
	DefaultSkeletonWeight = 0.60

	DefaultMajorThreshold       = 0.40
	DefaultSignificantThreshold = 0.15
)

// Config holds the weights and thresholds used by the comparators and the
// score composer. Values are fixed at construction; callers that need
// different weights build a new Config rather than mutating a shared one.
type Config struct {
	// Node comparator sub-score weights.
	TagWeight        float64
	ClassWeight      float64
	IDWeight         float64
	ChildCountWeight float64

	// Composite weights for the two difference components.
	LandmarkWeight float64
	SkeletonWeight float64

	// Scores above MajorThreshold are MAJOR; scores above
	// SignificantThreshold (and at most MajorThreshold) are SIGNIFICANT;
	// everything else is minor.
	MajorThreshold       float64
	SignificantThreshold float64
}

// DefaultConfig returns the standard weights and thresholds.
func DefaultConfig() Config {
	return Config{
		TagWeight:            DefaultTagWeight,
		ClassWeight:          DefaultClassWeight,
		IDWeight:             DefaultIDWeight,
		ChildCountWeight:     DefaultChildCountWeight,
		LandmarkWeight:       DefaultLandmarkWeight,
		SkeletonWeight:       DefaultSkeletonWeight,
		MajorThreshold:       DefaultMajorThreshold,
		SignificantThreshold: DefaultSignificantThreshold,
	}
}

// Option is a functional option for configuring the diff engine
type Option func(*Config)

// WithNodeWeights overrides the four node comparator weights
func WithNodeWeights(tag, class, id, childCount float64) Option {
	return func(c *Config) {
		c.TagWeight = tag
		c.ClassWeight = class
		c.IDWeight = id
		c.ChildCountWeight = childCount
	}
}

// WithCompositeWeights overrides the landmark/skeleton composite weights
func WithCompositeWeights(landmark, skeleton float64) Option {
	return func(c *Config) {
		c.LandmarkWeight = landmark
		c.SkeletonWeight = skeleton
	}
}

// WithThresholds overrides the label thresholds
func WithThresholds(major, significant float64) Option {
	return func(c *Config) {
		c.MajorThreshold = major
		c.SignificantThreshold = significant
	}
}

const weightTolerance = 1e-9

// Validate checks that weight groups sum to 1.0 and thresholds are ordered.
func (c Config) Validate() error {
	nodeSum := c.TagWeight + c.ClassWeight + c.IDWeight + c.ChildCountWeight
	if math.Abs(nodeSum-1.0) > weightTolerance {
		return &errors.ValidationError{Field: "node weights", Message: "must sum to 1.0"}
	}

	for _, w := range []float64{c.TagWeight, c.ClassWeight, c.IDWeight, c.ChildCountWeight} {
		if w < 0 {
			return &errors.ValidationError{Field: "node weights", Message: "must be non-negative"}
		}
	}

	compositeSum := c.LandmarkWeight + c.SkeletonWeight
	if math.Abs(compositeSum-1.0) > weightTolerance {
		return &errors.ValidationError{Field: "composite weights", Message: "must sum to 1.0"}
	}

	if c.LandmarkWeight < 0 || c.SkeletonWeight < 0 {
		return &errors.ValidationError{Field: "composite weights", Message: "must be non-negative"}
	}

	if c.SignificantThreshold <= 0 || c.MajorThreshold <= c.SignificantThreshold || c.MajorThreshold >= 1 {
		return &errors.ValidationError{Field: "thresholds", Message: "must satisfy 0 < significant < major < 1"}
	}

	return nil
}
