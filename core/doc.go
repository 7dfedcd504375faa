// Package core contains the business logic for the Website Differ.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (NodeProfile, DiffResult, Snapshot, etc.)
// - diff: HTML structural feature extraction and weighted comparison
// - snapshot: Snapshot discovery, capture, and directory comparison service
// - report: Human-readable rendering of diff results
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, storage)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "github.com/atomicul/website-differ/core/diff"
//	)
//
//	// Create a differ with the default weights
//	differ, err := diff.New()
//	if err != nil {
//	    return err
//	}
//
//	// Score the structural change between two documents
//	result, err := differ.Compare(oldHTML, newHTML)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Score, result.Label)
//
package core
