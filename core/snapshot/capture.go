// ABOUTME: Live snapshot capture service for monitored pages
// ABOUTME: Fetches a page with colly and stores it under a timestamp directory

package snapshot

import (
	"bytes"
	"context"
	"net/url"
	"os"
	"path/filepath"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/gocolly/colly"

	"github.com/atomicul/website-differ/core/domain"
	"github.com/atomicul/website-differ/core/errors"
	"github.com/atomicul/website-differ/core/interfaces"
)

const captureUserAgent = "WebsiteDiffer/1.0 (+https://github.com/atomicul/website-differ)"

// CaptureService fetches live pages and writes them to a snapshot root so
// the watch pipeline can diff them later.
type CaptureService struct {
	deps interfaces.Dependencies
}

// NewCaptureService creates a new capture service
func NewCaptureService(deps interfaces.Dependencies) *CaptureService {
	return &CaptureService{deps: deps}
}

// Capture fetches pageURL and stores the raw HTML as
// root/<timestamp>/snapshot.html. The page is never rendered or executed;
// only the served markup is kept.
func (s *CaptureService) Capture(ctx context.Context, pageURL, root string) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}

	body, err := s.fetch(pageURL)
	if err != nil {
		return domain.Snapshot{}, err
	}

	now := time.Now().UTC()
	name := now.Format(TimestampLayout)
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.Snapshot{}, errors.WrapError(err, "creating snapshot directory")
	}

	path := filepath.Join(dir, "snapshot.html")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return domain.Snapshot{}, errors.WrapError(err, "writing snapshot file")
	}

	snap := domain.Snapshot{
		Name:      name,
		Path:      path,
		Timestamp: now.Truncate(time.Second),
		Title:     pageTitle(body, pageURL),
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Captured snapshot", map[string]interface{}{
			"url":   pageURL,
			"path":  path,
			"title": snap.Title,
			"bytes": len(body),
		})
	}
	return snap, nil
}

// fetch downloads the raw page body.
func (s *CaptureService) fetch(pageURL string) ([]byte, error) {
	c := colly.NewCollector(
		colly.UserAgent(captureUserAgent),
	)
	c.SetRequestTimeout(30 * time.Second)

	var body []byte
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	if err := c.Visit(pageURL); err != nil {
		return nil, &errors.ExternalAPIError{
			API:     "page fetch",
			Message: err.Error(),
		}
	}
	if len(body) == 0 {
		return nil, &errors.ExternalAPIError{
			API:     "page fetch",
			Message: "empty response body for " + pageURL,
		}
	}
	return body, nil
}

// pageTitle extracts a human-readable title for the snapshot metadata.
// Failures are fine; the title is decoration, not data.
func pageTitle(body []byte, pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	article, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil {
		return ""
	}
	return article.Title
}
