// ABOUTME: Snapshot diff service orchestrating discovery, scoring, and history
// ABOUTME: Caches per-pair results and persists records through the storage interface

package snapshot

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"time"

	"github.com/atomicul/website-differ/core/diff"
	"github.com/atomicul/website-differ/core/domain"
	"github.com/atomicul/website-differ/core/errors"
	"github.com/atomicul/website-differ/core/interfaces"
)

const diffCacheTTL = 24 * time.Hour

// Service compares snapshots on disk. Every comparison is a pure function
// of the two files, so the cache is a shortcut, never a source of truth.
type Service struct {
	deps   interfaces.Dependencies
	differ *diff.Differ
	store  interfaces.DiffHistoryStorage
}

// NewService creates a snapshot diff service. store may be nil when no
// history persistence is configured.
func NewService(deps interfaces.Dependencies, differ *diff.Differ, store interfaces.DiffHistoryStorage) *Service {
	return &Service{
		deps:   deps,
		differ: differ,
		store:  store,
	}
}

// DiffFiles scores the structural change between two HTML files.
func (s *Service) DiffFiles(ctx context.Context, oldPath, newPath string) (domain.DiffResult, error) {
	oldHTML, err := os.ReadFile(oldPath)
	if err != nil {
		return domain.DiffResult{}, errors.WrapError(err, "reading old snapshot")
	}
	newHTML, err := os.ReadFile(newPath)
	if err != nil {
		return domain.DiffResult{}, errors.WrapError(err, "reading new snapshot")
	}
	return s.diffContent(ctx, oldHTML, newHTML)
}

// diffContent computes (or recalls) the diff for two raw documents.
func (s *Service) diffContent(ctx context.Context, oldHTML, newHTML []byte) (domain.DiffResult, error) {
	cacheKey := diffCacheKey(oldHTML, newHTML)

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var result domain.DiffResult
			if err := json.Unmarshal(data, &result); err == nil {
				return result, nil
			}
		}
	}

	result, err := s.differ.Compare(string(oldHTML), string(newHTML))
	if err != nil {
		return domain.DiffResult{}, err
	}

	if s.deps.Cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, diffCacheTTL)
		}
	}
	return result, nil
}

// CompareDirectory discovers the snapshots of one site under root, diffs
// every consecutive pair, persists the records when a store is configured,
// and returns them oldest pair first.
func (s *Service) CompareDirectory(ctx context.Context, site, root string) ([]domain.DiffRecord, error) {
	snapshots, err := Discover(root)
	if err != nil {
		return nil, err
	}

	pairs := Pairs(snapshots)
	records := make([]domain.DiffRecord, 0, len(pairs))

	for _, pair := range pairs {
		result, err := s.DiffFiles(ctx, pair.Old.Path, pair.New.Path)
		if err != nil {
			return nil, err
		}

		record := domain.DiffRecord{
			Site:        site,
			OldSnapshot: pair.Old.Name,
			NewSnapshot: pair.New.Name,
			Result:      result,
			CreatedAt:   time.Now().UTC(),
		}
		records = append(records, record)

		if s.store != nil {
			if err := s.store.SaveRecord(ctx, record); err != nil && s.deps.Logger != nil {
				s.deps.Logger.Warn("Failed to persist diff record", map[string]interface{}{
					"site":  site,
					"pair":  pair.Old.Name + " -> " + pair.New.Name,
					"error": err.Error(),
				})
			}
		}
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Compared snapshot directory", map[string]interface{}{
			"site":      site,
			"snapshots": len(snapshots),
			"pairs":     len(records),
		})
	}
	return records, nil
}

// History returns the persisted diff records for a site, newest first.
func (s *Service) History(ctx context.Context, site string, limit int) ([]domain.DiffRecord, error) {
	if s.store == nil {
		return nil, &errors.ValidationError{Field: "storage", Message: "history storage is not configured"}
	}
	return s.store.History(ctx, site, limit)
}

// diffCacheKey hashes both documents so unchanged pairs hit the cache on
// repeated watch runs.
func diffCacheKey(oldHTML, newHTML []byte) string {
	h := sha256.New()
	h.Write(oldHTML)
	h.Write([]byte{0})
	h.Write(newHTML)
	return "diff:" + hex.EncodeToString(h.Sum(nil))
}
