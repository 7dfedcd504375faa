// ABOUTME: Storage interface for persisted diff history
// ABOUTME: Defines the contract implemented by the SQLite-backed store

package interfaces

import (
	"context"

	"github.com/atomicul/website-differ/core/domain"
)

// DiffHistoryStorage persists per-pair diff records so the API can serve
// the change history of a monitored site across snapshot runs.
type DiffHistoryStorage interface {
	// SaveRecord persists one diff record.
	SaveRecord(ctx context.Context, record domain.DiffRecord) error

	// History returns the diff records for a site, newest first.
	// A zero limit means no limit.
	History(ctx context.Context, site string, limit int) ([]domain.DiffRecord, error)
}
