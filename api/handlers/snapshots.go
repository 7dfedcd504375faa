// ABOUTME: Snapshot history handler serving persisted diff records
// ABOUTME: Exposes per-site change history collected by the watch pipeline

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/atomicul/website-differ/core/domain"
	"github.com/atomicul/website-differ/core/snapshot"
)

// SnapshotsHandler serves snapshot diff history
type SnapshotsHandler struct {
	service *snapshot.Service
}

// NewSnapshotsHandler creates a new snapshots handler
func NewSnapshotsHandler(service *snapshot.Service) *SnapshotsHandler {
	return &SnapshotsHandler{service: service}
}

// RegisterRoutes registers snapshot routes
func (h *SnapshotsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "snapshotHistory",
		Method:      http.MethodGet,
		Path:        "/snapshots/{site}/history",
		Summary:     "Diff history for a monitored site",
		Description: "Returns the persisted diff records between consecutive snapshots of a site, newest first.",
		Tags:        []string{"Snapshots"},
	}, h.History)
}

// HistoryInput defines the input for the history endpoint
type HistoryInput struct {
	Site  string `path:"site" doc:"Site identifier, e.g. example.com"`
	Limit int    `query:"limit" minimum:"0" doc:"Maximum number of records; 0 means all"`
}

// HistoryOutput defines the history response
type HistoryOutput struct {
	Body struct {
		Site    string              `json:"site"`
		Records []domain.DiffRecord `json:"records"`
	}
}

// History handles the GET /snapshots/{site}/history endpoint
func (h *SnapshotsHandler) History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	records, err := h.service.History(ctx, input.Site, input.Limit)
	if err != nil {
		return nil, toHumaError(err)
	}

	out := &HistoryOutput{}
	out.Body.Site = input.Site
	out.Body.Records = records
	if out.Body.Records == nil {
		out.Body.Records = []domain.DiffRecord{}
	}
	return out, nil
}
