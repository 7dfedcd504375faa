// ABOUTME: Diff handler scoring structural change between two HTML documents
// ABOUTME: Accepts inline documents or URLs fetched through the HTTP client

package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/atomicul/website-differ/core/diff"
	"github.com/atomicul/website-differ/core/domain"
	"github.com/atomicul/website-differ/core/errors"
	"github.com/atomicul/website-differ/core/interfaces"
)

const urlDiffCacheTTL = time.Hour

// DiffHandler handles structural diff requests
type DiffHandler struct {
	differ *diff.Differ
	deps   interfaces.Dependencies
}

// NewDiffHandler creates a new diff handler
func NewDiffHandler(differ *diff.Differ, deps interfaces.Dependencies) *DiffHandler {
	return &DiffHandler{
		differ: differ,
		deps:   deps,
	}
}

// RegisterRoutes registers diff routes
func (h *DiffHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "diffDocuments",
		Method:      http.MethodPost,
		Path:        "/diff",
		Summary:     "Score structural change between two HTML documents",
		Description: "Compares the landmark sequence and shallow skeleton of two HTML documents and returns a composite diff score in [0,1] with a qualitative label.",
		Tags:        []string{"Diff"},
	}, h.DiffDocuments)

	huma.Register(api, huma.Operation{
		OperationID: "diffURLs",
		Method:      http.MethodPost,
		Path:        "/diff/urls",
		Summary:     "Fetch two pages and score their structural difference",
		Tags:        []string{"Diff"},
	}, h.DiffURLs)
}

// DiffDocumentsInput defines the input for inline document diffing
type DiffDocumentsInput struct {
	Body struct {
		OldHTML string `json:"old_html" doc:"Raw HTML of the old snapshot"`
		NewHTML string `json:"new_html" doc:"Raw HTML of the new snapshot"`
	}
}

// DiffOutput defines the diff response
type DiffOutput struct {
	Body domain.DiffResult
}

// DiffDocuments handles the POST /diff endpoint
func (h *DiffHandler) DiffDocuments(ctx context.Context, input *DiffDocumentsInput) (*DiffOutput, error) {
	if input.Body.OldHTML == "" {
		return nil, huma.Error400BadRequest("old_html cannot be empty")
	}
	if input.Body.NewHTML == "" {
		return nil, huma.Error400BadRequest("new_html cannot be empty")
	}

	result, err := h.differ.Compare(input.Body.OldHTML, input.Body.NewHTML)
	if err != nil {
		return nil, toHumaError(err)
	}

	return diffOutput(result), nil
}

// DiffURLsInput defines the input for URL-based diffing
type DiffURLsInput struct {
	Body struct {
		OldURL string `json:"old_url" format:"uri" doc:"URL of the old page"`
		NewURL string `json:"new_url" format:"uri" doc:"URL of the new page"`
	}
}

// DiffURLs handles the POST /diff/urls endpoint
func (h *DiffHandler) DiffURLs(ctx context.Context, input *DiffURLsInput) (*DiffOutput, error) {
	if input.Body.OldURL == "" || input.Body.NewURL == "" {
		return nil, huma.Error400BadRequest("both old_url and new_url are required")
	}

	cacheKey := urlPairCacheKey(input.Body.OldURL, input.Body.NewURL)
	if h.deps.Cache != nil {
		if data, err := h.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var result domain.DiffResult
			if err := json.Unmarshal(data, &result); err == nil {
				return diffOutput(result), nil
			}
		}
	}

	oldHTML, err := h.fetch(ctx, input.Body.OldURL)
	if err != nil {
		return nil, toHumaError(err)
	}
	newHTML, err := h.fetch(ctx, input.Body.NewURL)
	if err != nil {
		return nil, toHumaError(err)
	}

	result, err := h.differ.Compare(oldHTML, newHTML)
	if err != nil {
		return nil, toHumaError(err)
	}

	if h.deps.Cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = h.deps.Cache.Set(ctx, cacheKey, data, urlDiffCacheTTL)
		}
	}
	return diffOutput(result), nil
}

// fetch retrieves one page body through the HTTP client interface.
func (h *DiffHandler) fetch(ctx context.Context, url string) (string, error) {
	resp, err := h.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return "", &errors.ExternalAPIError{API: "page fetch", Message: err.Error()}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return "", &errors.ExternalAPIError{
			API:        "page fetch",
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status fetching " + url,
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", &errors.ExternalAPIError{API: "page fetch", Message: err.Error()}
	}
	return string(body), nil
}

// diffOutput rounds the scores to the four decimals the API promises.
func diffOutput(result domain.DiffResult) *DiffOutput {
	result.Score = round4(result.Score)
	result.LandmarkDifference = round4(result.LandmarkDifference)
	result.SkeletonDifference = round4(result.SkeletonDifference)

	out := &DiffOutput{}
	out.Body = result
	return out
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func urlPairCacheKey(oldURL, newURL string) string {
	h := sha256.New()
	h.Write([]byte(oldURL))
	h.Write([]byte{0})
	h.Write([]byte(newURL))
	return "diffurl:" + hex.EncodeToString(h.Sum(nil))
}
