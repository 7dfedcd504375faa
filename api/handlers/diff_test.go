package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicul/website-differ/core/diff"
	"github.com/atomicul/website-differ/core/domain"
	"github.com/atomicul/website-differ/core/interfaces"
)

// mockHTTPClient serves canned bodies per URL.
type mockHTTPClient struct {
	pages map[string]string
	fail  bool
}

type mockResponse struct {
	status int
	body   io.ReadCloser
}

func (r *mockResponse) StatusCode() int          { return r.status }
func (r *mockResponse) Body() io.ReadCloser      { return r.body }
func (r *mockResponse) Header(key string) string { return "" }

func (m *mockHTTPClient) Get(_ context.Context, url string) (interfaces.Response, error) {
	if m.fail {
		return nil, errors.New("connection refused")
	}
	page, ok := m.pages[url]
	if !ok {
		return &mockResponse{status: http.StatusNotFound, body: io.NopCloser(strings.NewReader(""))}, nil
	}
	return &mockResponse{status: http.StatusOK, body: io.NopCloser(strings.NewReader(page))}, nil
}

func (m *mockHTTPClient) Post(_ context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return nil, errors.New("not implemented")
}

func newDiffHandler(t *testing.T, deps interfaces.Dependencies) *DiffHandler {
	t.Helper()
	differ, err := diff.New()
	require.NoError(t, err)
	return NewDiffHandler(differ, deps)
}

func TestDiffDocuments_Identical(t *testing.T) {
	handler := newDiffHandler(t, interfaces.Dependencies{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	page := `<html><body><main><article></article></main></body></html>`
	resp := api.Post("/diff", map[string]interface{}{
		"old_html": page,
		"new_html": page,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var result domain.DiffResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, domain.LabelMinor, result.Label)
}

func TestDiffDocuments_RoundsToFourDecimals(t *testing.T) {
	handler := newDiffHandler(t, interfaces.Dependencies{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/diff", map[string]interface{}{
		"old_html": `<html><body><div class="a b c"></div></body></html>`,
		"new_html": `<html><body><div class="a b"></div></body></html>`,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var result domain.DiffResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))

	// Class Jaccard 2/3 -> skeleton diff 0.1, composite 0.06.
	assert.InDelta(t, 0.06, result.Score, 1e-9)
	assert.InDelta(t, 0.1, result.SkeletonDifference, 1e-9)
}

func TestDiffDocuments_EmptyInput(t *testing.T) {
	handler := newDiffHandler(t, interfaces.Dependencies{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/diff", map[string]interface{}{
		"old_html": "",
		"new_html": "<html></html>",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDiffURLs(t *testing.T) {
	client := &mockHTTPClient{pages: map[string]string{
		"https://example.com/old": `<html><body><header></header><main></main></body></html>`,
		"https://example.com/new": `<html><body><header></header><main></main></body></html>`,
	}}
	handler := newDiffHandler(t, interfaces.Dependencies{HTTPClient: client})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/diff/urls", map[string]interface{}{
		"old_url": "https://example.com/old",
		"new_url": "https://example.com/new",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var result domain.DiffResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Equal(t, 0.0, result.Score)
}

func TestDiffURLs_FetchFailure(t *testing.T) {
	handler := newDiffHandler(t, interfaces.Dependencies{HTTPClient: &mockHTTPClient{fail: true}})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/diff/urls", map[string]interface{}{
		"old_url": "https://example.com/old",
		"new_url": "https://example.com/new",
	})
	assert.Equal(t, http.StatusBadGateway, resp.Code)
}

func TestDiffURLs_Non200Status(t *testing.T) {
	handler := newDiffHandler(t, interfaces.Dependencies{HTTPClient: &mockHTTPClient{pages: map[string]string{}}})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/diff/urls", map[string]interface{}{
		"old_url": "https://example.com/missing",
		"new_url": "https://example.com/missing",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
