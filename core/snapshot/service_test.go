package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/atomicul/website-differ/core/diff"
	"github.com/atomicul/website-differ/core/domain"
	"github.com/atomicul/website-differ/core/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCache is a minimal in-memory Cache for testing cache interaction.
type mockCache struct {
	mu   sync.Mutex
	data map[string][]byte
	gets int
	sets int
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, errors.New("key not found")
}

func (m *mockCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.data[key] = value
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// mockStore records saved diff records.
type mockStore struct {
	mu      sync.Mutex
	records []domain.DiffRecord
	saveErr error
}

func (m *mockStore) SaveRecord(_ context.Context, record domain.DiffRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockStore) History(_ context.Context, site string, limit int) ([]domain.DiffRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.DiffRecord
	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].Site != site {
			continue
		}
		out = append(out, m.records[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func newTestService(t *testing.T, cache interfaces.Cache, store interfaces.DiffHistoryStorage) *Service {
	t.Helper()
	differ, err := diff.New()
	require.NoError(t, err)
	return NewService(interfaces.Dependencies{Cache: cache}, differ, store)
}

func TestDiffFiles_IdenticalSnapshots(t *testing.T) {
	root := t.TempDir()
	html := `<html><body><main><article class="post"></article></main></body></html>`
	oldPath := writeSnapshot(t, root, "a", "snapshot.html", html)
	newPath := writeSnapshot(t, root, "b", "snapshot.html", html)

	svc := newTestService(t, nil, nil)
	result, err := svc.DiffFiles(context.Background(), oldPath, newPath)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, domain.LabelMinor, result.Label)
}

func TestDiffFiles_MissingFile(t *testing.T) {
	root := t.TempDir()
	oldPath := writeSnapshot(t, root, "a", "snapshot.html", "<html></html>")

	svc := newTestService(t, nil, nil)
	_, err := svc.DiffFiles(context.Background(), oldPath, root+"/b/snapshot.html")
	assert.Error(t, err)
}

func TestDiffFiles_UsesCache(t *testing.T) {
	root := t.TempDir()
	oldPath := writeSnapshot(t, root, "a", "snapshot.html", `<html><body><div id="x"></div></body></html>`)
	newPath := writeSnapshot(t, root, "b", "snapshot.html", `<html><body><div id="y"></div></body></html>`)

	cache := newMockCache()
	svc := newTestService(t, cache, nil)

	first, err := svc.DiffFiles(context.Background(), oldPath, newPath)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.DiffFiles(context.Background(), oldPath, newPath)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets, "cached result should be reused, not recomputed")
}

func TestCompareDirectory(t *testing.T) {
	root := t.TempDir()
	writeSnapshot(t, root, "20260801T090000", "snapshot.html",
		`<html><body><header></header><main><div class="a"></div></main></body></html>`)
	writeSnapshot(t, root, "20260802T090000", "snapshot.html",
		`<html><body><header></header><main><div class="a b"></div></main></body></html>`)
	writeSnapshot(t, root, "20260803T090000", "snapshot.html",
		`<html><body><table></table></body></html>`)

	store := &mockStore{}
	svc := newTestService(t, nil, store)

	records, err := svc.CompareDirectory(context.Background(), "example.com", root)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "20260801T090000", records[0].OldSnapshot)
	assert.Equal(t, "20260802T090000", records[0].NewSnapshot)
	assert.Equal(t, domain.LabelMinor, records[0].Result.Label)

	assert.Equal(t, "20260802T090000", records[1].OldSnapshot)
	assert.Equal(t, "20260803T090000", records[1].NewSnapshot)
	assert.Equal(t, domain.LabelMajor, records[1].Result.Label)

	assert.Len(t, store.records, 2)
	for _, rec := range records {
		assert.Equal(t, "example.com", rec.Site)
		assert.False(t, rec.CreatedAt.IsZero())
	}
}

func TestCompareDirectory_StoreErrorsAreNonFatal(t *testing.T) {
	root := t.TempDir()
	writeSnapshot(t, root, "a", "snapshot.html", "<html></html>")
	writeSnapshot(t, root, "b", "snapshot.html", "<html></html>")

	store := &mockStore{saveErr: errors.New("disk full")}
	svc := newTestService(t, nil, store)

	records, err := svc.CompareDirectory(context.Background(), "example.com", root)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestHistory_WithoutStore(t *testing.T) {
	svc := newTestService(t, nil, nil)
	_, err := svc.History(context.Background(), "example.com", 0)
	assert.Error(t, err)
}

func TestHistory_NewestFirst(t *testing.T) {
	store := &mockStore{records: []domain.DiffRecord{
		{Site: "example.com", OldSnapshot: "a", NewSnapshot: "b"},
		{Site: "other.com", OldSnapshot: "x", NewSnapshot: "y"},
		{Site: "example.com", OldSnapshot: "b", NewSnapshot: "c"},
	}}
	svc := newTestService(t, nil, store)

	records, err := svc.History(context.Background(), "example.com", 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "c", records[0].NewSnapshot)
	assert.Equal(t, "b", records[1].NewSnapshot)
}
