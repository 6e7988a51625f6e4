package vision

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadcount/threadcount/internal/common"
	"github.com/threadcount/threadcount/internal/model"
	"github.com/threadcount/threadcount/internal/storage"
)

// mockClient returns canned classifications for tests.
type mockClient struct {
	result   Classification
	err      error
	requests []ClassifyRequest
}

func (m *mockClient) Classify(_ context.Context, req ClassifyRequest) (Classification, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return Classification{}, m.err
	}
	return m.result, nil
}

func writeTestPhoto(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("not a real image"), 0o600))
	return path
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClassifyItem(t *testing.T) {
	client := &mockClient{result: Classification{
		Category:    "top",
		Description: "Black cotton t-shirt",
		Color:       "black",
		StyleTags:   []string{"casual"},
		Confidence:  0.9,
	}}
	classifier := NewClassifierWithClient(client, testLogger())
	defer classifier.Close()

	item := &model.WardrobeItem{
		ID:        "item-1",
		Category:  model.CategoryTop,
		PhotoPath: writeTestPhoto(t, "tee.jpg"),
		Notes:     "worn often",
	}

	result, err := classifier.ClassifyItem(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, "Black cotton t-shirt", result.Description)

	require.Len(t, client.requests, 1)
	assert.Equal(t, "image/jpeg", client.requests[0].MimeType)
	assert.Equal(t, "worn often", client.requests[0].Notes)
	assert.NotEmpty(t, client.requests[0].ImageData)
}

func TestClassifyItemNoPhoto(t *testing.T) {
	classifier := NewClassifierWithClient(&mockClient{}, testLogger())
	defer classifier.Close()

	_, err := classifier.ClassifyItem(context.Background(), &model.WardrobeItem{ID: "item-1"})
	assert.ErrorIs(t, err, common.ErrClassificationFailed)
}

func TestClassifyItemUnsupportedFormat(t *testing.T) {
	classifier := NewClassifierWithClient(&mockClient{}, testLogger())
	defer classifier.Close()

	item := &model.WardrobeItem{ID: "item-1", PhotoPath: writeTestPhoto(t, "photo.tiff")}
	_, err := classifier.ClassifyItem(context.Background(), item)
	assert.Error(t, err)
}

func TestClassifyItemProviderFailure(t *testing.T) {
	client := &mockClient{err: errors.New("boom")}
	classifier := NewClassifierWithClient(client, testLogger())
	classifier.retryOpts.MaxAttempts = 2
	classifier.retryOpts.InitialDelay = 1
	defer classifier.Close()

	item := &model.WardrobeItem{ID: "item-1", PhotoPath: writeTestPhoto(t, "tee.png")}
	_, err := classifier.ClassifyItem(context.Background(), item)
	assert.ErrorIs(t, err, common.ErrClassificationFailed)
	assert.Len(t, client.requests, 2, "provider errors are retried")
}

func TestApply(t *testing.T) {
	item := &model.WardrobeItem{ID: "item-1", Category: model.CategoryTop}

	err := Apply(item, Classification{
		Category:    "footwear",
		Description: "White leather sneakers",
		Color:       "white",
		StyleTags:   []string{"casual", "athletic"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryShoes, item.Category)
	assert.Equal(t, "White leather sneakers", item.Analysis)
	assert.Equal(t, "white", item.Color)
	assert.Equal(t, []string{"casual", "athletic"}, item.StyleTags)
}

func TestApplyRejectsUnknownCategory(t *testing.T) {
	item := &model.WardrobeItem{ID: "item-1", Category: model.CategoryTop}
	err := Apply(item, Classification{Category: "headwear"})
	assert.Error(t, err)
	assert.Equal(t, model.CategoryTop, item.Category, "item is unchanged on failure")
}

func TestClassifyPending(t *testing.T) {
	ctx := context.Background()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	defer func() { _ = store.Close() }()

	photo := writeTestPhoto(t, "tee.jpg")
	require.NoError(t, store.SaveItem(ctx, &model.WardrobeItem{ID: "pending", Category: model.CategoryTop, PhotoPath: photo}))
	require.NoError(t, store.SaveItem(ctx, &model.WardrobeItem{ID: "done", Category: model.CategoryShoes, Analysis: "white sneakers"}))

	client := &mockClient{result: Classification{
		Category:    "top",
		Description: "Black cotton t-shirt",
		Color:       "black",
		StyleTags:   []string{"casual"},
		Confidence:  0.9,
	}}
	classifier := NewClassifierWithClient(client, testLogger())
	defer classifier.Close()

	var progressCalls int
	stats, err := classifier.ClassifyPending(ctx, store, func(_, _ int) { progressCalls++ })
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalItems)
	assert.Equal(t, 1, stats.Classified)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, 1, progressCalls)

	updated, err := store.GetItem(ctx, "pending")
	require.NoError(t, err)
	assert.Equal(t, "Black cotton t-shirt", updated.Analysis)
	assert.Equal(t, "black", updated.Color)
}

func TestClassifyPendingNoItems(t *testing.T) {
	ctx := context.Background()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	defer func() { _ = store.Close() }()

	classifier := NewClassifierWithClient(&mockClient{}, testLogger())
	defer classifier.Close()

	_, err = classifier.ClassifyPending(ctx, store, nil)
	assert.ErrorIs(t, err, common.ErrNoItems)
}

func TestNewClientUnsupportedProvider(t *testing.T) {
	_, err := NewClient(Config{Provider: "palmistry"})
	assert.Error(t, err)
}
