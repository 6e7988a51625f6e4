package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadcount/threadcount/internal/model"
)

func similarMatches() []model.SimilarMatch {
	return []model.SimilarMatch{
		{
			TemplateItem: model.TemplateItem{ID: "white-oxford", Description: "White oxford shirt"},
			UserItem:     model.WardrobeItem{ID: "item-1", Analysis: "cream button-down shirt"},
			Reason:       "Similar top, close match",
		},
		{
			TemplateItem: model.TemplateItem{ID: "navy-chinos", Description: "Navy chinos"},
			UserItem:     model.WardrobeItem{ID: "item-2", Analysis: "dark blue trousers"},
			Reason:       "Similar bottom, matching color",
		},
	}
}

func TestReviewSimilarMatchesAcceptAndSkip(t *testing.T) {
	input := strings.NewReader("a\ns\n")
	var output bytes.Buffer
	prompter := NewPrompter(input, &output)

	confirmed, err := prompter.ReviewSimilarMatches(context.Background(), "minimalist-essentials", similarMatches())
	require.NoError(t, err)

	require.Len(t, confirmed, 1)
	assert.Equal(t, "minimalist-essentials", confirmed[0].TemplateID)
	assert.Equal(t, "white-oxford", confirmed[0].TemplateItemID)
	assert.Equal(t, "item-1", confirmed[0].ItemID)

	assert.Contains(t, output.String(), "White oxford shirt")
	assert.Contains(t, output.String(), "Navy chinos")
}

func TestReviewSimilarMatchesQuitKeepsConfirmed(t *testing.T) {
	input := strings.NewReader("a\nq\n")
	var output bytes.Buffer
	prompter := NewPrompter(input, &output)

	confirmed, err := prompter.ReviewSimilarMatches(context.Background(), "tmpl", similarMatches())
	require.NoError(t, err)
	assert.Len(t, confirmed, 1)
}

func TestReviewSimilarMatchesRetriesInvalidInput(t *testing.T) {
	input := strings.NewReader("x\nmaybe\ns\ns\n")
	var output bytes.Buffer
	prompter := NewPrompter(input, &output)

	confirmed, err := prompter.ReviewSimilarMatches(context.Background(), "tmpl", similarMatches())
	require.NoError(t, err)
	assert.Empty(t, confirmed)
	assert.Contains(t, output.String(), "Please enter one of")
}

func TestReviewSimilarMatchesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prompter := NewPrompter(strings.NewReader(""), &bytes.Buffer{})
	_, err := prompter.ReviewSimilarMatches(ctx, "tmpl", similarMatches())
	assert.Error(t, err)
}

func TestClassifyProgressLifecycle(t *testing.T) {
	var output bytes.Buffer
	prompter := NewPrompter(strings.NewReader(""), &output)

	// Advancing before starting is a no-op, not a panic.
	prompter.AdvanceClassifyProgress()

	prompter.StartClassifyProgress(2)
	prompter.AdvanceClassifyProgress()
	prompter.AdvanceClassifyProgress()
	prompter.FinishClassifyProgress()

	assert.NotEmpty(t, output.String())
	assert.Nil(t, prompter.progressBar)
}

func TestNonBlockingReaderReadLine(t *testing.T) {
	reader := NewNonBlockingReader(strings.NewReader("  hello  \n"))

	line, err := reader.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
}

func TestNonBlockingReaderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A pipe with no writer activity never produces input.
	pipeReader, pipeWriter := io.Pipe()
	defer func() { _ = pipeWriter.Close() }()

	reader := NewNonBlockingReader(pipeReader)
	_, err := reader.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrInputCancelled)
}
