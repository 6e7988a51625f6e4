package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/threadcount/threadcount/internal/model"
)

// Prompter drives the interactive parts of the CLI: reviewing similar
// matches into manual links and showing batch classification progress.
type Prompter struct {
	writer      io.Writer
	reader      *NonBlockingReader
	progressBar *progressbar.ProgressBar
}

// NewPrompter creates a prompter with the given reader and writer.
// Nil arguments default to stdin and stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader: NewNonBlockingReader(reader),
		writer: writer,
	}
}

// ReviewSimilarMatches walks the user through each similar match and returns
// manual links for the ones they confirm. Quitting keeps the links confirmed
// so far.
func (p *Prompter) ReviewSimilarMatches(ctx context.Context, templateID string, matches []model.SimilarMatch) ([]model.ManualMatch, error) {
	var confirmed []model.ManualMatch

	for i, match := range matches {
		select {
		case <-ctx.Done():
			return confirmed, ctx.Err()
		default:
		}

		content := fmt.Sprintf("Capsule slot: %s\nYour item:    %s\n%s",
			BoldStyle.Render(match.TemplateItem.Description),
			match.UserItem.Analysis,
			SubtleStyle.Render(match.Reason))
		if _, err := fmt.Fprintln(p.writer, RenderBox(fmt.Sprintf("Similar Match %d of %d", i+1, len(matches)), content)); err != nil {
			return confirmed, fmt.Errorf("failed to write match box: %w", err)
		}

		if _, err := fmt.Fprintln(p.writer, "  [A] Accept - link this item to the slot"); err != nil {
			return confirmed, fmt.Errorf("failed to write accept option: %w", err)
		}
		if _, err := fmt.Fprintln(p.writer, "  [S] Skip"); err != nil {
			return confirmed, fmt.Errorf("failed to write skip option: %w", err)
		}
		if _, err := fmt.Fprintln(p.writer, "  [Q] Quit review"); err != nil {
			return confirmed, fmt.Errorf("failed to write quit option: %w", err)
		}

		choice, err := p.promptChoice(ctx, "Choice", []string{"a", "s", "q"})
		if err != nil {
			return confirmed, err
		}

		switch choice {
		case "a":
			confirmed = append(confirmed, model.ManualMatch{
				TemplateID:     templateID,
				TemplateItemID: match.TemplateItem.ID,
				ItemID:         match.UserItem.ID,
			})
			if _, err := fmt.Fprintln(p.writer, FormatSuccess("Linked "+match.UserItem.Analysis)); err != nil {
				slog.Warn("Failed to write link confirmation", "error", err)
			}
		case "s":
			continue
		case "q":
			return confirmed, nil
		}
	}

	return confirmed, nil
}

// promptChoice reads input until the user enters one of the valid choices.
func (p *Prompter) promptChoice(ctx context.Context, prompt string, valid []string) (string, error) {
	for {
		if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := p.reader.ReadLine(ctx)
		if err != nil {
			return "", err
		}

		choice := strings.ToLower(strings.TrimSpace(line))
		for _, v := range valid {
			if choice == v {
				return choice, nil
			}
		}

		if _, err := fmt.Fprintln(p.writer, FormatWarning("Please enter one of: "+strings.Join(valid, ", "))); err != nil {
			return "", fmt.Errorf("failed to write retry prompt: %w", err)
		}
	}
}

// StartClassifyProgress initializes the batch classification progress bar.
func (p *Prompter) StartClassifyProgress(total int) {
	p.progressBar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Classifying wardrobe photos...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(p.writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// AdvanceClassifyProgress moves the progress bar forward by one item.
func (p *Prompter) AdvanceClassifyProgress() {
	if p.progressBar == nil {
		return
	}
	if err := p.progressBar.Add(1); err != nil {
		slog.Warn("Failed to advance progress bar", "error", err)
	}
}

// FinishClassifyProgress completes the progress bar.
func (p *Prompter) FinishClassifyProgress() {
	if p.progressBar == nil {
		return
	}
	if err := p.progressBar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
	p.progressBar = nil
}
