package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/dailylog/internal/llm"
)

// ErrGenerationFailed wraps any failure from the text-generation client.
var ErrGenerationFailed = errors.New("report generation failed")

// FileName returns the report file name for date, e.g. "日報_2025-05-20.md".
func FileName(date time.Time) string {
	return "日報_" + date.Format("2006-01-02") + ".md"
}

// Generator sends prompts to a Client and stores the answer verbatim.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a Generator backed by client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate returns the raw text produced for prompt. The error, if any,
// satisfies errors.Is(err, ErrGenerationFailed) and keeps the llm sentinel.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Generate(ctx, llm.GenerateRequest{UserPrompt: prompt})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return resp.Text, nil
}

// Write stores text unchanged as dir/FileName(date) and returns the path.
func Write(dir string, date time.Time, text string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}
	path := filepath.Join(dir, FileName(date))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
