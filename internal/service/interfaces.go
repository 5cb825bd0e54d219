package service

import (
	"context"
	"time"
)

// Exporter writes one day of tracker data under dir and returns the file path.
type Exporter interface {
	Export(ctx context.Context, dir string, date time.Time) (string, error)
}

// TextGenerator turns a prompt into report text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
