package llm

import (
	"log/slog"
)

// CallEvent records metadata about a single generation call.
type CallEvent struct {
	Provider      Provider
	Model         string
	LatencyMs     int64
	PromptChars   int
	ResponseChars int
	Success       bool
	ErrorCode     string
}

// Observer receives events about generation calls for logging.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to a structured logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"provider", event.Provider,
		"model", event.Model,
		"latency_ms", event.LatencyMs,
		"prompt_chars", event.PromptChars,
	}
	if !event.Success {
		o.logger.Error("llm_call", append(attrs, "status", "err:"+event.ErrorCode)...)
		return
	}
	o.logger.Info("llm_call", append(attrs, "response_chars", event.ResponseChars, "status", "ok")...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
