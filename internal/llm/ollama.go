package llm

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// ollamaClient implements Client using the Ollama HTTP API.
type ollamaClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOllamaClient creates a Client that talks to a local Ollama instance.
func NewOllamaClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaClient{cfg: cfg, http: newHTTPClient(), observer: observer}
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model  string `json:"model"`
	System string `json:"system,omitempty"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// ollamaResponse is the JSON body returned by POST /api/generate (non-streaming).
type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	model := c.cfg.EffectiveModel()

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	body := ollamaRequest{
		Model:  model,
		System: req.SystemPrompt,
		Prompt: req.UserPrompt,
		Stream: false,
	}

	endpoint := strings.TrimRight(c.cfg.EffectiveEndpoint(), "/") + "/api/generate"
	var resp ollamaResponse
	err := postJSON(ctx, c.http, endpoint, nil, body, &resp)
	if err == nil && resp.Response == "" {
		err = ErrEmptyResponse
	}
	if err != nil {
		err = classify(ctx, err)
		observe(c.observer, ProviderOllama, model, start, req.UserPrompt, "", err)
		return nil, err
	}

	observe(c.observer, ProviderOllama, model, start, req.UserPrompt, resp.Response, nil)
	if resp.Model != "" {
		model = resp.Model
	}
	return &GenerateResponse{
		Text:      resp.Response,
		Model:     model,
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}
