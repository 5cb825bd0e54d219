package llm

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// geminiClient implements Client using the Gemini generateContent REST API.
type geminiClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewGeminiClient creates a Client that talks to the Gemini API.
func NewGeminiClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{cfg: cfg, http: newHTTPClient(), observer: observer}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

// geminiRequest is the JSON body sent to models/{model}:generateContent.
type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason"`
}

type geminiResponse struct {
	Candidates   []geminiCandidate `json:"candidates"`
	ModelVersion string            `json:"modelVersion"`
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	model := c.cfg.EffectiveModel()

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.UserPrompt}}}},
	}
	if req.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemPrompt}}}
	}

	endpoint := strings.TrimRight(c.cfg.EffectiveEndpoint(), "/") +
		"/v1beta/models/" + url.PathEscape(model) + ":generateContent"
	headers := map[string]string{"x-goog-api-key": c.cfg.APIKey}

	var resp geminiResponse
	err := postJSON(ctx, c.http, endpoint, headers, body, &resp)
	var text string
	if err == nil {
		text = resp.text()
		if text == "" {
			err = ErrEmptyResponse
		}
	}
	if err != nil {
		err = classify(ctx, err)
		observe(c.observer, ProviderGemini, model, start, req.UserPrompt, "", err)
		return nil, err
	}

	observe(c.observer, ProviderGemini, model, start, req.UserPrompt, text, nil)
	if resp.ModelVersion != "" {
		model = resp.ModelVersion
	}
	return &GenerateResponse{
		Text:      text,
		Model:     model,
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}

// text joins the parts of the first candidate.
func (r geminiResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
