package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_GeminiWithBoundedTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.EffectiveModel())
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.EffectiveEndpoint())
}

func TestConfig_OllamaDefaults(t *testing.T) {
	cfg := Config{Provider: ProviderOllama}
	assert.Equal(t, "http://localhost:11434", cfg.EffectiveEndpoint())
	assert.Equal(t, "llama3.2", cfg.EffectiveModel())
}

func TestConfig_ExplicitValuesWin(t *testing.T) {
	cfg := Config{Provider: ProviderGemini, Endpoint: "http://proxy", Model: "gemini-pro"}
	assert.Equal(t, "http://proxy", cfg.EffectiveEndpoint())
	assert.Equal(t, "gemini-pro", cfg.EffectiveModel())
}

func TestNewClient_Providers(t *testing.T) {
	c, err := NewClient(Config{Provider: ProviderGemini}, nil)
	require.NoError(t, err)
	assert.IsType(t, &geminiClient{}, c)

	c, err = NewClient(Config{Provider: ProviderOllama}, nil)
	require.NoError(t, err)
	assert.IsType(t, &ollamaClient{}, c)

	_, err = NewClient(Config{Provider: "openai"}, nil)
	assert.Error(t, err)
}
