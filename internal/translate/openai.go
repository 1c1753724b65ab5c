package translate

import (
	"context"
	"fmt"
	"math"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAITranslator struct {
	client      *openai.Client
	language    string
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
}

// NewOpenAITranslator creates a translator backed by any OpenAI-compatible API.
// Set baseURL to a non-empty string to point at a local server (LM Studio,
// llama.cpp, Ollama's /v1 endpoint, etc.); leave empty for api.openai.com.
func NewOpenAITranslator(baseURL, apiKey, language, model string, temperature float32, maxTokens int, timeout time.Duration) *OpenAITranslator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAITranslator{
		client:      openai.NewClientWithConfig(cfg),
		language:    language,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
	}
}

// Translate sends one abstract through the completion API and returns the
// generated text. Authentication, rate-limit and network failures are not
// recovered here; they propagate to the caller.
func (o *OpenAITranslator) Translate(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	// The request marshals temperature with omitempty, so an exact 0 would
	// vanish from the body and the service would apply its own default.
	// The smallest positive float keeps an effective temperature of 0 on
	// the wire.
	temperature := o.temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: temperature,
		MaxTokens:   o.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: Prompt(o.language, text)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model %q", o.model)
	}

	return resp.Choices[0].Message.Content, nil
}
