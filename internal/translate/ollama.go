package translate

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ollama/ollama/api"
)

type OllamaTranslator struct {
	client      *api.Client
	language    string
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	mu          sync.Mutex
}

func NewOllamaTranslator(host, language, model string, temperature float32, maxTokens int, timeout time.Duration) *OllamaTranslator {
	httpClient := &http.Client{}

	c := api.NewClient(&url.URL{
		Scheme: "http",
		Host:   host,
		Path:   "/",
	}, httpClient)

	return &OllamaTranslator{
		client:      c,
		language:    language,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
	}
}

func (o *OllamaTranslator) Translate(ctx context.Context, text string) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	req := &api.GenerateRequest{
		Model:  o.model,
		Prompt: Prompt(o.language, text),
		Options: map[string]any{
			"temperature": o.temperature,
			"num_predict": o.maxTokens,
		},
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	var responseFlow []string
	err := o.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		responseFlow = append(responseFlow, resp.Response)
		return nil
	})
	if err != nil {
		return "", err
	}

	return strings.Join(responseFlow, ""), nil
}
