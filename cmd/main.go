package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aokabi/paperSpotlight/internal/config"
	"github.com/aokabi/paperSpotlight/internal/fetcher"
	"github.com/aokabi/paperSpotlight/internal/model"
	"github.com/aokabi/paperSpotlight/internal/notifier"
	"github.com/aokabi/paperSpotlight/internal/pipeline"
	"github.com/aokabi/paperSpotlight/internal/reporter"
	"github.com/aokabi/paperSpotlight/internal/source"
	"github.com/aokabi/paperSpotlight/internal/translate"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	date := cfg.Date
	if date == "" {
		date = time.Now().UTC().Format("20060102")
	}

	query := model.FetchQuery{
		Date:       date,
		Category:   cfg.Category,
		MaxResults: cfg.MaxResults,
	}
	if err := query.Validate(); err != nil {
		return fmt.Errorf("invalid fetch query: %w", err)
	}

	var translator pipeline.Translator
	switch cfg.AIType {
	case "ollama":
		if cfg.AIBaseURL == "" {
			return fmt.Errorf("ai_base_url is required when ai_type is %q", cfg.AIType)
		}
		translator = translate.NewOllamaTranslator(
			cfg.AIBaseURL,
			cfg.TargetLanguage,
			cfg.ModelName,
			cfg.Temperature,
			cfg.MaxTokens,
			cfg.AITimeout,
		)
		log.Printf("[INFO] using Ollama translator (model: %s)", cfg.ModelName)
	default:
		translator = translate.NewOpenAITranslator(
			cfg.AIBaseURL,
			cfg.OpenAIKey,
			cfg.TargetLanguage,
			cfg.ModelName,
			cfg.Temperature,
			cfg.MaxTokens,
			cfg.AITimeout,
		)
		log.Printf("[INFO] using OpenAI-compatible translator (model: %s)", cfg.ModelName)
	}

	var (
		papers = fetcher.New(source.NewArxivSource())
		slack  = notifier.New(cfg.WebhookURL, cfg.Channel, cfg.Username, cfg.Icon, nil)
		report = reporter.New(slack, notifier.ColorDanger)
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	p := pipeline.New(papers, translator, slack, query, notifier.ColorDefault)
	if err := p.Run(ctx); err != nil {
		report.Notify(fmt.Sprintf("paper spotlight run for %s/%s failed: %v", query.Category, query.Date, err))
		return fmt.Errorf("pipeline run: %w", err)
	}

	return nil
}
