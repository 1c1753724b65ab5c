// Package pipeline composes the fetcher, translator and notifier into one
// sequential run: fetch the day's abstracts, then translate and post each one
// in order. There is no concurrency, batching or retry anywhere in the loop.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/aokabi/paperSpotlight/internal/model"
)

type PaperProvider interface {
	Fetch(ctx context.Context, q model.FetchQuery) []string
}

type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

type Notifier interface {
	Notify(ctx context.Context, text, color string) error
}

type Pipeline struct {
	papers     PaperProvider
	translator Translator
	notifier   Notifier
	query      model.FetchQuery
	color      string
}

func New(papers PaperProvider, translator Translator, notifier Notifier, query model.FetchQuery, color string) *Pipeline {
	return &Pipeline{
		papers:     papers,
		translator: translator,
		notifier:   notifier,
		query:      query,
		color:      color,
	}
}

// Run executes one pass over the day's papers. A fetch failure has already
// been reduced to zero results by the fetcher; a translation or delivery
// failure aborts the remaining iterations and propagates.
func (p *Pipeline) Run(ctx context.Context) error {
	abstracts := p.papers.Fetch(ctx, p.query)
	if len(abstracts) == 0 {
		log.Printf("[INFO] no papers to report for %s/%s", p.query.Category, p.query.Date)
		return nil
	}

	for i, abstract := range abstracts {
		translated, err := p.translator.Translate(ctx, abstract)
		if err != nil {
			return fmt.Errorf("translate paper %d of %d: %w", i+1, len(abstracts), err)
		}

		if err := p.notifier.Notify(ctx, translated, p.color); err != nil {
			return fmt.Errorf("notify paper %d of %d: %w", i+1, len(abstracts), err)
		}

		log.Printf("[INFO] posted paper %d of %d", i+1, len(abstracts))
	}

	return nil
}
