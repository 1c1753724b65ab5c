package fetcher

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/lo"

	"github.com/aokabi/paperSpotlight/internal/model"
)

// Searcher is the capability the fetcher needs from a search index client.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]model.Paper, error)
}

type Fetcher struct {
	source Searcher
}

func New(source Searcher) *Fetcher {
	return &Fetcher{source: source}
}

// BuildQuery constructs the index query string for q: one category clause and
// one date-range clause spanning the whole day, joined by AND. Identical
// queries produce byte-identical strings.
func BuildQuery(q model.FetchQuery) string {
	return fmt.Sprintf("cat:%s AND submittedDate:[%s0000 TO %s2359]", q.Category, q.Date, q.Date)
}

// Fetch returns the abstracts of papers submitted on the day described by q,
// in feed order. Any transport or service failure is logged and treated as
// zero results so the rest of the run can continue.
func (f *Fetcher) Fetch(ctx context.Context, q model.FetchQuery) []string {
	papers, err := f.source.Search(ctx, BuildQuery(q), q.MaxResults)
	if err != nil {
		log.Printf("[WARN] failed to fetch papers for %s/%s: %v", q.Category, q.Date, err)
		return nil
	}

	abstracts := lo.FilterMap(papers, func(p model.Paper, _ int) (string, bool) {
		return p.Summary, p.Summary != ""
	})

	log.Printf("[INFO] fetched %d paper(s) for %s/%s", len(abstracts), q.Category, q.Date)
	return abstracts
}
