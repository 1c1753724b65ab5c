// Package model defines the value records passed between the pipeline components:
// FetchQuery describes one day's worth of papers to look up, Paper is a single
// fetched record. Both are constructed once and never mutated afterwards.
package model

import (
	"fmt"
	"time"
)

const dateLayout = "20060102"

// FetchQuery describes a search for papers submitted on a single UTC day.
type FetchQuery struct {
	Date       string // calendar day, YYYYMMDD
	Category   string // arXiv taxonomy string, e.g. "quant-ph"
	MaxResults int
}

// Validate checks the query invariants: Date must be a real calendar day in
// YYYYMMDD form, Category non-empty, MaxResults positive.
func (q FetchQuery) Validate() error {
	if len(q.Date) != 8 {
		return fmt.Errorf("date must be an 8-digit YYYYMMDD string, got %q", q.Date)
	}
	if _, err := time.Parse(dateLayout, q.Date); err != nil {
		return fmt.Errorf("date %q is not a valid calendar day", q.Date)
	}
	if q.Category == "" {
		return fmt.Errorf("category must be non-empty")
	}
	if q.MaxResults <= 0 {
		return fmt.Errorf("max results must be positive, got %d", q.MaxResults)
	}
	return nil
}

type Paper struct {
	Title     string
	Link      string
	Summary   string
	Published time.Time
}
