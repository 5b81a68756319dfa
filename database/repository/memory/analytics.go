package memrepo

import (
	"context"
	"sync"
	"time"

	"hdmonks/models"
)

type Analytics struct {
	mu     sync.Mutex
	events []models.AnalyticsEvent
}

func NewAnalytics() *Analytics { return &Analytics{} }

func (r *Analytics) Track(_ context.Context, ev *models.AnalyticsEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *ev)
	return nil
}

func (r *Analytics) Summary(_ context.Context, start, end time.Time) (*models.AnalyticsSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sum := &models.AnalyticsSummary{ByType: map[string]int64{}}
	for _, ev := range r.events {
		if (!start.IsZero() && ev.CreatedAt.Before(start)) || (!end.IsZero() && ev.CreatedAt.After(end)) {
			continue
		}
		sum.ByType[ev.EventType]++
		sum.TotalEvents++
	}
	return sum, nil
}

func (r *Analytics) EnsureIndexes(context.Context) error { return nil }
