package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hdmonks/models"

	"github.com/google/uuid"
)

func (s *DefaultAdminService) TrackEvent(ctx context.Context, ev models.AnalyticsEvent) (*models.AnalyticsEvent, error) {
	ev.EventType = strings.TrimSpace(ev.EventType)
	if ev.EventType == "" {
		return nil, fmt.Errorf("%w: event_type is required", models.ErrValidation)
	}
	ev.ID = uuid.New().String()
	ev.CreatedAt = time.Now().UTC()
	if err := s.Analytics.Track(ctx, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// AnalyticsSummary counts events in [start, end]. A zero bound is open.
func (s *DefaultAdminService) AnalyticsSummary(ctx context.Context, start, end time.Time) (*models.AnalyticsSummary, error) {
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return nil, fmt.Errorf("%w: end_date is before start_date", models.ErrValidation)
	}
	return s.Analytics.Summary(ctx, start, end)
}
