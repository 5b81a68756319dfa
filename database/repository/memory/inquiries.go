package memrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"hdmonks/models"
)

type Inquiries struct {
	mu        sync.Mutex
	inquiries map[string]models.Inquiry
}

func NewInquiries() *Inquiries {
	return &Inquiries{inquiries: map[string]models.Inquiry{}}
}

func (r *Inquiries) Create(_ context.Context, i *models.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inquiries[i.ID] = *i
	return nil
}

func (r *Inquiries) GetByID(_ context.Context, id string) (*models.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.inquiries[id]
	if !ok {
		return nil, fmt.Errorf("%w: inquiry %s", models.ErrNotFound, id)
	}
	return &i, nil
}

func (r *Inquiries) List(_ context.Context, skip, limit int64) ([]models.Inquiry, error) {
	r.mu.Lock()
	all := make([]models.Inquiry, 0, len(r.inquiries))
	for _, i := range r.inquiries {
		all = append(all, i)
	}
	r.mu.Unlock()
	sort.Slice(all, func(a, b int) bool { return all[a].CreatedAt.After(all[b].CreatedAt) })
	return page(all, skip, limit), nil
}

func (r *Inquiries) UpdateStatus(_ context.Context, id string, from, to models.InquiryStatus) (*models.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.inquiries[id]
	if !ok {
		return nil, fmt.Errorf("%w: inquiry %s", models.ErrNotFound, id)
	}
	if i.Status != from {
		return nil, fmt.Errorf("%w: inquiry %s is no longer %s", models.ErrInvalidTransition, id, from)
	}
	i.Status, i.UpdatedAt = to, time.Now().UTC()
	r.inquiries[id] = i
	return &i, nil
}

func (r *Inquiries) CountByStatus(_ context.Context) (map[models.InquiryStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[models.InquiryStatus]int64{}
	for _, i := range r.inquiries {
		counts[i.Status]++
	}
	return counts, nil
}

func (r *Inquiries) EnsureIndexes(context.Context) error { return nil }
