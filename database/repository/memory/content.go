package memrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	contentRepo "hdmonks/database/repository/content"
	"hdmonks/models"
)

// Content is a generic in-memory content collection. Field lookups go
// through the JSON encoding of T, so field names match the bson names.
type Content[T any, P contentRepo.ContentPtr[T]] struct {
	mu   sync.Mutex
	docs []T
	name string
}

func NewContent[T any, P contentRepo.ContentPtr[T]](name string) *Content[T, P] {
	return &Content[T, P]{name: name}
}

func (r *Content[T, P]) List(_ context.Context, publishedOnly bool) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []T{}
	for _, d := range r.docs {
		if publishedOnly {
			if v, _ := fieldOf(d, "published"); v != true {
				continue
			}
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return P(&out[i]).Meta().CreatedAt.After(P(&out[j]).Meta().CreatedAt)
	})
	return out, nil
}

func (r *Content[T, P]) GetByID(ctx context.Context, id string) (*T, error) {
	return r.FindOne(ctx, "id", id)
}

func (r *Content[T, P]) FindOne(_ context.Context, field string, value interface{}) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.docs {
		if v, ok := fieldOf(d, field); ok && v == value {
			out := d
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %s=%v", models.ErrNotFound, r.name, field, value)
}

func (r *Content[T, P]) Create(_ context.Context, doc *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := P(doc).Meta().ID
	for _, d := range r.docs {
		if P(&d).Meta().ID == id {
			return fmt.Errorf("%w: duplicate %s record", models.ErrConflict, r.name)
		}
	}
	r.docs = append(r.docs, *doc)
	return nil
}

func (r *Content[T, P]) Replace(_ context.Context, doc *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := P(doc).Meta().ID
	for i := range r.docs {
		if P(&r.docs[i]).Meta().ID == id {
			r.docs[i] = *doc
			return nil
		}
	}
	return fmt.Errorf("%w: %s %s", models.ErrNotFound, r.name, id)
}

func (r *Content[T, P]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.docs {
		if P(&r.docs[i]).Meta().ID == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s %s", models.ErrNotFound, r.name, id)
}

func (r *Content[T, P]) EnsureIndexes(context.Context) error { return nil }

func fieldOf(doc interface{}, field string) (interface{}, bool) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, false
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	v, ok := m[field]
	return v, ok
}
