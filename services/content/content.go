package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	contentRepo "hdmonks/database/repository/content"
	"hdmonks/models"

	"github.com/google/uuid"
)

// ContentService is the admin CRUD surface shared by blogs, faqs,
// testimonials, packages and email templates.
type ContentService[T any, P contentRepo.ContentPtr[T]] struct {
	Repo contentRepo.ContentRepository[T]
	// UniqueField, when set, names a JSON field that must be unique across
	// the collection (the blog slug).
	UniqueField string
}

func NewContentService[T any, P contentRepo.ContentPtr[T]](repo contentRepo.ContentRepository[T], uniqueField string) *ContentService[T, P] {
	return &ContentService[T, P]{Repo: repo, UniqueField: uniqueField}
}

func (s *ContentService[T, P]) List(ctx context.Context, publishedOnly bool) ([]T, error) {
	return s.Repo.List(ctx, publishedOnly)
}

func (s *ContentService[T, P]) Get(ctx context.Context, id string) (*T, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetPublished looks a record up by field and hides it unless published.
func (s *ContentService[T, P]) GetPublished(ctx context.Context, field, value string) (*T, error) {
	doc, err := s.Repo.FindOne(ctx, field, value)
	if err != nil {
		return nil, err
	}
	if v, _ := jsonField(doc, "published"); v != true {
		return nil, fmt.Errorf("%w: %s=%s", models.ErrNotFound, field, value)
	}
	return doc, nil
}

func (s *ContentService[T, P]) Create(ctx context.Context, doc *T) (*T, error) {
	prepare(doc)
	if err := P(doc).Validate(); err != nil {
		return nil, err
	}
	meta := P(doc).Meta()
	now := time.Now().UTC()
	meta.ID = uuid.New().String()
	meta.CreatedAt = now
	meta.UpdatedAt = now
	if err := s.checkUnique(ctx, doc); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Update applies a JSON patch onto the stored record. Fields absent from
// patch keep their values; id and created_at cannot be changed.
func (s *ContentService[T, P]) Update(ctx context.Context, id string, patch []byte) (*T, error) {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	meta := *P(doc).Meta()
	if err := json.Unmarshal(patch, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	updated := P(doc).Meta()
	updated.ID = meta.ID
	updated.CreatedAt = meta.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	prepare(doc)

	if err := P(doc).Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, doc); err != nil {
		return nil, err
	}
	if err := s.Repo.Replace(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *ContentService[T, P]) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *ContentService[T, P]) checkUnique(ctx context.Context, doc *T) error {
	if s.UniqueField == "" {
		return nil
	}
	value, ok := jsonField(doc, s.UniqueField)
	if !ok {
		return nil
	}
	existing, err := s.Repo.FindOne(ctx, s.UniqueField, value)
	if errors.Is(err, models.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if P(existing).Meta().ID != P(doc).Meta().ID {
		return fmt.Errorf("%w: %s %v is already in use", models.ErrConflict, s.UniqueField, value)
	}
	return nil
}

// prepare fills derived fields before validation.
func prepare(doc interface{}) {
	if b, ok := doc.(*models.Blog); ok && strings.TrimSpace(b.Slug) == "" {
		b.Slug = Slugify(b.Title)
	}
}

func jsonField(doc interface{}, field string) (interface{}, bool) {
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

// Slugify lowercases title and joins its words with hyphens.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
