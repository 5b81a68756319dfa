package content

import (
	"context"
	"testing"

	memrepo "hdmonks/database/repository/memory"
	"hdmonks/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlogs() *ContentService[models.Blog, *models.Blog] {
	return NewContentService[models.Blog, *models.Blog](memrepo.NewContent[models.Blog, *models.Blog]("blogs"), "slug")
}

func TestCreateBlog_SlugAndUniqueness(t *testing.T) {
	svc := newBlogs()
	ctx := context.Background()

	blog, err := svc.Create(ctx, &models.Blog{Title: "GST Basics: A Primer!", Content: "..."})
	require.NoError(t, err)
	assert.Equal(t, "gst-basics-a-primer", blog.Slug)
	assert.NotEmpty(t, blog.ID)
	assert.False(t, blog.CreatedAt.IsZero())

	_, err = svc.Create(ctx, &models.Blog{Title: "Other", Slug: "gst-basics-a-primer", Content: "..."})
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = svc.Create(ctx, &models.Blog{Title: "No body"})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUpdate_PatchKeepsIdentity(t *testing.T) {
	svc := newBlogs()
	ctx := context.Background()

	blog, err := svc.Create(ctx, &models.Blog{Title: "Draft", Content: "body", Author: "Team"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, blog.ID, []byte(`{"id":"forged","title":"Final","published":true}`))
	require.NoError(t, err)
	assert.Equal(t, blog.ID, updated.ID)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "Team", updated.Author)
	assert.True(t, updated.Published)
	assert.Equal(t, blog.CreatedAt, updated.CreatedAt)

	_, err = svc.Update(ctx, blog.ID, []byte(`{"title":`))
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Update(ctx, "missing", []byte(`{}`))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPublishedOnlyReads(t *testing.T) {
	svc := newBlogs()
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.Blog{Title: "Hidden", Content: "x"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &models.Blog{Title: "Live", Content: "x", Published: true})
	require.NoError(t, err)

	public, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Live", public[0].Title)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.GetPublished(ctx, "slug", "hidden")
	assert.ErrorIs(t, err, models.ErrNotFound)
	live, err := svc.GetPublished(ctx, "slug", "live")
	require.NoError(t, err)
	assert.Equal(t, "Live", live.Title)
}

func TestTestimonialRatingValidated(t *testing.T) {
	svc := NewContentService[models.Testimonial, *models.Testimonial](memrepo.NewContent[models.Testimonial, *models.Testimonial]("testimonials"), "")
	_, err := svc.Create(context.Background(), &models.Testimonial{Name: "Asha", Text: "Great", Rating: 6})
	assert.ErrorIs(t, err, models.ErrValidation)

	created, err := svc.Create(context.Background(), &models.Testimonial{Name: "Asha", Text: "Great", Rating: 5})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), created.ID))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "startup-to-ipo", Slugify("  Startup to IPO "))
	assert.Equal(t, "", Slugify("!!!"))
}
