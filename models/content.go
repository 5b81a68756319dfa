package models

import (
	"fmt"
	"time"
)

// ContentMeta is embedded in every admin-managed content record.
type ContentMeta struct {
	ID        string    `bson:"id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (m *ContentMeta) Meta() *ContentMeta { return m }

// ContentDoc is implemented by pointers to the content record types.
type ContentDoc interface {
	Meta() *ContentMeta
	Validate() error
}

type Blog struct {
	ContentMeta   `bson:",inline"`
	Title         string   `bson:"title" json:"title"`
	Slug          string   `bson:"slug" json:"slug"`
	Excerpt       string   `bson:"excerpt" json:"excerpt"`
	Content       string   `bson:"content" json:"content"`
	Author        string   `bson:"author" json:"author"`
	Category      string   `bson:"category" json:"category"`
	Tags          []string `bson:"tags" json:"tags"`
	FeaturedImage string   `bson:"featured_image,omitempty" json:"featured_image,omitempty"`
	Published     bool     `bson:"published" json:"published"`
	Views         int      `bson:"views" json:"views"`
}

func (b *Blog) Validate() error {
	if b.Title == "" || b.Slug == "" || b.Content == "" {
		return fmt.Errorf("%w: blog title, slug and content are required", ErrValidation)
	}
	return nil
}

type FAQ struct {
	ContentMeta `bson:",inline"`
	Question    string `bson:"question" json:"question"`
	Answer      string `bson:"answer" json:"answer"`
	Category    string `bson:"category" json:"category"`
	Order       int    `bson:"order" json:"order"`
	Published   bool   `bson:"published" json:"published"`
}

func (f *FAQ) Validate() error {
	if f.Question == "" || f.Answer == "" {
		return fmt.Errorf("%w: faq question and answer are required", ErrValidation)
	}
	return nil
}

type Testimonial struct {
	ContentMeta `bson:",inline"`
	Name        string `bson:"name" json:"name"`
	Company     string `bson:"company" json:"company"`
	Designation string `bson:"designation,omitempty" json:"designation,omitempty"`
	Text        string `bson:"text" json:"text"`
	Rating      int    `bson:"rating" json:"rating"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
	Published   bool   `bson:"published" json:"published"`
}

func (t *Testimonial) Validate() error {
	if t.Name == "" || t.Text == "" {
		return fmt.Errorf("%w: testimonial name and text are required", ErrValidation)
	}
	if t.Rating < 1 || t.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	return nil
}

// Package is a bundle of catalog services sold at a fixed price.
type Package struct {
	ContentMeta `bson:",inline"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	Services    []string `bson:"services" json:"services"`
	Price       float64  `bson:"price" json:"price"`
	Duration    string   `bson:"duration" json:"duration"`
	Features    []string `bson:"features" json:"features"`
	Popular     bool     `bson:"popular" json:"popular"`
	Published   bool     `bson:"published" json:"published"`
}

func (p *Package) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: package name is required", ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: package price cannot be negative", ErrValidation)
	}
	return nil
}

const (
	TemplateBooking = "booking"
	TemplateContact = "contact"
)

// EmailTemplate bodies are rendered with text/template.
type EmailTemplate struct {
	ContentMeta  `bson:",inline"`
	Name         string   `bson:"name" json:"name"`
	Subject      string   `bson:"subject" json:"subject"`
	HTMLContent  string   `bson:"html_content" json:"html_content"`
	TemplateType string   `bson:"template_type" json:"template_type"`
	Variables    []string `bson:"variables" json:"variables"`
}

func (e *EmailTemplate) Validate() error {
	if e.Name == "" || e.Subject == "" || e.HTMLContent == "" || e.TemplateType == "" {
		return fmt.Errorf("%w: template name, subject, html_content and template_type are required", ErrValidation)
	}
	return nil
}
