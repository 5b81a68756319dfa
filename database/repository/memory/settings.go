package memrepo

import (
	"context"
	"sync"
	"time"

	"hdmonks/models"
)

type Settings struct {
	mu sync.Mutex
	s  *models.Settings
}

func NewSettings() *Settings { return &Settings{} }

func (r *Settings) Get(_ context.Context) (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.s == nil {
		return nil, nil
	}
	out := *r.s
	return &out, nil
}

func (r *Settings) Upsert(_ context.Context, upd models.SettingsUpdate) (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.s == nil {
		d := models.DefaultSettings()
		r.s = &d
	}
	s := r.s
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&s.CompanyName, upd.CompanyName)
	set(&s.CompanyEmail, upd.CompanyEmail)
	set(&s.CompanyPhone, upd.CompanyPhone)
	set(&s.CompanyAddress, upd.CompanyAddress)
	set(&s.SiteTitle, upd.SiteTitle)
	set(&s.SiteDescription, upd.SiteDescription)
	set(&s.CompanyLogoURL, upd.CompanyLogoURL)
	set(&s.FaviconURL, upd.FaviconURL)
	set(&s.SMTPHost, upd.SMTPHost)
	set(&s.SMTPUser, upd.SMTPUser)
	set(&s.SMTPPassword, upd.SMTPPassword)
	set(&s.RecipientEmail, upd.RecipientEmail)
	if upd.SMTPPort != nil {
		s.SMTPPort = *upd.SMTPPort
	}
	if upd.SocialLinks != nil {
		s.SocialLinks = *upd.SocialLinks
	}
	s.UpdatedAt = time.Now().UTC()
	out := *s
	return &out, nil
}
