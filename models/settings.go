package models

import "time"

const SettingsID = "settings"

type Settings struct {
	ID              string            `bson:"id" json:"id"`
	CompanyName     string            `bson:"company_name" json:"company_name"`
	CompanyEmail    string            `bson:"company_email" json:"company_email"`
	CompanyPhone    string            `bson:"company_phone" json:"company_phone"`
	CompanyAddress  string            `bson:"company_address" json:"company_address"`
	SiteTitle       string            `bson:"site_title" json:"site_title"`
	SiteDescription string            `bson:"site_description" json:"site_description"`
	CompanyLogoURL  string            `bson:"company_logo_url,omitempty" json:"company_logo_url,omitempty"`
	FaviconURL      string            `bson:"favicon_url,omitempty" json:"favicon_url,omitempty"`
	SMTPHost        string            `bson:"smtp_host,omitempty" json:"smtp_host,omitempty"`
	SMTPPort        int               `bson:"smtp_port,omitempty" json:"smtp_port,omitempty"`
	SMTPUser        string            `bson:"smtp_user,omitempty" json:"smtp_user,omitempty"`
	SMTPPassword    string            `bson:"smtp_password,omitempty" json:"smtp_password,omitempty"`
	RecipientEmail  string            `bson:"recipient_email,omitempty" json:"recipient_email,omitempty"`
	SocialLinks     map[string]string `bson:"social_links" json:"social_links"`
	UpdatedAt       time.Time         `bson:"updated_at" json:"updated_at"`
}

func DefaultSettings() Settings {
	return Settings{
		ID:              SettingsID,
		CompanyName:     "HD MONKS",
		CompanyEmail:    "hdmonkslegal@gmail.com",
		CompanyPhone:    "+91-7045861090, +91-7011340279",
		CompanyAddress:  "Your Business Address",
		SiteTitle:       "HD MONKS - Business Solutions",
		SiteDescription: "End-to-end business solutions from startup to IPO",
		SocialLinks:     map[string]string{},
	}
}

// Public strips the mail server fields.
func (s Settings) Public() Settings {
	s.SMTPHost, s.SMTPPort, s.SMTPUser, s.SMTPPassword, s.RecipientEmail = "", 0, "", "", ""
	return s
}

// Redacted hides the stored SMTP password from admin reads.
func (s Settings) Redacted() Settings {
	if s.SMTPPassword != "" {
		s.SMTPPassword = "********"
	}
	return s
}

type SettingsUpdate struct {
	CompanyName     *string            `json:"company_name" bson:"company_name,omitempty"`
	CompanyEmail    *string            `json:"company_email" bson:"company_email,omitempty"`
	CompanyPhone    *string            `json:"company_phone" bson:"company_phone,omitempty"`
	CompanyAddress  *string            `json:"company_address" bson:"company_address,omitempty"`
	SiteTitle       *string            `json:"site_title" bson:"site_title,omitempty"`
	SiteDescription *string            `json:"site_description" bson:"site_description,omitempty"`
	CompanyLogoURL  *string            `json:"company_logo_url" bson:"company_logo_url,omitempty"`
	FaviconURL      *string            `json:"favicon_url" bson:"favicon_url,omitempty"`
	SMTPHost        *string            `json:"smtp_host" bson:"smtp_host,omitempty"`
	SMTPPort        *int               `json:"smtp_port" bson:"smtp_port,omitempty"`
	SMTPUser        *string            `json:"smtp_user" bson:"smtp_user,omitempty"`
	SMTPPassword    *string            `json:"smtp_password" bson:"smtp_password,omitempty"`
	RecipientEmail  *string            `json:"recipient_email" bson:"recipient_email,omitempty"`
	SocialLinks     *map[string]string `json:"social_links" bson:"social_links,omitempty"`
}
