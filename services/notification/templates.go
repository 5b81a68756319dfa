package notification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"hdmonks/models"
	"hdmonks/utils"

	"go.uber.org/zap"
)

// messageTemplate is a subject/body pair. Subjects are plain text, bodies HTML.
type messageTemplate struct {
	Subject string
	Body    string
}

// MessageData is the value templates are executed against.
type MessageData struct {
	ID              string
	FullName        string
	Email           string
	Phone           string
	Company         string
	BusinessType    string
	ServiceInterest string
	Message         string
	Date            string
	Time            string
	SubmittedAt     string
}

func bookingData(b models.Booking) MessageData {
	return MessageData{
		ID:              b.ID,
		FullName:        b.FullName,
		Email:           b.Email,
		Phone:           b.Phone,
		BusinessType:    b.BusinessType,
		ServiceInterest: orDefault(b.ServiceInterest, "Not specified"),
		Message:         orDefault(b.Message, "No additional message"),
		Date:            b.Date,
		Time:            b.Time,
		SubmittedAt:     b.CreatedAt.Format(time.RFC1123),
	}
}

func inquiryData(i models.Inquiry) MessageData {
	return MessageData{
		ID:              i.ID,
		FullName:        i.FullName,
		Email:           i.Email,
		Phone:           orDefault(i.Phone, "Not provided"),
		Company:         orDefault(i.Company, "Not provided"),
		BusinessType:    i.BusinessType,
		ServiceInterest: orDefault(i.ServiceInterest, "Not specified"),
		Message:         i.Message,
		SubmittedAt:     i.CreatedAt.Format(time.RFC1123),
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

var defaultBookingCustomer = messageTemplate{
	Subject: "Consultation Booking Confirmed - {{.Date}} at {{.Time}}",
	Body: `<h2>Consultation Booking Confirmed</h2>
<p>Dear {{.FullName}},</p>
<p>Your consultation has been successfully booked!</p>
<h3>Booking Details:</h3>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Time:</strong> {{.Time}}</p>
<p><strong>Service:</strong> {{.ServiceInterest}}</p>
<p><strong>Booking ID:</strong> {{.ID}}</p>
<p>We will send you a meeting link closer to the appointment date.</p>
<p>If you need to reschedule or cancel, please contact us as soon as possible.</p>
<p>Best regards,<br>HD MONKS Team</p>`,
}

var defaultBookingAdmin = messageTemplate{
	Subject: "New Booking: {{.FullName}} on {{.Date}} at {{.Time}}",
	Body: `<h2>New Consultation Booking</h2>
<p><strong>Name:</strong> {{.FullName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Business Type:</strong> {{.BusinessType}}</p>
<p><strong>Service Interest:</strong> {{.ServiceInterest}}</p>
<p><strong>Date &amp; Time:</strong> {{.Date}} at {{.Time}}</p>
<p><strong>Message:</strong> {{.Message}}</p>
<p><strong>Booking ID:</strong> {{.ID}}</p>`,
}

var defaultContactAdmin = messageTemplate{
	Subject: "New Contact Inquiry from {{.FullName}}",
	Body: `<h2>New Contact Inquiry</h2>
<p><strong>Name:</strong> {{.FullName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Company:</strong> {{.Company}}</p>
<p><strong>Service Interest:</strong> {{.ServiceInterest}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
<p><strong>Submitted:</strong> {{.SubmittedAt}}</p>`,
}

var defaultContactCustomer = messageTemplate{
	Subject: "Thank you for contacting HD MONKS",
	Body: `<h2>Thank you for your inquiry!</h2>
<p>Dear {{.FullName}},</p>
<p>We have received your inquiry and will get back to you within 24 hours.</p>
<p><strong>Your message:</strong></p>
<p>{{.Message}}</p>
<p>Best regards,<br>HD MONKS Team</p>`,
}

// render uses the stored template of templateType when one exists and
// renders, and the built-in fallback otherwise.
func (n *DefaultNotifier) render(ctx context.Context, templateType string, fallback messageTemplate, data MessageData) (models.EmailMessage, error) {
	if n.Templates != nil {
		stored, err := n.Templates.FindOne(ctx, "template_type", templateType)
		switch {
		case err == nil:
			msg, rerr := renderDefault(messageTemplate{Subject: stored.Subject, Body: stored.HTMLContent}, data)
			if rerr == nil {
				return msg, nil
			}
			utils.GetLogger().Warn("Stored email template failed to render, using default",
				zap.String("template_type", templateType), zap.String("template_id", stored.ID), zap.Error(rerr))
		case errors.Is(err, models.ErrNotFound):
		default:
			utils.GetLogger().Warn("Email template lookup failed, using default",
				zap.String("template_type", templateType), zap.Error(err))
		}
	}
	return renderDefault(fallback, data)
}

func renderDefault(t messageTemplate, data MessageData) (models.EmailMessage, error) {
	subject, err := texttemplate.New("subject").Option("missingkey=error").Parse(t.Subject)
	if err != nil {
		return models.EmailMessage{}, fmt.Errorf("parse subject: %w", err)
	}
	body, err := htmltemplate.New("body").Option("missingkey=error").Parse(t.Body)
	if err != nil {
		return models.EmailMessage{}, fmt.Errorf("parse body: %w", err)
	}

	var sb, bb bytes.Buffer
	if err := subject.Execute(&sb, data); err != nil {
		return models.EmailMessage{}, fmt.Errorf("render subject: %w", err)
	}
	if err := body.Execute(&bb, data); err != nil {
		return models.EmailMessage{}, fmt.Errorf("render body: %w", err)
	}
	return models.EmailMessage{
		Subject: strings.TrimSpace(sb.String()),
		Body:    bb.String(),
		HTML:    true,
	}, nil
}
