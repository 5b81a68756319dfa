package notification

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"sync"
	"testing"
	"time"

	"hdmonks/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	mu   sync.Mutex
	sent []models.EmailMessage
	fail map[string]error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, msg models.EmailMessage) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.fail[msg.Kind]; err != nil {
		return err
	}
	d.sent = append(d.sent, msg)
	return nil
}

type staticTemplates map[string]*models.EmailTemplate

func (s staticTemplates) FindOne(_ context.Context, field string, value interface{}) (*models.EmailTemplate, error) {
	if field == "template_type" {
		if t, ok := s[value.(string)]; ok {
			return t, nil
		}
	}
	return nil, models.ErrNotFound
}

func sampleBooking() models.Booking {
	return models.Booking{
		ID:           "b-1",
		FullName:     "Asha <Rao>",
		Email:        "asha@example.com",
		Phone:        "+91-9000000000",
		BusinessType: "startup",
		Date:         "2025-06-01",
		Time:         "10:00",
		Status:       models.BookingConfirmed,
		CreatedAt:    time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC),
	}
}

func TestNotifyBooking_DefaultTemplates(t *testing.T) {
	d := &recordingDispatcher{}
	n := NewDefaultNotifier(staticTemplates{}, d, "ops@hdmonks.com")

	require.NoError(t, n.NotifyBooking(context.Background(), sampleBooking()))
	require.Len(t, d.sent, 2)

	customer, admin := d.sent[0], d.sent[1]
	assert.Equal(t, "asha@example.com", customer.To)
	assert.Equal(t, "Consultation Booking Confirmed - 2025-06-01 at 10:00", customer.Subject)
	assert.True(t, customer.HTML)
	assert.Contains(t, customer.Body, "Asha &lt;Rao&gt;")
	assert.Contains(t, customer.Body, "Not specified")

	assert.Equal(t, "ops@hdmonks.com", admin.To)
	assert.Equal(t, "booking.admin", admin.Kind)
	assert.Contains(t, admin.Body, "b-1")
}

func TestNotifyBooking_StoredTemplateWins(t *testing.T) {
	d := &recordingDispatcher{}
	templates := staticTemplates{
		models.TemplateBooking: {Subject: "See you {{.Date}}", HTMLContent: "<p>Hi {{.FullName}}</p>", TemplateType: models.TemplateBooking},
	}
	n := NewDefaultNotifier(templates, d, "")

	require.NoError(t, n.NotifyBooking(context.Background(), sampleBooking()))
	require.Len(t, d.sent, 1, "no admin copy without ADMIN_EMAIL")
	assert.Equal(t, "See you 2025-06-01", d.sent[0].Subject)
	assert.Equal(t, "<p>Hi Asha &lt;Rao&gt;</p>", d.sent[0].Body)
}

func TestNotifyBooking_BrokenStoredTemplateFallsBack(t *testing.T) {
	d := &recordingDispatcher{}
	templates := staticTemplates{
		models.TemplateBooking: {Subject: "{{.Nope}}", HTMLContent: "x", TemplateType: models.TemplateBooking},
	}
	n := NewDefaultNotifier(templates, d, "")

	require.NoError(t, n.NotifyBooking(context.Background(), sampleBooking()))
	require.Len(t, d.sent, 1)
	assert.True(t, strings.HasPrefix(d.sent[0].Subject, "Consultation Booking Confirmed"))
}

func TestNotifyBooking_PartialFailureStillSendsOthers(t *testing.T) {
	boom := errors.New("smtp down")
	d := &recordingDispatcher{fail: map[string]error{"booking.customer": boom}}
	n := NewDefaultNotifier(nil, d, "ops@hdmonks.com")

	err := n.NotifyBooking(context.Background(), sampleBooking())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	require.Len(t, d.sent, 1)
	assert.Equal(t, "booking.admin", d.sent[0].Kind)
}

func TestNotifyInquiry_AdminAndCustomer(t *testing.T) {
	d := &recordingDispatcher{}
	n := NewDefaultNotifier(staticTemplates{}, d, "ops@hdmonks.com")

	inq := models.Inquiry{ID: "i-1", FullName: "Ravi", Email: "ravi@example.com", Message: "Need GST help", CreatedAt: time.Now()}
	require.NoError(t, n.NotifyInquiry(context.Background(), inq))
	require.Len(t, d.sent, 2)
	assert.Equal(t, "New Contact Inquiry from Ravi", d.sent[0].Subject)
	assert.Contains(t, d.sent[0].Body, "Not provided")
	assert.Equal(t, "ravi@example.com", d.sent[1].To)
}

func TestSMTPMailer_UnconfiguredOnlyLogs(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{})
	called := false
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}

	require.NoError(t, m.Dispatch(context.Background(), models.EmailMessage{To: "a@b.com", Subject: "x"}))
	assert.False(t, called)
}

func TestSMTPMailer_SendsMIME(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p", From: "noreply@hdmonks.com"})
	var gotAddr string
	var gotTo []string
	var gotMsg []byte
	m.send = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, msg
		return nil
	}

	err := m.Dispatch(context.Background(), models.EmailMessage{
		To: "a@b.com", Subject: "Hello\r\nBcc: evil@x.com", Body: "<p>hi</p>", HTML: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"a@b.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Hello  Bcc: evil@x.com\r\n")
	assert.Contains(t, string(gotMsg), "Content-Type: text/html; charset=utf-8")
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func TestQueueDispatcher(t *testing.T) {
	q := &fakeEnqueuer{}
	require.NoError(t, NewQueueDispatcher(q).Dispatch(context.Background(), models.EmailMessage{To: "a@b.com"}))
	require.Len(t, q.tasks, 1)

	q.err = errors.New("redis down")
	assert.Error(t, NewQueueDispatcher(q).Dispatch(context.Background(), models.EmailMessage{To: "a@b.com"}))
}
