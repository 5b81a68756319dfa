package notification

import (
	"context"
	"errors"

	"hdmonks/models"
	"hdmonks/utils"

	"go.uber.org/zap"
)

// Notifier sends the customer and operator emails that follow a booking or
// a contact inquiry. A returned error never means the record was rolled back.
type Notifier interface {
	NotifyBooking(ctx context.Context, booking models.Booking) error
	NotifyInquiry(ctx context.Context, inquiry models.Inquiry) error
}

// Dispatcher delivers or enqueues one message.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg models.EmailMessage) error
}

// TemplateStore looks up admin-edited email templates.
type TemplateStore interface {
	FindOne(ctx context.Context, field string, value interface{}) (*models.EmailTemplate, error)
}

// DefaultNotifier renders messages and hands them to a Dispatcher.
type DefaultNotifier struct {
	Templates  TemplateStore
	Dispatcher Dispatcher
	AdminEmail string
}

func NewDefaultNotifier(templates TemplateStore, dispatcher Dispatcher, adminEmail string) *DefaultNotifier {
	return &DefaultNotifier{
		Templates:  templates,
		Dispatcher: dispatcher,
		AdminEmail: adminEmail,
	}
}

func (n *DefaultNotifier) NotifyBooking(ctx context.Context, booking models.Booking) error {
	data := bookingData(booking)

	customer, err := n.render(ctx, models.TemplateBooking, defaultBookingCustomer, data)
	if err != nil {
		return err
	}
	customer.To = booking.Email
	customer.Kind = "booking.customer"

	msgs := []models.EmailMessage{customer}
	if n.AdminEmail != "" {
		admin, err := renderDefault(defaultBookingAdmin, data)
		if err != nil {
			return err
		}
		admin.To = n.AdminEmail
		admin.Kind = "booking.admin"
		msgs = append(msgs, admin)
	}
	return n.dispatchAll(ctx, msgs)
}

func (n *DefaultNotifier) NotifyInquiry(ctx context.Context, inquiry models.Inquiry) error {
	data := inquiryData(inquiry)

	var msgs []models.EmailMessage
	if n.AdminEmail != "" {
		admin, err := n.render(ctx, models.TemplateContact, defaultContactAdmin, data)
		if err != nil {
			return err
		}
		admin.To = n.AdminEmail
		admin.Kind = "contact.admin"
		msgs = append(msgs, admin)
	}

	customer, err := renderDefault(defaultContactCustomer, data)
	if err != nil {
		return err
	}
	customer.To = inquiry.Email
	customer.Kind = "contact.customer"
	msgs = append(msgs, customer)

	return n.dispatchAll(ctx, msgs)
}

// dispatchAll attempts every message and joins the failures.
func (n *DefaultNotifier) dispatchAll(ctx context.Context, msgs []models.EmailMessage) error {
	var errs []error
	for _, msg := range msgs {
		if err := n.Dispatcher.Dispatch(ctx, msg); err != nil {
			utils.GetLogger().Error("Failed to dispatch email",
				zap.String("kind", msg.Kind), zap.String("to", msg.To), zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
