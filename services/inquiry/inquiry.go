package inquiry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hdmonks/database/repository"
	"hdmonks/models"
	"hdmonks/services/notification"
	"hdmonks/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InquiryService captures contact-form leads and moves them through the
// new -> contacted -> closed workflow.
type InquiryService interface {
	Submit(ctx context.Context, req models.InquiryRequest) (*models.Inquiry, string, error)
	List(ctx context.Context, skip, limit int64) ([]models.Inquiry, error)
	SetStatus(ctx context.Context, id string, status models.InquiryStatus) (*models.Inquiry, error)
}

type DefaultInquiryService struct {
	Repo     repository.InquiryRepository
	Notifier notification.Notifier
}

func NewInquiryService(repo repository.InquiryRepository, notifier notification.Notifier) *DefaultInquiryService {
	return &DefaultInquiryService{Repo: repo, Notifier: notifier}
}

// NotificationWarning is returned alongside a stored inquiry whose emails failed.
const NotificationWarning = "Inquiry received, but the notification email could not be sent."

// Submit stores the inquiry and returns it with an optional warning.
func (s *DefaultInquiryService) Submit(ctx context.Context, req models.InquiryRequest) (*models.Inquiry, string, error) {
	req.Normalize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	inq := &models.Inquiry{
		ID:              uuid.New().String(),
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Company:         req.Company,
		BusinessType:    req.BusinessType,
		ServiceInterest: req.ServiceInterest,
		Message:         req.Message,
		Status:          models.InquiryNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Repo.Create(ctx, inq); err != nil {
		return nil, "", err
	}

	var warning string
	if s.Notifier != nil {
		if err := s.Notifier.NotifyInquiry(ctx, *inq); err != nil {
			utils.GetLogger().Warn("Submit: inquiry notification failed", zap.String("inquiryID", inq.ID), zap.Error(err))
			warning = NotificationWarning
		}
	}
	return inq, warning, nil
}

func (s *DefaultInquiryService) List(ctx context.Context, skip, limit int64) ([]models.Inquiry, error) {
	return s.Repo.List(ctx, skip, limit)
}

func (s *DefaultInquiryService) SetStatus(ctx context.Context, id string, status models.InquiryStatus) (*models.Inquiry, error) {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	if current.Status.Terminal() {
		return nil, fmt.Errorf("%w: inquiry is already %s", models.ErrInvalidTransition, current.Status)
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: inquiry cannot move from %s to %s", models.ErrInvalidTransition, current.Status, status)
	}

	updated, err := s.Repo.UpdateStatus(ctx, id, current.Status, status)
	if errors.Is(err, models.ErrInvalidTransition) {
		// Another operator moved it first.
		if fresh, gerr := s.Repo.GetByID(ctx, id); gerr == nil && fresh.Status == status {
			return fresh, nil
		}
	}
	return updated, err
}
