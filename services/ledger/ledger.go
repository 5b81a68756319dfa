package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hdmonks/database/repository"
	"hdmonks/models"
	"hdmonks/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LedgerService manages a partner's clients and the service lines sold to
// them. Every call is made on behalf of partnerID and touches only clients
// that partner owns.
type LedgerService interface {
	ListClients(ctx context.Context, partnerID string) ([]models.Client, error)
	GetClient(ctx context.Context, partnerID, clientID string) (*models.Client, error)
	CreateClient(ctx context.Context, partnerID string, req models.ClientRequest) (*models.Client, error)
	UpdateClient(ctx context.Context, partnerID, clientID string, req models.ClientRequest) (*models.Client, error)
	DeleteClient(ctx context.Context, partnerID, clientID string) error

	AddService(ctx context.Context, partnerID, clientID string, req models.ClientServiceRequest) (*models.ClientService, error)
	UpdateService(ctx context.Context, partnerID, clientID, lineID string, upd models.ClientServiceUpdate) (*models.Client, error)
	RemoveService(ctx context.Context, partnerID, clientID, ref string) error
	RevenueSummary(ctx context.Context, partnerID string) (*models.RevenueSummary, error)
}

type DefaultLedgerService struct {
	Clients repository.ClientRepository
	// Catalog fills in service names the partner leaves blank. Optional.
	Catalog repository.CatalogRepository
}

func NewLedgerService(clients repository.ClientRepository, catalog repository.CatalogRepository) *DefaultLedgerService {
	return &DefaultLedgerService{Clients: clients, Catalog: catalog}
}

// owned loads the client and checks partnerID owns it.
func (s *DefaultLedgerService) owned(ctx context.Context, partnerID, clientID string) (*models.Client, error) {
	c, err := s.Clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if c.PartnerID != partnerID {
		utils.GetLogger().Warn("Partner attempted to access a foreign client",
			zap.String("partnerID", partnerID), zap.String("clientID", clientID))
		return nil, fmt.Errorf("%w: client %s belongs to another partner", models.ErrForbidden, clientID)
	}
	return c, nil
}

func (s *DefaultLedgerService) ListClients(ctx context.Context, partnerID string) ([]models.Client, error) {
	return s.Clients.ListByPartner(ctx, partnerID)
}

func (s *DefaultLedgerService) GetClient(ctx context.Context, partnerID, clientID string) (*models.Client, error) {
	return s.owned(ctx, partnerID, clientID)
}

func (s *DefaultLedgerService) CreateClient(ctx context.Context, partnerID string, req models.ClientRequest) (*models.Client, error) {
	req = trimClient(req)
	if req.FullName == "" {
		return nil, fmt.Errorf("%w: full_name is required", models.ErrValidation)
	}
	now := time.Now().UTC()
	c := &models.Client{
		ID:        uuid.New().String(),
		PartnerID: partnerID,
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Services:  []models.ClientService{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DefaultLedgerService) UpdateClient(ctx context.Context, partnerID, clientID string, req models.ClientRequest) (*models.Client, error) {
	if _, err := s.owned(ctx, partnerID, clientID); err != nil {
		return nil, err
	}
	return s.Clients.Update(ctx, partnerID, clientID, trimClient(req))
}

func (s *DefaultLedgerService) DeleteClient(ctx context.Context, partnerID, clientID string) error {
	if _, err := s.owned(ctx, partnerID, clientID); err != nil {
		return err
	}
	return s.Clients.Delete(ctx, partnerID, clientID)
}

func (s *DefaultLedgerService) AddService(ctx context.Context, partnerID, clientID string, req models.ClientServiceRequest) (*models.ClientService, error) {
	req.ServiceID = strings.TrimSpace(req.ServiceID)
	req.ServiceName = strings.TrimSpace(req.ServiceName)
	if req.ServiceID == "" {
		return nil, fmt.Errorf("%w: service_id is required", models.ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", models.ErrValidation)
	}
	if _, err := s.owned(ctx, partnerID, clientID); err != nil {
		return nil, err
	}

	if req.ServiceName == "" && s.Catalog != nil {
		svc, err := s.Catalog.FindService(ctx, req.ServiceID)
		switch {
		case err == nil:
			req.ServiceName = svc.Name
		case !errors.Is(err, models.ErrNotFound):
			utils.GetLogger().Warn("AddService: catalog lookup failed", zap.String("serviceID", req.ServiceID), zap.Error(err))
		}
	}

	line := models.ClientService{
		ID:           uuid.New().String(),
		ClientID:     clientID,
		ServiceID:    req.ServiceID,
		ServiceName:  req.ServiceName,
		Price:        req.Price,
		PurchaseDate: time.Now().UTC(),
		Metadata:     req.Metadata,
	}
	if err := s.Clients.AddService(ctx, partnerID, clientID, line); err != nil {
		return nil, err
	}
	return &line, nil
}

func (s *DefaultLedgerService) UpdateService(ctx context.Context, partnerID, clientID, lineID string, upd models.ClientServiceUpdate) (*models.Client, error) {
	if upd.Price != nil && *upd.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", models.ErrValidation)
	}
	if _, err := s.owned(ctx, partnerID, clientID); err != nil {
		return nil, err
	}
	if err := s.Clients.UpdateService(ctx, partnerID, clientID, lineID, upd); err != nil {
		return nil, err
	}
	return s.Clients.GetByID(ctx, clientID)
}

// RemoveService drops a line by its line id, or else every line for the
// catalog service_id ref.
func (s *DefaultLedgerService) RemoveService(ctx context.Context, partnerID, clientID, ref string) error {
	if _, err := s.owned(ctx, partnerID, clientID); err != nil {
		return err
	}
	return s.Clients.RemoveService(ctx, partnerID, clientID, ref)
}

func (s *DefaultLedgerService) RevenueSummary(ctx context.Context, partnerID string) (*models.RevenueSummary, error) {
	clients, err := s.Clients.ListByPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	return Summarize(clients), nil
}

// Summarize totals each client's service lines. Clients are reported in
// the order given, including clients with no lines.
func Summarize(clients []models.Client) *models.RevenueSummary {
	summary := &models.RevenueSummary{ByClient: []models.ClientRevenue{}}
	for _, c := range clients {
		var amount float64
		for _, line := range c.Services {
			amount += line.Price
		}
		summary.ByClient = append(summary.ByClient, models.ClientRevenue{
			ClientID:   c.ID,
			ClientName: c.FullName,
			Amount:     amount,
		})
		summary.Total += amount
	}
	return summary
}

func trimClient(req models.ClientRequest) models.ClientRequest {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Company = strings.TrimSpace(req.Company)
	return req
}
