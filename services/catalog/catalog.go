package catalog

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

// CatalogService manages the stage/service catalog shown on the public site.
type CatalogService interface {
	ListStages(ctx context.Context) ([]models.Stage, error)
	GetStage(ctx context.Context, id int) (*models.Stage, error)
	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	CountServices(ctx context.Context) (int, error)

	CreateStage(ctx context.Context, req models.StageRequest) (*models.Stage, error)
	UpdateStage(ctx context.Context, id int, upd models.StageUpdate) (*models.Stage, error)
	DeleteStage(ctx context.Context, id int) error

	AddService(ctx context.Context, stageID int, svc models.Service) (*models.Service, error)
	UpdateService(ctx context.Context, stageID int, serviceID string, upd models.ServiceUpdate) (*models.Service, error)
	RemoveService(ctx context.Context, stageID int, serviceID string) error
}

type DefaultCatalogService struct {
	Repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) *DefaultCatalogService {
	return &DefaultCatalogService{Repo: repo}
}

func (s *DefaultCatalogService) ListStages(ctx context.Context) ([]models.Stage, error) {
	stages, err := s.Repo.ListStages(ctx)
	if err != nil {
		return nil, err
	}
	for i := range stages {
		normalizeStage(&stages[i])
	}
	return stages, nil
}

func (s *DefaultCatalogService) GetStage(ctx context.Context, id int) (*models.Stage, error) {
	stage, err := s.Repo.GetStage(ctx, id)
	if err != nil {
		return nil, err
	}
	normalizeStage(stage)
	return stage, nil
}

func (s *DefaultCatalogService) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	svc, err := s.Repo.FindService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	svc.Normalize()
	return svc, nil
}

func (s *DefaultCatalogService) CountServices(ctx context.Context) (int, error) {
	return s.Repo.CountServices(ctx)
}

func (s *DefaultCatalogService) CreateStage(ctx context.Context, req models.StageRequest) (*models.Stage, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: stage id must be a positive number", models.ErrValidation)
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: stage title is required", models.ErrValidation)
	}

	now := time.Now().UTC()
	stage := &models.Stage{
		ID:        req.ID,
		Title:     req.Title,
		Subtitle:  strings.TrimSpace(req.Subtitle),
		Phase:     strings.TrimSpace(req.Phase),
		Services:  make([]models.Service, 0, len(req.Services)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	seen := map[string]struct{}{}
	for _, svc := range req.Services {
		if err := s.prepareService(ctx, &svc, now); err != nil {
			return nil, err
		}
		if _, dup := seen[svc.ServiceID]; dup {
			return nil, fmt.Errorf("%w: service_id %s repeated in stage", models.ErrConflict, svc.ServiceID)
		}
		seen[svc.ServiceID] = struct{}{}
		stage.Services = append(stage.Services, svc)
	}

	if err := s.Repo.CreateStage(ctx, stage); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Stage created", zap.Int("stageID", stage.ID), zap.Int("services", len(stage.Services)))
	return stage, nil
}

func (s *DefaultCatalogService) UpdateStage(ctx context.Context, id int, upd models.StageUpdate) (*models.Stage, error) {
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, fmt.Errorf("%w: stage title cannot be empty", models.ErrValidation)
	}
	stage, err := s.Repo.UpdateStage(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	normalizeStage(stage)
	return stage, nil
}

func (s *DefaultCatalogService) DeleteStage(ctx context.Context, id int) error {
	return s.Repo.DeleteStage(ctx, id)
}

func (s *DefaultCatalogService) AddService(ctx context.Context, stageID int, svc models.Service) (*models.Service, error) {
	if _, err := s.Repo.GetStage(ctx, stageID); err != nil {
		return nil, err
	}
	if err := s.prepareService(ctx, &svc, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.Repo.AddService(ctx, stageID, svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *DefaultCatalogService) UpdateService(ctx context.Context, stageID int, serviceID string, upd models.ServiceUpdate) (*models.Service, error) {
	stage, err := s.Repo.GetStage(ctx, stageID)
	if err != nil {
		return nil, err
	}
	var current *models.Service
	for i := range stage.Services {
		if stage.Services[i].ServiceID == serviceID {
			current = &stage.Services[i]
			break
		}
	}
	if current == nil {
		return nil, fmt.Errorf("%w: service %s in stage %d", models.ErrNotFound, serviceID, stageID)
	}

	upd.Apply(current)
	trimService(current)
	if err := current.Validate(); err != nil {
		return nil, err
	}
	current.Normalize()
	current.UpdatedAt = time.Now().UTC()
	if err := s.Repo.ReplaceService(ctx, stageID, *current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *DefaultCatalogService) RemoveService(ctx context.Context, stageID int, serviceID string) error {
	return s.Repo.RemoveService(ctx, stageID, serviceID)
}

// prepareService validates svc, assigns an id when missing and rejects ids
// already used anywhere in the catalog.
func (s *DefaultCatalogService) prepareService(ctx context.Context, svc *models.Service, now time.Time) error {
	trimService(svc)
	if err := svc.Validate(); err != nil {
		return err
	}
	if svc.ServiceID == "" {
		svc.ServiceID = uuid.New().String()
	} else {
		_, err := s.Repo.FindService(ctx, svc.ServiceID)
		switch {
		case err == nil:
			return fmt.Errorf("%w: service_id %s already exists", models.ErrConflict, svc.ServiceID)
		case !errors.Is(err, models.ErrNotFound):
			return err
		}
	}
	svc.Normalize()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	return nil
}

func trimService(svc *models.Service) {
	svc.ServiceID = strings.TrimSpace(svc.ServiceID)
	svc.Name = strings.TrimSpace(svc.Name)
	svc.Description = strings.TrimSpace(svc.Description)
}

func normalizeStage(stage *models.Stage) {
	if stage.Services == nil {
		stage.Services = []models.Service{}
	}
	for i := range stage.Services {
		stage.Services[i].Normalize()
	}
}
