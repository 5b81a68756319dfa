package memrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"hdmonks/models"
)

type Catalog struct {
	mu     sync.Mutex
	stages map[int]models.Stage
}

func NewCatalog() *Catalog {
	return &Catalog{stages: map[int]models.Stage{}}
}

func (r *Catalog) ListStages(_ context.Context) ([]models.Stage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Stage, 0, len(r.stages))
	for _, s := range r.stages {
		out = append(out, cloneStage(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Catalog) GetStage(_ context.Context, id int) (*models.Stage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stages[id]
	if !ok {
		return nil, fmt.Errorf("%w: stage %d", models.ErrNotFound, id)
	}
	s = cloneStage(s)
	return &s, nil
}

func (r *Catalog) CreateStage(_ context.Context, stage *models.Stage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stages[stage.ID]; ok {
		return fmt.Errorf("%w: stage %d already exists", models.ErrConflict, stage.ID)
	}
	if stage.Services == nil {
		stage.Services = []models.Service{}
	}
	r.stages[stage.ID] = cloneStage(*stage)
	return nil
}

func (r *Catalog) UpdateStage(_ context.Context, id int, upd models.StageUpdate) (*models.Stage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stages[id]
	if !ok {
		return nil, fmt.Errorf("%w: stage %d", models.ErrNotFound, id)
	}
	if upd.Title != nil {
		s.Title = *upd.Title
	}
	if upd.Subtitle != nil {
		s.Subtitle = *upd.Subtitle
	}
	if upd.Phase != nil {
		s.Phase = *upd.Phase
	}
	s.UpdatedAt = time.Now().UTC()
	r.stages[id] = s
	out := cloneStage(s)
	return &out, nil
}

func (r *Catalog) DeleteStage(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stages[id]; !ok {
		return fmt.Errorf("%w: stage %d", models.ErrNotFound, id)
	}
	delete(r.stages, id)
	return nil
}

func (r *Catalog) FindService(_ context.Context, serviceID string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int, 0, len(r.stages))
	for id := range r.stages {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		for _, svc := range r.stages[id].Services {
			if svc.ServiceID == serviceID {
				svc = cloneService(svc)
				return &svc, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: service %s", models.ErrNotFound, serviceID)
}

func (r *Catalog) AddService(_ context.Context, stageID int, svc models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stages[stageID]
	if !ok {
		return fmt.Errorf("%w: stage %d", models.ErrNotFound, stageID)
	}
	for _, existing := range s.Services {
		if existing.ServiceID == svc.ServiceID {
			return fmt.Errorf("%w: service %s already exists in stage %d", models.ErrConflict, svc.ServiceID, stageID)
		}
	}
	s.Services = append(s.Services, svc)
	r.stages[stageID] = s
	return nil
}

func (r *Catalog) ReplaceService(_ context.Context, stageID int, svc models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stages[stageID]
	if ok {
		for i := range s.Services {
			if s.Services[i].ServiceID == svc.ServiceID {
				s.Services[i] = svc
				r.stages[stageID] = s
				return nil
			}
		}
	}
	return fmt.Errorf("%w: service %s in stage %d", models.ErrNotFound, svc.ServiceID, stageID)
}

func (r *Catalog) RemoveService(_ context.Context, stageID int, serviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stages[stageID]
	if ok {
		for i := range s.Services {
			if s.Services[i].ServiceID == serviceID {
				s.Services = append(s.Services[:i:i], s.Services[i+1:]...)
				r.stages[stageID] = s
				return nil
			}
		}
	}
	return fmt.Errorf("%w: service %s in stage %d", models.ErrNotFound, serviceID, stageID)
}

func (r *Catalog) CountServices(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.stages {
		n += len(s.Services)
	}
	return n, nil
}

func (r *Catalog) EnsureIndexes(context.Context) error { return nil }

func cloneStage(s models.Stage) models.Stage {
	services := make([]models.Service, len(s.Services))
	for i, svc := range s.Services {
		services[i] = cloneService(svc)
	}
	s.Services = services
	return s
}

func cloneService(svc models.Service) models.Service {
	svc.RelevantFor = append([]models.Audience(nil), svc.RelevantFor...)
	svc.Features = append([]string(nil), svc.Features...)
	svc.ContentSections = append([]models.ContentSection(nil), svc.ContentSections...)
	return svc
}
