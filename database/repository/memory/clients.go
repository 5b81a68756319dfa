package memrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"hdmonks/models"
)

type Clients struct {
	mu      sync.Mutex
	clients map[string]models.Client
}

func NewClients() *Clients {
	return &Clients{clients: map[string]models.Client{}}
}

func (r *Clients) Create(_ context.Context, c *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[c.ID]; ok {
		return fmt.Errorf("%w: client %s already exists", models.ErrConflict, c.ID)
	}
	if c.Services == nil {
		c.Services = []models.ClientService{}
	}
	r.clients[c.ID] = cloneClient(*c)
	return nil
}

func (r *Clients) GetByID(_ context.Context, id string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, fmt.Errorf("%w: client %s", models.ErrNotFound, id)
	}
	c = cloneClient(c)
	return &c, nil
}

func (r *Clients) ListByPartner(_ context.Context, partnerID string) ([]models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Client{}
	for _, c := range r.clients {
		if c.PartnerID == partnerID {
			out = append(out, cloneClient(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Clients) Update(_ context.Context, partnerID, id string, req models.ClientRequest) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.owned(partnerID, id)
	if !ok {
		return nil, fmt.Errorf("%w: client %s", models.ErrNotFound, id)
	}
	if req.FullName != "" {
		c.FullName = req.FullName
	}
	if req.Email != "" {
		c.Email = req.Email
	}
	if req.Phone != "" {
		c.Phone = req.Phone
	}
	if req.Company != "" {
		c.Company = req.Company
	}
	c.UpdatedAt = time.Now().UTC()
	r.clients[id] = c
	out := cloneClient(c)
	return &out, nil
}

func (r *Clients) Delete(_ context.Context, partnerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.owned(partnerID, id); !ok {
		return fmt.Errorf("%w: client %s", models.ErrNotFound, id)
	}
	delete(r.clients, id)
	return nil
}

func (r *Clients) AddService(_ context.Context, partnerID, clientID string, line models.ClientService) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.owned(partnerID, clientID)
	if !ok {
		return fmt.Errorf("%w: client %s", models.ErrNotFound, clientID)
	}
	c.Services = append(c.Services, line)
	c.UpdatedAt = time.Now().UTC()
	r.clients[clientID] = c
	return nil
}

func (r *Clients) UpdateService(_ context.Context, partnerID, clientID, lineID string, upd models.ClientServiceUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.owned(partnerID, clientID)
	if ok {
		for i := range c.Services {
			if c.Services[i].ID != lineID {
				continue
			}
			if upd.Price != nil {
				c.Services[i].Price = *upd.Price
			}
			if upd.Metadata != nil {
				c.Services[i].Metadata = upd.Metadata
			}
			r.clients[clientID] = c
			return nil
		}
	}
	return fmt.Errorf("%w: service %s on client %s", models.ErrNotFound, lineID, clientID)
}

func (r *Clients) RemoveService(_ context.Context, partnerID, clientID, ref string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.owned(partnerID, clientID)
	if !ok {
		return fmt.Errorf("%w: service %s on client %s", models.ErrNotFound, ref, clientID)
	}
	for _, match := range []func(models.ClientService) bool{
		func(s models.ClientService) bool { return s.ID == ref },
		func(s models.ClientService) bool { return s.ServiceID == ref },
	} {
		kept := c.Services[:0:0]
		for _, s := range c.Services {
			if !match(s) {
				kept = append(kept, s)
			}
		}
		if len(kept) < len(c.Services) {
			c.Services = kept
			r.clients[clientID] = c
			return nil
		}
	}
	return fmt.Errorf("%w: service %s on client %s", models.ErrNotFound, ref, clientID)
}

func (r *Clients) EnsureIndexes(context.Context) error { return nil }

func (r *Clients) owned(partnerID, id string) (models.Client, bool) {
	c, ok := r.clients[id]
	if !ok || c.PartnerID != partnerID {
		return models.Client{}, false
	}
	return cloneClient(c), true
}

func cloneClient(c models.Client) models.Client {
	c.Services = append([]models.ClientService{}, c.Services...)
	return c
}
