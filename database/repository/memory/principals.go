package memrepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hdmonks/models"

	"go.mongodb.org/mongo-driver/bson"
)

type Principals struct {
	mu   sync.Mutex
	byID map[string]models.Principal
}

func NewPrincipals() *Principals {
	return &Principals{byID: map[string]models.Principal{}}
}

func (r *Principals) GetByID(_ context.Context, id string, _ bson.M) (*models.Principal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: principal %s", models.ErrNotFound, id)
	}
	return &p, nil
}

func (r *Principals) GetByUsername(_ context.Context, username string) (*models.Principal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.byID {
		if p.Username == username {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *Principals) Create(_ context.Context, p *models.Principal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.ID == p.ID || existing.Username == p.Username || (p.Email != "" && existing.Email == p.Email) {
			return fmt.Errorf("%w: username or email already registered", models.ErrConflict)
		}
	}
	r.byID[p.ID] = *p
	return nil
}

func (r *Principals) SetTokenHash(_ context.Context, id, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: principal %s", models.ErrNotFound, id)
	}
	p.TokenHash, p.LastLogin = tokenHash, time.Now().UTC()
	r.byID[id] = p
	return nil
}

func (r *Principals) ClearTokenHash(_ context.Context, id, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.byID[id]; ok && p.TokenHash == tokenHash {
		p.TokenHash = ""
		r.byID[id] = p
	}
	return nil
}

func (r *Principals) EnsureIndexes(context.Context) error { return nil }
