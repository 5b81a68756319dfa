package auth

import (
	"context"
	"time"

	"hdmonks/database/repository"
	"hdmonks/models"
)

// AuthService issues and checks bearer tokens for the admin and partner
// namespaces. A token minted for one role is never valid for the other.
type AuthService interface {
	Authenticate(ctx context.Context, role models.Role, username, password string) (*models.AuthResponse, error)
	Verify(ctx context.Context, role models.Role, token string) (*models.Session, error)
	Logout(ctx context.Context, session *models.Session, token string) error
	RegisterPartner(ctx context.Context, req models.PartnerRegistration) (*models.Principal, error)
	EnsureDefaultAdmin(ctx context.Context, username, email, password string) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Admins   repository.PrincipalRepository
	Partners repository.PrincipalRepository
	Cache    SessionCache
	Secret   []byte
	TTL      time.Duration
}

func NewAuthService(admins, partners repository.PrincipalRepository, cache SessionCache, secret []byte, ttl time.Duration) *DefaultAuthService {
	if cache == nil {
		cache = NopSessionCache{}
	}
	return &DefaultAuthService{
		Admins:   admins,
		Partners: partners,
		Cache:    cache,
		Secret:   secret,
		TTL:      ttl,
	}
}

func (s *DefaultAuthService) repoFor(role models.Role) (repository.PrincipalRepository, error) {
	switch role {
	case models.RoleAdmin:
		return s.Admins, nil
	case models.RolePartner:
		return s.Partners, nil
	default:
		return nil, models.ErrInvalidToken
	}
}
