package principalRepo

import (
	"context"

	"hdmonks/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PrincipalRepository defines account access for one principal namespace.
type PrincipalRepository interface {
	// GetByID retrieves a principal by id, optionally projected. Pass nil for
	// the full document.
	GetByID(ctx context.Context, id string, projection bson.M) (*models.Principal, error)
	// GetByUsername returns nil, nil when no account matches.
	GetByUsername(ctx context.Context, username string) (*models.Principal, error)
	Create(ctx context.Context, p *models.Principal) error
	// SetTokenHash records the active session token hash and login time.
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	// ClearTokenHash revokes the session only if tokenHash is still current.
	ClearTokenHash(ctx context.Context, id, tokenHash string) error
	EnsureIndexes(ctx context.Context) error
}
