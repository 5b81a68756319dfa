package catalogRepo

import (
	"context"

	"hdmonks/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository stores stages with their services embedded.
type CatalogRepository interface {
	ListStages(ctx context.Context) ([]models.Stage, error)
	GetStage(ctx context.Context, id int) (*models.Stage, error)
	CreateStage(ctx context.Context, stage *models.Stage) error
	UpdateStage(ctx context.Context, id int, upd models.StageUpdate) (*models.Stage, error)
	DeleteStage(ctx context.Context, id int) error

	// FindService searches every stage for service_id.
	FindService(ctx context.Context, serviceID string) (*models.Service, error)
	AddService(ctx context.Context, stageID int, svc models.Service) error
	ReplaceService(ctx context.Context, stageID int, svc models.Service) error
	RemoveService(ctx context.Context, stageID int, serviceID string) error
	CountServices(ctx context.Context) (int, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

func NewMongoCatalogRepo(db *mongo.Database) CatalogRepository {
	return &mongoCatalogRepo{coll: db.Collection("stages")}
}
