package clientRepo

import (
	"context"

	"hdmonks/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ClientRepository stores partner clients with their service lines embedded.
// Every mutation is filtered on partner_id as well as id.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id string) (*models.Client, error)
	ListByPartner(ctx context.Context, partnerID string) ([]models.Client, error)
	Update(ctx context.Context, partnerID, id string, req models.ClientRequest) (*models.Client, error)
	Delete(ctx context.Context, partnerID, id string) error

	AddService(ctx context.Context, partnerID, clientID string, line models.ClientService) error
	UpdateService(ctx context.Context, partnerID, clientID, lineID string, upd models.ClientServiceUpdate) error
	// RemoveService drops the line whose id equals ref, or failing that the
	// lines whose catalog service_id equals ref.
	RemoveService(ctx context.Context, partnerID, clientID, ref string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

func NewMongoClientRepo(db *mongo.Database) ClientRepository {
	return &mongoClientRepo{coll: db.Collection("clients")}
}
