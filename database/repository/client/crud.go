package clientRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hdmonks/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoClientRepo) Create(ctx context.Context, client *models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if client.Services == nil {
		client.Services = []models.ClientService{}
	}
	if _, err := r.coll.InsertOne(ctx, client); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: client %s already exists", models.ErrConflict, client.ID)
		}
		return fmt.Errorf("failed to insert client: %w", err)
	}
	return nil
}

func (r *mongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Client
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: client %s", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	return &c, nil
}

func (r *mongoClientRepo) ListByPartner(ctx context.Context, partnerID string) ([]models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"partner_id": partnerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	defer cursor.Close(ctx)

	clients := []models.Client{}
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("error decoding clients: %w", err)
	}
	return clients, nil
}

func (r *mongoClientRepo) Update(ctx context.Context, partnerID, id string, req models.ClientRequest) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if req.FullName != "" {
		set["full_name"] = req.FullName
	}
	if req.Email != "" {
		set["email"] = req.Email
	}
	if req.Phone != "" {
		set["phone"] = req.Phone
	}
	if req.Company != "" {
		set["company"] = req.Company
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Client
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id, "partner_id": partnerID}, bson.M{"$set": set}, opts).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: client %s", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return &c, nil
}

func (r *mongoClientRepo) Delete(ctx context.Context, partnerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "partner_id": partnerID})
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: client %s", models.ErrNotFound, id)
	}
	return nil
}

// EnsureIndexes creates the client indexes, including one client id per partner.
func (r *mongoClientRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_id")},
		{
			Keys:    bson.D{{Key: "partner_id", Value: 1}, {Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_client_per_partner"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create client indexes: %w", err)
	}
	return nil
}
