package clientRepo

import (
	"context"
	"fmt"
	"time"

	"hdmonks/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoClientRepo) AddService(ctx context.Context, partnerID, clientID string, line models.ClientService) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": clientID, "partner_id": partnerID},
		bson.M{
			"$push": bson.M{"services": line},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to add client service: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: client %s", models.ErrNotFound, clientID)
	}
	return nil
}

func (r *mongoClientRepo) UpdateService(ctx context.Context, partnerID, clientID, lineID string, upd models.ClientServiceUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Price != nil {
		set["services.$.price"] = *upd.Price
	}
	if upd.Metadata != nil {
		set["services.$.metadata"] = upd.Metadata
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": clientID, "partner_id": partnerID, "services.id": lineID},
		bson.M{"$set": set},
	)
	if err != nil {
		return fmt.Errorf("failed to update client service: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: service %s on client %s", models.ErrNotFound, lineID, clientID)
	}
	return nil
}

func (r *mongoClientRepo) RemoveService(ctx context.Context, partnerID, clientID, ref string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for _, field := range []string{"id", "service_id"} {
		res, err := r.coll.UpdateOne(ctx,
			bson.M{"id": clientID, "partner_id": partnerID, "services." + field: ref},
			bson.M{
				"$pull": bson.M{"services": bson.M{field: ref}},
				"$set":  bson.M{"updated_at": time.Now().UTC()},
			},
		)
		if err != nil {
			return fmt.Errorf("failed to remove client service: %w", err)
		}
		if res.ModifiedCount > 0 {
			return nil
		}
	}
	return fmt.Errorf("%w: service %s on client %s", models.ErrNotFound, ref, clientID)
}
