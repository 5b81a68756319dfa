package settingsRepo

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

// SettingsRepository stores the single site settings document.
type SettingsRepository interface {
	// Get returns nil, nil when nothing has been stored yet.
	Get(ctx context.Context) (*models.Settings, error)
	Upsert(ctx context.Context, upd models.SettingsUpdate) (*models.Settings, error)
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

func NewMongoSettingsRepo(db *mongo.Database) SettingsRepository {
	return &mongoSettingsRepo{coll: db.Collection("settings")}
}

func (r *mongoSettingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Settings
	err := r.coll.FindOne(ctx, bson.M{"id": models.SettingsID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return &s, nil
}

// Upsert applies the set fields of upd. Fields absent from upd keep their
// stored value, or the default when the document is created.
func (r *mongoSettingsRepo) Upsert(ctx context.Context, upd models.SettingsUpdate) (*models.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set, err := toSetDoc(upd)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now().UTC()

	defaults := bson.M{}
	def, err := toSetDoc(defaultsAsUpdate())
	if err != nil {
		return nil, err
	}
	for k, v := range def {
		if _, ok := set[k]; !ok {
			defaults[k] = v
		}
	}

	update := bson.M{"$set": set}
	if len(defaults) > 0 {
		update["$setOnInsert"] = defaults
	}

	var s models.Settings
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": models.SettingsID}, update, opts).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return &s, nil
}

func toSetDoc(upd models.SettingsUpdate) (bson.M, error) {
	raw, err := bson.Marshal(upd)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings update: %w", err)
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode settings update: %w", err)
	}
	return doc, nil
}

func defaultsAsUpdate() models.SettingsUpdate {
	d := models.DefaultSettings()
	return models.SettingsUpdate{
		CompanyName:     &d.CompanyName,
		CompanyEmail:    &d.CompanyEmail,
		CompanyPhone:    &d.CompanyPhone,
		CompanyAddress:  &d.CompanyAddress,
		SiteTitle:       &d.SiteTitle,
		SiteDescription: &d.SiteDescription,
		SocialLinks:     &d.SocialLinks,
	}
}
