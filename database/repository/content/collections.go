package contentRepo

import (
	"hdmonks/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var newestFirst = bson.D{{Key: "created_at", Value: -1}}

func NewMongoBlogRepo(db *mongo.Database) ContentRepository[models.Blog] {
	return NewMongoContentRepo[models.Blog](db, "blogs", newestFirst,
		mongo.IndexModel{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_slug")},
	)
}

func NewMongoFAQRepo(db *mongo.Database) ContentRepository[models.FAQ] {
	return NewMongoContentRepo[models.FAQ](db, "faqs", bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}})
}

func NewMongoTestimonialRepo(db *mongo.Database) ContentRepository[models.Testimonial] {
	return NewMongoContentRepo[models.Testimonial](db, "testimonials", newestFirst)
}

func NewMongoPackageRepo(db *mongo.Database) ContentRepository[models.Package] {
	return NewMongoContentRepo[models.Package](db, "packages", bson.D{{Key: "price", Value: 1}})
}

func NewMongoTemplateRepo(db *mongo.Database) ContentRepository[models.EmailTemplate] {
	return NewMongoContentRepo[models.EmailTemplate](db, "email_templates", newestFirst,
		mongo.IndexModel{Keys: bson.D{{Key: "template_type", Value: 1}}, Options: options.Index().SetName("template_type_idx")},
	)
}
