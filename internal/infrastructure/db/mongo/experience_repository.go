package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

const experiencesCollection = "experiences"

// ExperienceRepository persists work-history entries.
type ExperienceRepository struct {
	coll *mongo.Collection
}

func NewExperienceRepository(db *mongo.Database) *ExperienceRepository {
	return &ExperienceRepository{coll: db.Collection(experiencesCollection)}
}

type experienceDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Role        string             `bson:"role"`
	Company     string             `bson:"company"`
	Period      string             `bson:"period"`
	Description []string           `bson:"description"`
	CompanyLogo string             `bson:"company_logo,omitempty"`
	Location    string             `bson:"location,omitempty"`
	OrderIndex  int                `bson:"order_index"`
	IsPublished bool               `bson:"is_published"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d experienceDoc) toDomain() domain.Experience {
	return domain.Experience{
		ID:          d.ID.Hex(),
		Role:        d.Role,
		Company:     d.Company,
		Period:      d.Period,
		Description: d.Description,
		CompanyLogo: d.CompanyLogo,
		Location:    d.Location,
		OrderIndex:  d.OrderIndex,
		IsPublished: d.IsPublished,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *ExperienceRepository) Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := experienceDoc{
		Role:        exp.Role,
		Company:     exp.Company,
		Period:      exp.Period,
		Description: exp.Description,
		CompanyLogo: exp.CompanyLogo,
		Location:    exp.Location,
		OrderIndex:  exp.OrderIndex,
		IsPublished: exp.IsPublished,
		CreatedAt:   exp.CreatedAt,
		UpdatedAt:   exp.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert experience: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *ExperienceRepository) FindByID(ctx context.Context, id string) (*domain.Experience, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrExperienceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc experienceDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("find experience: %w", err)
	}

	exp := doc.toDomain()
	return &exp, nil
}

func (r *ExperienceRepository) List(ctx context.Context, filter ports.ExperienceFilter) ([]domain.Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.IsPublished != nil {
		query["is_published"] = *filter.IsPublished
	}

	opts := options.Find().SetSort(bson.D{{Key: "order_index", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer cursor.Close(ctx)

	experiences := make([]domain.Experience, 0)
	for cursor.Next(ctx) {
		var doc experienceDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode experience: %w", err)
		}
		experiences = append(experiences, doc.toDomain())
	}
	return experiences, cursor.Err()
}

func (r *ExperienceRepository) Update(ctx context.Context, id string, update ports.ExperienceUpdate) (*domain.Experience, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrExperienceNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Role != nil {
		set["role"] = *update.Role
	}
	if update.Company != nil {
		set["company"] = *update.Company
	}
	if update.Period != nil {
		set["period"] = *update.Period
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.CompanyLogo != nil {
		set["company_logo"] = *update.CompanyLogo
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.OrderIndex != nil {
		set["order_index"] = *update.OrderIndex
	}
	if update.IsPublished != nil {
		set["is_published"] = *update.IsPublished
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc experienceDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("update experience: %w", err)
	}

	exp := doc.toDomain()
	return &exp, nil
}

func (r *ExperienceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrExperienceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrExperienceNotFound
	}
	return nil
}
