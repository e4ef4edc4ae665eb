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

const skillsCollection = "skills"

// SkillRepository persists skills; lists are sorted by order_index ascending.
type SkillRepository struct {
	coll *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{coll: db.Collection(skillsCollection)}
}

type skillDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Level       int                `bson:"level"`
	Category    string             `bson:"category"`
	Icon        string             `bson:"icon,omitempty"`
	OrderIndex  int                `bson:"order_index"`
	IsPublished bool               `bson:"is_published"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d skillDoc) toDomain() domain.Skill {
	return domain.Skill{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Level:       d.Level,
		Category:    d.Category,
		Icon:        d.Icon,
		OrderIndex:  d.OrderIndex,
		IsPublished: d.IsPublished,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *SkillRepository) Create(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := skillDoc{
		Name:        skill.Name,
		Level:       skill.Level,
		Category:    skill.Category,
		Icon:        skill.Icon,
		OrderIndex:  skill.OrderIndex,
		IsPublished: skill.IsPublished,
		CreatedAt:   skill.CreatedAt,
		UpdatedAt:   skill.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert skill: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *SkillRepository) FindByID(ctx context.Context, id string) (*domain.Skill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSkillNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc skillDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill: %w", err)
	}

	skill := doc.toDomain()
	return &skill, nil
}

func (r *SkillRepository) List(ctx context.Context, filter ports.SkillFilter) ([]domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.IsPublished != nil {
		query["is_published"] = *filter.IsPublished
	}

	opts := options.Find().SetSort(bson.D{{Key: "order_index", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer cursor.Close(ctx)

	skills := make([]domain.Skill, 0)
	for cursor.Next(ctx) {
		var doc skillDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode skill: %w", err)
		}
		skills = append(skills, doc.toDomain())
	}
	return skills, cursor.Err()
}

func (r *SkillRepository) Update(ctx context.Context, id string, update ports.SkillUpdate) (*domain.Skill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSkillNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Level != nil {
		set["level"] = *update.Level
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Icon != nil {
		set["icon"] = *update.Icon
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
	var doc skillDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("update skill: %w", err)
	}

	skill := doc.toDomain()
	return &skill, nil
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSkillNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}

// EnsureIndexes creates the order_index sort index.
func (r *SkillRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "order_index", Value: 1}},
	})
	return err
}
