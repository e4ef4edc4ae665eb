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

const projectsCollection = "projects"

// ProjectRepository persists portfolio projects.
type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectsCollection)}
}

type projectDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Description     string             `bson:"description"`
	FullDescription string             `bson:"full_description"`
	MyRole          string             `bson:"my_role"`
	Image           string             `bson:"image"`
	Tags            []string           `bson:"tags"`
	Link            string             `bson:"link,omitempty"`
	GitHub          string             `bson:"github,omitempty"`
	DemoVideo       string             `bson:"demo_video,omitempty"`
	Status          string             `bson:"status"`
	Featured        bool               `bson:"featured"`
	OrderIndex      int                `bson:"order_index"`
	IsPublished     bool               `bson:"is_published"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (d projectDoc) toDomain() domain.Project {
	return domain.Project{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		Description:     d.Description,
		FullDescription: d.FullDescription,
		MyRole:          d.MyRole,
		Image:           d.Image,
		Tags:            d.Tags,
		Link:            d.Link,
		GitHub:          d.GitHub,
		DemoVideo:       d.DemoVideo,
		Status:          domain.ProjectStatus(d.Status),
		Featured:        d.Featured,
		OrderIndex:      d.OrderIndex,
		IsPublished:     d.IsPublished,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := projectDoc{
		Title:           project.Title,
		Description:     project.Description,
		FullDescription: project.FullDescription,
		MyRole:          project.MyRole,
		Image:           project.Image,
		Tags:            project.Tags,
		Link:            project.Link,
		GitHub:          project.GitHub,
		DemoVideo:       project.DemoVideo,
		Status:          string(project.Status),
		Featured:        project.Featured,
		OrderIndex:      project.OrderIndex,
		IsPublished:     project.IsPublished,
		CreatedAt:       project.CreatedAt,
		UpdatedAt:       project.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc projectDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	project := doc.toDomain()
	return &project, nil
}

func (r *ProjectRepository) List(ctx context.Context, filter ports.ProjectFilter) ([]domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}
	if filter.IsPublished != nil {
		query["is_published"] = *filter.IsPublished
	}

	opts := options.Find().SetSort(bson.D{{Key: "order_index", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cursor.Close(ctx)

	projects := make([]domain.Project, 0)
	for cursor.Next(ctx) {
		var doc projectDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, doc.toDomain())
	}
	return projects, cursor.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, id string, update ports.ProjectUpdate) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.FullDescription != nil {
		set["full_description"] = *update.FullDescription
	}
	if update.MyRole != nil {
		set["my_role"] = *update.MyRole
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.Tags != nil {
		set["tags"] = *update.Tags
	}
	if update.Link != nil {
		set["link"] = *update.Link
	}
	if update.GitHub != nil {
		set["github"] = *update.GitHub
	}
	if update.DemoVideo != nil {
		set["demo_video"] = *update.DemoVideo
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}
	if update.Featured != nil {
		set["featured"] = *update.Featured
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
	var doc projectDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}

	project := doc.toDomain()
	return &project, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}
