package mongo

import (
	"context"

	"github.com/yoockh/folio/internal/models"
	"github.com/yoockh/folio/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const ProjectsCollection = "projects"

type ProjectRepository interface {
	// FindAll returns every stored project in natural order, undecoded.
	FindAll(ctx context.Context) ([]bson.M, error)
	Insert(ctx context.Context, p *models.ProjectDocument) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type projectRepo struct {
	col *mongo.Collection
}

func NewProjectRepo(db *mongo.Database) ProjectRepository {
	return &projectRepo{col: db.Collection(ProjectsCollection)}
}

func (r *projectRepo) FindAll(ctx context.Context) ([]bson.M, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []bson.M{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *projectRepo) Insert(ctx context.Context, p *models.ProjectDocument) (primitive.ObjectID, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		return id, nil
	}
	return p.ID, nil
}

// Update applies set with $set. utils.ErrNotFound when no document has id.
func (r *projectRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
