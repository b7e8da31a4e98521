package mongo

import (
	"context"
	"errors"

	"github.com/yoockh/folio/internal/normalize"
	"github.com/yoockh/folio/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const PortfolioCollection = "portfolio"

type PortfolioRepository interface {
	// Latest returns the portfolio document with the greatest _id, its _id as a hex string.
	Latest(ctx context.Context) (bson.M, error)
	// Probe issues a trivial read; an empty collection is not an error.
	Probe(ctx context.Context) error
}

type portfolioRepo struct {
	col *mongo.Collection
}

func NewPortfolioRepo(db *mongo.Database) PortfolioRepository {
	return &portfolioRepo{col: db.Collection(PortfolioCollection)}
}

func (r *portfolioRepo) Latest(ctx context.Context) (bson.M, error) {
	var doc bson.M
	err := r.col.FindOne(ctx,
		bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if id, ok := doc["_id"]; ok {
		doc["_id"] = normalize.ID(id)
	}
	return doc, nil
}

func (r *portfolioRepo) Probe(ctx context.Context) error {
	err := r.col.FindOne(ctx, bson.M{}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return err
}
