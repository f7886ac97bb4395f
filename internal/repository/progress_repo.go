package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wigu/internal/model"
)

// ProgressRepo persists the per-session progress tracker. Progress is the
// one record that mutates in place, so it is upserted keyed by session id.
type ProgressRepo interface {
	Get(ctx context.Context, sessionID string) (*model.CareerProgress, error)
	Upsert(ctx context.Context, progress *model.CareerProgress) error
}

type progressRepo struct {
	collection *mongo.Collection
}

func NewProgressRepo(db *mongo.Database) ProgressRepo {
	return &progressRepo{
		collection: db.Collection("progress"),
	}
}

func (r *progressRepo) Get(ctx context.Context, sessionID string) (*model.CareerProgress, error) {
	var progress model.CareerProgress
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&progress)
	if err == mongo.ErrNoDocuments {
		return nil, &model.NotFoundError{Entity: "progress", ID: sessionID}
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepo) Upsert(ctx context.Context, progress *model.CareerProgress) error {
	progress.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"sessionId": progress.SessionID}, progress, opts)
	return err
}
