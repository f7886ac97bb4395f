package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"wigu/internal/model"
)

type InsightRepo interface {
	Create(ctx context.Context, insight *model.Insight) error
	GetByID(ctx context.Context, id string) (*model.Insight, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]*model.Insight, error)
	Update(ctx context.Context, insight *model.Insight) error
}

type insightRepo struct {
	collection *mongo.Collection
}

func NewInsightRepo(db *mongo.Database) InsightRepo {
	return &insightRepo{
		collection: db.Collection("insights"),
	}
}

func (r *insightRepo) Create(ctx context.Context, insight *model.Insight) error {
	if insight.CreatedAt.IsZero() {
		insight.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, insight)
	return err
}

func (r *insightRepo) GetByID(ctx context.Context, id string) (*model.Insight, error) {
	var insight model.Insight
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&insight)
	if err == mongo.ErrNoDocuments {
		return nil, &model.NotFoundError{Entity: "insight", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &insight, nil
}

func (r *insightRepo) GetBySessionID(ctx context.Context, sessionID string) ([]*model.Insight, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var insights []*model.Insight
	if err = cursor.All(ctx, &insights); err != nil {
		return nil, err
	}
	return insights, nil
}

func (r *insightRepo) Update(ctx context.Context, insight *model.Insight) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": insight.ID}, bson.M{"$set": insight})
	return err
}
