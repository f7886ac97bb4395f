package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"wigu/internal/model"
)

type ResponseRepo interface {
	Create(ctx context.Context, response *model.Response) error
	GetByID(ctx context.Context, id string) (*model.Response, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]*model.Response, error)
	GetBySessionAndDomain(ctx context.Context, sessionID string, domain model.CareerDomain) ([]*model.Response, error)
}

type responseRepo struct {
	collection *mongo.Collection
}

func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) Create(ctx context.Context, response *model.Response) error {
	if response.AnsweredAt.IsZero() {
		response.AnsweredAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, response)
	return err
}

func (r *responseRepo) GetByID(ctx context.Context, id string) (*model.Response, error) {
	var response model.Response
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&response)
	if err == mongo.ErrNoDocuments {
		return nil, &model.NotFoundError{Entity: "response", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepo) GetBySessionID(ctx context.Context, sessionID string) ([]*model.Response, error) {
	return r.find(ctx, bson.M{"sessionId": sessionID})
}

func (r *responseRepo) GetBySessionAndDomain(ctx context.Context, sessionID string, domain model.CareerDomain) ([]*model.Response, error) {
	return r.find(ctx, bson.M{"sessionId": sessionID, "domain": domain})
}

func (r *responseRepo) find(ctx context.Context, filter bson.M) ([]*model.Response, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.Response
	if err = cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}
