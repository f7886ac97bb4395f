package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wigu/internal/model"
)

// SynthesisRepo stores CareerSynthesis and FiveInsightsModel records. Both
// are regenerated per synthesis pass: syntheses accumulate with the latest
// retrievable, the five-insights profile is replaced in place.
type SynthesisRepo interface {
	SaveSynthesis(ctx context.Context, synthesis *model.CareerSynthesis) error
	GetSynthesisByID(ctx context.Context, id string) (*model.CareerSynthesis, error)
	GetLatestSynthesis(ctx context.Context, sessionID string) (*model.CareerSynthesis, error)
	ReplaceFiveInsights(ctx context.Context, profile *model.FiveInsightsModel) error
	GetFiveInsights(ctx context.Context, sessionID string) (*model.FiveInsightsModel, error)
}

type synthesisRepo struct {
	syntheses    *mongo.Collection
	fiveInsights *mongo.Collection
}

func NewSynthesisRepo(db *mongo.Database) SynthesisRepo {
	return &synthesisRepo{
		syntheses:    db.Collection("syntheses"),
		fiveInsights: db.Collection("five_insights"),
	}
}

func (r *synthesisRepo) SaveSynthesis(ctx context.Context, synthesis *model.CareerSynthesis) error {
	if synthesis.GeneratedAt.IsZero() {
		synthesis.GeneratedAt = time.Now()
	}
	_, err := r.syntheses.InsertOne(ctx, synthesis)
	return err
}

func (r *synthesisRepo) GetSynthesisByID(ctx context.Context, id string) (*model.CareerSynthesis, error) {
	var synthesis model.CareerSynthesis
	err := r.syntheses.FindOne(ctx, bson.M{"_id": id}).Decode(&synthesis)
	if err == mongo.ErrNoDocuments {
		return nil, &model.NotFoundError{Entity: "synthesis", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &synthesis, nil
}

func (r *synthesisRepo) GetLatestSynthesis(ctx context.Context, sessionID string) (*model.CareerSynthesis, error) {
	opts := options.FindOne().SetSort(bson.M{"generatedAt": -1})
	var synthesis model.CareerSynthesis
	err := r.syntheses.FindOne(ctx, bson.M{"sessionId": sessionID}, opts).Decode(&synthesis)
	if err == mongo.ErrNoDocuments {
		return nil, &model.NotFoundError{Entity: "synthesis", ID: sessionID}
	}
	if err != nil {
		return nil, err
	}
	return &synthesis, nil
}

func (r *synthesisRepo) ReplaceFiveInsights(ctx context.Context, profile *model.FiveInsightsModel) error {
	if profile.GeneratedAt.IsZero() {
		profile.GeneratedAt = time.Now()
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.fiveInsights.ReplaceOne(ctx, bson.M{"sessionId": profile.SessionID}, profile, opts)
	return err
}

func (r *synthesisRepo) GetFiveInsights(ctx context.Context, sessionID string) (*model.FiveInsightsModel, error) {
	var profile model.FiveInsightsModel
	err := r.fiveInsights.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, &model.NotFoundError{Entity: "five insights profile", ID: sessionID}
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
