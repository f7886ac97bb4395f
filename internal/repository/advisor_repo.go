package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"wigu/internal/model"
)

type InvitationRepo interface {
	Create(ctx context.Context, invitation *model.AdvisorInvitation) error
	GetByID(ctx context.Context, id string) (*model.AdvisorInvitation, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]*model.AdvisorInvitation, error)
	MarkResponded(ctx context.Context, id string) error
}

type AdvisorResponseRepo interface {
	Create(ctx context.Context, response *model.AdvisorResponse) error
	GetByID(ctx context.Context, id string) (*model.AdvisorResponse, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]*model.AdvisorResponse, error)
	GetByInvitationID(ctx context.Context, invitationID string) ([]*model.AdvisorResponse, error)
}

type invitationRepo struct {
	collection *mongo.Collection
}

func NewInvitationRepo(db *mongo.Database) InvitationRepo {
	return &invitationRepo{
		collection: db.Collection("invitations"),
	}
}

func (r *invitationRepo) Create(ctx context.Context, invitation *model.AdvisorInvitation) error {
	if invitation.CreatedAt.IsZero() {
		invitation.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, invitation)
	return err
}

func (r *invitationRepo) GetByID(ctx context.Context, id string) (*model.AdvisorInvitation, error) {
	var invitation model.AdvisorInvitation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&invitation)
	if err == mongo.ErrNoDocuments {
		return nil, &model.NotFoundError{Entity: "invitation", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *invitationRepo) GetBySessionID(ctx context.Context, sessionID string) ([]*model.AdvisorInvitation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invitations []*model.AdvisorInvitation
	if err = cursor.All(ctx, &invitations); err != nil {
		return nil, err
	}
	return invitations, nil
}

func (r *invitationRepo) MarkResponded(ctx context.Context, id string) error {
	now := time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"respondedAt": now}})
	return err
}

type advisorResponseRepo struct {
	collection *mongo.Collection
}

func NewAdvisorResponseRepo(db *mongo.Database) AdvisorResponseRepo {
	return &advisorResponseRepo{
		collection: db.Collection("advisor_responses"),
	}
}

func (r *advisorResponseRepo) Create(ctx context.Context, response *model.AdvisorResponse) error {
	if response.SubmittedAt.IsZero() {
		response.SubmittedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, response)
	return err
}

func (r *advisorResponseRepo) GetByID(ctx context.Context, id string) (*model.AdvisorResponse, error) {
	var response model.AdvisorResponse
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&response)
	if err == mongo.ErrNoDocuments {
		return nil, &model.NotFoundError{Entity: "advisor response", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *advisorResponseRepo) GetBySessionID(ctx context.Context, sessionID string) ([]*model.AdvisorResponse, error) {
	return r.find(ctx, bson.M{"sessionId": sessionID})
}

func (r *advisorResponseRepo) GetByInvitationID(ctx context.Context, invitationID string) ([]*model.AdvisorResponse, error) {
	return r.find(ctx, bson.M{"invitationId": invitationID})
}

func (r *advisorResponseRepo) find(ctx context.Context, filter bson.M) ([]*model.AdvisorResponse, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.AdvisorResponse
	if err = cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}
