package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wigu/internal/model"
)

// Seeds a demo reflection session with a handful of self responses so the
// insight and synthesis endpoints have something to chew on locally.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	ownerID := os.Getenv("SEED_OWNER_ID")
	if ownerID == "" {
		ownerID = "owner_demo"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "wigu"
	}
	db := client.Database(dbName)

	session := model.Session{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Title:     "Demo Career Reflection",
		Status:    model.SessionActive,
		StartedAt: time.Now(),
	}
	if _, err := db.Collection("sessions").InsertOne(ctx, session); err != nil {
		log.Fatalf("Failed to insert session: %v", err)
	}

	responses := []model.Response{
		{
			Domain:          model.DomainTechnical,
			QuestionID:      "tech_1",
			Text:            "I spend most of my free time solving hard engineering problems. Debugging a gnarly distributed systems issue energizes me more than almost anything else at work, and colleagues often bring me their toughest technical puzzles.",
			ConfidenceLevel: 5,
		},
		{
			Domain:          model.DomainLeadership,
			QuestionID:      "lead_1",
			Text:            "I have led two small project teams. I enjoyed mentoring the junior engineers and watching them grow, but the status meetings and stakeholder management drained me noticeably.",
			ConfidenceLevel: 3,
		},
		{
			Domain:          model.DomainAnalytical,
			QuestionID:      "anly_1",
			Text:            "Analyzing data to find the root cause of a problem feels natural. I built our team's incident analysis process and people now rely on it to understand complex failures.",
			ConfidenceLevel: 4,
		},
		{
			Domain:          model.DomainCreative,
			QuestionID:      "crea_1",
			Text:            "I sketch interface ideas sometimes but rarely follow through.",
			ConfidenceLevel: 2,
		},
	}

	for i := range responses {
		responses[i].ID = uuid.New().String()
		responses[i].SessionID = session.ID
		responses[i].IsReflectionComplete = true
		responses[i].AnsweredAt = time.Now()
		if err := responses[i].Validate(); err != nil {
			log.Fatalf("Seed response %d invalid: %v", i, err)
		}
		if _, err := db.Collection("responses").InsertOne(ctx, responses[i]); err != nil {
			log.Fatalf("Failed to insert response: %v", err)
		}
	}

	fmt.Printf("Seeded session %s with %d responses for owner %s\n", session.ID, len(responses), ownerID)
}
