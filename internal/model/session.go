package model

import "time"

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionArchived  SessionStatus = "archived"
)

// Session is one career reflection journey owned by a single user. All
// responses, insights, syntheses and progress records key off its id.
type Session struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	OwnerID   string        `json:"ownerId" bson:"ownerId"`
	Title     string        `json:"title" bson:"title"`
	Status    SessionStatus `json:"status" bson:"status"`
	StartedAt time.Time     `json:"startedAt" bson:"startedAt"`
	EndedAt   *time.Time    `json:"endedAt,omitempty" bson:"endedAt,omitempty"`
}

// AdvisorInvitation tracks one invited advisor for a session.
type AdvisorInvitation struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	SessionID    string     `json:"sessionId" bson:"sessionId"`
	AdvisorName  string     `json:"advisorName" bson:"advisorName"`
	AdvisorEmail string     `json:"advisorEmail" bson:"advisorEmail"`
	Relationship string     `json:"relationship,omitempty" bson:"relationship,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	RespondedAt  *time.Time `json:"respondedAt,omitempty" bson:"respondedAt,omitempty"`
}
