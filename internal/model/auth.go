package model

import "github.com/golang-jwt/jwt/v5"

// OwnerClaims are JWT claims for the session owner (the person reflecting).
type OwnerClaims struct {
	OwnerID string `json:"ownerId"`
	jwt.RegisteredClaims
}

// AdvisorClaims are JWT claims for session-scoped advisor invitation tokens.
type AdvisorClaims struct {
	SessionID    string `json:"sessionId"`
	InvitationID string `json:"invitationId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for owner login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token   string `json:"token"`
	OwnerID string `json:"ownerId"`
}

// InviteAdvisorRequest is the request body for creating an advisor invitation.
type InviteAdvisorRequest struct {
	AdvisorName  string `json:"advisorName" validate:"required,min=1"`
	AdvisorEmail string `json:"advisorEmail" validate:"required,email"`
	Relationship string `json:"relationship,omitempty"`
}

// InviteAdvisorResponse carries the invitation id and the token the advisor
// uses to submit responses. Delivering the token to the advisor is the
// caller's concern.
type InviteAdvisorResponse struct {
	InvitationID string `json:"invitationId"`
	Token        string `json:"token"`
}
