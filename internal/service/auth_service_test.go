package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndValidateOwnerToken(t *testing.T) {
	t.Setenv("OWNER_USERNAME", "owner")
	t.Setenv("OWNER_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService()

	resp, err := svc.Login("owner", "secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.OwnerID, "owner_"))

	claims, err := svc.ValidateOwnerToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.OwnerID, claims.OwnerID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Setenv("OWNER_USERNAME", "owner")
	t.Setenv("OWNER_PASSWORD", "secret")
	svc := NewAuthService()

	_, err := svc.Login("owner", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("intruder", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdvisorTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService()

	token, err := svc.GenerateAdvisorToken("session-1", "invite-1")
	require.NoError(t, err)

	claims, err := svc.ValidateAdvisorToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, "invite-1", claims.InvitationID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	t.Setenv("OWNER_USERNAME", "owner")
	t.Setenv("OWNER_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService()

	advisorToken, err := svc.GenerateAdvisorToken("session-1", "invite-1")
	require.NoError(t, err)

	// An advisor token parsed as owner claims has no owner id.
	claims, err := svc.ValidateOwnerToken(advisorToken)
	if err == nil {
		assert.Empty(t, claims.OwnerID)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	issuer := NewAuthService()
	token, err := issuer.GenerateAdvisorToken("session-1", "invite-1")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	verifier := NewAuthService()
	_, err = verifier.ValidateAdvisorToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewAuthService()
	_, err := svc.ValidateOwnerToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
