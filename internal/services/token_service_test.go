package services

import (
	"strings"
	"testing"
	"time"

	"avagostar-product-api/internal/models"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Username: "alice",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
}

func TestTokenService_IssueAndVerifyAccess(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", 30*time.Minute, 7*24*time.Hour)

	tok, err := svc.IssueAccess(testUser())
	require.NoError(t, err)

	claims, err := svc.Verify(tok, TokenKindAccess)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, models.RoleAdmin, claims.Role)
	require.Equal(t, TokenKindAccess, claims.TokenType)
}

func TestTokenService_WrongKind(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", 30*time.Minute, 7*24*time.Hour)

	refresh, err := svc.IssueRefresh(testUser())
	require.NoError(t, err)

	_, err = svc.Verify(refresh, TokenKindAccess)
	require.ErrorIs(t, err, ErrWrongTokenKind)

	access, err := svc.IssueAccess(testUser())
	require.NoError(t, err)

	_, err = svc.Verify(access, TokenKindRefresh)
	require.ErrorIs(t, err, ErrWrongTokenKind)
}

func TestTokenService_Expiry(t *testing.T) {
	t.Parallel()

	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := issued
	svc := NewTokenService("super-secret", 30*time.Minute, time.Hour).
		WithClock(func() time.Time { return clock })

	tok, err := svc.IssueAccess(testUser())
	require.NoError(t, err)

	// Strictly before expiry: fine.
	clock = issued.Add(29 * time.Minute)
	_, err = svc.Verify(tok, TokenKindAccess)
	require.NoError(t, err)

	// Strictly after expiry: rejected.
	clock = issued.Add(31 * time.Minute)
	_, err = svc.Verify(tok, TokenKindAccess)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService("right-secret", time.Hour, time.Hour)
	verifier := NewTokenService("wrong-secret", time.Hour, time.Hour)

	tok, err := issuer.IssueAccess(testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(tok, TokenKindAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_TamperedPayload(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour, time.Hour)

	tok, err := svc.IssueAccess(testUser())
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	parts[1] = "eyJ0YW1wZXJlZCI6dHJ1ZX0"
	_, err = svc.Verify(strings.Join(parts, "."), TokenKindAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour, time.Hour)

	_, err := svc.Verify("not.a.jwt", TokenKindAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}
