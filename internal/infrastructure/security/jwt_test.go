package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placeshare/places-service/internal/domain"
)

func TestJWTSigner_RoundTrip(t *testing.T) {
	s := NewJWTSigner("test-secret", "places-service")

	tok, err := s.SignAccessToken("u1", "ada@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := s.VerifyAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.True(t, claims.Exp.After(time.Now()))
}

func TestJWTSigner_RejectsExpired(t *testing.T) {
	s := NewJWTSigner("test-secret", "")

	tok, err := s.SignAccessToken("u1", "ada@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = s.VerifyAccessToken(tok)
	assert.True(t, domain.Is(err, "token_expired"))
}

func TestJWTSigner_RejectsWrongSecret(t *testing.T) {
	a := NewJWTSigner("secret-a", "")
	b := NewJWTSigner("secret-b", "")

	tok, err := a.SignAccessToken("u1", "ada@example.com", time.Hour)
	require.NoError(t, err)

	_, err = b.VerifyAccessToken(tok)
	assert.True(t, domain.Is(err, "token_invalid"))
}

func TestJWTSigner_RejectsWrongIssuer(t *testing.T) {
	signer := NewJWTSigner("secret", "other-service")
	verifier := NewJWTSigner("secret", "places-service")

	tok, err := signer.SignAccessToken("u1", "ada@example.com", time.Hour)
	require.NoError(t, err)

	_, err = verifier.VerifyAccessToken(tok)
	assert.True(t, domain.Is(err, "token_invalid"))
}

func TestJWTSigner_RejectsAlgConfusion(t *testing.T) {
	s := NewJWTSigner("test-secret", "")

	// token signed with "none" must never verify
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": "u1"})
	raw, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = s.VerifyAccessToken(raw)
	assert.True(t, domain.Is(err, "token_invalid"))
}

func TestJWTSigner_RejectsGarbage(t *testing.T) {
	s := NewJWTSigner("test-secret", "")
	_, err := s.VerifyAccessToken("not.a.jwt")
	assert.True(t, domain.Is(err, "token_invalid"))
}
