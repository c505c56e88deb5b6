package token

import (
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	signer := NewSigner("test-secret", DefaultTTL)
	issued := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	claims := Claims{
		UserID:   snowflake.ID(1234567890),
		TenantID: snowflake.ID(987654321),
		IssuedAt: issued,
	}

	raw := signer.Sign(claims)
	got, err := signer.Verify(raw, issued.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, got.UserID)
	assert.Equal(t, claims.TenantID, got.TenantID)
	assert.Equal(t, issued, got.IssuedAt)
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	signer := NewSigner("test-secret", DefaultTTL)
	now := time.Now().UTC()
	raw := signer.Sign(Claims{UserID: 1, TenantID: 2, IssuedAt: now})

	idx := strings.LastIndex(raw, ".")
	tampered := "A" + raw[1:idx] + raw[idx:]

	_, err := signer.Verify(tampered, now)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	now := time.Now().UTC()
	raw := NewSigner("secret-a", DefaultTTL).Sign(Claims{UserID: 1, TenantID: 2, IssuedAt: now})

	_, err := NewSigner("secret-b", DefaultTTL).Verify(raw, now)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiry(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)
	issued := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	raw := signer.Sign(Claims{UserID: 1, TenantID: 2, IssuedAt: issued})

	_, err := signer.Verify(raw, issued.Add(time.Hour))
	assert.NoError(t, err)

	_, err = signer.Verify(raw, issued.Add(time.Hour+time.Second))
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	signer := NewSigner("test-secret", DefaultTTL)
	now := time.Now().UTC()

	for _, raw := range []string{"", ".", "abc", "abc.", ".def", "not-base64!.sig"} {
		_, err := signer.Verify(raw, now)
		assert.ErrorIs(t, err, ErrInvalidToken, "raw=%q", raw)
	}
}
