// Package token issues and verifies the session artifact: an HMAC-SHA256
// signed encoding of (userID, tenantID, issuedAt). The signature is a
// deliberate hardening over a reversible unsigned encoding; there is no
// server-side revocation list.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrTokenExpired = errors.New("session token expired")
)

// Claims are the values carried by a session token.
type Claims struct {
	UserID   snowflake.ID
	TenantID snowflake.ID
	IssuedAt time.Time
}

// Signer signs and verifies session tokens.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// DefaultTTL bounds how long an issued token stays valid.
const DefaultTTL = 7 * 24 * time.Hour

func NewSigner(secret string, ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Signer{secret: []byte(secret), ttl: ttl}
}

// Sign encodes and signs the claims.
func (s *Signer) Sign(claims Claims) string {
	payload := fmt.Sprintf("%d.%d.%d", claims.UserID, claims.TenantID, claims.IssuedAt.Unix())
	encoded := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return encoded + "." + s.signature(payload)
}

// Verify checks the signature and TTL, returning the embedded claims.
func (s *Signer) Verify(raw string, now time.Time) (*Claims, error) {
	raw = strings.TrimSpace(raw)
	idx := strings.LastIndex(raw, ".")
	if idx <= 0 || idx == len(raw)-1 {
		return nil, ErrInvalidToken
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(raw[:idx])
	if err != nil {
		return nil, ErrInvalidToken
	}
	payload := string(payloadBytes)

	if !hmac.Equal([]byte(s.signature(payload)), []byte(raw[idx+1:])) {
		return nil, ErrInvalidToken
	}

	parts := strings.Split(payload, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}
	userID, errU := strconv.ParseInt(parts[0], 10, 64)
	tenantID, errT := strconv.ParseInt(parts[1], 10, 64)
	issuedAt, errI := strconv.ParseInt(parts[2], 10, 64)
	if errU != nil || errT != nil || errI != nil {
		return nil, ErrInvalidToken
	}

	claims := &Claims{
		UserID:   snowflake.ID(userID),
		TenantID: snowflake.ID(tenantID),
		IssuedAt: time.Unix(issuedAt, 0).UTC(),
	}
	if now.After(claims.IssuedAt.Add(s.ttl)) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}

func (s *Signer) signature(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
