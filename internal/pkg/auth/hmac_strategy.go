package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidToken covers every rejection reason so callers cannot probe
// which check failed.
var ErrInvalidToken = errors.New("invalid auth token")

// defaultSessionTTL matches the storefront's long-lived browser sessions.
const defaultSessionTTL = 7 * 24 * time.Hour

// HMACStrategy mints session tokens of the form
// base64(userID:expiry:signature), signed with HMAC-SHA256 over the
// claims segment.
type HMACStrategy struct {
	key []byte
	ttl time.Duration
}

// NewHMACStrategy builds a strategy around the shared signing secret.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &HMACStrategy{key: []byte(secret), ttl: ttl}
}

// IssueToken signs a fresh session token for the account.
func (s *HMACStrategy) IssueToken(userID int64) (string, error) {
	claims := fmt.Sprintf("%d:%d", userID, time.Now().Add(s.ttl).Unix())
	signed := claims + ":" + s.sign(claims)
	return base64.StdEncoding.EncodeToString([]byte(signed)), nil
}

// ParseToken verifies the signature before trusting any claim, then
// rejects expired sessions.
func (s *HMACStrategy) ParseToken(token string) (int64, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidToken
	}

	claims, sig, ok := splitSignature(string(raw))
	if !ok || !hmac.Equal([]byte(s.sign(claims)), []byte(sig)) {
		return 0, ErrInvalidToken
	}

	idPart, expiryPart, ok := strings.Cut(claims, ":")
	if !ok {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	expiry, err := strconv.ParseInt(expiryPart, 10, 64)
	if err != nil || time.Now().Unix() > expiry {
		return 0, ErrInvalidToken
	}

	return userID, nil
}

func (s *HMACStrategy) sign(claims string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(claims))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// splitSignature separates the trailing signature from the claims. The
// signature is base64 and never contains a colon, so the last colon is
// always the boundary.
func splitSignature(raw string) (claims, sig string, ok bool) {
	i := strings.LastIndexByte(raw, ':')
	if i < 0 {
		return "", "", false
	}
	return raw[:i], raw[i+1:], true
}
