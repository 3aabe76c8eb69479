package auth

import "time"

// Strategy mints bearer tokens at login and verifies the ones the HTTP
// layer extracts from requests.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
}

// Options tunes token issuance. A zero TTL selects the default session
// lifetime.
type Options struct {
	TTL time.Duration
}
