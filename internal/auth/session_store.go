package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mixbook/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStoreInterface defines the interface for session storage operations.
type SessionStoreInterface interface {
	Put(ctx context.Context, tokenID, username string, ttl time.Duration) error
	Get(ctx context.Context, tokenID string) (username string, err error)
	Delete(ctx context.Context, tokenID string) error
}

// SessionStore keeps live sessions in Redis, keyed by the token ID baked into
// the session cookie. Logout deletes the record, which invalidates the cookie
// even though the token itself is still within its signed lifetime.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

type sessionRecord struct {
	Username string `json:"username"`
}

// Put stores a session record with TTL.
func (s *SessionStore) Put(ctx context.Context, tokenID, username string, ttl time.Duration) error {
	payload, err := json.Marshal(sessionRecord{Username: username})
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+tokenID, payload, ttl)
}

// Get returns the username bound to tokenID. A missing or unreadable record
// is an error: the session counts as logged out.
func (s *SessionStore) Get(ctx context.Context, tokenID string) (string, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+tokenID)
	if err != nil {
		return "", fmt.Errorf("read session record: %w", err)
	}
	if data == nil {
		return "", fmt.Errorf("session not found")
	}

	var record sessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return "", fmt.Errorf("unmarshal session record: %w", err)
	}
	if record.Username == "" {
		return "", fmt.Errorf("empty session record")
	}
	return record.Username, nil
}

// Delete removes a session record. Deleting an absent session is a no-op.
func (s *SessionStore) Delete(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+tokenID)
}
