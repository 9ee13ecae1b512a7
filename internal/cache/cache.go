// Package cache provides the persistent answer cache consulted before any
// AI call. A hit on the cache key or on the content fingerprint
// short-circuits answer generation entirely.
package cache

import (
	"context"
	"time"
)

// Entry is one cached answer.
type Entry struct {
	// Key is the structured cache key built by the fingerprint engine.
	Key string `json:"key"`
	// Fingerprint is the content hash used for exact-duplicate detection.
	Fingerprint string `json:"fingerprint"`
	// Question is the canonical question text the answer was generated for.
	Question string `json:"question"`
	// Answer is the stored answer payload (explanation plus flashcards).
	Answer string `json:"answer"`
	// Model names the AI model that produced the answer.
	Model string `json:"model,omitempty"`
	// CreatedAt is when the entry was stored.
	CreatedAt time.Time `json:"created_at"`
	// ExpiresAt is when the entry stops being served.
	ExpiresAt time.Time `json:"expires_at"`
}

// Store is the answer-cache contract. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the unexpired entry for key, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) (*Entry, error)
	// GetByFingerprint returns the unexpired entry whose content
	// fingerprint matches, or (nil, nil) on a miss.
	GetByFingerprint(ctx context.Context, fingerprint string) (*Entry, error)
	// Put stores an entry, replacing any existing entry with the same key.
	Put(ctx context.Context, entry *Entry) error
	// Purge deletes expired entries and returns how many were removed.
	Purge(ctx context.Context) (int64, error)
	// Count returns the number of stored entries, expired included.
	Count(ctx context.Context) (int64, error)
	// Close releases the underlying resources.
	Close() error
}
