// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the core data structures shared across Keyforge.
package model // import "github.com/toeirei/keyforge/internal/model"

import "time"

// KeyRecord is a stored note about a generated key. Keyforge never
// persists key material; it records a fingerprint plus the generation
// parameters so a key can be recognized and regenerated policies audited.
type KeyRecord struct {
	ID          int       // The primary key for the record.
	Label       string    // Optional user-supplied label.
	Length      int       // Requested key length (characters or words).
	Charset     string    // Exclusion tag the key was generated under.
	Fingerprint string    // SHA-256 hex digest of the key text.
	Wrapped     bool      // Whether separator wrapping was applied.
	Encoded     bool      // Whether the key was base64-encoded.
	Words       bool      // Whether word mode was used.
	CreatedAt   time.Time // When the key was generated.
}

// AuditLogEntry represents a single audit log record.
type AuditLogEntry struct {
	ID        int
	Timestamp string
	Username  string
	Action    string
	Details   string
}
