// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"github.com/toeirei/keyforge/internal/model"
)

// Store defines the interface for all database operations in Keyforge.
// This allows for multiple database backends to be implemented.
type Store interface {
	// Key record methods
	AddKeyRecord(rec model.KeyRecord) (int, error)
	GetKeyHistory() ([]model.KeyRecord, error)
	GetKeyRecordByFingerprint(fingerprint string) (*model.KeyRecord, error)
	DeleteKeyRecord(id int) error

	// Audit log methods
	LogAction(action string, details string) error
	GetAllAuditLogEntries() ([]model.AuditLogEntry, error)

	Close() error
}

// Package-level convenience wrappers over the active store.

// AddKeyRecord records a generated key via the package-level store.
func AddKeyRecord(rec model.KeyRecord) (int, error) { return store.AddKeyRecord(rec) }

// GetKeyHistory returns all recorded keys, newest first.
func GetKeyHistory() ([]model.KeyRecord, error) { return store.GetKeyHistory() }

// GetKeyRecordByFingerprint looks up a record by its key fingerprint.
func GetKeyRecordByFingerprint(fp string) (*model.KeyRecord, error) {
	return store.GetKeyRecordByFingerprint(fp)
}

// DeleteKeyRecord removes a record by ID.
func DeleteKeyRecord(id int) error { return store.DeleteKeyRecord(id) }

// LogAction appends an audit log entry.
func LogAction(action, details string) error { return store.LogAction(action, details) }

// GetAllAuditLogEntries returns the audit log, newest first.
func GetAllAuditLogEntries() ([]model.AuditLogEntry, error) { return store.GetAllAuditLogEntries() }
