// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// This file contains the bun-backed implementation of the Store interface.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os/user"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/toeirei/keyforge/internal/model"
)

// KeyRecordModel mirrors model.KeyRecord with bun mappings.
type KeyRecordModel struct {
	bun.BaseModel `bun:"table:key_records"`
	ID            int            `bun:"id,pk,autoincrement"`
	Label         sql.NullString `bun:"label"`
	Length        int            `bun:"length"`
	Charset       string         `bun:"charset"`
	Fingerprint   string         `bun:"fingerprint"`
	Wrapped       bool           `bun:"wrapped"`
	Encoded       bool           `bun:"encoded"`
	Words         bool           `bun:"words"`
	CreatedAt     time.Time      `bun:"created_at,nullzero,default:current_timestamp"`
}

// AuditLogModel mirrors model.AuditLogEntry with bun mappings.
type AuditLogModel struct {
	bun.BaseModel `bun:"table:audit_log"`
	ID            int    `bun:"id,pk,autoincrement"`
	Timestamp     string `bun:"timestamp,nullzero,default:current_timestamp"`
	Username      string `bun:"username"`
	Action        string `bun:"action"`
	Details       string `bun:"details"`
}

// BunStore is the bun-backed implementation of the Store interface. The
// same store type serves all supported dialects.
type BunStore struct {
	bun *bun.DB
}

func (s *BunStore) ensureSchema(ctx context.Context) error {
	for _, m := range []interface{}{(*KeyRecordModel)(nil), (*AuditLogModel)(nil)} {
		if _, err := s.bun.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func keyRecordToModel(m KeyRecordModel) model.KeyRecord {
	return model.KeyRecord{
		ID:          m.ID,
		Label:       m.Label.String,
		Length:      m.Length,
		Charset:     m.Charset,
		Fingerprint: m.Fingerprint,
		Wrapped:     m.Wrapped,
		Encoded:     m.Encoded,
		Words:       m.Words,
		CreatedAt:   m.CreatedAt,
	}
}

// AddKeyRecord inserts a key record and returns its new ID.
func (s *BunStore) AddKeyRecord(rec model.KeyRecord) (int, error) {
	ctx := context.Background()
	m := KeyRecordModel{
		Label:       sql.NullString{String: rec.Label, Valid: rec.Label != ""},
		Length:      rec.Length,
		Charset:     rec.Charset,
		Fingerprint: rec.Fingerprint,
		Wrapped:     rec.Wrapped,
		Encoded:     rec.Encoded,
		Words:       rec.Words,
		CreatedAt:   rec.CreatedAt,
	}
	if _, err := s.bun.NewInsert().Model(&m).Exec(ctx); err != nil {
		return 0, err
	}
	_ = s.LogAction("ADD_KEY_RECORD", "fingerprint: "+rec.Fingerprint)
	return m.ID, nil
}

// GetKeyHistory retrieves all key records, newest first.
func (s *BunStore) GetKeyHistory() ([]model.KeyRecord, error) {
	ctx := context.Background()
	var km []KeyRecordModel
	if err := s.bun.NewSelect().Model(&km).OrderExpr("created_at DESC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.KeyRecord, 0, len(km))
	for _, m := range km {
		out = append(out, keyRecordToModel(m))
	}
	return out, nil
}

// GetKeyRecordByFingerprint returns the record matching the fingerprint,
// or sql.ErrNoRows when absent.
func (s *BunStore) GetKeyRecordByFingerprint(fp string) (*model.KeyRecord, error) {
	ctx := context.Background()
	var m KeyRecordModel
	if err := s.bun.NewSelect().Model(&m).Where("fingerprint = ?", fp).Limit(1).Scan(ctx); err != nil {
		return nil, err
	}
	rec := keyRecordToModel(m)
	return &rec, nil
}

// DeleteKeyRecord removes a record by ID.
func (s *BunStore) DeleteKeyRecord(id int) error {
	ctx := context.Background()
	_, err := s.bun.NewDelete().Model((*KeyRecordModel)(nil)).Where("id = ?", id).Exec(ctx)
	if err == nil {
		_ = s.LogAction("DELETE_KEY_RECORD", fmt.Sprintf("id: %d", id))
	}
	return err
}

// LogAction inserts an audit log entry with the current OS user.
func (s *BunStore) LogAction(action, details string) error {
	ctx := context.Background()
	username := "unknown"
	if curUser, err := user.Current(); err == nil {
		// Windows usernames arrive as DOMAIN\user; keep the user part.
		if parts := strings.Split(curUser.Username, `\`); len(parts) > 1 {
			username = parts[1]
		} else {
			username = curUser.Username
		}
	}
	m := AuditLogModel{Username: username, Action: action, Details: details}
	_, err := s.bun.NewInsert().Model(&m).Exec(ctx)
	return err
}

// GetAllAuditLogEntries retrieves audit log entries ordered by timestamp desc.
func (s *BunStore) GetAllAuditLogEntries() ([]model.AuditLogEntry, error) {
	ctx := context.Background()
	var am []AuditLogModel
	if err := s.bun.NewSelect().Model(&am).OrderExpr("timestamp DESC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.AuditLogEntry, 0, len(am))
	for _, a := range am {
		out = append(out, model.AuditLogEntry{ID: a.ID, Timestamp: a.Timestamp, Username: a.Username, Action: a.Action, Details: a.Details})
	}
	return out, nil
}

// Close releases the underlying database handle.
func (s *BunStore) Close() error {
	return s.bun.Close()
}
