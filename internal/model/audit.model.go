package model

import (
	"time"
)

// AuditEntry records one admin mutation for the audit trail. Entries are
// written asynchronously and never block or fail the originating request.
type AuditEntry struct {
	ID         int64     `json:"id"          db:"id"          gorm:"primaryKey;autoIncrement;column:id"`
	UserEmail  string    `json:"user_email"  db:"user_email"  gorm:"column:user_email"`
	Action     string    `json:"action"      db:"action"      gorm:"column:action;not null"`
	EntityType string    `json:"entity_type" db:"entity_type" gorm:"column:entity_type"`
	EntityID   int64     `json:"entity_id"   db:"entity_id"   gorm:"column:entity_id"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"  gorm:"column:created_at;autoCreateTime"`
}

func (AuditEntry) TableName() string { return "audit_logs" }
