package repository

import (
	"time"

	"github.com/benjomoments/studio-api/internal/model"
)

type AuditEntity struct {
	ID         int64     `db:"id"          gorm:"primaryKey;autoIncrement;column:id"`
	UserEmail  string    `db:"user_email"  gorm:"column:user_email"`
	Action     string    `db:"action"      gorm:"column:action;not null"`
	EntityType string    `db:"entity_type" gorm:"column:entity_type"`
	EntityID   int64     `db:"entity_id"   gorm:"column:entity_id"`
	CreatedAt  time.Time `db:"created_at"  gorm:"column:created_at;autoCreateTime"`
}

func (AuditEntity) TableName() string {
	return "audit_logs"
}

func toAuditEntity(m *model.AuditEntry) *AuditEntity {
	if m == nil {
		return nil
	}
	return &AuditEntity{
		ID:         m.ID,
		UserEmail:  m.UserEmail,
		Action:     m.Action,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		CreatedAt:  m.CreatedAt,
	}
}

func toAuditModel(e *AuditEntity) *model.AuditEntry {
	if e == nil {
		return nil
	}
	return &model.AuditEntry{
		ID:         e.ID,
		UserEmail:  e.UserEmail,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		CreatedAt:  e.CreatedAt,
	}
}
