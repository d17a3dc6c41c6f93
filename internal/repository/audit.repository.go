package repository

import (
	"context"

	"github.com/benjomoments/studio-api/internal/model"
	"github.com/benjomoments/studio-api/pkg/pg"
)

type AuditRepository struct {
	*pg.DB
}

func NewAuditRepository(db *pg.DB) *AuditRepository {
	return &AuditRepository{
		db,
	}
}

func (r *AuditRepository) Create(ctx context.Context, entry *model.AuditEntry) (*model.AuditEntry, error) {
	entity := toAuditEntity(entry)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toAuditModel(entity), nil
}

// ListRecent returns the newest audit entries first.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]*model.AuditEntry, error) {
	var entities []*AuditEntity
	if err := r.Read(ctx).Order("id DESC").Limit(limit).Find(&entities).Error; err != nil {
		return nil, err
	}

	models := make([]*model.AuditEntry, len(entities))
	for i, e := range entities {
		models[i] = toAuditModel(e)
	}
	return models, nil
}
