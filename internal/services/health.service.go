package services

import (
	"context"

	"github.com/benjomoments/studio-api/pkg/pg"
)

type HealthService struct {
	db *pg.DB
}

func NewHealthService(db *pg.DB) *HealthService {
	return &HealthService{db: db}
}

// Get reports whether the database answers.
func (s *HealthService) Get() error {
	var one int
	return s.db.Read(context.Background()).Raw("SELECT 1").Scan(&one).Error
}
