package repository

import (
	"context"

	"insureme-seeder/internal/domain/entity"
)

// SeedRunRepository defines the interface for run report storage
type SeedRunRepository interface {
	Save(ctx context.Context, run *entity.SeedRun) error
	FindByID(ctx context.Context, runID string) (*entity.SeedRun, error)
}
