package repository

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks insureme-seeder/internal/domain/repository BulkLoader,SeedRunRepository

// BulkLoader defines the batch persistence contract used by the seeder
type BulkLoader interface {
	// Load inserts rows into table, skipping rows whose primary key already
	// exists, and returns the number of rows submitted.
	Load(ctx context.Context, table string, columns []string, rows [][]any) (int, error)
}
