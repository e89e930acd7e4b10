package persistence

import (
	"context"
	"fmt"

	"insureme-seeder/pkg/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLite opens a gorm handle on a SQLite database. ":memory:" databases live only as long as the single connection.
func NewSQLite(ctx context.Context, path string, log logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), NewGormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := configurePool(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}
