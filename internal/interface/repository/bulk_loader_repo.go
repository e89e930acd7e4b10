package repository

import (
	"context"
	"fmt"
	"strings"

	"insureme-seeder/internal/domain/repository"
	"insureme-seeder/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultBatchSize = 1000
	// maxBindParams is the PostgreSQL wire protocol limit on parameters per statement
	maxBindParams = 65535
)

// GormBulkLoader implements the BulkLoader interface
type GormBulkLoader struct {
	db        *gorm.DB
	batchSize int
	logger    logger.Logger
}

// NewGormBulkLoader creates a new GORM bulk loader. batchSize caps the rows
// sent per INSERT statement; <= 0 uses the default of 1000.
func NewGormBulkLoader(db *gorm.DB, batchSize int, log logger.Logger) repository.BulkLoader {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &GormBulkLoader{
		db:        db,
		batchSize: batchSize,
		logger:    log.With("component", "bulk_loader"),
	}
}

// Load inserts all rows into table inside one transaction with
// ON CONFLICT DO NOTHING, and returns the number of rows submitted.
func (r *GormBulkLoader) Load(ctx context.Context, table string, columns []string, rows [][]any) (int, error) {
	if table == "" {
		return 0, ErrNoTable
	}
	if len(columns) == 0 {
		return 0, fmt.Errorf("%w: table %s", ErrNoColumns, table)
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return 0, fmt.Errorf("%w: row %d of %s has %d values, want %d", ErrRowWidth, i, table, len(row), len(columns))
		}
	}

	if len(rows) == 0 {
		r.logger.Info("Nothing to insert", "table", table)
		return 0, nil
	}

	chunkSize := r.chunkSize(len(columns))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(rows); start += chunkSize {
			end := min(start+chunkSize, len(rows))

			stmt := insertStatement(tx, table, columns, end-start)
			if err := tx.Exec(stmt, flatten(rows[start:end])...).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, classifyError(table, err)
	}

	r.logger.Info("Inserted rows", "table", table, "rows", len(rows), "batchSize", chunkSize)
	return len(rows), nil
}

// chunkSize keeps each statement under both the configured batch size and the
// driver's bind parameter limit
func (r *GormBulkLoader) chunkSize(width int) int {
	return max(1, min(r.batchSize, maxBindParams/width))
}

// insertStatement renders
// INSERT INTO "t" ("a","b") VALUES (?,?),(?,?) ON CONFLICT DO NOTHING
func insertStatement(tx *gorm.DB, table string, columns []string, rowCount int) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = tx.Statement.Quote(clause.Column{Name: c})
	}

	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",") + ")"
	values := strings.TrimSuffix(strings.Repeat(placeholder+",", rowCount), ",")

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s ON CONFLICT DO NOTHING",
		tx.Statement.Quote(clause.Table{Name: table}),
		strings.Join(quoted, ","),
		values,
	)
}

func flatten(rows [][]any) []any {
	if len(rows) == 0 {
		return nil
	}

	args := make([]any, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		args = append(args, row...)
	}
	return args
}
