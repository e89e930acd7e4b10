package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"insureme-seeder/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLite_InMemory(t *testing.T) {
	db, err := NewSQLite(context.Background(), ":memory:", logger.NewNop())
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, db.Exec("CREATE TABLE t (id TEXT PRIMARY KEY)").Error)
	require.NoError(t, db.Exec("INSERT INTO t (id) VALUES ('a')").Error)

	// the single pooled connection keeps the in-memory database alive
	var n int64
	require.NoError(t, db.Table("t").Count(&n).Error)
	assert.Equal(t, int64(1), n)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestNewSQLite_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.db")

	db, err := NewSQLite(context.Background(), path, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, Close(db))

	assert.FileExists(t, path)
}

func TestNewPostgres_Unreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPostgres(ctx, "host=127.0.0.1 port=1 user=x password=x dbname=x sslmode=disable connect_timeout=1", logger.NewNop())
	require.Error(t, err)
}
