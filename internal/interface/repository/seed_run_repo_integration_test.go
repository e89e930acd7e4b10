//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"insureme-seeder/internal/domain/entity"
	"insureme-seeder/internal/infrastructure/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func newMongoDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	container, err := tcmongodb.Run(ctx, "mongo:7")
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Fatalf("failed to start mongodb container: %v", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get mongodb connection string: %v", err)
	}

	client, err := persistence.NewMongoClient(ctx, uri, "", "")
	if err != nil {
		t.Fatalf("failed to connect to mongodb: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return persistence.GetDatabase(client, "insureme_test")
}

func TestMongoSeedRunRepository(t *testing.T) {
	db := newMongoDatabase(t)
	ctx := context.Background()

	repo, err := NewMongoSeedRunRepository(ctx, db)
	require.NoError(t, err)

	t.Run("creates the startedAt index", func(t *testing.T) {
		cursor, err := db.Collection(seedRunsCollection).Indexes().List(ctx)
		require.NoError(t, err)

		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		names := make([]string, 0, len(indexes))
		for _, idx := range indexes {
			names = append(names, idx["name"].(string))
		}
		assert.Contains(t, names, "startedAt_-1")
	})

	t.Run("unknown run is not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrSeedRunNotFound)
	})

	t.Run("save upserts by run id", func(t *testing.T) {
		started := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
		run := &entity.SeedRun{
			RunID:     "run-1",
			Seed:      42,
			Locale:    "en_GB",
			Status:    entity.RunStatusRunning,
			Generated: map[string]int{"customers": 10},
			Submitted: map[string]int{},
			StartedAt: started,
		}
		require.NoError(t, repo.Save(ctx, run))

		run.Status = entity.RunStatusFailed
		run.ErrorDetail = "load policy: context canceled"
		run.Submitted["customers"] = 10
		run.FinishedAt = started.Add(time.Minute)
		require.NoError(t, repo.Save(ctx, run))

		count, err := db.Collection(seedRunsCollection).CountDocuments(ctx, bson.M{"_id": "run-1"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		got, err := repo.FindByID(ctx, "run-1")
		require.NoError(t, err)
		assert.Equal(t, entity.RunStatusFailed, got.Status)
		assert.Equal(t, uint64(42), got.Seed)
		assert.Equal(t, "load policy: context canceled", got.ErrorDetail)
		assert.Equal(t, 10, got.Submitted["customers"])
		assert.Equal(t, time.Minute, got.Duration())
	})

	t.Run("constructor is idempotent", func(t *testing.T) {
		_, err := NewMongoSeedRunRepository(ctx, db)
		assert.NoError(t, err)
	})
}

func TestNewMongoSeedRunRepository_CancelledContext(t *testing.T) {
	db := newMongoDatabase(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMongoSeedRunRepository(ctx, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed_runs index")
}
