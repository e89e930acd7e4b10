package repository

import (
	"context"
	"testing"
	"time"

	"insureme-seeder/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNopSeedRunRepository(t *testing.T) {
	repo := NewNopSeedRunRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.SeedRun{RunID: "run-1"}))

	_, err := repo.FindByID(ctx, "run-1")
	assert.ErrorIs(t, err, ErrSeedRunNotFound)
}

func TestSeedRun_BSONRoundTripKeys(t *testing.T) {
	started := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	run := entity.SeedRun{
		RunID:     "run-1",
		Seed:      42,
		Status:    entity.RunStatusCompleted,
		Generated: map[string]int{"customers": 1},
		Submitted: map[string]int{"customers": 1},
		StartedAt: started,
	}

	raw, err := bson.Marshal(run)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.Equal(t, "run-1", doc["_id"])
	assert.Equal(t, entity.RunStatusCompleted, doc["status"])
	assert.Contains(t, doc, "startedAt")
	assert.NotContains(t, doc, "errorDetail", "empty error detail is omitted")
}
