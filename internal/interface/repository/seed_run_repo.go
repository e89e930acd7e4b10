package repository

import (
	"context"
	"errors"
	"fmt"

	"insureme-seeder/internal/domain/entity"
	"insureme-seeder/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const seedRunsCollection = "seed_runs"

// ErrSeedRunNotFound is returned when no report exists for a run ID
var ErrSeedRunNotFound = errors.New("seed run not found")

// MongoSeedRunRepository implements SeedRunRepository
type MongoSeedRunRepository struct {
	collection *mongo.Collection
}

// NewMongoSeedRunRepository creates a new seed run repository and ensures the
// startedAt index used for listing recent runs
func NewMongoSeedRunRepository(ctx context.Context, db *mongo.Database) (repository.SeedRunRepository, error) {
	collection := db.Collection(seedRunsCollection)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "startedAt", Value: -1}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s index: %w", seedRunsCollection, err)
	}

	return &MongoSeedRunRepository{
		collection: collection,
	}, nil
}

// Save creates or replaces the report for run.RunID
func (r *MongoSeedRunRepository) Save(ctx context.Context, run *entity.SeedRun) error {
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": run.RunID}, run, opts)
	if err != nil {
		return fmt.Errorf("failed to save seed run %s: %w", run.RunID, err)
	}
	return nil
}

// FindByID finds a seed run by its run ID
func (r *MongoSeedRunRepository) FindByID(ctx context.Context, runID string) (*entity.SeedRun, error) {
	var run entity.SeedRun
	err := r.collection.FindOne(ctx, bson.M{"_id": runID}).Decode(&run)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSeedRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find seed run %s: %w", runID, err)
	}
	return &run, nil
}

// NopSeedRunRepository discards reports when no report store is configured
type NopSeedRunRepository struct{}

// NewNopSeedRunRepository creates a repository that stores nothing
func NewNopSeedRunRepository() repository.SeedRunRepository {
	return NopSeedRunRepository{}
}

// Save does nothing
func (NopSeedRunRepository) Save(ctx context.Context, run *entity.SeedRun) error {
	return nil
}

// FindByID always reports the run as missing
func (NopSeedRunRepository) FindByID(ctx context.Context, runID string) (*entity.SeedRun, error) {
	return nil, ErrSeedRunNotFound
}
