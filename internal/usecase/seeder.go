package usecase

import (
	"context"
	"fmt"
	"time"

	"insureme-seeder/internal/domain/entity"
	"insureme-seeder/internal/domain/repository"
	"insureme-seeder/pkg/faker"
	"insureme-seeder/pkg/logger"
	"insureme-seeder/pkg/metrics"

	"github.com/google/uuid"
)

const reportSaveTimeout = 5 * time.Second

// RunOptions describes one seeding run
type RunOptions struct {
	AppVersion       string
	NumCustomers     int
	Seed             uint64
	Locale           string
	ClaimProbability float64
	ClaimIDScheme    ClaimIDScheme
}

// Seeder generates a dataset and loads it table by table in foreign key order
type Seeder struct {
	loader  repository.BulkLoader
	runs    repository.SeedRunRepository
	metrics *metrics.Metrics
	logger  logger.Logger
	clock   func() time.Time
}

// NewSeeder creates a new seeder
func NewSeeder(
	loader repository.BulkLoader,
	runs repository.SeedRunRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *Seeder {
	return &Seeder{
		loader:  loader,
		runs:    runs,
		metrics: metrics,
		logger:  logger,
		clock:   time.Now,
	}
}

// WithClock replaces the wall clock used for the generation instant and the run report
func (s *Seeder) WithClock(clock func() time.Time) *Seeder {
	s.clock = clock
	return s
}

// Run executes one seeding run. The returned report is never nil and carries
// the failure detail when err is non-nil.
func (s *Seeder) Run(ctx context.Context, opts RunOptions) (*entity.SeedRun, error) {
	now := s.clock().UTC()
	run := &entity.SeedRun{
		RunID:         uuid.NewString(),
		AppVersion:    opts.AppVersion,
		Seed:          opts.Seed,
		Locale:        opts.Locale,
		ClaimIDScheme: string(opts.ClaimIDScheme),
		NumCustomers:  opts.NumCustomers,
		Status:        entity.RunStatusRunning,
		Generated:     map[string]int{},
		Submitted:     map[string]int{},
		StartedAt:     now,
	}
	log := s.logger.With("runID", run.RunID)

	err := s.seed(ctx, log, opts, now, run)

	run.FinishedAt = s.clock().UTC()
	run.Status = entity.RunStatusCompleted
	if err != nil {
		run.Status = entity.RunStatusFailed
		run.ErrorDetail = err.Error()
	}

	// An interrupted run still gets its FAILED report
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reportSaveTimeout)
	defer cancel()
	if saveErr := s.runs.Save(saveCtx, run); saveErr != nil {
		s.metrics.ErrorsCount.WithLabelValues("report").Inc()
		log.Warn("Failed to save seed run report", "error", saveErr)
	}

	if err != nil {
		log.Error("Seeding failed", "error", err, "duration", run.Duration())
		return run, err
	}

	log.Info("Seeding completed",
		"generated", run.Generated,
		"submitted", run.Submitted,
		"duration", run.Duration())
	return run, nil
}

func (s *Seeder) seed(ctx context.Context, log logger.Logger, opts RunOptions, now time.Time, run *entity.SeedRun) error {
	fake, err := faker.New(opts.Seed, opts.Locale)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("generate").Inc()
		return fmt.Errorf("failed to create fake data source: %w", err)
	}

	log.Info("Generating dataset",
		"customers", opts.NumCustomers,
		"seed", opts.Seed,
		"locale", opts.Locale,
		"claimIdScheme", opts.ClaimIDScheme)

	gen := NewGenerator(fake, now, GeneratorOptions{
		ClaimProbability: opts.ClaimProbability,
		ClaimIDScheme:    opts.ClaimIDScheme,
	})
	ds := gen.Generate(opts.NumCustomers)

	for name, n := range ds.Counts() {
		run.Generated[name] = n
		s.metrics.RowsGenerated.WithLabelValues(name).Add(float64(n))
	}
	log.Info("Dataset generated", "counts", run.Generated)

	if err := ValidateDataset(ds, gen.now); err != nil {
		s.metrics.ErrorsCount.WithLabelValues("validate").Inc()
		return err
	}

	return s.load(ctx, log, ds, run.Submitted)
}

// Load writes the dataset in dependency order: customers, financial profiles,
// policies, then claims. It stops at the first failing table; tables loaded
// before it stay committed. submitted, when non-nil, receives the row count
// sent per table.
func (s *Seeder) Load(ctx context.Context, ds entity.Dataset, submitted map[string]int) error {
	return s.load(ctx, s.logger, ds, submitted)
}

func (s *Seeder) load(ctx context.Context, log logger.Logger, ds entity.Dataset, submitted map[string]int) error {
	steps := []struct {
		table entity.Table
		rows  [][]any
	}{
		{entity.CustomersTable, entity.Rows(ds.Customers)},
		{entity.FinancialProfilesTable, entity.Rows(ds.FinancialProfiles)},
		{entity.PoliciesTable, entity.Rows(ds.Policies)},
		{entity.ClaimsTable, entity.Rows(ds.Claims)},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("load %s: %w", step.table.Name, err)
		}

		start := time.Now()
		n, err := s.loader.Load(ctx, step.table.Name, step.table.Columns, step.rows)
		s.metrics.LoadDuration.WithLabelValues(step.table.Name).Observe(time.Since(start).Seconds())
		if err != nil {
			s.metrics.ErrorsCount.WithLabelValues("load").Inc()
			return fmt.Errorf("load %s: %w", step.table.Name, err)
		}

		s.metrics.RowsSubmitted.WithLabelValues(step.table.Name).Add(float64(n))
		if submitted != nil {
			submitted[step.table.Name] = n
		}
		log.Info("Table loaded", "table", step.table.Name, "rows", n)
	}

	return nil
}
