package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"insureme-seeder/internal/domain/entity"
	"insureme-seeder/internal/domain/repository/mocks"
	"insureme-seeder/pkg/logger"
	"insureme-seeder/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type seederFixture struct {
	loader  *mocks.MockBulkLoader
	runs    *mocks.MockSeedRunRepository
	metrics *metrics.Metrics
	seeder  *Seeder
}

func newSeederFixture(t *testing.T) *seederFixture {
	ctrl := gomock.NewController(t)
	f := &seederFixture{
		loader:  mocks.NewMockBulkLoader(ctrl),
		runs:    mocks.NewMockSeedRunRepository(ctrl),
		metrics: metrics.NewMetrics("seeder_test"),
	}
	f.seeder = NewSeeder(f.loader, f.runs, f.metrics, logger.NewNop()).
		WithClock(func() time.Time { return fixedNow })
	return f
}

// submitAll answers a Load call by reporting every row as submitted
func submitAll(_ context.Context, _ string, _ []string, rows [][]any) (int, error) {
	return len(rows), nil
}

func defaultRunOptions() RunOptions {
	return RunOptions{
		AppVersion:       "test",
		NumCustomers:     10,
		Seed:             42,
		Locale:           "en_GB",
		ClaimProbability: 0.5,
		ClaimIDScheme:    ClaimIDSequence,
	}
}

func TestSeeder_Run_LoadsTablesInDependencyOrder(t *testing.T) {
	f := newSeederFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.loader.EXPECT().Load(ctx, "customers", entity.CustomersTable.Columns, gomock.Len(10)).DoAndReturn(submitAll),
		f.loader.EXPECT().Load(ctx, "customer_financial_profile", entity.FinancialProfilesTable.Columns, gomock.Len(10)).DoAndReturn(submitAll),
		f.loader.EXPECT().Load(ctx, "policy", entity.PoliciesTable.Columns, gomock.Any()).DoAndReturn(submitAll),
		f.loader.EXPECT().Load(ctx, "claims", entity.ClaimsTable.Columns, gomock.Any()).DoAndReturn(submitAll),
	)

	var saved *entity.SeedRun
	f.runs.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, run *entity.SeedRun) error {
		saved = run
		return nil
	})

	run, err := f.seeder.Run(ctx, defaultRunOptions())
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Same(t, run, saved)
	assert.Equal(t, entity.RunStatusCompleted, run.Status)
	assert.NotEmpty(t, run.RunID)
	assert.Equal(t, uint64(42), run.Seed)
	assert.Equal(t, 10, run.Generated["customers"])
	assert.Equal(t, 10, run.Submitted["customers"])
	assert.Equal(t, run.Generated["policies"], run.Submitted["policy"])
	assert.Equal(t, run.Generated["claims"], run.Submitted["claims"])
	assert.Empty(t, run.ErrorDetail)

	assert.Equal(t, 10.0, testutil.ToFloat64(f.metrics.RowsGenerated.WithLabelValues("customers")))
	assert.Equal(t, 10.0, testutil.ToFloat64(f.metrics.RowsSubmitted.WithLabelValues("customer_financial_profile")))
}

func TestSeeder_Run_StopsAtFirstFailingTable(t *testing.T) {
	f := newSeederFixture(t)
	ctx := context.Background()
	loadErr := errors.New("insert or update on table \"policy\" violates foreign key constraint")

	gomock.InOrder(
		f.loader.EXPECT().Load(ctx, "customers", gomock.Any(), gomock.Any()).DoAndReturn(submitAll),
		f.loader.EXPECT().Load(ctx, "customer_financial_profile", gomock.Any(), gomock.Any()).DoAndReturn(submitAll),
		f.loader.EXPECT().Load(ctx, "policy", gomock.Any(), gomock.Any()).Return(0, loadErr),
	)
	f.runs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	run, err := f.seeder.Run(ctx, defaultRunOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "load policy")

	assert.Equal(t, entity.RunStatusFailed, run.Status)
	assert.Contains(t, run.ErrorDetail, "foreign key")
	assert.NotContains(t, run.Submitted, "policy")
	assert.NotContains(t, run.Submitted, "claims")
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ErrorsCount.WithLabelValues("load")))
}

func TestSeeder_Run_ReportFailureIsNotFatal(t *testing.T) {
	f := newSeederFixture(t)
	ctx := context.Background()

	f.loader.EXPECT().Load(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(submitAll).Times(4)
	f.runs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("mongo unavailable"))

	run, err := f.seeder.Run(ctx, defaultRunOptions())
	require.NoError(t, err)
	assert.Equal(t, entity.RunStatusCompleted, run.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ErrorsCount.WithLabelValues("report")))
}

func TestSeeder_Run_InterruptedRunStillSavesReport(t *testing.T) {
	f := newSeederFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.loader.EXPECT().Load(gomock.Any(), "customers", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ []string, _ [][]any) (int, error) {
			cancel()
			return 0, ctx.Err()
		})

	var saved *entity.SeedRun
	f.runs.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, run *entity.SeedRun) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline, "report write is bounded")
		saved = run
		return nil
	})

	run, err := f.seeder.Run(ctx, defaultRunOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	require.NotNil(t, saved, "report is written after cancellation")
	assert.Equal(t, entity.RunStatusFailed, saved.Status)
	assert.Contains(t, saved.ErrorDetail, "context canceled")
	assert.Same(t, run, saved)
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.ErrorsCount.WithLabelValues("report")))
}

func TestSeeder_Run_TableLogsCarryRunID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	f := newSeederFixture(t)
	f.seeder.logger = logger.NewFromZap(zap.New(core))

	f.loader.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(submitAll).Times(4)
	f.runs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	run, err := f.seeder.Run(context.Background(), defaultRunOptions())
	require.NoError(t, err)

	tableLogs := logs.FilterMessage("Table loaded").All()
	require.Len(t, tableLogs, 4)
	for _, entry := range tableLogs {
		assert.Equal(t, run.RunID, entry.ContextMap()["runID"])
	}
}

func TestSeeder_Run_UnknownLocaleFailsBeforeLoading(t *testing.T) {
	f := newSeederFixture(t)
	ctx := context.Background()

	f.runs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	opts := defaultRunOptions()
	opts.Locale = "de_DE"
	run, err := f.seeder.Run(ctx, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "de_DE")
	assert.Equal(t, entity.RunStatusFailed, run.Status)
}

func TestSeeder_Run_SameSeedSameRows(t *testing.T) {
	capture := func() map[string][][]any {
		f := newSeederFixture(t)
		got := map[string][][]any{}
		f.loader.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, table string, _ []string, rows [][]any) (int, error) {
				got[table] = rows
				return len(rows), nil
			}).Times(4)
		f.runs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.seeder.Run(context.Background(), defaultRunOptions())
		require.NoError(t, err)
		return got
	}

	assert.Equal(t, capture(), capture())
}

func TestSeeder_Load_CancelledContext(t *testing.T) {
	f := newSeederFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ds := newGenerator(t, 1, GeneratorOptions{ClaimProbability: 1}).Generate(2)
	err := f.seeder.Load(ctx, ds, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeeder_Load_EmptyDataset(t *testing.T) {
	f := newSeederFixture(t)
	ctx := context.Background()

	f.loader.EXPECT().Load(ctx, gomock.Any(), gomock.Any(), gomock.Len(0)).Return(0, nil).Times(4)

	submitted := map[string]int{}
	require.NoError(t, f.seeder.Load(ctx, entity.Dataset{}, submitted))
	assert.Equal(t, map[string]int{
		"customers":                  0,
		"customer_financial_profile": 0,
		"policy":                     0,
		"claims":                     0,
	}, submitted)
}
