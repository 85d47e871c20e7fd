package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"startup-validator/db"
	"startup-validator/errs"
	"startup-validator/models"
)

// testRepository connects to the MongoDB named by MONGODB_URI and returns
// a repository backed by a throwaway database. Tests are skipped when the
// variable is unset so the suite stays runnable without infrastructure.
func testRepository(t *testing.T) *ReportRepository {
	t.Helper()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set, skipping repository integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	database := client.Database("startup_validator_test")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = database.Collection(db.ReportsCollection).Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return NewReportRepository(database)
}

func testReport(name string, createdAt time.Time) *models.ValidationReport {
	return &models.ValidationReport{
		UserInput:      models.IdeaInput{IdeaName: name},
		ProcessedInput: models.ProcessedInput{IdeaName: name},
		FinalSummary: models.ValidationSummary{
			Overview:         "overview for " + name,
			FeasibilityScore: 50,
		},
		CreatedAt: createdAt,
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	report := testReport("RoundTrip", time.Time{})
	id, err := repo.Save(ctx, report)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.False(t, report.CreatedAt.IsZero(), "Save assigns created_at")

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "RoundTrip", got.UserInput.IdeaName)
	assert.Equal(t, "overview for RoundTrip", got.FinalSummary.Overview)
	assert.Equal(t, report.ID, got.ID)
}

func TestGetNotFound(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "0123456789abcdef01234567")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = repo.Get(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestListPagination(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i, name := range []string{"A", "B", "C"} {
		_, err := repo.Save(ctx, testReport(name, base.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}

	first, total, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, first, 2)
	assert.Equal(t, "C", first[0].UserInput.IdeaName)
	assert.Equal(t, "B", first[1].UserInput.IdeaName)

	second, total, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, second, 1)
	assert.Equal(t, "A", second[0].UserInput.IdeaName)
}

func TestListDefaultLimit(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, testReport("Only", time.Now().UTC()))
	require.NoError(t, err)

	reports, total, err := repo.List(ctx, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, reports, 1)
}

func TestDeleteRemovesReport(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	id, err := repo.Save(ctx, testReport("ToDelete", time.Now().UTC()))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// second delete of the same id reports not found
	assert.ErrorIs(t, repo.Delete(ctx, id), errs.ErrNotFound)
}

func TestDeleteMalformedID(t *testing.T) {
	repo := testRepository(t)

	assert.ErrorIs(t, repo.Delete(context.Background(), "zzz"), errs.ErrNotFound)
}
