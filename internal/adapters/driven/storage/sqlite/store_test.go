package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/profscout/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func TestNewStore(t *testing.T) {
	t.Run("creates database file", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewStore(dir)
		require.NoError(t, err)
		defer store.Close()

		assert.Equal(t, filepath.Join(dir, "history.db"), store.Path())
		_, err = os.Stat(store.Path())
		assert.NoError(t, err)
	})

	t.Run("reopening is idempotent", func(t *testing.T) {
		dir := t.TempDir()

		store, err := NewStore(dir)
		require.NoError(t, err)
		require.NoError(t, store.Close())

		// Migrations must not re-run on an existing database.
		store, err = NewStore(dir)
		require.NoError(t, err)
		assert.NoError(t, store.Close())
	})
}

func TestSaveRun(t *testing.T) {
	t.Run("generates an ID when empty", func(t *testing.T) {
		store := setupTestStore(t)

		id, err := store.SaveRun(context.Background(), domain.HarvestRun{
			OrganizationID:  "https://openalex.org/I42",
			OrganizationKey: "I42",
			RecordCount:     180,
			PagesFetched:    2,
			Indexed:         true,
			Document:        "# Jane Doe\n",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("keeps a provided ID", func(t *testing.T) {
		store := setupTestStore(t)

		id, err := store.SaveRun(context.Background(), domain.HarvestRun{
			ID:              "run-1",
			OrganizationKey: "I42",
		})

		require.NoError(t, err)
		assert.Equal(t, "run-1", id)
	})
}

func TestGetRun(t *testing.T) {
	t.Run("round trip includes document", func(t *testing.T) {
		store := setupTestStore(t)
		created := time.Now().UTC().Truncate(time.Second)

		id, err := store.SaveRun(context.Background(), domain.HarvestRun{
			OrganizationID:  "https://openalex.org/I42",
			OrganizationKey: "I42",
			RecordCount:     3,
			PagesFetched:    1,
			Indexed:         true,
			Document:        "# Jane Doe\n---\n# John Roe\n",
			CreatedAt:       created,
		})
		require.NoError(t, err)

		run, err := store.GetRun(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "I42", run.OrganizationKey)
		assert.Equal(t, 3, run.RecordCount)
		assert.True(t, run.Indexed)
		assert.Equal(t, "# Jane Doe\n---\n# John Roe\n", run.Document)
		assert.True(t, run.CreatedAt.Equal(created))
	})

	t.Run("missing run", func(t *testing.T) {
		store := setupTestStore(t)

		_, err := store.GetRun(context.Background(), "nope")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListRuns(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	for i, key := range []string{"I1", "I2", "I3"} {
		_, err := store.SaveRun(ctx, domain.HarvestRun{
			OrganizationKey: key,
			RecordCount:     i,
			Document:        "doc " + key,
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	runs, err := store.ListRuns(ctx)

	require.NoError(t, err)
	require.Len(t, runs, 3)
	// Newest first, documents omitted from listings.
	assert.Equal(t, "I3", runs[0].OrganizationKey)
	assert.Equal(t, "I1", runs[2].OrganizationKey)
	for _, run := range runs {
		assert.Empty(t, run.Document)
	}
}
