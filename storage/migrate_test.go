package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-pg/migrations/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ream-lab/switchdb/model"
	"github.com/ream-lab/switchdb/schemas"
	v1 "github.com/ream-lab/switchdb/schemas/v1"
	"github.com/ream-lab/switchdb/testutil"
)

func init() {
	// Freeze time for tests
	timeNow = testutil.KnownTimeNow
}

func TestLatestSchemaVersion(t *testing.T) {
	latest := LatestSchemaVersion()
	assert.Equal(t, v1.MajorVersion, latest.Major)
	assert.Equal(t, v1.Version().Patch, latest.Patch)
}

func TestCheckMigrationSequence(t *testing.T) {
	ctx := context.Background()

	mkColl := func(versions ...int64) *migrations.Collection {
		migs := make([]*migrations.Migration, 0, len(versions))
		for _, v := range versions {
			migs = append(migs, &migrations.Migration{Version: v})
		}
		return migrations.NewCollection(migs...)
	}

	t.Run("contiguous", func(t *testing.T) {
		err := checkMigrationSequence(ctx, mkColl(1, 2, 3, 4, 5, 6), 0, 6)
		require.NoError(t, err)
	})

	t.Run("same from and to", func(t *testing.T) {
		err := checkMigrationSequence(ctx, mkColl(1, 3), 2, 2)
		require.NoError(t, err)
	})

	t.Run("missing migration", func(t *testing.T) {
		err := checkMigrationSequence(ctx, mkColl(1, 2, 4), 0, 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing migration")
	})

	t.Run("reversed range", func(t *testing.T) {
		err := checkMigrationSequence(ctx, mkColl(1, 2, 3), 3, 1)
		require.NoError(t, err)
	})
}

func TestCollectionForVersion(t *testing.T) {
	_, err := collectionForVersion(model.Version{Major: 1}, schemas.Config{SchemaName: "switch"})
	require.NoError(t, err)

	_, err = collectionForVersion(model.Version{Major: 7}, schemas.Config{SchemaName: "switch"})
	require.Error(t, err)
}

func TestBaseForVersion(t *testing.T) {
	base, err := baseForVersion(model.Version{Major: 1}, schemas.Config{SchemaName: "switch"})
	require.NoError(t, err)
	assert.Contains(t, base, "CREATE TABLE switch.generation_plant (")

	_, err = baseForVersion(model.Version{Major: 7}, schemas.Config{SchemaName: "switch"})
	require.Error(t, err)
}

// TestMigrateAndVerify installs the schema in a scratch database, checks the
// migrated schema matches the models, and confirms that re-running the final
// patch fails with the engine's duplicate column error.
func TestMigrateAndVerify(t *testing.T) {
	if testing.Short() || !testutil.DatabaseAvailable() {
		t.Skip("short testing requested or SWITCHDB_TEST_DB not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	d, err := NewDatabase(ctx, testutil.Database(), 2, "switchdb-test", "switch", false)
	require.NoError(t, err)

	err = d.MigrateSchema(ctx)
	require.NoError(t, err)

	dbVersion, latest, err := d.GetSchemaVersions(ctx)
	require.NoError(t, err)
	assert.Equal(t, latest, dbVersion)

	err = d.VerifyCurrentSchema(ctx)
	require.NoError(t, err)

	// Migrating an up to date database reports its version rather than no-op'ing
	err = d.MigrateSchema(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already at version")

	// The final patch is an unguarded ALTER: applied against a database that
	// already has the column it must surface a duplicate column error.
	db, err := connect(ctx, d.opt)
	require.NoError(t, err)
	defer db.Close() // nolint: errcheck

	_, err = db.ExecContext(ctx, `ALTER TABLE switch.generation_plant ADD COLUMN gen_storage_energy_to_power_ratio real;`)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "42701") || strings.Contains(err.Error(), "already exists"))
}
