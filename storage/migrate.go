package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pg/migrations/v8"
	"github.com/go-pg/pg/v10"
	"go.opencensus.io/stats"
	"golang.org/x/xerrors"

	"github.com/ream-lab/switchdb/metrics"
	"github.com/ream-lab/switchdb/model"
	"github.com/ream-lab/switchdb/schemas"
	v1 "github.com/ream-lab/switchdb/schemas/v1"
)

// GetSchemaVersions returns the schema version in the database and the latest schema version defined by the available
// migrations.
func (d *Database) GetSchemaVersions(ctx context.Context) (model.Version, model.Version, error) {
	latest := LatestSchemaVersion()

	// If we're already connected then use that connection
	if d.db != nil {
		dbVersion, _, err := getDatabaseSchemaVersion(ctx, d.db, d.schemaName)
		return dbVersion, latest, err
	}

	// Temporarily connect
	db, err := connect(ctx, d.opt)
	if err != nil {
		return model.Version{}, model.Version{}, xerrors.Errorf("connect: %w", err)
	}
	defer db.Close() // nolint: errcheck
	dbVersion, _, err := getDatabaseSchemaVersion(ctx, db, d.schemaName)
	return dbVersion, latest, err
}

// getDatabaseSchemaVersion returns the schema version in use by the database and whether the schema versioning
// tables have been initialized. If no schema version tables can be found then the database is assumed to be
// uninitialized and a zero version and false value will be returned. The returned boolean will only be true
// if the schema versioning tables exist and are populated correctly.
func getDatabaseSchemaVersion(ctx context.Context, db *pg.DB, schemaName string) (model.Version, bool, error) {
	svExists, err := tableExists(ctx, db, schemaName, "switchdb_version")
	if err != nil {
		return model.Version{}, false, xerrors.Errorf("checking if switchdb_version exists: %w", err)
	}

	migExists, err := tableExists(ctx, db, schemaName, "gopg_migrations")
	if err != nil {
		return model.Version{}, false, xerrors.Errorf("checking if gopg_migrations exists: %w", err)
	}

	if !migExists && !svExists {
		// Uninitialized database
		return model.Version{}, false, nil
	}

	svTableName := schemaName + ".switchdb_version"
	var major int
	_, err = db.QueryOne(pg.Scan(&major), `SELECT major FROM ? LIMIT 1`, pg.SafeQuery(svTableName))
	if err != nil && err != pg.ErrNoRows {
		return model.Version{}, false, err
	}

	// An unpopulated switchdb_version reads as major 0; the ledger is still
	// consulted through the latest patch series so its table name resolves.
	lookupMajor := major
	if lookupMajor == 0 {
		lookupMajor = schemas.LatestMajor
	}

	coll, err := collectionForVersion(model.Version{Major: lookupMajor}, schemas.Config{SchemaName: schemaName})
	if err != nil {
		return model.Version{}, false, err
	}

	migration, err := coll.Version(db)
	if err != nil {
		return model.Version{}, false, xerrors.Errorf("unable to determine schema version: %w", err)
	}

	if major == 0 && migration == 0 {
		// Database has the version tables but they are unpopulated so database is not initialized
		return model.Version{}, false, nil
	}

	dbVersion := model.Version{
		Major: major,
		Patch: int(migration),
	}

	return dbVersion, true, nil
}

// tableExists reports whether the named table exists in the named schema.
func tableExists(ctx context.Context, db *pg.DB, schemaName string, tableName string) (bool, error) {
	var exists bool
	_, err := db.QueryOneContext(ctx, pg.Scan(&exists), `
		SELECT EXISTS (
			SELECT 1
			FROM information_schema.tables
			WHERE table_schema = ? AND table_name = ?
		)`, schemaName, tableName)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// initDatabaseSchema initializes the version tables that track the schema version installed in the database
func initDatabaseSchema(ctx context.Context, db *pg.DB, schemaName string) error {
	if schemaName != "public" {
		_, err := db.Exec(`CREATE SCHEMA IF NOT EXISTS ?`, pg.SafeQuery(schemaName))
		if err != nil {
			return xerrors.Errorf("ensure schema exists: %w", err)
		}
	}

	svTableName := schemaName + ".switchdb_version"
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS ? (
			"major" int NOT NULL,
			PRIMARY KEY ("major")
		)
	`, pg.SafeQuery(svTableName))
	if err != nil {
		return xerrors.Errorf("ensure switchdb_version exists: %w", err)
	}

	// The migration ledger. Every applied patch is recorded here, keyed by its
	// sequence number, which is what guards a patch from being applied twice.
	migTableName := schemaName + ".gopg_migrations"
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS ? (
			id serial,
			version bigint,
			created_at timestamptz
		)
	`, pg.SafeQuery(migTableName))
	if err != nil {
		return xerrors.Errorf("ensure gopg_migrations exists: %w", err)
	}

	return nil
}

func setDatabaseSchemaMajor(ctx context.Context, db *pg.DB, schemaName string, major int) error {
	svTableName := schemaName + ".switchdb_version"
	if _, err := db.ExecContext(ctx, `DELETE FROM ?`, pg.SafeQuery(svTableName)); err != nil {
		return xerrors.Errorf("delete major version: %w", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO ? ("major") VALUES (?)`, pg.SafeQuery(svTableName), major); err != nil {
		return xerrors.Errorf("insert major version: %w", err)
	}
	return nil
}

func validateDatabaseSchemaVersion(ctx context.Context, db *pg.DB, schemaName string) (model.Version, error) {
	// Check if the version of the schema is compatible
	dbVersion, initialized, err := getDatabaseSchemaVersion(ctx, db, schemaName)
	if err != nil {
		return model.Version{}, xerrors.Errorf("get schema version: %w", err)
	}

	if !initialized {
		return model.Version{}, xerrors.Errorf("schema not installed in database")
	}

	latestVersion := LatestSchemaVersion()
	switch {
	case latestVersion.Before(dbVersion):
		// porridge too hot
		return model.Version{}, ErrSchemaTooNew
	case dbVersion.Before(model.OldestSupportedSchemaVersion):
		// porridge too cold
		return model.Version{}, ErrSchemaTooOld
	default:
		// just right
		return dbVersion, nil
	}
}

// LatestSchemaVersion returns the most recent version of the model schema. It is based on the highest patch version
// in the highest major schema version
func LatestSchemaVersion() model.Version {
	return latestSchemaVersionForMajor(schemas.LatestMajor)
}

// latestSchemaVersionForMajor returns the most recent version of the model schema for a major version. It is
// based on the highest registered patch.
func latestSchemaVersionForMajor(major int) model.Version {
	version := model.Version{
		Major: major,
	}

	coll, err := collectionForVersion(version, schemas.Config{})
	if err != nil {
		panic(fmt.Sprintf("inconsistent schema versions: no patches found for major version %d", version.Major))
	}

	version.Patch = getHighestMigration(coll)
	return version
}

func getHighestMigration(coll *migrations.Collection) int {
	var latestMigration int64
	ms := coll.Migrations()
	for _, m := range ms {
		if m.Version > latestMigration {
			latestMigration = m.Version
		}
	}
	return int(latestMigration)
}

// MigrateSchema migrates the database schema to the latest version based on the list of migrations available
func (d *Database) MigrateSchema(ctx context.Context) error {
	return d.MigrateSchemaTo(ctx, LatestSchemaVersion())
}

// MigrateSchemaTo migrates the database schema to a specific version. Downgrading a schema to an earlier
// version is not supported: the patch series defines no down migrations.
func (d *Database) MigrateSchemaTo(ctx context.Context, target model.Version) error {
	db, err := connect(ctx, d.opt)
	if err != nil {
		return xerrors.Errorf("connect: %w", err)
	}
	defer db.Close() // nolint: errcheck

	migrateStart := timeNow()
	defer func() {
		stats.Record(ctx, metrics.MigrationDuration.M(float64(time.Since(migrateStart).Milliseconds())))
	}()

	dbVersion, initialized, err := getDatabaseSchemaVersion(ctx, db, d.schemaName)
	if err != nil {
		return xerrors.Errorf("get schema versions: %w", err)
	}
	log.Infof("current database schema is version %s", dbVersion)

	// Check that we are not trying to migrate to a different major version of an already installed schema
	if initialized && target.Major != dbVersion.Major {
		return xerrors.Errorf("cannot migrate to a different major schema version. database version=%s, target version=%s", dbVersion, target)
	}

	latestVersion := latestSchemaVersionForMajor(target.Major)
	if latestVersion.Patch < target.Patch {
		return xerrors.Errorf("no migrations found for version %s", target)
	}

	if dbVersion == target {
		return xerrors.Errorf("database schema is already at version %s", dbVersion)
	}

	if target.Before(dbVersion) {
		return xerrors.Errorf("schema downgrades are not supported. database version=%s, target version=%s", dbVersion, target)
	}

	cfg := schemas.Config{
		SchemaName: d.schemaName,
	}

	coll, err := collectionForVersion(target, cfg)
	if err != nil {
		return xerrors.Errorf("no schema definition corresponds to version %s: %w", target, err)
	}

	if err := checkMigrationSequence(ctx, coll, dbVersion.Patch, target.Patch); err != nil {
		return xerrors.Errorf("check migration sequence: %w", err)
	}

	// Acquire an exclusive lock on the schema so we know no other instances are running
	if err := SchemaLock.LockExclusive(ctx, db); err != nil {
		return xerrors.Errorf("acquiring schema lock: %w", err)
	}

	// Remember to release the lock
	defer func() {
		err := SchemaLock.UnlockExclusive(ctx, db)
		if err != nil {
			log.Errorf("failed to release exclusive lock: %v", err)
		}
	}()

	if err := initDatabaseSchema(ctx, db, d.schemaName); err != nil {
		return xerrors.Errorf("initializing schema version tables: %w", err)
	}

	// Check if we need to create the base schema
	if !initialized {
		log.Infof("creating base schema for major version %d", target.Major)

		base, err := baseForVersion(target, cfg)
		if err != nil {
			return xerrors.Errorf("no base schema defined for version %s: %w", target, err)
		}

		if _, err := db.Exec(base); err != nil {
			return xerrors.Errorf("creating base schema: %w", err)
		}

		if err := setDatabaseSchemaMajor(ctx, db, d.schemaName, target.Major); err != nil {
			return xerrors.Errorf("recording major version: %w", err)
		}

		dbVersion.Major = target.Major
	}

	// Advance the schema version. Each patch runs in its own transaction and
	// is recorded in the ledger; a patch that fails (for example the target
	// table is missing, or its column already exists outside the ledger's
	// knowledge) surfaces the engine's error directly and leaves the ledger at
	// the last completed patch.
	log.Infof("running schema migration from version %s to version %s", dbVersion, target)
	_, newDBPatch, err := coll.Run(db, "up", strconv.Itoa(target.Patch))
	if err != nil {
		return xerrors.Errorf("run migration: %w", err)
	}

	dbVersion.Patch = int(newDBPatch)

	log.Infof("current database schema is now version %s", dbVersion)

	return nil
}

func checkMigrationSequence(ctx context.Context, coll *migrations.Collection, from, to int) error {
	versions := map[int64]bool{}
	ms := coll.Migrations()
	for _, m := range ms {
		if versions[m.Version] {
			return xerrors.Errorf("duplicate migration for schema version %d", m.Version)
		}
		versions[m.Version] = true
	}

	if from == to {
		return nil
	}

	if from > to {
		to, from = from, to
	}

	for i := from; i <= to; i++ {
		// Migration 0 is always a no-op since it's the base schema
		if i == 0 {
			continue
		}

		if !versions[int64(i)] {
			return xerrors.Errorf("missing migration for schema version %d", i)
		}
	}

	return nil
}

func collectionForVersion(version model.Version, cfg schemas.Config) (*migrations.Collection, error) {
	switch version.Major {
	case 1:
		return v1.GetPatches(cfg)
	default:
		return nil, xerrors.Errorf("unsupported major version: %d", version.Major)
	}
}

func baseForVersion(version model.Version, cfg schemas.Config) (string, error) {
	switch version.Major {
	case 1:
		return v1.GetBase(cfg)
	default:
		return "", xerrors.Errorf("unsupported major version: %d", version.Major)
	}
}
