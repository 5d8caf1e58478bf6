package storage

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	logging "github.com/ipfs/go-log/v2"
	"go.opencensus.io/stats"
	"golang.org/x/xerrors"

	"github.com/ream-lab/switchdb/metrics"
	"github.com/ream-lab/switchdb/model"
	"github.com/ream-lab/switchdb/model/energy"
	"github.com/ream-lab/switchdb/model/plant"
	"github.com/ream-lab/switchdb/model/scenario"
	"github.com/ream-lab/switchdb/model/timescale"
	"github.com/ream-lab/switchdb/model/zone"
	"github.com/ream-lab/switchdb/schemas"
)

var log = logging.Logger("switchdb/storage")

var (
	ErrSchemaTooOld = xerrors.New("database schema is too old and requires migration")
	ErrSchemaTooNew = xerrors.New("database schema is too new for this version of switchdb")
	ErrNotConnected = xerrors.New("database not connected")
)

// models holds every table model known to the current schema version. Schema
// verification checks each one against the connected database.
var models = []interface{}{
	(*scenario.Scenario)(nil),
	(*timescale.Period)(nil),
	(*timescale.SampledTimeseries)(nil),
	(*timescale.SampledTimepoint)(nil),
	(*zone.LoadZone)(nil),
	(*zone.DemandTimeseries)(nil),
	(*zone.BalancingArea)(nil),
	(*zone.TransmissionLine)(nil),
	(*energy.EnergySource)(nil),
	(*energy.FuelSimplePriceYearly)(nil),
	(*energy.CarbonCap)(nil),
	(*energy.RpsTarget)(nil),
	(*energy.HydroMonthlyCapacityFactor)(nil),
	(*plant.GenerationPlant)(nil),
	(*plant.GenerationPlantScenarioMember)(nil),
	(*plant.GenerationPlantTechnology)(nil),
	(*plant.VariableOMCost)(nil),
	(*plant.GenerationPlantCost)(nil),
	(*plant.GenerationPlantExistingAndPlanned)(nil),
}

var timeNow = time.Now

type Database struct {
	db         *pg.DB
	opt        *pg.Options
	schemaName string
	upsert     bool
}

// NewDatabase prepares a database handle from a connection URL. No connection
// is made until Connect or one of the migration methods is called.
func NewDatabase(ctx context.Context, url string, poolSize int, name string, schemaName string, upsert bool) (*Database, error) {
	opt, err := pg.ParseURL(url)
	if err != nil {
		return nil, xerrors.Errorf("parse database URL: %w", err)
	}
	opt.PoolSize = poolSize
	if name != "" {
		opt.ApplicationName = name
	}
	if schemaName != "" && schemaName != "public" {
		// Queries use unqualified table names; point every pooled connection
		// at the managed schema.
		opt.OnConnect = func(ctx context.Context, cn *pg.Conn) error {
			_, err := cn.ExecContext(ctx, "SET search_path TO ?, public", pg.Safe(schemaName))
			return err
		}
	}

	return &Database{
		opt:        opt,
		schemaName: schemaName,
		upsert:     upsert,
	}, nil
}

// Connect opens the connection pool and verifies that the database carries a
// supported schema version. Use MigrateSchema to bring an old database
// forward before connecting.
func (d *Database) Connect(ctx context.Context) error {
	db, err := connect(ctx, d.opt)
	if err != nil {
		return xerrors.Errorf("connect: %w", err)
	}

	if _, err := validateDatabaseSchemaVersion(ctx, db, d.schemaName); err != nil {
		_ = db.Close()
		return err
	}

	d.db = db
	return nil
}

func connect(ctx context.Context, opt *pg.Options) (*pg.DB, error) {
	db := pg.Connect(opt)
	db = db.WithContext(ctx)

	// Check if connection credentials are valid and PostgreSQL is up and running.
	if err := db.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, xerrors.Errorf("ping database: %w", err)
	}

	stats.Record(ctx, metrics.DBConns.M(int64(opt.PoolSize)))

	return db, nil
}

func (d *Database) IsConnected(ctx context.Context) bool {
	if d.db == nil {
		return false
	}
	return d.db.Ping(ctx) == nil
}

func (d *Database) Close(ctx context.Context) error {
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

// SchemaConfig reports the schema configuration in use by this database.
func (d *Database) SchemaConfig() schemas.Config {
	return schemas.Config{SchemaName: d.schemaName}
}

// AsORM exposes the underlying connection. The caller must have called
// Connect first.
func (d *Database) AsORM() *pg.DB {
	return d.db
}

var _ model.Storage = (*Database)(nil)

// PersistBatch persists a batch of persistables in a single transaction.
func (d *Database) PersistBatch(ctx context.Context, ps ...model.Persistable) error {
	if d.db == nil {
		return ErrNotConnected
	}
	return d.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		txs := &TxStorage{
			tx:     tx,
			upsert: d.upsert,
		}

		for _, p := range ps {
			if err := p.Persist(ctx, txs); err != nil {
				return err
			}
		}

		return nil
	})
}

type TxStorage struct {
	tx     *pg.Tx
	upsert bool
}

var _ model.StorageBatch = (*TxStorage)(nil)

// PersistModel persists a single model within the batch transaction. Conflicts
// with existing rows are ignored unless upserting is enabled.
func (s *TxStorage) PersistModel(ctx context.Context, m interface{}) error {
	start := timeNow()
	defer func() {
		stats.Record(ctx, metrics.PersistDuration.M(float64(time.Since(start).Milliseconds())))
	}()

	q := s.tx.ModelContext(ctx, m)
	if s.upsert {
		conflict, update := GenerateUpsertStrings(m)
		if update == "" {
			q = q.OnConflict(conflict + " DO NOTHING")
		} else {
			q = q.OnConflict(conflict + " DO UPDATE").Set(update)
		}
	} else {
		q = q.OnConflict("DO NOTHING")
	}

	if _, err := q.Insert(); err != nil {
		return xerrors.Errorf("persisting %T: %w", m, err)
	}
	return nil
}
