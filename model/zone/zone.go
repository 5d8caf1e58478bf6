package zone

import (
	"context"

	"github.com/ream-lab/switchdb/model"
)

// LoadZone is a demand region of the WECC grid.
type LoadZone struct {
	tableName struct{} `pg:"load_zone"` // nolint: structcheck

	LoadZoneID int64  `pg:",pk,notnull,use_zero"`
	Name       string `pg:",notnull"`

	CcsDistanceKm *float64
	ReservesArea  *string
}

func (z *LoadZone) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, z)
}

// DemandTimeseries is hourly zonal demand under a demand scenario.
type DemandTimeseries struct {
	tableName struct{} `pg:"demand_timeseries"` // nolint: structcheck

	DemandScenarioID int64 `pg:",pk,notnull,use_zero"`
	LoadZoneID       int64 `pg:",pk,notnull,use_zero"`
	RawTimepointID   int64 `pg:",pk,notnull,use_zero"`

	LoadZoneName string `pg:",notnull"`
	DemandMw     *float64
}

func (d *DemandTimeseries) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, d)
}

// BalancingArea carries operating reserve fractions for a balancing authority.
type BalancingArea struct {
	tableName struct{} `pg:"balancing_areas"` // nolint: structcheck

	BalancingArea string `pg:",pk,notnull"`

	QuickstartResLoadFrac  *float64
	QuickstartResWindFrac  *float64
	QuickstartResSolarFrac *float64
	SpinningResLoadFrac    *float64
	SpinningResWindFrac    *float64
	SpinningResSolarFrac   *float64
}

func (b *BalancingArea) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, b)
}

// TransmissionLine is a directed corridor between two load zones. Only the
// direction with start id below end id is exported.
type TransmissionLine struct {
	tableName struct{} `pg:"transmission_lines"` // nolint: structcheck

	TransmissionLineID int64 `pg:",pk,notnull,use_zero"`
	StartLoadZoneID    int64 `pg:",notnull,use_zero"`
	EndLoadZoneID      int64 `pg:",notnull,use_zero"`

	TransLengthKm      *float64
	TransEfficiency    *float64
	ExistingTransCapMw *float64
	DeratingFactor     *float64
	NewBuildAllowed    *int

	// The exported terrain multiplier is the product of these two factors.
	TerrainMultiplier              *float64
	TransmissionCostEconMultiplier *float64
}

func (t *TransmissionLine) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, t)
}
