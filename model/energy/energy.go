package energy

import (
	"context"

	"github.com/ream-lab/switchdb/model"
)

// EnergySource is a fuel or non-fuel energy source.
type EnergySource struct {
	tableName struct{} `pg:"energy_source"` // nolint: structcheck

	Name   string `pg:",pk,notnull"`
	IsFuel bool   `pg:",notnull,use_zero"`

	Co2Intensity         *float64
	UpstreamCo2Intensity *float64
}

func (e *EnergySource) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, e)
}

// FuelSimplePriceYearly is a yearly zonal fuel price projection.
type FuelSimplePriceYearly struct {
	tableName struct{} `pg:"fuel_simple_price_yearly"` // nolint: structcheck

	FuelSimpleScenarioID int64  `pg:",pk,notnull,use_zero"`
	LoadZoneName         string `pg:",pk,notnull"`
	Fuel                 string `pg:",pk,notnull"`
	ProjectionYear       int    `pg:",pk,notnull,use_zero"`

	FuelPrice *float64
}

func (f *FuelSimplePriceYearly) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, f)
}

// CarbonCap is a yearly emissions cap under a cap scenario. The CA column
// carries the California-only cap.
type CarbonCap struct {
	tableName struct{} `pg:"carbon_cap"` // nolint: structcheck

	CarbonCapScenarioID int64 `pg:",pk,notnull,use_zero"`
	Year                int   `pg:",pk,notnull,use_zero"`

	CarbonCapTco2PerYr   *float64
	CarbonCapTco2PerYrCa *float64 `pg:"carbon_cap_tco2_per_yr_ca"`
}

func (c *CarbonCap) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, c)
}

// RpsTarget is a renewable portfolio standard target for a zone and year.
type RpsTarget struct {
	tableName struct{} `pg:"rps_target"` // nolint: structcheck

	RpsScenarioID int64  `pg:",pk,notnull,use_zero"`
	LoadZone      string `pg:",pk,notnull"`
	Year          int    `pg:",pk,notnull,use_zero"`

	RpsTarget *float64
}

func (r *RpsTarget) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, r)
}

// HydroMonthlyCapacityFactor is a historical monthly flow observation for a
// hydro plant.
type HydroMonthlyCapacityFactor struct {
	tableName struct{} `pg:"hydro_historical_monthly_capacity_factors"` // nolint: structcheck

	HydroSimpleScenarioID int64 `pg:",pk,notnull,use_zero"`
	GenerationPlantID     int64 `pg:",pk,notnull,use_zero"`
	Year                  int   `pg:",pk,notnull,use_zero"`
	Month                 int   `pg:",pk,notnull,use_zero"`

	HydroMinFlowMw *float64
	HydroAvgFlowMw *float64
}

func (h *HydroMonthlyCapacityFactor) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, h)
}
