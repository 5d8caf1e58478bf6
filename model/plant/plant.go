package plant

import (
	"context"

	"github.com/ream-lab/switchdb/model"
)

// GenerationPlant describes a single generation or storage project. Plants are
// shared across scenarios; scenario membership is tracked separately.
type GenerationPlant struct {
	tableName struct{} `pg:"generation_plant"` // nolint: structcheck

	GenerationPlantID int64  `pg:",pk,notnull,use_zero"`
	Name              string `pg:",notnull"`
	GenTech           string `pg:",notnull"`
	LoadZoneID        int64  `pg:",notnull,use_zero"`
	EnergySource      string `pg:",notnull"`

	ConnectCostPerMw     *float64
	CapacityLimitMw      *float64
	FinalCapacityLimitMw *float64
	FullLoadHeatRate     *float64
	MinBuildCapacity     *float64
	MaxAge               *int

	// Plant level outage rate, distinct from the technology level rates.
	// Hydro flow caps derate capacity by it.
	ForcedOutageRate *float64

	IsVariable *bool
	IsCogen    *bool

	// Storage parameters. Null for plants without a storage component.
	StorageEfficiency      *float64
	StoreToReleaseRatio    *float64
	DailySelfDischargeRate *float64
	DischargeEfficiency    *float64
	LandUseRate            *float64

	// Ratio of stored energy capacity (MWh) to power capacity (MW), i.e. hours
	// of discharge at rated power. Null when unconstrained.
	GenStorageEnergyToPowerRatio *float32 `pg:",type:real"`
}

func (g *GenerationPlant) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, g)
}

type GenerationPlantList []*GenerationPlant

func (gl GenerationPlantList) Persist(ctx context.Context, s model.StorageBatch) error {
	for _, g := range gl {
		if err := g.Persist(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// GenerationPlantCost is a build-year cost row for a plant under a cost scenario.
type GenerationPlantCost struct {
	tableName struct{} `pg:"generation_plant_cost"` // nolint: structcheck

	GenerationPlantCostScenarioID int64 `pg:",pk,notnull,use_zero"`
	GenerationPlantID             int64 `pg:",pk,notnull,use_zero"`
	BuildYear                     int   `pg:",pk,notnull,use_zero"`

	FixedOM       *float64 `pg:"fixed_o_m"`
	OvernightCost *float64
	// Cost of storage energy capacity, $/MWh. Null for non-storage plants.
	StorageEnergyCapacityCostPerMwh *float64
}

func (c *GenerationPlantCost) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, c)
}

// GenerationPlantExistingAndPlanned is predetermined build capacity for a plant.
type GenerationPlantExistingAndPlanned struct {
	tableName struct{} `pg:"generation_plant_existing_and_planned"` // nolint: structcheck

	GenerationPlantExistingAndPlannedScenarioID int64 `pg:",pk,notnull,use_zero"`
	GenerationPlantID                           int64 `pg:",pk,notnull,use_zero"`
	BuildYear                                   int   `pg:",pk,notnull,use_zero"`

	Capacity                         *float64
	GenPredeterminedStorageEnergyMwh *float64
}

func (e *GenerationPlantExistingAndPlanned) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, e)
}

// GenerationPlantScenarioMember maps a plant into a plant scenario.
type GenerationPlantScenarioMember struct {
	tableName struct{} `pg:"generation_plant_scenario_member"` // nolint: structcheck

	GenerationPlantScenarioID int64 `pg:",pk,notnull,use_zero"`
	GenerationPlantID         int64 `pg:",pk,notnull,use_zero"`
}

func (m *GenerationPlantScenarioMember) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, m)
}

// GenerationPlantTechnology carries per-technology parameters shared by all
// plants of one gen_tech / energy_source pair.
type GenerationPlantTechnology struct {
	tableName struct{} `pg:"generation_plant_technologies"` // nolint: structcheck

	GenerationPlantTechnologiesScenarioID int64  `pg:",pk,notnull,use_zero"`
	GenTech                               string `pg:",pk,notnull"`
	EnergySource                          string `pg:",pk,notnull"`

	IsBaseload           *bool
	ScheduledOutageRate  *float64
	ForcedOutageRate     *float64
}

func (t *GenerationPlantTechnology) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, t)
}

// VariableOMCost is the variable operations and maintenance cost for a
// gen_tech / energy_source pair under a cost scenario.
type VariableOMCost struct {
	tableName struct{} `pg:"variable_o_m_costs"` // nolint: structcheck

	VariableOMCostScenarioID int64  `pg:"variable_o_m_cost_scenario_id,pk,notnull,use_zero"`
	GenTech                  string `pg:",pk,notnull"`
	EnergySource             string `pg:",pk,notnull"`

	VariableOM *float64 `pg:"variable_o_m"`
}

func (v *VariableOMCost) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, v)
}
