package scenario

import (
	"context"

	"github.com/ream-lab/switchdb/model"
)

// A Scenario binds together the sub-scenario ids that select a coherent set
// of inputs for one model run. Nullable ids switch off their feature.
type Scenario struct {
	tableName struct{} `pg:"scenario"` // nolint: structcheck

	ScenarioID  int64  `pg:",pk,notnull,use_zero"`
	Name        string `pg:",notnull"`
	Description *string

	StudyTimeframeID                            int64 `pg:",notnull,use_zero"`
	TimeSampleID                                int64 `pg:",notnull,use_zero"`
	DemandScenarioID                            int64 `pg:",notnull,use_zero"`
	FuelSimplePriceScenarioID                   int64 `pg:",notnull,use_zero"`
	GenerationPlantScenarioID                   int64 `pg:",notnull,use_zero"`
	GenerationPlantCostScenarioID               int64 `pg:",notnull,use_zero"`
	GenerationPlantExistingAndPlannedScenarioID int64 `pg:",notnull,use_zero"`
	GenerationPlantTechnologiesScenarioID       int64 `pg:",notnull,use_zero"`
	VariableOMCostScenarioID                    int64 `pg:"variable_o_m_cost_scenario_id,notnull,use_zero"`
	HydroSimpleScenarioID                       int64 `pg:",notnull,use_zero"`
	CarbonCapScenarioID                         int64 `pg:",notnull,use_zero"`
	RegionalFuelMarketScenarioID                int64 `pg:",notnull,use_zero"`
	TransmissionBaseCapitalCostScenarioID       int64 `pg:",notnull,use_zero"`

	SupplyCurvesScenarioID *int64
	RpsScenarioID          *int64
	CaPoliciesScenarioID   *int64
	EnableDr               *int
	EnableEv               *int
	EnablePlanningReserves bool `pg:",use_zero"`
	WindToSolarRatio       *float64
}

func (s *Scenario) Persist(ctx context.Context, sb model.StorageBatch) error {
	return sb.PersistModel(ctx, s)
}
