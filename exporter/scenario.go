package exporter

import (
	"context"
	"fmt"
	"os"

	"github.com/go-pg/pg/v10"
	"golang.org/x/xerrors"

	"github.com/ream-lab/switchdb/model/scenario"
)

// loadScenario reads the scenario row that selects the input set to export.
func loadScenario(ctx context.Context, db dbConn, scenarioID int64) (*scenario.Scenario, error) {
	s := &scenario.Scenario{ScenarioID: scenarioID}
	if err := db.ModelContext(ctx, s).WherePK().Select(); err != nil {
		if err == pg.ErrNoRows {
			return nil, xerrors.Errorf("scenario %d not found", scenarioID)
		}
		return nil, xerrors.Errorf("load scenario %d: %w", scenarioID, err)
	}
	return s, nil
}

// writeScenarioParams writes a documentation file describing the scenario the
// inputs were exported for.
func (e *Exporter) writeScenarioParams(s *scenario.Scenario) error {
	f, err := os.Create(e.path("scenario_params.txt"))
	if err != nil {
		return err
	}

	fmt.Fprintf(f, "scenario_id: %d\n", s.ScenarioID)
	fmt.Fprintf(f, "name: %s\n", s.Name)
	if s.Description != nil {
		fmt.Fprintf(f, "description: %s\n", *s.Description)
	}
	fmt.Fprintf(f, "study_timeframe_id: %d\n", s.StudyTimeframeID)
	fmt.Fprintf(f, "time_sample_id: %d\n", s.TimeSampleID)
	fmt.Fprintf(f, "demand_scenario_id: %d\n", s.DemandScenarioID)
	fmt.Fprintf(f, "fuel_simple_price_scenario_id: %d\n", s.FuelSimplePriceScenarioID)
	fmt.Fprintf(f, "generation_plant_scenario_id: %d\n", s.GenerationPlantScenarioID)
	fmt.Fprintf(f, "generation_plant_cost_scenario_id: %d\n", s.GenerationPlantCostScenarioID)
	fmt.Fprintf(f, "generation_plant_existing_and_planned_scenario_id: %d\n", s.GenerationPlantExistingAndPlannedScenarioID)
	fmt.Fprintf(f, "generation_plant_technologies_scenario_id: %d\n", s.GenerationPlantTechnologiesScenarioID)
	fmt.Fprintf(f, "variable_o_m_cost_scenario_id: %d\n", s.VariableOMCostScenarioID)
	fmt.Fprintf(f, "hydro_simple_scenario_id: %d\n", s.HydroSimpleScenarioID)
	fmt.Fprintf(f, "carbon_cap_scenario_id: %d\n", s.CarbonCapScenarioID)
	fmt.Fprintf(f, "regional_fuel_market_scenario_id: %d\n", s.RegionalFuelMarketScenarioID)
	fmt.Fprintf(f, "transmission_base_capital_cost_scenario_id: %d\n", s.TransmissionBaseCapitalCostScenarioID)
	if s.SupplyCurvesScenarioID != nil {
		fmt.Fprintf(f, "supply_curves_scenario_id: %d\n", *s.SupplyCurvesScenarioID)
	}
	if s.RpsScenarioID != nil {
		fmt.Fprintf(f, "rps_scenario_id: %d\n", *s.RpsScenarioID)
	}
	if s.CaPoliciesScenarioID != nil {
		fmt.Fprintf(f, "ca_policies_scenario_id: %d\n", *s.CaPoliciesScenarioID)
	}
	if s.EnableDr != nil {
		fmt.Fprintf(f, "enable_dr: %d\n", *s.EnableDr)
	}
	if s.EnableEv != nil {
		fmt.Fprintf(f, "enable_ev: %d\n", *s.EnableEv)
	}
	fmt.Fprintf(f, "enable_planning_reserves: %t\n", s.EnablePlanningReserves)
	if s.WindToSolarRatio != nil {
		fmt.Fprintf(f, "wind_to_solar_ratio: %g\n", *s.WindToSolarRatio)
	}

	return f.Close()
}
