package exporter

import (
	"context"
	"strconv"
	"time"

	"github.com/ream-lab/switchdb/model/scenario"
)

type periodRow struct {
	Label       int64
	PeriodStart int64
	PeriodEnd   int64
}

func (r *periodRow) CSVRow() []string {
	return []string{
		strconv.FormatInt(r.Label, 10),
		strconv.FormatInt(r.PeriodStart, 10),
		strconv.FormatInt(r.PeriodEnd, 10),
	}
}

func (e *Exporter) writePeriods(ctx context.Context, s *scenario.Scenario) error {
	var rows []*periodRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT
			label,
			start_year AS period_start,
			end_year AS period_end
		FROM period
		WHERE study_timeframe_id = ?
		ORDER BY 1;
	`, s.StudyTimeframeID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "periods",
		[]string{"INVESTMENT_PERIOD", "period_start", "period_end"}, asRows(rows))
}

type timeseriesRow struct {
	Timeseries      string
	TsPeriod        int64
	TsDurationOfTp  *float64
	TsNumTps        *int64
	TsScaleToPeriod *float64
}

func (r *timeseriesRow) CSVRow() []string {
	return []string{
		r.Timeseries,
		strconv.FormatInt(r.TsPeriod, 10),
		fmtFloat(r.TsDurationOfTp),
		fmtInt(r.TsNumTps),
		fmtFloat(r.TsScaleToPeriod),
	}
}

func (e *Exporter) writeTimeseries(ctx context.Context, s *scenario.Scenario) error {
	var rows []*timeseriesRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT
			date_part('year', first_timepoint_utc) || '_' || replace(sampled_timeseries.name, ' ', '_') AS timeseries,
			p.label AS ts_period,
			hours_per_tp AS ts_duration_of_tp,
			num_timepoints AS ts_num_tps,
			scaling_to_period AS ts_scale_to_period
		FROM sampled_timeseries
		JOIN period AS p USING (period_id, study_timeframe_id)
		WHERE sampled_timeseries.time_sample_id = ?
			AND sampled_timeseries.study_timeframe_id = ?
		ORDER BY label DESC, timeseries ASC;
	`, s.TimeSampleID, s.StudyTimeframeID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "timeseries",
		[]string{"TIMESERIES", "ts_period", "ts_duration_of_tp", "ts_num_tps", "ts_scale_to_period"}, asRows(rows))
}

type timepointRow struct {
	TimepointID  int64
	TimestampUtc *time.Time
	Timeseries   string
}

func (r *timepointRow) CSVRow() []string {
	return []string{strconv.FormatInt(r.TimepointID, 10), fmtTimestamp(r.TimestampUtc), r.Timeseries}
}

func (e *Exporter) writeTimepoints(ctx context.Context, s *scenario.Scenario) error {
	var rows []*timepointRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT
			t.raw_timepoint_id AS timepoint_id,
			timestamp_utc,
			date_part('year', first_timepoint_utc) || '_' || replace(sampled_timeseries.name, ' ', '_') AS timeseries
		FROM sampled_timepoint AS t
		JOIN sampled_timeseries USING (sampled_timeseries_id, study_timeframe_id)
		WHERE t.time_sample_id = ?
			AND t.study_timeframe_id = ?
		ORDER BY 1;
	`, s.TimeSampleID, s.StudyTimeframeID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "timepoints",
		[]string{"timepoint_id", "timestamp", "timeseries"}, asRows(rows))
}

type loadZoneRow struct {
	Name              string
	ZoneCcsDistanceKm *float64
	ZoneDbid          int64
}

func (r *loadZoneRow) CSVRow() []string {
	return []string{r.Name, fmtFloat(r.ZoneCcsDistanceKm), strconv.FormatInt(r.ZoneDbid, 10)}
}

func (e *Exporter) writeLoadZones(ctx context.Context, s *scenario.Scenario) error {
	var rows []*loadZoneRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT
			name,
			ccs_distance_km AS zone_ccs_distance_km,
			load_zone_id AS zone_dbid
		FROM load_zone
		WHERE name != '_ALL_ZONES'
		ORDER BY 1;
	`)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "load_zones",
		[]string{"LOAD_ZONE", "zone_ccs_distance_km", "zone_dbid"}, asRows(rows))
}

type loadRow struct {
	LoadZoneName string
	Timepoint    int64
	ZoneDemandMw *float64
}

func (r *loadRow) CSVRow() []string {
	return []string{r.LoadZoneName, strconv.FormatInt(r.Timepoint, 10), fmtFloat(r.ZoneDemandMw)}
}

func (e *Exporter) writeLoads(ctx context.Context, s *scenario.Scenario) error {
	// negative demand readings are clamped to zero
	var rows []*loadRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT
			load_zone_name,
			t.raw_timepoint_id AS timepoint,
			CASE WHEN demand_mw < 0 THEN 0 ELSE demand_mw END AS zone_demand_mw
		FROM sampled_timepoint AS t
		JOIN demand_timeseries AS d USING (raw_timepoint_id)
		WHERE t.time_sample_id = ?
			AND demand_scenario_id = ?
		ORDER BY 1, 2;
	`, s.TimeSampleID, s.DemandScenarioID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "loads",
		[]string{"LOAD_ZONE", "TIMEPOINT", "zone_demand_mw"}, asRows(rows))
}

type balancingAreaRow struct {
	BalancingArea          string
	QuickstartResLoadFrac  *float64
	QuickstartResWindFrac  *float64
	QuickstartResSolarFrac *float64
	SpinningResLoadFrac    *float64
	SpinningResWindFrac    *float64
	SpinningResSolarFrac   *float64
}

func (r *balancingAreaRow) CSVRow() []string {
	return []string{
		r.BalancingArea,
		fmtFloat(r.QuickstartResLoadFrac),
		fmtFloat(r.QuickstartResWindFrac),
		fmtFloat(r.QuickstartResSolarFrac),
		fmtFloat(r.SpinningResLoadFrac),
		fmtFloat(r.SpinningResWindFrac),
		fmtFloat(r.SpinningResSolarFrac),
	}
}

func (e *Exporter) writeBalancingAreas(ctx context.Context, s *scenario.Scenario) error {
	var rows []*balancingAreaRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT
			balancing_area,
			quickstart_res_load_frac,
			quickstart_res_wind_frac,
			quickstart_res_solar_frac,
			spinning_res_load_frac,
			spinning_res_wind_frac,
			spinning_res_solar_frac
		FROM balancing_areas;
	`)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "balancing_areas",
		[]string{"BALANCING_AREAS", "quickstart_res_load_frac", "quickstart_res_wind_frac", "quickstart_res_solar_frac", "spinning_res_load_frac", "spinning_res_wind_frac", "spinning_res_solar_frac"}, asRows(rows))
}

type zoneBalancingAreaRow struct {
	Name          string
	BalancingArea *string
}

func (r *zoneBalancingAreaRow) CSVRow() []string {
	return []string{r.Name, fmtString(r.BalancingArea)}
}

func (e *Exporter) writeZoneBalancingAreas(ctx context.Context, s *scenario.Scenario) error {
	var rows []*zoneBalancingAreaRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT
			name,
			reserves_area AS balancing_area
		FROM load_zone;
	`)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "zone_balancing_areas",
		[]string{"LOAD_ZONE", "balancing_area"}, asRows(rows))
}

type transmissionLineRow struct {
	TransmissionLine  string
	TransLz1          string
	TransLz2          string
	TransLengthKm     *float64
	TransEfficiency   *float64
	ExistingTransCap  *float64
	TransDbid         int64
	DeratingFactor    *float64
	TerrainMultiplier *float64
	NewBuildAllowed   *int64
}

func (r *transmissionLineRow) CSVRow() []string {
	return []string{
		r.TransmissionLine,
		r.TransLz1,
		r.TransLz2,
		fmtFloat(r.TransLengthKm),
		fmtFloat(r.TransEfficiency),
		fmtFloat(r.ExistingTransCap),
		strconv.FormatInt(r.TransDbid, 10),
		fmtFloat(r.DeratingFactor),
		fmtFloat(r.TerrainMultiplier),
		fmtInt(r.NewBuildAllowed),
	}
}

// The exported terrain multiplier folds in the economic cost multiplier so
// the model sees a single capital cost scaling factor per corridor.
const transmissionLinesQuery = `
		SELECT
			start_load_zone_id || '-' || end_load_zone_id AS transmission_line,
			t1.name AS trans_lz1,
			t2.name AS trans_lz2,
			trans_length_km,
			trans_efficiency,
			existing_trans_cap_mw AS existing_trans_cap,
			transmission_line_id AS trans_dbid,
			derating_factor,
			terrain_multiplier * transmission_cost_econ_multiplier AS terrain_multiplier,
			new_build_allowed
		FROM transmission_lines
		JOIN load_zone AS t1 ON (t1.load_zone_id = start_load_zone_id)
		JOIN load_zone AS t2 ON (t2.load_zone_id = end_load_zone_id)
		WHERE start_load_zone_id < end_load_zone_id
		ORDER BY 2, 3;
`

func (e *Exporter) writeTransmissionLines(ctx context.Context, s *scenario.Scenario) error {
	// only one direction of each corridor is exported
	var rows []*transmissionLineRow
	_, err := e.db.QueryContext(ctx, &rows, transmissionLinesQuery)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "transmission_lines",
		[]string{"TRANSMISSION_LINE", "trans_lz1", "trans_lz2", "trans_length_km", "trans_efficiency", "existing_trans_cap", "trans_dbid", "trans_derating_factor", "trans_terrain_multiplier", "trans_new_build_allowed"}, asRows(rows))
}

type transParamsRow struct {
	TransCapitalCostPerMwKm *float64
	TransLifetimeYrs        int64
	TransFixedOmFraction    float64
}

func (r *transParamsRow) CSVRow() []string {
	return []string{
		fmtFloat(r.TransCapitalCostPerMwKm),
		strconv.FormatInt(r.TransLifetimeYrs, 10),
		strconv.FormatFloat(r.TransFixedOmFraction, 'g', -1, 64),
	}
}

func (e *Exporter) writeTransParams(ctx context.Context, s *scenario.Scenario) error {
	// lifetime and fixed O&M fraction are planning assumptions, not data
	var rows []*transParamsRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT
			trans_capital_cost_per_mw_km,
			85 AS trans_lifetime_yrs,
			0.03 AS trans_fixed_om_fraction
		FROM transmission_base_capital_cost
		WHERE transmission_base_capital_cost_scenario_id = ?
		ORDER BY 1;
	`, s.TransmissionBaseCapitalCostScenarioID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "trans_params",
		[]string{"trans_capital_cost_per_mw_km", "trans_lifetime_yrs", "trans_fixed_om_fraction"}, asRows(rows))
}

type fuelRow struct {
	Fuel                 string
	Co2Intensity         *float64
	UpstreamCo2Intensity *float64
}

func (r *fuelRow) CSVRow() []string {
	return []string{r.Fuel, fmtFloat(r.Co2Intensity), fmtFloat(r.UpstreamCo2Intensity)}
}

func (e *Exporter) writeFuels(ctx context.Context, s *scenario.Scenario) error {
	var rows []*fuelRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT name AS fuel, co2_intensity, upstream_co2_intensity
		FROM energy_source
		WHERE is_fuel IS TRUE;
	`)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "fuels",
		[]string{"fuel", "co2_intensity", "upstream_co2_intensity"}, asRows(rows))
}

type energySourceRow struct {
	EnergySource string
}

func (r *energySourceRow) CSVRow() []string {
	return []string{r.EnergySource}
}

func (e *Exporter) writeNonFuelEnergySources(ctx context.Context, s *scenario.Scenario) error {
	var rows []*energySourceRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT name AS energy_source
		FROM energy_source
		WHERE is_fuel IS FALSE;
	`)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "non_fuel_energy_sources",
		[]string{"energy_source"}, asRows(rows))
}

type fuelCostRow struct {
	LoadZone string
	Fuel     string
	Period   int64
	FuelCost *float64
}

func (r *fuelCostRow) CSVRow() []string {
	return []string{r.LoadZone, r.Fuel, strconv.FormatInt(r.Period, 10), fmtFloat(r.FuelCost)}
}

func (e *Exporter) writeFuelCost(ctx context.Context, s *scenario.Scenario) error {
	// Fuel projections are yearly averages. The model only accepts fuel prices
	// per period, so they are averaged over each period here.
	var rows []*fuelCostRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT load_zone_name AS load_zone, fuel, period, AVG(fuel_price) AS fuel_cost
		FROM (
			SELECT load_zone_name, fuel, fuel_price, projection_year,
				(CASE WHEN projection_year >= period.start_year
					AND projection_year <= period.start_year + length_yrs - 1 THEN label ELSE 0 END
				) AS period
			FROM fuel_simple_price_yearly
			JOIN period ON (projection_year >= start_year)
			WHERE study_timeframe_id = ? AND fuel_simple_scenario_id = ?
		) AS w
		WHERE period != 0
		GROUP BY load_zone_name, fuel, period
		ORDER BY 1, 2, 3;
	`, s.StudyTimeframeID, s.FuelSimplePriceScenarioID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "fuel_cost",
		[]string{"load_zone", "fuel", "period", "fuel_cost"}, asRows(rows))
}

type generationProjectRow struct {
	GenerationPlantID            int64
	GenTech                      string
	GenEnergySource              string
	GenLoadZone                  string
	GenMaxAge                    *int64
	GenIsVariable                *bool
	GenIsBaseload                *bool
	GenFullLoadHeatRate          *float64
	GenVariableOm                *float64
	GenConnectCostPerMw          *float64
	GenDbid                      int64
	GenScheduledOutageRate       *float64
	GenForcedOutageRate          *float64
	GenCapacityLimitMw           *float64
	GenMinBuildCapacity          *float64
	GenIsCogen                   *bool
	GenStorageEfficiency         *float64
	GenStoreToReleaseRatio       *float64
	GenCanProvideCapReserves     int64
	GenSelfDischargeRate         *float64
	GenDischargeEfficiency       *float64
	GenLandUseRate               *float64
	GenStorageEnergyToPowerRatio *float32
}

func (r *generationProjectRow) CSVRow() []string {
	return []string{
		strconv.FormatInt(r.GenerationPlantID, 10),
		r.GenTech,
		r.GenEnergySource,
		r.GenLoadZone,
		fmtInt(r.GenMaxAge),
		fmtBool(r.GenIsVariable),
		fmtBool(r.GenIsBaseload),
		fmtFloat(r.GenFullLoadHeatRate),
		fmtFloat(r.GenVariableOm),
		fmtFloat(r.GenConnectCostPerMw),
		strconv.FormatInt(r.GenDbid, 10),
		fmtFloat(r.GenScheduledOutageRate),
		fmtFloat(r.GenForcedOutageRate),
		fmtFloat(r.GenCapacityLimitMw),
		fmtFloat(r.GenMinBuildCapacity),
		fmtBool(r.GenIsCogen),
		fmtFloat(r.GenStorageEfficiency),
		fmtFloat(r.GenStoreToReleaseRatio),
		strconv.FormatInt(r.GenCanProvideCapReserves, 10),
		fmtFloat(r.GenSelfDischargeRate),
		fmtFloat(r.GenDischargeEfficiency),
		fmtFloat(r.GenLandUseRate),
		fmtFloat32(r.GenStorageEnergyToPowerRatio),
	}
}

func (e *Exporter) writeGenerationProjectsInfo(ctx context.Context, s *scenario.Scenario) error {
	var rows []*generationProjectRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT
			t.generation_plant_id,
			t.gen_tech,
			t.energy_source AS gen_energy_source,
			t2.name AS gen_load_zone,
			t.max_age AS gen_max_age,
			t.is_variable AS gen_is_variable,
			gt.is_baseload AS gen_is_baseload,
			t.full_load_heat_rate AS gen_full_load_heat_rate,
			vom.variable_o_m AS gen_variable_om,
			t.connect_cost_per_mw AS gen_connect_cost_per_mw,
			t.generation_plant_id AS gen_dbid,
			gt.scheduled_outage_rate AS gen_scheduled_outage_rate,
			gt.forced_outage_rate AS gen_forced_outage_rate,
			t.final_capacity_limit_mw AS gen_capacity_limit_mw,
			t.min_build_capacity AS gen_min_build_capacity,
			t.is_cogen AS gen_is_cogen,
			storage_efficiency AS gen_storage_efficiency,
			store_to_release_ratio AS gen_store_to_release_ratio,
			1 AS gen_can_provide_cap_reserves,
			daily_self_discharge_rate AS gen_self_discharge_rate,
			discharge_efficiency AS gen_discharge_efficiency,
			land_use_rate AS gen_land_use_rate,
			gen_storage_energy_to_power_ratio
		FROM generation_plant AS t
		JOIN load_zone AS t2 USING (load_zone_id)
		JOIN temp_generation_plant_ids USING (generation_plant_id)
		JOIN variable_o_m_costs AS vom
			ON vom.gen_tech = t.gen_tech AND vom.energy_source = t.energy_source
		JOIN generation_plant_technologies AS gt
			ON gt.gen_tech = t.gen_tech AND gt.energy_source = t.energy_source
		WHERE variable_o_m_cost_scenario_id = ?
			AND generation_plant_technologies_scenario_id = ?
		ORDER BY gen_dbid;
	`, s.VariableOMCostScenarioID, s.GenerationPlantTechnologiesScenarioID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "generation_projects_info",
		[]string{
			"GENERATION_PROJECT", "gen_tech", "gen_energy_source", "gen_load_zone",
			"gen_max_age", "gen_is_variable", "gen_is_baseload", "gen_full_load_heat_rate",
			"gen_variable_om", "gen_connect_cost_per_mw", "gen_dbid",
			"gen_scheduled_outage_rate", "gen_forced_outage_rate", "gen_capacity_limit_mw",
			"gen_min_build_capacity", "gen_is_cogen", "gen_storage_efficiency",
			"gen_store_to_release_ratio", "gen_can_provide_cap_reserves",
			"gen_self_discharge_rate", "gen_discharge_efficiency", "gen_land_use_rate",
			"gen_storage_energy_to_power_ratio",
		}, asRows(rows))
}

type genBuildPredeterminedRow struct {
	GenerationPlantID                int64
	BuildYear                        int64
	GenPredeterminedCap              *float64
	GenPredeterminedStorageEnergyMwh *float64
}

func (r *genBuildPredeterminedRow) CSVRow() []string {
	return []string{
		strconv.FormatInt(r.GenerationPlantID, 10),
		strconv.FormatInt(r.BuildYear, 10),
		fmtFloat(r.GenPredeterminedCap),
		fmtFloat(r.GenPredeterminedStorageEnergyMwh),
	}
}

func (e *Exporter) writeGenBuildPredetermined(ctx context.Context, s *scenario.Scenario) error {
	var rows []*genBuildPredeterminedRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT generation_plant_id, build_year, capacity AS gen_predetermined_cap, gen_predetermined_storage_energy_mwh
		FROM generation_plant_existing_and_planned
		JOIN generation_plant AS t USING (generation_plant_id)
		JOIN temp_generation_plant_ids USING (generation_plant_id)
		WHERE generation_plant_existing_and_planned_scenario_id = ?;
	`, s.GenerationPlantExistingAndPlannedScenarioID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "gen_build_predetermined",
		[]string{"GENERATION_PROJECT", "build_year", "gen_predetermined_cap", "gen_predetermined_storage_energy_mwh"}, asRows(rows))
}

type genBuildCostRow struct {
	GenerationPlantID             int64
	BuildYear                     int64
	GenOvernightCost              *float64
	GenFixedOm                    *float64
	GenStorageEnergyOvernightCost *float64
}

func (r *genBuildCostRow) CSVRow() []string {
	return []string{
		strconv.FormatInt(r.GenerationPlantID, 10),
		strconv.FormatInt(r.BuildYear, 10),
		fmtFloat(r.GenOvernightCost),
		fmtFloat(r.GenFixedOm),
		fmtFloat(r.GenStorageEnergyOvernightCost),
	}
}

func (e *Exporter) writeGenBuildCosts(ctx context.Context, s *scenario.Scenario) error {
	// Existing builds use their recorded build year; candidate builds are
	// averaged over each investment period.
	var rows []*genBuildCostRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT generation_plant_id, generation_plant_cost.build_year,
			overnight_cost AS gen_overnight_cost, fixed_o_m AS gen_fixed_om,
			storage_energy_capacity_cost_per_mwh AS gen_storage_energy_overnight_cost
		FROM generation_plant_cost
		JOIN generation_plant_existing_and_planned USING (generation_plant_id)
		JOIN temp_generation_plant_ids USING (generation_plant_id)
		WHERE generation_plant_cost.generation_plant_cost_scenario_id = ?
			AND generation_plant_existing_and_planned_scenario_id = ?
		UNION
		SELECT generation_plant_id, period.label,
			AVG(overnight_cost) AS gen_overnight_cost, AVG(fixed_o_m) AS gen_fixed_om,
			AVG(storage_energy_capacity_cost_per_mwh) AS gen_storage_energy_overnight_cost
		FROM generation_plant_cost
		JOIN generation_plant USING (generation_plant_id)
		JOIN period ON (build_year >= start_year AND build_year <= end_year)
		JOIN temp_generation_plant_ids USING (generation_plant_id)
		WHERE period.study_timeframe_id = ?
			AND generation_plant_cost.generation_plant_cost_scenario_id = ?
		GROUP BY 1, 2
		ORDER BY 1, 2;
	`, s.GenerationPlantCostScenarioID, s.GenerationPlantExistingAndPlannedScenarioID,
		s.StudyTimeframeID, s.GenerationPlantCostScenarioID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "gen_build_costs",
		[]string{"GENERATION_PROJECT", "build_year", "gen_overnight_cost", "gen_fixed_om", "gen_storage_energy_overnight_cost"}, asRows(rows))
}

type financialsRow struct {
	BaseFinancialYear int64
	InterestRate      float64
	DiscountRate      float64
}

func (r *financialsRow) CSVRow() []string {
	return []string{
		strconv.FormatInt(r.BaseFinancialYear, 10),
		strconv.FormatFloat(r.InterestRate, 'g', -1, 64),
		strconv.FormatFloat(r.DiscountRate, 'g', -1, 64),
	}
}

func (e *Exporter) writeFinancials(ctx context.Context, s *scenario.Scenario) error {
	rows := []Row{&financialsRow{BaseFinancialYear: 2018, InterestRate: 0.05, DiscountRate: 0.05}}
	return e.writeFile(ctx, "financials",
		[]string{"base_financial_year", "interest_rate", "discount_rate"}, rows)
}

type capacityFactorRow struct {
	GenerationPlantID    int64
	RawTimepointID       int64
	GenMaxCapacityFactor *float64
}

func (r *capacityFactorRow) CSVRow() []string {
	return []string{
		strconv.FormatInt(r.GenerationPlantID, 10),
		strconv.FormatInt(r.RawTimepointID, 10),
		fmtFloat(r.GenMaxCapacityFactor),
	}
}

func (e *Exporter) writeVariableCapacityFactors(ctx context.Context, s *scenario.Scenario) error {
	if e.skipCF {
		log.Info("skipping variable_capacity_factors.csv")
		return nil
	}

	// capacity factors below 1e-5 in magnitude are rounded down to zero to
	// avoid numerical issues in the model
	var rows []*capacityFactorRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT
			generation_plant_id,
			t.raw_timepoint_id,
			CASE WHEN abs(capacity_factor) < 0.00001 THEN 0 ELSE capacity_factor END AS gen_max_capacity_factor
		FROM variable_capacity_factors_exist_and_candidate_gen v
		JOIN temp_generation_plant_ids USING (generation_plant_id)
		JOIN sampled_timepoint AS t ON (t.raw_timepoint_id = v.raw_timepoint_id)
		WHERE t.time_sample_id = ?;
	`, s.TimeSampleID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "variable_capacity_factors",
		[]string{"GENERATION_PROJECT", "timepoint", "gen_max_capacity_factor"}, asRows(rows))
}

type hydroTimepointRow struct {
	TimepointID int64
	TpToHts     string
}

func (r *hydroTimepointRow) CSVRow() []string {
	return []string{strconv.FormatInt(r.TimepointID, 10), r.TpToHts}
}

func (e *Exporter) writeHydroTimepoints(ctx context.Context, s *scenario.Scenario) error {
	var rows []*hydroTimepointRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT
			tp.raw_timepoint_id AS timepoint_id,
			p.label || '_M' || date_part('month', timestamp_utc) AS tp_to_hts
		FROM sampled_timepoint AS tp
		JOIN period AS p USING (period_id, study_timeframe_id)
		WHERE time_sample_id = ?
			AND study_timeframe_id = ?
		ORDER BY 1;
	`, s.TimeSampleID, s.StudyTimeframeID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "hydro_timepoints",
		[]string{"timepoint_id", "tp_to_hts"}, asRows(rows))
}

type hydroTimeseriesRow struct {
	HydroProject    int64
	HydroTimeseries string
	HydroMinFlowMw  *float64
	HydroAvgFlowMw  *float64
}

func (r *hydroTimeseriesRow) CSVRow() []string {
	return []string{
		strconv.FormatInt(r.HydroProject, 10),
		r.HydroTimeseries,
		fmtFloat(r.HydroMinFlowMw),
		fmtFloat(r.HydroAvgFlowMw),
	}
}

// Monthly flows are capped at capacity derated by the forced outage rate, to
// work around units whose historical capacity factors exceed what the model
// lets a derated unit produce.
const hydroTimeseriesQuery = `
		SELECT
			generation_plant_id AS hydro_project,
			hts.hydro_timeseries,
			CASE
				WHEN hydro_min_flow_mw <= 0 THEN 0
				ELSE least(hydro_min_flow_mw, capacity_limit_mw * (1 - forced_outage_rate)) END AS hydro_min_flow_mw,
			CASE
				WHEN hydro_avg_flow_mw <= 0 THEN 0
				ELSE least(hydro_avg_flow_mw, capacity_limit_mw * (1 - forced_outage_rate)) END AS hydro_avg_flow_mw
		FROM (
			SELECT DISTINCT
				date_part('month', tp.timestamp_utc) AS month,
				date_part('year', tp.timestamp_utc) AS year,
				p.label || '_M' || date_part('month', timestamp_utc) AS hydro_timeseries
			FROM sampled_timepoint AS tp
			JOIN period AS p USING (period_id, study_timeframe_id)
			WHERE time_sample_id = ?
				AND study_timeframe_id = ?
		) AS hts
		JOIN hydro_historical_monthly_capacity_factors USING (month, year)
		JOIN generation_plant USING (generation_plant_id)
		JOIN temp_generation_plant_ids USING (generation_plant_id)
		WHERE hydro_simple_scenario_id = ?
		ORDER BY 1;
`

func (e *Exporter) writeHydroTimeseries(ctx context.Context, s *scenario.Scenario) error {
	// negative flows are replaced by zero
	var rows []*hydroTimeseriesRow
	_, err := e.db.QueryContext(ctx, &rows, hydroTimeseriesQuery,
		s.TimeSampleID, s.StudyTimeframeID, s.HydroSimpleScenarioID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "hydro_timeseries",
		[]string{"hydro_project", "timeseries", "hydro_min_flow_mw", "hydro_avg_flow_mw"}, asRows(rows))
}

type carbonPolicyRow struct {
	Period               int64
	CarbonCapTco2PerYr   *float64
	CarbonCapTco2PerYrCa *float64
}

func (r *carbonPolicyRow) CSVRow() []string {
	return []string{
		strconv.FormatInt(r.Period, 10),
		fmtFloat(r.CarbonCapTco2PerYr),
		fmtFloat(r.CarbonCapTco2PerYrCa),
		nullMarker, // carbon_cost_dollar_per_tco2 has no source table yet
	}
}

func (e *Exporter) writeCarbonPolicies(ctx context.Context, s *scenario.Scenario) error {
	var rows []*carbonPolicyRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT period, AVG(carbon_cap_tco2_per_yr) AS carbon_cap_tco2_per_yr,
			AVG(carbon_cap_tco2_per_yr_ca) AS carbon_cap_tco2_per_yr_ca
		FROM (
			SELECT carbon_cap_tco2_per_yr, carbon_cap_tco2_per_yr_ca, year,
				(CASE WHEN year >= period.start_year
					AND year <= period.start_year + length_yrs - 1 THEN label ELSE 0 END) AS period
			FROM carbon_cap
			JOIN period ON (year >= start_year)
			WHERE study_timeframe_id = ? AND carbon_cap_scenario_id = ?
		) AS w
		WHERE period != 0
		GROUP BY period
		ORDER BY 1;
	`, s.StudyTimeframeID, s.CarbonCapScenarioID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "carbon_policies",
		[]string{"PERIOD", "carbon_cap_tco2_per_yr", "carbon_cap_tco2_per_yr_CA", "carbon_cost_dollar_per_tco2"}, asRows(rows))
}

type rpsTargetRow struct {
	LoadZone  string
	Period    int64
	RpsTarget *float64
}

func (r *rpsTargetRow) CSVRow() []string {
	return []string{r.LoadZone, strconv.FormatInt(r.Period, 10), fmtFloat(r.RpsTarget)}
}

func (e *Exporter) writeRpsTargets(ctx context.Context, s *scenario.Scenario) error {
	if s.RpsScenarioID == nil {
		return nil
	}

	var rows []*rpsTargetRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT load_zone, w.period AS period, AVG(rps_target) AS rps_target
		FROM (
			SELECT load_zone, rps_target,
				(CASE WHEN year >= period.start_year
					AND year <= period.start_year + length_yrs - 1 THEN label ELSE 0 END) AS period
			FROM rps_target
			JOIN period ON (year >= start_year)
			WHERE study_timeframe_id = ? AND rps_scenario_id = ?
		) AS w
		WHERE period != 0
		GROUP BY load_zone, period
		ORDER BY 1, 2;
	`, s.StudyTimeframeID, *s.RpsScenarioID)
	if err != nil {
		return err
	}

	e.modules = append(e.modules, "switch_model.policies.rps_unbundled")
	return e.writeFile(ctx, "rps_targets",
		[]string{"load_zone", "period", "rps_target"}, asRows(rows))
}

type fuelSupplyCurveRow struct {
	RegionalFuelMarket string
	Period             int64
	Tier               int64
	UnitCost           *float64
	MaxAvailAtCost     *float64
}

func (r *fuelSupplyCurveRow) CSVRow() []string {
	// a null availability cap means the tier is unlimited
	maxAvail := "inf"
	if r.MaxAvailAtCost != nil {
		maxAvail = fmtFloat(r.MaxAvailAtCost)
	}
	return []string{
		r.RegionalFuelMarket,
		strconv.FormatInt(r.Period, 10),
		strconv.FormatInt(r.Tier, 10),
		fmtFloat(r.UnitCost),
		maxAvail,
	}
}

func (e *Exporter) writeFuelSupplyCurves(ctx context.Context, s *scenario.Scenario) error {
	if s.SupplyCurvesScenarioID == nil {
		return nil
	}

	// Tiers priced above 1e9 with no availability cap exist only to mark
	// "never buy at this price"; they are filtered out to keep the model's
	// numerical properties sane.
	var rows []*fuelSupplyCurveRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT regional_fuel_market, label AS period, tier, unit_cost, max_avail_at_cost
		FROM fuel_supply_curves
		JOIN period ON (year >= start_year)
		WHERE year = FLOOR(period.start_year + length_yrs / 2 - 1)
			AND NOT (unit_cost > 1e9 AND max_avail_at_cost IS NULL)
			AND study_timeframe_id = ?
			AND supply_curves_scenario_id = ?;
	`, s.StudyTimeframeID, *s.SupplyCurvesScenarioID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "fuel_supply_curves",
		[]string{"regional_fuel_market", "period", "tier", "unit_cost", "max_avail_at_cost"}, asRows(rows))
}

type drDataRow struct {
	LoadZone         string
	Timepoint        int64
	DrShiftDownLimit *float64
	DrShiftUpLimit   *float64
}

func (r *drDataRow) CSVRow() []string {
	return []string{
		r.LoadZone,
		strconv.FormatInt(r.Timepoint, 10),
		fmtFloat(r.DrShiftDownLimit),
		fmtFloat(r.DrShiftUpLimit),
	}
}

func (e *Exporter) writeDrData(ctx context.Context, s *scenario.Scenario) error {
	if s.EnableDr == nil {
		return nil
	}

	// The shiftable fraction of demand is an assumption keyed on decade and on
	// whether the zone is in California (zones 10 through 21). Only downward
	// shifts are limited.
	var rows []*drDataRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT load_zone_name AS load_zone, sampled_timepoint.raw_timepoint_id AS timepoint,
			CASE
				WHEN load_zone_id BETWEEN 10 AND 21 AND extract(year FROM sampled_timepoint.timestamp_utc) = 2020 THEN 0.003 * demand_mw
				WHEN load_zone_id BETWEEN 10 AND 21 AND extract(year FROM sampled_timepoint.timestamp_utc) = 2030 THEN 0.02 * demand_mw
				WHEN load_zone_id BETWEEN 10 AND 21 AND extract(year FROM sampled_timepoint.timestamp_utc) = 2040 THEN 0.07 * demand_mw
				WHEN load_zone_id BETWEEN 10 AND 21 AND extract(year FROM sampled_timepoint.timestamp_utc) = 2050 THEN 0.1 * demand_mw
				WHEN (load_zone_id < 10 OR load_zone_id > 21) AND extract(year FROM sampled_timepoint.timestamp_utc) = 2020 THEN 0 * demand_mw
				WHEN (load_zone_id < 10 OR load_zone_id > 21) AND extract(year FROM sampled_timepoint.timestamp_utc) = 2030 THEN 0.03 * demand_mw
				WHEN (load_zone_id < 10 OR load_zone_id > 21) AND extract(year FROM sampled_timepoint.timestamp_utc) = 2040 THEN 0.02 * demand_mw
				WHEN (load_zone_id < 10 OR load_zone_id > 21) AND extract(year FROM sampled_timepoint.timestamp_utc) = 2050 THEN 0.07 * demand_mw
			END AS dr_shift_down_limit,
			NULL::double precision AS dr_shift_up_limit
		FROM sampled_timepoint
		LEFT JOIN demand_timeseries ON sampled_timepoint.raw_timepoint_id = demand_timeseries.raw_timepoint_id
		WHERE demand_scenario_id = ?
			AND study_timeframe_id = ?
		ORDER BY demand_scenario_id, load_zone_id, sampled_timepoint.raw_timepoint_id;
	`, s.DemandScenarioID, s.StudyTimeframeID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "dr_data",
		[]string{"LOAD_ZONE", "timepoint", "dr_shift_down_limit", "dr_shift_up_limit"}, asRows(rows))
}

type evLimitRow struct {
	LoadZone                   string
	Timepoint                  int64
	EvCumulativeChargeLowerMwh *float64
	EvCumulativeChargeUpperMwh *float64
	EvChargeLimitMw            *float64
}

func (r *evLimitRow) CSVRow() []string {
	return []string{
		r.LoadZone,
		strconv.FormatInt(r.Timepoint, 10),
		fmtFloat(r.EvCumulativeChargeLowerMwh),
		fmtFloat(r.EvCumulativeChargeUpperMwh),
		fmtFloat(r.EvChargeLimitMw),
	}
}

func (e *Exporter) writeEvLimits(ctx context.Context, s *scenario.Scenario) error {
	if s.EnableEv == nil {
		return nil
	}

	// The lower cumulative charge bound is relaxed to the upper bound on the
	// last timepoint of each timeseries so the fleet ends fully charged.
	var rows []*evLimitRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT load_zone_name AS load_zone, raw_timepoint_id AS timepoint,
			(CASE
				WHEN raw_timepoint_id = max_raw_timepoint_id THEN ev_cumulative_charge_upper_mwh
				ELSE ev_cumulative_charge_lower_mwh
			END) AS ev_cumulative_charge_lower_mwh,
			ev_cumulative_charge_upper_mwh,
			ev_charge_limit AS ev_charge_limit_mw
		FROM (
			SELECT
				load_zone_id,
				ev.raw_timepoint_id,
				sampled_timeseries_id,
				load_zone_name,
				ev_cumulative_charge_lower_mwh,
				ev_cumulative_charge_upper_mwh,
				ev_charge_limit
			FROM ev_profiles_per_timepoint_v3 AS ev
			LEFT JOIN sampled_timepoint ON ev.raw_timepoint_id = sampled_timepoint.raw_timepoint_id
			WHERE study_timeframe_id = ?
		) AS sample_points
		LEFT JOIN (
			SELECT
				sampled_timeseries_id,
				MAX(raw_timepoint_id) AS max_raw_timepoint_id
			FROM sampled_timepoint
			WHERE study_timeframe_id = ?
			GROUP BY sampled_timeseries_id
		) AS max_raw USING (sampled_timeseries_id)
		ORDER BY load_zone_id, raw_timepoint_id;
	`, s.StudyTimeframeID, s.StudyTimeframeID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "ev_limits",
		[]string{"LOAD_ZONE", "timepoint", "ev_cumulative_charge_lower_mwh", "ev_cumulative_charge_upper_mwh", "ev_charge_limit_mw"}, asRows(rows))
}

type regionalFuelMarketRow struct {
	RegionalFuelMarket string
	Fuel               string
}

func (r *regionalFuelMarketRow) CSVRow() []string {
	return []string{r.RegionalFuelMarket, r.Fuel}
}

func (e *Exporter) writeRegionalFuelMarkets(ctx context.Context, s *scenario.Scenario) error {
	var rows []*regionalFuelMarketRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT regional_fuel_market, fuel
		FROM regional_fuel_market
		WHERE regional_fuel_market_scenario_id = ?;
	`, s.RegionalFuelMarketScenarioID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "regional_fuel_markets",
		[]string{"regional_fuel_market", "fuel"}, asRows(rows))
}

type zoneToRegionalFuelMarketRow struct {
	LoadZone           string
	RegionalFuelMarket string
}

func (r *zoneToRegionalFuelMarketRow) CSVRow() []string {
	return []string{r.LoadZone, r.RegionalFuelMarket}
}

func (e *Exporter) writeZoneToRegionalFuelMarket(ctx context.Context, s *scenario.Scenario) error {
	var rows []*zoneToRegionalFuelMarketRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT load_zone, regional_fuel_market
		FROM zone_to_regional_fuel_market
		WHERE regional_fuel_market_scenario_id = ?;
	`, s.RegionalFuelMarketScenarioID)
	if err != nil {
		return err
	}
	return e.writeFile(ctx, "zone_to_regional_fuel_market",
		[]string{"load_zone", "regional_fuel_market"}, asRows(rows))
}
