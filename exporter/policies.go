package exporter

import (
	"context"
	"strconv"

	"github.com/ream-lab/switchdb/model/scenario"
	"golang.org/x/xerrors"
)

type reserveCapacityValueRow struct {
	GenerationPlantID int64
	RawTimepointID    int64
	GenCapacityValue  *float64
}

func (r *reserveCapacityValueRow) CSVRow() []string {
	return []string{
		strconv.FormatInt(r.GenerationPlantID, 10),
		strconv.FormatInt(r.RawTimepointID, 10),
		fmtFloat(r.GenCapacityValue),
	}
}

type planningReserveZoneRow struct {
	PlanningReserveRequirement string
	LoadZone                   string
}

func (r *planningReserveZoneRow) CSVRow() []string {
	return []string{r.PlanningReserveRequirement, r.LoadZone}
}

type planningReserveRequirementRow struct {
	PlanningReserveRequirement string
	PrrCapReserveMargin        *float64
	PrrEnforcementTimescale    *string
}

func (r *planningReserveRequirementRow) CSVRow() []string {
	return []string{
		r.PlanningReserveRequirement,
		fmtFloat(r.PrrCapReserveMargin),
		fmtString(r.PrrEnforcementTimescale),
	}
}

func (e *Exporter) writePlanningReserves(ctx context.Context, s *scenario.Scenario) error {
	if !s.EnablePlanningReserves {
		return nil
	}

	// The reserve capacity value defaults to 1.0 for dispatchable plants and
	// gen_max_capacity_factor for variable ones. That default is wrong for
	// hydro, which is limited by its average flow rather than nameplate
	// capacity, so hydro units get avg_flow / capacity_limit instead.
	var capRows []*reserveCapacityValueRow
	_, err := e.db.QueryContext(ctx, &capRows, `
		SELECT
			generation_plant_id,
			t.raw_timepoint_id,
			CASE WHEN abs(capacity_factor) < 0.00001 THEN 0 ELSE capacity_factor END AS gen_capacity_value
		FROM sampled_timepoint AS t
		LEFT JOIN (
			SELECT generation_plant_id, year, month, hydro_avg_flow_mw / capacity_limit_mw AS capacity_factor
			FROM hydro_historical_monthly_capacity_factors
			LEFT JOIN generation_plant USING (generation_plant_id)
			WHERE hydro_simple_scenario_id = ?
		) AS h ON (
			month = date_part('month', timestamp_utc) AND
			year = date_part('year', timestamp_utc)
		)
		WHERE time_sample_id = ?;
	`, s.HydroSimpleScenarioID, s.TimeSampleID)
	if err != nil {
		return xerrors.Errorf("query reserve capacity values: %w", err)
	}
	if err := e.writeFile(ctx, "reserve_capacity_value",
		[]string{"GENERATION_PROJECT", "timepoint", "gen_capacity_value"}, asRows(capRows)); err != nil {
		return err
	}

	var zoneRows []*planningReserveZoneRow
	_, err = e.db.QueryContext(ctx, &zoneRows, `
		SELECT planning_reserve_requirement, load_zone
		FROM planning_reserve_zones;
	`)
	if err != nil {
		return xerrors.Errorf("query planning reserve zones: %w", err)
	}
	if err := e.writeFile(ctx, "planning_reserve_requirement_zones",
		[]string{"PLANNING_RESERVE_REQUIREMENT", "LOAD_ZONE"}, asRows(zoneRows)); err != nil {
		return err
	}

	var reqRows []*planningReserveRequirementRow
	_, err = e.db.QueryContext(ctx, &reqRows, `
		SELECT planning_reserve_requirement, prr_cap_reserve_margin, prr_enforcement_timescale
		FROM planning_reserve_requirements;
	`)
	if err != nil {
		return xerrors.Errorf("query planning reserve requirements: %w", err)
	}
	if err := e.writeFile(ctx, "planning_reserve_requirements",
		[]string{"PLANNING_RESERVE_REQUIREMENT", "prr_cap_reserve_margin", "prr_enforcement_timescale"}, asRows(reqRows)); err != nil {
		return err
	}

	e.modules = append(e.modules, "switch_model.balancing.planning_reserves")
	return nil
}

type caPolicyRow struct {
	Period                 int64
	CaMinGenTimepointRatio *float64
	CaMinGenPeriodRatio    *float64
	CarbonCapTco2PerYrCa   *float64
}

func (r *caPolicyRow) CSVRow() []string {
	return []string{
		strconv.FormatInt(r.Period, 10),
		fmtFloat(r.CaMinGenTimepointRatio),
		fmtFloat(r.CaMinGenPeriodRatio),
		fmtFloat(r.CarbonCapTco2PerYrCa),
	}
}

func (e *Exporter) writeCaPolicies(ctx context.Context, s *scenario.Scenario) error {
	if s.CaPoliciesScenarioID == nil {
		return nil
	}

	// Both known scenarios require California to generate 80% of its load,
	// for all periods reaching 2030 or later. Scenario 0 enforces the ratio
	// per timepoint, scenario 1 per period.
	var ratioColumn string
	switch *s.CaPoliciesScenarioID {
	case 0:
		ratioColumn = `
			CASE WHEN p.end_year >= 2030 THEN 0.8 END AS ca_min_gen_timepoint_ratio,
			NULL::double precision AS ca_min_gen_period_ratio,`
	case 1:
		ratioColumn = `
			NULL::double precision AS ca_min_gen_timepoint_ratio,
			CASE WHEN p.end_year >= 2030 THEN 0.8 END AS ca_min_gen_period_ratio,`
	default:
		return xerrors.Errorf("unknown ca_policies_scenario_id %d", *s.CaPoliciesScenarioID)
	}

	var rows []*caPolicyRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT
			p.label AS period,`+ratioColumn+`
			NULL::double precision AS carbon_cap_tco2_per_yr_ca
		FROM period AS p
		WHERE study_timeframe_id = ?
		ORDER BY 1;
	`, s.StudyTimeframeID)
	if err != nil {
		return err
	}

	e.modules = append(e.modules, "switch_model.policies.CA_policies")
	return e.writeFile(ctx, "ca_policies",
		[]string{"PERIOD", "ca_min_gen_timepoint_ratio", "ca_min_gen_period_ratio", "carbon_cap_tco2_per_yr_CA"}, asRows(rows))
}

// windToSolarCutoffRatio approximates the wind to solar build ratio the model
// settles on when left unconstrained. A configured ratio above the cutoff is
// enforced as a lower bound on wind builds, one below it as an upper bound.
const windToSolarCutoffRatio = 0.28

// The file keys its rows by investment period, reusing the period set and
// header of periods.csv.
var windToSolarRatioHeaders = []string{"INVESTMENT_PERIOD", "wind_to_solar_ratio", "wind_to_solar_ratio_const_gt"}

type windToSolarRatioRow struct {
	Label   int64
	ratio   float64
	constGt int
}

func (r *windToSolarRatioRow) CSVRow() []string {
	return []string{
		strconv.FormatInt(r.Label, 10),
		strconv.FormatFloat(r.ratio, 'g', -1, 64),
		strconv.Itoa(r.constGt),
	}
}

func (e *Exporter) writeWindToSolarRatio(ctx context.Context, s *scenario.Scenario) error {
	if s.WindToSolarRatio == nil {
		return nil
	}

	constGt := 0
	if *s.WindToSolarRatio > windToSolarCutoffRatio {
		constGt = 1
	}

	var rows []*windToSolarRatioRow
	_, err := e.db.QueryContext(ctx, &rows, `
		SELECT label
		FROM period
		WHERE study_timeframe_id = ?
		ORDER BY 1;
	`, s.StudyTimeframeID)
	if err != nil {
		return err
	}
	for _, r := range rows {
		r.ratio = *s.WindToSolarRatio
		r.constGt = constGt
	}
	return e.writeFile(ctx, "wind_to_solar_ratio", windToSolarRatioHeaders, asRows(rows))
}
