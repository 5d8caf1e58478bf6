package v1

// BaseTemplate is the template for the initial schema for this major version.
// The template expects variables to be passed using the schemas.Config struct.
// Patches are applied on top of this base.
var BaseTemplate = `

{{- if and .SchemaName (ne .SchemaName "public") }}
SET search_path TO {{ .SchemaName }},public;
{{- end }}

-- =====================================================================================================================
-- TABLES
-- =====================================================================================================================

-- ----------------------------------------------------------------
-- Name: scenario
-- Model: scenario.Scenario
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.scenario (
    scenario_id bigint NOT NULL,
    name text NOT NULL,
    description text,
    study_timeframe_id bigint NOT NULL,
    time_sample_id bigint NOT NULL,
    demand_scenario_id bigint NOT NULL,
    fuel_simple_price_scenario_id bigint NOT NULL,
    generation_plant_scenario_id bigint NOT NULL,
    generation_plant_cost_scenario_id bigint NOT NULL,
    generation_plant_existing_and_planned_scenario_id bigint NOT NULL,
    generation_plant_technologies_scenario_id bigint NOT NULL,
    variable_o_m_cost_scenario_id bigint NOT NULL,
    hydro_simple_scenario_id bigint NOT NULL,
    carbon_cap_scenario_id bigint NOT NULL,
    regional_fuel_market_scenario_id bigint NOT NULL,
    transmission_base_capital_cost_scenario_id bigint NOT NULL,
    supply_curves_scenario_id bigint,
    rps_scenario_id bigint,
    ca_policies_scenario_id bigint,
    enable_dr integer,
    enable_ev integer,
    enable_planning_reserves boolean NOT NULL DEFAULT false,
    wind_to_solar_ratio double precision
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.scenario ADD CONSTRAINT scenario_pkey PRIMARY KEY (scenario_id);

COMMENT ON TABLE {{ .SchemaName | default "public"}}.scenario IS 'Catalog of model runs. Each row binds the sub-scenario ids that select one coherent input set.';

-- ----------------------------------------------------------------
-- Name: period
-- Model: timescale.Period
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.period (
    period_id bigint NOT NULL,
    study_timeframe_id bigint NOT NULL,
    label integer NOT NULL,
    start_year integer NOT NULL,
    end_year integer NOT NULL,
    length_yrs integer NOT NULL
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.period ADD CONSTRAINT period_pkey PRIMARY KEY (period_id, study_timeframe_id);

-- ----------------------------------------------------------------
-- Name: sampled_timeseries
-- Model: timescale.SampledTimeseries
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.sampled_timeseries (
    sampled_timeseries_id bigint NOT NULL,
    study_timeframe_id bigint NOT NULL,
    time_sample_id bigint NOT NULL,
    period_id bigint NOT NULL,
    name text NOT NULL,
    hours_per_tp double precision,
    num_timepoints integer,
    first_timepoint_utc timestamptz NOT NULL,
    scaling_to_period double precision
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.sampled_timeseries ADD CONSTRAINT sampled_timeseries_pkey PRIMARY KEY (sampled_timeseries_id, study_timeframe_id);

-- ----------------------------------------------------------------
-- Name: sampled_timepoint
-- Model: timescale.SampledTimepoint
-- Growth: one row per sampled hour per time sample, the largest timescale table
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.sampled_timepoint (
    raw_timepoint_id bigint NOT NULL,
    study_timeframe_id bigint NOT NULL,
    sampled_timeseries_id bigint NOT NULL,
    time_sample_id bigint NOT NULL,
    period_id bigint NOT NULL,
    timestamp_utc timestamptz NOT NULL
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.sampled_timepoint ADD CONSTRAINT sampled_timepoint_pkey PRIMARY KEY (raw_timepoint_id, study_timeframe_id);
CREATE INDEX sampled_timepoint_time_sample_idx ON {{ .SchemaName | default "public"}}.sampled_timepoint USING btree (time_sample_id);

-- ----------------------------------------------------------------
-- Name: load_zone
-- Model: zone.LoadZone
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.load_zone (
    load_zone_id bigint NOT NULL,
    name text NOT NULL,
    ccs_distance_km double precision,
    reserves_area text
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.load_zone ADD CONSTRAINT load_zone_pkey PRIMARY KEY (load_zone_id);

-- ----------------------------------------------------------------
-- Name: demand_timeseries
-- Model: zone.DemandTimeseries
-- Growth: one row per zone per hour per demand scenario
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.demand_timeseries (
    demand_scenario_id bigint NOT NULL,
    load_zone_id bigint NOT NULL,
    raw_timepoint_id bigint NOT NULL,
    load_zone_name text NOT NULL,
    demand_mw double precision
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.demand_timeseries ADD CONSTRAINT demand_timeseries_pkey PRIMARY KEY (demand_scenario_id, load_zone_id, raw_timepoint_id);
CREATE INDEX demand_timeseries_raw_timepoint_idx ON {{ .SchemaName | default "public"}}.demand_timeseries USING btree (raw_timepoint_id);

-- ----------------------------------------------------------------
-- Name: ev_profiles_per_timepoint_v3
-- Growth: one row per zone per hour
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.ev_profiles_per_timepoint_v3 (
    load_zone_id bigint NOT NULL,
    load_zone_name text NOT NULL,
    raw_timepoint_id bigint NOT NULL,
    ev_cumulative_charge_lower_mwh double precision,
    ev_cumulative_charge_upper_mwh double precision,
    ev_charge_limit double precision
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.ev_profiles_per_timepoint_v3 ADD CONSTRAINT ev_profiles_per_timepoint_v3_pkey PRIMARY KEY (load_zone_id, raw_timepoint_id);

-- ----------------------------------------------------------------
-- Name: balancing_areas
-- Model: zone.BalancingArea
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.balancing_areas (
    balancing_area text NOT NULL,
    quickstart_res_load_frac double precision,
    quickstart_res_wind_frac double precision,
    quickstart_res_solar_frac double precision,
    spinning_res_load_frac double precision,
    spinning_res_wind_frac double precision,
    spinning_res_solar_frac double precision
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.balancing_areas ADD CONSTRAINT balancing_areas_pkey PRIMARY KEY (balancing_area);

-- ----------------------------------------------------------------
-- Name: transmission_lines
-- Model: zone.TransmissionLine
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.transmission_lines (
    transmission_line_id bigint NOT NULL,
    start_load_zone_id bigint NOT NULL,
    end_load_zone_id bigint NOT NULL,
    trans_length_km double precision,
    trans_efficiency double precision,
    existing_trans_cap_mw double precision,
    derating_factor double precision,
    terrain_multiplier double precision,
    transmission_cost_econ_multiplier double precision,
    new_build_allowed integer
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.transmission_lines ADD CONSTRAINT transmission_lines_pkey PRIMARY KEY (transmission_line_id);

-- ----------------------------------------------------------------
-- Name: transmission_base_capital_cost
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.transmission_base_capital_cost (
    transmission_base_capital_cost_scenario_id bigint NOT NULL,
    trans_capital_cost_per_mw_km double precision NOT NULL
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.transmission_base_capital_cost ADD CONSTRAINT transmission_base_capital_cost_pkey PRIMARY KEY (transmission_base_capital_cost_scenario_id);

-- ----------------------------------------------------------------
-- Name: energy_source
-- Model: energy.EnergySource
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.energy_source (
    name text NOT NULL,
    is_fuel boolean NOT NULL,
    co2_intensity double precision,
    upstream_co2_intensity double precision
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.energy_source ADD CONSTRAINT energy_source_pkey PRIMARY KEY (name);

-- ----------------------------------------------------------------
-- Name: fuel_simple_price_yearly
-- Model: energy.FuelSimplePriceYearly
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.fuel_simple_price_yearly (
    fuel_simple_scenario_id bigint NOT NULL,
    load_zone_name text NOT NULL,
    fuel text NOT NULL,
    projection_year integer NOT NULL,
    fuel_price double precision
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.fuel_simple_price_yearly ADD CONSTRAINT fuel_simple_price_yearly_pkey PRIMARY KEY (fuel_simple_scenario_id, load_zone_name, fuel, projection_year);

-- ----------------------------------------------------------------
-- Name: generation_plant
-- Model: plant.GenerationPlant
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.generation_plant (
    generation_plant_id bigint NOT NULL,
    name text NOT NULL,
    gen_tech text NOT NULL,
    load_zone_id bigint NOT NULL,
    energy_source text NOT NULL,
    connect_cost_per_mw double precision,
    capacity_limit_mw double precision,
    final_capacity_limit_mw double precision,
    full_load_heat_rate double precision,
    min_build_capacity double precision,
    max_age integer,
    forced_outage_rate double precision,
    is_variable boolean,
    is_cogen boolean,
    storage_efficiency double precision,
    store_to_release_ratio double precision
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.generation_plant ADD CONSTRAINT generation_plant_pkey PRIMARY KEY (generation_plant_id);
CREATE INDEX generation_plant_load_zone_idx ON {{ .SchemaName | default "public"}}.generation_plant USING btree (load_zone_id);

-- ----------------------------------------------------------------
-- Name: generation_plant_scenario_member
-- Model: plant.GenerationPlantScenarioMember
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.generation_plant_scenario_member (
    generation_plant_scenario_id bigint NOT NULL,
    generation_plant_id bigint NOT NULL
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.generation_plant_scenario_member ADD CONSTRAINT generation_plant_scenario_member_pkey PRIMARY KEY (generation_plant_scenario_id, generation_plant_id);

-- ----------------------------------------------------------------
-- Name: generation_plant_group_member / generation_plant_scenario_group_member
-- Plants can enter a scenario indirectly through a plant group.
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.generation_plant_group_member (
    generation_plant_group_id bigint NOT NULL,
    generation_plant_id bigint NOT NULL
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.generation_plant_group_member ADD CONSTRAINT generation_plant_group_member_pkey PRIMARY KEY (generation_plant_group_id, generation_plant_id);

CREATE TABLE {{ .SchemaName | default "public"}}.generation_plant_scenario_group_member (
    generation_plant_scenario_id bigint NOT NULL,
    generation_plant_group_id bigint NOT NULL
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.generation_plant_scenario_group_member ADD CONSTRAINT generation_plant_scenario_group_member_pkey PRIMARY KEY (generation_plant_scenario_id, generation_plant_group_id);

-- ----------------------------------------------------------------
-- Name: generation_plant_technologies
-- Model: plant.GenerationPlantTechnology
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.generation_plant_technologies (
    generation_plant_technologies_scenario_id bigint NOT NULL,
    gen_tech text NOT NULL,
    energy_source text NOT NULL,
    is_baseload boolean,
    scheduled_outage_rate double precision,
    forced_outage_rate double precision
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.generation_plant_technologies ADD CONSTRAINT generation_plant_technologies_pkey PRIMARY KEY (generation_plant_technologies_scenario_id, gen_tech, energy_source);

-- ----------------------------------------------------------------
-- Name: variable_o_m_costs
-- Model: plant.VariableOMCost
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.variable_o_m_costs (
    variable_o_m_cost_scenario_id bigint NOT NULL,
    gen_tech text NOT NULL,
    energy_source text NOT NULL,
    variable_o_m double precision
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.variable_o_m_costs ADD CONSTRAINT variable_o_m_costs_pkey PRIMARY KEY (variable_o_m_cost_scenario_id, gen_tech, energy_source);

-- ----------------------------------------------------------------
-- Name: generation_plant_cost
-- Model: plant.GenerationPlantCost
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.generation_plant_cost (
    generation_plant_cost_scenario_id bigint NOT NULL,
    generation_plant_id bigint NOT NULL,
    build_year integer NOT NULL,
    fixed_o_m double precision,
    overnight_cost double precision,
    storage_energy_capacity_cost_per_mwh double precision
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.generation_plant_cost ADD CONSTRAINT generation_plant_cost_pkey PRIMARY KEY (generation_plant_cost_scenario_id, generation_plant_id, build_year);

-- ----------------------------------------------------------------
-- Name: generation_plant_existing_and_planned
-- Model: plant.GenerationPlantExistingAndPlanned
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.generation_plant_existing_and_planned (
    generation_plant_existing_and_planned_scenario_id bigint NOT NULL,
    generation_plant_id bigint NOT NULL,
    build_year integer NOT NULL,
    capacity double precision,
    gen_predetermined_storage_energy_mwh double precision
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.generation_plant_existing_and_planned ADD CONSTRAINT generation_plant_existing_and_planned_pkey PRIMARY KEY (generation_plant_existing_and_planned_scenario_id, generation_plant_id, build_year);

-- ----------------------------------------------------------------
-- Name: variable_capacity_factors_exist_and_candidate_gen
-- Growth: one row per variable plant per hour, the largest table in the schema
-- ----------------------------------------------------------------

CREATE TABLE {{ .SchemaName | default "public"}}.variable_capacity_factors_exist_and_candidate_gen (
    generation_plant_id bigint NOT NULL,
    raw_timepoint_id bigint NOT NULL,
    capacity_factor double precision
);
ALTER TABLE ONLY {{ .SchemaName | default "public"}}.variable_capacity_factors_exist_and_candidate_gen ADD CONSTRAINT variable_capacity_factors_pkey PRIMARY KEY (generation_plant_id, raw_timepoint_id);
`
