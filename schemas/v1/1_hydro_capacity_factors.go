package v1

func init() {
	patches.Register(
		1,
		`
CREATE TABLE {{ .SchemaName | default "public"}}.hydro_historical_monthly_capacity_factors (
    hydro_simple_scenario_id bigint NOT NULL,
    generation_plant_id bigint NOT NULL,
    year integer NOT NULL,
    month integer NOT NULL,
    hydro_min_flow_mw double precision,
    hydro_avg_flow_mw double precision
);

ALTER TABLE ONLY {{ .SchemaName | default "public"}}.hydro_historical_monthly_capacity_factors
	ADD CONSTRAINT hydro_historical_monthly_capacity_factors_pkey PRIMARY KEY (hydro_simple_scenario_id, generation_plant_id, year, month);
`,
	)
}
