package v1

func init() {
	patches.Register(
		2,
		`
CREATE TABLE {{ .SchemaName | default "public"}}.carbon_cap (
    carbon_cap_scenario_id bigint NOT NULL,
    year integer NOT NULL,
    carbon_cap_tco2_per_yr double precision,
    carbon_cap_tco2_per_yr_ca double precision
);

ALTER TABLE ONLY {{ .SchemaName | default "public"}}.carbon_cap
	ADD CONSTRAINT carbon_cap_pkey PRIMARY KEY (carbon_cap_scenario_id, year);

COMMENT ON COLUMN {{ .SchemaName | default "public"}}.carbon_cap.carbon_cap_tco2_per_yr_ca IS 'California-only cap. Null when the cap scenario does not constrain California separately.';

CREATE TABLE {{ .SchemaName | default "public"}}.rps_target (
    rps_scenario_id bigint NOT NULL,
    load_zone text NOT NULL,
    year integer NOT NULL,
    rps_target double precision
);

ALTER TABLE ONLY {{ .SchemaName | default "public"}}.rps_target
	ADD CONSTRAINT rps_target_pkey PRIMARY KEY (rps_scenario_id, load_zone, year);
`,
	)
}
