package v1

func init() {
	patches.Register(
		4,
		`
CREATE TABLE {{ .SchemaName | default "public"}}.planning_reserve_zones (
    planning_reserve_requirement text NOT NULL,
    load_zone text NOT NULL
);

ALTER TABLE ONLY {{ .SchemaName | default "public"}}.planning_reserve_zones
	ADD CONSTRAINT planning_reserve_zones_pkey PRIMARY KEY (planning_reserve_requirement, load_zone);

CREATE TABLE {{ .SchemaName | default "public"}}.planning_reserve_requirements (
    planning_reserve_requirement text NOT NULL,
    prr_cap_reserve_margin double precision,
    prr_enforcement_timescale text
);

ALTER TABLE ONLY {{ .SchemaName | default "public"}}.planning_reserve_requirements
	ADD CONSTRAINT planning_reserve_requirements_pkey PRIMARY KEY (planning_reserve_requirement);
`,
	)
}
