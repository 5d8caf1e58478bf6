package v1

func init() {
	patches.Register(
		3,
		`
CREATE TABLE {{ .SchemaName | default "public"}}.regional_fuel_market (
    regional_fuel_market_scenario_id bigint NOT NULL,
    regional_fuel_market text NOT NULL,
    fuel text NOT NULL
);

ALTER TABLE ONLY {{ .SchemaName | default "public"}}.regional_fuel_market
	ADD CONSTRAINT regional_fuel_market_pkey PRIMARY KEY (regional_fuel_market_scenario_id, regional_fuel_market);

CREATE TABLE {{ .SchemaName | default "public"}}.zone_to_regional_fuel_market (
    regional_fuel_market_scenario_id bigint NOT NULL,
    load_zone text NOT NULL,
    regional_fuel_market text NOT NULL
);

ALTER TABLE ONLY {{ .SchemaName | default "public"}}.zone_to_regional_fuel_market
	ADD CONSTRAINT zone_to_regional_fuel_market_pkey PRIMARY KEY (regional_fuel_market_scenario_id, load_zone, regional_fuel_market);

CREATE TABLE {{ .SchemaName | default "public"}}.fuel_supply_curves (
    supply_curves_scenario_id bigint NOT NULL,
    regional_fuel_market text NOT NULL,
    year integer NOT NULL,
    tier integer NOT NULL,
    unit_cost double precision,
    max_avail_at_cost double precision
);

ALTER TABLE ONLY {{ .SchemaName | default "public"}}.fuel_supply_curves
	ADD CONSTRAINT fuel_supply_curves_pkey PRIMARY KEY (supply_curves_scenario_id, regional_fuel_market, year, tier);

COMMENT ON COLUMN {{ .SchemaName | default "public"}}.fuel_supply_curves.max_avail_at_cost IS 'Null means unlimited supply at this tier.';
`,
	)
}
