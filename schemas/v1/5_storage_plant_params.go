package v1

func init() {
	patches.Register(
		5,
		`
ALTER TABLE {{ .SchemaName | default "public"}}.generation_plant
	ADD COLUMN daily_self_discharge_rate double precision,
	ADD COLUMN discharge_efficiency double precision,
	ADD COLUMN land_use_rate double precision;

COMMENT ON COLUMN {{ .SchemaName | default "public"}}.generation_plant.daily_self_discharge_rate IS 'Fraction of state of charge lost per day while idle. Null for non-storage plants.';
COMMENT ON COLUMN {{ .SchemaName | default "public"}}.generation_plant.discharge_efficiency IS 'Efficiency of the discharge half-cycle. Null for non-storage plants.';
`,
	)
}
