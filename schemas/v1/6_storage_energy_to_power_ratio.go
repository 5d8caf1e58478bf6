package v1

func init() {
	patches.Register(
		6,
		`
ALTER TABLE {{ .SchemaName | default "public"}}.generation_plant
	ADD COLUMN gen_storage_energy_to_power_ratio real;

COMMENT ON COLUMN {{ .SchemaName | default "public"}}.generation_plant.gen_storage_energy_to_power_ratio IS 'Ratio of stored energy capacity to power capacity, i.e. hours of discharge at rated power. Null leaves the ratio unconstrained. Existing rows are not backfilled.';
`,
	)
}
