package v1

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ream-lab/switchdb/schemas"
)

func TestPatchesAreConsistent(t *testing.T) {
	coll, err := GetPatches(schemas.Config{SchemaName: "switch"})
	require.NoError(t, err)

	ms := coll.Migrations()
	require.Equal(t, Version().Patch, len(ms))

	seen := map[int64]bool{}
	for _, m := range ms {
		assert.False(t, seen[m.Version], "duplicate patch %d", m.Version)
		seen[m.Version] = true
	}
	for i := 1; i <= len(ms); i++ {
		assert.True(t, seen[int64(i)], "missing patch %d", i)
	}
}

func TestBaseRendersWithSchemaName(t *testing.T) {
	base, err := GetBase(schemas.Config{SchemaName: "switch"})
	require.NoError(t, err)

	assert.Contains(t, base, "SET search_path TO switch,public;")
	assert.Contains(t, base, "CREATE TABLE switch.generation_plant (")
	assert.Contains(t, base, "CREATE TABLE switch.scenario (")
	assert.Contains(t, base, "CREATE TABLE switch.ev_profiles_per_timepoint_v3 (")
	assert.Contains(t, base, "transmission_cost_econ_multiplier")
	assert.Contains(t, base, "forced_outage_rate")
	assert.NotContains(t, base, "{{")

	// The energy to power ratio is added by patch, never by the base schema.
	assert.NotContains(t, base, "gen_storage_energy_to_power_ratio")
}

func TestBaseRendersWithDefaultSchema(t *testing.T) {
	base, err := GetBase(schemas.Config{})
	require.NoError(t, err)

	assert.NotContains(t, base, "SET search_path")
	assert.Contains(t, base, "CREATE TABLE public.generation_plant (")
}

func TestPatchListRegisterPanics(t *testing.T) {
	pl := NewPatchList()
	pl.Register(1, `SELECT 1;`)

	assert.Panics(t, func() {
		pl.Register(1, `SELECT 1;`)
	})
	assert.Panics(t, func() {
		pl.Register(0, `SELECT 1;`)
	})
	assert.Panics(t, func() {
		pl.Register(-3, `SELECT 1;`)
	})
}

func TestPatchListDetectsGaps(t *testing.T) {
	pl := NewPatchList()
	pl.Register(1, `SELECT 1;`)
	pl.Register(3, `SELECT 1;`)

	_, err := pl.Collection(schemas.Config{SchemaName: "switch"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing patch 2")
}

func TestEnergyToPowerRatioPatchIsFinal(t *testing.T) {
	coll, err := GetPatches(schemas.Config{SchemaName: "switch"})
	require.NoError(t, err)

	ms := coll.Migrations()
	var highest int64
	for _, m := range ms {
		if m.Version > highest {
			highest = m.Version
		}
	}
	require.EqualValues(t, Version().Patch, highest)

	// the patch template renders as a plain unguarded ALTER so re-application
	// surfaces the engine's duplicate column error
	p := patches.pm[int(highest)]
	var buf strings.Builder
	require.NoError(t, p.tmpl.Execute(&buf, schemas.Config{SchemaName: "switch"}))
	sql := buf.String()
	assert.Contains(t, sql, "ALTER TABLE switch.generation_plant")
	assert.Contains(t, sql, "ADD COLUMN gen_storage_energy_to_power_ratio real;")
	assert.NotContains(t, sql, "IF NOT EXISTS")
	assert.NotContains(t, sql, "DEFAULT")
}
