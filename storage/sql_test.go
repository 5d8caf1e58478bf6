package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-pg/pg/v10/orm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ream-lab/switchdb/model"
	"github.com/ream-lab/switchdb/model/plant"
	"github.com/ream-lab/switchdb/model/zone"
	"github.com/ream-lab/switchdb/testutil"
)

func TestGenerateUpsertStrings(t *testing.T) {
	conflict, update := GenerateUpsertStrings(&plant.GenerationPlantScenarioMember{})
	assert.Equal(t, `("generation_plant_scenario_id", "generation_plant_id")`, conflict)
	assert.Equal(t, "", update, "all-key models have nothing to update")

	conflict, update = GenerateUpsertStrings(&plant.VariableOMCost{})
	assert.Equal(t, `("variable_o_m_cost_scenario_id", "gen_tech", "energy_source")`, conflict)
	assert.Equal(t, `"variable_o_m" = EXCLUDED."variable_o_m"`, update)
}

func TestModelTableNames(t *testing.T) {
	// Model table names must be stable since the base schema and patches refer
	// to them by name.
	wanted := map[string]bool{
		"scenario":                              true,
		"period":                                true,
		"sampled_timeseries":                    true,
		"sampled_timepoint":                     true,
		"load_zone":                             true,
		"demand_timeseries":                     true,
		"balancing_areas":                       true,
		"transmission_lines":                    true,
		"energy_source":                         true,
		"fuel_simple_price_yearly":              true,
		"carbon_cap":                            true,
		"rps_target":                            true,
		"hydro_historical_monthly_capacity_factors": true,
		"generation_plant":                          true,
		"generation_plant_scenario_member":          true,
		"generation_plant_technologies":             true,
		"variable_o_m_costs":                        true,
		"generation_plant_cost":                     true,
		"generation_plant_existing_and_planned":     true,
	}

	for _, m := range models {
		tbl := orm.NewQuery(nil, m).TableModel().Table()
		name := stripQuotes(tbl.SQLNameForSelects)
		assert.True(t, wanted[name], "unexpected table name %q for %T", name, m)
		delete(wanted, name)
	}
	assert.Empty(t, wanted, "models missing for tables")
}

func TestGenerationPlantColumns(t *testing.T) {
	tbl := orm.NewQuery(nil, (*plant.GenerationPlant)(nil)).TableModel().Table()

	cols := map[string]string{}
	for _, f := range tbl.Fields {
		cols[f.SQLName] = f.SQLType
	}

	require.Contains(t, cols, "gen_storage_energy_to_power_ratio")
	assert.Equal(t, "real", cols["gen_storage_energy_to_power_ratio"])

	// the plant level outage rate derates hydro flow caps
	assert.Contains(t, cols, "forced_outage_rate")
}

func TestTransmissionLineColumns(t *testing.T) {
	tbl := orm.NewQuery(nil, (*zone.TransmissionLine)(nil)).TableModel().Table()

	cols := map[string]bool{}
	for _, f := range tbl.Fields {
		cols[f.SQLName] = true
	}

	assert.Contains(t, cols, "terrain_multiplier")
	assert.Contains(t, cols, "transmission_cost_econ_multiplier")
}

func TestNullStorage(t *testing.T) {
	ctx := context.Background()
	var s NullStorage

	ratio := float32(4.5)
	err := s.PersistBatch(ctx, &plant.GenerationPlant{
		GenerationPlantID:            1,
		Name:                         "test storage plant",
		GenStorageEnergyToPowerRatio: &ratio,
	})
	require.NoError(t, err)

	err = s.PersistBatch(ctx, model.PersistableList{})
	require.NoError(t, err)
}

func TestSchemaIsCurrent(t *testing.T) {
	if testing.Short() || !testutil.DatabaseAvailable() {
		t.Skip("short testing requested or SWITCHDB_TEST_DB not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	d, err := NewDatabase(ctx, testutil.Database(), 2, "switchdb-test", "switch", false)
	require.NoError(t, err)

	db, err := connect(ctx, d.opt)
	require.NoError(t, err)
	defer db.Close() // nolint: errcheck

	for _, m := range models {
		t.Run(fmt.Sprintf("%T", m), func(t *testing.T) {
			tbl := db.Model(m).TableModel().Table()
			if err := verifyModel(ctx, db, "switch", tbl); err != nil {
				t.Errorf("%v", err)
			}
		})
	}
}
