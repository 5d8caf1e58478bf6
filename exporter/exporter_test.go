package exporter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ream-lab/switchdb/model/scenario"
)

func TestConditionalStepsSkipWhenUnset(t *testing.T) {
	// these steps must not touch the database when their scenario ids are
	// unset, so running them against a nil connection must not panic
	e := &Exporter{out: t.TempDir()}
	s := &scenario.Scenario{}

	ctx := context.Background()
	require.NoError(t, e.writeRpsTargets(ctx, s))
	require.NoError(t, e.writeFuelSupplyCurves(ctx, s))
	require.NoError(t, e.writeCaPolicies(ctx, s))
	require.NoError(t, e.writeDrData(ctx, s))
	require.NoError(t, e.writeEvLimits(ctx, s))
	require.NoError(t, e.writePlanningReserves(ctx, s))
	require.NoError(t, e.writeWindToSolarRatio(ctx, s))

	entries, err := os.ReadDir(e.out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSkipCapacityFactors(t *testing.T) {
	e := &Exporter{out: t.TempDir(), skipCF: true}
	require.NoError(t, e.writeVariableCapacityFactors(context.Background(), &scenario.Scenario{}))

	_, err := os.Stat(filepath.Join(e.out, "variable_capacity_factors.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteModules(t *testing.T) {
	e := &Exporter{out: t.TempDir()}
	e.modules = append([]string{}, coreModules...)
	e.modules = append(e.modules, "switch_model.policies.rps_unbundled")

	require.NoError(t, e.writeModules())

	b, err := os.ReadFile(filepath.Join(e.out, "modules.txt"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, len(coreModules)+1)
	assert.Equal(t, "switch_model", lines[0])
	assert.Equal(t, "switch_model.policies.rps_unbundled", lines[len(lines)-1])
}

func TestWriteScenarioParams(t *testing.T) {
	e := &Exporter{out: t.TempDir()}
	desc := "high storage build-out"
	ratio := 0.4
	s := &scenario.Scenario{
		ScenarioID:       171,
		Name:             "ldes_base",
		Description:      &desc,
		WindToSolarRatio: &ratio,
	}

	require.NoError(t, e.writeScenarioParams(s))

	b, err := os.ReadFile(filepath.Join(e.out, "scenario_params.txt"))
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, "scenario_id: 171")
	assert.Contains(t, out, "name: ldes_base")
	assert.Contains(t, out, "description: high storage build-out")
	assert.Contains(t, out, "wind_to_solar_ratio: 0.4")
}

func TestWriteFileWarnsButSucceedsWhenEmpty(t *testing.T) {
	e := &Exporter{out: t.TempDir()}
	require.NoError(t, e.writeFile(context.Background(), "loads", []string{"LOAD_ZONE", "TIMEPOINT", "zone_demand_mw"}, nil))

	b, err := os.ReadFile(filepath.Join(e.out, "loads.csv"))
	require.NoError(t, err)
	assert.Equal(t, "LOAD_ZONE,TIMEPOINT,zone_demand_mw\n", string(b))
}
