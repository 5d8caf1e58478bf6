package exporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHydroFlowCapIsDerated(t *testing.T) {
	// Flow caps must derate capacity by the forced outage rate: a unit with
	// avg flow 100, capacity 100 and outage rate 0.05 is capped at 95, not 100.
	assert.Contains(t, hydroTimeseriesQuery, "least(hydro_min_flow_mw, capacity_limit_mw * (1 - forced_outage_rate))")
	assert.Contains(t, hydroTimeseriesQuery, "least(hydro_avg_flow_mw, capacity_limit_mw * (1 - forced_outage_rate))")
	assert.NotContains(t, hydroTimeseriesQuery, "least(hydro_avg_flow_mw, capacity_limit_mw)")
}

func TestTerrainMultiplierIncludesEconFactor(t *testing.T) {
	assert.Contains(t, transmissionLinesQuery, "terrain_multiplier * transmission_cost_econ_multiplier AS terrain_multiplier")
}

func TestWindToSolarRatioHeader(t *testing.T) {
	assert.Equal(t, []string{"INVESTMENT_PERIOD", "wind_to_solar_ratio", "wind_to_solar_ratio_const_gt"}, windToSolarRatioHeaders)
}

func TestTimepointRowFormatsTimestamp(t *testing.T) {
	ts := time.Date(2035, time.January, 7, 5, 0, 0, 0, time.UTC)
	row := &timepointRow{TimepointID: 42, TimestampUtc: &ts, Timeseries: "2035_winter"}
	assert.Equal(t, []string{"42", "2035010705", "2035_winter"}, row.CSVRow())

	row.TimestampUtc = nil
	assert.Equal(t, ".", row.CSVRow()[1])
}
