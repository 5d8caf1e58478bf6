package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNulls(t *testing.T) {
	assert.Equal(t, ".", fmtString(nil))
	assert.Equal(t, ".", fmtFloat(nil))
	assert.Equal(t, ".", fmtFloat32(nil))
	assert.Equal(t, ".", fmtInt(nil))
	assert.Equal(t, ".", fmtBool(nil))
	assert.Equal(t, ".", fmtTimestamp(nil))
}

func TestFormatValues(t *testing.T) {
	s := "CA_PGE_BAY"
	assert.Equal(t, "CA_PGE_BAY", fmtString(&s))

	f := 0.0025
	assert.Equal(t, "0.0025", fmtFloat(&f))

	f32 := float32(4)
	assert.Equal(t, "4", fmtFloat32(&f32))

	i := int64(2050)
	assert.Equal(t, "2050", fmtInt(&i))

	bt := true
	bf := false
	assert.Equal(t, "1", fmtBool(&bt))
	assert.Equal(t, "0", fmtBool(&bf))

	ts := time.Date(2030, time.June, 15, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2030061523", fmtTimestamp(&ts))
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "periods.csv")

	rows := []Row{
		&periodRow{Label: 2030, PeriodStart: 2026, PeriodEnd: 2035},
		&periodRow{Label: 2040, PeriodStart: 2036, PeriodEnd: 2045},
	}
	err := writeCSV(path, []string{"INVESTMENT_PERIOD", "period_start", "period_end"}, rows)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"INVESTMENT_PERIOD", "period_start", "period_end"}, records[0])
	assert.Equal(t, []string{"2030", "2026", "2035"}, records[1])
	assert.Equal(t, []string{"2040", "2036", "2045"}, records[2])
}

func TestGenerationProjectRowStorageRatio(t *testing.T) {
	ratio := float32(6)
	row := &generationProjectRow{
		GenerationPlantID:            101,
		GenTech:                      "Battery_Storage",
		GenEnergySource:              "Electricity",
		GenLoadZone:                  "CA_PGE_BAY",
		GenDbid:                      101,
		GenCanProvideCapReserves:     1,
		GenStorageEnergyToPowerRatio: &ratio,
	}

	fields := row.CSVRow()
	require.Len(t, fields, 23)
	assert.Equal(t, "6", fields[len(fields)-1])

	// plants without the ratio leave the column null
	row.GenStorageEnergyToPowerRatio = nil
	fields = row.CSVRow()
	assert.Equal(t, ".", fields[len(fields)-1])
}

func TestFuelSupplyCurveUnlimitedTier(t *testing.T) {
	cost := 1.5
	row := &fuelSupplyCurveRow{
		RegionalFuelMarket: "ca_north",
		Period:             2030,
		Tier:               1,
		UnitCost:           &cost,
	}
	assert.Equal(t, []string{"ca_north", "2030", "1", "1.5", "inf"}, row.CSVRow())

	avail := 1000.0
	row.MaxAvailAtCost = &avail
	assert.Equal(t, "1000", row.CSVRow()[4])
}
