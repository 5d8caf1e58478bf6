package exporter

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	logging "github.com/ipfs/go-log/v2"
	"go.opencensus.io/stats"
	"go.opencensus.io/tag"
	"golang.org/x/xerrors"

	"github.com/ream-lab/switchdb/metrics"
	"github.com/ream-lab/switchdb/model/scenario"
	"github.com/ream-lab/switchdb/storage"
	"github.com/ream-lab/switchdb/version"
)

var log = logging.Logger("switchdb/exporter")

var timeNow = time.Now

// coreModules are always emitted to modules.txt. Conditional modules are
// appended while exporting, driven by which scenario ids are set.
var coreModules = []string{
	"switch_model",
	"switch_model.timescales",
	"switch_model.financials",
	"switch_model.balancing.load_zones",
	"switch_model.energy_sources.properties",
	"switch_model.generators.core.build",
	"switch_model.generators.core.dispatch",
	"switch_model.reporting",
	"switch_model.generators.core.no_commit",
	"switch_model.generators.extensions.hydro_simple",
	"switch_model.generators.extensions.storage",
	"switch_model.energy_sources.fuel_costs.markets",
	"switch_model.transmission.transport.build",
	"switch_model.transmission.transport.dispatch",
	"switch_model.policies.carbon_policies",
	"switch_model.policies.min_per_tech",
	"switch_model.policies.wind_to_solar_ratio",
}

// dbConn is the subset of go-pg that the export queries use. It is satisfied
// by both *pg.DB and *pg.Conn.
type dbConn interface {
	ModelContext(c context.Context, model ...interface{}) *orm.Query
	QueryContext(c context.Context, model, query interface{}, params ...interface{}) (pg.Result, error)
	ExecContext(c context.Context, query interface{}, params ...interface{}) (pg.Result, error)
}

// An Exporter writes the model input files for one scenario from the
// database into an output directory.
type Exporter struct {
	pool    *pg.DB
	db      dbConn
	out     string
	skipCF  bool
	modules []string
}

func NewExporter(d *storage.Database, outDir string, skipCapacityFactors bool) *Exporter {
	return &Exporter{
		pool:   d.AsORM(),
		out:    outDir,
		skipCF: skipCapacityFactors,
	}
}

// Run exports every input file for the scenario. Files are written in the
// order the downstream model reads them; a failure leaves earlier files in
// place so a rerun can be diffed against them.
func (e *Exporter) Run(ctx context.Context, scenarioID int64) error {
	if err := os.MkdirAll(e.out, 0o755); err != nil {
		return xerrors.Errorf("create output dir: %w", err)
	}

	// Plant queries join a temporary table, which is only visible on the
	// session that created it, so the whole export is pinned to one
	// connection from the pool.
	conn := e.pool.Conn()
	defer conn.Close() //nolint:errcheck
	e.db = conn

	s, err := loadScenario(ctx, e.db, scenarioID)
	if err != nil {
		return err
	}
	log.Infof("scenario %d: %s", s.ScenarioID, s.Name)

	e.modules = append([]string{}, coreModules...)

	if err := e.writeScenarioParams(s); err != nil {
		return xerrors.Errorf("write scenario params: %w", err)
	}
	if err := e.writeInputsVersion(); err != nil {
		return xerrors.Errorf("write inputs version: %w", err)
	}

	if err := e.createPlantScope(ctx, s); err != nil {
		return xerrors.Errorf("create plant scope: %w", err)
	}

	steps := []struct {
		name string
		run  func(context.Context, *scenario.Scenario) error
	}{
		{"periods", e.writePeriods},
		{"timeseries", e.writeTimeseries},
		{"timepoints", e.writeTimepoints},
		{"load_zones", e.writeLoadZones},
		{"loads", e.writeLoads},
		{"balancing_areas", e.writeBalancingAreas},
		{"zone_balancing_areas", e.writeZoneBalancingAreas},
		{"transmission_lines", e.writeTransmissionLines},
		{"trans_params", e.writeTransParams},
		{"fuels", e.writeFuels},
		{"non_fuel_energy_sources", e.writeNonFuelEnergySources},
		{"fuel_cost", e.writeFuelCost},
		{"generation_projects_info", e.writeGenerationProjectsInfo},
		{"gen_build_predetermined", e.writeGenBuildPredetermined},
		{"gen_build_costs", e.writeGenBuildCosts},
		{"financials", e.writeFinancials},
		{"variable_capacity_factors", e.writeVariableCapacityFactors},
		{"hydro_timepoints", e.writeHydroTimepoints},
		{"hydro_timeseries", e.writeHydroTimeseries},
		{"carbon_policies", e.writeCarbonPolicies},
		{"rps_targets", e.writeRpsTargets},
		{"fuel_supply_curves", e.writeFuelSupplyCurves},
		{"regional_fuel_markets", e.writeRegionalFuelMarkets},
		{"zone_to_regional_fuel_market", e.writeZoneToRegionalFuelMarket},
		{"dr_data", e.writeDrData},
		{"ev_limits", e.writeEvLimits},
		{"ca_policies", e.writeCaPolicies},
		{"planning_reserves", e.writePlanningReserves},
		{"wind_to_solar_ratio", e.writeWindToSolarRatio},
	}

	for _, step := range steps {
		if err := step.run(ctx, s); err != nil {
			return xerrors.Errorf("export %s: %w", step.name, err)
		}
	}

	if err := e.writeModules(); err != nil {
		return xerrors.Errorf("write modules: %w", err)
	}

	return nil
}

// createPlantScope builds a temporary table holding the generation plant ids
// in scope for the scenario, either directly or through a plant group. Plant
// queries join against it to filter out unused plants.
func (e *Exporter) createPlantScope(ctx context.Context, s *scenario.Scenario) error {
	_, err := e.db.ExecContext(ctx, `
		CREATE TEMPORARY TABLE temp_generation_plant_ids AS
		SELECT generation_plant_id
		FROM generation_plant_scenario_member
		WHERE generation_plant_scenario_id = ?
		UNION
		SELECT generation_plant_id
		FROM generation_plant_scenario_group_member
		JOIN generation_plant_group_member USING (generation_plant_group_id)
		WHERE generation_plant_scenario_id = ?;
	`, s.GenerationPlantScenarioID, s.GenerationPlantScenarioID)
	if err != nil {
		return err
	}
	return nil
}

func (e *Exporter) writeInputsVersion() error {
	f, err := os.Create(e.path("switch_inputs_version.txt"))
	if err != nil {
		return err
	}
	fmt.Fprintf(f, "%s\n", version.String())
	return f.Close()
}

func (e *Exporter) writeModules() error {
	f, err := os.Create(e.path("modules.txt"))
	if err != nil {
		return err
	}
	for _, m := range e.modules {
		fmt.Fprintln(f, m)
	}
	return f.Close()
}

// writeFile writes one input file and records its size. Empty files are
// usually a misconfigured scenario id, so they are called out.
func (e *Exporter) writeFile(ctx context.Context, fname string, headers []string, rows []Row) error {
	start := timeNow()

	if err := writeCSV(e.path(fname+".csv"), headers, rows); err != nil {
		return xerrors.Errorf("write %s.csv: %w", fname, err)
	}

	if fctx, err := tag.New(ctx, tag.Insert(metrics.File, fname)); err == nil {
		stats.Record(fctx,
			metrics.ExportDuration.M(float64(time.Since(start).Milliseconds())),
			metrics.ExportRows.M(int64(len(rows))),
		)
	}

	if len(rows) == 0 {
		log.Warnf("file %s.csv is empty", fname)
	} else {
		log.Infof("%s.csv: %d rows", fname, len(rows))
	}
	return nil
}

func asRows[T Row](rs []T) []Row {
	out := make([]Row, len(rs))
	for i, r := range rs {
		out[i] = r
	}
	return out
}
