package metrics

import (
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var defaultMillisecondsDistribution = view.Distribution(0.01, 0.05, 0.1, 0.3, 0.6, 0.8, 1, 2, 3, 4, 5, 6, 8, 10, 13, 16, 20, 25, 30, 40, 50, 65, 80, 100, 130, 160, 200, 250, 300, 400, 500, 650, 800, 1000, 2000, 5000, 10000, 20000, 30000, 50000, 100000, 200000, 500000, 1000000)

var (
	Name, _  = tag.NewKey("name")  // name of running instance of switchdb
	Table, _ = tag.NewKey("table") // name of table data is read from or persisted to
	File, _  = tag.NewKey("file")  // name of input file being exported
)

var (
	MigrationDuration = stats.Float64("migration_duration_ms", "Time taken to migrate the database schema", stats.UnitMilliseconds)
	PersistDuration   = stats.Float64("persist_duration_ms", "Duration of a models persist operation", stats.UnitMilliseconds)
	ExportDuration    = stats.Float64("export_duration_ms", "Time taken to export one input file", stats.UnitMilliseconds)
	ExportRows        = stats.Int64("export_rows", "Number of rows written to an input file", stats.UnitDimensionless)
	DBConns           = stats.Int64("db_conns", "Database connections held", stats.UnitDimensionless)
)

var DefaultViews = []*view.View{
	{
		Measure:     MigrationDuration,
		Aggregation: defaultMillisecondsDistribution,
		TagKeys:     []tag.Key{Name},
	},
	{
		Measure:     PersistDuration,
		Aggregation: defaultMillisecondsDistribution,
		TagKeys:     []tag.Key{Table},
	},
	{
		Measure:     ExportDuration,
		Aggregation: defaultMillisecondsDistribution,
		TagKeys:     []tag.Key{File},
	},
	{
		Measure:     ExportRows,
		Aggregation: view.Sum(),
		TagKeys:     []tag.Key{File},
	},
	{
		Measure:     DBConns,
		Aggregation: view.LastValue(),
	},
}
