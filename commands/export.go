package commands

import (
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/ream-lab/switchdb/exporter"
)

var ExportCmd = &cli.Command{
	Name:  "export",
	Usage: "Export the input files for a scenario to a directory.",
	Flags: []cli.Flag{
		&cli.Int64Flag{
			Name:     "scenario",
			Usage:    "Id of the scenario to export inputs for.",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "Directory to write the input files to.",
			Value: ".",
		},
		&cli.BoolFlag{
			Name:  "skip-cf",
			Usage: "Skip exporting variable capacity factors, by far the slowest export.",
			Value: false,
		},
	},
	Action: func(cctx *cli.Context) error {
		if err := setupLogging(cctx); err != nil {
			return xerrors.Errorf("setup logging: %w", err)
		}
		if err := setupMetrics(cctx); err != nil {
			return xerrors.Errorf("setup metrics: %w", err)
		}

		ctx := cctx.Context

		cfg, err := loadConf(cctx)
		if err != nil {
			return err
		}

		db, err := setupDatabase(cctx)
		if err != nil {
			return xerrors.Errorf("setup database: %w", err)
		}
		if err := db.Connect(ctx); err != nil {
			return xerrors.Errorf("connect database: %w", err)
		}
		defer db.Close(ctx) //nolint:errcheck

		out := cfg.Export.OutputPath
		if cctx.IsSet("out") {
			out = cctx.String("out")
		}
		skipCF := cfg.Export.SkipCapacityFactors
		if cctx.IsSet("skip-cf") {
			skipCF = cctx.Bool("skip-cf")
		}

		exp := exporter.NewExporter(db, out, skipCF)
		if err := exp.Run(ctx, cctx.Int64("scenario")); err != nil {
			return xerrors.Errorf("export scenario: %w", err)
		}

		return nil
	},
}
