package commands

import (
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/ream-lab/switchdb/model"
)

var MigrateCmd = &cli.Command{
	Name:  "migrate",
	Usage: "Reports the current database schema version and the latest available. Use --to or --latest to perform a schema migration.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "to",
			Usage: "Migrate the schema to `VERSION`.",
		},
		&cli.BoolFlag{
			Name:  "latest",
			Value: false,
			Usage: "Migrate the schema to the latest version.",
		},
	},
	Action: func(cctx *cli.Context) error {
		if err := setupLogging(cctx); err != nil {
			return xerrors.Errorf("setup logging: %w", err)
		}

		ctx := cctx.Context

		db, err := setupDatabase(cctx)
		if err != nil {
			return xerrors.Errorf("setup database: %w", err)
		}

		if cctx.IsSet("to") {
			target, err := model.ParseVersion(cctx.String("to"))
			if err != nil {
				return xerrors.Errorf("invalid schema version %q: %w", cctx.String("to"), err)
			}
			if err := db.MigrateSchemaTo(ctx, target); err != nil {
				return xerrors.Errorf("migrate schema to: %w", err)
			}
		} else if cctx.Bool("latest") {
			if err := db.MigrateSchema(ctx); err != nil {
				return xerrors.Errorf("migrate schema: %w", err)
			}
		}

		dbVersion, latestVersion, err := db.GetSchemaVersions(ctx)
		if err != nil {
			return xerrors.Errorf("get schema versions: %w", err)
		}

		log.Infof("current database schema is version %s, latest is %s", dbVersion, latestVersion)

		if err := db.VerifyCurrentSchema(ctx); err != nil {
			return xerrors.Errorf("verify schema: %w", err)
		}

		log.Info("database schema is supported by this version of switchdb")

		return nil
	},
}
