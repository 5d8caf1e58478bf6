package main

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"

	"github.com/ream-lab/switchdb/commands"
	"github.com/ream-lab/switchdb/version"
)

var log = logging.Logger("switchdb")

func main() {
	if err := logging.SetLogLevel("*", "info"); err != nil {
		log.Fatal(err)
	}

	app := &cli.App{
		Name:    "switchdb",
		Usage:   "Schema management and input export for the SWITCH WECC capacity expansion database",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				EnvVars: []string{"SWITCHDB_DB"},
				Usage:   "Connection string for the postgresql database, overriding the config file.",
			},
			&cli.IntFlag{
				Name:    "db-pool-size",
				EnvVars: []string{"SWITCHDB_DB_POOL_SIZE"},
				Value:   10,
			},
			&cli.StringFlag{
				Name:    "config",
				EnvVars: []string{"SWITCHDB_CONFIG"},
				Usage:   "Path to the configuration file.",
			},
			&cli.StringFlag{
				Name:    "storage",
				EnvVars: []string{"SWITCHDB_STORAGE"},
				Usage:   "Name of the storage entry in the config file to use.",
			},
			&cli.StringFlag{
				Name:    "schema",
				EnvVars: []string{"SWITCHDB_SCHEMA"},
				Usage:   "Name of the postgresql schema holding the model tables.",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"GOLOG_LOG_LEVEL"},
				Value:   "info",
				Usage:   "Set the default log level for all loggers to `LEVEL`",
			},
			&cli.StringFlag{
				Name:    "log-level-named",
				EnvVars: []string{"SWITCHDB_LOG_LEVEL_NAMED"},
				Value:   "",
				Usage:   "A comma delimited list of named loggers and log levels formatted as name:level, for example 'logger1:debug,logger2:info'",
			},
			&cli.StringFlag{
				Name:    "prometheus-port",
				EnvVars: []string{"SWITCHDB_PROMETHEUS_PORT"},
				Value:   "",
				Usage:   "Address to serve prometheus metrics on, for example ':9991'. Disabled when empty.",
			},
		},
		Commands: []*cli.Command{
			commands.InitCmd,
			commands.MigrateCmd,
			commands.ExportCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
