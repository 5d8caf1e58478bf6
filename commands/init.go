package commands

import (
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/ream-lab/switchdb/config"
)

var InitCmd = &cli.Command{
	Name:  "init",
	Usage: "Write a default configuration file unless one already exists.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "path",
			Usage: "Path to write the configuration file to.",
			Value: "switchdb.toml",
		},
	},
	Action: func(cctx *cli.Context) error {
		if err := setupLogging(cctx); err != nil {
			return xerrors.Errorf("setup logging: %w", err)
		}

		path := cctx.String("path")
		if err := config.EnsureExists(path); err != nil {
			return xerrors.Errorf("write config: %w", err)
		}

		log.Infof("configuration available at %s", path)
		return nil
	},
}
