package commands

import (
	"fmt"
	"net/http"
	"net/http/pprof"
	"strings"
	"time"

	"contrib.go.opencensus.io/exporter/prometheus"
	logging "github.com/ipfs/go-log/v2"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/zpages"

	"github.com/ream-lab/switchdb/config"
	"github.com/ream-lab/switchdb/metrics"
	"github.com/ream-lab/switchdb/storage"
	"github.com/ream-lab/switchdb/version"
)

var log = logging.Logger("switchdb/commands")

func setupLogging(cctx *cli.Context) error {
	ll := cctx.String("log-level")
	if err := logging.SetLogLevel("*", ll); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}

	llnamed := cctx.String("log-level-named")
	if llnamed != "" {
		for _, llname := range strings.Split(llnamed, ",") {
			parts := strings.Split(llname, ":")
			if len(parts) != 2 {
				return fmt.Errorf("invalid named log level format: %q", llname)
			}
			if err := logging.SetLogLevel(parts[0], parts[1]); err != nil {
				return fmt.Errorf("set named log level %q to %q: %w", parts[0], parts[1], err)
			}
		}
	}

	log.Infof("switchdb version:%s", version.String())

	return nil
}

func setupMetrics(cctx *cli.Context) error {
	addr := cctx.String("prometheus-port")
	if addr == "" {
		return nil
	}

	registry := prom.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	pe, err := prometheus.NewExporter(prometheus.Options{
		Namespace: "switchdb",
		Registry:  registry,
	})
	if err != nil {
		return err
	}

	view.RegisterExporter(pe)
	view.SetReportingPeriod(2 * time.Second)

	if err := view.Register(metrics.DefaultViews...); err != nil {
		return err
	}

	go func() {
		mux := http.NewServeMux()
		zpages.Handle(mux, "/debug")
		mux.Handle("/metrics", pe)
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
		log.Infof("serving metrics on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Fatalf("failed to run Prometheus /metrics endpoint: %v", err)
		}
	}()
	return nil
}

// setupDatabase resolves the storage configuration and prepares a database
// handle. Flags override the config file where both are given.
func setupDatabase(cctx *cli.Context) (*storage.Database, error) {
	cfg, err := loadConf(cctx)
	if err != nil {
		return nil, err
	}

	sc, err := cfg.Lookup(cctx.String("storage"))
	if err != nil {
		return nil, err
	}

	url := sc.DatabaseURL()
	if cctx.IsSet("db") {
		url = cctx.String("db")
	}
	poolSize := sc.PoolSize
	if cctx.IsSet("db-pool-size") {
		poolSize = cctx.Int("db-pool-size")
	}
	schemaName := sc.SchemaName
	if cctx.IsSet("schema") {
		schemaName = cctx.String("schema")
	}

	return storage.NewDatabase(cctx.Context, url, poolSize, sc.ApplicationName, schemaName, sc.AllowUpsert)
}

func loadConf(cctx *cli.Context) (*config.Conf, error) {
	path := cctx.String("config")
	if path == "" {
		return config.DefaultConf(), nil
	}
	return config.FromFile(path)
}
