package app

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"gossipscan/internal/app/version"
	"gossipscan/internal/config"
	"gossipscan/internal/geo"
	"gossipscan/internal/report"
	"gossipscan/internal/rpc"
	"gossipscan/internal/scan"
)

func Run() error {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found. Falling back to system environment variables.")
	}

	log.SetLevel(log.DebugLevel)

	settingsFlag := flag.String("settings", config.DefaultSettingsPath, "Path to the settings file")
	watchFlag := flag.Bool("watch", false, "Keep running and rescan on the configured interval")
	versionFlag := flag.Bool("version", false, "Print build information and exit")
	flag.Parse()

	if *versionFlag {
		info := version.Get()
		fmt.Println("gossipscan", info.BuildVersion, "built", info.BuiltAt)
		return nil
	}

	config.ReadSettings(*settingsFlag)
	cfg := config.GetConfig()

	runner := buildRunner(cfg)

	if !*watchFlag {
		return runner.Run(context.Background())
	}

	return watch(runner, config.ScanInterval(cfg))
}

// watch reruns the scan on a fixed interval until an interrupt arrives. The
// first scan starts immediately, not after the first tick.
func watch(runner *scan.Runner, interval time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Watch mode enabled", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := runner.Run(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("Shutting down")
			return nil
		case <-ticker.C:
			if err := runner.Run(ctx); err != nil {
				return err
			}
		}
	}
}

func buildRunner(cfg config.Config) *scan.Runner {
	directory := rpc.NewClient(cfg.RPC.URL, cfg.RPCTimeout())
	sampler := scan.NewSampler(cfg.Scanner.SampleSize, rand.New(rand.NewSource(time.Now().UnixNano())))
	classifier := scan.NewClassifier(cfg.Sanctions.CountryCodes)
	reports := report.NewWriter(cfg.Output.ScanLogPath, cfg.Output.SummaryPath)

	return scan.NewRunner(directory, buildResolver(cfg), sampler, classifier, reports)
}

// buildResolver prefers a local GeoLite database when one is configured and
// readable, otherwise the ip-api batch endpoint.
func buildResolver(cfg config.Config) scan.GeoResolver {
	if cfg.Geo.GeoLitePath != "" {
		offline, err := geo.OpenGeoLite(cfg.Geo.GeoLitePath)
		if err == nil {
			log.Info("Using local GeoLite database", "path", cfg.Geo.GeoLitePath)
			return offline
		}
		log.Warn("GeoLite database unavailable, falling back to the batch API", "path", cfg.Geo.GeoLitePath, "error", err)
	}

	return geo.NewBatchClient(cfg.Geo.BatchURL, cfg.Geo.BatchSize, cfg.GeoTimeout())
}
