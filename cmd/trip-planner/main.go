package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lankatransit/trip-planner/advisory"
	"github.com/lankatransit/trip-planner/catalog"
	"github.com/lankatransit/trip-planner/config"
	"github.com/lankatransit/trip-planner/internal"
	"github.com/lankatransit/trip-planner/metrics"
	"github.com/lankatransit/trip-planner/planner"
	"github.com/lankatransit/trip-planner/server"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	configPath := flag.String("config", "config.yml", "configuration file")
	catalogPath := flag.String("catalog", "", "catalog JSON file or URL (overrides config)")
	from := flag.String("from", "", "origin query for oneshot mode")
	to := flag.String("to", "", "destination query for oneshot mode")
	flag.Parse()

	internal.InitLogging()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *catalogPath != "" {
		cfg.Catalog.Source = "file"
		cfg.Catalog.Path = *catalogPath
	}

	snap, err := loadCatalog(cfg.Catalog)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	log.Printf("catalog loaded: %d routes, %d stops", snap.RouteCount(), snap.StopCount())

	m := metrics.NewCollector()
	m.CatalogRoutes.Set(float64(snap.RouteCount()))
	m.CatalogStops.Set(float64(snap.StopCount()))

	p := planner.New(snap, buildAdvisor(cfg.Advisory), plannerConfig(cfg.Planner))
	p.Metrics = m

	switch *mode {
	case "oneshot":
		if *from == "" || *to == "" {
			log.Fatal("oneshot mode requires -from and -to")
		}
		results, err := p.Search(context.Background(), *from, *to)
		if err != nil {
			log.Fatalf("search: %v", err)
		}
		out, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(out))
	case "serve":
		srv := server.New(p, snap, m, cfg.Server.Port)
		srv.Start()
		srv.WaitForShutdown()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func loadCatalog(cfg config.CatalogConfig) (*catalog.Snapshot, error) {
	switch cfg.Source {
	case "postgres":
		db, err := catalog.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer func() { _ = db.Close() }()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := catalog.Ping(ctx, db); err != nil {
			return nil, err
		}
		return catalog.FetchSnapshot(ctx, db)
	default:
		path := cfg.Path
		if path == "" {
			path = "catalog.json"
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("no catalog at %s, use -catalog or configure catalog.path", path)
		}
		return catalog.Load(path)
	}
}

// buildAdvisor picks the advisory backend: the remote service when a URL
// is configured, the keyword heuristic when enabled, otherwise none.
func buildAdvisor(cfg config.AdvisoryConfig) advisory.Advisor {
	if cfg.URL != "" {
		timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
		return advisory.NewClient(cfg.URL, cfg.APIKey, timeout)
	}
	if cfg.Heuristic {
		return advisory.NewHeuristic()
	}
	return nil
}

// plannerConfig overlays the configured tuning onto the defaults. Zero
// values in the file keep the default.
func plannerConfig(cfg config.PlannerConfig) planner.Config {
	out := planner.DefaultConfig()
	if cfg.DetourToleranceFactor > 0 {
		out.DetourToleranceFactor = cfg.DetourToleranceFactor
	}
	if cfg.TransferOverheadMins > 0 {
		out.TransferOverheadMins = cfg.TransferOverheadMins
	}
	if cfg.MaxResults > 0 {
		out.MaxResults = cfg.MaxResults
	}
	if cfg.DirectPriorityMarginMins > 0 {
		out.DirectPriorityMarginMins = cfg.DirectPriorityMarginMins
	}
	if cfg.PreferredHubBonusMins > 0 {
		out.PreferredHubBonusMins = cfg.PreferredHubBonusMins
	}
	if cfg.NonPreferredHubPenaltyMins > 0 {
		out.NonPreferredHubPenaltyMins = cfg.NonPreferredHubPenaltyMins
	}
	if cfg.DefaultLegFare > 0 {
		out.DefaultLegFare = cfg.DefaultLegFare
	}
	if cfg.MinQueryLen > 0 {
		out.MinQueryLen = cfg.MinQueryLen
	}
	return out
}
