// Package main is the entry point for the fuelroute CLI: it loads a
// roadmap description from a JSON file, finds the cheapest route honoring
// fuel constraints and mandatory waypoints, and prints the result.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/abryazgin/fuelroute/internal/service"
	"github.com/abryazgin/fuelroute/pkg/apperror"
	"github.com/abryazgin/fuelroute/pkg/cache"
	"github.com/abryazgin/fuelroute/pkg/config"
	"github.com/abryazgin/fuelroute/pkg/logger"
	"github.com/abryazgin/fuelroute/pkg/metrics"
)

func main() {
	roadmapPath := flag.String("roadmap", "", "path to a roadmap JSON file (required)")
	flag.Parse()

	if *roadmapPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fuelroute -roadmap <path>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.InitWithConfig(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})

	metrics.InitMetrics(cfg.Metrics.Namespace, cfg.Metrics.Subsystem)

	if cfg.Metrics.Enabled {
		go func() {
			if err := metrics.StartMetricsServer(cfg.Metrics.Port, cfg.Metrics.Path); err != nil {
				logger.Log.Warn("metrics server stopped", "error", err)
			}
		}()
		logger.Log.Info("metrics server listening", "port", cfg.Metrics.Port, "path", cfg.Metrics.Path)
	}

	var routeCache *cache.RouteCache
	if cfg.Cache.Enabled {
		baseCache, err := cache.New(cache.FromConfig(&cfg.Cache))
		if err != nil {
			logger.Log.Warn("failed to create cache, continuing without cache", "error", err)
		} else {
			routeCache = cache.NewRouteCache(baseCache, cfg.Cache.DefaultTTL)
			logger.Log.Info("route cache initialized", "driver", cfg.Cache.Driver, "ttl", cfg.Cache.DefaultTTL)
		}
	}

	rf, err := loadRoadmap(*roadmapPath)
	if err != nil {
		logger.Fatal("failed to load roadmap", "error", err)
	}

	roadmap, start, destination, across, truck, err := rf.build(cfg.Search)
	if err != nil {
		logger.Fatal("failed to build roadmap", "error", err)
	}

	finder := service.NewFinder(routeCache, cfg.Cache.DefaultTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := finder.Find(ctx, roadmap, start, destination, across, truck)
	if err != nil {
		logger.Error("find_path failed", "error", err, "no_solution", apperror.Is(err, apperror.CodeNoSolution))
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("failed to marshal result", "error", err)
	}

	fmt.Println(string(out))
}
