package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/DoyleJ11/lol-cooldowns/internal/config"
	"github.com/DoyleJ11/lol-cooldowns/internal/logging"
	"github.com/DoyleJ11/lol-cooldowns/internal/provider"
	"github.com/DoyleJ11/lol-cooldowns/internal/resolver"
	"github.com/DoyleJ11/lol-cooldowns/internal/snapshot"
	"go.uber.org/zap"
)

// CLI flags
var (
	outputDir = flag.String("output-dir", "./data", "Directory to write the dataset and manifest.json to")
	workers   = flag.Int("workers", 16, "Champions resolved concurrently")
	force     = flag.Bool("force", false, "Rebuild the dataset even if the current version already exists")
)

func main() {
	flag.Parse()
	cfg := config.Load(".env", "../.env")

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient := provider.NewHTTPClient(cfg.ProviderTimeout)
	meraki := provider.NewMeraki(cfg.MerakiURL, httpClient)
	ddragon := provider.NewDataDragon(cfg.DDragonURL, cfg.DDragonLocale, httpClient)

	// Every Data Dragon lookup of the run reuses the version Run resolves.
	newResolver := func(version string) snapshot.ProfileResolver {
		return resolver.New(meraki, ddragon.Pin(version), logger)
	}
	b := snapshot.NewBuilder(ddragon, meraki, newResolver, *workers, logger)
	m, err := b.Run(ctx, *outputDir, *force)
	if err != nil {
		logger.Fatal("snapshot failed", zap.Error(err))
	}
	logger.Info("manifest written", zap.String("version", m.CurrentVersion), zap.String("file", m.CurrentFile))
}
