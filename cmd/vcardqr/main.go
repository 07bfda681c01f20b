package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/vcardqr/internal/adapters/driven/config/file"
	"github.com/custodia-labs/vcardqr/internal/adapters/driven/filesink"
	"github.com/custodia-labs/vcardqr/internal/adapters/driven/imaging"
	"github.com/custodia-labs/vcardqr/internal/adapters/driven/qrcode"
	"github.com/custodia-labs/vcardqr/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/vcardqr/internal/adapters/driving/cli"
	"github.com/custodia-labs/vcardqr/internal/core/ports/driven"
	"github.com/custodia-labs/vcardqr/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// buildServices wires the driven adapters into the core services.
func buildServices(opts cli.ServiceOptions) (*cli.Services, error) {
	var store driven.ConfigStore
	if opts.NoConfig {
		store = memory.NewConfigStore()
	} else {
		fileStore, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("opening config: %w", err)
		}
		store = fileStore
	}

	settings := services.NewSettingsService(store)
	pipeline, err := services.NewPipeline(qrcode.NewEncoder(), imaging.NewEncoder(), filesink.NewSink(), settings)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline: %w", err)
	}

	return &cli.Services{
		Card:     services.NewCardService(),
		Pipeline: pipeline,
		Scan:     services.NewScanService(imaging.NewDecoder(), qrcode.NewDecoder()),
		Settings: settings,
	}, nil
}
